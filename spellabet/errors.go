package spellabet

import "errors"

var (
	// ErrUnknownAlphabet indicates a name that matches no spelling alphabet.
	ErrUnknownAlphabet = errors.New("spellabet: unknown spelling alphabet")
	// ErrDump indicates the dump destination rejected a write.
	ErrDump = errors.New("spellabet: dump alphabet")
)
