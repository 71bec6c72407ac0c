package spellabet

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// PhoneticConverter turns text into spelling alphabet code words.
//
// NonceForm and WithOverrides return a new converter and leave the receiver
// untouched, so a configured converter can be shared between goroutines.
type PhoneticConverter struct {
	table     CodeWordTable
	nonceForm bool
}

// New returns a converter using the given alphabet's code words.
func New(alphabet SpellingAlphabet) *PhoneticConverter {
	return &PhoneticConverter{table: alphabet.Initialize()}
}

// Default returns a converter for DefaultAlphabet.
func Default() *PhoneticConverter {
	return New(DefaultAlphabet)
}

// Mappings returns a copy of the current character to code word table.
func (c *PhoneticConverter) Mappings() CodeWordTable {
	return maps.Clone(c.table)
}

// NonceForm returns a converter that expands letters into the form
// "'A' as in ALFA" when on is true. Digits and symbols keep the plain
// output format either way.
func (c *PhoneticConverter) NonceForm(on bool) *PhoneticConverter {
	return &PhoneticConverter{table: c.table, nonceForm: on}
}

// WithOverrides returns a converter whose table has the given entries added
// or replaced. Keys are folded with NormalizeKey and values rewritten with
// NormalizeCodeWord, so 'A' and 'a' address the same entry and "brackets on"
// is stored as "BracketsOn". Empty values are accepted.
func (c *PhoneticConverter) WithOverrides(overrides map[rune]string) *PhoneticConverter {
	table := maps.Clone(c.table)
	for k, v := range overrides {
		table[NormalizeKey(k)] = NormalizeCodeWord(v)
	}
	return &PhoneticConverter{table: table, nonceForm: c.nonceForm}
}

// Convert returns the code words for every character of text, separated by
// a space (", " in nonce form). Characters with no code word are copied
// through unchanged.
func (c *PhoneticConverter) Convert(text string) string {
	var b strings.Builder
	sep := " "
	if c.nonceForm {
		sep = ", "
	}
	for i, r := range []rune(text) {
		if i > 0 {
			b.WriteString(sep)
		}
		c.convertChar(&b, r)
	}
	return b.String()
}

func (c *PhoneticConverter) convertChar(b *strings.Builder, r rune) {
	word, ok := c.table[NormalizeKey(r)]
	if !ok {
		b.WriteRune(r)
		return
	}
	word = recase(word, r)
	if c.nonceForm && isAlphabetic(r) {
		fmt.Fprintf(b, "'%c' as in %s", r, word)
		return
	}
	b.WriteString(word)
}

// DumpAlphabet writes one "<char> -> <code word>" line per table entry,
// letters first, then numbers, then everything else, each group in
// character order. Only letters are written unless verbose is set.
func (c *PhoneticConverter) DumpAlphabet(w io.Writer, verbose bool) error {
	chars := slices.Collect(maps.Keys(c.table))
	slices.SortFunc(chars, compareChars)
	for _, r := range chars {
		if !verbose && !isAlphabetic(r) {
			continue
		}
		if _, err := fmt.Fprintf(w, "%c -> %s\n", r, c.table[r]); err != nil {
			return fmt.Errorf("%w: %w", ErrDump, err)
		}
	}
	return nil
}
