package spellabet

import (
	"fmt"
	"strings"
)

// SpellingAlphabet selects the letter table combined with the shared digit
// and symbol code words.
type SpellingAlphabet uint8

const (
	// Jan is the Joint Army/Navy spelling alphabet.
	Jan SpellingAlphabet = iota
	// Lapd is the Los Angeles Police Department spelling alphabet.
	Lapd
	// Nato is the North Atlantic Treaty Organization spelling alphabet.
	Nato
	// RoyalNavy is the Royal Navy spelling alphabet.
	RoyalNavy
	// UsFinancial is the United States financial industry spelling alphabet.
	UsFinancial
	// WesternUnion is the Western Union spelling alphabet.
	WesternUnion
)

// DefaultAlphabet is used when no alphabet is chosen.
const DefaultAlphabet = Nato

// CodeWordTable maps a normalized character to its canonical code word.
type CodeWordTable map[rune]string

type alphabetInfo struct {
	name        string
	description string
	letters     []codeWord
}

var alphabets = [...]alphabetInfo{
	Jan:          {"jan", "Joint Army/Navy", janAlphabet},
	Lapd:         {"lapd", "Los Angeles Police Department", lapdAlphabet},
	Nato:         {"nato", "North Atlantic Treaty Organization", natoAlphabet},
	RoyalNavy:    {"royal-navy", "Royal Navy", royalNavyAlphabet},
	UsFinancial:  {"us-financial", "United States Financial Industry", usFinancialAlphabet},
	WesternUnion: {"western-union", "Western Union", westernUnionAlphabet},
}

// Alphabets returns every supported spelling alphabet in declaration order.
func Alphabets() []SpellingAlphabet {
	out := make([]SpellingAlphabet, len(alphabets))
	for i := range alphabets {
		out[i] = SpellingAlphabet(i)
	}
	return out
}

func (a SpellingAlphabet) info() alphabetInfo {
	if int(a) < len(alphabets) {
		return alphabets[a]
	}
	return alphabets[DefaultAlphabet]
}

// String returns the command line name of the alphabet, e.g. "royal-navy".
func (a SpellingAlphabet) String() string {
	if int(a) >= len(alphabets) {
		return fmt.Sprintf("SpellingAlphabet(%d)", uint8(a))
	}
	return alphabets[a].name
}

func (a SpellingAlphabet) Description() string { return a.info().description }

// ParseAlphabet looks up an alphabet by name. Matching ignores case and
// treats "_", "-" and no separator alike, so "RoyalNavy", "royal_navy" and
// "royal-navy" are equivalent.
func ParseAlphabet(name string) (SpellingAlphabet, error) {
	key := squashName(name)
	for i, info := range alphabets {
		if squashName(info.name) == key {
			return SpellingAlphabet(i), nil
		}
	}
	return DefaultAlphabet, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
}

func squashName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}

func (a SpellingAlphabet) MarshalText() ([]byte, error) {
	if int(a) >= len(alphabets) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlphabet, uint8(a))
	}
	return []byte(a.String()), nil
}

func (a *SpellingAlphabet) UnmarshalText(text []byte) error {
	parsed, err := ParseAlphabet(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Initialize builds a fresh table for the alphabet: the shared digits and
// symbols first, then the alphabet's own entries on top, so an alphabet can
// replace digit words (NATO says "Niner" for 9).
func (a SpellingAlphabet) Initialize() CodeWordTable {
	letters := a.info().letters
	table := make(CodeWordTable, len(defaultDigitsAndSymbols)+len(letters))
	extend(table, defaultDigitsAndSymbols)
	extend(table, letters)
	return table
}

func extend(table CodeWordTable, words []codeWord) {
	for _, cw := range words {
		table[cw.char] = cw.word
	}
}
