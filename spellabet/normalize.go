package spellabet

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeKey folds a character to lowercase when the full Unicode
// lowercase mapping is a single character. Otherwise (e.g. 'İ', which
// lowercases to "i̇") the character is returned unchanged.
func NormalizeKey(r rune) rune {
	lower := cases.Lower(language.Und).String(string(r))
	first, size := utf8.DecodeRuneInString(lower)
	if size > 0 && size == len(lower) {
		return first
	}
	return r
}

// NormalizeCodeWord rewrites free-form text into the canonical code word
// casing used by the built-in tables: every word title-cased and joined
// without separators. Words break on whitespace, '-', '_', lower-to-upper
// transitions, the end of an acronym and where letters meet digits.
//
//	"brackets on"      -> "BracketsOn"
//	"exclamation-mark" -> "ExclamationMark"
//	"SLANT"            -> "Slant"
//	"hotDog"           -> "HotDog"
//	"a1b"              -> "A1B"
func NormalizeCodeWord(s string) string {
	title := cases.Title(language.Und)
	var b strings.Builder
	b.Grow(len(s))
	for _, w := range splitWords(s) {
		b.WriteString(title.String(w))
	}
	return b.String()
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}

	rs := []rune(s)
	for i, r := range rs {
		if unicode.IsSpace(r) || r == '-' || r == '_' {
			flush()
			continue
		}
		if n := len(cur); n > 0 {
			prev := cur[n-1]
			switch {
			case isLower(prev) && isUpper(r):
				flush()
			case isUpper(prev) && isUpper(r) && i+1 < len(rs) && isLower(rs[i+1]):
				// "XMLHttp" splits as "XML" + "Http".
				flush()
			case isCased(prev) && unicode.IsDigit(r), unicode.IsDigit(prev) && isCased(r):
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}

func isLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

func isCased(r rune) bool { return isLower(r) || isUpper(r) }

func isAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.In(r, unicode.Nl, unicode.Other_Alphabetic)
}

// recase renders word in the case of the character it stands for.
// Characters without case get the word as stored.
func recase(word string, r rune) string {
	switch {
	case isLower(r):
		return cases.Lower(language.Und).String(word)
	case isUpper(r):
		return cases.Upper(language.Und).String(word)
	default:
		return word
	}
}

// charGroup orders letters before numbers before everything else.
func charGroup(r rune) int {
	switch {
	case isAlphabetic(r):
		return 0
	case unicode.IsNumber(r):
		return 1
	default:
		return 2
	}
}

func compareChars(a, b rune) int {
	if ga, gb := charGroup(a), charGroup(b); ga != gb {
		return ga - gb
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
