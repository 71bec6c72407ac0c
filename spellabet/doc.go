// Package spellabet spells text out as spelling alphabet code words, like
// the NATO phonetic alphabet, for reading over noisy voice channels.
//
// Letters keep their case through the code word ("H" becomes "HOTEL", "h"
// becomes "hotel"), digits and common symbols get fixed words ("One",
// "Period"), and anything else is passed through unchanged.
//
//	c := spellabet.New(spellabet.Nato)
//	c.Convert("Example123!")
//	// ECHO x-ray alfa mike papa lima echo One Two Tree Exclamation
//
// Supported alphabets: Jan, Lapd, Nato (default), RoyalNavy, UsFinancial,
// WesternUnion. Code words can be replaced per character with
// PhoneticConverter.WithOverrides.
package spellabet
