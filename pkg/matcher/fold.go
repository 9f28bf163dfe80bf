package matcher

import "unicode"

// foldRunes lowercases rs in place using simple, locale-independent folding.
// Simple folding maps one rune to one rune, so an offset into the folded
// slice is also a valid offset into the original text. Full case folding
// (for example ß to ss) changes rune counts and is deliberately out of scope.
func foldRunes(rs []rune) []rune {
	for i, r := range rs {
		rs[i] = unicode.ToLower(r)
	}
	return rs
}

// textRunes converts a text unit to the rune slice a matcher scans,
// folding it first when case-insensitive mode is on.
func textRunes(text string, fold bool) []rune {
	rs := []rune(text)
	if fold {
		foldRunes(rs)
	}
	return rs
}
