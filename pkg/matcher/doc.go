// Package matcher provides the substring matching engine.
//
// This package implements the Matcher interface with two interchangeable
// algorithms:
//
//   - [NaiveMatcher]: checks every alignment, O(n*m) worst case
//   - [BoyerMooreMatcher]: bad-character heuristic, sub-linear average case
//
// Both algorithms report identical results: every starting offset of the
// pattern within a text unit, in ascending order, overlapping occurrences
// included. Offsets are rune offsets (Unicode code points), never byte
// offsets; the same unit is used for shift arithmetic and case folding so
// reported positions always index the original text.
//
// # Usage
//
//	m, err := matcher.New("needle",
//	    matcher.WithAlgorithm(matcher.AlgorithmBoyerMoore),
//	    matcher.WithIgnoreCase(true),
//	)
//	if err != nil {
//	    return err
//	}
//	positions := m.Find("Needles in a needle stack")
//
// A Matcher is compiled once per pattern and may be reused across any number
// of text units. Case folding, when enabled, is applied to the pattern at
// construction and to each text unit per Find call; it never changes rune
// counts, so folded offsets are valid for the unfolded input.
//
// # Choosing an algorithm
//
// Boyer-Moore is the default: the bad-character shift skips multiple
// alignments on a mismatch, and the win grows with pattern length and
// alphabet size. The naive scan has no preprocessing and is the baseline
// for short patterns and tiny alphabets. Equivalence of the two is pinned
// by tests rather than assumed.
package matcher
