package matcher

// BoyerMooreMatcher scans with the bad-character heuristic.
//
// A shift table built once per pattern records the rightmost index of every
// rune occurring in the pattern. On a mismatch the alignment jumps so the
// offending text rune lines up with its rightmost occurrence in the pattern,
// or just past it when the rune does not occur at all; the scan therefore
// skips alignments a naive scan would test one by one. After a full match
// the alignment advances by exactly one so overlapping occurrences are
// still found, keeping output identical to NaiveMatcher.
type BoyerMooreMatcher struct {
	pattern    []rune
	source     string
	rightmost  map[rune]int
	ignoreCase bool
}

var _ Matcher = (*BoyerMooreMatcher)(nil)

func newBoyerMoore(pattern string, ignoreCase bool) *BoyerMooreMatcher {
	rs := []rune(pattern)
	if ignoreCase {
		foldRunes(rs)
	}
	// Later assignments win, leaving the rightmost index per rune.
	table := make(map[rune]int, len(rs))
	for i, r := range rs {
		table[r] = i
	}
	return &BoyerMooreMatcher{pattern: rs, source: pattern, rightmost: table, ignoreCase: ignoreCase}
}

// Find returns the rune offset of every occurrence of the pattern in text.
//
// Output is identical to NaiveMatcher.Find for every input: same positions,
// same order, overlapping occurrences included. Returns an empty slice when
// text is shorter than the pattern.
func (m *BoyerMooreMatcher) Find(text string) []int {
	rs := textRunes(text, m.ignoreCase)
	n, p := len(rs), len(m.pattern)

	positions := []int{}
	align := 0
	for align+p <= n {
		// Compare right to left under the current alignment.
		k := p - 1
		for k >= 0 && m.pattern[k] == rs[align+k] {
			k--
		}
		if k < 0 {
			positions = append(positions, align)
			align++
			continue
		}

		// Bad-character shift: line the mismatched text rune up with its
		// rightmost occurrence in the pattern. A rune not in the pattern
		// lets the alignment skip just past it. Never move backward or
		// stand still.
		last, ok := m.rightmost[rs[align+k]]
		if !ok {
			last = -1
		}
		shift := k - last
		if shift < 1 {
			shift = 1
		}
		align += shift
	}
	return positions
}

// Algorithm reports AlgorithmBoyerMoore.
func (m *BoyerMooreMatcher) Algorithm() Algorithm {
	return AlgorithmBoyerMoore
}

// Pattern returns the pattern as supplied at construction.
func (m *BoyerMooreMatcher) Pattern() string {
	return m.source
}
