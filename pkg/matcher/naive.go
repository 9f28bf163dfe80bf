package matcher

// NaiveMatcher checks the pattern against every alignment of the text.
//
// No preprocessing, O(n*m) worst case. Serves as the correctness baseline
// for BoyerMooreMatcher and wins for short patterns over small alphabets,
// where shift-table construction costs more than it saves.
type NaiveMatcher struct {
	pattern    []rune
	source     string
	ignoreCase bool
}

var _ Matcher = (*NaiveMatcher)(nil)

func newNaive(pattern string, ignoreCase bool) *NaiveMatcher {
	rs := []rune(pattern)
	if ignoreCase {
		foldRunes(rs)
	}
	return &NaiveMatcher{pattern: rs, source: pattern, ignoreCase: ignoreCase}
}

// Find returns the rune offset of every occurrence of the pattern in text.
//
// Every candidate start is tried, so overlapping occurrences are reported.
// Returns an empty slice when text is shorter than the pattern.
func (m *NaiveMatcher) Find(text string) []int {
	rs := textRunes(text, m.ignoreCase)
	positions := []int{}
	last := len(rs) - len(m.pattern)
	for i := 0; i <= last; i++ {
		j := 0
		for j < len(m.pattern) && rs[i+j] == m.pattern[j] {
			j++
		}
		if j == len(m.pattern) {
			positions = append(positions, i)
		}
	}
	return positions
}

// Algorithm reports AlgorithmNaive.
func (m *NaiveMatcher) Algorithm() Algorithm {
	return AlgorithmNaive
}

// Pattern returns the pattern as supplied at construction.
func (m *NaiveMatcher) Pattern() string {
	return m.source
}
