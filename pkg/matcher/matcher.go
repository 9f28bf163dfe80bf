package matcher

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrEmptyPattern is returned when attempting to compile an empty pattern.
var ErrEmptyPattern = errors.New("search pattern must not be empty")

// ErrPatternTooLong is returned when a pattern exceeds MaxPatternLen runes.
var ErrPatternTooLong = errors.New("search pattern exceeds maximum length")

// ErrUnknownAlgorithm is returned for algorithm names this package does not implement.
var ErrUnknownAlgorithm = errors.New("unknown matching algorithm")

// MaxPatternLen is the maximum pattern length in runes. Patterns beyond this
// bound indicate caller error (for example, a file passed where a pattern was
// meant) rather than a legitimate search.
const MaxPatternLen = 1 << 16

// Algorithm identifies a matching strategy.
type Algorithm string

const (
	// AlgorithmBoyerMoore is the bad-character-rule Boyer-Moore scan (default).
	AlgorithmBoyerMoore Algorithm = "boyer-moore"

	// AlgorithmNaive is the check-every-alignment scan.
	AlgorithmNaive Algorithm = "naive"
)

// String returns the algorithm's canonical name.
func (a Algorithm) String() string {
	return string(a)
}

// ParseAlgorithm maps a user-supplied name to an Algorithm.
//
// Returns ErrUnknownAlgorithm for anything other than the canonical names.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case AlgorithmBoyerMoore:
		return AlgorithmBoyerMoore, nil
	case AlgorithmNaive:
		return AlgorithmNaive, nil
	default:
		return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownAlgorithm, name, AlgorithmBoyerMoore, AlgorithmNaive)
	}
}

// Matcher finds every occurrence of one fixed pattern in a text unit.
//
// A Matcher is immutable after construction and safe for concurrent use.
type Matcher interface {
	// Find returns the 0-based rune offset of every occurrence of the
	// pattern in text, ascending, overlapping occurrences included.
	//
	// Returns an empty slice (not nil) if the pattern does not occur,
	// including when text is shorter than the pattern.
	Find(text string) []int

	// Algorithm reports which strategy this matcher uses.
	Algorithm() Algorithm

	// Pattern returns the pattern as supplied at construction, unfolded.
	Pattern() string
}

// Option configures matcher construction.
type Option func(*config)

type config struct {
	algorithm  Algorithm
	ignoreCase bool
}

// WithAlgorithm selects the matching strategy. Default: AlgorithmBoyerMoore.
func WithAlgorithm(a Algorithm) Option {
	return func(c *config) {
		c.algorithm = a
	}
}

// WithIgnoreCase enables case-insensitive matching. The pattern and each
// text unit are folded with simple locale-independent lowercasing before
// comparison; reported offsets index the original text.
func WithIgnoreCase(enabled bool) Option {
	return func(c *config) {
		c.ignoreCase = enabled
	}
}

// New compiles pattern into a Matcher.
//
// Returns ErrEmptyPattern for an empty pattern, ErrPatternTooLong when the
// pattern exceeds MaxPatternLen runes, and ErrUnknownAlgorithm when an
// unrecognized Algorithm was selected.
func New(pattern string, opts ...Option) (Matcher, error) {
	cfg := config{algorithm: AlgorithmBoyerMoore}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validatePattern(pattern); err != nil {
		return nil, err
	}

	switch cfg.algorithm {
	case AlgorithmNaive:
		return newNaive(pattern, cfg.ignoreCase), nil
	case AlgorithmBoyerMoore:
		return newBoyerMoore(pattern, cfg.ignoreCase), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(cfg.algorithm))
	}
}

func validatePattern(pattern string) error {
	if pattern == "" {
		return ErrEmptyPattern
	}
	if n := utf8.RuneCountInString(pattern); n > MaxPatternLen {
		return fmt.Errorf("%w: %d runes (limit %d)", ErrPatternTooLong, n, MaxPatternLen)
	}
	return nil
}
