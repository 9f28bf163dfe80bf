//go:build ignore

// Package main generates a synthetic text corpus for benchmarking
// directory scans.
// Usage: go run scripts/generate-test-corpus.go -files 500 -output testdata/bench
//
// Each file is plain UTF-8 text with the pattern planted at a known rate,
// so scan results can be sanity-checked against the expected totals.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

var (
	numFiles  = flag.Int("files", 500, "Number of files to generate")
	numLines  = flag.Int("lines", 200, "Lines per file")
	outputDir = flag.String("output", "testdata/bench", "Output directory")
	seed      = flag.Int64("seed", 42, "Random seed for reproducibility")
	pattern   = flag.String("pattern", "needle", "Pattern to plant in the corpus")
	hitRate   = flag.Float64("hit-rate", 0.05, "Fraction of lines containing the pattern")
)

var words = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf",
	"hotel", "india", "juliet", "kilo", "lima", "mike", "november",
	"oscar", "papa", "quebec", "romeo", "sierra", "tango", "uniform",
	"victor", "whiskey", "xray", "yankee", "zulu",
}

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	planted := 0

	for i := 0; i < *numFiles; i++ {
		name := fmt.Sprintf("doc-%04d.txt", i)
		content, hits := generateFile(rng)
		planted += hits

		path := filepath.Join(*outputDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generated %d files (%d lines each) in %s\n", *numFiles, *numLines, *outputDir)
	fmt.Printf("Planted %d occurrences of %q\n", planted, *pattern)
	fmt.Printf("Verify with: strmatch %q --dir %s --format json\n", *pattern, *outputDir)
}

// generateFile builds one file's content and reports how many lines carry
// the pattern.
func generateFile(rng *rand.Rand) (string, int) {
	var sb strings.Builder
	hits := 0

	for line := 0; line < *numLines; line++ {
		n := 4 + rng.Intn(10)
		parts := make([]string, 0, n+1)
		for w := 0; w < n; w++ {
			parts = append(parts, words[rng.Intn(len(words))])
		}

		if rng.Float64() < *hitRate {
			pos := rng.Intn(len(parts) + 1)
			parts = append(parts[:pos], append([]string{*pattern}, parts[pos:]...)...)
			hits++
		}

		sb.WriteString(strings.Join(parts, " "))
		sb.WriteByte('\n')
	}

	return sb.String(), hits
}
