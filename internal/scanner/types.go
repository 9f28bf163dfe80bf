// Package scanner applies a compiled pattern matcher to text sources.
// It resolves a search target (an inline string, a single file, or the
// qualifying files of a directory) into text units and drives the matcher
// one line at a time, producing match coordinates and per-file reports.
package scanner

import (
	"github.com/Aman-CERP/strmatch/internal/textenc"
)

// Match is a single occurrence of the pattern within a source.
type Match struct {
	// Line is the 1-based line number of the match. Inline string
	// sources have no line concept and use 0.
	Line int `json:"line"`

	// Column is the 0-based offset of the match within the line.
	// Offsets count characters (runes), not bytes.
	Column int `json:"column"`

	// LineText is the matched line with its newline stripped, kept for
	// display context.
	LineText string `json:"line_text"`
}

// FileResult holds the outcome of scanning one file.
type FileResult struct {
	// Name is the file's base name, used to tag results.
	Name string `json:"name"`

	// Path is the path the file was opened with.
	Path string `json:"path"`

	// Matches are the located matches in line-ascending, then
	// column-ascending order. Empty (never nil) when the file scanned
	// cleanly without matches.
	Matches []Match `json:"matches"`

	// Err is non-nil when the file was skipped. A skipped file
	// contributes no matches, even if lines matched before the failure.
	Err error `json:"-"`
}

// Skipped reports whether the file failed to scan.
func (r *FileResult) Skipped() bool {
	return r.Err != nil
}

// Report aggregates per-file results of a directory scan in enumeration
// order.
type Report struct {
	Files []FileResult `json:"files"`
}

// TotalMatches returns the number of matches across all scanned files.
func (r *Report) TotalMatches() int {
	n := 0
	for i := range r.Files {
		n += len(r.Files[i].Matches)
	}
	return n
}

// Scanned returns the number of files scanned successfully.
func (r *Report) Scanned() int {
	n := 0
	for i := range r.Files {
		if r.Files[i].Err == nil {
			n++
		}
	}
	return n
}

// Skipped returns the number of files skipped due to errors.
func (r *Report) Skipped() int {
	return len(r.Files) - r.Scanned()
}

// ProgressFunc is called after each directory entry finishes scanning,
// with the number of files completed so far, the total to scan, and the
// name of the file just finished. err is non-nil when that file was
// skipped. It must not block for long; it runs on the scanning
// goroutine.
type ProgressFunc func(done, total int, name string, err error)

// Options configures a Scanner beyond its matcher.
type Options struct {
	// Encoding decodes file content. Nil means UTF-8.
	Encoding *textenc.Encoding

	// Extensions are the dot-prefixed file extensions that qualify in
	// directory mode, compared case-insensitively. Empty means
	// DefaultExtensions.
	Extensions []string

	// Progress, when non-nil, observes directory scan progress.
	Progress ProgressFunc
}

// DefaultExtensions is the directory-mode qualifying set when none is
// configured.
var DefaultExtensions = []string{".txt"}

// maxLineBytes caps a single line's size. Longer lines abort the file
// with a decode-class error instead of silently truncating.
const maxLineBytes = 1 << 20
