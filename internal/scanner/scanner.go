package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/internal/textenc"
	"github.com/Aman-CERP/strmatch/pkg/matcher"
)

// Scanner drives a Matcher across text sources. Scanning is synchronous
// and single-threaded; directory files are processed sequentially in
// enumeration order.
type Scanner struct {
	m        matcher.Matcher
	enc      *textenc.Encoding
	exts     map[string]bool
	progress ProgressFunc
}

// New builds a Scanner around a compiled matcher.
func New(m matcher.Matcher, opts *Options) *Scanner {
	if opts == nil {
		opts = &Options{}
	}

	enc := opts.Encoding
	if enc == nil {
		enc, _ = textenc.Resolve(textenc.DefaultName)
	}

	exts := opts.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[strings.ToLower(ext)] = true
	}

	return &Scanner{
		m:        m,
		enc:      enc,
		exts:     set,
		progress: opts.Progress,
	}
}

// Text searches an inline string as a single text unit. Embedded
// newlines are searchable. Matches carry column offsets only, with the
// line number fixed at 0.
func (s *Scanner) Text(text string) []Match {
	cols := s.m.Find(text)
	matches := make([]Match, 0, len(cols))
	for _, col := range cols {
		matches = append(matches, Match{Line: 0, Column: col, LineText: text})
	}
	return matches
}

// File scans a single file line by line. Any failure to read or decode
// the file is returned as an error; there are no partial results.
func (s *Scanner) File(path string) (*FileResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.SourceError(apperrors.ErrCodeSourceNotFound,
				fmt.Sprintf("file not found: %s", path), err)
		}
		return nil, apperrors.SourceError(apperrors.ErrCodeSourceRead,
			fmt.Sprintf("cannot access %s", path), err)
	}
	if info.IsDir() {
		return nil, apperrors.SourceError(apperrors.ErrCodeNotAFile,
			fmt.Sprintf("%s is a directory, not a file", path), nil).
			WithSuggestion("use --dir to search a directory")
	}

	matches, err := s.scanFile(path)
	if err != nil {
		return nil, err
	}

	return &FileResult{
		Name:    filepath.Base(path),
		Path:    path,
		Matches: matches,
	}, nil
}

// Dir scans every qualifying top-level file of a directory in lexical
// order. Subdirectories are not descended into. Files that fail to read
// or decode are recorded as skipped without aborting the scan; their
// partial matches are discarded.
func (s *Scanner) Dir(path string) (*Report, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.SourceError(apperrors.ErrCodeSourceNotFound,
				fmt.Sprintf("directory not found: %s", path), err)
		}
		return nil, apperrors.SourceError(apperrors.ErrCodeSourceRead,
			fmt.Sprintf("cannot access %s", path), err)
	}
	if !info.IsDir() {
		return nil, apperrors.SourceError(apperrors.ErrCodeNotADirectory,
			fmt.Sprintf("%s is not a directory", path), nil).
			WithSuggestion("use --file to search a single file")
	}

	// os.ReadDir returns entries sorted by name, which fixes the
	// enumeration order.
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, apperrors.SourceError(apperrors.ErrCodeSourceRead,
			fmt.Sprintf("cannot read directory %s", path), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.exts[strings.ToLower(filepath.Ext(entry.Name()))] {
			names = append(names, entry.Name())
		}
	}

	report := &Report{Files: make([]FileResult, 0, len(names))}
	for i, name := range names {
		full := filepath.Join(path, name)
		result := FileResult{Name: name, Path: full}

		matches, scanErr := s.scanFile(full)
		if scanErr != nil {
			result.Err = scanErr
			slog.Warn("skipping file",
				slog.String("path", full),
				slog.String("error", scanErr.Error()))
		} else {
			result.Matches = matches
		}

		report.Files = append(report.Files, result)
		if s.progress != nil {
			s.progress(i+1, len(names), name, scanErr)
		}
	}

	return report, nil
}

// scanFile opens and scans one file. The handle is closed before
// returning, so a failed file never leaks into the scan of its siblings.
func (s *Scanner) scanFile(path string) ([]Match, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.SourceError(apperrors.ErrCodeSourceRead,
			fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	return s.scanLines(f, path)
}

// scanLines decodes and matches a source line by line. Both LF and CRLF
// delimiters are stripped before matching. The first decode problem
// aborts the source; the caller discards any accumulated matches along
// with the error.
func (s *Scanner) scanLines(r io.Reader, path string) ([]Match, error) {
	sc := bufio.NewScanner(s.enc.NewReader(r))
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	matches := []Match{}
	lineNo := 0
	for sc.Scan() {
		lineNo++
		raw := sc.Bytes()
		if err := s.enc.ValidateLine(raw); err != nil {
			return nil, apperrors.DecodeError(
				fmt.Sprintf("%s is not valid %s", path, s.enc.Name()), err).
				WithDetail("file", filepath.Base(path)).
				WithDetail("line", strconv.Itoa(lineNo))
		}

		line := string(raw)
		for _, col := range s.m.Find(line) {
			matches = append(matches, Match{Line: lineNo, Column: col, LineText: line})
		}
	}

	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, apperrors.New(apperrors.ErrCodeLineTooLong,
				fmt.Sprintf("%s: line %d exceeds the %d-byte scan limit", path, lineNo+1, maxLineBytes), err).
				WithDetail("file", filepath.Base(path))
		}
		return nil, apperrors.SourceError(apperrors.ErrCodeSourceRead,
			fmt.Sprintf("failed reading %s", path), err)
	}

	return matches, nil
}
