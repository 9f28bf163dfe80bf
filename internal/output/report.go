package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/internal/scanner"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (string, error) {
	switch strings.ToLower(s) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", apperrors.UsageError(apperrors.ErrCodeUnknownFormat,
			fmt.Sprintf("unknown output format %q", s)).
			WithSuggestion("valid formats: text, json")
	}
}

// Search modes named in summaries and JSON output.
const (
	ModeInline = "inline"
	ModeFile   = "file"
	ModeDir    = "dir"
)

// Summary describes a completed search run.
type Summary struct {
	Pattern      string
	Algorithm    string
	IgnoreCase   bool
	Mode         string
	Encoding     string
	FilesScanned int
	FilesSkipped int
	TotalMatches int
	Elapsed      time.Duration
}

// Run bundles everything a single search produced, ready for rendering.
// Inline carries inline-mode matches; Files carries file and directory
// mode results in enumeration order.
type Run struct {
	Summary Summary
	Inline  []scanner.Match
	Files   []scanner.FileResult
}

// Reporter renders search results as text or JSON.
type Reporter struct {
	*Writer
	out    io.Writer
	color  bool
	styles reportStyles
}

// reportStyles colors the pieces of a text report. Zero styles render
// text unchanged, which is how no-color mode works.
type reportStyles struct {
	file      lipgloss.Style
	location  lipgloss.Style
	highlight lipgloss.Style
}

// Same palette as internal/ui: lime accent, gray secondary.
func newReportStyles(color bool) reportStyles {
	if !color {
		return reportStyles{
			file:      lipgloss.NewStyle(),
			location:  lipgloss.NewStyle(),
			highlight: lipgloss.NewStyle(),
		}
	}
	return reportStyles{
		file:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		location:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("154")),
	}
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer, color bool) *Reporter {
	return &Reporter{
		Writer: New(out),
		out:    out,
		color:  color,
		styles: newReportStyles(color),
	}
}

// Render writes the run in the requested format.
func (r *Reporter) Render(run *Run, format string) error {
	if format == FormatJSON {
		return r.renderJSON(run)
	}
	r.renderText(run)
	return nil
}

// renderText writes the human-readable report.
func (r *Reporter) renderText(run *Run) {
	switch run.Summary.Mode {
	case ModeInline:
		r.renderInline(run)
	default:
		r.renderFiles(run)
	}
}

// renderInline prints column offsets for an inline string search.
func (r *Reporter) renderInline(run *Run) {
	s := run.Summary
	if len(run.Inline) == 0 {
		r.Statusf("🔍", "No matches for %q", s.Pattern)
		return
	}

	r.Statusf("🔍", "Found %s for %q", countNoun(len(run.Inline), "match", "matches"), s.Pattern)
	cols := make([]string, len(run.Inline))
	for i, m := range run.Inline {
		cols[i] = fmt.Sprintf("%d", m.Column)
	}
	r.Status("", "columns: "+strings.Join(cols, ", "))
}

// renderFiles prints per-file match rows, skip warnings, and the summary
// line for file and directory searches.
func (r *Reporter) renderFiles(run *Run) {
	s := run.Summary
	patLen := utf8.RuneCountInString(s.Pattern)

	if s.TotalMatches == 0 {
		r.Statusf("🔍", "No matches for %q", s.Pattern)
	} else {
		r.Statusf("🔍", "Found %s for %q", countNoun(s.TotalMatches, "match", "matches"), s.Pattern)
	}
	r.Newline()

	for i := range run.Files {
		f := &run.Files[i]
		if f.Skipped() || len(f.Matches) == 0 {
			continue
		}
		r.Status("", r.styles.file.Render(f.Name))
		for _, m := range f.Matches {
			loc := r.styles.location.Render(fmt.Sprintf("%d:%d", m.Line, m.Column))
			r.Statusf("", "  %s  %s", loc, r.highlightAt(m.LineText, m.Column, patLen))
		}
		r.Newline()
	}

	for i := range run.Files {
		f := &run.Files[i]
		if f.Skipped() {
			r.Warningf("skipped %s: %v", f.Name, f.Err)
		}
	}

	r.Successf("%s scanned, %d skipped, %s in %s",
		countNoun(s.FilesScanned, "file", "files"),
		s.FilesSkipped,
		countNoun(s.TotalMatches, "match", "matches"),
		formatElapsed(s.Elapsed))
}

// renderJSON writes the machine-readable report.
func (r *Reporter) renderJSON(run *Run) error {
	type jsonSummary struct {
		Pattern      string `json:"pattern"`
		Algorithm    string `json:"algorithm"`
		IgnoreCase   bool   `json:"ignore_case"`
		Mode         string `json:"mode"`
		Encoding     string `json:"encoding,omitempty"`
		FilesScanned int    `json:"files_scanned"`
		FilesSkipped int    `json:"files_skipped"`
		TotalMatches int    `json:"total_matches"`
		ElapsedMS    int64  `json:"elapsed_ms"`
	}
	type jsonFile struct {
		Name    string          `json:"name"`
		Matches []scanner.Match `json:"matches"`
		Skipped bool            `json:"skipped,omitempty"`
		Error   string          `json:"error,omitempty"`
	}
	type jsonRun struct {
		Summary jsonSummary `json:"summary"`
		Columns []int       `json:"columns,omitempty"`
		Files   []jsonFile  `json:"files,omitempty"`
	}

	s := run.Summary
	out := jsonRun{
		Summary: jsonSummary{
			Pattern:      s.Pattern,
			Algorithm:    s.Algorithm,
			IgnoreCase:   s.IgnoreCase,
			Mode:         s.Mode,
			Encoding:     s.Encoding,
			FilesScanned: s.FilesScanned,
			FilesSkipped: s.FilesSkipped,
			TotalMatches: s.TotalMatches,
			ElapsedMS:    s.Elapsed.Milliseconds(),
		},
	}

	if s.Mode == ModeInline {
		out.Columns = make([]int, 0, len(run.Inline))
		for _, m := range run.Inline {
			out.Columns = append(out.Columns, m.Column)
		}
	}

	for i := range run.Files {
		f := &run.Files[i]
		jf := jsonFile{Name: f.Name, Matches: f.Matches}
		if f.Skipped() {
			jf.Skipped = true
			jf.Error = f.Err.Error()
			jf.Matches = []scanner.Match{}
		}
		out.Files = append(out.Files, jf)
	}

	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// highlightAt styles one occurrence of length runes starting at the given
// rune offset. The offset comes from the matcher, so it is trusted but
// still bounds-checked.
func (r *Reporter) highlightAt(line string, col, length int) string {
	if !r.color {
		return line
	}
	rs := []rune(line)
	if col < 0 || length <= 0 || col+length > len(rs) {
		return line
	}
	return string(rs[:col]) +
		r.styles.highlight.Render(string(rs[col:col+length])) +
		string(rs[col+length:])
}

// countNoun formats a count with a singular or plural noun.
func countNoun(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// formatElapsed rounds a duration for display.
func formatElapsed(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(100 * time.Microsecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
