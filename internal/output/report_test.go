package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Aman-CERP/strmatch/internal/errors"
	"github.com/Aman-CERP/strmatch/internal/scanner"
)

func inlineRun(pattern string, cols ...int) *Run {
	matches := make([]scanner.Match, 0, len(cols))
	for _, c := range cols {
		matches = append(matches, scanner.Match{Line: 0, Column: c, LineText: "ignored"})
	}
	return &Run{
		Summary: Summary{
			Pattern:      pattern,
			Algorithm:    "boyer-moore",
			Mode:         ModeInline,
			TotalMatches: len(cols),
			Elapsed:      2 * time.Millisecond,
		},
		Inline: matches,
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"text", FormatText, false},
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"xml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, apperrors.ErrCodeUnknownFormat, apperrors.GetCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReporter_Render_InlineText(t *testing.T) {
	// Given: an inline search with two matches
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	// When: rendering as text
	require.NoError(t, r.Render(inlineRun("foo", 0, 8), FormatText))

	// Then: the column offsets are listed in order
	output := buf.String()
	assert.Contains(t, output, `Found 2 matches for "foo"`)
	assert.Contains(t, output, "columns: 0, 8")
}

func TestReporter_Render_InlineNoMatches(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	require.NoError(t, r.Render(inlineRun("zzz"), FormatText))

	output := buf.String()
	assert.Contains(t, output, `No matches for "zzz"`)
	assert.NotContains(t, output, "columns:")
}

func TestReporter_Render_FileText(t *testing.T) {
	// Given: a single-file search with matches on two lines
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	run := &Run{
		Summary: Summary{
			Pattern:      "foo",
			Algorithm:    "boyer-moore",
			Mode:         ModeFile,
			FilesScanned: 1,
			TotalMatches: 2,
			Elapsed:      3 * time.Millisecond,
		},
		Files: []scanner.FileResult{
			{
				Name: "sample.txt",
				Matches: []scanner.Match{
					{Line: 1, Column: 0, LineText: "foo"},
					{Line: 3, Column: 0, LineText: "foobar"},
				},
			},
		},
	}

	// When: rendering as text
	require.NoError(t, r.Render(run, FormatText))

	// Then: rows carry line:column coordinates plus the matched line,
	// and the run ends with a summary
	output := buf.String()
	assert.Contains(t, output, "sample.txt")
	assert.Contains(t, output, "1:0")
	assert.Contains(t, output, "3:0")
	assert.Contains(t, output, "foobar")
	assert.Contains(t, output, "1 file scanned, 0 skipped, 2 matches in 3ms")
}

func TestReporter_Render_DirText_SkippedFilesAndSummary(t *testing.T) {
	// Given: a directory search where one file was skipped and another
	// had no matches
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	run := &Run{
		Summary: Summary{
			Pattern:      "foo",
			Algorithm:    "naive",
			Mode:         ModeDir,
			FilesScanned: 2,
			FilesSkipped: 1,
			TotalMatches: 1,
			Elapsed:      1500 * time.Millisecond,
		},
		Files: []scanner.FileResult{
			{
				Name:    "a.txt",
				Matches: []scanner.Match{{Line: 2, Column: 4, LineText: "see foo here"}},
			},
			{
				Name: "bad.txt",
				Err:  apperrors.DecodeError("bad.txt is not valid utf-8", nil),
			},
			{
				Name:    "quiet.txt",
				Matches: []scanner.Match{},
			},
		},
	}

	// When: rendering as text
	require.NoError(t, r.Render(run, FormatText))

	// Then: matched files are shown, the skipped file is called out,
	// and the file without matches stays out of the body
	output := buf.String()
	assert.Contains(t, output, "a.txt")
	assert.Contains(t, output, "2:4")
	assert.Contains(t, output, "skipped bad.txt")
	assert.Contains(t, output, "ERR_301_UNDECODABLE_CONTENT")
	assert.NotContains(t, output, "quiet.txt")
	assert.Contains(t, output, "2 files scanned, 1 skipped, 1 match in 1.5s")
}

func TestReporter_Render_JSONInline(t *testing.T) {
	// Given: an inline search with matches
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	// When: rendering as JSON
	require.NoError(t, r.Render(inlineRun("foo", 0, 8), FormatJSON))

	// Then: the document parses and carries the summary and columns
	var decoded struct {
		Summary struct {
			Pattern      string `json:"pattern"`
			Algorithm    string `json:"algorithm"`
			Mode         string `json:"mode"`
			TotalMatches int    `json:"total_matches"`
		} `json:"summary"`
		Columns []int `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "foo", decoded.Summary.Pattern)
	assert.Equal(t, "boyer-moore", decoded.Summary.Algorithm)
	assert.Equal(t, ModeInline, decoded.Summary.Mode)
	assert.Equal(t, 2, decoded.Summary.TotalMatches)
	assert.Equal(t, []int{0, 8}, decoded.Columns)
}

func TestReporter_Render_JSONDir(t *testing.T) {
	// Given: a directory search with one scanned and one skipped file
	buf := &bytes.Buffer{}
	r := NewReporter(buf, false)

	run := &Run{
		Summary: Summary{
			Pattern:      "foo",
			Algorithm:    "boyer-moore",
			Mode:         ModeDir,
			Encoding:     "utf-8",
			FilesScanned: 1,
			FilesSkipped: 1,
			TotalMatches: 1,
			Elapsed:      4 * time.Millisecond,
		},
		Files: []scanner.FileResult{
			{
				Name:    "a.txt",
				Matches: []scanner.Match{{Line: 1, Column: 0, LineText: "foo"}},
			},
			{
				Name: "bad.txt",
				Err:  apperrors.DecodeError("undecodable", nil),
			},
		},
	}

	// When: rendering as JSON
	require.NoError(t, r.Render(run, FormatJSON))

	// Then: files carry matches, skip state, and error text
	var decoded struct {
		Summary struct {
			FilesScanned int   `json:"files_scanned"`
			FilesSkipped int   `json:"files_skipped"`
			ElapsedMS    int64 `json:"elapsed_ms"`
		} `json:"summary"`
		Files []struct {
			Name    string `json:"name"`
			Skipped bool   `json:"skipped"`
			Error   string `json:"error"`
			Matches []struct {
				Line     int    `json:"line"`
				Column   int    `json:"column"`
				LineText string `json:"line_text"`
			} `json:"matches"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Summary.FilesScanned)
	assert.Equal(t, 1, decoded.Summary.FilesSkipped)
	assert.Equal(t, int64(4), decoded.Summary.ElapsedMS)

	require.Len(t, decoded.Files, 2)
	assert.Equal(t, "a.txt", decoded.Files[0].Name)
	assert.False(t, decoded.Files[0].Skipped)
	require.Len(t, decoded.Files[0].Matches, 1)
	assert.Equal(t, 1, decoded.Files[0].Matches[0].Line)
	assert.Equal(t, "foo", decoded.Files[0].Matches[0].LineText)

	assert.Equal(t, "bad.txt", decoded.Files[1].Name)
	assert.True(t, decoded.Files[1].Skipped)
	assert.Contains(t, decoded.Files[1].Error, "ERR_301_UNDECODABLE_CONTENT")
	assert.Empty(t, decoded.Files[1].Matches)
}

func TestReporter_HighlightAt_PreservesContent(t *testing.T) {
	// Styling must never change the visible characters, only wrap them.
	r := NewReporter(&bytes.Buffer{}, true)

	got := r.highlightAt("say foo twice", 4, 3)

	assert.Contains(t, got, "foo")
	assert.Contains(t, got, "say ")
	assert.Contains(t, got, " twice")
}

func TestReporter_HighlightAt_OutOfBoundsIsUnchanged(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, true)

	assert.Equal(t, "short", r.highlightAt("short", 3, 10))
	assert.Equal(t, "short", r.highlightAt("short", -1, 2))
}

func TestReporter_HighlightAt_CountsRunes(t *testing.T) {
	// Offsets are rune-based; a multibyte prefix must not shift the
	// highlighted region.
	r := NewReporter(&bytes.Buffer{}, false)

	got := r.highlightAt("日本foo語", 2, 3)

	assert.Equal(t, "日本foo語", got)
}

func TestFormatElapsed(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{500 * time.Microsecond, "500µs"},
		{3 * time.Millisecond, "3ms"},
		{1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatElapsed(tt.d))
	}
}
