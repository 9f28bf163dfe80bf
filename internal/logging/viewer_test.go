package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLogFixture(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "strmatch.log")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestViewer_Tail_ReturnsLastN(t *testing.T) {
	// Given: a log file with three entries
	path := writeLogFixture(t,
		`{"time":"2026-08-22T10:00:01Z","level":"INFO","msg":"first"}`,
		`{"time":"2026-08-22T10:00:02Z","level":"INFO","msg":"second"}`,
		`{"time":"2026-08-22T10:00:03Z","level":"INFO","msg":"third"}`,
	)
	viewer := NewViewer(ViewerConfig{NoColor: true}, new(bytes.Buffer))

	// When: tailing the last two lines
	entries, err := viewer.Tail(path, 2)

	// Then: only the newest two come back, oldest first
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].Msg)
	assert.Equal(t, "third", entries[1].Msg)
}

func TestViewer_Tail_MissingFile(t *testing.T) {
	viewer := NewViewer(ViewerConfig{}, new(bytes.Buffer))

	_, err := viewer.Tail(filepath.Join(t.TempDir(), "nope.log"), 10)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestViewer_Tail_LevelFilter(t *testing.T) {
	// Given: entries across levels
	path := writeLogFixture(t,
		`{"time":"2026-08-22T10:00:01Z","level":"DEBUG","msg":"noise"}`,
		`{"time":"2026-08-22T10:00:02Z","level":"INFO","msg":"fine"}`,
		`{"time":"2026-08-22T10:00:03Z","level":"WARN","msg":"skipping file"}`,
		`{"time":"2026-08-22T10:00:04Z","level":"ERROR","msg":"search_failed"}`,
	)
	viewer := NewViewer(ViewerConfig{Level: "warn", NoColor: true}, new(bytes.Buffer))

	// When: tailing with a warn threshold
	entries, err := viewer.Tail(path, 10)

	// Then: only warn and error entries remain
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "skipping file", entries[0].Msg)
	assert.Equal(t, "search_failed", entries[1].Msg)
}

func TestViewer_Tail_PatternFilter(t *testing.T) {
	// Given: entries with distinct messages
	path := writeLogFixture(t,
		`{"time":"2026-08-22T10:00:01Z","level":"INFO","msg":"search_started","mode":"dir"}`,
		`{"time":"2026-08-22T10:00:02Z","level":"INFO","msg":"search_complete","matches":3}`,
	)
	viewer := NewViewer(ViewerConfig{Pattern: regexp.MustCompile("complete"), NoColor: true}, new(bytes.Buffer))

	// When: tailing with a pattern
	entries, err := viewer.Tail(path, 10)

	// Then: only the matching entry remains
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "search_complete", entries[0].Msg)
}

func TestViewer_FormatEntry_NoColor(t *testing.T) {
	// Given: a parsed entry with attributes
	viewer := NewViewer(ViewerConfig{NoColor: true}, new(bytes.Buffer))
	path := writeLogFixture(t,
		`{"time":"2026-08-22T10:00:01.500Z","level":"INFO","msg":"search_complete","matches":3}`,
	)
	entries, err := viewer.Tail(path, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// When: formatting
	line := viewer.FormatEntry(entries[0])

	// Then: timestamp, padded level, message, and attrs appear without ANSI
	assert.Contains(t, line, "10:00:01.500")
	assert.Contains(t, line, "INFO ")
	assert.Contains(t, line, "search_complete")
	assert.Contains(t, line, "matches=3")
	assert.NotContains(t, line, "\033[")
}

func TestViewer_FormatEntry_ColorizesLevel(t *testing.T) {
	viewer := NewViewer(ViewerConfig{}, new(bytes.Buffer))
	entry := LogEntry{IsValid: true, Level: "ERROR", Msg: "boom"}

	line := viewer.FormatEntry(entry)

	assert.Contains(t, line, "\033[31m", "Errors should render red")
}

func TestViewer_FormatEntry_InvalidLinePassesThrough(t *testing.T) {
	// Given: a line that is not JSON
	viewer := NewViewer(ViewerConfig{NoColor: true}, new(bytes.Buffer))
	path := writeLogFixture(t, "plain text line")
	entries, err := viewer.Tail(path, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	// Then: the raw line is preserved
	assert.False(t, entries[0].IsValid)
	assert.Equal(t, "plain text line", viewer.FormatEntry(entries[0]))
}

func TestViewer_Print_WritesAllEntries(t *testing.T) {
	// Given: a viewer over a buffer
	buf := new(bytes.Buffer)
	viewer := NewViewer(ViewerConfig{NoColor: true}, buf)
	entries := []LogEntry{
		{IsValid: true, Level: "INFO", Msg: "one"},
		{IsValid: true, Level: "INFO", Msg: "two"},
	}

	// When: printing
	viewer.Print(entries)

	// Then: one line per entry
	output := buf.String()
	assert.Contains(t, output, "one")
	assert.Contains(t, output, "two")
	assert.Equal(t, 2, strings.Count(output, "\n"))
}
