package ui

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewTUIRenderer_ReturnsNilForNonTTY(t *testing.T) {
	// Given: a non-TTY buffer
	buf := &bytes.Buffer{}
	cfg := NewConfig(buf)

	// When: creating TUI renderer
	r, err := NewTUIRenderer(cfg)

	// Then: returns error (can't create TUI for non-TTY)
	assert.Error(t, err)
	assert.Nil(t, r)
}

func TestSearchModel_InitialView(t *testing.T) {
	// Given: a new search model with properly initialized tracker
	tracker := NewProgressTracker()
	model := newSearchModel(tracker, "")

	// When: getting initial view
	view := model.View()

	// Then: view contains stage indicators
	assert.Contains(t, view, "List")
	assert.Contains(t, view, "Scan")
}

func TestSearchModel_HeaderShowsPattern(t *testing.T) {
	// Given: a model created for a pattern
	tracker := NewProgressTracker()
	model := newSearchModel(tracker, "needle")

	// When: rendering view
	view := model.View()

	// Then: the pattern appears in the header
	assert.Contains(t, view, "strmatch")
	assert.Contains(t, view, "needle")
}

func TestSearchModel_ProgressDisplay(t *testing.T) {
	// Given: a model with progress
	tracker := NewProgressTracker()
	tracker.SetStage(StageScan, 100)
	tracker.Update(50, "notes/april.txt")

	model := newSearchModel(tracker, "")

	// When: rendering view
	view := model.View()

	// Then: progress is shown
	assert.Contains(t, view, "50")
	assert.Contains(t, view, "100")
	assert.Contains(t, view, "files")
}

func TestSearchModel_FileDisplay(t *testing.T) {
	// Given: a model with current file
	tracker := NewProgressTracker()
	tracker.SetStage(StageScan, 100)
	tracker.Update(1, "logs/server/access.txt")

	model := newSearchModel(tracker, "")

	// When: rendering view
	view := model.View()

	// Then: file path is shown (possibly truncated)
	assert.Contains(t, view, "access.txt")
}

func TestSearchModel_ErrorDisplay(t *testing.T) {
	// Given: a model with errors
	tracker := NewProgressTracker()
	tracker.AddError(ErrorEvent{
		File:   "broken.txt",
		Err:    assert.AnError,
		IsWarn: false,
	})
	tracker.AddError(ErrorEvent{
		File:   "warning.txt",
		Err:    assert.AnError,
		IsWarn: true,
	})

	model := newSearchModel(tracker, "")

	// When: rendering view
	view := model.View()

	// Then: skip and error tallies are shown
	assert.Contains(t, view, "skipped")
	assert.Contains(t, view, "errors")
}

func TestSearchModel_CompletionState(t *testing.T) {
	// Given: a completed model
	tracker := NewProgressTracker()
	tracker.SetStage(StageComplete, 0)

	model := newSearchModel(tracker, "")
	model.complete = true
	model.stats = CompletionStats{
		Files:   100,
		Matches: 37,
	}

	// When: rendering view
	view := model.View()

	// Then: shows completion
	assert.Contains(t, view, "Complete")
	assert.Contains(t, view, "100")
	assert.Contains(t, view, "37")
}

func TestSearchModel_CompletionState_WithSkipped(t *testing.T) {
	// Given: a completed model with skipped files
	tracker := NewProgressTracker()
	tracker.SetStage(StageComplete, 0)

	model := newSearchModel(tracker, "")
	model.complete = true
	model.stats = CompletionStats{
		Files:   10,
		Skipped: 2,
		Matches: 5,
	}

	// When: rendering view
	view := model.View()

	// Then: skipped count is called out
	assert.Contains(t, view, "skipped")
	assert.Contains(t, view, "2")
}

func TestSearchModel_QuittingView(t *testing.T) {
	// Given: a model where the user quit
	tracker := NewProgressTracker()
	model := newSearchModel(tracker, "")
	model.quitting = true

	// When: rendering view
	view := model.View()

	// Then: shows cancellation
	assert.Contains(t, view, "Cancelled")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"sub-second", 250 * time.Millisecond, "250ms"},
		{"seconds", 5 * time.Second, "5s"},
		{"exact minutes", 2 * time.Minute, "2m"},
		{"minutes and seconds", 90 * time.Second, "1m 30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatDuration(tt.d))
		})
	}
}

func TestTruncateFilePath_Short(t *testing.T) {
	// Given: a short path
	path := "notes/april.txt"

	// When: truncating
	result := truncateFilePath(path, 50)

	// Then: unchanged
	assert.Equal(t, path, result)
}

func TestTruncateFilePath_Long(t *testing.T) {
	// Given: a long path
	path := "archive/reports/very/deeply/nested/directory/summary.txt"

	// When: truncating to 30 chars
	result := truncateFilePath(path, 30)

	// Then: truncated with ellipsis
	assert.LessOrEqual(t, len(result), 30)
	assert.Contains(t, result, "...")
	assert.Contains(t, result, "summary.txt") // Keeps filename
}

func TestTruncateFilePath_Empty(t *testing.T) {
	// Given: empty path
	path := ""

	// When: truncating
	result := truncateFilePath(path, 50)

	// Then: returns empty
	assert.Equal(t, "", result)
}

func TestTUIRenderer_InterfaceCompliance(t *testing.T) {
	// Ensure TUIRenderer implements Renderer
	var _ Renderer = (*TUIRenderer)(nil)
}
