package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatForCLI_IncludesMessageHintAndCode(t *testing.T) {
	err := New(ErrCodeUnknownEncoding, "unknown encoding: latin9", nil).
		WithSuggestion("run 'strmatch encodings' to list supported names")

	out := FormatForCLI(err)

	assert.Contains(t, out, "Error: unknown encoding: latin9")
	assert.Contains(t, out, "Hint: run 'strmatch encodings'")
	assert.Contains(t, out, "Code: ERR_104_UNKNOWN_ENCODING")
}

func TestFormatForCLI_DetailsInStableOrder(t *testing.T) {
	err := New(ErrCodeUndecodable, "invalid byte sequence", nil).
		WithDetail("line", "12").
		WithDetail("file", "notes.txt")

	out := FormatForCLI(err)

	// Keys sort alphabetically: file before line.
	fileIdx := len("Error: invalid byte sequence\n")
	assert.Contains(t, out, "  file: notes.txt\n  line: 12\n")
	assert.Greater(t, len(out), fileIdx)
}

func TestFormatForCLI_WrapsPlainErrors(t *testing.T) {
	out := FormatForCLI(errors.New("something broke"))

	assert.Contains(t, out, "Error: something broke")
	assert.Contains(t, out, "Code: ERR_501_INTERNAL")
}

func TestFormatForCLI_NilYieldsEmpty(t *testing.T) {
	assert.Equal(t, "", FormatForCLI(nil))
}

func TestFormatForLog_StructuredFields(t *testing.T) {
	cause := errors.New("read: connection reset")
	err := New(ErrCodeSourceRead, "could not read source", cause).
		WithDetail("file", "book.txt")

	fields := FormatForLog(err)

	assert.Equal(t, ErrCodeSourceRead, fields["error_code"])
	assert.Equal(t, "could not read source", fields["message"])
	assert.Equal(t, "SOURCE", fields["category"])
	assert.Equal(t, "read: connection reset", fields["cause"])
	assert.Equal(t, "book.txt", fields["detail_file"])
}

func TestFormatForLog_PlainError(t *testing.T) {
	fields := FormatForLog(errors.New("plain"))
	assert.Equal(t, map[string]any{"error": "plain"}, fields)
}

func TestFormatForLog_Nil(t *testing.T) {
	assert.Nil(t, FormatForLog(nil))
}
