// Package errors provides structured error handling for strmatch.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Usage errors (bad invocation, rejected before any work)
//   - 2XX: Source errors (target path missing, wrong kind, unreadable)
//   - 3XX: Decode errors (content unreadable under the stated encoding)
//   - 5XX: Internal errors (invariant violations, should not occur)
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryUsage indicates invalid invocation: flags, pattern, names.
	CategoryUsage Category = "USAGE"
	// CategorySource indicates the search target could not be used.
	CategorySource Category = "SOURCE"
	// CategoryDecode indicates content could not be decoded for scanning.
	CategoryDecode Category = "DECODE"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal indicates unrecoverable error, must abort the run.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates an operation failed but the run can continue.
	SeverityError Severity = "ERROR"
	// SeverityWarning indicates degraded operation, continuing.
	SeverityWarning Severity = "WARNING"
)

// Error codes organized by category.
const (
	// Usage errors (100-199)
	ErrCodeEmptyPattern     = "ERR_101_EMPTY_PATTERN"
	ErrCodeNoTarget         = "ERR_102_NO_TARGET"
	ErrCodeMultipleTargets  = "ERR_103_MULTIPLE_TARGETS"
	ErrCodeUnknownEncoding  = "ERR_104_UNKNOWN_ENCODING"
	ErrCodeUnknownAlgorithm = "ERR_105_UNKNOWN_ALGORITHM"
	ErrCodeUnknownFormat    = "ERR_106_UNKNOWN_FORMAT"
	ErrCodeConfigInvalid    = "ERR_107_CONFIG_INVALID"

	// Source errors (200-299)
	ErrCodeSourceNotFound = "ERR_201_SOURCE_NOT_FOUND"
	ErrCodeNotAFile       = "ERR_202_NOT_A_FILE"
	ErrCodeNotADirectory  = "ERR_203_NOT_A_DIRECTORY"
	ErrCodeSourceRead     = "ERR_204_SOURCE_READ"

	// Decode errors (300-399)
	ErrCodeUndecodable = "ERR_301_UNDECODABLE_CONTENT"
	ErrCodeLineTooLong = "ERR_302_LINE_TOO_LONG"

	// Internal errors (500-599)
	ErrCodeInternal     = "ERR_501_INTERNAL"
	ErrCodePatternBound = "ERR_502_PATTERN_BOUND"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// Numeric portion, e.g. "101" from "ERR_101_EMPTY_PATTERN".
	switch code[4] {
	case '1':
		return CategoryUsage
	case '2':
		return CategorySource
	case '3':
		return CategoryDecode
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
//
// Usage, source, and internal errors abort the run. Decode errors default
// to non-fatal: directory scans downgrade them to per-file skips, and
// single-file mode treats any returned error as fatal regardless of
// severity.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryDecode:
		return SeverityError
	default:
		return SeverityFatal
	}
}
