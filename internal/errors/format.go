package errors

import (
	"fmt"
	"sort"
	"strings"
)

// FormatForCLI formats an error for CLI output.
// Uses a concise format suitable for terminal display.
func FormatForCLI(err error) string {
	if err == nil {
		return ""
	}

	me, ok := err.(*MatchError)
	if !ok {
		// Wrap standard error
		me = Wrap(ErrCodeInternal, err)
	}

	var sb strings.Builder

	// Error message with code
	sb.WriteString(fmt.Sprintf("Error: %s\n", me.Message))

	// Details in stable order
	if len(me.Details) > 0 {
		keys := make([]string, 0, len(me.Details))
		for k := range me.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, me.Details[k]))
		}
	}

	// Suggestion if available
	if me.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  Hint: %s\n", me.Suggestion))
	}

	// Code reference
	sb.WriteString(fmt.Sprintf("  Code: %s\n", me.Code))

	return sb.String()
}

// FormatForLog formats an error for structured logging.
// Returns key-value pairs suitable for slog attributes.
func FormatForLog(err error) map[string]any {
	if err == nil {
		return nil
	}

	me, ok := err.(*MatchError)
	if !ok {
		return map[string]any{
			"error": err.Error(),
		}
	}

	result := map[string]any{
		"error_code": me.Code,
		"message":    me.Message,
		"category":   string(me.Category),
		"severity":   string(me.Severity),
	}

	if me.Cause != nil {
		result["cause"] = me.Cause.Error()
	}

	if me.Suggestion != "" {
		result["suggestion"] = me.Suggestion
	}

	for k, v := range me.Details {
		result["detail_"+k] = v
	}

	return result
}
