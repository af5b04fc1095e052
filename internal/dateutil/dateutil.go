// Package dateutil resolves date expressions written with readable tokens
// (YYYY, MMMM, DD, ...) into formatted dates.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when "auto" is given without a format.
const DefaultDateFormat = "MMMM YYYY"

// dateTokens maps tokens to Go layout components, longest first.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"M", "1"},
	{"D", "2"},
}

// DatePresets provides named shortcuts for common formats.
var DatePresets = map[string]string{
	"iso":        "YYYY-MM-DD",
	"european":   "DD/MM/YYYY",
	"us":         "MM/DD/YYYY",
	"long":       "MMMM D, YYYY",
	"month-year": "MMMM YYYY",
}

// FormatDate formats t with a token format string.
// Tokens are replaced by the matching date component; every other
// character, and any text inside brackets, is copied literally, so "Q1" or
// "PM" outside a token are never reinterpreted.
func FormatDate(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var out strings.Builder
	out.Grow(len(format) + 8)

	for i := 0; i < len(format); {
		if format[i] == '[' {
			end := strings.IndexByte(format[i+1:], ']')
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			out.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		if goFmt, n := matchToken(format[i:]); n > 0 {
			out.WriteString(t.Format(goFmt))
			i += n
			continue
		}

		out.WriteByte(format[i])
		i++
	}

	return out.String(), nil
}

// matchToken returns the layout for the token at the start of s and its length.
func matchToken(s string) (string, int) {
	for _, t := range dateTokens {
		if strings.HasPrefix(s, t.token) {
			return t.goFmt, len(t.token)
		}
	}
	return "", 0
}

// ResolveDate expands "auto" date expressions against t:
//   - "auto"          -> t in DefaultDateFormat ("October 2026")
//   - "auto:FORMAT"   -> t in FORMAT ("auto:DD/MM/YYYY")
//   - "auto:preset"   -> t in a named preset ("auto:month-year")
//   - anything else   -> returned unchanged
//
// Month names are English, as produced by the Go time formatter. t is used
// in its own location; pass time.Now() for the process timezone.
func ResolveDate(value string, t time.Time) (string, error) {
	lower := strings.ToLower(value)

	if !strings.HasPrefix(lower, "auto") {
		return value, nil
	}

	formatPart := DefaultDateFormat
	if lower != "auto" {
		if !strings.HasPrefix(lower, "auto:") {
			return "", fmt.Errorf("%w: invalid auto syntax %q, use \"auto\" or \"auto:FORMAT\"", ErrInvalidDateFormat, value)
		}
		formatPart = value[len("auto:"):]
		if formatPart == "" {
			return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
		}
		if preset, ok := DatePresets[strings.ToLower(formatPart)]; ok {
			formatPart = preset
		}
	}

	return FormatDate(formatPart, t)
}
