package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Highlight placeholders use Unicode Private Use Area characters.
// They pass through Goldmark unchanged (no WithUnsafe needed) and are
// turned into <mark> tags after HTML generation.
const (
	MarkStartPlaceholder = "\uE000" // U+E000: Private Use Area start
	MarkEndPlaceholder   = "\uE001" // U+E001: Private Use Area end
)

var (
	crlfOrCR         = regexp.MustCompile(`\r\n?`)
	highlightPattern = regexp.MustCompile(`==(.*?)==`)
)

// Fence delimiters recognized by the preprocessor.
var fenceMarkers = []string{"```", "~~~"}

// TextPreprocessor defines the contract for block text preprocessing.
type TextPreprocessor interface {
	Preprocess(ctx context.Context, text string) string
}

// InlinePreprocessor prepares paragraph and list text for Goldmark.
type InlinePreprocessor struct{}

// Preprocess normalizes text before inline conversion.
// Content lines are flush-left in the YAML source, so indentation and
// trailing blanks are removed and runs of blank lines collapse to one.
// Lines inside fenced code blocks are passed through untouched.
func (p *InlinePreprocessor) Preprocess(ctx context.Context, text string) string {
	if ctx.Err() != nil {
		return text
	}

	lines := strings.Split(normalizeLineEndings(text), "\n")
	out := make([]string, 0, len(lines))
	fence := ""
	blanks := 0

	for _, line := range lines {
		if fence != "" {
			if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, fence) {
				line = trimmed
				fence = ""
			}
			out = append(out, line)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}

		if fence = fenceMarker(line); fence == "" {
			line = convertHighlights(line)
		}
		out = append(out, line)
	}

	return strings.TrimSpace(strings.Join(out, "\n"))
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(text string) string {
	return crlfOrCR.ReplaceAllString(text, "\n")
}

// fenceMarker returns the delimiter that opens a fenced code block on line,
// or "" if line is not a fence.
func fenceMarker(line string) string {
	for _, m := range fenceMarkers {
		if strings.HasPrefix(line, m) {
			return m
		}
	}
	return ""
}

// convertHighlights transforms ==text== to placeholder markers.
func convertHighlights(text string) string {
	return highlightPattern.ReplaceAllString(text, MarkStartPlaceholder+"$1"+MarkEndPlaceholder)
}

// ConvertMarkPlaceholders converts placeholder markers to <mark> tags.
// This is the second half of the ==highlight== feature.
func ConvertMarkPlaceholders(content string) string {
	return strings.ReplaceAll(
		strings.ReplaceAll(content, MarkStartPlaceholder, "<mark>"),
		MarkEndPlaceholder, "</mark>",
	)
}
