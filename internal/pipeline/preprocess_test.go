package pipeline

import (
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// TestInlinePreprocessor - Text normalization
// ---------------------------------------------------------------------------

func TestInlinePreprocessor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "crlf normalized", input: "a\r\nb\rc", want: "a\nb\nc"},
		{name: "indentation removed", input: "    first\n      second", want: "first\nsecond"},
		{name: "trailing spaces removed", input: "line  \nnext", want: "line\nnext"},
		{name: "blank lines compressed", input: "a\n\n\n\nb", want: "a\n\nb"},
		{name: "outer whitespace trimmed", input: "\n\n text \n", want: "text"},
		{
			name:  "highlight placeholders",
			input: "==Go==",
			want:  MarkStartPlaceholder + "Go" + MarkEndPlaceholder,
		},
		{name: "bold untouched", input: "**Rust**", want: "**Rust**"},
		{
			name:  "fenced code keeps indentation",
			input: "```go\nfunc f() {\n    return\n}\n```",
			want:  "```go\nfunc f() {\n    return\n}\n```",
		},
		{
			name:  "fenced code keeps blank lines and equality",
			input: "~~~\na == b == c\n\n\n\nd\n~~~\n\n\n==after==",
			want:  "~~~\na == b == c\n\n\n\nd\n~~~\n\n" + MarkStartPlaceholder + "after" + MarkEndPlaceholder,
		},
		{
			name:  "indented fence delimiters are dedented",
			input: "  ```\n  x\n  ```\n  after",
			want:  "```\n  x\n```\nafter",
		},
	}

	p := &InlinePreprocessor{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := p.Preprocess(context.Background(), tt.input); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInlinePreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := &InlinePreprocessor{}
	input := "  ==x==\r\n"
	if got := p.Preprocess(ctx, input); got != input {
		t.Errorf("cancelled Preprocess should return input unchanged, got %q", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	in := "a " + MarkStartPlaceholder + "b" + MarkEndPlaceholder + " c"
	if got := ConvertMarkPlaceholders(in); got != "a <mark>b</mark> c" {
		t.Errorf("ConvertMarkPlaceholders() = %q", got)
	}
}
