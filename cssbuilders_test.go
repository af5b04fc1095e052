package resume

// Notes:
// - buildStyleCSS / buildTableCSS: assert on individual declarations rather
//   than whole rule text so that whitespace changes do not break tests.
// - escapeCSSString, cssIdent: injection safety of generated selectors and values.

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestEscapeCSSString - CSS String Escaping
// ---------------------------------------------------------------------------

func TestEscapeCSSString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "simple text", input: "Helvetica", expected: "Helvetica"},
		{name: "escapes double quotes", input: `Open "Sans"`, expected: `Open \"Sans\"`},
		{name: "escapes backslash", input: `a\b`, expected: `a\\b`},
		{name: "escapes newline", input: "a\nb", expected: `a\A b`},
		{name: "removes carriage return", input: "a\r\nb", expected: `a\A b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := escapeCSSString(tt.input); got != tt.expected {
				t.Errorf("escapeCSSString(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCSSIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"caption", "caption"},
		{"section-2_b", "section-2_b"},
		{"a b{c}", "a_b_c_"},
		{"заголовок", "_________"},
	}

	for _, tt := range tests {
		if got := cssIdent(tt.input); got != tt.want {
			t.Errorf("cssIdent(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuildStyleCSS - Paragraph style rules
// ---------------------------------------------------------------------------

func TestBuildStyleCSS(t *testing.T) {
	t.Parallel()

	css := buildStyleCSS([]Style{
		{Name: "heading", FontFamily: "Helvetica", FontSize: 16, Color: "#0000ff", Align: AlignStart, Bold: true, LineHeight: 1.2, SpaceAfter: 12},
		{Name: "subtitle", FontFamily: "Helvetica", FontSize: 12, Color: "#808080", Align: AlignCenter, Italic: true, SpaceAfter: 20},
		{Name: "caption", FontFamily: "Helvetica", FontSize: 10, Align: AlignEnd, SpaceBefore: 20},
	})

	for _, want := range []string{
		".style-heading {",
		`font-family: "Helvetica", sans-serif;`,
		"font-size: 16pt;",
		"color: #0000ff;",
		"font-weight: bold;",
		"line-height: 1.2;",
		"padding-bottom: 12pt;",
		".style-subtitle {",
		"font-style: italic;",
		"text-align: center;",
		"padding-bottom: 20pt;",
		".style-caption {",
		"text-align: right;",
		"padding-top: 20pt;",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("style CSS missing %q:\n%s", want, css)
		}
	}
}

func TestBuildStyleCSS_Empty(t *testing.T) {
	t.Parallel()

	if got := buildStyleCSS(nil); got != "" {
		t.Errorf("buildStyleCSS(nil) = %q, want empty", got)
	}
}

// ---------------------------------------------------------------------------
// TestBuildTableCSS - Table cell rules
// ---------------------------------------------------------------------------

func TestBuildTableCSS(t *testing.T) {
	t.Parallel()

	css := buildTableCSS(TableStyle{
		Name:       "skills",
		FontFamily: "Helvetica",
		FontSize:   11,
		Align:      []Alignment{AlignEnd, AlignStart, AlignStart},
		VAlign:     VAlignTop,
		Padding:    Padding{Top: 3, Right: 12, Bottom: 6, Left: 0},
	})

	for _, want := range []string{
		"table.table-skills td {",
		"font-size: 11pt;",
		"vertical-align: top;",
		"padding: 3pt 12pt 6pt 0pt;",
		"table.table-skills td:nth-child(1) { text-align: right; }",
		"table.table-skills td:nth-child(2) { text-align: left; }",
		"table.table-skills td:nth-child(3) { text-align: left; }",
	} {
		if !strings.Contains(css, want) {
			t.Errorf("table CSS missing %q:\n%s", want, css)
		}
	}
}

func TestBuildPageBreaksCSS(t *testing.T) {
	t.Parallel()

	css := buildPageBreaksCSS()
	for _, want := range []string{"h1, h2 {", "break-after: avoid;", "tr, li {"} {
		if !strings.Contains(css, want) {
			t.Errorf("page breaks CSS missing %q", want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{0: "0", 1.2: "1.2", 11: "11", 0.25: "0.25"}
	for in, want := range tests {
		if got := formatNumber(in); got != want {
			t.Errorf("formatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
