package resume

import (
	"fmt"
	"strconv"
	"strings"
)

// fallbackFontFamily follows every configured font so that Cyrillic text
// still renders when the named font is not installed.
const fallbackFontFamily = "sans-serif"

// styleClass returns the CSS class name for a paragraph style.
func styleClass(name string) string {
	return "style-" + cssIdent(name)
}

// tableClass returns the CSS class name for a table style.
func tableClass(name string) string {
	return "table-" + cssIdent(name)
}

// buildPageBreaksCSS keeps headings with the content that follows them and
// keeps table rows and list items whole.
func buildPageBreaksCSS() string {
	return `
/* Page breaks: prevent heading alone at page bottom */
h1, h2 {
  break-after: avoid;
  page-break-after: avoid;
  break-inside: avoid;
  page-break-inside: avoid;
}
tr, li {
  break-inside: avoid;
  page-break-inside: avoid;
}
`
}

// buildStyleCSS generates one rule per paragraph style. Spacing uses padding
// rather than margins so that space-after and space-before add up instead of
// collapsing.
func buildStyleCSS(styles []Style) string {
	var buf strings.Builder
	for _, s := range styles {
		fmt.Fprintf(&buf, "\n.%s {\n", styleClass(s.Name))
		fmt.Fprintf(&buf, "  font-family: %s;\n", fontStack(s.FontFamily))
		fmt.Fprintf(&buf, "  font-size: %spt;\n", formatNumber(s.FontSize))
		if s.Color != "" {
			fmt.Fprintf(&buf, "  color: %s;\n", s.Color)
		}
		fmt.Fprintf(&buf, "  text-align: %s;\n", alignValue(s.Align))
		fmt.Fprintf(&buf, "  font-weight: %s;\n", ternary(s.Bold, "bold", "normal"))
		fmt.Fprintf(&buf, "  font-style: %s;\n", ternary(s.Italic, "italic", "normal"))
		if s.LineHeight > 0 {
			fmt.Fprintf(&buf, "  line-height: %s;\n", formatNumber(s.LineHeight))
		}
		fmt.Fprintf(&buf, "  padding-top: %spt;\n", formatNumber(s.SpaceBefore))
		fmt.Fprintf(&buf, "  padding-bottom: %spt;\n", formatNumber(s.SpaceAfter))
		buf.WriteString("}\n")
	}
	return buf.String()
}

// buildTableCSS generates cell rules for a table style, including one
// nth-child rule per aligned column.
func buildTableCSS(ts TableStyle) string {
	var buf strings.Builder
	cls := tableClass(ts.Name)

	fmt.Fprintf(&buf, "\ntable.%s td {\n", cls)
	if ts.FontFamily != "" {
		fmt.Fprintf(&buf, "  font-family: %s;\n", fontStack(ts.FontFamily))
	}
	if ts.FontSize > 0 {
		fmt.Fprintf(&buf, "  font-size: %spt;\n", formatNumber(ts.FontSize))
	}
	fmt.Fprintf(&buf, "  vertical-align: %s;\n", vAlignValue(ts.VAlign))
	fmt.Fprintf(&buf, "  padding: %spt %spt %spt %spt;\n",
		formatNumber(ts.Padding.Top), formatNumber(ts.Padding.Right),
		formatNumber(ts.Padding.Bottom), formatNumber(ts.Padding.Left))
	buf.WriteString("}\n")

	for i, a := range ts.Align {
		fmt.Fprintf(&buf, "table.%s td:nth-child(%d) { text-align: %s; }\n", cls, i+1, alignValue(a))
	}
	return buf.String()
}

// fontStack quotes the configured family and appends the fallback.
func fontStack(family string) string {
	if family == "" {
		return fallbackFontFamily
	}
	return `"` + escapeCSSString(family) + `", ` + fallbackFontFamily
}

// escapeCSSString escapes a string for use inside a quoted CSS value.
func escapeCSSString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\A `)
	s = strings.ReplaceAll(s, "\r", "")
	return s
}

// cssIdent reduces a name to characters that are safe in a class selector.
func cssIdent(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func alignValue(a Alignment) string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "right"
	}
	return "left"
}

func vAlignValue(v VerticalAlign) string {
	switch v {
	case VAlignMiddle:
		return "middle"
	case VAlignBottom:
		return "bottom"
	}
	return "top"
}

// formatNumber renders a float without trailing zeros.
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInches renders a length in inches for inline styles.
func formatInches(f float64) string {
	return formatNumber(f) + "in"
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
