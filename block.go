package resume

import (
	"fmt"
	"math"
)

// Block is one unit of document content. The set of implementations is
// closed: Paragraph, List, Table and Spacer.
type Block interface {
	isBlock()
}

// Heading levels for Paragraph.Level.
const (
	LevelBody    = 0 // ordinary paragraph
	LevelTitle   = 1 // document title
	LevelSection = 2 // section heading
)

// Paragraph is a run of text in one style. Text may contain **bold**,
// ==highlight== and hard line breaks.
type Paragraph struct {
	Text  string
	Style Style
	Level int
}

// List is a bulleted list; each item is rendered like paragraph text.
type List struct {
	Items []string
	Style Style
}

// Padding holds cell padding in points.
type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// TableStyle holds the rules applied to every cell of a table.
// Align has one entry per column; missing entries render as start.
type TableStyle struct {
	Name       string
	FontFamily string
	FontSize   float64 // points
	Align      []Alignment
	VAlign     VerticalAlign
	Padding    Padding
}

// Table is a rectangular grid of plain-text cells with fixed column widths.
type Table struct {
	Rows    [][]string
	Columns []float64 // inches
	Style   TableStyle
}

// Spacer reserves vertical whitespace.
type Spacer struct {
	Height float64 // inches
}

func (*Paragraph) isBlock() {}
func (*List) isBlock()      {}
func (*Table) isBlock()     {}
func (*Spacer) isBlock()    {}

// NewTable validates and returns a table. Every row must have one cell per
// column width, widths must be positive, and style alignments must not
// exceed the column count.
func NewTable(rows [][]string, columns []float64, style TableStyle) (*Table, error) {
	if len(rows) == 0 || len(columns) == 0 {
		return nil, fmt.Errorf("%w: table needs rows and columns", ErrInvalidTable)
	}
	for i, w := range columns {
		if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: column %d width %.2f", ErrInvalidTable, i, w)
		}
	}
	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidTable, i, len(row), len(columns))
		}
	}
	if len(style.Align) > len(columns) {
		return nil, fmt.Errorf("%w: %d column alignments for %d columns", ErrInvalidTable, len(style.Align), len(columns))
	}
	for _, a := range style.Align {
		if !isValidAlignment(a) {
			return nil, fmt.Errorf("%w: alignment %q", ErrInvalidTable, a)
		}
	}
	if !isValidVerticalAlign(style.VAlign) {
		return nil, fmt.Errorf("%w: vertical alignment %q", ErrInvalidTable, style.VAlign)
	}

	cp := make([][]string, len(rows))
	for i, row := range rows {
		cp[i] = append([]string(nil), row...)
	}
	return &Table{
		Rows:    cp,
		Columns: append([]float64(nil), columns...),
		Style:   style,
	}, nil
}

// Width returns the sum of the column widths in inches.
func (t *Table) Width() float64 {
	var w float64
	for _, c := range t.Columns {
		w += c
	}
	return w
}

// NewSpacer returns a spacer of the given height in inches.
func NewSpacer(height float64) (*Spacer, error) {
	if height <= 0 || math.IsNaN(height) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: %.2f", ErrInvalidSpacer, height)
	}
	return &Spacer{Height: height}, nil
}
