package resume

import (
	"errors"
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// TestNewTable - Geometry validation
// ---------------------------------------------------------------------------

func TestNewTable(t *testing.T) {
	t.Parallel()

	rows2x2 := [][]string{{"a", "b"}, {"c", "d"}}
	style := TableStyle{Name: "contact", Align: []Alignment{AlignEnd, AlignStart}, VAlign: VAlignTop}

	tests := []struct {
		name    string
		rows    [][]string
		columns []float64
		style   TableStyle
		wantErr error
	}{
		{name: "valid 2x2", rows: rows2x2, columns: []float64{1.2, 3.0}, style: style},
		{name: "no rows", rows: nil, columns: []float64{1}, wantErr: ErrInvalidTable},
		{name: "no columns", rows: rows2x2, columns: nil, wantErr: ErrInvalidTable},
		{name: "ragged rows", rows: [][]string{{"a", "b"}, {"c"}}, columns: []float64{1, 1}, wantErr: ErrInvalidTable},
		{name: "width mismatch", rows: rows2x2, columns: []float64{1, 1, 1}, wantErr: ErrInvalidTable},
		{name: "zero width", rows: rows2x2, columns: []float64{1, 0}, wantErr: ErrInvalidTable},
		{name: "NaN width", rows: rows2x2, columns: []float64{1, math.NaN()}, wantErr: ErrInvalidTable},
		{
			name:    "too many alignments",
			rows:    rows2x2,
			columns: []float64{1, 1},
			style:   TableStyle{Align: []Alignment{AlignEnd, AlignStart, AlignStart}},
			wantErr: ErrInvalidTable,
		},
		{
			name:    "bad vertical alignment",
			rows:    rows2x2,
			columns: []float64{1, 1},
			style:   TableStyle{VAlign: "baseline"},
			wantErr: ErrInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tbl, err := NewTable(tt.rows, tt.columns, tt.style)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewTable() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && tbl == nil {
				t.Fatal("NewTable() returned nil table without error")
			}
		})
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]string{{"Email:", "contact@example.com"}}
	cols := []float64{1.2, 3.0}

	tbl, err := NewTable(rows, cols, TableStyle{})
	if err != nil {
		t.Fatalf("NewTable() unexpected error: %v", err)
	}

	rows[0][1] = "changed"
	cols[0] = 9

	if tbl.Rows[0][1] != "contact@example.com" || tbl.Columns[0] != 1.2 {
		t.Errorf("table shares memory with its input: %+v", tbl)
	}
	if got := tbl.Width(); got != 4.2 {
		t.Errorf("Width() = %v, want 4.2", got)
	}
}

func TestNewSpacer(t *testing.T) {
	t.Parallel()

	if s, err := NewSpacer(0.2); err != nil || s.Height != 0.2 {
		t.Errorf("NewSpacer(0.2) = %+v, %v", s, err)
	}
	for _, h := range []float64{0, -0.1, math.Inf(1)} {
		if _, err := NewSpacer(h); !errors.Is(err, ErrInvalidSpacer) {
			t.Errorf("NewSpacer(%v) error = %v, want %v", h, err, ErrInvalidSpacer)
		}
	}
}
