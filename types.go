package resume

import (
	"fmt"
	"strings"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.0
	MaxMargin = 3.0
)

// Default margins in inches. The top margin is tighter than the others so
// the name line sits close to the page edge.
const (
	DefaultMarginTop   = 0.5
	DefaultMarginSides = 1.0
)

// paperSizes maps page sizes to portrait width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// Margins holds per-side page margins in inches.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string // "letter", "a4", "legal"
	Orientation string // "portrait", "landscape"
	Margins     Margins
}

// DefaultPageSettings returns A4 portrait with the default margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationPortrait,
		Margins: Margins{
			Top:    DefaultMarginTop,
			Right:  DefaultMarginSides,
			Bottom: DefaultMarginSides,
			Left:   DefaultMarginSides,
		},
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	sides := []struct {
		name  string
		value float64
	}{
		{"top", p.Margins.Top},
		{"right", p.Margins.Right},
		{"bottom", p.Margins.Bottom},
		{"left", p.Margins.Left},
	}
	for _, s := range sides {
		if s.value < MinMargin || s.value > MaxMargin {
			return fmt.Errorf("%w: %s %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, s.name, s.value, MinMargin, MaxMargin)
		}
	}

	return nil
}

// Dimensions returns the paper width and height in inches for the page size
// and orientation. Unknown sizes fall back to A4.
func (p *PageSettings) Dimensions() (width, height float64) {
	dims, ok := paperSizes[strings.ToLower(p.Size)]
	if !ok {
		dims = paperSizes[PageSizeA4]
	}
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		return dims[1], dims[0]
	}
	return dims[0], dims[1]
}

// ContentWidth returns the printable width in inches.
func (p *PageSettings) ContentWidth() float64 {
	w, _ := p.Dimensions()
	return w - p.Margins.Left - p.Margins.Right
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}
