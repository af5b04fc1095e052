package resume

import (
	"fmt"
	"regexp"
	"sort"
)

// Alignment is the horizontal alignment of text.
type Alignment string

// Alignment values.
const (
	AlignStart  Alignment = "start"
	AlignCenter Alignment = "center"
	AlignEnd    Alignment = "end"
)

// VerticalAlign is the vertical alignment of table cell content.
type VerticalAlign string

// VerticalAlign values.
const (
	VAlignTop    VerticalAlign = "top"
	VAlignMiddle VerticalAlign = "middle"
	VAlignBottom VerticalAlign = "bottom"
)

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Style is a resolved, immutable set of paragraph attributes.
// Sizes and spacing are in points. LineHeight is a multiple of FontSize.
type Style struct {
	Name        string
	FontFamily  string
	FontSize    float64
	Color       string
	Align       Alignment
	Bold        bool
	Italic      bool
	LineHeight  float64
	SpaceBefore float64
	SpaceAfter  float64
}

// StyleDef declares a style. Nil fields inherit from Parent; a definition
// without Parent must set every attribute it relies on.
type StyleDef struct {
	Name        string
	Parent      string
	FontFamily  *string
	FontSize    *float64
	Color       *string
	Align       *Alignment
	Bold        *bool
	Italic      *bool
	LineHeight  *float64
	SpaceBefore *float64
	SpaceAfter  *float64
}

// StyleSheet is an immutable registry of resolved styles.
type StyleSheet struct {
	styles map[string]Style
}

// NewStyleSheet resolves defs into a StyleSheet. Parents may be declared in
// any order. Unknown parents, duplicate names and inheritance cycles are
// rejected, as are resolved styles with invalid attributes.
func NewStyleSheet(defs []StyleDef) (*StyleSheet, error) {
	byName := make(map[string]StyleDef, len(defs))
	for _, d := range defs {
		if d.Name == "" {
			return nil, fmt.Errorf("%w: style name is empty", ErrInvalidStyle)
		}
		if _, dup := byName[d.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateStyle, d.Name)
		}
		byName[d.Name] = d
	}

	r := &styleResolver{
		defs:     byName,
		resolved: make(map[string]Style, len(defs)),
		visiting: make(map[string]bool),
	}
	for _, d := range defs {
		s, err := r.resolve(d.Name)
		if err != nil {
			return nil, err
		}
		if err := s.validate(); err != nil {
			return nil, err
		}
	}

	return &StyleSheet{styles: r.resolved}, nil
}

// Lookup returns the named style.
func (s *StyleSheet) Lookup(name string) (Style, error) {
	if s != nil {
		if st, ok := s.styles[name]; ok {
			return st, nil
		}
	}
	return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
}

// Names returns the registered style names in sorted order.
func (s *StyleSheet) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.styles))
	for n := range s.styles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// styleResolver walks parent chains with memoization and cycle detection.
type styleResolver struct {
	defs     map[string]StyleDef
	resolved map[string]Style
	visiting map[string]bool
}

func (r *styleResolver) resolve(name string) (Style, error) {
	if s, ok := r.resolved[name]; ok {
		return s, nil
	}
	def, ok := r.defs[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	if r.visiting[name] {
		return Style{}, fmt.Errorf("%w: %q", ErrStyleCycle, name)
	}
	r.visiting[name] = true
	defer delete(r.visiting, name)

	var s Style
	if def.Parent != "" {
		parent, err := r.resolve(def.Parent)
		if err != nil {
			return Style{}, fmt.Errorf("style %q: %w", name, err)
		}
		s = parent
	}
	s.Name = name
	def.applyTo(&s)

	r.resolved[name] = s
	return s, nil
}

// applyTo copies the set fields of d over s.
func (d StyleDef) applyTo(s *Style) {
	if d.FontFamily != nil {
		s.FontFamily = *d.FontFamily
	}
	if d.FontSize != nil {
		s.FontSize = *d.FontSize
	}
	if d.Color != nil {
		s.Color = *d.Color
	}
	if d.Align != nil {
		s.Align = *d.Align
	}
	if d.Bold != nil {
		s.Bold = *d.Bold
	}
	if d.Italic != nil {
		s.Italic = *d.Italic
	}
	if d.LineHeight != nil {
		s.LineHeight = *d.LineHeight
	}
	if d.SpaceBefore != nil {
		s.SpaceBefore = *d.SpaceBefore
	}
	if d.SpaceAfter != nil {
		s.SpaceAfter = *d.SpaceAfter
	}
}

func (s Style) validate() error {
	if s.FontFamily == "" {
		return fmt.Errorf("%w: style %q has no font family", ErrInvalidStyle, s.Name)
	}
	if s.FontSize <= 0 {
		return fmt.Errorf("%w: style %q font size %.1f", ErrInvalidStyle, s.Name, s.FontSize)
	}
	if s.Color != "" && !hexColorPattern.MatchString(s.Color) {
		return fmt.Errorf("%w: style %q color %q (want #rgb or #rrggbb)", ErrInvalidStyle, s.Name, s.Color)
	}
	if !isValidAlignment(s.Align) {
		return fmt.Errorf("%w: style %q alignment %q", ErrInvalidStyle, s.Name, s.Align)
	}
	if s.LineHeight < 0 || s.SpaceBefore < 0 || s.SpaceAfter < 0 {
		return fmt.Errorf("%w: style %q has negative spacing", ErrInvalidStyle, s.Name)
	}
	return nil
}

// isValidAlignment accepts the empty value, which renders as start.
func isValidAlignment(a Alignment) bool {
	switch a {
	case "", AlignStart, AlignCenter, AlignEnd:
		return true
	}
	return false
}

func isValidVerticalAlign(v VerticalAlign) bool {
	switch v {
	case "", VAlignTop, VAlignMiddle, VAlignBottom:
		return true
	}
	return false
}
