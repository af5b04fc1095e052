package resume

import (
	"fmt"
	"time"

	"github.com/erd2/yershhhat/internal/config"
	"github.com/erd2/yershhhat/internal/dateutil"
)

// SectionOrder is the canonical order of resume sections by ID.
var SectionOrder = []string{
	"objective",
	"skills",
	"projects",
	"experience",
	"education",
	"qualities",
}

// Builder assembles a Document from content configuration.
// Create with NewBuilder; Build has no side effects and may be called
// repeatedly.
type Builder struct {
	content     *config.Content
	page        *PageSettings
	sheet       *StyleSheet
	tableStyles map[string]TableStyle
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithContent builds from c instead of the embedded resume content.
func WithContent(c *config.Content) BuilderOption {
	return func(b *Builder) {
		b.content = c
	}
}

// NewBuilder creates a Builder. Styles and table styles are resolved here so
// that Build only fails on document structure.
func NewBuilder(opts ...BuilderOption) (*Builder, error) {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}

	if b.content == nil {
		c, err := config.Default()
		if err != nil {
			return nil, fmt.Errorf("loading default content: %w", err)
		}
		b.content = c
	}

	b.page = pageFromConfig(b.content.Page)
	if err := b.page.Validate(); err != nil {
		return nil, err
	}

	sheet, err := NewStyleSheet(styleDefsFromConfig(b.content.Styles))
	if err != nil {
		return nil, fmt.Errorf("resolving styles: %w", err)
	}
	b.sheet = sheet

	b.tableStyles = make(map[string]TableStyle, len(b.content.TableStyles))
	for _, ts := range b.content.TableStyles {
		if _, dup := b.tableStyles[ts.Name]; dup {
			return nil, fmt.Errorf("%w: table style %q", ErrDuplicateStyle, ts.Name)
		}
		b.tableStyles[ts.Name] = tableStyleFromConfig(ts)
	}

	return b, nil
}

// StyleSheet returns the resolved styles.
func (b *Builder) StyleSheet() *StyleSheet {
	return b.sheet
}

// Build returns a new document: header, contact table, then every section
// in SectionOrder, each heading followed by its blocks and a spacer.
func (b *Builder) Build() (*Document, error) {
	if err := checkSectionOrder(b.content.Sections); err != nil {
		return nil, err
	}

	doc, err := NewDocument(b.page)
	if err != nil {
		return nil, err
	}

	blocks, err := b.headerBlocks()
	if err != nil {
		return nil, err
	}

	for _, sec := range b.content.Sections {
		sb, err := b.sectionBlocks(sec)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", sec.ID, err)
		}
		blocks = append(blocks, sb...)
	}

	if err := doc.Append(blocks...); err != nil {
		return nil, err
	}
	return doc, nil
}

// Timestamp returns the trailing "generated on" paragraph for now.
func (b *Builder) Timestamp(now time.Time) (*Paragraph, error) {
	ts := b.content.Timestamp
	date, err := dateutil.ResolveDate(ts.Date, now)
	if err != nil {
		return nil, fmt.Errorf("resolving timestamp: %w", err)
	}
	style, err := b.sheet.Lookup(orDefault(ts.Style, "caption"))
	if err != nil {
		return nil, err
	}
	return &Paragraph{Text: ts.Label + date, Style: style}, nil
}

func (b *Builder) headerBlocks() ([]Block, error) {
	h := b.content.Header

	nameStyle, err := b.sheet.Lookup(orDefault(h.NameStyle, "title"))
	if err != nil {
		return nil, err
	}
	blocks := []Block{&Paragraph{Text: h.Name, Style: nameStyle, Level: LevelTitle}}

	if h.Role != "" {
		roleStyle, err := b.sheet.Lookup(orDefault(h.RoleStyle, "subtitle"))
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, &Paragraph{Text: h.Role, Style: roleStyle})
	}

	if h.SpaceAfter > 0 {
		blocks = append(blocks, &Spacer{Height: h.SpaceAfter})
	}

	contact, err := b.table(b.content.Contact.Table())
	if err != nil {
		return nil, fmt.Errorf("contact: %w", err)
	}
	blocks = append(blocks, contact)

	if sp := b.content.Contact.SpaceAfter; sp > 0 {
		blocks = append(blocks, &Spacer{Height: sp})
	}
	return blocks, nil
}

func (b *Builder) sectionBlocks(sec config.SectionConfig) ([]Block, error) {
	heading, err := b.sheet.Lookup(orDefault(b.content.HeadingStyle, "heading"))
	if err != nil {
		return nil, err
	}
	blocks := []Block{&Paragraph{Text: sec.Title, Style: heading, Level: LevelSection}}

	for i, bc := range sec.Blocks {
		blk, err := b.block(bc)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i, err)
		}
		blocks = append(blocks, blk)
	}

	if sec.SpaceAfter > 0 {
		blocks = append(blocks, &Spacer{Height: sec.SpaceAfter})
	}
	return blocks, nil
}

func (b *Builder) block(bc config.BlockConfig) (Block, error) {
	kind, err := bc.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case config.KindSpacer:
		return NewSpacer(*bc.Spacer)
	case config.KindTable:
		return b.table(bc.Table)
	}

	style, err := b.sheet.Lookup(orDefault(bc.Style, orDefault(b.content.BodyStyle, "body")))
	if err != nil {
		return nil, err
	}
	if kind == config.KindList {
		return &List{Items: append([]string(nil), bc.List...), Style: style}, nil
	}
	return &Paragraph{Text: bc.Paragraph, Style: style}, nil
}

func (b *Builder) table(tc *config.TableConfig) (*Table, error) {
	ts, ok := b.tableStyles[tc.Style]
	if !ok {
		return nil, fmt.Errorf("%w: table style %q", ErrUnknownStyle, tc.Style)
	}
	return NewTable(tc.Rows, tc.Columns, ts)
}

// checkSectionOrder requires each canonical section exactly once, in order.
func checkSectionOrder(sections []config.SectionConfig) error {
	if len(sections) != len(SectionOrder) {
		return fmt.Errorf("%w: got %d sections, want %d", ErrSectionOrder, len(sections), len(SectionOrder))
	}
	for i, sec := range sections {
		if sec.ID != SectionOrder[i] {
			return fmt.Errorf("%w: position %d is %q, want %q", ErrSectionOrder, i, sec.ID, SectionOrder[i])
		}
	}
	return nil
}

func pageFromConfig(p config.PageConfig) *PageSettings {
	page := DefaultPageSettings()
	if p.Size != "" {
		page.Size = p.Size
	}
	if p.Orientation != "" {
		page.Orientation = p.Orientation
	}
	if p.Margins != (config.MarginsConfig{}) {
		page.Margins = Margins(p.Margins)
	}
	return page
}

func styleDefsFromConfig(cs []config.StyleConfig) []StyleDef {
	defs := make([]StyleDef, len(cs))
	for i, c := range cs {
		defs[i] = StyleDef{
			Name:        c.Name,
			Parent:      c.Parent,
			FontFamily:  c.FontFamily,
			FontSize:    c.FontSize,
			Color:       c.Color,
			Bold:        c.Bold,
			Italic:      c.Italic,
			LineHeight:  c.LineHeight,
			SpaceBefore: c.SpaceBefore,
			SpaceAfter:  c.SpaceAfter,
		}
		if c.Align != nil {
			a := Alignment(*c.Align)
			defs[i].Align = &a
		}
	}
	return defs
}

func tableStyleFromConfig(c config.TableStyleConfig) TableStyle {
	align := make([]Alignment, len(c.Align))
	for i, a := range c.Align {
		align[i] = Alignment(a)
	}
	return TableStyle{
		Name:       c.Name,
		FontFamily: c.FontFamily,
		FontSize:   c.FontSize,
		Align:      align,
		VAlign:     VerticalAlign(c.VAlign),
		Padding:    Padding(c.Padding),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
