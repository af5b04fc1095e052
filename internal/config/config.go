// Package config decodes and validates the resume content configuration:
// page geometry, style tables, header, contact table, sections and the
// timestamp line.
package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/erd2/yershhhat/internal/assets"
)

// Sentinel errors for content operations.
var (
	ErrEmptyContent    = errors.New("content cannot be empty")
	ErrContentTooLarge = errors.New("content exceeds maximum size")
	ErrContentParse    = errors.New("failed to parse content")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidBlock    = errors.New("invalid content block")
	ErrMissingField    = errors.New("required field is empty")
)

// MaxContentSize limits YAML input to prevent memory exhaustion (1MB).
const MaxContentSize = 1 << 20

// Field length limits, counted in bytes.
const (
	MaxNameLength      = 100  // style, section and table style names
	MaxTitleLength     = 200  // person name, role, section titles
	MaxCellLength      = 300  // table cell text
	MaxParagraphLength = 4000 // paragraph text (multi-byte scripts are ~2 bytes/rune)
	MaxListItemLength  = 1000 // single list item
	MaxLabelLength     = 100  // timestamp label
	MaxDateLength      = 50   // timestamp date expression
	MaxColorLength     = 20   // "#808080" or color name
)

// Content is the complete declarative description of the resume.
type Content struct {
	Page         PageConfig         `yaml:"page"`
	Styles       []StyleConfig      `yaml:"styles"`
	TableStyles  []TableStyleConfig `yaml:"tableStyles"`
	Header       HeaderConfig       `yaml:"header"`
	Contact      ContactConfig      `yaml:"contact"`
	HeadingStyle string             `yaml:"headingStyle"`
	BodyStyle    string             `yaml:"bodyStyle"`
	Sections     []SectionConfig    `yaml:"sections"`
	Timestamp    TimestampConfig    `yaml:"timestamp"`
}

// PageConfig defines page geometry.
type PageConfig struct {
	Size        string        `yaml:"size"`        // "a4", "letter", "legal"
	Orientation string        `yaml:"orientation"` // "portrait", "landscape"
	Margins     MarginsConfig `yaml:"margins"`     // inches
}

// MarginsConfig holds per-side margins in inches.
type MarginsConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// StyleConfig defines a named paragraph style. Nil fields inherit from Parent.
type StyleConfig struct {
	Name        string   `yaml:"name"`
	Parent      string   `yaml:"parent"`
	FontFamily  *string  `yaml:"fontFamily"`
	FontSize    *float64 `yaml:"fontSize"` // points
	Color       *string  `yaml:"color"`
	Align       *string  `yaml:"align"` // "start", "center", "end"
	Bold        *bool    `yaml:"bold"`
	Italic      *bool    `yaml:"italic"`
	LineHeight  *float64 `yaml:"lineHeight"`  // multiple of font size
	SpaceBefore *float64 `yaml:"spaceBefore"` // points
	SpaceAfter  *float64 `yaml:"spaceAfter"`  // points
}

// TableStyleConfig defines the cell rules applied to every cell of a table.
type TableStyleConfig struct {
	Name       string        `yaml:"name"`
	FontFamily string        `yaml:"fontFamily"`
	FontSize   float64       `yaml:"fontSize"`
	Align      []string      `yaml:"align"` // one entry per column
	VAlign     string        `yaml:"valign"`
	Padding    PaddingConfig `yaml:"padding"`
}

// PaddingConfig holds cell padding in points.
type PaddingConfig struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// HeaderConfig defines the name and role lines at the top of the page.
type HeaderConfig struct {
	Name       string  `yaml:"name"`
	NameStyle  string  `yaml:"nameStyle"`
	Role       string  `yaml:"role"`
	RoleStyle  string  `yaml:"roleStyle"`
	SpaceAfter float64 `yaml:"spaceAfter"` // inches
}

// TableConfig defines a table: rows of cells and column widths in inches.
type TableConfig struct {
	Style   string     `yaml:"style"`
	Columns []float64  `yaml:"columns"`
	Rows    [][]string `yaml:"rows"`
}

// ContactConfig is the contact table with the space that follows it.
type ContactConfig struct {
	Style      string     `yaml:"style"`
	Columns    []float64  `yaml:"columns"`
	Rows       [][]string `yaml:"rows"`
	SpaceAfter float64    `yaml:"spaceAfter"` // inches
}

// Table returns the contact data as a table definition.
func (c ContactConfig) Table() *TableConfig {
	return &TableConfig{Style: c.Style, Columns: c.Columns, Rows: c.Rows}
}

// SectionConfig is one titled resume section.
type SectionConfig struct {
	ID         string        `yaml:"id"`
	Title      string        `yaml:"title"`
	Blocks     []BlockConfig `yaml:"blocks"`
	SpaceAfter float64       `yaml:"spaceAfter"` // inches
}

// BlockConfig holds exactly one of Paragraph, List, Table or Spacer.
// Style overrides the content body style for paragraphs and lists.
type BlockConfig struct {
	Paragraph string       `yaml:"paragraph"`
	List      []string     `yaml:"list"`
	Table     *TableConfig `yaml:"table"`
	Spacer    *float64     `yaml:"spacer"` // inches
	Style     string       `yaml:"style"`
}

// Block kinds reported by BlockConfig.Kind.
const (
	KindParagraph = "paragraph"
	KindList      = "list"
	KindTable     = "table"
	KindSpacer    = "spacer"
)

// Kind returns which block variant is set.
// Returns ErrInvalidBlock if none or more than one is set.
func (b BlockConfig) Kind() (string, error) {
	var kinds []string
	if b.Paragraph != "" {
		kinds = append(kinds, KindParagraph)
	}
	if len(b.List) > 0 {
		kinds = append(kinds, KindList)
	}
	if b.Table != nil {
		kinds = append(kinds, KindTable)
	}
	if b.Spacer != nil {
		kinds = append(kinds, KindSpacer)
	}

	switch len(kinds) {
	case 0:
		return "", fmt.Errorf("%w: no paragraph, list, table or spacer", ErrInvalidBlock)
	case 1:
		return kinds[0], nil
	default:
		return "", fmt.Errorf("%w: multiple kinds set %v", ErrInvalidBlock, kinds)
	}
}

// TimestampConfig defines the trailing "generated on" line.
type TimestampConfig struct {
	Label string `yaml:"label"`
	Date  string `yaml:"date"` // "auto:FORMAT", see dateutil.ResolveDate
	Style string `yaml:"style"`
}

// Load decodes content from YAML, rejecting unknown fields, and validates it.
func Load(data []byte) (*Content, error) {
	if len(data) == 0 {
		return nil, ErrEmptyContent
	}
	if len(data) > MaxContentSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrContentTooLarge, len(data), MaxContentSize)
	}

	var c Content
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentParse, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Default loads the content shipped with the binary.
func Default() (*Content, error) {
	data, err := assets.LoadContent(assets.DefaultContentName)
	if err != nil {
		return nil, fmt.Errorf("loading embedded content: %w", err)
	}
	return Load(data)
}

// Validate checks required fields, field lengths and block shapes.
// Semantic checks (style references, section order, table geometry) are the
// document builder's job.
func (c *Content) Validate() error {
	if err := requireField("header.name", c.Header.Name); err != nil {
		return err
	}
	if err := validateFieldLength("header.name", c.Header.Name, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("header.role", c.Header.Role, MaxTitleLength); err != nil {
		return err
	}

	for i, s := range c.Styles {
		field := fmt.Sprintf("styles[%d]", i)
		if err := requireField(field+".name", s.Name); err != nil {
			return err
		}
		if err := validateFieldLength(field+".name", s.Name, MaxNameLength); err != nil {
			return err
		}
		if s.Color != nil {
			if err := validateFieldLength(field+".color", *s.Color, MaxColorLength); err != nil {
				return err
			}
		}
	}

	for i, ts := range c.TableStyles {
		field := fmt.Sprintf("tableStyles[%d]", i)
		if err := requireField(field+".name", ts.Name); err != nil {
			return err
		}
		if err := validateFieldLength(field+".name", ts.Name, MaxNameLength); err != nil {
			return err
		}
	}

	if err := validateTable("contact", c.Contact.Table()); err != nil {
		return err
	}

	if len(c.Sections) == 0 {
		return fmt.Errorf("%w: sections", ErrMissingField)
	}
	for i, s := range c.Sections {
		if err := validateSection(fmt.Sprintf("sections[%d]", i), s); err != nil {
			return err
		}
	}

	if err := validateFieldLength("timestamp.label", c.Timestamp.Label, MaxLabelLength); err != nil {
		return err
	}
	if err := validateFieldLength("timestamp.date", c.Timestamp.Date, MaxDateLength); err != nil {
		return err
	}

	return nil
}

// validateSection checks one section and its blocks.
func validateSection(field string, s SectionConfig) error {
	if err := requireField(field+".id", s.ID); err != nil {
		return err
	}
	if err := requireField(field+".title", s.Title); err != nil {
		return err
	}
	if err := validateFieldLength(field+".title", s.Title, MaxTitleLength); err != nil {
		return err
	}
	if len(s.Blocks) == 0 {
		return fmt.Errorf("%w: %s.blocks", ErrMissingField, field)
	}

	for j, b := range s.Blocks {
		blockField := fmt.Sprintf("%s.blocks[%d]", field, j)
		kind, err := b.Kind()
		if err != nil {
			return fmt.Errorf("%s: %w", blockField, err)
		}

		switch kind {
		case KindParagraph:
			if err := validateFieldLength(blockField+".paragraph", b.Paragraph, MaxParagraphLength); err != nil {
				return err
			}
		case KindList:
			for k, item := range b.List {
				if err := validateFieldLength(fmt.Sprintf("%s.list[%d]", blockField, k), item, MaxListItemLength); err != nil {
					return err
				}
			}
		case KindTable:
			if err := validateTable(blockField+".table", b.Table); err != nil {
				return err
			}
		}
	}
	return nil
}

// validateTable checks cell lengths; geometry is checked by the builder.
func validateTable(field string, t *TableConfig) error {
	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: %s.rows", ErrMissingField, field)
	}
	for r, row := range t.Rows {
		for col, cell := range row {
			if err := validateFieldLength(fmt.Sprintf("%s.rows[%d][%d]", field, r, col), cell, MaxCellLength); err != nil {
				return err
			}
		}
	}
	return nil
}

// requireField reports an empty required field.
func requireField(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, fieldName)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}
