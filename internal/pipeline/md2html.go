package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrHTMLConversion indicates inline markup could not be converted.
var ErrHTMLConversion = errors.New("HTML conversion failed")

// HighlightStyle is the chroma style used for fenced code blocks.
const HighlightStyle = "github"

// InlineConverter abstracts conversion of block text into HTML nodes.
type InlineConverter interface {
	ToNodes(ctx context.Context, text string) ([]*xhtml.Node, error)
}

// GoldmarkInline converts block text to HTML using goldmark (pure Go).
type GoldmarkInline struct {
	md  goldmark.Markdown
	pre TextPreprocessor
}

// NewGoldmarkInline creates a GoldmarkInline with GFM extensions, hard wraps
// and class-based syntax highlighting for fenced code.
func NewGoldmarkInline() *GoldmarkInline {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(HighlightStyle),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // newline in content is a line break
			html.WithXHTML(),
			// WithUnsafe is not used: ==highlight== goes through placeholders.
		),
	)
	return &GoldmarkInline{md: md, pre: &InlinePreprocessor{}}
}

// ToHTML converts text to an HTML fragment string.
func (c *GoldmarkInline) ToHTML(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text = c.pre.Preprocess(ctx, text)

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return ConvertMarkPlaceholders(buf.String()), nil
}

// ToNodes converts text to detached HTML nodes ready to be appended to a
// block element. A lone wrapping <p> is unwrapped so the caller controls
// the block container.
func (c *GoldmarkInline) ToNodes(ctx context.Context, text string) ([]*xhtml.Node, error) {
	fragment, err := c.ToHTML(ctx, text)
	if err != nil {
		return nil, err
	}

	nodes, err := ParseFragment(fragment)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}
	return unwrapParagraph(nodes), nil
}

// unwrapParagraph returns the children of a single <p> element, ignoring
// surrounding whitespace text. Any other shape is returned unchanged.
func unwrapParagraph(nodes []*xhtml.Node) []*xhtml.Node {
	var para *xhtml.Node
	for _, n := range nodes {
		switch {
		case n.Type == xhtml.TextNode && isBlank(n.Data):
			continue
		case n.Type == xhtml.ElementNode && n.DataAtom == atom.P && para == nil:
			para = n
		default:
			return nodes
		}
	}
	if para == nil {
		return nodes
	}

	var children []*xhtml.Node
	for ch := para.FirstChild; ch != nil; {
		next := ch.NextSibling
		para.RemoveChild(ch)
		children = append(children, ch)
		ch = next
	}
	return children
}

// blockElements are the elements that cannot appear inside a <p>.
var blockElements = map[atom.Atom]bool{
	atom.P: true, atom.Pre: true, atom.Ul: true, atom.Ol: true,
	atom.Dl: true, atom.Div: true, atom.Table: true, atom.Blockquote: true,
	atom.Hr: true, atom.H1: true, atom.H2: true, atom.H3: true,
	atom.H4: true, atom.H5: true, atom.H6: true,
}

// HasBlockContent reports whether any top-level node is a block element,
// meaning the nodes need a block container rather than a paragraph.
func HasBlockContent(nodes []*xhtml.Node) bool {
	for _, n := range nodes {
		if n.Type == xhtml.ElementNode && blockElements[n.DataAtom] {
			return true
		}
	}
	return false
}

// HighlightCSS returns the class-based stylesheet matching the markup
// produced for fenced code blocks.
func HighlightCSS() (string, error) {
	var buf strings.Builder
	f := chromahtml.New(chromahtml.WithClasses(true))
	if err := f.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return "", fmt.Errorf("%w: highlight stylesheet: %v", ErrHTMLConversion, err)
	}
	return buf.String(), nil
}
