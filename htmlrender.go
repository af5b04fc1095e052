package resume

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/erd2/yershhhat/internal/pipeline"
)

// Document language and fallback title for the generated HTML.
const (
	documentLang  = "ru"
	fallbackTitle = "Resume"
)

// htmlRenderer lays out blocks as a standalone HTML5 document.
type htmlRenderer struct {
	inline  pipeline.InlineConverter
	css     pipeline.CSSInjector
	baseCSS string
	codeCSS string // fenced code highlighting rules
}

// render builds the document tree for blocks and serializes it.
func (r *htmlRenderer) render(ctx context.Context, blocks []Block) (string, error) {
	doc, _, body := pipeline.NewDocument(documentLang, documentTitle(blocks))

	var styles []Style
	var tables []TableStyle
	seenStyle := make(map[string]bool)
	seenTable := make(map[string]bool)

	for i, b := range blocks {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var node *html.Node
		var err error

		switch v := b.(type) {
		case *Paragraph:
			node, err = r.paragraph(ctx, v)
			if !seenStyle[v.Style.Name] {
				seenStyle[v.Style.Name] = true
				styles = append(styles, v.Style)
			}
		case *List:
			node, err = r.list(ctx, v)
			if !seenStyle[v.Style.Name] {
				seenStyle[v.Style.Name] = true
				styles = append(styles, v.Style)
			}
		case *Table:
			node = tableNode(v)
			if !seenTable[v.Style.Name] {
				seenTable[v.Style.Name] = true
				tables = append(tables, v.Style)
			}
		case *Spacer:
			node = pipeline.Element(atom.Div, "class", "block-spacer", "style", "height: "+formatInches(v.Height))
		default:
			err = fmt.Errorf("unsupported block type %T", b)
		}
		if err != nil {
			return "", fmt.Errorf("%w: block %d: %v", ErrHTMLRender, i, err)
		}
		body.AppendChild(node)
	}

	if err := r.css.InjectCSS(ctx, doc, r.stylesheet(styles, tables)); err != nil {
		return "", fmt.Errorf("%w: injecting CSS: %v", ErrHTMLRender, err)
	}

	out, err := pipeline.Render(doc)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}
	return out, nil
}

// stylesheet combines the base CSS with generated rules.
// Order matters: base rules first, generated rules override them.
func (r *htmlRenderer) stylesheet(styles []Style, tables []TableStyle) string {
	var buf strings.Builder
	buf.WriteString(r.baseCSS)
	buf.WriteString(r.codeCSS)
	buf.WriteString(buildPageBreaksCSS())
	buf.WriteString(buildStyleCSS(styles))
	for _, ts := range tables {
		buf.WriteString(buildTableCSS(ts))
	}
	return buf.String()
}

// paragraph renders body text as <p>, or as <div class="block-text"> when
// the converted text holds block elements such as code or nested lists.
// Headings only accept inline content.
func (r *htmlRenderer) paragraph(ctx context.Context, p *Paragraph) (*html.Node, error) {
	nodes, err := r.inline.ToNodes(ctx, p.Text)
	if err != nil {
		return nil, err
	}
	block := pipeline.HasBlockContent(nodes)

	a, class := atom.P, styleClass(p.Style.Name)
	switch {
	case p.Level == LevelTitle:
		a = atom.H1
	case p.Level == LevelSection:
		a = atom.H2
	case block:
		a, class = atom.Div, "block-text "+class
	}
	if block && a != atom.Div {
		return nil, fmt.Errorf("heading %q must be inline text", p.Text)
	}

	n := pipeline.Element(a, "class", class)
	for _, c := range nodes {
		n.AppendChild(c)
	}
	return n, nil
}

func (r *htmlRenderer) list(ctx context.Context, l *List) (*html.Node, error) {
	ul := pipeline.Element(atom.Ul, "class", "block-list "+styleClass(l.Style.Name))
	for _, item := range l.Items {
		li := pipeline.Element(atom.Li)
		if err := r.appendInline(ctx, li, item); err != nil {
			return nil, err
		}
		ul.AppendChild(li)
	}
	return ul, nil
}

func (r *htmlRenderer) appendInline(ctx context.Context, parent *html.Node, text string) error {
	nodes, err := r.inline.ToNodes(ctx, text)
	if err != nil {
		return err
	}
	for _, n := range nodes {
		parent.AppendChild(n)
	}
	return nil
}

// tableNode renders cells as plain text; markup in cells is not interpreted.
func tableNode(t *Table) *html.Node {
	table := pipeline.Element(atom.Table,
		"class", "block-table "+tableClass(t.Style.Name),
		"style", "width: "+formatInches(t.Width()),
	)

	cols := pipeline.Element(atom.Colgroup)
	for _, w := range t.Columns {
		cols.AppendChild(pipeline.Element(atom.Col, "style", "width: "+formatInches(w)))
	}
	table.AppendChild(cols)

	tbody := pipeline.Element(atom.Tbody)
	for _, row := range t.Rows {
		tr := pipeline.Element(atom.Tr)
		for _, cell := range row {
			td := pipeline.Element(atom.Td)
			td.AppendChild(pipeline.Text(cell))
			tr.AppendChild(td)
		}
		tbody.AppendChild(tr)
	}
	table.AppendChild(tbody)
	return table
}

// documentTitle uses the first title paragraph as the HTML title.
func documentTitle(blocks []Block) string {
	for _, b := range blocks {
		if p, ok := b.(*Paragraph); ok && p.Level == LevelTitle {
			return p.Text
		}
	}
	return fallbackTitle
}
