package pipeline

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewDocument returns an empty HTML5 document tree with <html lang>, <head>
// carrying charset and title, and an empty <body>. It also returns head and
// body for direct appends.
func NewDocument(lang, title string) (doc, head, body *html.Node) {
	doc = &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := Element(atom.Html, "lang", lang)
	doc.AppendChild(root)

	head = Element(atom.Head)
	head.AppendChild(Element(atom.Meta, "charset", "utf-8"))
	t := Element(atom.Title)
	t.AppendChild(Text(title))
	head.AppendChild(t)
	root.AppendChild(head)

	body = Element(atom.Body)
	root.AppendChild(body)
	return doc, head, body
}

// Element creates a detached element node. attrs are key/value pairs; an
// odd trailing key is ignored.
func Element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Text creates a detached text node. Escaping happens at render time.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// Attr returns the value of the named attribute, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindAll returns every element below n (n included) with the given atom,
// in document order.
func FindAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return out
}

// TextContent concatenates all text nodes below n.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for ch := c.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	walk(n)
	return b.String()
}

// Parse parses a full HTML document.
func Parse(content string) (*html.Node, error) {
	return html.Parse(strings.NewReader(content))
}

// ParseFragment parses an HTML fragment in <body> context so that no
// <html>/<body> wrapper is added.
func ParseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

// Render serializes a node tree.
func Render(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// isBlank reports whether s contains only whitespace.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
