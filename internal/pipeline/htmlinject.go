package pipeline

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoHead indicates the document has no <head> to receive a stylesheet.
var ErrNoHead = errors.New("document has no head element")

// CSSInjector defines the contract for CSS injection into a document tree.
type CSSInjector interface {
	InjectCSS(ctx context.Context, doc *html.Node, cssContent string) error
}

// CSSInjection appends <style> blocks to the document head.
type CSSInjection struct{}

// InjectCSS appends a <style> element holding cssContent to the first <head>
// of doc. Empty CSS is a no-op. CSS content is sanitized so it cannot close
// the style element early.
func (s *CSSInjection) InjectCSS(ctx context.Context, doc *html.Node, cssContent string) error {
	if cssContent == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	heads := FindAll(doc, atom.Head)
	if len(heads) == 0 {
		return ErrNoHead
	}

	style := Element(atom.Style)
	style.AppendChild(Text(sanitizeCSS(cssContent)))
	heads[0].AppendChild(style)
	return nil
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
