package resume

import (
	"context"
	"fmt"
	"time"

	"github.com/erd2/yershhhat/internal/assets"
	"github.com/erd2/yershhhat/internal/fileutil"
	"github.com/erd2/yershhhat/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.TextPreprocessor = (*pipeline.InlinePreprocessor)(nil)
	_ pipeline.InlineConverter  = (*pipeline.GoldmarkInline)(nil)
	_ pipeline.CSSInjector      = (*pipeline.CSSInjection)(nil)
	_ pdfConverter              = (*rodConverter)(nil)
	_ pdfRenderer               = (*rodRenderer)(nil)
)

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// outputFileMode is the permission of written PDF files.
const outputFileMode = 0o644

// Renderer lays out documents and prints them to PDF with headless Chrome.
// Create with NewRenderer and Close when done; the browser is launched on
// first use.
type Renderer struct {
	timeout time.Duration
	html    *htmlRenderer
	pdf     pdfConverter
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets the page load timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resume: WithTimeout duration must be positive")
	}
	return func(r *Renderer) {
		r.timeout = d
	}
}

// NewRenderer creates a Renderer with the embedded base stylesheet.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{timeout: defaultTimeout}
	for _, opt := range opts {
		opt(r)
	}

	css, err := assets.LoadStyle(assets.DefaultStyleName)
	if err != nil {
		return nil, fmt.Errorf("loading base style: %w", err)
	}

	codeCSS, err := pipeline.HighlightCSS()
	if err != nil {
		return nil, err
	}

	r.html = &htmlRenderer{
		inline:  pipeline.NewGoldmarkInline(),
		css:     &pipeline.CSSInjection{},
		baseCSS: css,
		codeCSS: codeCSS,
	}
	if r.pdf == nil {
		r.pdf = newRodConverter(r.timeout)
	}
	return r, nil
}

// HTML returns the intermediate HTML for doc without consuming it.
func (r *Renderer) HTML(ctx context.Context, doc *Document) (string, error) {
	if doc.Consumed() {
		return "", ErrDocumentConsumed
	}
	return r.html.render(ctx, doc.Blocks())
}

// Render consumes doc and returns the PDF bytes. The document is consumed
// even if rendering fails.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, doc *Document) (pdf []byte, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()

	blocks, err := doc.take()
	if err != nil {
		return nil, err
	}

	htmlContent, err := r.html.render(ctx, blocks)
	if err != nil {
		return nil, err
	}

	page := doc.Page()
	pdf, err = r.pdf.ToPDF(ctx, htmlContent, &pdfOptions{Page: page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	return pdf, nil
}

// WriteFile renders doc and writes the PDF to path. The file is only created
// after rendering succeeds, so browser failures leave nothing behind.
// Failures to create or write the file wrap ErrWritePDF and the OS error.
func (r *Renderer) WriteFile(ctx context.Context, doc *Document, path string) error {
	data, err := r.Render(ctx, doc)
	if err != nil {
		return err
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := fileutil.WriteFileSync(path, data, outputFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrWritePDF, err)
	}
	return nil
}

// Close releases resources (headless Chrome browser).
func (r *Renderer) Close() error {
	if r.pdf != nil {
		return r.pdf.Close()
	}
	return nil
}
