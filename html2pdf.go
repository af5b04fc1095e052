package resume

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/erd2/yershhhat/internal/fileutil"
	"github.com/erd2/yershhhat/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion to allow different backends.
type pdfConverter interface {
	ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer abstracts PDF rendering from an HTML file to enable testing without a browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfOptions holds options for PDF generation.
type pdfOptions struct {
	Page PageSettings
}

// rodRenderer implements pdfRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.launcher = l

	r.browser = rod.New().ControlURL(u)
	if err := r.browser.Connect(); err != nil {
		r.browser = nil
		r.release()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Close releases browser resources and kills the browser process group.
func (r *rodRenderer) Close() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	r.release()
	return err
}

// release kills the launched process tree and removes its profile directory.
func (r *rodRenderer) release() {
	if r.launcher == nil {
		return
	}
	process.KillProcessGroup(r.launcher.PID())
	r.launcher.Kill()
	r.launcher.Cleanup()
	r.launcher = nil
}

// RenderFromFile opens a local HTML file in headless Chrome and renders it to PDF.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Context(ctx).Timeout(timeout).WaitLoad(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	reader, err := page.Context(ctx).PDF(buildPDFOptions(opts))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}

	return pdfBuf, nil
}

// buildPDFOptions constructs proto.PagePrintToPDF from the page geometry.
// A nil opts uses DefaultPageSettings.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	page := DefaultPageSettings()
	if opts != nil {
		page = &opts.Page
	}
	width, height := page.Dimensions()

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(page.Margins.Top),
		MarginBottom:    floatPtr(page.Margins.Bottom),
		MarginLeft:      floatPtr(page.Margins.Left),
		MarginRight:     floatPtr(page.Margins.Right),
		PrintBackground: true,
	}
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter converts HTML to PDF using headless Chrome via go-rod.
type rodConverter struct {
	renderer pdfRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout),
	}
}

// ToPDF writes the HTML to a temporary file and prints it with Chrome.
func (c *rodConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
