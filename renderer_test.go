package resume

// Notes:
// - Render/WriteFile run against mockConverter; no browser is launched.
// - The read-only directory case is skipped when running as root, since
//   root ignores directory permissions.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// mockConverter implements pdfConverter for testing.
type mockConverter struct {
	Result   []byte
	Err      error
	Panic    bool
	Calls    int
	LastHTML string
	LastOpts *pdfOptions
	Closed   bool
}

func (m *mockConverter) ToPDF(ctx context.Context, htmlContent string, opts *pdfOptions) ([]byte, error) {
	m.Calls++
	if m.Panic {
		panic("renderer exploded")
	}
	m.LastHTML = htmlContent
	m.LastOpts = opts
	return m.Result, m.Err
}

func (m *mockConverter) Close() error {
	m.Closed = true
	return nil
}

// fakePDF is returned by successful mocks.
var fakePDF = []byte("%PDF-1.4\n% resume\n%%EOF\n")

// ---------------------------------------------------------------------------
// TestRenderer_Render - Consume and convert
// ---------------------------------------------------------------------------

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	_, doc := buildDefault(t)
	mock := &mockConverter{Result: fakePDF}
	r := newTestRenderer(t, mock)

	got, err := r.Render(context.Background(), doc)
	if err != nil {
		t.Fatalf("Render() unexpected error: %v", err)
	}
	if string(got) != string(fakePDF) {
		t.Errorf("Render() = %q, want mock PDF", got)
	}
	if !strings.Contains(mock.LastHTML, "TOLEUBAYEV YERSHAT") {
		t.Error("converter should receive the rendered HTML")
	}
	if mock.LastOpts == nil || mock.LastOpts.Page != *DefaultPageSettings() {
		t.Errorf("converter page = %+v, want document page", mock.LastOpts)
	}

	if _, err := r.Render(context.Background(), doc); !errors.Is(err, ErrDocumentConsumed) {
		t.Errorf("second Render() error = %v, want %v", err, ErrDocumentConsumed)
	}
	if mock.Calls != 1 {
		t.Errorf("converter calls = %d, want 1", mock.Calls)
	}
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mock    *mockConverter
		wantErr error
		wantMsg string
	}{
		{name: "browser connect", mock: &mockConverter{Err: ErrBrowserConnect}, wantErr: ErrBrowserConnect},
		{name: "pdf generation", mock: &mockConverter{Err: ErrPDFGeneration}, wantErr: ErrPDFGeneration},
		{name: "panic recovered", mock: &mockConverter{Panic: true}, wantMsg: "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, doc := buildDefault(t)
			r := newTestRenderer(t, tt.mock)

			_, err := r.Render(context.Background(), doc)
			if err == nil {
				t.Fatal("Render() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Render() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Render() error = %q, want containing %q", err, tt.wantMsg)
			}
			if !doc.Consumed() {
				t.Error("failed Render() still consumes the document")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_WriteFile - Output file handling
// ---------------------------------------------------------------------------

func TestRenderer_WriteFile(t *testing.T) {
	t.Parallel()

	_, doc := buildDefault(t)
	r := newTestRenderer(t, &mockConverter{Result: fakePDF})
	path := filepath.Join(t.TempDir(), "Toleubayev_Yershat_Resume.pdf")

	if err := r.WriteFile(context.Background(), doc, path); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != string(fakePDF) {
		t.Errorf("file content = %q, want mock PDF", data)
	}

	info, _ := os.Stat(path)
	if perm := info.Mode().Perm(); perm&0o644 != 0o644 {
		t.Errorf("file mode = %v, want at least 0644", perm)
	}
}

func TestRenderer_WriteFile_Overwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.pdf")
	if err := os.WriteFile(path, []byte(strings.Repeat("old", 100)), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, doc := buildDefault(t)
	r := newTestRenderer(t, &mockConverter{Result: fakePDF})
	if err := r.WriteFile(context.Background(), doc, path); err != nil {
		t.Fatalf("WriteFile() unexpected error: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != string(fakePDF) {
		t.Errorf("file not truncated: %q", data)
	}
}

func TestRenderer_WriteFile_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, doc := buildDefault(t)
	r := newTestRenderer(t, &mockConverter{Result: fakePDF})
	path := filepath.Join(t.TempDir(), "missing", "out.pdf")

	err := r.WriteFile(context.Background(), doc, path)
	if !errors.Is(err, ErrWritePDF) {
		t.Errorf("WriteFile() error = %v, want %v", err, ErrWritePDF)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("WriteFile() error = %v, should wrap %v", err, os.ErrNotExist)
	}
}

func TestRenderer_WriteFile_ReadOnlyDirectory(t *testing.T) {
	t.Parallel()

	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	_, doc := buildDefault(t)
	r := newTestRenderer(t, &mockConverter{Result: fakePDF})
	path := filepath.Join(dir, "out.pdf")

	err := r.WriteFile(context.Background(), doc, path)
	if !errors.Is(err, ErrWritePDF) || !errors.Is(err, os.ErrPermission) {
		t.Errorf("WriteFile() error = %v, want %v wrapping %v", err, ErrWritePDF, os.ErrPermission)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created in a read-only directory")
	}
}

func TestRenderer_WriteFile_RenderFailureCreatesNothing(t *testing.T) {
	t.Parallel()

	_, doc := buildDefault(t)
	r := newTestRenderer(t, &mockConverter{Err: ErrPageLoad})
	path := filepath.Join(t.TempDir(), "out.pdf")

	err := r.WriteFile(context.Background(), doc, path)
	if !errors.Is(err, ErrPageLoad) {
		t.Errorf("WriteFile() error = %v, want %v", err, ErrPageLoad)
	}
	if errors.Is(err, ErrWritePDF) {
		t.Error("browser failures are not write errors")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should be created when rendering fails")
	}
}

// ---------------------------------------------------------------------------
// TestNewRenderer - Construction
// ---------------------------------------------------------------------------

func TestNewRenderer_Defaults(t *testing.T) {
	t.Parallel()

	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() unexpected error: %v", err)
	}
	defer r.Close()

	if r.timeout != defaultTimeout {
		t.Errorf("timeout = %v, want %v", r.timeout, defaultTimeout)
	}
	if _, ok := r.pdf.(*rodConverter); !ok {
		t.Errorf("pdf backend = %T, want *rodConverter", r.pdf)
	}
	if !strings.Contains(r.html.baseCSS, "block-list") {
		t.Error("base stylesheet not loaded")
	}
}

func TestRenderer_Close(t *testing.T) {
	t.Parallel()

	mock := &mockConverter{}
	r := newTestRenderer(t, mock)
	if err := r.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !mock.Closed {
		t.Error("Close() should close the PDF backend")
	}
}

func TestWithTimeout_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("WithTimeout(0) should panic")
		}
	}()
	WithTimeout(0)
}
