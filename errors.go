package resume

import "errors"

// Sentinel errors for library operations.
var (
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrHTMLRender     = errors.New("HTML rendering failed")

	// ErrWritePDF reports that the output file could not be created or
	// written. The underlying OS error stays reachable through errors.Is.
	ErrWritePDF = errors.New("failed to write PDF file")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Style errors.
	ErrUnknownStyle   = errors.New("unknown style")
	ErrDuplicateStyle = errors.New("duplicate style")
	ErrStyleCycle     = errors.New("style inheritance cycle")
	ErrInvalidStyle   = errors.New("invalid style attribute")

	// Document errors.
	ErrInvalidTable     = errors.New("invalid table")
	ErrInvalidSpacer    = errors.New("invalid spacer height")
	ErrNilBlock         = errors.New("nil content block")
	ErrDocumentConsumed = errors.New("document already rendered")
	ErrSectionOrder     = errors.New("sections out of order")
)
