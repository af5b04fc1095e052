// Package resume builds a one-page resume and prints it to PDF using
// headless Chrome.
//
// # Quick Start
//
// Build the document, add the generation date and write the file:
//
//	b, err := resume.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	stamp, _ := b.Timestamp(time.Now())
//	_ = doc.Append(stamp)
//
//	r, err := resume.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	if err := r.WriteFile(ctx, doc, "Toleubayev_Yershat_Resume.pdf"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Rendering Pipeline
//
//  1. Content configuration (embedded YAML) is resolved into styles and blocks
//  2. Blocks are laid out as one HTML flow; paragraph and list text goes
//     through Goldmark for **bold**, ==highlight== and hard line breaks
//  3. Generated CSS (styles, table rules, page breaks) is injected into the head
//  4. Chrome prints the page with the document's size and margins (go-rod)
//
// # Documents
//
// A Document is append-only and rendered once. Render and WriteFile consume
// it; further calls return ErrDocumentConsumed. HTML does not consume it and
// is meant for inspection and tests.
//
// # Errors
//
// Failures are reported through sentinel errors that can be checked with
// errors.Is: ErrWritePDF for output file problems, ErrBrowserConnect,
// ErrPageCreate, ErrPageLoad and ErrPDFGeneration for the browser, and
// ErrSectionOrder, ErrInvalidTable, ErrUnknownStyle and ErrStyleCycle for
// content problems.
package resume
