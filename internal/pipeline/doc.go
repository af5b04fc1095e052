// Package pipeline turns resume text into HTML building blocks.
//
// It covers the stages between the typed document and the browser:
//   - text preprocessing (line normalization, highlight syntax)
//   - inline markup to HTML via Goldmark
//   - DOM parsing and rendering helpers over golang.org/x/net/html
//   - stylesheet injection into the document head
//
// PDF generation is handled by the root resume package using headless
// Chrome (go-rod). The pipeline never touches the browser.
package pipeline
