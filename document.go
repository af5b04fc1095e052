package resume

import (
	"fmt"
	"sync"
)

// Document is an ordered, append-only sequence of blocks with page
// geometry. It is rendered exactly once; after that it is consumed and
// further Append or Render calls fail with ErrDocumentConsumed.
type Document struct {
	mu       sync.Mutex
	page     PageSettings
	blocks   []Block
	consumed bool
}

// NewDocument creates an empty document. A nil page means
// DefaultPageSettings.
func NewDocument(page *PageSettings) (*Document, error) {
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return &Document{page: *page}, nil
}

// Append adds blocks to the end of the document in the order given.
// Nothing is appended if any block is nil.
func (d *Document) Append(blocks ...Block) error {
	for i, b := range blocks {
		if isNilBlock(b) {
			return fmt.Errorf("%w: argument %d", ErrNilBlock, i)
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.consumed {
		return ErrDocumentConsumed
	}
	d.blocks = append(d.blocks, blocks...)
	return nil
}

// Blocks returns a copy of the block sequence.
func (d *Document) Blocks() []Block {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Block(nil), d.blocks...)
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.blocks)
}

// Page returns the page geometry.
func (d *Document) Page() PageSettings {
	return d.page
}

// Consumed reports whether the document has been rendered.
func (d *Document) Consumed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.consumed
}

// take marks the document consumed and returns its blocks.
func (d *Document) take() ([]Block, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.consumed {
		return nil, ErrDocumentConsumed
	}
	d.consumed = true
	return d.blocks, nil
}

// isNilBlock catches both untyped nil and typed nil pointers.
func isNilBlock(b Block) bool {
	switch v := b.(type) {
	case nil:
		return true
	case *Paragraph:
		return v == nil
	case *List:
		return v == nil
	case *Table:
		return v == nil
	case *Spacer:
		return v == nil
	}
	return false
}
