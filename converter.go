package cornell

import (
	"context"
	"fmt"
	"strings"
)

// Compile-time interface implementation checks.
var (
	_ documentRenderer = (*htmlRenderer)(nil)
	_ documentRenderer = (*pdfRenderer)(nil)
)

// defaultDocumentTitle is used when neither Input.Title nor
// WithDocumentTitle supplies one.
const defaultDocumentTitle = "Cornell Notes"

// Converter turns Cornell markdown into one output format. Create with
// NewHTMLConverter or NewPDFConverter, call Convert per document, and Close
// when done. A Converter is not safe for concurrent use; construct one per
// goroutine.
type Converter struct {
	cfg      converterConfig
	renderer documentRenderer
}

// NewHTMLConverter creates a Converter producing styled HTML documents.
func NewHTMLConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout, title: defaultDocumentTitle},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.renderer == nil {
		c.renderer = &htmlRenderer{}
	}
	return c
}

// NewPDFConverter creates a Converter producing paginated PDF documents.
// Returns an error if page settings are invalid. PDF generation requires
// Chrome/Chromium; go-rod downloads a managed instance on first use.
func NewPDFConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{timeout: defaultTimeout, title: defaultDocumentTitle},
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}
	if c.cfg.page == nil {
		c.cfg.page = DefaultPageSettings()
	}

	if c.renderer == nil {
		c.renderer = &pdfRenderer{
			page:    c.cfg.page,
			printer: newRodPrinter(c.cfg.timeout),
		}
	}
	return c, nil
}

// Convert parses the source and renders it through the configured renderer.
// The context is used for cancellation and timeout of PDF printing.
func (c *Converter) Convert(ctx context.Context, input Input) ([]byte, error) {
	if strings.TrimSpace(input.Source) == "" {
		return nil, ErrEmptySource
	}

	doc := ParseDocument(input.Source)

	title := input.Title
	if title == "" {
		title = c.cfg.title
	}

	out, err := c.renderer.Render(ctx, doc, title)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	return out, nil
}

// Close releases renderer resources (the headless browser, for PDF).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
