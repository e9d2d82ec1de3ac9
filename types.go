package cornell

import (
	"fmt"
	"strings"
	"time"
)

// BlockKind identifies the structural element a ContentBlock represents.
type BlockKind int

// Block kinds, in the order the scanner recognizes them.
const (
	BlockTitle BlockKind = iota
	BlockSectionHeader
	BlockSummaryText
	BlockCueNotesTable
	BlockParagraph
	BlockSectionBreak
)

// String returns the block kind name for debugging and test output.
func (k BlockKind) String() string {
	switch k {
	case BlockTitle:
		return "Title"
	case BlockSectionHeader:
		return "SectionHeader"
	case BlockSummaryText:
		return "SummaryText"
	case BlockCueNotesTable:
		return "CueNotesTable"
	case BlockParagraph:
		return "Paragraph"
	case BlockSectionBreak:
		return "SectionBreak"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// CueNote is one row of a Cornell table: a short prompt and its elaboration.
// Notes may contain the LineBreak marker where continuation rows were merged.
type CueNote struct {
	Cue   string
	Notes string
}

// LineBreak marks an explicit line break inside merged table notes.
// Renderers translate it to their native line-break construct.
const LineBreak = "<br/>"

// ContentBlock is one recognized structural element of the source document.
// Title, SectionHeader, SummaryText, and Paragraph carry Text; CueNotesTable
// carries Rows. Text fields hold raw dialect text; normalization happens in
// the renderers, so a single parse serves both output formats.
type ContentBlock struct {
	Kind BlockKind
	Text string
	Rows []CueNote
}

// Document is the parsed form of one notes file: an ordered block sequence.
// Block order matches source line order.
type Document struct {
	Blocks []ContentBlock
}

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin = 0.25
	MaxMargin = 3.0

	// Original layout: 0.75in sides, 1in top and bottom.
	DefaultSideMargin     = 0.75
	DefaultVerticalMargin = 1.0
)

// Paper dimensions in inches, portrait.
const (
	letterWidthInches  = 8.5
	letterHeightInches = 11.0
	a4WidthInches      = 8.27
	a4HeightInches     = 11.69
)

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "letter", "a4"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, left and right; top/bottom add 0.25in
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultSideMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}
	switch strings.ToLower(p.Size) {
	case PageSizeLetter, PageSizeA4:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}
	switch strings.ToLower(p.Orientation) {
	case "", OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}
	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}
	return nil
}

// paperSize returns the paper width and height in inches, orientation applied.
func (p *PageSettings) paperSize() (width, height float64) {
	width, height = letterWidthInches, letterHeightInches
	if p != nil && strings.ToLower(p.Size) == PageSizeA4 {
		width, height = a4WidthInches, a4HeightInches
	}
	if p != nil && strings.ToLower(p.Orientation) == OrientationLandscape {
		width, height = height, width
	}
	return width, height
}

// sideMargin returns the left/right margin in inches.
func (p *PageSettings) sideMargin() float64 {
	if p == nil || p.Margin == 0 {
		return DefaultSideMargin
	}
	return p.Margin
}

// Input contains conversion parameters.
type Input struct {
	Source string // Cornell markdown content (required)
	Title  string // Document title for the HTML <title> (optional)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	page    *PageSettings
	title   string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("cornell: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithPageSettings sets PDF page settings. Ignored by the HTML converter.
func WithPageSettings(p *PageSettings) Option {
	return func(c *Converter) {
		c.cfg.page = p
	}
}

// WithDocumentTitle sets the default HTML document title used when
// Input.Title is empty.
func WithDocumentTitle(title string) Option {
	return func(c *Converter) {
		c.cfg.title = title
	}
}
