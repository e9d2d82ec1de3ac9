// Package cornell converts Cornell-style study notes, written in a small
// markdown dialect with embedded LaTeX math, into presentation formats.
//
// # Quick Start
//
// Create a converter for the target format, convert, and close when done:
//
//	conv := cornell.NewHTMLConverter()
//	defer conv.Close()
//
//	out, err := conv.Convert(ctx, cornell.Input{
//	    Source: "# Finance\n\n### Cue | Notes\n---\n**What is beta?** | • Systematic risk measure",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("notes.html", out, 0644)
//
// # The Dialect
//
// One parse serves both formats. A line scanner recognizes, in priority order:
//
//   - `# text` — document title
//   - `## Summary` (case-insensitive) — the following non-blank lines form one
//     summary block
//   - `## text` — section header
//   - `### cue | notes` plus an optional `---` separator — a cue/notes table
//     whose rows are `cue | notes` lines; rows with an empty cue column
//     continue the previous row's notes
//   - `- cue | notes` — an alternate table notation; lines starting with `|`
//     continue the previous row with an explicit line break
//   - anything else — a paragraph
//
// Bare `---` lines separate sections; the PDF output starts a new page at
// each one.
//
// # Math Handling
//
// Inline ($...$) and block ($$...$$) math spans are located once and treated
// as whole units. The HTML output emits them byte-identical for MathJax to
// render in the browser. The PDF output transliterates them through fixed
// lookup tables (Greek letters, relations, arrows, subscripts, superscript
// digits, \frac, \sqrt); unknown constructs pass through literally.
//
// # PDF Generation
//
// The PDF path prints a self-contained HTML rendition via headless Chrome
// (go-rod), which is downloaded automatically on first run. For containers
// and CI, set ROD_BROWSER_BIN to a pre-installed Chrome binary.
package cornell
