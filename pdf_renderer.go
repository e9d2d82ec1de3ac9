package cornell

import (
	"context"
	"fmt"
	"html/template"
	"strings"
)

// htmlPrinter abstracts HTML-to-PDF printing to enable testing without a
// browser.
type htmlPrinter interface {
	PrintHTML(ctx context.Context, htmlContent string, page *PageSettings) ([]byte, error)
	Close() error
}

// printShell wraps rendered fragments in a self-contained print document.
// No CDN references: math is transliterated ahead of time, styles are inline.
// Tables keep together across page boundaries and split the usable width
// 30%/70% between cue and notes columns.
var printShell = template.Must(template.New("print").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; font-size: 10pt; color: #000; }
h1 { font-size: 18pt; color: #00008b; text-align: center; margin: 0 0 12pt; }
h2 { font-size: 14pt; color: #cc0000; margin: 12pt 0 6pt; }
p { margin: 0 0 6pt; }
p.summary { text-align: justify; margin: 6pt 0.25in 12pt; }
table.cornell { width: 100%; border-collapse: collapse; margin: 0 0 12pt; page-break-inside: avoid; break-inside: avoid; }
table.cornell td { border: 1px solid #000; padding: 8px; vertical-align: top; font-size: 10pt; }
col.cue-col { width: 30%; }
col.notes-col { width: 70%; }
td.cue { background: #d3d3d3; font-weight: bold; }
td.notes { background: #fff; }
code { font-family: 'Courier New', monospace; }
div.page-break { page-break-after: always; break-after: page; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>
`))

// pdfRenderer renders blocks as a paginated PDF via a print document.
type pdfRenderer struct {
	page    *PageSettings
	printer htmlPrinter
}

// Render builds the print HTML for the document and prints it to PDF bytes.
func (r *pdfRenderer) Render(ctx context.Context, doc *Document, title string) ([]byte, error) {
	htmlContent, err := buildPrintHTML(doc, title)
	if err != nil {
		return nil, err
	}
	return r.printer.PrintHTML(ctx, htmlContent, r.page)
}

// Close releases printer resources.
func (r *pdfRenderer) Close() error {
	if r.printer != nil {
		return r.printer.Close()
	}
	return nil
}

// printText prepares raw dialect text for the print document: math spans are
// transliterated to Unicode, then inline formatting and escaping run on the
// result.
func printText(text string) string {
	return normalizeHTML(transliterateMath(text))
}

// buildPrintHTML maps each block to a print-HTML fragment. Section breaks
// become page breaks; a break with no content after it is suppressed so the
// document never ends on a blank page.
func buildPrintHTML(doc *Document, title string) (string, error) {
	lastContent := -1
	for i, blk := range doc.Blocks {
		if blk.Kind != BlockSectionBreak {
			lastContent = i
		}
	}

	var frags []string
	for i, blk := range doc.Blocks {
		switch blk.Kind {
		case BlockTitle:
			frags = append(frags, fmt.Sprintf("<h1>%s</h1>", printText(blk.Text)))
		case BlockSectionHeader:
			frags = append(frags, fmt.Sprintf("<h2>%s</h2>", printText(blk.Text)))
		case BlockSummaryText:
			frags = append(frags, fmt.Sprintf(`<p class="summary"><strong>Summary:</strong> %s</p>`, printText(blk.Text)))
		case BlockCueNotesTable:
			frags = append(frags, cueNotesTablePrint(blk.Rows))
		case BlockParagraph:
			frags = append(frags, fmt.Sprintf("<p>%s</p>", printText(blk.Text)))
		case BlockSectionBreak:
			if i < lastContent {
				frags = append(frags, `<div class="page-break"></div>`)
			}
		}
	}

	var buf strings.Builder
	err := printShell.Execute(&buf, htmlShellData{
		Title:   title,
		Content: template.HTML(strings.Join(frags, "\n")),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// cueNotesTablePrint renders one Cornell table for the print document.
func cueNotesTablePrint(rows []CueNote) string {
	var b strings.Builder
	b.WriteString(`<table class="cornell">` + "\n")
	b.WriteString(`<colgroup><col class="cue-col"/><col class="notes-col"/></colgroup>` + "\n")

	for _, row := range rows {
		b.WriteString("<tr>\n")
		b.WriteString(fmt.Sprintf(`<td class="cue">%s</td>`, printText(row.Cue)) + "\n")
		b.WriteString(fmt.Sprintf(`<td class="notes">%s</td>`, reflowBullets(printText(row.Notes), "•")) + "\n")
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>")
	return b.String()
}
