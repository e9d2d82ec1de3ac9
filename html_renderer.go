package cornell

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
)

// documentRenderer maps a parsed Document to target-format output bytes.
// Implementations are pure per call: no state is shared between blocks beyond
// the output accumulator, and the same Document always yields the same bytes.
type documentRenderer interface {
	Render(ctx context.Context, doc *Document, title string) ([]byte, error)
	Close() error
}

// htmlShell wraps rendered fragments in a self-contained HTML document. The
// page references Tailwind and MathJax from CDNs for the browser to fetch;
// generation itself makes no network calls. Math spans are emitted literally
// between their delimiters for MathJax to render client-side.
var htmlShell = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"></script>
    <script>
        window.MathJax = {
            tex: {
                inlineMath: [['$', '$'], ['\\(', '\\)']],
                displayMath: [['$$', '$$'], ['\\[', '\\]']]
            }
        };
        tailwind.config = {
            theme: {
                extend: {
                    fontFamily: {
                        'serif': ['Georgia', 'Times New Roman', 'serif'],
                        'sans': ['Inter', 'system-ui', '-apple-system', 'sans-serif']
                    }
                }
            }
        }
    </script>
    <link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&display=swap" rel="stylesheet">
    <style>
        .cornell-cue {
            background: linear-gradient(135deg, #f1f5f9 0%, #e2e8f0 100%);
            border-right: 3px solid #3b82f6;
        }
        .cornell-notes {
            background: linear-gradient(135deg, #ffffff 0%, #f8fafc 100%);
        }
        .cornell-table {
            box-shadow: 0 10px 25px -5px rgba(0, 0, 0, 0.1), 0 10px 10px -5px rgba(0, 0, 0, 0.04);
        }
    </style>
</head>
<body class="bg-gradient-to-br from-slate-50 to-blue-50 min-h-screen font-sans">
    <div class="max-w-6xl mx-auto px-4 py-8 sm:px-6 lg:px-8">
        <div class="bg-white rounded-2xl shadow-xl border border-slate-200 overflow-hidden">
            <div class="px-8 py-10 sm:px-12 sm:py-12">
{{.Content}}
            </div>
        </div>
    </div>
</body>
</html>
`))

// htmlShellData feeds the document shell template.
type htmlShellData struct {
	Title   string
	Content template.HTML
}

// bulletSpan renders a hanging bullet at the start of a notes line.
const bulletSpan = `<span class="inline-block w-4">•</span>`

// htmlRenderer renders blocks as a styled HTML document.
type htmlRenderer struct{}

// Render maps each block to an HTML fragment and wraps the result in the
// document shell. Section breaks carry no screen representation and are
// skipped; they matter only to paginated output.
func (r *htmlRenderer) Render(ctx context.Context, doc *Document, title string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var frags []string
	for _, blk := range doc.Blocks {
		switch blk.Kind {
		case BlockTitle:
			frags = append(frags, fmt.Sprintf(`<div class="text-center mb-12"><h1 class="text-4xl font-bold text-slate-800 mb-2">%s</h1><div class="w-24 h-1 bg-gradient-to-r from-blue-500 to-blue-600 mx-auto rounded-full"></div></div>`, normalizeHTML(blk.Text)))
		case BlockSectionHeader:
			frags = append(frags, sectionHeaderHTML(normalizeHTML(blk.Text)))
		case BlockSummaryText:
			frags = append(frags, sectionHeaderHTML("Summary"))
			frags = append(frags, fmt.Sprintf(`<div class="bg-gradient-to-r from-blue-50 to-indigo-50 border-l-4 border-blue-500 rounded-r-lg p-6 mb-8 shadow-sm"><p class="text-slate-700 leading-relaxed text-base">%s</p></div>`, normalizeHTML(blk.Text)))
		case BlockCueNotesTable:
			frags = append(frags, cueNotesTableHTML(blk.Rows))
		case BlockParagraph:
			frags = append(frags, fmt.Sprintf(`<p class="text-slate-700 leading-relaxed mb-4">%s</p>`, normalizeHTML(blk.Text)))
		case BlockSectionBreak:
		}
	}

	var buf bytes.Buffer
	err := htmlShell.Execute(&buf, htmlShellData{
		Title:   title,
		Content: template.HTML(strings.Join(frags, "\n")),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close implements documentRenderer; the HTML renderer holds no resources.
func (r *htmlRenderer) Close() error { return nil }

func sectionHeaderHTML(header string) string {
	return fmt.Sprintf(`<h2 class="text-2xl font-bold text-slate-700 mt-12 mb-6 pb-2 border-b-2 border-red-200">%s</h2>`, header)
}

// cueNotesTableHTML renders one Cornell table as two-column markup. Every row
// but the last carries a bottom-border separator.
func cueNotesTableHTML(rows []CueNote) string {
	var b strings.Builder
	b.WriteString(`<div class="mb-8">` + "\n")
	b.WriteString(`<div class="cornell-table rounded-lg overflow-hidden border border-slate-300">` + "\n")
	b.WriteString(`<table class="w-full">` + "\n")

	for i, row := range rows {
		borderClass := "border-b border-slate-200"
		if i == len(rows)-1 {
			borderClass = ""
		}
		b.WriteString(fmt.Sprintf(`<tr class="%s">`, borderClass) + "\n")
		b.WriteString(fmt.Sprintf(`<td class="cornell-cue w-1/3 px-6 py-4 font-semibold text-slate-700 text-sm leading-relaxed align-top">%s</td>`, normalizeHTML(row.Cue)) + "\n")
		b.WriteString(fmt.Sprintf(`<td class="cornell-notes w-2/3 px-6 py-4 text-slate-800 text-sm leading-relaxed align-top">%s</td>`, reflowBullets(normalizeHTML(row.Notes), bulletSpan)) + "\n")
		b.WriteString("</tr>\n")
	}

	b.WriteString("</table>\n</div>\n</div>")
	return b.String()
}

// reflowBullets puts each ` • ` separated notes fragment on its own line with
// a hanging bullet.
func reflowBullets(notes, bullet string) string {
	formatted := strings.ReplaceAll(notes, " • ", LineBreak+bullet+" ")
	if strings.HasPrefix(formatted, "• ") {
		formatted = bullet + " " + strings.TrimPrefix(formatted, "• ")
	}
	return formatted
}
