package cornell

import (
	"regexp"
	"strings"
)

// mathSpanPattern matches block math ($$...$$) before inline math ($...$) at
// the same position. Unbalanced delimiters get whatever the first match
// captures; this is a documented limitation, not a contract.
var mathSpanPattern = regexp.MustCompile(`\$\$[^$]+\$\$|\$[^$]+\$`)

// inlineTokenPattern matches the inline constructs the dialect supports in
// literal text: bold markers, inline code, and LineBreak markers inserted by
// the table parser.
var inlineTokenPattern = regexp.MustCompile("\\*\\*[^*]+\\*\\*|`[^`]+`|<br/>")

// codeClass styles inline code in the HTML output.
const codeClass = "bg-gray-100 px-1 py-0.5 rounded text-sm font-mono"

// span is one segment of a text field: either a run of literal text or a whole
// math span (delimiters included).
type span struct {
	text    string
	math    bool
	display bool // $$...$$
}

// splitMathSpans splits text into an ordered side-table of literal and math
// segments. Math spans are located exactly once; later transformation passes
// operate on literal segments only, so characters inside math (`<`, `>`, `_`,
// `^`) are never corrupted and spans are restored or substituted as whole
// units.
func splitMathSpans(text string) []span {
	matches := mathSpanPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []span{{text: text}}
	}

	spans := make([]span, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			spans = append(spans, span{text: text[last:m[0]]})
		}
		s := text[m[0]:m[1]]
		spans = append(spans, span{
			text:    s,
			math:    true,
			display: strings.HasPrefix(s, "$$"),
		})
		last = m[1]
	}
	if last < len(text) {
		spans = append(spans, span{text: text[last:]})
	}
	return spans
}

// htmlEscaper escapes the characters the HTML path protects against.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// renderInlineHTML converts a literal text segment to an HTML fragment:
// **bold** and `code` become their tag equivalents, LineBreak markers are kept
// as line breaks, and everything between tokens is escaped. Tags are emitted
// after their interiors are escaped, so escaping never touches inserted
// markup and the result is stable under re-escaping of its literal parts.
func renderInlineHTML(text string) string {
	var b strings.Builder
	last := 0
	for _, m := range inlineTokenPattern.FindAllStringIndex(text, -1) {
		b.WriteString(htmlEscaper.Replace(text[last:m[0]]))
		token := text[m[0]:m[1]]
		switch {
		case strings.HasPrefix(token, "**"):
			b.WriteString("<strong>")
			b.WriteString(htmlEscaper.Replace(token[2 : len(token)-2]))
			b.WriteString("</strong>")
		case strings.HasPrefix(token, "`"):
			b.WriteString(`<code class="` + codeClass + `">`)
			b.WriteString(htmlEscaper.Replace(token[1 : len(token)-1]))
			b.WriteString("</code>")
		default:
			b.WriteString(LineBreak)
		}
		last = m[1]
	}
	b.WriteString(htmlEscaper.Replace(text[last:]))
	return b.String()
}

// normalizeHTML renders raw dialect text as an HTML fragment. Math spans are
// emitted byte-identical, delimiters included, for client-side rendering;
// literal segments get inline formatting and escaping via renderInlineHTML.
func normalizeHTML(text string) string {
	var b strings.Builder
	for _, s := range splitMathSpans(text) {
		if s.math {
			b.WriteString(s.text)
		} else {
			b.WriteString(renderInlineHTML(s.text))
		}
	}
	return b.String()
}
