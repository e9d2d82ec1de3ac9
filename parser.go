package cornell

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the scanner.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Bold markers stripped from cue labels (bold is meaningless there)
	boldMarkers = regexp.MustCompile(`\*\*(.*?)\*\*`)
)

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ParseDocument scans Cornell markdown into an ordered sequence of content
// blocks. The scan is line-oriented with lookahead; it recognizes, in priority
// order: a title (`# text`), a Summary block (`## Summary`, case-insensitive,
// consuming following non-blank lines), section headers (`## text`), pipe
// tables (`### cue | notes` with an optional `---` separator line), dash
// tables (`- cue | notes` with `|` continuation rows), and paragraphs. Blank
// lines and bare `---` lines separate blocks; a bare `---` additionally yields
// a SectionBreak block that the PDF renderer maps to a page break.
//
// Parsing never fails: unrecognized `#`-prefixed lines are dropped, table rows
// with a cue but no notes are dropped, and unbalanced math delimiters are left
// for the normalizer's best-effort matching.
func ParseDocument(source string) *Document {
	lines := strings.Split(normalizeLineEndings(source), "\n")
	doc := &Document{}

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch {
		case line == "":
			i++

		case line == "---":
			doc.Blocks = append(doc.Blocks, ContentBlock{Kind: BlockSectionBreak})
			i++

		case strings.HasPrefix(line, "# "):
			doc.Blocks = append(doc.Blocks, ContentBlock{
				Kind: BlockTitle,
				Text: strings.TrimSpace(line[2:]),
			})
			i++

		case strings.HasPrefix(line, "## "):
			header := strings.TrimSpace(line[3:])
			if strings.EqualFold(header, "summary") {
				var summary string
				summary, i = collectSummary(lines, i+1)
				if summary != "" {
					doc.Blocks = append(doc.Blocks, ContentBlock{
						Kind: BlockSummaryText,
						Text: summary,
					})
				}
				continue
			}
			doc.Blocks = append(doc.Blocks, ContentBlock{
				Kind: BlockSectionHeader,
				Text: header,
			})
			i++

		case strings.HasPrefix(line, "### ") && strings.Contains(line, "|"):
			var rows []CueNote
			rows, i = collectPipeTable(lines, i+1)
			if len(rows) > 0 {
				doc.Blocks = append(doc.Blocks, ContentBlock{
					Kind: BlockCueNotesTable,
					Rows: rows,
				})
			}

		case strings.HasPrefix(line, "- ") && strings.Contains(line, "|"):
			var rows []CueNote
			rows, i = collectDashTable(lines, i)
			if len(rows) > 0 {
				doc.Blocks = append(doc.Blocks, ContentBlock{
					Kind: BlockCueNotesTable,
					Rows: rows,
				})
			}

		case strings.HasPrefix(line, "#"):
			// Unrecognized heading level, dropped.
			i++

		default:
			doc.Blocks = append(doc.Blocks, ContentBlock{
				Kind: BlockParagraph,
				Text: line,
			})
			i++
		}
	}

	return doc
}

// collectSummary gathers the Summary block body starting at index i: blank
// lines after the header are skipped, then all non-blank lines are joined with
// single spaces. Returns the joined text and the index of the first unread line.
func collectSummary(lines []string, i int) (string, int) {
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	var parts []string
	for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
		parts = append(parts, strings.TrimSpace(lines[i]))
		i++
	}
	return strings.Join(parts, " "), i
}

// collectPipeTable consumes the body of a `### cue | notes` table starting at
// index i (just past the header line). An optional `---` separator line is
// skipped first; rows are then collected until a blank line, a bare `---`, or
// a `#`-prefixed line (left for the scanner to reprocess).
func collectPipeTable(lines []string, i int) ([]CueNote, int) {
	if i < len(lines) && strings.Contains(lines[i], "---") {
		i++
	}

	var raw []string
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || line == "---" || strings.HasPrefix(line, "#") {
			break
		}
		raw = append(raw, lines[i])
		i++
	}

	return parseCueNotesRows(raw), i
}

// parseCueNotesRows parses pipe-delimited rows into cue/notes pairs. A
// non-empty cue column starts a new logical row, flushing the previous pair;
// an empty cue column appends its notes fragment (space-joined) to the
// accumulating row. Rows that never receive notes are dropped. Bold markers
// are stripped from cues. Output order matches input row order.
func parseCueNotesRows(lines []string) []CueNote {
	var rows []CueNote
	var cue string
	var notes []string

	flush := func() {
		if cue != "" && len(notes) > 0 {
			rows = append(rows, CueNote{
				Cue:   boldMarkers.ReplaceAllString(cue, "$1"),
				Notes: strings.Join(notes, " "),
			})
		}
	}

	for _, line := range lines {
		if !strings.Contains(line, "|") || strings.HasPrefix(strings.TrimSpace(line), "---") {
			continue
		}
		cuePart, notesPart, _ := strings.Cut(line, "|")
		cuePart = strings.TrimSpace(cuePart)
		notesPart = strings.TrimSpace(notesPart)

		if cuePart != "" {
			flush()
			cue = cuePart
			notes = nil
			if notesPart != "" {
				notes = append(notes, notesPart)
			}
		} else if notesPart != "" {
			notes = append(notes, notesPart)
		}
	}
	flush()

	return rows
}

// collectDashTable consumes consecutive `- cue | notes` rows starting at index
// i. A line starting with `|` continues the previous row's notes with an
// explicit LineBreak marker. Collection stops at a blank line or the first
// non-matching line (left for the scanner to reprocess).
func collectDashTable(lines []string, i int) ([]CueNote, int) {
	var rows []CueNote

	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			break
		}

		switch {
		case strings.HasPrefix(line, "- ") && strings.Contains(line, "|"):
			cue, notesPart, ok := strings.Cut(line[2:], "|")
			if ok {
				rows = append(rows, CueNote{
					Cue:   strings.TrimSpace(cue),
					Notes: strings.TrimSpace(notesPart),
				})
			}
		case strings.HasPrefix(line, "|"):
			if len(rows) == 0 {
				// Continuation with nothing to continue, dropped.
				break
			}
			continuation := strings.TrimSpace(line[1:])
			rows[len(rows)-1].Notes += LineBreak + continuation
		default:
			return rows, i
		}
		i++
	}

	return rows, i
}
