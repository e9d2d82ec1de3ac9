package cornell

import (
	"context"
	"strings"
	"testing"
)

func renderHTMLString(t *testing.T, doc *Document) string {
	t.Helper()

	r := &htmlRenderer{}
	out, err := r.Render(context.Background(), doc, "Test Notes")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return string(out)
}

func TestHTMLRendererDocumentShell(t *testing.T) {
	t.Parallel()

	got := renderHTMLString(t, &Document{Blocks: []ContentBlock{
		{Kind: BlockTitle, Text: "Finance"},
	}})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>Test Notes</title>",
		"cdn.tailwindcss.com",
		"MathJax-script",
		">Finance</h1>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output missing %q", want)
		}
	}
}

func TestHTMLRendererBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		block ContentBlock
		want  []string
	}{
		{
			name:  "section header",
			block: ContentBlock{Kind: BlockSectionHeader, Text: "Week 1"},
			want:  []string{">Week 1</h2>"},
		},
		{
			name:  "summary renders header and box",
			block: ContentBlock{Kind: BlockSummaryText, Text: "The point."},
			want:  []string{">Summary</h2>", ">The point.</p>"},
		},
		{
			name:  "paragraph escaped",
			block: ContentBlock{Kind: BlockParagraph, Text: "a < b"},
			want:  []string{">a &lt; b</p>"},
		},
		{
			name:  "math emitted literally for client rendering",
			block: ContentBlock{Kind: BlockParagraph, Text: `risk is $\sigma^2$`},
			want:  []string{`risk is $\sigma^2$`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := renderHTMLString(t, &Document{Blocks: []ContentBlock{tt.block}})
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("Render() output missing %q in:\n%s", want, got)
				}
			}
		})
	}
}

func TestHTMLRendererTableRows(t *testing.T) {
	t.Parallel()

	got := renderHTMLString(t, &Document{Blocks: []ContentBlock{
		{Kind: BlockCueNotesTable, Rows: []CueNote{
			{Cue: "Q1", Notes: "first"},
			{Cue: "Q2", Notes: "second"},
		}},
	}})

	if want := `<tr class="border-b border-slate-200">`; !strings.Contains(got, want) {
		t.Errorf("table output missing row separator %q", want)
	}
	// Last row omits the separator decoration.
	if want := `<tr class="">`; !strings.Contains(got, want) {
		t.Errorf("table output missing undecorated last row %q", want)
	}
	if strings.Count(got, "<tr") != 2 {
		t.Errorf("table output has %d rows, want 2", strings.Count(got, "<tr"))
	}
	if !strings.Contains(got, ">Q1</td>") || !strings.Contains(got, ">second</td>") {
		t.Errorf("table output missing cells:\n%s", got)
	}
}

func TestHTMLRendererIgnoresSectionBreaks(t *testing.T) {
	t.Parallel()

	got := renderHTMLString(t, &Document{Blocks: []ContentBlock{
		{Kind: BlockParagraph, Text: "one"},
		{Kind: BlockSectionBreak},
		{Kind: BlockParagraph, Text: "two"},
	}})

	if strings.Contains(got, "page-break") {
		t.Errorf("HTML output should not contain page breaks:\n%s", got)
	}
}

func TestReflowBullets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		notes string
		want  string
	}{
		{
			name:  "bullets split onto lines",
			notes: "• first • second • third",
			want:  bulletSpan + " first<br/>" + bulletSpan + " second<br/>" + bulletSpan + " third",
		},
		{
			name:  "no bullets unchanged",
			notes: "plain notes",
			want:  "plain notes",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reflowBullets(tt.notes, bulletSpan)
			if got != tt.want {
				t.Errorf("reflowBullets(%q) = %q, want %q", tt.notes, got, tt.want)
			}
		})
	}
}
