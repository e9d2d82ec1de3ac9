package cornell

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseDocumentBlockSequence(t *testing.T) {
	t.Parallel()

	source := "# Title\n\n## Summary\n\nSome text.\n\n### Cue | Notes\n---\n**Q** | • A"

	doc := ParseDocument(source)

	want := []ContentBlock{
		{Kind: BlockTitle, Text: "Title"},
		{Kind: BlockSummaryText, Text: "Some text."},
		{Kind: BlockCueNotesTable, Rows: []CueNote{{Cue: "Q", Notes: "• A"}}},
	}
	if !reflect.DeepEqual(doc.Blocks, want) {
		t.Errorf("ParseDocument() blocks = %+v, want %+v", doc.Blocks, want)
	}
}

func TestParseDocumentBlocks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []ContentBlock
	}{
		{
			name:   "title",
			source: "# Value Investing",
			want:   []ContentBlock{{Kind: BlockTitle, Text: "Value Investing"}},
		},
		{
			name:   "section header",
			source: "## Week 3",
			want:   []ContentBlock{{Kind: BlockSectionHeader, Text: "Week 3"}},
		},
		{
			name:   "summary is case-insensitive",
			source: "## SUMMARY\n\nKey takeaways here.",
			want:   []ContentBlock{{Kind: BlockSummaryText, Text: "Key takeaways here."}},
		},
		{
			name:   "summary joins lines with spaces",
			source: "## Summary\nFirst line.\nSecond line.\n\nAfter.",
			want: []ContentBlock{
				{Kind: BlockSummaryText, Text: "First line. Second line."},
				{Kind: BlockParagraph, Text: "After."},
			},
		},
		{
			name:   "empty summary emits no block",
			source: "## Summary\n\n",
			want:   nil,
		},
		{
			name:   "paragraph",
			source: "Just a line of text.",
			want:   []ContentBlock{{Kind: BlockParagraph, Text: "Just a line of text."}},
		},
		{
			name:   "blank lines skipped",
			source: "\n\none\n\n\ntwo\n",
			want: []ContentBlock{
				{Kind: BlockParagraph, Text: "one"},
				{Kind: BlockParagraph, Text: "two"},
			},
		},
		{
			name:   "bare dashes yield section break",
			source: "one\n\n---\n\ntwo",
			want: []ContentBlock{
				{Kind: BlockParagraph, Text: "one"},
				{Kind: BlockSectionBreak},
				{Kind: BlockParagraph, Text: "two"},
			},
		},
		{
			name:   "unrecognized heading dropped",
			source: "#### Deep heading\ntext",
			want:   []ContentBlock{{Kind: BlockParagraph, Text: "text"}},
		},
		{
			name:   "CRLF normalized",
			source: "# Title\r\n\r\nbody\r\n",
			want: []ContentBlock{
				{Kind: BlockTitle, Text: "Title"},
				{Kind: BlockParagraph, Text: "body"},
			},
		},
		{
			name:   "empty table emits no block",
			source: "### Cue | Notes\n---\n\ntext",
			want:   []ContentBlock{{Kind: BlockParagraph, Text: "text"}},
		},
		{
			name:   "table stops at next heading",
			source: "### Cue | Notes\nA | one\n## Next",
			want: []ContentBlock{
				{Kind: BlockCueNotesTable, Rows: []CueNote{{Cue: "A", Notes: "one"}}},
				{Kind: BlockSectionHeader, Text: "Next"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := ParseDocument(tt.source)
			if !reflect.DeepEqual(doc.Blocks, tt.want) {
				t.Errorf("ParseDocument() blocks = %+v, want %+v", doc.Blocks, tt.want)
			}
		})
	}
}

func TestParseCueNotesRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []CueNote
	}{
		{
			name:  "continuation rows merge into notes",
			lines: []string{"**Q1?** | • first", " | • second", "**Q2?** | • third"},
			want: []CueNote{
				{Cue: "Q1?", Notes: "• first • second"},
				{Cue: "Q2?", Notes: "• third"},
			},
		},
		{
			name:  "cue without notes dropped",
			lines: []string{"Orphan |", "Q | answer"},
			want:  []CueNote{{Cue: "Q", Notes: "answer"}},
		},
		{
			name:  "separator rows ignored",
			lines: []string{"--- | ---", "Q | answer"},
			want:  []CueNote{{Cue: "Q", Notes: "answer"}},
		},
		{
			name:  "rows without pipes ignored",
			lines: []string{"no pipe here", "Q | answer"},
			want:  []CueNote{{Cue: "Q", Notes: "answer"}},
		},
		{
			name:  "continuation before any cue dropped",
			lines: []string{" | stray", "Q | answer"},
			want:  []CueNote{{Cue: "Q", Notes: "answer"}},
		},
		{
			name:  "order preserved",
			lines: []string{"A | 1", "B | 2", "C | 3"},
			want: []CueNote{
				{Cue: "A", Notes: "1"},
				{Cue: "B", Notes: "2"},
				{Cue: "C", Notes: "3"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := parseCueNotesRows(tt.lines)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseCueNotesRows() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDocumentDashTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   []CueNote
	}{
		{
			name:   "continuation adds explicit line break",
			source: "- A | x\n| y\n- B | z",
			want: []CueNote{
				{Cue: "A", Notes: "x<br/>y"},
				{Cue: "B", Notes: "z"},
			},
		},
		{
			name:   "stops at blank line",
			source: "- A | x\n\n- B | z",
			want:   []CueNote{{Cue: "A", Notes: "x"}},
		},
		{
			name:   "bold kept in dash-form cue",
			source: "- **A** | x",
			want:   []CueNote{{Cue: "**A**", Notes: "x"}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := ParseDocument(tt.source)
			if len(doc.Blocks) == 0 || doc.Blocks[0].Kind != BlockCueNotesTable {
				t.Fatalf("ParseDocument() blocks = %+v, want leading CueNotesTable", doc.Blocks)
			}
			if !reflect.DeepEqual(doc.Blocks[0].Rows, tt.want) {
				t.Errorf("rows = %+v, want %+v", doc.Blocks[0].Rows, tt.want)
			}
		})
	}
}

func TestParseDocumentOrderMatchesSource(t *testing.T) {
	t.Parallel()

	source := strings.Join([]string{
		"# T",
		"",
		"## One",
		"para one",
		"",
		"### Cue | Notes",
		"A | 1",
		"",
		"## Two",
		"para two",
	}, "\n")

	doc := ParseDocument(source)

	wantKinds := []BlockKind{
		BlockTitle,
		BlockSectionHeader,
		BlockParagraph,
		BlockCueNotesTable,
		BlockSectionHeader,
		BlockParagraph,
	}
	if len(doc.Blocks) != len(wantKinds) {
		t.Fatalf("got %d blocks, want %d: %+v", len(doc.Blocks), len(wantKinds), doc.Blocks)
	}
	for i, kind := range wantKinds {
		if doc.Blocks[i].Kind != kind {
			t.Errorf("block %d kind = %v, want %v", i, doc.Blocks[i].Kind, kind)
		}
	}
}
