package git

import (
	"testing"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
)

type fakeChunk struct {
	content string
	op      fdiff.Operation
}

func (c fakeChunk) Content() string       { return c.content }
func (c fakeChunk) Type() fdiff.Operation { return c.op }

func TestParseChunks_LineNumbers(t *testing.T) {
	chunks := []fdiff.Chunk{
		fakeChunk{"A\n", fdiff.Equal},
		fakeChunk{"B\n", fdiff.Delete},
		fakeChunk{"C\nD\n", fdiff.Add},
		fakeChunk{"E\n", fdiff.Equal},
	}

	lines := parseChunks(chunks)
	want := []DiffLine{
		{OldLine: 1, NewLine: 1, Text: "A", Kind: Context},
		{OldLine: 2, Text: "B", Kind: Removed},
		{NewLine: 2, Text: "C", Kind: Added},
		{NewLine: 3, Text: "D", Kind: Added},
		{OldLine: 3, NewLine: 4, Text: "E", Kind: Context},
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d: %+v", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %+v, got %+v", i, want[i], lines[i])
		}
	}
}

func TestParseChunks_NoTrailingNewline(t *testing.T) {
	lines := parseChunks([]fdiff.Chunk{fakeChunk{"last line", fdiff.Add}})
	if len(lines) != 1 || lines[0].Text != "last line" {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestAddedContent(t *testing.T) {
	lines := []DiffLine{
		{OldLine: 1, NewLine: 1, Text: "ctx", Kind: Context},
		{NewLine: 2, Text: "added one", Kind: Added},
		{OldLine: 2, Text: "removed", Kind: Removed},
		{NewLine: 3, Text: "added two", Kind: Added},
	}
	if got := AddedContent(lines); got != "added one\nadded two" {
		t.Fatalf("unexpected added content %q", got)
	}
	if AddedContent(nil) != "" {
		t.Fatal("empty input should produce empty content")
	}
}
