package git

import (
	"strings"

	fdiff "github.com/go-git/go-git/v5/plumbing/format/diff"
)

// LineKind classifies a diff line relative to the parent commit.
type LineKind int

const (
	Context LineKind = iota
	Added
	Removed
)

// DiffLine is one line of a file patch with its position on both sides of the
// diff. OldLine is 0 for added lines and NewLine is 0 for removed lines.
type DiffLine struct {
	OldLine int
	NewLine int
	Text    string
	Kind    LineKind
}

// parseChunks flattens the chunks of a file patch into a typed line sequence,
// tracking line counters on both sides.
func parseChunks(chunks []fdiff.Chunk) []DiffLine {
	var lines []DiffLine
	oldNo, newNo := 1, 1
	for _, chunk := range chunks {
		content := chunk.Content()
		if content == "" {
			continue
		}
		parts := strings.Split(content, "\n")
		if len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		for _, text := range parts {
			switch chunk.Type() {
			case fdiff.Add:
				lines = append(lines, DiffLine{NewLine: newNo, Text: text, Kind: Added})
				newNo++
			case fdiff.Delete:
				lines = append(lines, DiffLine{OldLine: oldNo, Text: text, Kind: Removed})
				oldNo++
			default:
				lines = append(lines, DiffLine{OldLine: oldNo, NewLine: newNo, Text: text, Kind: Context})
				oldNo++
				newNo++
			}
		}
	}
	return lines
}

// AddedContent concatenates the text of all Added lines into one content
// block. Line numbers reported against this block are offsets within the
// block, not within the post-commit file; see the history walker notes.
func AddedContent(lines []DiffLine) string {
	var b strings.Builder
	first := true
	for _, l := range lines {
		if l.Kind != Added {
			continue
		}
		if !first {
			b.WriteByte('\n')
		}
		b.WriteString(l.Text)
		first = false
	}
	return b.String()
}
