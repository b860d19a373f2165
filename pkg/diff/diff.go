// Package diff produces unified diffs between a Markdown file and its
// transformed output, for dry-run previews.
package diff

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

// Diff represents a unified diff between original and modified text.
type Diff struct {
	// Path is the file path for the diff header.
	Path string

	// Hunks contains the diff hunks.
	Hunks []Hunk

	// Additions is the number of lines added.
	Additions int

	// Deletions is the number of lines deleted.
	Deletions int

	// Note describes a change that line content cannot show, such as a
	// switch of line endings. Empty when there is none.
	Note string
}

// Hunk represents a single hunk in a unified diff.
type Hunk struct {
	// OriginalStart is the 1-based line number where the hunk starts in the original.
	OriginalStart int

	// OriginalCount is the number of lines from the original in this hunk.
	OriginalCount int

	// ModifiedStart is the 1-based line number where the hunk starts in the modified.
	ModifiedStart int

	// ModifiedCount is the number of lines from the modified in this hunk.
	ModifiedCount int

	// Lines contains the diff lines in this hunk.
	Lines []Line
}

// Line represents a single line in a diff hunk.
type Line struct {
	Kind    LineKind
	Content string
}

// LineKind indicates the type of diff line.
type LineKind int

const (
	// LineContext is an unchanged context line.
	LineContext LineKind = iota

	// LineAdd is a line added in the modified version.
	LineAdd

	// LineRemove is a line removed from the original version.
	LineRemove
)

// contextLines is the number of context lines to show around changes.
const contextLines = 3

// Generate creates a unified diff between original and modified text.
// Lines are split on any line terminator. When both sides have the same
// number of lines they are paired by position, which is exact for the
// line-preserving transforms; otherwise a longest common subsequence is used.
// Returns nil if the texts are identical.
func Generate(path, original, modified string) *Diff {
	if original == modified {
		return nil
	}

	origLines := mdtext.SplitLines(original)
	modLines := mdtext.SplitLines(modified)

	var ops []op
	if len(origLines) == len(modLines) {
		ops = alignedOps(origLines, modLines)
	} else {
		ops = lcsOps(origLines, modLines, longestCommonSubsequence(origLines, modLines))
	}

	hunks := groupIntoHunks(ops)

	var additions, deletions int
	for _, hunk := range hunks {
		for _, line := range hunk.Lines {
			switch line.Kind {
			case LineAdd:
				additions++
			case LineRemove:
				deletions++
			case LineContext:
			}
		}
	}

	return &Diff{
		Path:      path,
		Hunks:     hunks,
		Additions: additions,
		Deletions: deletions,
		Note:      describeLineEndings(original, modified),
	}
}

// GitHeader returns the "diff --git" header line.
func (d *Diff) GitHeader() string {
	if d == nil {
		return ""
	}
	path := strings.TrimPrefix(d.Path, "/")
	return fmt.Sprintf("diff --git a/%s b/%s", path, path)
}

// String returns the diff in unified diff format (without the git header).
func (d *Diff) String() string {
	if d == nil || len(d.Hunks) == 0 {
		return ""
	}

	path := strings.TrimPrefix(d.Path, "/")

	var builder strings.Builder
	fmt.Fprintf(&builder, "--- a/%s\n", path)
	fmt.Fprintf(&builder, "+++ b/%s\n", path)

	for _, hunk := range d.Hunks {
		builder.WriteString(hunk.Header())
		builder.WriteByte('\n')

		for _, line := range hunk.Lines {
			builder.WriteString(line.String())
			builder.WriteByte('\n')
		}
	}

	return builder.String()
}

// HasChanges returns true if the diff contains any changes.
func (d *Diff) HasChanges() bool {
	return d != nil && (len(d.Hunks) > 0 || d.Note != "")
}

// Header returns the "@@ -a,b +c,d @@" line of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@",
		h.OriginalStart, h.OriginalCount,
		h.ModifiedStart, h.ModifiedCount)
}

// String returns the line with its diff prefix.
func (l Line) String() string {
	switch l.Kind {
	case LineAdd:
		return "+" + l.Content
	case LineRemove:
		return "-" + l.Content
	default:
		return " " + l.Content
	}
}

func describeLineEndings(original, modified string) string {
	origEOL, modEOL := eolName(original), eolName(modified)
	switch {
	case original == "" || modified == "":
		return ""
	case origEOL != modEOL:
		return fmt.Sprintf("line endings changed from %s to %s", origEOL, modEOL)
	case !hasFinalNewline(original) && hasFinalNewline(modified):
		return "newline added at end of file"
	default:
		return ""
	}
}

func eolName(text string) string {
	if mdtext.DetectNewline(text) == mdtext.CRLF {
		return "CRLF"
	}
	return "LF"
}

func hasFinalNewline(text string) bool {
	return strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\r")
}

// op is a single diff operation.
type op struct {
	kind    LineKind
	content string
}

// alignedOps pairs lines by position. Within each run of differing lines the
// removals come first, as in a conventional unified diff.
func alignedOps(orig, mod []string) []op {
	ops := make([]op, 0, len(orig))

	for idx := 0; idx < len(orig); {
		if orig[idx] == mod[idx] {
			ops = append(ops, op{kind: LineContext, content: orig[idx]})
			idx++
			continue
		}

		end := idx
		for end < len(orig) && orig[end] != mod[end] {
			end++
		}
		for _, line := range orig[idx:end] {
			ops = append(ops, op{kind: LineRemove, content: line})
		}
		for _, line := range mod[idx:end] {
			ops = append(ops, op{kind: LineAdd, content: line})
		}
		idx = end
	}

	return ops
}

// lcsOps builds a sequence of diff operations from original, modified, and LCS.
func lcsOps(orig, mod, lcs []string) []op {
	var ops []op
	origIdx, modIdx, lcsIdx := 0, 0, 0

	for origIdx < len(orig) || modIdx < len(mod) {
		if lcsIdx < len(lcs) &&
			origIdx < len(orig) && modIdx < len(mod) &&
			orig[origIdx] == lcs[lcsIdx] && mod[modIdx] == lcs[lcsIdx] {
			ops = append(ops, op{kind: LineContext, content: orig[origIdx]})
			origIdx++
			modIdx++
			lcsIdx++
			continue
		}

		for origIdx < len(orig) && (lcsIdx >= len(lcs) || orig[origIdx] != lcs[lcsIdx]) {
			ops = append(ops, op{kind: LineRemove, content: orig[origIdx]})
			origIdx++
		}

		for modIdx < len(mod) && (lcsIdx >= len(lcs) || mod[modIdx] != lcs[lcsIdx]) {
			ops = append(ops, op{kind: LineAdd, content: mod[modIdx]})
			modIdx++
		}
	}

	return ops
}

// groupIntoHunks groups diff operations into hunks with context lines.
func groupIntoHunks(ops []op) []Hunk {
	type changeRange struct {
		start, end int
	}

	var ranges []changeRange
	inChange := false
	rangeStart := 0

	for opIdx, o := range ops {
		isChange := o.kind != LineContext
		if isChange && !inChange {
			rangeStart = opIdx
			inChange = true
		} else if !isChange && inChange {
			ranges = append(ranges, changeRange{rangeStart, opIdx})
			inChange = false
		}
	}
	if inChange {
		ranges = append(ranges, changeRange{rangeStart, len(ops)})
	}

	var hunks []Hunk

	for rangeIdx := 0; rangeIdx < len(ranges); {
		mergeEnd := rangeIdx + 1
		for mergeEnd < len(ranges) {
			gap := ranges[mergeEnd].start - ranges[mergeEnd-1].end
			if gap > contextLines*2 {
				break
			}
			mergeEnd++
		}

		hunks = append(hunks, buildHunk(ops, ranges[rangeIdx].start, ranges[mergeEnd-1].end))
		rangeIdx = mergeEnd
	}

	return hunks
}

// buildHunk builds a single hunk from a range of operations.
func buildHunk(ops []op, changeStart, changeEnd int) Hunk {
	start := max(changeStart-contextLines, 0)
	end := min(changeEnd+contextLines, len(ops))

	hunk := Hunk{OriginalStart: 1, ModifiedStart: 1}
	for _, o := range ops[:start] {
		if o.kind != LineAdd {
			hunk.OriginalStart++
		}
		if o.kind != LineRemove {
			hunk.ModifiedStart++
		}
	}

	for _, o := range ops[start:end] {
		hunk.Lines = append(hunk.Lines, Line{Kind: o.kind, Content: o.content})

		switch o.kind {
		case LineContext:
			hunk.OriginalCount++
			hunk.ModifiedCount++
		case LineRemove:
			hunk.OriginalCount++
		case LineAdd:
			hunk.ModifiedCount++
		}
	}

	// An empty side starts at line 0 in unified diff notation.
	if hunk.OriginalCount == 0 {
		hunk.OriginalStart--
	}
	if hunk.ModifiedCount == 0 {
		hunk.ModifiedStart--
	}

	return hunk
}

// longestCommonSubsequence computes the LCS of two string slices.
func longestCommonSubsequence(orig, mod []string) []string {
	origLen, modLen := len(orig), len(mod)
	if origLen == 0 || modLen == 0 {
		return nil
	}

	dp := make([][]int, origLen+1)
	for idx := range dp {
		dp[idx] = make([]int, modLen+1)
	}

	for row := 1; row <= origLen; row++ {
		for col := 1; col <= modLen; col++ {
			if orig[row-1] == mod[col-1] {
				dp[row][col] = dp[row-1][col-1] + 1
			} else {
				dp[row][col] = max(dp[row-1][col], dp[row][col-1])
			}
		}
	}

	lcsLen := dp[origLen][modLen]
	if lcsLen == 0 {
		return nil
	}

	lcs := make([]string, lcsLen)
	row, col, idx := origLen, modLen, lcsLen-1
	for row > 0 && col > 0 {
		switch {
		case orig[row-1] == mod[col-1]:
			lcs[idx] = orig[row-1]
			row--
			col--
			idx--
		case dp[row-1][col] > dp[row][col-1]:
			row--
		default:
			col--
		}
	}

	return lcs
}
