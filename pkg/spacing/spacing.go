// Package spacing inserts a space between CJK characters and adjacent ASCII
// letters or digits in Markdown text, leaving inline code spans and fenced
// code blocks untouched.
package spacing

import (
	"regexp"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

// cjkClass covers CJK ideographs, radicals, strokes and the CJK symbols and
// punctuation block. The last block includes the ideographic space and full
// width punctuation, so spacing is also applied next to those.
const cjkClass = `[\x{3400}-\x{4DBF}\x{4E00}-\x{9FFF}\x{F900}-\x{FAFF}` +
	`\x{2E80}-\x{2EFF}\x{31C0}-\x{31EF}\x{2F00}-\x{2FDF}\x{3000}-\x{303F}]`

const alnumClass = `[A-Za-z0-9]`

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	cjkAlnumRe   = regexp.MustCompile(`(` + cjkClass + `)(` + alnumClass + `)`)
	alnumCJKRe   = regexp.MustCompile(`(` + alnumClass + `)(` + cjkClass + `)`)
	multiSpaceRe = regexp.MustCompile(` {2,}`)
)

// cjkRanges mirrors cjkClass for rune checks.
//
//nolint:gochecknoglobals // Read-only lookup table.
var cjkRanges = [][2]rune{
	{0x3400, 0x4DBF},
	{0x4E00, 0x9FFF},
	{0xF900, 0xFAFF},
	{0x2E80, 0x2EFF},
	{0x31C0, 0x31EF},
	{0x2F00, 0x2FDF},
	{0x3000, 0x303F},
}

// IsCJK reports whether r falls in one of the CJK ranges handled by the spacer.
func IsCJK(r rune) bool {
	for _, rng := range cjkRanges {
		if r >= rng[0] && r <= rng[1] {
			return true
		}
	}
	return false
}

// IsAlnum reports whether r is an ASCII letter or digit.
func IsAlnum(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}

// AddSpacing separates every CJK/alphanumeric pair in s with a single space
// and collapses runs of two or more spaces into one.
func AddSpacing(s string) string {
	s = cjkAlnumRe.ReplaceAllString(s, "$1 $2")
	s = alnumCJKRe.ReplaceAllString(s, "$1 $2")
	return multiSpaceRe.ReplaceAllString(s, " ")
}

// SpaceLine applies AddSpacing to the parts of a line outside inline code.
// Every backtick flips the inside-code state, so an unbalanced backtick
// protects the rest of the line.
func SpaceLine(line string) string {
	if !strings.Contains(line, "`") {
		return AddSpacing(line)
	}

	var builder strings.Builder
	builder.Grow(len(line) + len(line)/4)

	inCode := false
	for idx, segment := range strings.Split(line, "`") {
		if idx > 0 {
			builder.WriteByte('`')
			inCode = !inCode
		}
		if inCode {
			builder.WriteString(segment)
		} else {
			builder.WriteString(AddSpacing(segment))
		}
	}

	return builder.String()
}

// Options configures a Spacer.
type Options struct {
	// Fences selects how fenced code blocks are closed.
	Fences mdtext.FenceMode
}

// Spacer formats whole Markdown documents.
type Spacer struct {
	opts Options
}

// New creates a Spacer.
func New(opts Options) *Spacer {
	return &Spacer{opts: opts}
}

// Format returns text with spacing applied outside code. Lines are joined
// with "\n" and the result always ends with exactly one newline.
func (s *Spacer) Format(text string) string {
	lines := mdtext.SplitLines(text)
	tracker := mdtext.NewFenceTracker(s.opts.Fences)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if tracker.Observe(line) {
			out = append(out, line)
			continue
		}
		out = append(out, SpaceLine(line))
	}

	return mdtext.JoinLines(out, mdtext.LF)
}

// Format runs a Spacer with default options.
func Format(text string) string {
	return New(Options{}).Format(text)
}
