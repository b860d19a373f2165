// Package numbering rewrites level 2 to 4 Markdown headings with
// hierarchical numeric prefixes ("## 1 Intro", "### 1.1 Sub",
// "#### 1.1.1 Detail"), skipping fenced code blocks.
package numbering

import (
	"regexp"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

// Heading levels that receive numbers.
const (
	LevelSection       = 2
	LevelSubsection    = 3
	LevelSubsubsection = 4
)

//nolint:gochecknoglobals // Compiled once, read-only.
var (
	headingRes = []struct {
		level int
		re    *regexp.Regexp
	}{
		{LevelSection, regexp.MustCompile(`^##` + mdtext.SpaceClass)},
		{LevelSubsection, regexp.MustCompile(`^###` + mdtext.SpaceClass)},
		{LevelSubsubsection, regexp.MustCompile(`^####` + mdtext.SpaceClass)},
	}

	numberPrefixRe = regexp.MustCompile(`^\p{Nd}+(?:\.\p{Nd}+)*` + mdtext.SpaceClass + `+`)
)

// HeadingLevel returns 2, 3 or 4 for a line opening with that many hashes
// followed by whitespace, and 0 for anything else.
func HeadingLevel(line string) int {
	for _, heading := range headingRes {
		if heading.re.MatchString(line) {
			return heading.level
		}
	}
	return 0
}

// Marker returns the hash marker for a heading level.
func Marker(level int) string {
	return strings.Repeat("#", level)
}

// StripNumber removes a leading numeric prefix such as "3 " or "2.1.4 " from
// a heading title. A number that is not followed by whitespace is kept.
func StripNumber(title string) string {
	return numberPrefixRe.ReplaceAllString(title, "")
}

// Title extracts the heading text of a level-n heading line: the marker and
// surrounding whitespace are removed, then any existing numeric prefix.
func Title(line string, level int) string {
	title := mdtext.TrimSpace(strings.TrimPrefix(line, Marker(level)))
	return StripNumber(title)
}

// Canonical builds the numbered form of a heading.
func Canonical(level int, number, title string) string {
	return Marker(level) + " " + number + " " + title
}

// Stats summarizes a numbering pass.
type Stats struct {
	// Numbered counts headings that received a number.
	Numbered int

	// Rewritten counts numbered headings whose line text changed.
	Rewritten int

	// Orphaned counts level 3 and 4 headings left alone for lack of a parent.
	Orphaned int
}

// Options configures a Numberer.
type Options struct {
	// Fences selects how fenced code blocks are closed.
	Fences mdtext.FenceMode

	// Newline selects the output line terminator.
	Newline mdtext.NewlineMode
}

// Numberer numbers headings in whole Markdown documents.
type Numberer struct {
	opts Options
}

// New creates a Numberer.
func New(opts Options) *Numberer {
	return &Numberer{opts: opts}
}

// Format returns text with numbered headings. See FormatWithStats.
func (n *Numberer) Format(text string) string {
	out, _ := n.FormatWithStats(text)
	return out
}

// FormatWithStats numbers every heading outside fenced code blocks. Each
// input line yields exactly one output line. Output lines are joined with
// the configured newline and end with one trailing newline.
func (n *Numberer) FormatWithStats(text string) (string, Stats) {
	newline := n.opts.Newline.Resolve(text)
	lines := mdtext.SplitLines(text)
	tracker := mdtext.NewFenceTracker(n.opts.Fences)

	var (
		counter Counter
		stats   Stats
	)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if tracker.Observe(line) {
			out = append(out, line)
			continue
		}
		out = append(out, numberLine(line, &counter, &stats))
	}

	return mdtext.JoinLines(out, newline), stats
}

// NumberLine rewrites a single line outside a fence against the counter.
// Lines that are not level 2 to 4 headings are returned unchanged.
func NumberLine(line string, counter *Counter) string {
	var stats Stats
	return numberLine(line, counter, &stats)
}

func numberLine(line string, counter *Counter, stats *Stats) string {
	level := HeadingLevel(line)
	if level == 0 {
		return line
	}

	number, ok := counter.Advance(level)
	if !ok {
		stats.Orphaned++
		return line
	}
	stats.Numbered++

	expected := Canonical(level, number, Title(line, level))
	if mdtext.TrimSpace(line) == expected {
		return line
	}

	stats.Rewritten++
	return expected
}

// Format runs a Numberer with default options.
func Format(text string) string {
	return New(Options{}).Format(text)
}
