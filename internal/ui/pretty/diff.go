package pretty

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yaklabco/mdtidy/pkg/diff"
)

// DiffPrinter renders unified diffs with styling.
type DiffPrinter struct {
	out    io.Writer
	styles *Styles
	width  int
}

// NewDiffPrinter creates a printer writing to out. The separator before the
// summary spans width columns.
func NewDiffPrinter(out io.Writer, styles *Styles, width int) *DiffPrinter {
	if width <= 0 {
		width = DefaultTermWidth
	}
	return &DiffPrinter{out: out, styles: styles, width: width}
}

// Print writes d followed by a separator and a summary line. A nil or empty
// diff prints a single "no changes" line.
func (p *DiffPrinter) Print(d *diff.Diff) error {
	if !d.HasChanges() {
		_, err := fmt.Fprintln(p.out, p.styles.Dim.Render("No changes"))
		return err
	}

	var buf strings.Builder
	displayPath := relativePath(d.Path)

	if len(d.Hunks) > 0 {
		header := fmt.Sprintf("diff --git a/%s b/%s", displayPath, displayPath)
		buf.WriteString(p.styles.DiffHeader.Render(header) + "\n")
		buf.WriteString(p.styles.DiffRemove.Render("--- a/"+displayPath) + "\n")
		buf.WriteString(p.styles.DiffAdd.Render("+++ b/"+displayPath) + "\n")

		for _, hunk := range d.Hunks {
			buf.WriteString(p.styles.DiffHunk.Render(hunk.Header()) + "\n")
			for _, line := range hunk.Lines {
				buf.WriteString(p.styleLine(line) + "\n")
			}
		}
	}

	if d.Note != "" {
		buf.WriteString(p.styles.Warning.Render("note: "+d.Note) + "\n")
	}

	buf.WriteString(p.styles.Dim.Render(strings.Repeat("─", p.width)) + "\n")
	buf.WriteString(p.summary(d) + "\n")

	if _, err := io.WriteString(p.out, buf.String()); err != nil {
		return fmt.Errorf("write diff: %w", err)
	}
	return nil
}

func (p *DiffPrinter) styleLine(line diff.Line) string {
	switch line.Kind {
	case diff.LineAdd:
		return p.styles.DiffAdd.Render(line.String())
	case diff.LineRemove:
		return p.styles.DiffRemove.Render(line.String())
	default:
		return p.styles.DiffContext.Render(line.String())
	}
}

// summary renders "1 file changed, N insertions(+), M deletions(-)".
func (p *DiffPrinter) summary(d *diff.Diff) string {
	parts := []string{"1 file changed"}

	if d.Additions > 0 {
		parts = append(parts, p.styles.DiffAdd.Render(
			fmt.Sprintf("%d %s(+)", d.Additions, plural(d.Additions, "insertion", "insertions"))))
	}

	if d.Deletions > 0 {
		parts = append(parts, p.styles.DiffRemove.Render(
			fmt.Sprintf("%d %s(-)", d.Deletions, plural(d.Deletions, "deletion", "deletions"))))
	}

	return strings.Join(parts, ", ")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// relativePath converts an absolute path to a relative path from the current directory.
// If the relative path would require too many "../" traversals, use the basename instead.
func relativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Base(path)
	}
	rel, err := filepath.Rel(cwd, path)
	if err != nil {
		return filepath.Base(path)
	}
	if strings.Count(rel, "..") > 2 {
		return filepath.Base(path)
	}
	return rel
}
