package pretty_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtidy/internal/ui/pretty"
	"github.com/yaklabco/mdtidy/pkg/diff"
)

func TestDiffPrinter_Print(t *testing.T) {
	t.Parallel()

	t.Run("renders hunks and summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printer := pretty.NewDiffPrinter(&buf, pretty.NewStyles(false), 10)

		d := diff.Generate("doc.md", "中A\n", "中 A\n")
		require.NoError(t, printer.Print(d))

		want := "diff --git a/doc.md b/doc.md\n" +
			"--- a/doc.md\n" +
			"+++ b/doc.md\n" +
			"@@ -1,1 +1,1 @@\n" +
			"-中A\n" +
			"+中 A\n" +
			strings.Repeat("─", 10) + "\n" +
			"1 file changed, 1 insertion(+), 1 deletion(-)\n"
		assert.Equal(t, want, buf.String())
	})

	t.Run("plural summary", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printer := pretty.NewDiffPrinter(&buf, pretty.NewStyles(false), 0)

		d := diff.Generate("doc.md", "## A\n## B\n", "## 1 A\n## 2 B\n")
		require.NoError(t, printer.Print(d))

		assert.Contains(t, buf.String(), "1 file changed, 2 insertions(+), 2 deletions(-)")
		assert.Contains(t, buf.String(), strings.Repeat("─", pretty.DefaultTermWidth)+"\n")
	})

	t.Run("note without hunks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printer := pretty.NewDiffPrinter(&buf, pretty.NewStyles(false), 4)

		require.NoError(t, printer.Print(diff.Generate("doc.md", "a\r\n", "a\n")))

		out := buf.String()
		assert.NotContains(t, out, "diff --git")
		assert.Contains(t, out, "note: line endings changed from CRLF to LF\n")
		assert.Contains(t, out, "1 file changed\n")
	})

	t.Run("no changes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		printer := pretty.NewDiffPrinter(&buf, pretty.NewStyles(false), 4)

		require.NoError(t, printer.Print(nil))
		assert.Equal(t, "No changes\n", buf.String())
	})
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.Equal(t, pretty.DefaultTermWidth, pretty.TerminalWidth(&buf))
	assert.LessOrEqual(t, pretty.RuleWidth(&buf), pretty.DefaultTermWidth)
}

func TestDiffPrinter_KeepsTabs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printer := pretty.NewDiffPrinter(&buf, pretty.NewStyles(false), 4)

	require.NoError(t, printer.Print(diff.Generate("doc.md", "\t中A\n", "\t中 A\n")))
	assert.Contains(t, buf.String(), "+\t中 A\n")
}

// taggedStyles marks each diff style with a visible tag so tests can see
// which style rendered a line without depending on terminal colors.
func taggedStyles() *pretty.Styles {
	tag := func(name string) lipgloss.Style {
		return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion).SetString("[" + name + "]")
	}
	plain := lipgloss.NewStyle()
	return &pretty.Styles{
		DiffHeader:  tag("header"),
		DiffHunk:    tag("hunk"),
		DiffAdd:     tag("add"),
		DiffRemove:  tag("remove"),
		DiffContext: tag("context"),
		Success:     plain,
		Warning:     plain,
		Dim:         plain,
	}
}

func TestDiffPrinter_StylesByLineKind(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printer := pretty.NewDiffPrinter(&buf, taggedStyles(), 4)

	// A thematic break and a line starting with "+++" must be styled by
	// their diff kind, not by their leading characters.
	d := diff.Generate("doc.md", "---\nkeep\n中A\n", "+++ 中 A\nkeep\n")
	require.NoError(t, printer.Print(d))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "[header] diff --git a/doc.md b/doc.md", lines[0])
	assert.Equal(t, "[remove] --- a/doc.md", lines[1])
	assert.Equal(t, "[add] +++ b/doc.md", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "[hunk] @@ "), "hunk header: %q", lines[3])

	body := strings.Join(lines[4:], "\n")
	assert.Contains(t, body, "[remove] ----\n")
	assert.Contains(t, body, "[add] ++++ 中 A\n")
	assert.Contains(t, body, "[context]  keep\n")
	assert.Contains(t, body, "[remove] -中A\n")
}
