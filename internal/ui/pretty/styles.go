// Package pretty renders the tools' terminal output with Lipgloss.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette indexes.
const (
	colorGreen  = lipgloss.Color("10")
	colorRed    = lipgloss.Color("9")
	colorYellow = lipgloss.Color("11")
	colorCyan   = lipgloss.Color("14")
	colorGray   = lipgloss.Color("8")
)

// Styles holds the renderers for dry-run diffs and status lines.
type Styles struct {
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// Success labels the "Generated:" line.
	Success lipgloss.Style
	// Warning renders diff notes such as a line ending change.
	Warning lipgloss.Style
	// Dim renders separators and "No changes".
	Dim lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when colorEnabled is false.
// Diff body styles never expand tabs.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{
			DiffHeader:  plain,
			DiffHunk:    plain,
			DiffAdd:     verbatim(),
			DiffRemove:  verbatim(),
			DiffContext: verbatim(),
			Success:     plain,
			Warning:     plain,
			Dim:         plain,
		}
	}

	return &Styles{
		DiffHeader:  lipgloss.NewStyle().Bold(true),
		DiffHunk:    lipgloss.NewStyle().Foreground(colorCyan),
		DiffAdd:     verbatim().Foreground(colorGreen),
		DiffRemove:  verbatim().Foreground(colorRed),
		DiffContext: verbatim().Foreground(colorGray),
		Success:     lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
		Warning:     lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
		Dim:         lipgloss.NewStyle().Foreground(colorGray),
	}
}

func verbatim() lipgloss.Style {
	return lipgloss.NewStyle().TabWidth(lipgloss.NoTabConversion)
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute. Anything else means auto: color only on a terminal, and
// never when NO_COLOR is set (https://no-color.org/).
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
