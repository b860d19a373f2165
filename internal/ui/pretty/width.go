package pretty

import (
	"io"

	"golang.org/x/term"
)

// DefaultTermWidth is used when the writer is not a terminal.
const DefaultTermWidth = 80

// maxRuleWidth caps separators on very wide terminals.
const maxRuleWidth = 120

// TerminalWidth returns the column count of the terminal behind writer, or
// DefaultTermWidth when it cannot be determined.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return DefaultTermWidth
}

// RuleWidth returns the separator width for writer.
func RuleWidth(writer io.Writer) int {
	return min(TerminalWidth(writer), maxRuleWidth)
}
