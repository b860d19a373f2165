// Package mdtext holds the line-level primitives shared by the Markdown
// transforms: line splitting, newline detection, the whitespace class used
// for marker matching, and fenced code block tracking.
package mdtext

import (
	"fmt"
	"strings"
)

// Newline sequences.
const (
	LF   = "\n"
	CRLF = "\r\n"
)

// NewlineMode selects the line terminator used when joining output.
type NewlineMode string

const (
	// NewlineAuto uses CRLF when the input contains any CRLF, LF otherwise.
	NewlineAuto NewlineMode = "auto"

	// NewlineLF always joins with LF.
	NewlineLF NewlineMode = "lf"

	// NewlineCRLF always joins with CRLF.
	NewlineCRLF NewlineMode = "crlf"
)

// ParseNewlineMode parses a newline mode name. The empty string means auto.
func ParseNewlineMode(s string) (NewlineMode, error) {
	switch NewlineMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", NewlineAuto:
		return NewlineAuto, nil
	case NewlineLF:
		return NewlineLF, nil
	case NewlineCRLF:
		return NewlineCRLF, nil
	default:
		return "", fmt.Errorf("unknown newline mode %q (expected auto, lf, or crlf)", s)
	}
}

// Resolve returns the newline sequence to use for the given input text.
func (m NewlineMode) Resolve(text string) string {
	switch m {
	case NewlineLF:
		return LF
	case NewlineCRLF:
		return CRLF
	default:
		return DetectNewline(text)
	}
}

// DetectNewline returns CRLF if the text contains a CRLF anywhere, LF otherwise.
func DetectNewline(text string) string {
	if strings.Contains(text, CRLF) {
		return CRLF
	}
	return LF
}

// SplitLines splits text into lines without their terminators.
//
// Besides "\r\n", "\n" and a lone "\r", the vertical tab, form feed, the
// file, group and record separators (0x1C-0x1E), NEL (U+0085), LINE
// SEPARATOR (U+2028) and PARAGRAPH SEPARATOR (U+2029) each end a line. A
// terminator at the very end does not produce a trailing empty line, and
// empty text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0

	for idx := 0; idx < len(text); {
		size := terminatorLen(text, idx)
		if size == 0 {
			idx++
			continue
		}
		lines = append(lines, text[start:idx])
		idx += size
		start = idx
	}

	// Last line without a terminator.
	if start < len(text) {
		lines = append(lines, text[start:])
	}

	return lines
}

// terminatorLen returns the byte length of the line terminator starting at
// text[idx], or 0 if there is none.
func terminatorLen(text string, idx int) int {
	switch text[idx] {
	case '\r':
		if idx+1 < len(text) && text[idx+1] == '\n' {
			return 2
		}
		return 1
	case '\n', '\v', '\f', 0x1c, 0x1d, 0x1e:
		return 1
	case 0xc2: // U+0085
		if strings.HasPrefix(text[idx:], "\u0085") {
			return 2
		}
	case 0xe2: // U+2028, U+2029
		if strings.HasPrefix(text[idx:], "\u2028") || strings.HasPrefix(text[idx:], "\u2029") {
			return 3
		}
	}
	return 0
}

// JoinLines joins lines with newline and appends exactly one trailing newline.
func JoinLines(lines []string, newline string) string {
	return strings.Join(lines, newline) + newline
}
