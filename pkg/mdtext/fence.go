package mdtext

import (
	"fmt"
	"regexp"
	"strings"
)

// FenceMode controls how a fenced code block is closed.
type FenceMode string

const (
	// FenceToggle flips the fence state on every delimiter line, whatever
	// character or length opened the block.
	FenceToggle FenceMode = "toggle"

	// FenceMatched closes a block only on a line consisting of exactly the
	// opening delimiter run, optionally surrounded by whitespace.
	FenceMatched FenceMode = "matched"
)

// ParseFenceMode parses a fence mode name. The empty string means toggle.
func ParseFenceMode(s string) (FenceMode, error) {
	switch FenceMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", FenceToggle:
		return FenceToggle, nil
	case FenceMatched:
		return FenceMatched, nil
	default:
		return "", fmt.Errorf("unknown fence mode %q (expected toggle or matched)", s)
	}
}

//nolint:gochecknoglobals // Compiled once, read-only.
var fenceRe = regexp.MustCompile(`^` + SpaceClass + "*(`{3,}|~{3,})")

// FenceMarker returns the delimiter run (three or more backticks or tildes)
// that starts the line after optional leading whitespace.
func FenceMarker(line string) (string, bool) {
	match := fenceRe.FindStringSubmatch(line)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// IsFence reports whether the line is a fence delimiter line.
func IsFence(line string) bool {
	_, ok := FenceMarker(line)
	return ok
}

// FenceTracker follows fenced code block state across a line scan.
// The zero value tracks in toggle mode.
type FenceTracker struct {
	mode   FenceMode
	inside bool
	marker string
}

// NewFenceTracker creates a tracker using the given mode.
func NewFenceTracker(mode FenceMode) *FenceTracker {
	return &FenceTracker{mode: mode}
}

// Inside reports whether the scan is currently inside a fenced block.
func (t *FenceTracker) Inside() bool {
	return t.inside
}

// Observe consumes the next line and reports whether it must be copied
// verbatim, either because it is a fence delimiter or because it is fenced
// content.
func (t *FenceTracker) Observe(line string) bool {
	if t.mode == FenceMatched {
		return t.observeMatched(line)
	}

	if IsFence(line) {
		t.inside = !t.inside
		return true
	}
	return t.inside
}

func (t *FenceTracker) observeMatched(line string) bool {
	if !t.inside {
		marker, ok := FenceMarker(line)
		if !ok {
			return false
		}
		t.inside = true
		t.marker = marker
		return true
	}

	if TrimSpace(line) == t.marker {
		t.inside = false
		t.marker = ""
	}
	return true
}
