package mdtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single line no newline", "abc", []string{"abc"}},
		{"single line with newline", "abc\n", []string{"abc"}},
		{"blank line kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"trailing blank line", "a\n\n", []string{"a", ""}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"lone cr", "a\rb", []string{"a", "b"}},
		{"mixed", "a\r\nb\nc\rd", []string{"a", "b", "c", "d"}},
		{"only newline", "\n", []string{""}},
		{"vertical tab", "a\vb", []string{"a", "b"}},
		{"form feed", "a\fb\f", []string{"a", "b"}},
		{"separators 1c 1d 1e", "a\x1cb\x1dc\x1ed", []string{"a", "b", "c", "d"}},
		{"next line", "a\u0085b", []string{"a", "b"}},
		{"line and paragraph separators", "中\u2028A\u2029B\n", []string{"中", "A", "B"}},
		{"cr before separator", "a\r\u2028b", []string{"a", "", "b"}},
		{"other C2 and E2 runes kept", "\u00a9\u2026\u2027", []string{"\u00a9\u2026\u2027"}},
		{"invalid utf-8 kept", "a\x85\xe2\x80b", []string{"a\x85\xe2\x80b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, mdtext.SplitLines(tt.text))
		})
	}
}

func TestJoinLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\nb\n", mdtext.JoinLines([]string{"a", "b"}, mdtext.LF))
	assert.Equal(t, "a\r\nb\r\n", mdtext.JoinLines([]string{"a", "b"}, mdtext.CRLF))
	assert.Equal(t, "\n", mdtext.JoinLines(nil, mdtext.LF))
}

func TestDetectNewline(t *testing.T) {
	t.Parallel()

	assert.Equal(t, mdtext.LF, mdtext.DetectNewline("a\nb\n"))
	assert.Equal(t, mdtext.CRLF, mdtext.DetectNewline("a\nb\r\nc\n"))
	assert.Equal(t, mdtext.LF, mdtext.DetectNewline(""))
}

func TestNewlineMode(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "auto", "AUTO", " auto "} {
		mode, err := mdtext.ParseNewlineMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, mdtext.NewlineAuto, mode)
	}

	mode, err := mdtext.ParseNewlineMode("crlf")
	require.NoError(t, err)
	assert.Equal(t, mdtext.CRLF, mode.Resolve("a\nb\n"))

	mode, err = mdtext.ParseNewlineMode("lf")
	require.NoError(t, err)
	assert.Equal(t, mdtext.LF, mode.Resolve("a\r\nb\r\n"))

	assert.Equal(t, mdtext.CRLF, mdtext.NewlineAuto.Resolve("a\r\n"))

	_, err = mdtext.ParseNewlineMode("cr")
	require.Error(t, err)
}

func TestIsSpace(t *testing.T) {
	t.Parallel()

	for _, r := range []rune{' ', '\t', '\v', '\f', '\u3000', '\u00a0', '\x1c', '\x1f', '\u0085'} {
		assert.True(t, mdtext.IsSpace(r), "%U", r)
	}
	for _, r := range []rune{'a', '中', '#', '\u200b'} {
		assert.False(t, mdtext.IsSpace(r), "%U", r)
	}

	assert.Equal(t, "标题", mdtext.TrimSpace("\u3000 标题 \t"))
}
