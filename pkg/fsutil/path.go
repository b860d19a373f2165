package fsutil

import (
	"path/filepath"
	"strings"
)

// MarkdownExt is the extension given to generated files.
const MarkdownExt = ".md"

// SiblingPath returns the path of a generated file next to path: the stem
// (base name without its last extension) plus suffix plus ".md".
//
//	SiblingPath("docs/guide.md", "_spaced") == "docs/guide_spaced.md"
func SiblingPath(path, suffix string) string {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = base
	}
	return filepath.Join(dir, stem+suffix+MarkdownExt)
}

// CleanArgPath trims surrounding whitespace, then drops one quote character
// (single or double) from each end independently. A lone quote at either
// end is removed as well, which covers the `"C:\dir\"` argument that
// Windows shells turn into `C:\dir"`.
func CleanArgPath(arg string) string {
	arg = strings.TrimSpace(arg)
	if arg != "" && isQuote(arg[0]) {
		arg = arg[1:]
	}
	if arg != "" && isQuote(arg[len(arg)-1]) {
		arg = arg[:len(arg)-1]
	}
	return arg
}

func isQuote(c byte) bool {
	return c == '"' || c == '\''
}
