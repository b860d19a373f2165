// Package outline reduces a Markdown document to the sequence of its
// top-level block kinds so that two versions of a document can be checked
// for structural drift.
package outline

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Block kinds reported in an outline.
const (
	KindHeading       = "heading"
	KindParagraph     = "paragraph"
	KindList          = "list"
	KindOrderedList   = "ordered_list"
	KindBlockquote    = "blockquote"
	KindFencedCode    = "fenced_code"
	KindIndentedCode  = "indented_code"
	KindThematicBreak = "thematic_break"
	KindHTML          = "html"
	KindTable         = "table"
)

// Block is one top-level block of a document.
type Block struct {
	// Kind is one of the Kind constants, or the lower-cased goldmark node
	// kind for anything else.
	Kind string

	// Level is the heading level, 0 for other blocks.
	Level int

	// Line is the 1-based line of the block's first content, 0 when the
	// block has none (for example a thematic break).
	Line int
}

// String returns the kind, with the level appended for headings.
func (b Block) String() string {
	if b.Level > 0 {
		return fmt.Sprintf("%s %d", b.Kind, b.Level)
	}
	return b.Kind
}

func (b Block) location() string {
	if b.Line > 0 {
		return fmt.Sprintf(" at line %d", b.Line)
	}
	return ""
}

// Builder parses documents with GitHub Flavored Markdown extensions.
type Builder struct {
	md goldmark.Markdown
}

// New creates a Builder.
func New() *Builder {
	return &Builder{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Build returns the outline of src.
func (b *Builder) Build(src []byte) []Block {
	reader := text.NewReader(src)
	doc := b.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	var blocks []Block
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		blocks = append(blocks, Block{
			Kind:  kindOf(child),
			Level: levelOf(child),
			Line:  lineOf(child, src),
		})
	}
	return blocks
}

// Build returns the outline of src using a fresh Builder.
func Build(src []byte) []Block {
	return New().Build(src)
}

func kindOf(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Heading:
		return KindHeading
	case *ast.Paragraph, *ast.TextBlock:
		return KindParagraph
	case *ast.List:
		if n.IsOrdered() {
			return KindOrderedList
		}
		return KindList
	case *ast.Blockquote:
		return KindBlockquote
	case *ast.FencedCodeBlock:
		return KindFencedCode
	case *ast.CodeBlock:
		return KindIndentedCode
	case *ast.ThematicBreak:
		return KindThematicBreak
	case *ast.HTMLBlock:
		return KindHTML
	case *east.Table:
		return KindTable
	default:
		return strings.ToLower(node.Kind().String())
	}
}

func levelOf(node ast.Node) int {
	if h, ok := node.(*ast.Heading); ok {
		return h.Level
	}
	return 0
}

// lineOf finds the first text segment owned by node or its descendants.
func lineOf(node ast.Node, src []byte) int {
	if node.Type() == ast.TypeBlock && node.Lines().Len() > 0 {
		start := node.Lines().At(0).Start
		return bytes.Count(src[:start], []byte("\n")) + 1
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if line := lineOf(child, src); line > 0 {
			return line
		}
	}
	return 0
}
