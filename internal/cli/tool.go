package cli

import (
	"github.com/yaklabco/mdtidy/internal/logging"
	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/mdtext"
	"github.com/yaklabco/mdtidy/pkg/numbering"
	"github.com/yaklabco/mdtidy/pkg/spacing"
)

// tool describes one of the mdtidy binaries.
type tool struct {
	name          string
	short         string
	long          string
	example       string
	defaultSuffix string

	// stripBOM drops a leading byte order mark from the input.
	stripBOM bool

	// cleanArg trims whitespace and one layer of quotes from the argument.
	cleanArg bool

	// hasNewline enables the --newline flag and config key.
	hasNewline bool

	// section returns the config fields owned by the tool. newline is nil
	// for tools without a newline setting.
	section func(cfg *config.Config) (suffix *string, fences *mdtext.FenceMode, newline *mdtext.NewlineMode)

	// transform rewrites text and returns key/value pairs for the debug log.
	transform func(cfg *config.Config, text string) (string, []any)
}

func spaceTool() *tool {
	return &tool{
		name:  "mdspace",
		short: "Insert spaces between CJK characters and ASCII letters or digits",
		long: `mdspace reads a Markdown file and inserts a single space wherever a CJK
character touches an ASCII letter or digit. Inline code spans and fenced
code blocks are left untouched.

The result is written next to the input as <stem>_spaced.md.`,
		example: `  # Write notes_spaced.md
  mdspace notes.md

  # Preview the changes without writing anything
  mdspace --dry-run notes.md`,
		defaultSuffix: config.DefaultSpacerSuffix,
		section: func(cfg *config.Config) (*string, *mdtext.FenceMode, *mdtext.NewlineMode) {
			return &cfg.Spacer.Suffix, &cfg.Spacer.Fences, nil
		},
		transform: func(cfg *config.Config, text string) (string, []any) {
			spacer := spacing.New(spacing.Options{Fences: cfg.Spacer.Fences})
			return spacer.Format(text), nil
		},
	}
}

func numberTool() *tool {
	return &tool{
		name:  "mdnumber",
		short: "Number level 2, 3 and 4 Markdown headings",
		long: `mdnumber reads a Markdown file and numbers its "##", "###" and "####"
headings as 1, 1.1 and 1.1.1. Existing numbers are replaced, so running it
again gives the same result. Headings inside fenced code blocks are left
alone.

The result is written next to the input as <stem>_numbered.md.`,
		example: `  # Write guide_numbered.md
  mdnumber guide.md

  # Force LF line endings in the output
  mdnumber --newline lf guide.md`,
		defaultSuffix: config.DefaultNumbererSuffix,
		stripBOM:      true,
		cleanArg:      true,
		hasNewline:    true,
		section: func(cfg *config.Config) (*string, *mdtext.FenceMode, *mdtext.NewlineMode) {
			return &cfg.Numberer.Suffix, &cfg.Numberer.Fences, &cfg.Numberer.Newline
		},
		transform: func(cfg *config.Config, text string) (string, []any) {
			numberer := numbering.New(numbering.Options{
				Fences:  cfg.Numberer.Fences,
				Newline: cfg.Numberer.Newline,
			})
			out, stats := numberer.FormatWithStats(text)
			return out, []any{
				logging.FieldNumbered, stats.Numbered,
				logging.FieldRewritten, stats.Rewritten,
				logging.FieldOrphaned, stats.Orphaned,
			}
		},
	}
}
