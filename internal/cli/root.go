// Package cli provides the Cobra commands for the mdtidy tools.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtidy/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// toolFlags holds the flags shared by both tools.
type toolFlags struct {
	configPath string
	noConfig   bool
	debug      bool
	color      string
	output     string
	suffix     string
	fences     string
	newline    string
	dryRun     bool
	verify     bool
	backup     bool
	version    bool
}

// newToolCommand builds the root command of a tool binary.
func newToolCommand(t *tool, info BuildInfo) *cobra.Command {
	flags := &toolFlags{}

	cmd := &cobra.Command{
		Use:     t.name + " [flags] [--] <file.md>",
		Short:   t.short,
		Long:    t.long,
		Example: t.example,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if flags.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTool(cmd, args, t, flags, info)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flagSet := cmd.Flags()
	flagSet.StringVar(&flags.configPath, "config", "", "path to config file")
	flagSet.BoolVar(&flags.noConfig, "no-config", false, "ignore discovered config files")
	flagSet.BoolVar(&flags.debug, "debug", false, "enable debug logging")
	flagSet.StringVar(&flags.color, "color", "auto", "colorize output: auto, always, never")
	flagSet.StringVarP(&flags.output, "output", "o", "", "write to this path instead of <stem>"+t.defaultSuffix+".md")
	flagSet.StringVar(&flags.suffix, "suffix", t.defaultSuffix, "suffix appended to the input stem")
	flagSet.StringVar(&flags.fences, "fences", "toggle", "code fence pairing: toggle, matched")
	if t.hasNewline {
		flagSet.StringVar(&flags.newline, "newline", "auto", "output line endings: auto, lf, crlf")
	}
	flagSet.BoolVar(&flags.dryRun, "dry-run", false, "print a diff instead of writing the output")
	flagSet.BoolVar(&flags.verify, "verify", false, "warn when the Markdown block structure changes")
	flagSet.BoolVar(&flags.backup, "backup", false, "back up an existing output file before overwriting it")
	flagSet.BoolVar(&flags.version, "version", false, "print version information")

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		if isUnknownFlag(err) {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, NewHelpFormatter(flags.color, out).UsageLine(cmd))
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
	})

	ApplyToCommand(cmd, func() string { return flags.color })

	return cmd
}

// isUnknownFlag reports whether err names a flag that does not exist, which is
// also what a file argument such as -notes.md produces.
func isUnknownFlag(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown flag: ") || strings.HasPrefix(msg, "unknown shorthand flag: ")
}

// NewSpaceCommand creates the mdspace command.
func NewSpaceCommand(info BuildInfo) *cobra.Command {
	return newToolCommand(spaceTool(), info)
}

// NewNumberCommand creates the mdnumber command.
func NewNumberCommand(info BuildInfo) *cobra.Command {
	return newToolCommand(numberTool(), info)
}
