package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtidy/internal/configloader"
	"github.com/yaklabco/mdtidy/internal/logging"
	"github.com/yaklabco/mdtidy/internal/ui/pretty"
	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/diff"
	"github.com/yaklabco/mdtidy/pkg/fsutil"
	"github.com/yaklabco/mdtidy/pkg/mdtext"
	"github.com/yaklabco/mdtidy/pkg/outline"
)

// runTool executes one transform: check the argument, resolve config, read,
// transform, then preview or write.
func runTool(cmd *cobra.Command, args []string, t *tool, flags *toolFlags, info BuildInfo) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	if flags.version {
		logging.NewInteractive().Info(t.name,
			logging.FieldVersion, info.Version,
			logging.FieldCommit, info.Commit,
			logging.FieldBuilt, info.Date,
		)
		return nil
	}

	if len(args) != 1 {
		fmt.Fprintln(out, NewHelpFormatter(flags.color, out).UsageLine(cmd))
		return ErrUsage
	}

	input := args[0]
	if t.cleanArg {
		input = fsutil.CleanArgPath(input)
	}
	if !fsutil.Exists(input) {
		fmt.Fprintf(out, "Error: file %s does not exist\n", input)
		return fmt.Errorf("%w: %s", ErrInputNotFound, input)
	}

	ctx = logging.WithRun(ctx, t.name, input)
	logger := logging.FromContext(ctx)

	cliCfg, err := cliConfig(cmd, t, flags)
	if err != nil {
		return err
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath:        flags.configPath,
		IgnoreSystemConfig:  flags.noConfig,
		IgnoreUserConfig:    flags.noConfig,
		IgnoreProjectConfig: flags.noConfig,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn("config", logging.FieldError, warning)
	}
	if len(result.LoadedFrom) > 0 {
		logger.Debug("loaded config", logging.FieldConfigFiles, result.LoadedFrom)
	}

	cfg := result.Config
	if err := normalize(cfg, t); err != nil {
		return err
	}

	text, meta, err := fsutil.ReadText(ctx, input, fsutil.ReadOptions{StripBOM: t.stripBOM})
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	output, fields := t.transform(cfg, text)
	logger.Debug("transformed", append([]any{
		logging.FieldBytes, meta.Size,
		logging.FieldHadBOM, meta.HadBOM,
		logging.FieldChanged, output != text,
	}, fields...)...)

	outPath, err := outputPath(input, cfg, t)
	if err != nil {
		return err
	}
	ctx = logging.WithOutput(ctx, outPath)
	logger = logging.FromContext(ctx)

	if cfg.VerifyEnabled() {
		verify(logger, text, output)
	}

	if cfg.DryRunEnabled() {
		return printDiff(out, cfg, input, text, output)
	}

	return writeOutput(ctx, cmd, cfg, outPath, output)
}

// cliConfig builds the config layer holding only flags the user set.
func cliConfig(cmd *cobra.Command, t *tool, flags *toolFlags) (*config.Config, error) {
	cfg := &config.Config{}
	suffix, fences, newline := t.section(cfg)
	changed := cmd.Flags().Changed

	if changed("color") {
		mode := config.ColorMode(strings.ToLower(flags.color))
		if !mode.IsValid() {
			return nil, fmt.Errorf("%w: --color %q", ErrInvalidFlag, flags.color)
		}
		cfg.Color = mode
	}
	if changed("fences") {
		mode, err := mdtext.ParseFenceMode(flags.fences)
		if err != nil {
			return nil, fmt.Errorf("%w: --fences: %w", ErrInvalidFlag, err)
		}
		*fences = mode
	}
	if newline != nil && changed("newline") {
		mode, err := mdtext.ParseNewlineMode(flags.newline)
		if err != nil {
			return nil, fmt.Errorf("%w: --newline: %w", ErrInvalidFlag, err)
		}
		*newline = mode
	}
	if changed("suffix") {
		*suffix = flags.suffix
	}
	if changed("output") {
		cfg.Output = flags.output
	}
	if changed("dry-run") {
		cfg.DryRun = config.Bool(flags.dryRun)
	}
	if changed("verify") {
		cfg.Verify = config.Bool(flags.verify)
	}
	if changed("backup") {
		cfg.Backups.Enabled = config.Bool(flags.backup)
	}

	return cfg, nil
}

// normalize replaces the tool's mode settings with their canonical values.
func normalize(cfg *config.Config, t *tool) error {
	_, fences, newline := t.section(cfg)

	mode, err := mdtext.ParseFenceMode(string(*fences))
	if err != nil {
		return fmt.Errorf("fences: %w", err)
	}
	*fences = mode

	if newline != nil {
		nl, err := mdtext.ParseNewlineMode(string(*newline))
		if err != nil {
			return fmt.Errorf("newline: %w", err)
		}
		*newline = nl
	}

	return nil
}

// outputPath resolves where the result goes and refuses to overwrite the input.
func outputPath(input string, cfg *config.Config, t *tool) (string, error) {
	suffix, _, _ := t.section(cfg)

	path := cfg.Output
	if path == "" {
		path = fsutil.SiblingPath(input, *suffix)
	}

	absIn, errIn := filepath.Abs(input)
	absOut, errOut := filepath.Abs(path)
	if errIn == nil && errOut == nil && absIn == absOut {
		return "", fmt.Errorf("%w: %s", ErrOverwriteInput, path)
	}

	return path, nil
}

// verify logs every change the transform made to the document's block outline.
func verify(logger *log.Logger, before, after string) {
	builder := outline.New()
	drift := outline.Compare(builder.Build([]byte(before)), builder.Build([]byte(after)))
	for _, d := range drift {
		logger.Warn("structure changed", logging.FieldBlock, d.String())
	}
}

// printDiff writes a styled diff of the pending change.
func printDiff(out io.Writer, cfg *config.Config, input, before, after string) error {
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
	printer := pretty.NewDiffPrinter(out, styles, pretty.RuleWidth(out))
	if err := printer.Print(diff.Generate(input, before, after)); err != nil {
		return fmt.Errorf("print diff: %w", err)
	}
	return nil
}

// writeOutput backs up a previous output when asked to, then writes the new one.
func writeOutput(ctx context.Context, cmd *cobra.Command, cfg *config.Config, path, content string) error {
	logger := logging.FromContext(ctx)
	backup := fsutil.DefaultBackupConfig()
	backup.Enabled = cfg.BackupsEnabled()

	created, err := fsutil.CreateBackup(ctx, path, backup)
	if err != nil {
		return fmt.Errorf("backup output: %w", err)
	}
	if created {
		logger.Debug("backed up previous output",
			logging.FieldBackup, fsutil.BackupPath(path, backup.Mode),
		)
	}

	if err := fsutil.WriteAtomic(ctx, path, []byte(content), 0); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
	fmt.Fprintln(out, styles.Success.Render("Generated:"), path)
	return nil
}
