package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdtidy/internal/cli"
	"github.com/yaklabco/mdtidy/internal/logging"
	"github.com/yaklabco/mdtidy/pkg/fsutil"
)

const mixedDocument = "# 标题\n\n使用Go语言编写，版本1.22\n\n```go\nfmt.Println(\"中文abc\")\n```\n"

const spacedDocument = "# 标题\n\n使用 Go 语言编写，版本 1.22\n\n```go\nfmt.Println(\"中文abc\")\n```\n"

// writeMarkdown creates name in a fresh temp dir and returns its path.
func writeMarkdown(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns what it printed to stdout and the
// log output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr, logs bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-config", "--color", "never"}, args...))

	ctx := logging.WithLogger(context.Background(), log.New(&logs))
	err := cmd.ExecuteContext(ctx)

	return stdout.String(), logs.String(), err
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestIntegration_SpaceWritesSibling(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", mixedDocument)
	want := filepath.Join(filepath.Dir(input), "notes_spaced.md")

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), input)
	require.NoError(t, err)

	assert.Equal(t, "Generated: "+want+"\n", stdout)
	assert.Equal(t, spacedDocument, readFile(t, want))
	assert.Equal(t, mixedDocument, readFile(t, input), "input must not change")
}

func TestIntegration_NumberWritesSibling(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "guide.md", "# Guide\r\n## Intro\r\n### Sub\r\n```\r\n## not a heading\r\n```\r\n## 9 Next\r\n")
	want := filepath.Join(filepath.Dir(input), "guide_numbered.md")

	stdout, _, err := execute(t, cli.NewNumberCommand(testInfo()), input)
	require.NoError(t, err)

	assert.Equal(t, "Generated: "+want+"\n", stdout)
	assert.Equal(t,
		"# Guide\r\n## 1 Intro\r\n### 1.1 Sub\r\n```\r\n## not a heading\r\n```\r\n## 2 Next\r\n",
		readFile(t, want))
}

func TestIntegration_NumberNewlineFlag(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "guide.md", "## A\r\n### B\r\n")

	_, _, err := execute(t, cli.NewNumberCommand(testInfo()), "--newline", "lf", input)
	require.NoError(t, err)

	got := readFile(t, filepath.Join(filepath.Dir(input), "guide_numbered.md"))
	assert.Equal(t, "## 1 A\n### 1.1 B\n", got)
}

func TestIntegration_NumberStripsBOM(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "bom.md", "\ufeff## A\n")

	_, _, err := execute(t, cli.NewNumberCommand(testInfo()), input)
	require.NoError(t, err)

	got := readFile(t, filepath.Join(filepath.Dir(input), "bom_numbered.md"))
	assert.Equal(t, "## 1 A\n", got)
}

func TestIntegration_NumberCleansQuotedArgument(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "quoted.md", "## A\n")

	stdout, _, err := execute(t, cli.NewNumberCommand(testInfo()), "  \""+input+"\" ")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Generated: ")
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "quoted_numbered.md"))
}

func TestIntegration_NumberCleansLoneTrailingQuote(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "trailing.md", "## A\n")

	_, _, err := execute(t, cli.NewNumberCommand(testInfo()), input+"\"")
	require.NoError(t, err)

	assert.Equal(t, "## 1 A\n", readFile(t, filepath.Join(filepath.Dir(input), "trailing_numbered.md")))
}

func TestIntegration_SpaceKeepsQuotedArgument(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "quoted.md", "中A\n")

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "\""+input+"\"")
	require.ErrorIs(t, err, cli.ErrInputNotFound)
	assert.Contains(t, stdout, "does not exist")
}

func TestIntegration_WrongArgumentCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cmd  *cobra.Command
		args []string
	}{
		{"space no args", cli.NewSpaceCommand(testInfo()), nil},
		{"space two args", cli.NewSpaceCommand(testInfo()), []string{"a.md", "b.md"}},
		{"number no args", cli.NewNumberCommand(testInfo()), nil},
		{"number two args", cli.NewNumberCommand(testInfo()), []string{"a.md", "b.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, tt.cmd, tt.args...)
			require.ErrorIs(t, err, cli.ErrUsage)

			assert.Contains(t, stdout, "Usage: ")
			assert.Contains(t, stdout, tt.cmd.Name())
			assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
			assert.True(t, cli.IsReported(err))
		})
	}
}

func TestIntegration_UnknownFlagPrintsUsage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"dash file name", []string{"-notes.md"}},
		{"unknown long flag", []string{"--bogus", "notes.md"}},
		{"unknown shorthand", []string{"-x", "notes.md"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), tt.args...)
			require.ErrorIs(t, err, cli.ErrUsage)
			require.NotErrorIs(t, err, cli.ErrInvalidFlag)

			assert.Contains(t, stdout, "Usage: ")
			assert.Contains(t, stdout, "[--] <file.md>")
			assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
			assert.True(t, cli.IsReported(err))
		})
	}
}

func TestIntegration_DoubleDashAllowsDashFileName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "-notes.md"), []byte("中A\n"), 0o644))
	t.Chdir(dir)

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--", "-notes.md")
	require.NoError(t, err)

	assert.Contains(t, stdout, "Generated: ")
	assert.Equal(t, "中 A\n", readFile(t, filepath.Join(dir, "-notes_spaced.md")))
}

func TestIntegration_MissingInput(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.md")

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), missing)
	require.ErrorIs(t, err, cli.ErrInputNotFound)

	assert.Equal(t, "Error: file "+missing+" does not exist\n", stdout)
	assert.Equal(t, cli.ExitFailure, cli.ExitCodeFromError(err))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(missing), "missing_spaced.md"))
}

func TestIntegration_DirectoryInput(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), t.TempDir())
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestIntegration_DryRun(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "guide.md", "## Intro\n正文\n")

	stdout, _, err := execute(t, cli.NewNumberCommand(testInfo()), "--dry-run", input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "-## Intro")
	assert.Contains(t, stdout, "+## 1 Intro")
	assert.Contains(t, stdout, "1 file changed, 1 insertion(+), 1 deletion(-)")
	assert.NotContains(t, stdout, "Generated:")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "guide_numbered.md"))
}

func TestIntegration_DryRunNoChanges(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "plain.md", "plain text\n")

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--dry-run", input)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No changes")
}

func TestIntegration_OutputFlag(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")
	output := filepath.Join(t.TempDir(), "elsewhere.md")

	stdout, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "-o", output, input)
	require.NoError(t, err)

	assert.Equal(t, "Generated: "+output+"\n", stdout)
	assert.Equal(t, "中 A\n", readFile(t, output))
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "notes_spaced.md"))
}

func TestIntegration_SuffixFlag(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--suffix", ".out", input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "notes.out.md"))
}

func TestIntegration_RefusesToOverwriteInput(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "-o", input, input)
	require.ErrorIs(t, err, cli.ErrOverwriteInput)

	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
	assert.Equal(t, "中A\n", readFile(t, input))
}

func TestIntegration_Backup(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")
	output := filepath.Join(filepath.Dir(input), "notes_spaced.md")
	require.NoError(t, os.WriteFile(output, []byte("previous run\n"), 0644))

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--backup", input)
	require.NoError(t, err)

	assert.Equal(t, "中 A\n", readFile(t, output))
	assert.Equal(t, "previous run\n", readFile(t, output+fsutil.BackupSuffix))
}

func TestIntegration_NoBackupByDefault(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")
	output := filepath.Join(filepath.Dir(input), "notes_spaced.md")
	require.NoError(t, os.WriteFile(output, []byte("previous run\n"), 0644))

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), input)
	require.NoError(t, err)

	assert.NoFileExists(t, output+fsutil.BackupSuffix)
}

func TestIntegration_VerifyReportsDrift(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "code.md", "# Title\n\n    indented  code\n")

	_, logs, err := execute(t, cli.NewSpaceCommand(testInfo()), "--verify", input)
	require.NoError(t, err, "drift never blocks the write")

	assert.Contains(t, logs, "structure changed")
	assert.Contains(t, logs, "became paragraph")
	assert.Contains(t, logs, "mdspace")
	assert.Contains(t, logs, "input="+input)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "code_spaced.md"))
}

func TestIntegration_VerifyQuietWithoutDrift(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "guide.md", "## Intro\n\ntext\n")

	_, logs, err := execute(t, cli.NewNumberCommand(testInfo()), "--verify", input)
	require.NoError(t, err)
	assert.NotContains(t, logs, "structure changed")
}

func TestIntegration_ExplicitConfig(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")
	configFile := writeMarkdown(t, "mdtidy.yml", "spacer:\n  suffix: _cfg\n")

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--config", configFile, input)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(filepath.Dir(input), "notes_cfg.md"))
}

func TestIntegration_FlagOverridesConfig(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")
	configFile := writeMarkdown(t, "mdtidy.yml", "spacer:\n  suffix: _cfg\n")

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()),
		"--config", configFile, "--suffix", "_flag", input)
	require.NoError(t, err)

	dir := filepath.Dir(input)
	assert.FileExists(t, filepath.Join(dir, "notes_flag.md"))
	assert.NoFileExists(t, filepath.Join(dir, "notes_cfg.md"))
}

func TestIntegration_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "spacer: [\n"},
		{"bad fence mode", "spacer:\n  fences: sometimes\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := writeMarkdown(t, "notes.md", "中A\n")
			configFile := writeMarkdown(t, "mdtidy.yml", tt.content)

			_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--config", configFile, input)
			require.Error(t, err)
			assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
		})
	}
}

func TestIntegration_InvalidFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"bad fences", []string{"--fences", "sometimes"}},
		{"bad newline", []string{"--newline", "cr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			input := writeMarkdown(t, "guide.md", "## A\n")

			_, _, err := execute(t, cli.NewNumberCommand(testInfo()), append(tt.args, input)...)
			require.ErrorIs(t, err, cli.ErrInvalidFlag)
			assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCodeFromError(err))
		})
	}
}

func TestIntegration_BadColorFlag(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")

	cmd := cli.NewSpaceCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--no-config", "--color", "rainbow", input})

	err := cmd.Execute()
	require.ErrorIs(t, err, cli.ErrInvalidFlag)
}

func TestIntegration_Version(t *testing.T) {
	t.Parallel()

	input := writeMarkdown(t, "notes.md", "中A\n")

	_, _, err := execute(t, cli.NewSpaceCommand(testInfo()), "--version", input)
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(filepath.Dir(input), "notes_spaced.md"))
}
