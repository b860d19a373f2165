package cli_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/yaklabco/mdtidy/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test",
		Commit:  "test",
		Date:    "test",
	}
}

func TestNewSpaceCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewSpaceCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewSpaceCommand returned nil")
	}

	if cmd.Name() != "mdspace" {
		t.Errorf("expected name 'mdspace', got %q", cmd.Name())
	}

	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}

	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}

	if cmd.Flags().Lookup("newline") != nil {
		t.Error("mdspace should not have a --newline flag")
	}
}

func TestNewNumberCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewNumberCommand(testInfo())

	if cmd.Name() != "mdnumber" {
		t.Errorf("expected name 'mdnumber', got %q", cmd.Name())
	}

	flag := cmd.Flags().Lookup("newline")
	if flag == nil {
		t.Fatal("expected --newline flag")
	}
	if flag.DefValue != "auto" {
		t.Errorf("expected --newline default 'auto', got %q", flag.DefValue)
	}
}

func TestCommandFlags(t *testing.T) {
	t.Parallel()

	commands := map[string]string{
		"mdspace":  "_spaced",
		"mdnumber": "_numbered",
	}

	for name, suffix := range commands {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cmd := cli.NewSpaceCommand(testInfo())
			if name == "mdnumber" {
				cmd = cli.NewNumberCommand(testInfo())
			}

			for _, flagName := range []string{
				"config", "no-config", "debug", "color", "output", "suffix",
				"fences", "dry-run", "verify", "backup", "version",
			} {
				if cmd.Flags().Lookup(flagName) == nil {
					t.Errorf("expected flag --%s", flagName)
				}
			}

			if got := cmd.Flags().Lookup("suffix").DefValue; got != suffix {
				t.Errorf("expected --suffix default %q, got %q", suffix, got)
			}

			if cmd.Flags().ShorthandLookup("o") == nil {
				t.Error("expected -o shorthand for --output")
			}
		})
	}
}

func TestHelpOutput(t *testing.T) {
	t.Parallel()

	cmd := cli.NewNumberCommand(testInfo())

	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"--help", "--color", "never"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := stdout.String()
	for _, want := range []string{"Usage:", "mdnumber [flags] [--] <file.md>", "Examples:", "Flags:", "--newline"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}
