//go:build stave

package main

import (
	"cmp"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/yaklabco/stave/pkg/sh"
	"github.com/yaklabco/stave/pkg/st"
	"github.com/yaklabco/stave/pkg/target"
)

// Default builds both tools.
var Default = Build

// Aliases for the targets used day to day.
var Aliases = map[string]any{
	"b":  Build,
	"t":  Test.Default,
	"l":  Lint.Default,
	"c":  Check,
	"s":  Smoke,
	"fz": Fuzz.Default,
}

type (
	Test st.Namespace
	Lint st.Namespace
	Fuzz st.Namespace
)

// tools are the commands under cmd/, one binary each.
//
//nolint:gochecknoglobals // Read-only target list.
var tools = []string{"mdspace", "mdnumber"}

// Build compiles every tool into bin/, skipping tools whose sources are unchanged.
func Build() error {
	flags := ldflags()
	for _, tool := range tools {
		bin := filepath.Join("bin", tool)
		stale, err := target.Dir(bin, "cmd/"+tool, "pkg/", "internal/", "go.mod", "go.sum")
		if err != nil {
			return err
		}
		if !stale {
			fmt.Printf("%s: up to date\n", bin)
			continue
		}
		fmt.Printf("%s: building\n", bin)
		if err := sh.RunV("go", "build", "-ldflags", flags, "-o", bin, "./cmd/"+tool); err != nil {
			return fmt.Errorf("build %s: %w", tool, err)
		}
	}
	return nil
}

// Install runs go install for every tool.
func Install() error {
	flags := ldflags()
	for _, tool := range tools {
		if err := sh.RunV("go", "install", "-ldflags", flags, "./cmd/"+tool); err != nil {
			return fmt.Errorf("install %s: %w", tool, err)
		}
	}
	return nil
}

// Check formats, lints, tests and smoke-tests the built tools.
func Check() {
	st.SerialDeps(Lint.Fmt, Lint.Default, Test.Default, Smoke)
}

// Clean removes bin/ and coverage output.
func Clean() error {
	for _, path := range []string{"bin", "coverage.out"} {
		if err := sh.Rm(path); err != nil {
			return err
		}
	}
	return nil
}

// smokeInput exercises spacing, heading numbering and a code fence left alone.
const smokeInput = "# 标题\n\n## 安装Go1.22\n\n### 配置\n\n```sh\necho 中A\n```\n"

//nolint:gochecknoglobals // Expected output per tool.
var smokeWant = map[string][]string{
	"mdspace":  {"## 安装 Go1.22", "echo 中A"},
	"mdnumber": {"## 1 安装Go1.22", "### 1.1 配置", "echo 中A"},
}

// Smoke runs the freshly built binaries on a small document in a temp dir.
func Smoke() error {
	st.Deps(Build)

	dir, err := os.MkdirTemp("", "mdtidy-smoke-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(input, []byte(smokeInput), 0o644); err != nil {
		return err
	}

	for _, tool := range tools {
		output := filepath.Join(dir, tool+".md")
		bin, err := filepath.Abs(filepath.Join("bin", tool))
		if err != nil {
			return err
		}
		if err := sh.RunV(bin, "--no-config", "-o", output, input); err != nil {
			return fmt.Errorf("%s: %w", tool, err)
		}
		got, err := os.ReadFile(output)
		if err != nil {
			return fmt.Errorf("%s: %w", tool, err)
		}
		for _, want := range smokeWant[tool] {
			if !strings.Contains(string(got), want) {
				return fmt.Errorf("%s: output lacks %q:\n%s", tool, want, got)
			}
		}
		fmt.Printf("%s: ok\n", tool)
	}
	return nil
}

// Default runs the suite through gotestsum with the race detector on.
func (Test) Default() error {
	return gotestsum("pkgname-and-test-fails")
}

// Verbose is Default with every test name printed.
func (Test) Verbose() error {
	return gotestsum("standard-verbose")
}

func gotestsum(format string) error {
	procs := cmp.Or(os.Getenv("STAVE_NUM_PROCESSORS"), "4")
	return sh.RunV("go", "tool", "gotestsum", "-f", format, "--",
		"-race", "-p", procs, "./...",
		"-coverprofile=coverage.out", "-covermode=atomic",
	)
}

// Default runs golangci-lint and fixes what it can.
func (Lint) Default() error {
	return sh.RunV("golangci-lint", "run", "--fix", "./...")
}

// Fmt rewrites Go files with gofmt.
func (Lint) Fmt() error {
	return sh.RunV("gofmt", "-w", "cmd", "internal", "pkg")
}

// Vet runs go vet on every package.
func (Lint) Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// fuzzTargets pairs each fuzz function with its package.
//
//nolint:gochecknoglobals // Read-only target list.
var fuzzTargets = [][2]string{
	{"./pkg/spacing", "FuzzFormat"},
	{"./pkg/numbering", "FuzzFormat"},
	{"./pkg/diff", "FuzzGenerate"},
	{"./pkg/fsutil", "FuzzWriteAtomic"},
	{"./pkg/fsutil", "FuzzCleanArgPath"},
}

// Default fuzzes each target for FUZZ_TIME (10s when unset).
func (Fuzz) Default() error {
	fuzzTime := cmp.Or(os.Getenv("FUZZ_TIME"), "10s")
	for _, ft := range fuzzTargets {
		pkg, name := ft[0], ft[1]
		fmt.Printf("%s %s (%s)\n", pkg, name, fuzzTime)
		if err := sh.RunV("go", "test", "-run=^$", "-fuzz=^"+name+"$", "-fuzztime="+fuzzTime, pkg); err != nil {
			return fmt.Errorf("fuzz %s %s: %w", pkg, name, err)
		}
	}
	return nil
}

// ldflags stamps version, commit and build date into main.
func ldflags() string {
	git := func(args ...string) string {
		out, err := sh.Output("git", args...)
		if err != nil {
			return ""
		}
		return strings.TrimSpace(out)
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s -X main.date=%s",
		cmp.Or(git("describe", "--tags", "--always", "--dirty"), "dev"),
		cmp.Or(git("rev-parse", "--short", "HEAD"), "none"),
		time.Now().UTC().Format(time.RFC3339),
	)
}
