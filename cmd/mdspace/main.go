// Package main is the entry point for the mdspace CLI.
package main

import (
	"os"

	"github.com/yaklabco/mdtidy/internal/cli"
	"github.com/yaklabco/mdtidy/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	cmd := cli.NewSpaceCommand(info)

	if err := cmd.Execute(); err != nil {
		// Usage and missing-file errors were already printed to stdout.
		if !cli.IsReported(err) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCodeFromError(err)
	}

	return cli.ExitSuccess
}
