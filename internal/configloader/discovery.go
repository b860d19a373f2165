package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appName names the per-user and system configuration directories.
const appName = "mdtidy"

// Config layer names, lowest precedence first.
const (
	LayerSystem   = "system"
	LayerUser     = "user"
	LayerProject  = "project"
	LayerExplicit = "explicit"
)

// ConfigPaths holds the config file found for each layer. An empty path
// means the layer has no file.
type ConfigPaths struct {
	System   string
	User     string
	Project  string
	Explicit string
}

// Layer is one config file to merge.
type Layer struct {
	Name string
	Path string
}

// Layers returns the layers that have a file, lowest precedence first.
func (p *ConfigPaths) Layers() []Layer {
	all := []Layer{
		{LayerSystem, p.System},
		{LayerUser, p.User},
		{LayerProject, p.Project},
		{LayerExplicit, p.Explicit},
	}

	layers := all[:0]
	for _, layer := range all {
		if layer.Path != "" {
			layers = append(layers, layer)
		}
	}
	return layers
}

// Project config names, in order of preference within one directory.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{
	".mdtidy.yml",
	".mdtidy.yaml",
	"mdtidy.yml",
	"mdtidy.yaml",
}

// Config names inside the system and user config directories.
//
//nolint:gochecknoglobals // Read-only lookup table.
var dirConfigNames = []string{"config.yaml", "config.yml"}

// Entries that end the upward project search. A .git file marks a worktree
// or submodule checkout.
//
//nolint:gochecknoglobals // Read-only lookup table.
var repoRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds the system, user and project config files for a run
// started in workDir. Missing files are empty paths, not errors.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("discover config: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), dirConfigNames),
		User:    firstFile(userConfigDir(), dirConfigNames),
		Project: project,
	}, nil
}

// systemConfigDir is /etc/mdtidy, or %ProgramData%\mdtidy on Windows.
func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return filepath.Join("/etc", appName)
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, appName)
}

// userConfigDir is $XDG_CONFIG_HOME/mdtidy, falling back to ~/.config/mdtidy.
func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// FindProjectConfig walks from startDir towards the filesystem root and
// returns the first project config file. The nearest directory wins, and
// within a directory projectConfigNames decides. The walk does not leave a
// repository root or the home directory. An empty startDir means the
// working directory.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", startDir, err)
	}

	home, _ := os.UserHomeDir() //nolint:errcheck // No home directory means no home boundary.

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("find project config: %w", err)
		}

		if path := firstFile(dir, projectConfigNames); path != "" {
			return path, nil
		}

		if dir == home || isRepoRoot(dir) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// isRepoRoot reports whether dir holds a version control marker.
func isRepoRoot(dir string) bool {
	for _, marker := range repoRootMarkers {
		if _, err := os.Lstat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path
		}
	}
	return ""
}
