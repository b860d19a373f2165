// Package config defines the configuration types for the mdtidy tools.
// These types are plain data structures; discovery and merging live in
// internal/configloader.
package config

import "github.com/yaklabco/mdtidy/pkg/mdtext"

// Default output suffixes appended to the input stem.
const (
	DefaultSpacerSuffix   = "_spaced"
	DefaultNumbererSuffix = "_numbered"
)

// ColorMode controls whether terminal output is styled.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// IsValid returns true if the color mode is known.
func (m ColorMode) IsValid() bool {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	default:
		return false
	}
}

// BackupsConfig controls backups of a previous output file before it is
// overwritten.
type BackupsConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// SpacerConfig holds the options of the CJK spacer.
type SpacerConfig struct {
	// Suffix is appended to the input stem to form the output file name.
	Suffix string `yaml:"suffix,omitempty"`

	// Fences selects how fenced code block delimiters are paired.
	Fences mdtext.FenceMode `yaml:"fences,omitempty"`
}

// NumbererConfig holds the options of the heading numberer.
type NumbererConfig struct {
	// Suffix is appended to the input stem to form the output file name.
	Suffix string `yaml:"suffix,omitempty"`

	// Fences selects how fenced code block delimiters are paired.
	Fences mdtext.FenceMode `yaml:"fences,omitempty"`

	// Newline selects the line terminator of the output.
	Newline mdtext.NewlineMode `yaml:"newline,omitempty"`
}

// Config is the root configuration structure for mdtidy.
type Config struct {
	// Verify compares the Markdown block structure before and after a
	// transform and logs any drift.
	Verify *bool `yaml:"verify,omitempty"`

	// Backups configures backups of overwritten output files.
	Backups BackupsConfig `yaml:"backups"`

	// Spacer configures mdspace.
	Spacer SpacerConfig `yaml:"spacer"`

	// Numberer configures mdnumber.
	Numberer NumbererConfig `yaml:"numberer"`

	// CLI-level options (not persisted to config files).

	// DryRun prints a diff instead of writing the output file.
	DryRun *bool `yaml:"-"`

	// Output overrides the generated output path.
	Output string `yaml:"-"`

	// Color controls styling of dry-run output.
	Color ColorMode `yaml:"-"`
}

// NewConfig returns a Config with the defaults applied.
func NewConfig() *Config {
	return &Config{
		Verify: Bool(false),
		Backups: BackupsConfig{
			Enabled: Bool(false),
		},
		Spacer: SpacerConfig{
			Suffix: DefaultSpacerSuffix,
			Fences: mdtext.FenceToggle,
		},
		Numberer: NumbererConfig{
			Suffix:  DefaultNumbererSuffix,
			Fences:  mdtext.FenceToggle,
			Newline: mdtext.NewlineAuto,
		},
		DryRun: Bool(false),
		Color:  ColorAuto,
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// VerifyEnabled reports whether structure verification is on.
func (c *Config) VerifyEnabled() bool {
	return c != nil && c.Verify != nil && *c.Verify
}

// BackupsEnabled reports whether backups of overwritten outputs are on.
func (c *Config) BackupsEnabled() bool {
	return c != nil && c.Backups.Enabled != nil && *c.Backups.Enabled
}

// DryRunEnabled reports whether output should be previewed instead of written.
func (c *Config) DryRunEnabled() bool {
	return c != nil && c.DryRun != nil && *c.DryRun
}
