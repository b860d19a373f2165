package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

// envVarPrefix is the prefix for all mdtidy environment variables.
const envVarPrefix = "MDTIDY_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
)

// envMapping defines an environment variable to config field mapping.
type envMapping struct {
	field       string
	typ         envFieldType
	description string
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"VERIFY":           {"verify", envTypeBool, "Verify block structure after a transform: true or false"},
	"DRY_RUN":          {"dry_run", envTypeBool, "Print a diff instead of writing: true or false"},
	"BACKUPS_ENABLED":  {"backups.enabled", envTypeBool, "Back up an overwritten output file: true or false"},
	"SPACER_SUFFIX":    {"spacer.suffix", envTypeString, "Output suffix for mdspace"},
	"SPACER_FENCES":    {"spacer.fences", envTypeString, "Fence pairing for mdspace: toggle or matched"},
	"NUMBERER_SUFFIX":  {"numberer.suffix", envTypeString, "Output suffix for mdnumber"},
	"NUMBERER_FENCES":  {"numberer.fences", envTypeString, "Fence pairing for mdnumber: toggle or matched"},
	"NUMBERER_NEWLINE": {"numberer.newline", envTypeString, "Newline for mdnumber output: auto, lf, or crlf"},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with MDTIDY_ (e.g., MDTIDY_VERIFY).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for _, envSuffix := range sortedEnvSuffixes() {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "spacer.suffix":
		cfg.Spacer.Suffix = value
	case "spacer.fences":
		cfg.Spacer.Fences = mdtext.FenceMode(value)
	case "numberer.suffix":
		cfg.Numberer.Suffix = value
	case "numberer.fences":
		cfg.Numberer.Fences = mdtext.FenceMode(value)
	case "numberer.newline":
		cfg.Numberer.Newline = mdtext.NewlineMode(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "verify":
		cfg.Verify = config.Bool(value)
	case "dry_run":
		cfg.DryRun = config.Bool(value)
	case "backups.enabled":
		cfg.Backups.Enabled = config.Bool(value)
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func sortedEnvSuffixes() []string {
	suffixes := make([]string, 0, len(envMappings))
	for suffix := range envMappings {
		suffixes = append(suffixes, suffix)
	}
	sort.Strings(suffixes)
	return suffixes
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.description
	}
	return vars
}
