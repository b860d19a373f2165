package configloader

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/yaklabco/mdtidy/pkg/config"
	"github.com/yaklabco/mdtidy/pkg/mdtext"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	// Field is the path to the invalid field (e.g., "spacer.fences").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes the validation error.
	Message string

	// FilePath is the config file containing the error (if known).
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string

	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}

	if e.Field != "" {
		parts = append(parts, e.Field)
	}

	parts = append(parts, e.Message)

	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are validation failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// HasWarnings returns true if there are any warnings.
func (r *ValidationResult) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// AllMessages returns all error and warning messages combined.
func (r *ValidationResult) AllMessages() []string {
	messages := make([]string, 0, len(r.Errors)+len(r.Warnings))
	for _, e := range r.Errors {
		messages = append(messages, "error: "+e.Error())
	}
	for _, w := range r.Warnings {
		messages = append(messages, "warning: "+w.Error())
	}
	return messages
}

// Validate checks a configuration for errors and warnings. Empty fields are
// treated as unset and pass.
func Validate(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	validateFences(result, "spacer.fences", cfg.Spacer.Fences)
	validateFences(result, "numberer.fences", cfg.Numberer.Fences)

	if cfg.Numberer.Newline != "" {
		if _, err := mdtext.ParseNewlineMode(string(cfg.Numberer.Newline)); err != nil {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "numberer.newline",
				Value:   cfg.Numberer.Newline,
				Message: fmt.Sprintf("invalid newline %q; must be one of: auto, lf, crlf", cfg.Numberer.Newline),
			})
		}
	}

	validateSuffix(result, "spacer.suffix", cfg.Spacer.Suffix)
	validateSuffix(result, "numberer.suffix", cfg.Numberer.Suffix)

	if cfg.Color != "" && !cfg.Color.IsValid() {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Output != "" && filepath.Ext(cfg.Output) != ".md" {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "output",
			Value:   cfg.Output,
			Message: fmt.Sprintf("output %q does not end in .md", cfg.Output),
		})
	}

	return result
}

func validateFences(result *ValidationResult, field string, mode mdtext.FenceMode) {
	if mode == "" {
		return
	}
	if _, err := mdtext.ParseFenceMode(string(mode)); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   mode,
			Message: fmt.Sprintf("invalid fence mode %q; must be one of: toggle, matched", mode),
		})
	}
}

func validateSuffix(result *ValidationResult, field, suffix string) {
	if suffix == "" {
		return
	}
	if strings.ContainsAny(suffix, `/\`) {
		result.Errors = append(result.Errors, ValidationError{
			Field:   field,
			Value:   suffix,
			Message: fmt.Sprintf("suffix %q must not contain path separators", suffix),
		})
		return
	}
	if strings.IndexFunc(suffix, unicode.IsSpace) >= 0 {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   field,
			Value:   suffix,
			Message: fmt.Sprintf("suffix %q contains whitespace", suffix),
		})
	}
}

// ValidateWithFile validates configuration and includes file path in errors.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := Validate(cfg)

	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}

	return result
}
