// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldBackup     = "backup"
	FieldWorkingDir = "working_dir"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldSuffix      = "suffix"
	FieldFences      = "fences"
	FieldNewline     = "newline"
	FieldDryRun      = "dry_run"
	FieldVerify      = "verify"

	// Statistics fields.
	FieldLines     = "lines"
	FieldBytes     = "bytes"
	FieldChanged   = "changed"
	FieldNumbered  = "numbered"
	FieldRewritten = "rewritten"
	FieldOrphaned  = "orphaned"
	FieldHadBOM    = "had_bom"

	// Verification fields.
	FieldBlock  = "block"
	FieldBefore = "before"
	FieldAfter  = "after"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
