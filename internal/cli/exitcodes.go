package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/mdtidy/internal/configloader"
	"github.com/yaklabco/mdtidy/pkg/fsutil"
)

// Exit codes for the mdtidy tools.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a wrong argument count, an unknown flag or a
	// missing input file.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid flag values.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Errors that classify a failed run.
var (
	// ErrUsage is returned when the command did not get exactly one file or
	// got an argument that parses as an unknown flag.
	ErrUsage = errors.New("wrong number of arguments")

	// ErrInputNotFound is returned when the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrInvalidFlag is returned for bad flag values.
	ErrInvalidFlag = errors.New("invalid flag")

	// ErrOverwriteInput is returned when the output path names the input file.
	ErrOverwriteInput = errors.New("output would overwrite the input file")
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var validationErr *configloader.ValidationError
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage), errors.Is(err, ErrInputNotFound):
		return ExitFailure
	case errors.Is(err, ErrInvalidFlag), errors.Is(err, ErrOverwriteInput):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrConfigFile), errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrInvalidEncoding),
		errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsReported reports whether err was already explained to the user on the
// command's output, so it should not be logged again.
func IsReported(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrInputNotFound)
}
