package logging

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

//nolint:gochecknoglobals // Process-wide fallback logger for code without a context logger.
var defaultLogger atomic.Pointer[log.Logger]

// Options configures a logger built by NewWithOptions.
type Options struct {
	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer

	// Level is a level name as accepted by ParseLevel.
	Level string

	// Prefix is printed before every message, usually the tool name.
	Prefix string
}

// NewWithOptions creates a logger without timestamps or caller information.
func NewWithOptions(opts Options) *log.Logger {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return log.NewWithOptions(writer, log.Options{
		Level:  ParseLevel(opts.Level),
		Prefix: opts.Prefix,
	})
}

// New creates a stderr logger at the given level.
func New(level string) *log.Logger {
	return NewWithOptions(Options{Level: level})
}

// NewInteractive creates an info-level logger on stdout for output the user
// asked for, such as version information.
func NewInteractive() *log.Logger {
	return NewWithOptions(Options{Writer: os.Stdout, Level: "info"})
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error" to a level,
// ignoring case. Anything else is info.
func ParseLevel(name string) log.Level {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "warning" {
		return log.WarnLevel
	}

	level, err := log.ParseLevel(name)
	if err != nil || level == log.FatalLevel {
		return log.InfoLevel
	}
	return level
}

// Default returns the process-wide logger, creating an info-level stderr
// logger on first use.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}

// SetLevel changes the level of the process-wide logger. --debug uses it.
func SetLevel(level string) {
	Default().SetLevel(ParseLevel(level))
}
