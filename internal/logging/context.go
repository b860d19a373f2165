package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type ctxKey int

const loggerKey ctxKey = iota

// FromContext returns the logger stored in ctx, or Default when there is none.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// WithRun scopes the context logger to one run of a tool: entries are
// prefixed with the tool name and carry the input path.
func WithRun(ctx context.Context, tool, input string) context.Context {
	logger := FromContext(ctx).WithPrefix(tool).With(FieldInput, input)
	return WithLogger(ctx, logger)
}

// WithOutput adds the resolved output path to every entry of the context logger.
func WithOutput(ctx context.Context, output string) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(FieldOutput, output))
}
