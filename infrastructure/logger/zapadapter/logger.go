// ABOUTME: Logger implementation backed by zap with production JSON encoding
// ABOUTME: Field maps are converted to typed zap fields in key order

package zapadapter

import (
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"twitch-vod-rss/infrastructure/logger"
)

// Logger implements interfaces.Logger on top of zap
type Logger struct {
	z      *zap.Logger
	closer io.Closer
}

// New builds a zap logger writing production-encoded JSON
func New(opts logger.Options) (*Logger, error) {
	level := opts.Level
	if level == "" {
		level = "info"
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	out, closer := logger.Writer(opts)
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(out),
		lvl,
	)

	return &Logger{z: zap.New(core), closer: closer}, nil
}

// FromZap wraps an existing zap logger
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.z.Debug(msg, toFields(fields)...)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.z.Info(msg, toFields(fields)...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.z.Warn(msg, toFields(fields)...)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.z.Error(msg, toFields(fields)...)
}

// Close flushes buffered entries and releases the log file
func (l *Logger) Close() error {
	// Sync on stdout reports EINVAL on some platforms
	_ = l.z.Sync()
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

func toFields(fields map[string]interface{}) []zap.Field {
	if len(fields) == 0 {
		return nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		out = append(out, zap.Any(k, fields[k]))
	}
	return out
}
