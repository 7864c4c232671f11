// ABOUTME: Logger implementation backed by logrus
// ABOUTME: Supports text and JSON formatters and optional rotated file output

package logrusadapter

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"twitch-vod-rss/infrastructure/logger"
)

// Logger implements interfaces.Logger on top of a logrus logger
type Logger struct {
	entry  *logrus.Logger
	closer io.Closer
}

// New builds a logrus logger from opts
func New(opts logger.Options) (*Logger, error) {
	l := logrus.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}
	l.SetLevel(parsed)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	out, closer := logger.Writer(opts)
	l.SetOutput(out)

	return &Logger{entry: l, closer: closer}, nil
}

// FromLogrus wraps an existing logrus logger
func FromLogrus(l *logrus.Logger) *Logger {
	return &Logger{entry: l}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.entry.WithFields(logrus.Fields(fields)).Error(msg)
}

// Close releases the log file, if one was opened
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
