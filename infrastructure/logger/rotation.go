// ABOUTME: Shared output settings for the logger backends
// ABOUTME: A configured file path is written through a size-rotated lumberjack writer

package logger

import (
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation limits for file output
const (
	MaxSizeMB  = 500
	MaxBackups = 3
	MaxAgeDays = 28
)

// Options configures a logger backend
type Options struct {
	// Level is one of debug, info, warn, error
	Level string

	// Format is text or json; only the logrus backend reads it
	Format string

	// File, when set, sends output to a rotated file instead of stdout
	File string

	// Output overrides the destination; used by tests
	Output io.Writer
}

// Writer returns the destination described by opts. The returned closer
// is non-nil only when a file was opened.
func Writer(opts Options) (io.Writer, io.Closer) {
	if opts.Output != nil {
		return opts.Output, nil
	}
	if opts.File == "" {
		return os.Stdout, nil
	}

	lj := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
		Compress:   true,
	}
	return lj, lj
}
