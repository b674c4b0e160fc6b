// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// Level is a charmbracelet/log level name (debug|info|warn|error|fatal).
	Level string
	// File, when set, sends output to a size-rotated log file.
	File string
	// Writer is the sink used when File is empty. Nil means stderr.
	Writer io.Writer
	// Discard drops output when File is empty (the TUI owns the terminal).
	Discard bool
	Prefix  string
}

// New returns a logger and a closer for its sink.
func New(opts Options) (*log.Logger, io.Closer, error) {
	level := log.WarnLevel
	if s := strings.TrimSpace(opts.Level); s != "" {
		l, err := log.ParseLevel(s)
		if err != nil {
			return nil, nil, fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	var (
		w      io.Writer
		closer io.Closer = nopCloser{}
	)
	switch {
	case strings.TrimSpace(opts.File) != "":
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    5, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w, closer = lj, lj
	case opts.Discard:
		w = io.Discard
	case opts.Writer != nil:
		w = opts.Writer
	default:
		w = os.Stderr
	}

	prefix := opts.Prefix
	if prefix == "" {
		prefix = "todo"
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       log.TextFormatter,
		Prefix:          prefix,
		ReportTimestamp: strings.TrimSpace(opts.File) != "",
	})
	return logger, closer, nil
}

// Nop returns a logger that drops everything.
func Nop() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
