// Package ftlog configures the zerolog logger shared by the explorer packages.
//
// The terminal belongs to the UI once it starts, so by default log records go
// to a file under the application data directory.
package ftlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// FileName is the default log file name inside the application data dir.
	FileName = "ftexplorer.log"

	// Stderr as a file path selects standard error.
	Stderr = "-"

	timeFormat = "15:04:05"
)

type Options struct {
	Level    string
	FilePath string
}

var (
	osMkdirAll = os.MkdirAll
	osOpenFile = os.OpenFile
)

var osStderr io.Writer = os.Stderr

// New creates a logger according to the options. The returned closer releases
// the underlying file and is never nil.
func New(o Options) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(o.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if o.FilePath == "" || o.FilePath == Stderr {
		return NewWithWriter(osStderr, level), nopCloser{}, nil
	}
	if err = osMkdirAll(filepath.Dir(o.FilePath), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := osOpenFile(o.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
	}
	return NewWithWriter(f, level), f, nil
}

// NewWithWriter creates a logger writing human readable lines to w.
func NewWithWriter(w io.Writer, level zerolog.Level) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: timeFormat,
	}
	return zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// ParseLevel accepts zerolog level names; empty means info.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", s, err)
	}
	return level, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
