package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// ComponentKey is the field rendered as the [component] tag.
const ComponentKey = "component"

// Options configure the application logger.
type Options struct {
	Level       string // logrus level name; empty means info
	File        string // optional append-only log file
	BufferLimit int    // zero uses DefaultBufferLimit
}

// Logger is a logrus logger whose entries are also kept in Buffer.
type Logger struct {
	*logrus.Logger
	Buffer *Buffer

	file *os.File
}

// New builds the logger. The terminal belongs to the UI, so entries never go
// to stdout or stderr: they land in the buffer and, if configured, the file.
func New(opts Options) (*Logger, error) {
	level := logrus.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := logrus.ParseLevel(name)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		level = parsed
	}

	buf := NewBuffer(opts.BufferLimit)

	base := logrus.New()
	base.SetLevel(level)
	base.SetFormatter(LineFormatter{})
	base.SetOutput(io.Discard)
	base.AddHook(buf)

	l := &Logger{Logger: base, Buffer: buf}

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := buf.Load(path); err != nil {
			return nil, fmt.Errorf("read previous log: %w", err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		l.file = file
		base.SetOutput(file)
	}

	return l, nil
}

// Component returns an entry tagged with the given component name.
func (l *Logger) Component(name string) *logrus.Entry {
	return l.WithField(ComponentKey, name)
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// Discard returns a logger that only feeds its buffer. Used by tests and as a
// fallback when the configured logger cannot be built.
func Discard() *Logger {
	l, _ := New(Options{})
	return l
}
