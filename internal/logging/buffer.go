package logging

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultBufferLimit is the number of lines the Logs panel keeps.
const DefaultBufferLimit = 2000

// Buffer is a logrus hook that keeps the most recent formatted lines in memory.
type Buffer struct {
	mu        sync.Mutex
	lines     []string
	limit     int
	version   uint64
	formatter logrus.Formatter
}

// NewBuffer returns a buffer holding at most limit lines.
func NewBuffer(limit int) *Buffer {
	if limit <= 0 {
		limit = DefaultBufferLimit
	}
	return &Buffer{limit: limit, formatter: LineFormatter{}}
}

// Levels implements logrus.Hook.
func (b *Buffer) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook.
func (b *Buffer) Fire(entry *logrus.Entry) error {
	line, err := b.formatter.Format(entry)
	if err != nil {
		return err
	}
	b.Append(strings.TrimRight(string(line), "\n"))
	return nil
}

// Append adds lines, dropping the oldest beyond the limit.
func (b *Buffer) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, lines...)
	if overflow := len(b.lines) - b.limit; overflow > 0 {
		b.lines = append([]string(nil), b.lines[overflow:]...)
	}
	b.version++
}

// Lines returns a copy of the buffered lines and the current version. The
// version changes whenever lines are added.
func (b *Buffer) Lines() ([]string, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	dup := make([]string, len(b.lines))
	copy(dup, b.lines)
	return dup, b.version
}

// Version returns the current version without copying lines.
func (b *Buffer) Version() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.version
}

// maxLineSize bounds a single line read by Load.
const maxLineSize = 1 << 20

// Load appends the last lines of the log file at path, up to the buffer's
// limit. A missing file is not an error.
func (b *Buffer) Load(path string) error {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer func() { _ = file.Close() }()

	sc := bufio.NewScanner(file)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// Compact once the slice holds twice the limit so long files stay bounded.
	var tail []string
	for sc.Scan() {
		tail = append(tail, sc.Text())
		if len(tail) >= 2*b.limit {
			tail = append(tail[:0], tail[len(tail)-b.limit:]...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read log: %w", err)
	}
	if len(tail) > b.limit {
		tail = tail[len(tail)-b.limit:]
	}
	b.Append(tail...)
	return nil
}
