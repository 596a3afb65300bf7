package keys

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
)

const (
	// DefaultDir is where the atPlatform tooling stores atSign key files.
	DefaultDir = "~/.atsign/keys"

	// DefaultScanTimeout bounds a single directory listing.
	DefaultScanTimeout = 5 * time.Second
)

// Lister produces the current list of key files.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// ScanOptions configure a Scanner.
type ScanOptions struct {
	Dir     string        // empty uses DefaultDir; a leading ~ expands to HomeDir
	HomeDir string        // empty means the home directory is unknown
	Pattern string        // optional glob over file names; empty matches everything
	Timeout time.Duration // zero uses DefaultScanTimeout
}

// Scanner lists the regular files directly under the key directory.
type Scanner struct {
	dir     string
	home    string
	pattern string
	match   glob.Glob
	timeout time.Duration
	readDir func(dir string) ([]string, error)
}

// NewScanner validates opts. Only the pattern is checked here; the directory is
// resolved on every List so a missing home directory surfaces as a scan error.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	s := &Scanner{
		dir:     strings.TrimSpace(opts.Dir),
		home:    strings.TrimSpace(opts.HomeDir),
		pattern: strings.TrimSpace(opts.Pattern),
		timeout: opts.Timeout,
	}
	if s.dir == "" {
		s.dir = DefaultDir
	}
	if s.timeout <= 0 {
		s.timeout = DefaultScanTimeout
	}
	s.readDir = s.read
	if s.pattern != "" {
		g, err := glob.Compile(s.pattern)
		if err != nil {
			return nil, &ConfigurationError{Setting: "pattern", Err: fmt.Errorf("compile %q: %w", s.pattern, err)}
		}
		s.match = g
	}
	return s, nil
}

// Dir returns the absolute key directory.
func (s *Scanner) Dir() (string, error) {
	return resolveDir(s.dir, s.home)
}

// Pattern returns the configured file name filter.
func (s *Scanner) Pattern() string {
	return s.pattern
}

// List reads the key directory in enumeration order. The read runs in its own
// goroutine; if it outlives the scan timeout List returns an IOError wrapping
// ErrScanTimeout and the read is abandoned.
func (s *Scanner) List(ctx context.Context) ([]string, error) {
	dir, err := s.Dir()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	type result struct {
		files []string
		err   error
	}
	done := make(chan result, 1)
	go func() {
		files, err := s.readDir(dir)
		done <- result{files: files, err: err}
	}()

	select {
	case r := <-done:
		return r.files, r.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &IOError{Op: "read dir", Path: dir, Err: ErrScanTimeout}
		}
		return nil, ctx.Err()
	}
}

func (s *Scanner) read(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &IOError{Op: "open", Path: dir, Err: err}
	}
	defer func() { _ = f.Close() }()

	// File.ReadDir keeps directory order; os.ReadDir would sort by name.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &IOError{Op: "read dir", Path: dir, Err: err}
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if s.match != nil && !s.match.Match(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if !isRegularFile(path, entry) {
			continue
		}
		files = append(files, path)
	}
	return files, nil
}

// isRegularFile follows symlinks so a link to a key file is listed.
func isRegularFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

func resolveDir(dir, home string) (string, error) {
	trimmed := strings.TrimSpace(dir)
	if trimmed == "" {
		trimmed = DefaultDir
	}
	if trimmed == "~" || strings.HasPrefix(trimmed, "~/") {
		if home == "" {
			return "", &ConfigurationError{Setting: "HOME", Err: ErrHomeNotSet}
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	abs, err := filepath.Abs(trimmed)
	if err != nil {
		return "", &ConfigurationError{Setting: "keys_dir", Err: err}
	}
	return abs, nil
}
