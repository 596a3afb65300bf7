package keys

import (
	"errors"
	"fmt"
)

var (
	// ErrHomeNotSet means the key directory needs a home directory and none was supplied.
	ErrHomeNotSet = errors.New("home directory not set")

	// ErrScanTimeout means the directory listing did not finish in time.
	ErrScanTimeout = errors.New("scan timed out")
)

// ConfigurationError reports a key directory that cannot be resolved from the
// supplied configuration.
type ConfigurationError struct {
	Setting string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Setting == "" {
		return fmt.Sprintf("configuration: %v", e.Err)
	}
	return fmt.Sprintf("configuration: %s: %v", e.Setting, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// IOError reports a key directory that could not be opened or read.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsConfiguration reports whether err is, or wraps, a ConfigurationError.
func IsConfiguration(err error) bool {
	var target *ConfigurationError
	return errors.As(err, &target)
}

// IsIO reports whether err is, or wraps, an IOError.
func IsIO(err error) bool {
	var target *IOError
	return errors.As(err, &target)
}
