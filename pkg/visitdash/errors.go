package visitdash

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable indicates the source file does not exist or the remote
// source could not be reached.
var ErrSourceUnavailable = errors.New("source unavailable")

// LoadError represents any other failure while reading or parsing a source.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Err:    err,
	}
}

// unavailable wraps err so that errors.Is(err, ErrSourceUnavailable) holds
// while keeping the underlying message.
func unavailable(source string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, source, err)
}

// IsUnavailable reports whether err signals a missing or unreachable source.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrSourceUnavailable)
}
