package nodecore

import (
	"errors"
	"fmt"
)

// Kind classifies a run failure so callers can branch on the failure class
// instead of inspecting error messages.
type Kind int

const (
	// KindIO covers read and write failures on the input and output paths.
	// It is currently the only failure class; processing itself never fails.
	KindIO Kind = iota + 1
)

func (k Kind) String() string {
	if k == KindIO {
		return "io"
	}
	return "unknown"
}

// Error tags an underlying failure with its kind, the operation that was
// running and the path involved.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsIO reports whether err is, or wraps, an I/O-kinded Error.
func IsIO(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindIO
}
