package clipboard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoText indicates the clipboard holds no text-representable content.
	// An empty string on the clipboard is not this error.
	ErrNoText = errors.New("clipboard holds no text")

	// ErrAccessDenied indicates the OS or browser refused the read.
	ErrAccessDenied = errors.New("clipboard access denied")
)

// PlatformError reports a failure of the underlying clipboard call.
// Detail carries the raw platform diagnostic (stderr, DOMException message, ...).
type PlatformError struct {
	Backend string
	Op      string
	Detail  string
	Err     error
}

func (e *PlatformError) Error() string {
	var b strings.Builder
	b.WriteString("clipboard")
	if e.Backend != "" {
		b.WriteString(" (")
		b.WriteString(e.Backend)
		b.WriteString(")")
	}
	if e.Op != "" {
		b.WriteString(" ")
		b.WriteString(e.Op)
	}
	b.WriteString(" failed")
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Err != nil && e.Err.Error() != e.Detail {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// NewPlatformError wraps err as a PlatformError for backend.
func NewPlatformError(backend, op string, err error) *PlatformError {
	pe := &PlatformError{Backend: backend, Op: op, Err: err}
	if err != nil {
		pe.Detail = err.Error()
	}
	return pe
}

// normalize maps arbitrary backend errors onto the taxonomy.
func normalize(backend string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNoText) || errors.Is(err, ErrAccessDenied) {
		return err
	}
	var pe *PlatformError
	if errors.As(err, &pe) {
		return err
	}
	return NewPlatformError(backend, "read", err)
}

// Debug renders err the way a diagnostic display shows it in place of text.
func Debug(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrNoText):
		return "NoText"
	case errors.Is(err, ErrAccessDenied):
		return "AccessDenied"
	}
	var pe *PlatformError
	if errors.As(err, &pe) {
		return fmt.Sprintf("PlatformError { backend: %q, detail: %q }", pe.Backend, pe.Detail)
	}
	return fmt.Sprintf("Other(%q)", err.Error())
}
