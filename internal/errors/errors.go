// Package errors provides domain-specific error types for drills.
//
// These types carry structured context (operation, offending input,
// configuration field) that lets callers tell a fatal console failure
// apart from a recoverable validation failure, and gives better
// diagnostics than plain string wrapping.
package errors

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrInputClosed      = errors.New("input closed")
	ErrTooManyAttempts  = errors.New("too many attempts")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnknownExercise  = errors.New("unknown exercise")
	ErrCredentialFormat = errors.New("malformed credential hash")
)

// ── Structured error types ───────────────────────────────────────────

// IOError represents a failure reading from or writing to the console.
// It is always fatal: the retry loop never re-prompts after one.
type IOError struct {
	Op  string // "read", "read-secret", "write"
	Err error  // underlying error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("console %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ValidationError represents user text that did not satisfy a
// validator.  Message is the diagnostic shown to the user; it is
// printed verbatim before re-prompting.
type ValidationError struct {
	Input   string // trimmed text that was rejected
	Message string // user-facing diagnostic
	Err     error  // underlying parse error (optional)
}

func (e *ValidationError) Error() string {
	switch {
	case e.Input == "" && e.Err != nil:
		return fmt.Sprintf("%s (%v)", e.Message, e.Err)
	case e.Input == "":
		return e.Message
	case e.Err != nil:
		return fmt.Sprintf("%s (input %q: %v)", e.Message, e.Input, e.Err)
	}
	return fmt.Sprintf("%s (input %q)", e.Message, e.Input)
}

// Redact returns err with the rejected text and its parse cause dropped
// from a top-level ValidationError.  Other errors are returned unchanged.
func Redact(err error) error {
	ve, ok := err.(*ValidationError)
	if !ok {
		return err
	}
	c := *ve
	c.Input = ""
	c.Err = nil
	return &c
}

// Unwrap exposes both the parse error and ErrInvalidInput so callers
// can match either.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidInput, e.Err}
	}
	return []error{ErrInvalidInput}
}

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // sentinel or cause (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// Wrap creates an IOError.  End of input is normalised to
// ErrInputClosed so the loop can stop instead of spinning on EOF.
func Wrap(op string, err error) *IOError {
	if errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
		err = ErrInputClosed
	}
	return &IOError{Op: op, Err: err}
}

// Invalid creates a ValidationError with the given diagnostic.
func Invalid(input, message string, cause error) *ValidationError {
	return &ValidationError{Input: input, Message: message, Err: cause}
}

// ── Classification helpers ───────────────────────────────────────────

// IsFatal reports whether err should abort the prompt loop rather than
// re-prompt.  Anything that is not a validation failure is fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var ve *ValidationError
	return !errors.As(err, &ve)
}

// Diagnostic returns the user-facing message for a validation failure,
// or the plain error text for anything else.
func Diagnostic(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use drills/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
