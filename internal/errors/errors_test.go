package errors

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"testing"
)

func TestIOError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  IOError
		want string
	}{
		{
			name: "read closed",
			err:  IOError{Op: "read", Err: ErrInputClosed},
			want: "console read: input closed",
		},
		{
			name: "write failure",
			err:  IOError{Op: "write", Err: fmt.Errorf("broken pipe")},
			want: "console write: broken pipe",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrap_NormalisesEOF(t *testing.T) {
	for _, inner := range []error{io.EOF, fmt.Errorf("read stdin: %w", io.EOF), os.ErrClosed} {
		err := Wrap("read", inner)
		if !Is(err, ErrInputClosed) {
			t.Errorf("Wrap(%v) should match ErrInputClosed", inner)
		}
	}
}

func TestWrap_KeepsOtherErrors(t *testing.T) {
	inner := fmt.Errorf("device gone")
	err := Wrap("write", inner)
	if err.Op != "write" {
		t.Errorf("Op = %q, want write", err.Op)
	}
	if !Is(err, inner) {
		t.Error("should unwrap to inner error")
	}
	if Is(err, ErrInputClosed) {
		t.Error("non-EOF error should not match ErrInputClosed")
	}
}

func TestValidationError_Unwrap(t *testing.T) {
	_, parseErr := strconv.Atoi("abc")
	err := Invalid("abc", "Invalid input. Please type a number!", parseErr)

	if !Is(err, ErrInvalidInput) {
		t.Error("should match ErrInvalidInput")
	}
	var numErr *strconv.NumError
	if !As(err, &numErr) {
		t.Error("should unwrap to *strconv.NumError")
	}
}

func TestValidationError_NoCause(t *testing.T) {
	err := Invalid("", "Please enter a valid response.", nil)
	if !Is(err, ErrInvalidInput) {
		t.Error("should match ErrInvalidInput")
	}
	want := "Please enter a valid response."
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRedact(t *testing.T) {
	_, parseErr := strconv.Atoi("hunter2")
	err := Redact(Invalid("hunter2", "Access denied!", parseErr))
	if strings.Contains(err.Error(), "hunter2") {
		t.Errorf("redacted error still carries the input: %q", err.Error())
	}
	if !Is(err, ErrInvalidInput) {
		t.Error("redacted error should still match ErrInvalidInput")
	}
	if Diagnostic(err) != "Access denied!" {
		t.Errorf("Diagnostic = %q", Diagnostic(err))
	}

	other := New("boom")
	if Redact(other) != other {
		t.Error("non-validation errors should pass through")
	}
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "max-attempts",
				Value:   0,
				Message: "must be at least 1",
				Hint:    "omit the flag to use the default of 3",
			},
			want: "config: --max-attempts=0: must be at least 1\n  hint: omit the flag to use the default of 3",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "exercise",
				Message: "required unless --list or --menu is given",
			},
			want: "config: --exercise: required unless --list or --menu is given",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"validation", Invalid("x", "nope", nil), false},
		{"wrapped validation", fmt.Errorf("attempt 2: %w", Invalid("x", "nope", nil)), false},
		{"io", Wrap("read", io.EOF), true},
		{"plain", fmt.Errorf("boom"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFatal(tt.err); got != tt.want {
				t.Errorf("IsFatal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiagnostic(t *testing.T) {
	if got := Diagnostic(Invalid("x", "Invalid input!", nil)); got != "Invalid input!" {
		t.Errorf("got %q", got)
	}
	if got := Diagnostic(fmt.Errorf("boom")); got != "boom" {
		t.Errorf("got %q", got)
	}
}

func TestSentinels(t *testing.T) {
	// Verify sentinel errors are distinct.
	sentinels := []error{
		ErrInputClosed, ErrTooManyAttempts, ErrInvalidInput,
		ErrUnknownExercise, ErrCredentialFormat,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && Is(a, b) {
				t.Errorf("sentinel %d and %d should not match", i, j)
			}
		}
	}
}
