// Package retry provides the attempt budget that drives every
// re-prompting loop: bounded or unbounded retries, an optional pause
// between attempts, and permanent errors that stop immediately.
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	errs "drills/internal/errors"
)

// ── Permanent errors ─────────────────────────────────────────────────

// PermanentError wraps an error to signal that retrying will not help.
// Return [Permanent](err) from the attempt function to stop retrying
// immediately.
type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as non-retryable.  The loop will return the
// inner error immediately without further attempts.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

// IsPermanent reports whether err has been marked as permanent.
func IsPermanent(err error) bool {
	var pe *PermanentError
	return errors.As(err, &pe)
}

// ── Exhaustion ───────────────────────────────────────────────────────

// ExhaustedError is returned when the attempt ceiling is reached.  It
// matches [errs.ErrTooManyAttempts] and unwraps to the last failure.
type ExhaustedError struct {
	Attempts int
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("max attempts (%d) exceeded: %v", e.Attempts, e.Last)
}

func (e *ExhaustedError) Unwrap() []error {
	return []error{errs.ErrTooManyAttempts, e.Last}
}

// ── Budget ───────────────────────────────────────────────────────────

// Budget bounds how many times an operation is attempted.
type Budget struct {
	// MaxAttempts is the total number of tries including the first.
	// Zero means unlimited (until the context is cancelled).
	MaxAttempts int
	// Delay is the pause before each retry.  Zero retries at once.
	Delay time.Duration
}

// Unbounded returns a budget that retries forever without pausing.
func Unbounded() Budget { return Budget{} }

// Bounded returns a budget of n attempts without pausing.
func Bounded(n int) Budget { return Budget{MaxAttempts: n} }

// Remaining reports how many attempts are left after the given
// 1-based attempt.  It returns -1 for an unbounded budget.
func (b Budget) Remaining(attempt int) int {
	if b.MaxAttempts <= 0 {
		return -1
	}
	if left := b.MaxAttempts - attempt; left > 0 {
		return left
	}
	return 0
}

// Last reports whether the given 1-based attempt is the final one.
func (b Budget) Last(attempt int) bool {
	return b.MaxAttempts > 0 && attempt >= b.MaxAttempts
}

// Do executes fn repeatedly until it succeeds, returns a permanent
// error, or the budget (attempts / context) is exhausted.
//
// The attempt parameter passed to fn is 1-based.  On success fn should
// return nil.  To abort retrying, wrap the error with [Permanent].
func (b Budget) Do(ctx context.Context, fn func(attempt int) error) error {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry cancelled: %w", err)
		}

		err := fn(attempt)
		if err == nil {
			return nil
		}

		// Permanent errors are never retried.
		if IsPermanent(err) {
			return errors.Unwrap(err)
		}

		if b.Last(attempt) {
			return &ExhaustedError{Attempts: attempt, Last: err}
		}

		if b.Delay <= 0 {
			continue
		}

		timer := time.NewTimer(b.Delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}
}
