// Package prompt implements the prompt-read-validate loop: show a
// prompt, read one line, trim it, hand it to a validator, and either
// accept the value or print a diagnostic and ask again.
//
// How often the loop asks again is decided by a [retry.Budget]:
// unbounded, or bounded by an attempt ceiling after which [Ask]
// returns an error matching [errs.ErrTooManyAttempts].  Console
// failures (including end of input) are never retried.
package prompt

import (
	"context"
	"strings"

	"drills/internal/console"
	errs "drills/internal/errors"
	"drills/internal/retry"
	"drills/internal/session"
	"drills/util"
)

// Validator maps trimmed input to an accepted value, or returns a
// [*errs.ValidationError] describing why it was rejected.  Any other
// error aborts the loop.
type Validator[T any] func(input string) (T, error)

// Rejection describes one failed attempt, as passed to OnReject.
type Rejection struct {
	Input     string // trimmed text that was rejected
	Err       error  // the validator's error, without Input for secrets
	Attempt   int    // 1-based
	Remaining int    // attempts left, -1 when unbounded
	Last      bool   // no further attempt follows
}

// Question configures one run of the loop.
type Question[T any] struct {
	Prompt   string
	Validate Validator[T]

	// Budget bounds the attempts; the zero value asks forever.
	Budget retry.Budget

	// Secret reads without echo when the console is a terminal.
	Secret bool

	// OnReject prints the diagnostic for a failed attempt.  When nil
	// the validator's message is printed on its own line.
	OnReject func(c *console.Console, r Rejection)
}

// Ask runs the loop until a value is accepted, the budget is spent,
// the context is cancelled, or the console fails.
func Ask[T any](ctx context.Context, sess *session.Session, q Question[T]) (T, error) {
	var (
		value T
		con   = sess.Console
		log   = sess.Logger.Scoped("prompt")
		state = Prompting
	)

	err := q.Budget.Do(ctx, func(attempt int) error {
		state = step(log, state, Prompting)
		sess.Metrics.PromptShown()
		con.Print(q.Prompt)

		raw, err := read(con, q.Secret)
		if err != nil {
			return retry.Permanent(err)
		}

		// Only the latest read is ever inspected.
		input := strings.TrimSpace(raw)
		state = step(log, state, Validating)

		v, err := q.Validate(input)
		if err != nil {
			if errs.IsFatal(err) {
				return retry.Permanent(err)
			}
			if q.Secret {
				err = errs.Redact(err)
			}
			sess.Metrics.Rejected()
			last := q.Budget.Last(attempt)
			if last {
				state = step(log, state, RejectedTerminal)
			} else {
				state = step(log, state, RejectedRetry)
			}
			reject(con, q.OnReject, Rejection{
				Input:     input,
				Err:       err,
				Attempt:   attempt,
				Remaining: q.Budget.Remaining(attempt),
				Last:      last,
			})
			return err
		}

		value = v
		state = step(log, state, Accepted)
		sess.Metrics.Accepted()
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrTooManyAttempts) {
			sess.Metrics.Exhausted()
		} else {
			sess.Metrics.RecordError(err.Error())
		}
		var zero T
		return zero, err
	}
	return value, nil
}

// Confirm asks a yes/no question until it gets "y", "yes", "n" or "no"
// in any case.
func Confirm(ctx context.Context, sess *session.Session, question string) (bool, error) {
	answer, err := Ask(ctx, sess, Question[string]{
		Prompt:   question,
		Validate: OneOf("Please answer 'y' or 'n'.", "y", "yes", "n", "no"),
	})
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}

func read(con *console.Console, secret bool) (string, error) {
	if secret {
		return con.ReadSecret()
	}
	return con.ReadLine()
}

func reject(con *console.Console, onReject func(*console.Console, Rejection), r Rejection) {
	if onReject != nil {
		onReject(con, r)
		return
	}
	con.Println(errs.Diagnostic(r.Err))
}

func step(log *util.Logger, from, to State) State {
	if from != to {
		log.Debug("%s -> %s", from, to)
	}
	return to
}
