package exercise

import (
	"context"
	"strings"

	errs "drills/internal/errors"
	"drills/internal/prompt"
	"drills/internal/session"
)

const msgNotANumber = "Invalid input. Please type a number!"

type parseNumber struct{ opts Options }

func (e *parseNumber) Run(ctx context.Context, sess *session.Session) error {
	n, err := prompt.Ask(ctx, sess, prompt.Question[int32]{
		Prompt:   "Enter a number : ",
		Validate: prompt.Int32(msgNotANumber),
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	sess.Console.Printf("You entered: %d\n", n)
	return sess.Console.Err()
}

// square squares numbers round after round.  Each round restarts from
// the introduction, so an unexpected y/n answer simply begins the next
// round instead of nesting a new one.
type square struct{ opts Options }

func (e *square) Run(ctx context.Context, sess *session.Session) error {
	c := sess.Console
	for round := 1; ; round++ {
		sess.Logger.Verbose("square: round %d", round)
		c.Println("Enter a number and I'll square it (e.g., 2 -> 4, 3 -> 9).")

		n, err := prompt.Ask(ctx, sess, prompt.Question[int32]{
			Prompt:   "Please enter a number: ",
			Validate: prompt.Int32(msgNotANumber),
			Budget:   e.opts.unbounded(),
		})
		if err != nil {
			return err
		}
		// int64 holds the square of any int32.
		c.Printf("The square of %d is %d\n", n, int64(n)*int64(n))

		answer, err := prompt.Ask(ctx, sess, prompt.Question[string]{
			Prompt:   "Do you want to enter another number? (y/n): ",
			Validate: prompt.Any(),
		})
		if err != nil {
			return err
		}
		switch strings.ToLower(answer) {
		case "y":
		case "n":
			c.Println("Goodbye!")
			return c.Err()
		default:
			c.Println("Invalid input. Please enter 'y' or 'n'.")
		}
	}
}

type repeatValid struct{ opts Options }

func (e *repeatValid) Run(ctx context.Context, sess *session.Session) error {
	n, err := prompt.Ask(ctx, sess, prompt.Question[uint32]{
		Prompt:   "Enter a positive number: ",
		Validate: prompt.Uint32("Invalid input. Please enter a positive number."),
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	sess.Console.Printf("You entered: %d\n", n)
	return sess.Console.Err()
}

// errorRecovery reads once and reports a bad number instead of
// failing; it does not ask again.
func errorRecovery(ctx context.Context, sess *session.Session) error {
	c := sess.Console
	c.Println("Exercise 85: Error Recovery")
	c.Println("Enter a number:")

	raw, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "> ",
		Validate: prompt.Any(),
	})
	if err != nil {
		return err
	}

	n, err := prompt.Int32("That's not a valid number!")(raw)
	if err != nil {
		c.Println(errs.Diagnostic(err))
		return c.Err()
	}
	c.Printf("You entered: %d\n", n)
	return c.Err()
}
