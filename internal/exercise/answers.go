package exercise

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	errs "drills/internal/errors"
	"drills/internal/prompt"
	"drills/internal/session"
)

type boolean struct{ opts Options }

func (e *boolean) Run(ctx context.Context, sess *session.Session) error {
	talk, err := prompt.Ask(ctx, sess, prompt.Question[bool]{
		Prompt:   "Do you want to talk with me?(true/false): ",
		Validate: prompt.Bool("I didn't understand that."),
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	if talk {
		sess.Console.Println("No, I'm busy plotting my next evil scheme! Muahaha, get out!")
	} else {
		sess.Console.Println("Okay, maybe later.")
	}
	return sess.Console.Err()
}

// emptyCheck only lets "yes" through.  "no" is checked before the
// length rule so it gets its own reply.
type emptyCheck struct{ opts Options }

func (e *emptyCheck) Run(ctx context.Context, sess *session.Session) error {
	_, err := prompt.Ask(ctx, sess, prompt.Question[string]{
		Prompt:   "Do you want to talk to me? (yes/no)",
		Validate: yesOnly,
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	sess.Console.Println("Great! Let's talk!")
	return sess.Console.Err()
}

func yesOnly(input string) (string, error) {
	switch {
	case strings.EqualFold(input, "yes"):
		return "yes", nil
	case strings.EqualFold(input, "no"):
		return "", errs.Invalid(input, "You must talk to me!There is no escape!", nil)
	case utf8.RuneCountInString(input) < 2:
		return "", errs.Invalid(input, "Please enter a valid response.", nil)
	default:
		return "", errs.Invalid(input, "Invalid response. Please enter 'yes' or 'no'.", nil)
	}
}

var languages = []string{"python", "cpp", "rust", "javascript"}

const rightChoice = 3

// choice asks a multiple-choice question until the right option is
// picked.  Wrong options and out-of-range numbers are framed by blank
// lines; text that is not a number is not.
type choice struct{ opts Options }

func (e *choice) Run(ctx context.Context, sess *session.Session) error {
	var b strings.Builder
	b.WriteString("What is the best programming language?\n")
	for i, lang := range languages {
		fmt.Fprintf(&b, "%d) %s\n", i+1, lang)
	}
	b.WriteString("Which one?(1,2,3,4)")

	_, err := prompt.Ask(ctx, sess, prompt.Question[uint8]{
		Prompt:   b.String(),
		Validate: validateChoice,
		Budget:   e.opts.unbounded(),
	})
	if err != nil {
		return err
	}
	sess.Console.Println()
	sess.Console.Println("You finally make a right choice!")
	return sess.Console.Err()
}

func validateChoice(input string) (uint8, error) {
	n, err := prompt.Uint8("Invalid input!")(input)
	if err != nil {
		return 0, err
	}
	switch {
	case n == rightChoice:
		return n, nil
	case n >= 1 && int(n) <= len(languages):
		return 0, errs.Invalid(input, "\nYou mean rust? answer again.\n", nil)
	default:
		return 0, errs.Invalid(input, "\nInvalid choice!\n", nil)
	}
}
