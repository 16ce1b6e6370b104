package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"

	errs "drills/internal/errors"
	"drills/internal/exercise"
	"drills/internal/metrics"
	"drills/internal/prompt"
	"drills/internal/session"
	"drills/util"
)

// MenuMode lets the user pick exercises one after another from the
// catalog until they quit.  All exercises share one session, so input
// typed ahead is never lost between them.
type MenuMode struct {
	Options exercise.Options
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	Stdin  io.Reader
	Stdout io.Writer
}

const menuPrompt = "Pick an exercise (number or name, q to quit): "

// Run loops: show the catalog, pick, run, ask to continue.
func (m *MenuMode) Run(ctx context.Context) error {
	var in io.Reader = os.Stdin
	if m.Stdin != nil {
		in = m.Stdin
	}
	var out io.Writer = os.Stdout
	if m.Stdout != nil {
		out = m.Stdout
	}
	sess := session.New(in, out, m.Logger, m.Metrics)

	var catalog bytes.Buffer
	if err := writeCatalog(&catalog); err != nil {
		return err
	}

	for {
		sess.Console.Print(catalog.String())
		entry, err := prompt.Ask(ctx, sess, prompt.Question[exercise.Entry]{
			Prompt:   menuPrompt,
			Validate: pickEntry,
		})
		if err != nil {
			return err
		}
		if entry.ID == "" {
			sess.Console.Println("Bye!")
			return sess.Console.Err()
		}

		sess.Console.Println()
		err = runEntry(ctx, sess, entry, m.Options)
		switch {
		case errs.Is(err, errs.ErrTooManyAttempts):
			// The exercise already told the user; offer another one.
		case err != nil:
			return err
		}

		sess.Console.Println()
		again, err := prompt.Confirm(ctx, sess, "Run another exercise? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			sess.Console.Println("Bye!")
			return sess.Console.Err()
		}
	}
}

// pickEntry resolves a catalog key.  "q" and "quit" yield the zero
// Entry.
func pickEntry(input string) (exercise.Entry, error) {
	switch strings.ToLower(input) {
	case "q", "quit":
		return exercise.Entry{}, nil
	}
	e, ok := exercise.Lookup(input)
	if !ok {
		return exercise.Entry{}, errs.Invalid(input, "No such exercise. Type its number or name.", nil)
	}
	return e, nil
}
