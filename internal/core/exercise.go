package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"drills/internal/exercise"
	"drills/internal/metrics"
	"drills/internal/session"
	"drills/util"
)

// ExerciseMode runs a single exercise against stdin/stdout.
type ExerciseMode struct {
	Entry   exercise.Entry
	Options exercise.Options
	Logger  *util.Logger
	Metrics *metrics.Collector

	// Stdin/Stdout default to os.Stdin/os.Stdout when nil.
	// Override in tests for deterministic I/O.
	Stdin  io.Reader
	Stdout io.Writer
}

func (m *ExerciseMode) stdin() io.Reader {
	if m.Stdin != nil {
		return m.Stdin
	}
	return os.Stdin
}

func (m *ExerciseMode) stdout() io.Writer {
	if m.Stdout != nil {
		return m.Stdout
	}
	return os.Stdout
}

// Run creates a session and hands it to the exercise.
func (m *ExerciseMode) Run(ctx context.Context) error {
	sess := session.New(m.stdin(), m.stdout(), m.Logger, m.Metrics)
	return runEntry(ctx, sess, m.Entry, m.Options)
}

func runEntry(ctx context.Context, sess *session.Session, e exercise.Entry, o exercise.Options) error {
	sess.Logger.Verbose("exercise %s: start", describe(e))
	sess.Metrics.ExerciseStarted()

	if err := e.New(o).Run(ctx, sess); err != nil {
		sess.Logger.Verbose("exercise %s: %v", describe(e), err)
		return fmt.Errorf("exercise %s: %w", e.Name, err)
	}

	sess.Logger.Verbose("exercise %s: done", describe(e))
	return nil
}
