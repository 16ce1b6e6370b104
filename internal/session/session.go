// Package session represents a single exercise run, binding the
// console with the logger and metrics shared by everything the run
// touches.
//
// An exercise reads and writes only through the session's Console, so
// it runs the same against os.Stdin or a test buffer.
package session

import (
	"io"

	"drills/internal/console"
	"drills/internal/metrics"
	"drills/util"
)

// Session encapsulates the runtime context for one exercise run.
type Session struct {
	Console *console.Console
	Logger  *util.Logger
	Metrics *metrics.Collector
}

// New creates a Session reading from stdin and writing to stdout.
// A nil logger is replaced with a quiet one; a nil collector is a
// valid no-op.
func New(stdin io.Reader, stdout io.Writer, logger *util.Logger, m *metrics.Collector) *Session {
	if logger == nil {
		logger = util.Discard()
	}
	return &Session{
		Console: console.New(stdin, stdout),
		Logger:  logger,
		Metrics: m,
	}
}
