// Package exercise holds the catalog of interactive console
// exercises.  Each exercise is a leaf: it reads from and writes to
// the session's console and shares no state with any other exercise.
package exercise

import (
	"context"
	"strconv"
	"strings"
	"time"

	"drills/internal/retry"
	"drills/internal/session"
)

// Exercise runs one interactive exercise against a session.
type Exercise interface {
	// Run blocks until the exercise finishes, the console fails, or
	// the context is cancelled.
	Run(ctx context.Context, sess *session.Session) error
}

// Func adapts a plain function to the Exercise interface.
type Func func(ctx context.Context, sess *session.Session) error

// Run calls f.
func (f Func) Run(ctx context.Context, sess *session.Session) error { return f(ctx, sess) }

// Options carries the tuneables exercises may honour.
type Options struct {
	// MaxAttempts is the attempt ceiling for bounded exercises.
	MaxAttempts int
	// RetryDelay pauses between a rejected answer and the next prompt.
	RetryDelay time.Duration
	// Credentials replaces the built-in password list when non-empty.
	Credentials []Credential
}

// unbounded asks until a valid answer arrives.
func (o Options) unbounded() retry.Budget {
	return retry.Budget{Delay: o.RetryDelay}
}

// bounded asks at most MaxAttempts times.
func (o Options) bounded() retry.Budget {
	return retry.Budget{MaxAttempts: o.MaxAttempts, Delay: o.RetryDelay}
}

// Entry describes one catalog item.
type Entry struct {
	ID    string // three-digit course number, e.g. "080"
	Name  string // short CLI name, e.g. "password"
	Title string // one-line summary for --list
	New   func(Options) Exercise
}

var catalog = []Entry{
	{ID: "054", Name: "greet", Title: "Read a line and greet by name", New: func(Options) Exercise { return Func(greet) }},
	{ID: "060", Name: "parse-number", Title: "Parse a line as a number", New: func(o Options) Exercise { return &parseNumber{opts: o} }},
	{ID: "063", Name: "square", Title: "Square numbers until told to stop", New: func(o Options) Exercise { return &square{opts: o} }},
	{ID: "071", Name: "boolean", Title: "Parse true/false from a line", New: func(o Options) Exercise { return &boolean{opts: o} }},
	{ID: "074", Name: "first-char", Title: "Fall back to a default for an empty name", New: func(Options) Exercise { return Func(firstChar) }},
	{ID: "075", Name: "compare", Title: "Compare an answer case-insensitively", New: func(Options) Exercise { return Func(compare) }},
	{ID: "078", Name: "empty-check", Title: "Reject empty and short answers", New: func(o Options) Exercise { return &emptyCheck{opts: o} }},
	{ID: "080", Name: "password", Title: "Password prompt with an attempt ceiling", New: func(o Options) Exercise { return newPassword(o) }},
	{ID: "081", Name: "repeat-valid", Title: "Repeat until a positive number is entered", New: func(o Options) Exercise { return &repeatValid{opts: o} }},
	{ID: "082", Name: "choice", Title: "Multiple-choice question", New: func(o Options) Exercise { return &choice{opts: o} }},
	{ID: "083", Name: "units", Title: "Strip a unit suffix from a number", New: func(o Options) Exercise { return &units{opts: o} }},
	{ID: "084", Name: "split", Title: "Split a line into two numbers", New: func(o Options) Exercise { return &split{opts: o} }},
	{ID: "085", Name: "error-recovery", Title: "Report a parse error instead of crashing", New: func(Options) Exercise { return Func(errorRecovery) }},
}

// All returns every catalog entry in course order.
func All() []Entry {
	out := make([]Entry, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup finds an entry by name ("password"), ID ("080"), unpadded
// number ("80") or prefixed number ("ex080").
func Lookup(key string) (Entry, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	if n, err := strconv.Atoi(strings.TrimPrefix(key, "ex")); err == nil && n >= 0 {
		key = leftPad(strconv.Itoa(n), 3)
	}
	for _, e := range catalog {
		if e.ID == key || e.Name == key {
			return e, true
		}
	}
	return Entry{}, false
}

func leftPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
