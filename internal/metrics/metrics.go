// Package metrics provides lightweight, lock-free counters for
// tracking how a drills session went: prompts shown, answers accepted
// or rejected, attempt ceilings reached.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a drills session.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	prompts    atomic.Int64
	accepted   atomic.Int64
	rejected   atomic.Int64
	exhausted  atomic.Int64
	exercises  atomic.Int64
	errorsSeen atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Prompt metrics ───────────────────────────────────────────────────

// PromptShown counts one displayed prompt (one loop iteration).
func (c *Collector) PromptShown() {
	if c == nil {
		return
	}
	c.prompts.Add(1)
}

// Accepted counts an answer that passed validation.
func (c *Collector) Accepted() {
	if c == nil {
		return
	}
	c.accepted.Add(1)
}

// Rejected counts an answer that failed validation.
func (c *Collector) Rejected() {
	if c == nil {
		return
	}
	c.rejected.Add(1)
}

// Exhausted counts a loop that hit its attempt ceiling.
func (c *Collector) Exhausted() {
	if c == nil {
		return
	}
	c.exhausted.Add(1)
}

// Prompts returns the number of prompts shown.
func (c *Collector) Prompts() int64 {
	if c == nil {
		return 0
	}
	return c.prompts.Load()
}

// Acceptances returns the number of accepted answers.
func (c *Collector) Acceptances() int64 {
	if c == nil {
		return 0
	}
	return c.accepted.Load()
}

// Rejections returns the number of rejected answers.
func (c *Collector) Rejections() int64 {
	if c == nil {
		return 0
	}
	return c.rejected.Load()
}

// Exhaustions returns how many loops ran out of attempts.
func (c *Collector) Exhaustions() int64 {
	if c == nil {
		return 0
	}
	return c.exhausted.Load()
}

// ── Exercise metrics ─────────────────────────────────────────────────

// ExerciseStarted counts one exercise run.
func (c *Collector) ExerciseStarted() {
	if c == nil {
		return
	}
	c.exercises.Add(1)
}

// Exercises returns the number of exercises started.
func (c *Collector) Exercises() int64 {
	if c == nil {
		return 0
	}
	return c.exercises.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsSeen.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsSeen.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Exercises        int64  `json:"exercises"`
	Prompts          int64  `json:"prompts"`
	Accepted         int64  `json:"accepted"`
	Rejected         int64  `json:"rejected"`
	Exhausted        int64  `json:"exhausted"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:      time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Exercises:   c.exercises.Load(),
		Prompts:     c.prompts.Load(),
		Accepted:    c.accepted.Load(),
		Rejected:    c.rejected.Load(),
		Exhausted:   c.exhausted.Load(),
		ErrorsTotal: c.errorsSeen.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
