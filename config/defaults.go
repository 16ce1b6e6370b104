package config

import "time"

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags, config file parsing, and environment variable
// loading.

const (
	// DefaultMaxAttempts is the attempt ceiling for bounded prompts.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the pause between a rejected answer and the
	// next prompt.
	DefaultRetryDelay = 0 * time.Second

	// MaxRetryDelay caps --retry-delay so a typo cannot hang a session.
	MaxRetryDelay = 10 * time.Second

	// EnvPrefix is prepended to every supported environment variable.
	EnvPrefix = "DRILLS_"
)

// Defaults returns a Config populated with the default values.
func Defaults() *Config {
	return &Config{
		MaxAttempts: DefaultMaxAttempts,
		RetryDelay:  DefaultRetryDelay,
	}
}
