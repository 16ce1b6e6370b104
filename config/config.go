// Package config defines the runtime configuration for drills and the
// rules that keep it consistent.
package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	errs "drills/internal/errors"
)

// Config holds every tuneable for a single drills run.
type Config struct {
	// ── Selection ────────────────────────────────────────────────────
	Exercise string // ID or name of the exercise to run
	List     bool   // print the catalog and exit
	Menu     bool   // pick an exercise interactively

	// ── Prompt loop ──────────────────────────────────────────────────
	MaxAttempts int           // ceiling for bounded prompts
	RetryDelay  time.Duration // pause before re-prompting

	// ── Password exercise ────────────────────────────────────────────
	Credentials []Credential

	// ── Sources ──────────────────────────────────────────────────────
	ConfigPath string // YAML file the config was read from, if any

	// ── Output ───────────────────────────────────────────────────────
	Verbose int
	Stats   bool // print a metrics snapshot to stderr on exit
}

// Credential is an accepted password for the password exercise.
type Credential struct {
	Role string `yaml:"role"`
	Hash string `yaml:"hash"` // bcrypt hash, e.g. "$2a$10$..."
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.List && c.Menu {
		return &errs.ConfigError{
			Field:   "menu",
			Message: "--list and --menu are mutually exclusive",
		}
	}
	if !c.List && !c.Menu && c.Exercise == "" {
		return &errs.ConfigError{
			Field:   "exercise",
			Message: "required unless --list or --menu is given",
			Hint:    "run 'drills --list' to see the available exercises",
		}
	}

	if c.MaxAttempts < 1 {
		return &errs.ConfigError{
			Field:   "max-attempts",
			Value:   c.MaxAttempts,
			Message: "must be at least 1",
			Hint:    fmt.Sprintf("omit the flag to use the default of %d", DefaultMaxAttempts),
		}
	}

	if c.RetryDelay < 0 || c.RetryDelay > MaxRetryDelay {
		return &errs.ConfigError{
			Field:   "retry-delay",
			Value:   c.RetryDelay,
			Message: fmt.Sprintf("must be between 0 and %s", MaxRetryDelay),
		}
	}

	for i, cr := range c.Credentials {
		if cr.Role == "" {
			return &errs.ConfigError{
				Field:   fmt.Sprintf("credentials[%d].role", i),
				Message: "role is required",
			}
		}
		if _, err := bcrypt.Cost([]byte(cr.Hash)); err != nil {
			return &errs.ConfigError{
				Field:   fmt.Sprintf("credentials[%d].hash", i),
				Message: fmt.Sprintf("%v: %v", errs.ErrCredentialFormat, err),
				Hint:    "generate one with: htpasswd -bnBC 10 \"\" <password> | tr -d ':'",
			}
		}
	}

	return nil
}
