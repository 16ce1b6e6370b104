package core

import (
	"fmt"

	"drills/config"
	errs "drills/internal/errors"
	"drills/internal/exercise"
	"drills/internal/metrics"
	"drills/util"
)

// Build constructs the appropriate Mode from the given configuration.
// The collector may be nil.
func Build(cfg *config.Config, logger *util.Logger, m *metrics.Collector) (Mode, error) {
	switch {
	case cfg.List:
		return &ListMode{}, nil
	case cfg.Menu:
		return &MenuMode{
			Options: options(cfg),
			Logger:  logger,
			Metrics: m,
		}, nil
	default:
		return buildExercise(cfg, logger, m)
	}
}

func buildExercise(cfg *config.Config, logger *util.Logger, m *metrics.Collector) (Mode, error) {
	entry, ok := exercise.Lookup(cfg.Exercise)
	if !ok {
		return nil, &errs.ConfigError{
			Field:   "exercise",
			Value:   cfg.Exercise,
			Message: "no such exercise",
			Hint:    "run 'drills --list' to see the available exercises",
			Err:     errs.ErrUnknownExercise,
		}
	}
	logger.Verbose("selected exercise %s (%s)", entry.ID, entry.Name)

	return &ExerciseMode{
		Entry:   entry,
		Options: options(cfg),
		Logger:  logger,
		Metrics: m,
	}, nil
}

// options maps the configuration onto what exercises understand.
func options(cfg *config.Config) exercise.Options {
	o := exercise.Options{
		MaxAttempts: cfg.MaxAttempts,
		RetryDelay:  cfg.RetryDelay,
	}
	for _, c := range cfg.Credentials {
		o.Credentials = append(o.Credentials, exercise.Credential{
			Role: c.Role,
			Hash: []byte(c.Hash),
		})
	}
	return o
}

// describe formats an entry for logs and listings.
func describe(e exercise.Entry) string {
	return fmt.Sprintf("%s %s", e.ID, e.Name)
}
