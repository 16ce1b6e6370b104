package config

// loader.go - configuration loading from a YAML file and environment
// variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables
//   3. YAML config file
//   4. Defaults   (defaults.go)

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load builds a Config from the defaults, the YAML file at path (or
// $DRILLS_CONFIG when path is empty), and the environment.  A missing
// path is not an error; a path that cannot be read or parsed is.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path == "" {
		path = os.Getenv(EnvPrefix + "CONFIG")
	}
	if path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	LoadFromEnv(cfg)
	return cfg, nil
}

// ── YAML file ────────────────────────────────────────────────────────

// fileConfig mirrors the YAML layout.  Pointer fields distinguish
// "absent" from zero.
type fileConfig struct {
	Exercise     string       `yaml:"exercise"`
	MaxAttempts  *int         `yaml:"max_attempts"`
	RetryDelayMS *int         `yaml:"retry_delay_ms"`
	Stats        *bool        `yaml:"stats"`
	Verbose      *int         `yaml:"verbose"`
	Credentials  []Credential `yaml:"credentials"`
}

// LoadFile overlays the YAML file at path onto cfg.  Unknown keys are
// rejected so typos surface instead of silently doing nothing.
func LoadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			cfg.ConfigPath = path
			return nil
		}
		return fmt.Errorf("config file %s: %w", path, err)
	}

	if fc.Exercise != "" {
		cfg.Exercise = fc.Exercise
	}
	if fc.MaxAttempts != nil {
		cfg.MaxAttempts = *fc.MaxAttempts
	}
	if fc.RetryDelayMS != nil {
		cfg.RetryDelay = millisDuration(*fc.RetryDelayMS)
	}
	if fc.Stats != nil {
		cfg.Stats = *fc.Stats
	}
	if fc.Verbose != nil {
		cfg.Verbose = *fc.Verbose
	}
	if len(fc.Credentials) > 0 {
		cfg.Credentials = fc.Credentials
	}
	cfg.ConfigPath = path
	return nil
}

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the DRILLS_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.
func LoadFromEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "EXERCISE"); v != "" {
		cfg.Exercise = v
	}
	if v := envInt(EnvPrefix + "MAX_ATTEMPTS"); v > 0 {
		cfg.MaxAttempts = v
	}
	if v := envInt(EnvPrefix + "RETRY_DELAY_MS"); v > 0 {
		cfg.RetryDelay = millisDuration(v)
	}
	if envBool(EnvPrefix + "STATS") {
		cfg.Stats = true
	}
	if v := envInt(EnvPrefix + "VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}

func millisDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
