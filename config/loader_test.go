package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func clearDrillsEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"EXERCISE", "MAX_ATTEMPTS", "RETRY_DELAY_MS", "STATS", "VERBOSE", "CONFIG"} {
		t.Setenv(EnvPrefix+k, "")
	}
}

func TestLoadFromEnv_Exercise(t *testing.T) {
	t.Setenv("DRILLS_EXERCISE", "split")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Exercise != "split" {
		t.Errorf("Exercise = %q, want %q", cfg.Exercise, "split")
	}
}

func TestLoadFromEnv_MaxAttempts(t *testing.T) {
	t.Setenv("DRILLS_MAX_ATTEMPTS", "5")
	cfg := Defaults()
	LoadFromEnv(cfg)
	if cfg.MaxAttempts != 5 {
		t.Errorf("MaxAttempts = %d, want 5", cfg.MaxAttempts)
	}
}

func TestLoadFromEnv_RetryDelay(t *testing.T) {
	t.Setenv("DRILLS_RETRY_DELAY_MS", "250")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.RetryDelay != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v, want 250ms", cfg.RetryDelay)
	}
}

func TestLoadFromEnv_Stats(t *testing.T) {
	for _, v := range []string{"1", "true", "yes", "TRUE", "Yes"} {
		t.Run(v, func(t *testing.T) {
			t.Setenv("DRILLS_STATS", v)
			cfg := &Config{}
			LoadFromEnv(cfg)
			if !cfg.Stats {
				t.Error("Stats should be true")
			}
		})
	}
}

func TestLoadFromEnv_NoOverrideWhenEmpty(t *testing.T) {
	clearDrillsEnv(t)

	cfg := &Config{Exercise: "original", MaxAttempts: 7}
	LoadFromEnv(cfg)

	if cfg.Exercise != "original" {
		t.Errorf("Exercise was overridden: %q", cfg.Exercise)
	}
	if cfg.MaxAttempts != 7 {
		t.Errorf("MaxAttempts was overridden: %d", cfg.MaxAttempts)
	}
}

func TestLoadFromEnv_InvalidIntIgnored(t *testing.T) {
	t.Setenv("DRILLS_MAX_ATTEMPTS", "lots")
	cfg := Defaults()
	LoadFromEnv(cfg)
	if cfg.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("MaxAttempts should stay %d for invalid input, got %d", DefaultMaxAttempts, cfg.MaxAttempts)
	}
}

func TestLoadFromEnv_Verbose(t *testing.T) {
	t.Setenv("DRILLS_VERBOSE", "3")
	cfg := &Config{}
	LoadFromEnv(cfg)
	if cfg.Verbose != 3 {
		t.Errorf("Verbose = %d, want 3", cfg.Verbose)
	}
}

// ── YAML file ────────────────────────────────────────────────────────

func TestLoadFile(t *testing.T) {
	path := filepath.Join("testdata", "drills.yaml")
	cfg := Defaults()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	want := &Config{
		Exercise:    "password",
		MaxAttempts: 5,
		RetryDelay:  250 * time.Millisecond,
		Stats:       true,
		ConfigPath:  path,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Credentials(t *testing.T) {
	hash := validHash(t)
	path := filepath.Join(t.TempDir(), "creds.yaml")
	body := "credentials:\n  - role: admin\n    hash: \"" + hash + "\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := Defaults()
	if err := LoadFile(path, cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	want := []Credential{{Role: "admin", Hash: hash}}
	if diff := cmp.Diff(want, cfg.Credentials); diff != "" {
		t.Errorf("credentials mismatch (-want +got):\n%s", diff)
	}

	cfg.Exercise = "password"
	if err := cfg.Validate(); err != nil {
		t.Errorf("generated hash should validate: %v", err)
	}
}

func TestLoadFile_BadHashFailsValidation(t *testing.T) {
	cfg := Defaults()
	cfg.Exercise = "password"
	if err := LoadFile(filepath.Join("testdata", "bad_hash.yaml"), cfg); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for malformed hash")
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	err := LoadFile(filepath.Join("testdata", "unknown_key.yaml"), Defaults())
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	cfg := Defaults()
	if err := LoadFile(filepath.Join("testdata", "empty.yaml"), cfg); err != nil {
		t.Fatalf("empty file should load: %v", err)
	}
	if cfg.MaxAttempts != DefaultMaxAttempts {
		t.Errorf("MaxAttempts = %d, want default", cfg.MaxAttempts)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if err := LoadFile(filepath.Join("testdata", "nope.yaml"), Defaults()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// ── Load (precedence) ────────────────────────────────────────────────

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearDrillsEnv(t)
	t.Setenv("DRILLS_MAX_ATTEMPTS", "9")

	cfg, err := Load(filepath.Join("testdata", "drills.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxAttempts != 9 {
		t.Errorf("MaxAttempts = %d, want env value 9", cfg.MaxAttempts)
	}
	if cfg.RetryDelay != 250*time.Millisecond {
		t.Errorf("RetryDelay = %v, want file value 250ms", cfg.RetryDelay)
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	clearDrillsEnv(t)
	t.Setenv("DRILLS_CONFIG", filepath.Join("testdata", "drills.yaml"))

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Exercise != "password" {
		t.Errorf("Exercise = %q, want value from DRILLS_CONFIG file", cfg.Exercise)
	}
}

func TestLoad_NoFile(t *testing.T) {
	clearDrillsEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Defaults(), cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}
