package game

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadConfig_EmptyPathIsDefault(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Fatal("empty path should return the defaults")
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "move_speed: 6\nwave_size: 3\nfog_distance: 20\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.MoveSpeed != 6 || cfg.WaveSize != 3 || cfg.FogDistance != 20 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.FocalLength != DefaultConfig().FocalLength {
		t.Fatalf("missing fields should keep defaults, focal=%.1f", cfg.FocalLength)
	}
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	path := writeConfig(t, "ray_step: 0\n")
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if errors.Is(err, ErrInvalidConfig) {
		t.Fatal("a missing file is not a validation error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "move_speed: [1, 2\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestValidate_Rules(t *testing.T) {
	cases := map[string]func(*Config){
		"negative radius":      func(c *Config) { c.PlayerRadius = -1 },
		"step beyond range":    func(c *Config) { c.RayStep = c.RayRange + 1 },
		"empty waves":          func(c *Config) { c.WaveSize = 0 },
		"spawn inside contact": func(c *Config) { c.SpawnMinRadius = c.ContactRadius },
		"spawn min above max":  func(c *Config) { c.SpawnMinRadius = c.SpawnMaxRadius + 1 },
		"spawn beyond arena":   func(c *Config) { c.SpawnMaxRadius = c.ArenaHalfSize * 2 },
		"infinite nudge":       func(c *Config) { c.SeparationNudge = math.Inf(1) },
		"infinite jump":        func(c *Config) { c.JumpSpeed = math.Inf(1) },
		"NaN damage":           func(c *Config) { c.ContactDamage = math.NaN() },
		"negative hit marker":  func(c *Config) { c.HitMarkerSec = -0.1 },
		"negative offset":      func(c *Config) { c.RecoilOffset = -5 },
		"infinite pulse":       func(c *Config) { c.ScalePulse = math.Inf(1) },
	}
	for name, edit := range cases {
		cfg := DefaultConfig()
		edit(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("%s: expected ErrInvalidConfig, got %v", name, err)
		}
	}
}

func TestLoadConfig_RejectsInfinity(t *testing.T) {
	path := writeConfig(t, "separation_nudge: .inf\n")
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for an infinite nudge, got %v", err)
	}
}
