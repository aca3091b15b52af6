package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default config should validate, got: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefault(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML differs from hardcoded default:\nYAML: %+v\ncode: %+v", cfg, Default())
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero world width", func(c *Config) { c.World.Width = 0 }},
		{"ground taller than world", func(c *Config) { c.World.GroundHeight = c.World.Height }},
		{"negative gravity", func(c *Config) { c.Physics.Gravity = -1 }},
		{"downward flap impulse", func(c *Config) { c.Physics.FlapImpulse = 5 }},
		{"zero terminal velocity", func(c *Config) { c.Physics.TerminalVelocity = 0 }},
		{"zero bird radius", func(c *Config) { c.Bird.Radius = 0 }},
		{"bird off field", func(c *Config) { c.Bird.X = c.World.Width + 1 }},
		{"zero obstacle speed", func(c *Config) { c.Obstacles.Speed = 0 }},
		{"zero spawn interval", func(c *Config) { c.Obstacles.SpawnInterval = 0 }},
		{"gap too small for bird", func(c *Config) { c.Obstacles.GapSize = c.Bird.Radius }},
		{"negative clearance", func(c *Config) { c.Obstacles.MinClearance = -1 }},
		{
			// gap_size + 2*min_clearance > field height is the canonical
			// inconsistent-constants case and must fail fast at startup.
			"gap plus clearances exceed field",
			func(c *Config) { c.Obstacles.MinClearance = c.World.FieldHeight() / 2 },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should reject this config")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	custom := Default()
	custom.Obstacles.GapSize = 240
	data, err := yaml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Obstacles.GapSize != 240 {
		t.Errorf("expected gap size 240 from custom config, got %g", cfg.Obstacles.GapSize)
	}
}

func TestLoadCustomPathMissingIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should error")
	}
}

func TestLoadRejectsInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")

	bad := Default()
	bad.Obstacles.MinClearance = bad.World.FieldHeight() // cannot fit any gap
	data, err := yaml.Marshal(bad)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should reject a config with impossible obstacle geometry")
	}
}
