package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if cfg.Population.Frogs != 5 || cfg.Population.Flies != 99 || cfg.Population.Ferns != 9 {
		t.Errorf("unexpected default population: %+v", cfg.Population)
	}
	if cfg.Frog.MouthMax != 40 || cfg.Frog.MouthSpeed != 0.2 {
		t.Errorf("unexpected frog defaults: %+v", cfg.Frog)
	}
	if cfg.Derived.Width != 1070 || cfg.Derived.Height != 1070 {
		t.Errorf("derived window = %dx%d, want 1070x1070", cfg.Derived.Width, cfg.Derived.Height)
	}
	if cfg.Fly.Mode != FlyModeHover {
		t.Errorf("fly mode = %q, want hover", cfg.Fly.Mode)
	}
}

func TestLoadMergesUserFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pond.yaml")
	data := []byte("population:\n  frogs: 2\nfern:\n  growth_rate: 0.5\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Population.Frogs != 2 {
		t.Errorf("frogs = %d, want 2", cfg.Population.Frogs)
	}
	// Untouched fields keep their defaults
	if cfg.Population.Flies != 99 {
		t.Errorf("flies = %d, want default 99", cfg.Population.Flies)
	}
	if cfg.Fern.GrowthRate != 0.5 {
		t.Errorf("growth_rate = %v, want 0.5", cfg.Fern.GrowthRate)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		want   string
	}{
		{"zero age cap", func(c *Config) { c.Fern.AgeCap = Range{0, 10} }, "fern.age_cap.min"},
		{"negative height cap", func(c *Config) { c.Fern.HeightCap = Range{-5, 10} }, "fern.height_cap.min"},
		{"inverted range", func(c *Config) { c.Frog.Size = Range{160, 80} }, "frog.size"},
		{"negative count", func(c *Config) { c.Population.Flies = -1 }, "population.flies"},
		{"bad fly mode", func(c *Config) { c.Fly.Mode = "zoom" }, "fly.mode"},
		{"color overflow", func(c *Config) { c.Fern.Green = Range{200, 300} }, "fern.green"},
		{"mouth bounds", func(c *Config) { c.Frog.MouthMax = c.Frog.MouthMin }, "frog.mouth_max"},
		{"zero grid size", func(c *Config) { c.Grid.Size = 0 }, "grid.size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Population.Frogs = -1
	cfg.Fern.GrowthRate = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "population.frogs") || !strings.Contains(msg, "fern.growth_rate") {
		t.Errorf("expected both problems reported, got %q", msg)
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Default()
	cfg.Population.Ferns = 3

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load snapshot failed: %v", err)
	}
	if loaded.Population.Ferns != 3 {
		t.Errorf("ferns = %d, want 3", loaded.Population.Ferns)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic from Cfg before Init")
		}
	}()
	Cfg()
}
