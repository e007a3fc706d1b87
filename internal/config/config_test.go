package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("default data dir: want data, got %q", cfg.Data.Dir)
	}
	if cfg.Charts.Theme != "light" {
		t.Errorf("default theme: want light, got %q", cfg.Charts.Theme)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path should not be empty")
	}
}

func TestLoadFrom_ParsesAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[data]
dir = "/srv/lol-data"

[player]
puuid = "pinned-puuid"

[charts]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Data.Dir != "/srv/lol-data" {
		t.Errorf("data dir: want /srv/lol-data, got %q", cfg.Data.Dir)
	}
	if cfg.Player.PUUID != "pinned-puuid" {
		t.Errorf("puuid override lost: %q", cfg.Player.PUUID)
	}
	if cfg.Charts.Theme != "dark" {
		t.Errorf("theme: want dark, got %q", cfg.Charts.Theme)
	}
	// Unset sections fall back.
	if cfg.Charts.OutputDir != "charts" {
		t.Errorf("unset output_dir should default to charts, got %q", cfg.Charts.OutputDir)
	}
	if cfg.Database.Path == "" {
		t.Error("unset database path should default")
	}
}

func TestLoadFrom_MalformedIsFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[data\ndir ="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("malformed TOML should fail")
	}
}
