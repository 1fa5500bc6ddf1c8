package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RWADECK_CONFIG", "")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.Locale != "en" {
		t.Errorf("locale = %q, want en", c.UI.Locale)
	}
	if c.Deck.DistanceThreshold != 50 || c.Deck.VelocityThreshold != 300 {
		t.Errorf("deck thresholds = %+v, want 50/300", c.Deck)
	}
	if c.Auth.LatencyMS != 600 {
		t.Errorf("auth latency = %d, want 600", c.Auth.LatencyMS)
	}
	if c.Database.Path == "" {
		t.Error("database path default missing")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("RWADECK_UI_LOCALE", "ja")
	t.Setenv("RWADECK_AUTH_LATENCY_MS", "0")

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.Locale != "ja" {
		t.Errorf("locale = %q, want ja from env", c.UI.Locale)
	}
	if c.Auth.LatencyMS != 0 {
		t.Errorf("auth latency = %d, want 0 from env", c.Auth.LatencyMS)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[ui]\nlocale = \"ja\"\n\n[deck]\ndistance_threshold = 80.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("HOME", dir)
	t.Setenv("RWADECK_CONFIG", path)

	c, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.UI.Locale != "ja" {
		t.Errorf("locale = %q, want ja from file", c.UI.Locale)
	}
	if c.Deck.DistanceThreshold != 80 {
		t.Errorf("distance = %v, want 80 from file", c.Deck.DistanceThreshold)
	}
	// Unset keys keep their defaults.
	if c.Deck.VelocityThreshold != 300 {
		t.Errorf("velocity = %v, want default 300", c.Deck.VelocityThreshold)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	t.Setenv("RWADECK_CONFIG", path)
	t.Setenv("HOME", t.TempDir())

	in, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	in.UI.Locale = "ja"
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if out.UI.Locale != "ja" {
		t.Errorf("reloaded locale = %q, want ja", out.UI.Locale)
	}
}
