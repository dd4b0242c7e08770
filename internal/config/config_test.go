package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.hcl"))
	if err != nil {
		t.Fatalf("Load returned error for missing file: %v", err)
	}
	if len(cfg.Simulations) != 1 {
		t.Fatalf("expected 1 default simulation, got %d", len(cfg.Simulations))
	}

	sim := cfg.Simulations[0]
	if sim.Strategy != "threshold" || sim.Hands != 10000 || sim.Decks != 1 || sim.Bankroll != 10000 {
		t.Errorf("unexpected defaults: %+v", sim)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
simulation "baseline" {
  strategy = "threshold"
  stake    = 25
  hands    = 50000
  decks    = 6
  bankroll = 5000
  seed     = 42
  trials   = 8
}

simulation "chart" {
  strategy = "chart"
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Simulations) != 2 {
		t.Fatalf("expected 2 simulations, got %d", len(cfg.Simulations))
	}

	baseline := cfg.Simulations[0]
	if baseline.Name != "baseline" {
		t.Errorf("Name = %q, want baseline", baseline.Name)
	}
	if baseline.Stake != 25 || baseline.Hands != 50000 || baseline.Decks != 6 {
		t.Errorf("unexpected baseline values: %+v", baseline)
	}
	if baseline.Seed != 42 || baseline.Trials != 8 {
		t.Errorf("unexpected baseline seed/trials: %+v", baseline)
	}

	// The sparse block picks up defaults for everything it omits.
	chart := cfg.Simulations[1]
	if chart.Strategy != "chart" {
		t.Errorf("Strategy = %q, want chart", chart.Strategy)
	}
	if chart.Hands != 10000 || chart.Bankroll != 10000 || chart.Decks != 1 {
		t.Errorf("defaults not applied to sparse block: %+v", chart)
	}
}

func TestLoadRejectsMalformedHCL(t *testing.T) {
	path := writeConfig(t, `simulation "broken" {`)
	if _, err := Load(path); err == nil {
		t.Error("Load should reject malformed HCL")
	}
}
