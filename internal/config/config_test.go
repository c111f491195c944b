package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "agentpulse.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadEmptyPathGivesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, "port: 9090\nseed: 77\nbatch_size: 120\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9090 || cfg.Seed != 77 || cfg.BatchSize != 120 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.WindowHours != 6 || cfg.CacheTTLSeconds != 30 {
		t.Errorf("unset fields lost defaults: %+v", cfg)
	}
	if cfg.Trust != Default().Trust {
		t.Errorf("trust config lost defaults: %+v", cfg.Trust)
	}
}

func TestLoadTrustOverride(t *testing.T) {
	path := writeConfig(t, `
trust:
  excellent_min: 92
  good_min: 80
  fair_min: 65
  poor_min: 45
  decay_per_minute: 0.9
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Trust.ExcellentMin != 92 || cfg.Trust.DecayPerMinute != 0.9 {
		t.Errorf("trust override not applied: %+v", cfg.Trust)
	}
}

func TestLoadMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadMalformedYAMLErrors(t *testing.T) {
	path := writeConfig(t, "port: [not a port")
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadRejectsBadRiskWeights(t *testing.T) {
	path := writeConfig(t, `
risk_weights:
  impact: 0.9
  urgency: 0.9
  confidence: 0.9
  violations: 0.9
`)
	if _, err := Load(path); err == nil {
		t.Error("expected error for weights summing past 1.0")
	}
}

func TestValidateRejectsBadBatchSize(t *testing.T) {
	cfg := Default()
	cfg.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero batch size")
	}
	cfg.BatchSize = 10000
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for oversized batch")
	}
}

func TestDurationsDerived(t *testing.T) {
	cfg := Default()
	if cfg.Window().Hours() != 6 {
		t.Errorf("window = %v, want 6h", cfg.Window())
	}
	if cfg.CacheTTL().Seconds() != 30 {
		t.Errorf("ttl = %v, want 30s", cfg.CacheTTL())
	}
	if cfg.CacheStale().Minutes() != 5 {
		t.Errorf("stale = %v, want 5m", cfg.CacheStale())
	}
}
