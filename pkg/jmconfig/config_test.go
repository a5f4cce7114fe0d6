package jmconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadParsesDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `use_manufacturer_thresholds: true
temperature:
  critical: 65
attributes:
  "0x05":
    raw_critical: 10
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseManufacturerThresholds {
		t.Fatalf("UseManufacturerThresholds = false, want true")
	}
	if cfg.TemperatureCritical != 65 {
		t.Fatalf("TemperatureCritical = %d, want 65", cfg.TemperatureCritical)
	}
	if cfg.RawCritical[0x05] != 10 {
		t.Fatalf("RawCritical[0x05] = %d, want 10", cfg.RawCritical[0x05])
	}
}

func TestLoadRejectsBadAttributeKey(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `attributes:
  "not-hex":
    raw_critical: 1
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a non-hex attribute key")
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.UseManufacturerThresholds {
		t.Fatalf("UseManufacturerThresholds = false, want true")
	}
	if cfg.TemperatureCritical != 60 {
		t.Fatalf("TemperatureCritical = %d, want 60", cfg.TemperatureCritical)
	}
	for _, id := range []uint8{0x05, 0xC5, 0xC6, 0x0A} {
		if _, ok := cfg.RawCritical[id]; !ok {
			t.Errorf("RawCritical missing preconfigured id %#02x", id)
		}
	}
}
