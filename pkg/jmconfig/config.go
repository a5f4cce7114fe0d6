// Package jmconfig loads the threshold configuration that drives
// pkg/smart's health engine from a YAML or JSON document, and can
// write out a starter document with the preconfigured critical
// attributes this project ships.
package jmconfig

import (
	"fmt"
	"os"

	"github.com/jamietre/jm-raid-status/pkg/smart"
	"github.com/spf13/viper"
)

type attributeSetting struct {
	Name        string `mapstructure:"name"`
	RawCritical uint64 `mapstructure:"raw_critical"`
}

type temperatureSetting struct {
	Critical int `mapstructure:"critical"`
}

// document mirrors the on-disk schema. Unknown keys are ignored by
// viper's Unmarshal, matching the "unknown keys ignored" contract.
type document struct {
	UseManufacturerThresholds bool                        `mapstructure:"use_manufacturer_thresholds"`
	Temperature               temperatureSetting          `mapstructure:"temperature"`
	Attributes                map[string]attributeSetting `mapstructure:"attributes"`
}

// Load reads path (YAML or JSON, detected by extension) and returns a
// smart.Config ready to hand to the health engine. A missing path
// argument is the caller's responsibility to avoid; Load itself just
// reports whatever viper reports for an unreadable file.
func Load(path string) (smart.Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return smart.Config{}, fmt.Errorf("jmconfig: reading %s: %w", path, err)
	}

	var doc document
	if err := v.Unmarshal(&doc); err != nil {
		return smart.Config{}, fmt.Errorf("jmconfig: decoding %s: %w", path, err)
	}

	cfg := smart.Config{
		UseManufacturerThresholds: doc.UseManufacturerThresholds,
		TemperatureCritical:       doc.Temperature.Critical,
		RawCritical:               map[uint8]uint64{},
	}
	for key, setting := range doc.Attributes {
		id, err := parseHexID(key)
		if err != nil {
			return smart.Config{}, fmt.Errorf("jmconfig: %s: %w", path, err)
		}
		cfg.RawCritical[id] = setting.RawCritical
	}
	return cfg, nil
}

func parseHexID(key string) (uint8, error) {
	var id uint64
	if _, err := fmt.Sscanf(key, "0x%x", &id); err != nil {
		return 0, fmt.Errorf("invalid attribute key %q, want 0xNN", key)
	}
	if id > 0xFF {
		return 0, fmt.Errorf("attribute key %q out of byte range", key)
	}
	return uint8(id), nil
}

// defaultDocument is the preconfigured starter document: manufacturer
// thresholds on, a 60C temperature cutoff, and the four attributes the
// original tool always shipped defaults for.
const defaultDocument = `use_manufacturer_thresholds: true
temperature:
  critical: 60
attributes:
  "0x05":
    name: Reallocated Sector Count
    raw_critical: 0
  "0xC5":
    name: Current Pending Sector Count
    raw_critical: 0
  "0xC6":
    name: Offline Uncorrectable Sector Count
    raw_critical: 0
  "0x0A":
    name: Spin Retry Count
    raw_critical: 0
`

// WriteDefault writes the starter configuration document to path.
func WriteDefault(path string) error {
	return os.WriteFile(path, []byte(defaultDocument), 0o644)
}
