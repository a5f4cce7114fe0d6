package smart

// Config carries the threshold configuration the health engine
// evaluates attributes against. The zero value behaves as "no
// manufacturer thresholds, no per-id overrides, default temperature
// cutoff of 60": callers that only want defaults can pass
// DefaultConfig().
type Config struct {
	UseManufacturerThresholds bool
	TemperatureCritical       int            // 0 means "use the default of 60"
	RawCritical               map[uint8]uint64
}

// DefaultConfig returns the engine's behavior when no configuration
// file is supplied.
func DefaultConfig() Config {
	return Config{RawCritical: map[uint8]uint64{}}
}

const defaultTemperatureCutoff = 60

var temperatureIDs = map[uint8]bool{0xC2: true, 0xBE: true, 0xE7: true}
var sectorCriticalIDs = map[uint8]bool{0x05: true, 0xC5: true, 0xC6: true, 0xBB: true, 0xB8: true}

// Assess evaluates a single attribute's status in place against cfg,
// following the fixed, ordered rule set: the first matching rule
// wins.
func Assess(attr *Attribute, cfg Config) {
	if cutoff, ok := cfg.RawCritical[attr.ID]; ok {
		if attr.Raw > cutoff {
			attr.Status = StatusFailed
			return
		}
	}

	if temperatureIDs[attr.ID] {
		cutoff := cfg.TemperatureCritical
		if cutoff <= 0 {
			cutoff = defaultTemperatureCutoff
		}
		celsius := int(byte(attr.Raw))
		if celsius >= cutoff {
			attr.Status = StatusFailed
		} else {
			attr.Status = StatusPassed
		}
		return
	}

	if attr.Critical && sectorCriticalIDs[attr.ID] && attr.Raw > 0 {
		attr.Status = StatusFailed
		return
	}

	if attr.ID == 0x0A && attr.Raw > 0 {
		attr.Status = StatusFailed
		return
	}

	if attr.ID == 0xC4 && attr.Raw > 0 {
		attr.Status = StatusFailed
		return
	}

	if cfg.UseManufacturerThresholds && attr.Threshold > 0 && attr.Current <= attr.Threshold {
		attr.Status = StatusFailed
		return
	}

	attr.Status = StatusPassed
}

// AssessAll runs Assess over every attribute and reports whether the
// disk overall passed: it fails if any attribute failed.
func AssessAll(attrs []Attribute, cfg Config) bool {
	passed := true
	for i := range attrs {
		Assess(&attrs[i], cfg)
		if attrs[i].Status == StatusFailed {
			passed = false
		}
	}
	return passed
}
