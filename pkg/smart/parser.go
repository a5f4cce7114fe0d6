// Package smart parses ATA SMART values/thresholds pages extracted
// from a bridge response and assesses per-attribute and per-disk
// health against a threshold configuration.
package smart

import (
	"encoding/binary"
	"errors"
)

const (
	pageLen       = 512
	entryOffset   = 2
	entryLen      = 12
	maxEntries    = 30
	thresholdsOff = 2
	thresholdsLen = 12

	powerOnHoursID = 0x09
)

// ErrShortPage is returned when a values or thresholds page is not
// exactly the fixed 512-byte ATA page size.
var ErrShortPage = errors.New("smart: page must be 512 bytes")

// Attribute is a single parsed and assessed SMART attribute record.
type Attribute struct {
	ID        uint8
	Name      string
	Critical  bool
	Current   uint8
	Worst     uint8
	Threshold uint8
	Raw       uint64
	Status    Status
}

// Status is the outcome of the health engine's per-attribute
// assessment.
type Status int

const (
	StatusUnknown Status = iota
	StatusPassed
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// rawThresholds maps attribute id to its threshold byte, parsed from
// a thresholds page.
type rawThresholds map[uint8]uint8

// ParseValues walks a 512-byte SMART values page and returns the
// populated attribute slots (id != 0), each joined with its matching
// threshold from thresholds (0 when absent). Thresholds may be nil,
// in which case every threshold defaults to 0.
func ParseValues(page []byte, thresholds []byte) ([]Attribute, error) {
	if len(page) != pageLen {
		return nil, ErrShortPage
	}
	thr, err := parseThresholds(thresholds)
	if err != nil {
		return nil, err
	}

	var attrs []Attribute
	for i := 0; i < maxEntries; i++ {
		off := entryOffset + i*entryLen
		id := page[off]
		if id == 0 {
			continue
		}
		current := page[off+3]
		worst := page[off+4]
		raw := rawValue(page[off+5 : off+11])
		if id == powerOnHoursID {
			raw &= 0xFFFFFFFF
		}

		name, critical := lookupAttribute(id)
		attrs = append(attrs, Attribute{
			ID:        id,
			Name:      name,
			Critical:  critical,
			Current:   current,
			Worst:     worst,
			Threshold: thr[id],
			Raw:       raw,
		})
	}
	return attrs, nil
}

// parseThresholds walks a 512-byte SMART thresholds page and returns
// id -> threshold. A nil or all-absent page yields an empty map, so
// every lookup defaults to 0 as required when the thresholds probe
// failed and the caller substitutes a zeroed page.
func parseThresholds(page []byte) (rawThresholds, error) {
	out := rawThresholds{}
	if page == nil {
		return out, nil
	}
	if len(page) != pageLen {
		return nil, ErrShortPage
	}
	for i := 0; i < maxEntries; i++ {
		off := thresholdsOff + i*thresholdsLen
		id := page[off]
		if id == 0 {
			continue
		}
		out[id] = page[off+1]
	}
	return out, nil
}

func rawValue(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:6], b[:6])
	return binary.LittleEndian.Uint64(buf[:])
}
