// Package jmarray sweeps every disk slot the bridge exposes, combines
// the per-disk IDENTIFY and SMART results with a health verdict, and
// derives the whole-array presence and degradation state.
package jmarray

import (
	"math/bits"

	"github.com/jamietre/jm-raid-status/pkg/ataprobe"
	"github.com/jamietre/jm-raid-status/pkg/smart"
	"github.com/rs/zerolog"
)

// Executor is the subset of *mailbox.Session the coordinator needs:
// one command/response round trip. Tests supply a fake to drive
// Sweep without a real device.
type Executor interface {
	Execute(payload []byte) ([]byte, error)
}

// Overall status strings used on DiskRecord and Snapshot. They are
// plain strings rather than an enum because they flow directly into
// JSON and NDJSON output.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
	StatusError  = "error"
)

// DiskRecord is the per-slot outcome of a sweep.
type DiskRecord struct {
	Slot          int
	Present       bool
	Model         string
	Serial        string
	Firmware      string
	SizeMB        uint64
	Attributes    []smart.Attribute
	OverallStatus string
	Warning       string
}

// Snapshot is the whole-array outcome of a sweep.
type Snapshot struct {
	Bitmask       byte
	PresentDisks  int
	ExpectedDisks int
	Degraded      bool
	Oversized     bool
	Disks         []DiskRecord
	Verdict       string
}

// emptyThresholdsPage stands in for a thresholds probe that failed;
// the health engine treats every absent threshold as 0, so a zeroed
// page behaves exactly like "no thresholds configured" for this disk.
var emptyThresholdsPage = make([]byte, 512)

// Sweep probes slots 0..MaxSlot in order and returns the combined
// array snapshot. expectedDisks of 0 (or outside 1..5) disables the
// degraded/oversized check.
func Sweep(sess Executor, expectedDisks int, cfg smart.Config, log zerolog.Logger) *Snapshot {
	snap := &Snapshot{ExpectedDisks: expectedDisks}
	bitmaskLatched := false

	for slot := 0; slot <= ataprobe.MaxSlot; slot++ {
		rec := DiskRecord{Slot: slot}
		log.Debug().Int("slot", slot).Msg("probing slot")

		result, bm, bmOK, err := identify(sess, slot)
		if bmOK && !bitmaskLatched {
			snap.Bitmask = bm
			bitmaskLatched = true
			log.Debug().Int("slot", slot).Int("offset", 0x1F0).Uint8("bitmask", bm).Msg("bitmask observed")
		}
		if err != nil {
			log.Warn().Int("slot", slot).Err(err).Msg("identify failed")
			rec.OverallStatus = StatusError
			rec.Warning = err.Error()
			snap.Disks = append(snap.Disks, rec)
			continue
		}
		if result == nil {
			log.Debug().Int("slot", slot).Msg("slot empty")
			snap.Disks = append(snap.Disks, rec)
			continue
		}

		rec.Present = true
		rec.Model = result.Model
		rec.Serial = result.Serial
		rec.Firmware = result.Firmware
		rec.SizeMB = result.SizeMB

		if err := populateSmart(sess, slot, cfg, &rec); err != nil {
			log.Warn().Int("slot", slot).Err(err).Msg("smart read failed")
			rec.OverallStatus = StatusError
			rec.Warning = err.Error()
		}

		snap.Disks = append(snap.Disks, rec)
	}

	snap.PresentDisks = bits.OnesCount8(snap.Bitmask & 0x0F)
	applySizeVerdict(snap, expectedDisks)
	snap.Verdict = deriveVerdict(snap)
	return snap
}

func identify(sess Executor, slot int) (res *ataprobe.IdentifyResult, bitmask byte, bitmaskOK bool, err error) {
	payload, err := ataprobe.IdentifyPayload(slot)
	if err != nil {
		return nil, 0, false, err
	}
	raw, err := sess.Execute(payload)
	if err != nil {
		return nil, 0, false, err
	}
	if bm, bmErr := ataprobe.Bitmask(raw); bmErr == nil {
		bitmask, bitmaskOK = bm, true
	}
	result, err := ataprobe.ParseIdentify(raw)
	if err != nil {
		return nil, bitmask, bitmaskOK, err
	}
	return result, bitmask, bitmaskOK, nil
}

// populateSmart reads the values and thresholds pages for slot and
// runs the health engine over them, filling rec.Attributes and
// rec.OverallStatus. A failed thresholds read is not fatal: the
// assessment proceeds with a zeroed thresholds page.
func populateSmart(sess Executor, slot int, cfg smart.Config, rec *DiskRecord) error {
	valuesPayload, err := ataprobe.SmartValuesPayload(slot)
	if err != nil {
		return err
	}
	valuesRaw, err := sess.Execute(valuesPayload)
	if err != nil {
		return err
	}
	valuesPage, err := ataprobe.SmartPage(valuesRaw)
	if err != nil {
		return err
	}

	thresholdsPage := emptyThresholdsPage
	if thrPayload, err := ataprobe.SmartThresholdsPayload(slot); err == nil {
		if thrRaw, err := sess.Execute(thrPayload); err == nil {
			if page, err := ataprobe.SmartPage(thrRaw); err == nil {
				thresholdsPage = page
			}
		}
	}

	attrs, err := smart.ParseValues(valuesPage, thresholdsPage)
	if err != nil {
		return err
	}

	rec.Attributes = attrs
	if smart.AssessAll(attrs, cfg) {
		rec.OverallStatus = StatusPassed
	} else {
		rec.OverallStatus = StatusFailed
	}
	return nil
}

func applySizeVerdict(snap *Snapshot, expectedDisks int) {
	if expectedDisks < 1 || expectedDisks > 5 {
		return
	}
	switch {
	case snap.PresentDisks < expectedDisks:
		snap.Degraded = true
	case snap.PresentDisks > expectedDisks:
		snap.Oversized = true
	}
}

func deriveVerdict(snap *Snapshot) string {
	if snap.Degraded {
		return StatusFailed
	}
	for _, d := range snap.Disks {
		if d.OverallStatus == StatusFailed {
			return StatusFailed
		}
	}
	return StatusPassed
}
