package jmarray

import (
	"errors"
	"testing"

	"github.com/jamietre/jm-raid-status/pkg/smart"
	"github.com/rs/zerolog"
)

// fakeSession answers Execute calls by slot and probe kind, built from
// fixture responses keyed the same way identify/populateSmart build
// their payloads: byte 4 of the payload is the slot, and for SMART
// probes byte 10 is the subcommand (0xD0 values, 0xD1 thresholds).
type fakeSession struct {
	identify    map[int][]byte
	values      map[int][]byte
	thresholds  map[int][]byte
	failValues  map[int]bool
	failThresh  map[int]bool
	failIdent   map[int]bool
}

func (f *fakeSession) Execute(payload []byte) ([]byte, error) {
	slot := int(payload[4])
	if len(payload) == 10 {
		if f.failIdent[slot] {
			return nil, errors.New("simulated identify failure")
		}
		return f.identify[slot], nil
	}
	switch payload[10] {
	case 0xD0:
		if f.failValues[slot] {
			return nil, errors.New("simulated values failure")
		}
		return f.values[slot], nil
	case 0xD1:
		if f.failThresh[slot] {
			return nil, errors.New("simulated thresholds failure")
		}
		return f.thresholds[slot], nil
	}
	return nil, errors.New("unrecognized probe")
}

func fakeIdentifyFrame(bitmask byte, model string) []byte {
	raw := make([]byte, 512)
	b := make([]byte, 32)
	copy(b, model)
	for i := 0; i+1 < len(b); i += 2 {
		raw[0x10+i] = b[i+1]
		raw[0x10+i+1] = b[i]
	}
	for i := 0; i < 6; i++ {
		raw[0x4A+i] = byte(uint64(20_000_000_000) >> (8 * i))
	}
	raw[0x1F0] = bitmask
	return raw
}

func fakeSmartFrame(entries map[uint8][3]uint64) []byte {
	raw := make([]byte, 512)
	i := 0
	for id, v := range entries {
		off := 0x20 + 2 + i*12
		raw[off] = id
		raw[off+3] = byte(v[0])
		raw[off+4] = byte(v[1])
		for j := 0; j < 6; j++ {
			raw[off+5+j] = byte(v[2] >> (8 * j))
		}
		i++
	}
	return raw
}

func TestSweepHealthyFourDiskArray(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{},
		values:     map[int][]byte{},
		thresholds: map[int][]byte{},
	}
	for slot := 0; slot < 4; slot++ {
		f.identify[slot] = fakeIdentifyFrame(0x0F, "TESTDISK01")
		f.values[slot] = fakeSmartFrame(map[uint8][3]uint64{0xC2: {30, 30, 25}})
		f.thresholds[slot] = make([]byte, 512)
	}
	f.identify[4] = make([]byte, 512) // all-zero: empty slot

	snap := Sweep(f, 4, smart.DefaultConfig(), zerolog.Nop())

	if snap.PresentDisks != 4 {
		t.Fatalf("PresentDisks = %d, want 4", snap.PresentDisks)
	}
	if snap.Degraded {
		t.Fatalf("Degraded = true, want false")
	}
	if snap.Verdict != StatusPassed {
		t.Fatalf("Verdict = %s, want passed", snap.Verdict)
	}
}

func TestSweepDegradedArray(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{},
		values:     map[int][]byte{},
		thresholds: map[int][]byte{},
	}
	for slot := 0; slot < 3; slot++ {
		f.identify[slot] = fakeIdentifyFrame(0x07, "TESTDISK01")
		f.values[slot] = fakeSmartFrame(map[uint8][3]uint64{0xC2: {30, 30, 25}})
		f.thresholds[slot] = make([]byte, 512)
	}
	for slot := 3; slot <= 4; slot++ {
		f.identify[slot] = make([]byte, 512)
	}

	snap := Sweep(f, 4, smart.DefaultConfig(), zerolog.Nop())

	if snap.PresentDisks != 3 {
		t.Fatalf("PresentDisks = %d, want 3", snap.PresentDisks)
	}
	if !snap.Degraded {
		t.Fatalf("Degraded = false, want true")
	}
	if snap.Verdict != StatusFailed {
		t.Fatalf("Verdict = %s, want failed", snap.Verdict)
	}
}

func TestSweepRebuildReservedBytesDoNotAffectVerdict(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{},
		values:     map[int][]byte{},
		thresholds: map[int][]byte{},
	}
	for slot := 0; slot < 4; slot++ {
		frame := fakeIdentifyFrame(0x0F, "TESTDISK01")
		frame[0x1F5] = 0x01
		frame[0x1FA] = 0x02
		f.identify[slot] = frame
		f.values[slot] = fakeSmartFrame(map[uint8][3]uint64{0xC2: {30, 30, 25}})
		f.thresholds[slot] = make([]byte, 512)
	}
	f.identify[4] = make([]byte, 512)

	snap := Sweep(f, 4, smart.DefaultConfig(), zerolog.Nop())

	if snap.Degraded || snap.Verdict != StatusPassed {
		t.Fatalf("snapshot = %+v, want healthy", snap)
	}
}

func TestSweepReallocatedSectorsFailsDisk(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{0: fakeIdentifyFrame(0x01, "TESTDISK01")},
		values:     map[int][]byte{0: fakeSmartFrame(map[uint8][3]uint64{0x05: {100, 100, 17}})},
		thresholds: map[int][]byte{0: make([]byte, 512)},
	}
	for slot := 1; slot <= 4; slot++ {
		f.identify[slot] = make([]byte, 512)
	}

	snap := Sweep(f, 1, smart.DefaultConfig(), zerolog.Nop())

	if snap.Disks[0].OverallStatus != StatusFailed {
		t.Fatalf("disk 0 status = %s, want failed", snap.Disks[0].OverallStatus)
	}
	if snap.Verdict != StatusFailed {
		t.Fatalf("Verdict = %s, want failed", snap.Verdict)
	}
}

func TestSweepThresholdsFailureDegradesGracefully(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{0: fakeIdentifyFrame(0x01, "TESTDISK01")},
		values:     map[int][]byte{0: fakeSmartFrame(map[uint8][3]uint64{0xC2: {30, 30, 25}})},
		thresholds: map[int][]byte{},
		failThresh: map[int]bool{0: true},
	}
	for slot := 1; slot <= 4; slot++ {
		f.identify[slot] = make([]byte, 512)
	}

	snap := Sweep(f, 1, smart.DefaultConfig(), zerolog.Nop())

	if snap.Disks[0].OverallStatus != StatusPassed {
		t.Fatalf("disk 0 status = %s, want passed despite thresholds failure", snap.Disks[0].OverallStatus)
	}
}

func TestSweepValuesFailureMarksError(t *testing.T) {
	f := &fakeSession{
		identify:   map[int][]byte{0: fakeIdentifyFrame(0x01, "TESTDISK01")},
		values:     map[int][]byte{},
		thresholds: map[int][]byte{0: make([]byte, 512)},
		failValues: map[int]bool{0: true},
	}
	for slot := 1; slot <= 4; slot++ {
		f.identify[slot] = make([]byte, 512)
	}

	snap := Sweep(f, 0, smart.DefaultConfig(), zerolog.Nop())

	if snap.Disks[0].OverallStatus != StatusError {
		t.Fatalf("disk 0 status = %s, want error", snap.Disks[0].OverallStatus)
	}
	if snap.Disks[0].Warning == "" {
		t.Fatalf("expected a warning message for the failed values read")
	}
}
