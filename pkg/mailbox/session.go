// Package mailbox drives the JMicron bridge's in-band mailbox sector:
// it wakes the firmware up, exchanges scrambled command/response
// frames with it, and guarantees the sector is left zeroed on exit,
// including on a terminating signal.
package mailbox

import (
	"fmt"
	"os"

	"github.com/jamietre/jm-raid-status/pkg/frame"
	"github.com/jamietre/jm-raid-status/pkg/sgio"
	"github.com/rs/zerolog"
)

// minPassThroughVersion is the lowest SG_GET_VERSION_NUM value the
// driver advertises when it understands the SG_IO interface this
// package relies on.
const minPassThroughVersion = 30000

// IsSafeLBA reports whether lba is one of the sectors the bridge
// reserves for the mailbox: sector 33, or any sector in [64, 2047].
func IsSafeLBA(lba uint32) bool {
	return lba == 33 || (lba >= 64 && lba < 2048)
}

// Session is an open mailbox on a single block device. It is not safe
// for concurrent use: the bridge protocol is strictly request/response
// over a single shared sector.
type Session struct {
	file    *os.File
	lba     uint32
	counter uint32
	log     zerolog.Logger
	closed  bool
}

// Open validates lba, opens path for pass-through I/O, confirms the
// kernel driver supports SG_IO, and checks that the mailbox sector is
// currently all-zero before taking it over. A non-zero sector means
// either another process already owns the mailbox or a previous run
// did not clean up, and Open refuses to proceed in either case.
func Open(path string, lba uint32, log zerolog.Logger) (*Session, error) {
	if !IsSafeLBA(lba) {
		return nil, fmt.Errorf("%w: sector %d is not a recognized mailbox location", ErrInvalidArgs, lba)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceOpen, err)
	}

	version, err := sgio.VersionNumber(f.Fd())
	if err != nil || version < minPassThroughVersion {
		f.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotPassThroughCapable, path)
	}

	current := make([]byte, sgio.SectorSize)
	if _, err := f.ReadAt(current, int64(lba)*sgio.SectorSize); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: reading sector %d: %v", ErrUnsafeSector, lba, err)
	}
	for _, b := range current {
		if b != 0 {
			f.Close()
			return nil, fmt.Errorf("%w: sector %d is not zero; mailbox may be in use", ErrUnsafeSector, lba)
		}
	}

	s := &Session{file: f, lba: lba, counter: 1, log: log}
	registerSession(s)
	log.Debug().Str("device", path).Uint32("lba", lba).Int32("sg_version", version).Msg("mailbox opened")
	return s, nil
}

// SendWakeup sends the four-frame wakeup sequence the bridge requires
// before it will answer command frames.
func (s *Session) SendWakeup() error {
	for i := 0; i < len(frame.WakeupSequence); i++ {
		buf := frame.EncodeWakeup(i)
		if err := sgio.WriteSector(s.file.Fd(), s.lba, buf); err != nil {
			return fmt.Errorf("%w: wakeup frame %d: %v", ErrIoctlFailed, i, err)
		}
	}
	s.log.Debug().Msg("mailbox wakeup sequence sent")
	return nil
}

// Execute writes one command frame carrying payload and returns the
// unscrambled, CRC-verified raw response frame. The caller slices out
// the payload region itself; Execute only handles framing.
func (s *Session) Execute(payload []byte) ([]byte, error) {
	encoded, err := frame.EncodeCommand(s.counter, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	counter := s.counter
	s.counter++

	if err := sgio.WriteSector(s.file.Fd(), s.lba, encoded); err != nil {
		return nil, fmt.Errorf("%w: writing command: %v", ErrIoctlFailed, err)
	}

	resp, err := sgio.ReadSector(s.file.Fd(), s.lba)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrIoctlFailed, err)
	}

	magic, respCounter, raw, err := frame.Decode(resp)
	if err != nil {
		s.log.Warn().Err(err).Uint32("counter", counter).Msg("mailbox response failed verification")
		return nil, err
	}
	if magic != frame.CommandMagic {
		return nil, fmt.Errorf("%w: response magic %#08x, want %#08x", ErrInvalidResponse, magic, frame.CommandMagic)
	}
	if respCounter != counter {
		return nil, fmt.Errorf("%w: response counter %d, want %d", ErrInvalidResponse, respCounter, counter)
	}
	return raw, nil
}

// Close zeroes the mailbox sector and releases the device. It is
// idempotent: calling Close more than once, or after the signal
// handler has already zeroed the sector, is safe.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	unregisterSession(s)

	zero := make([]byte, sgio.SectorSize)
	writeErr := sgio.WriteSector(s.file.Fd(), s.lba, zero)
	closeErr := s.file.Close()
	s.log.Debug().Msg("mailbox closed")

	if writeErr != nil {
		return fmt.Errorf("%w: zeroing sector on close: %v", ErrIoctlFailed, writeErr)
	}
	return closeErr
}

// emergencyZero is called from the signal handler goroutine only. It
// makes a best-effort attempt to zero the sector and deliberately
// ignores the result: there is no good way to report an error from a
// process that is about to exit on a signal.
func (s *Session) emergencyZero() {
	zero := make([]byte, sgio.SectorSize)
	_ = sgio.WriteSector(s.file.Fd(), s.lba, zero)
}
