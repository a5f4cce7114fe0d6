// Package frame builds and verifies the 512-byte wire frames carried
// on the JMicron mailbox sector: 128 little-endian 32-bit words, a
// magic tag, a counter, a payload, and a CRC, optionally scrambled.
package frame

import (
	"encoding/binary"
	"fmt"

	"github.com/jamietre/jm-raid-status/pkg/jmcrc"
	"github.com/jamietre/jm-raid-status/pkg/scramble"
)

const (
	Size      = 512
	wordCount = Size / 4

	// crcWords is the number of words (0..126) folded into the CRC;
	// the result is stored at word 127.
	crcWords  = 127
	crcWordIx = 127

	WakeupMagic  uint32 = 0x197B0325
	CommandMagic uint32 = 0x197B0322

	wakeupTailValue  uint32 = 0x10ECA1DB
	wakeupTailWordIx        = 0x1f8 / 4
	wakeupFillStart         = 0x10
	wakeupFillEnd           = 0x1f8
)

// WakeupSequence is the fixed four-constant sequence sent, one per
// frame, during SendWakeup. Order matters.
var WakeupSequence = [4]uint32{0x3C75A80B, 0x0388E337, 0x689705F3, 0xE00C523A}

// CRCMismatchError is returned by Decode when the response CRC does
// not match the recomputed value.
type CRCMismatchError struct {
	Expected uint32 // the CRC stored in the frame
	Actual   uint32 // the CRC recomputed over the received words
}

func (e *CRCMismatchError) Error() string {
	return fmt.Sprintf("frame: response CRC mismatch: expected %#08x, got %#08x", e.Expected, e.Actual)
}

// EncodeWakeup builds the idx'th (0..3) unscrambled wakeup frame.
func EncodeWakeup(idx int) []byte {
	buf := make([]byte, Size)
	putWordLE(buf, 0, WakeupMagic)
	putWordLE(buf, 1, WakeupSequence[idx])
	for j := wakeupFillStart; j < wakeupFillEnd; j++ {
		buf[j] = byte(j)
	}
	putWordLE(buf, wakeupTailWordIx, wakeupTailValue)

	crc := jmcrc.Compute(wordsLE(buf), crcWords)
	putWordLE(buf, crcWordIx, crc)
	return buf
}

// EncodeCommand builds a scrambled command frame carrying counter and
// payload (copied starting at byte offset 8). payload must fit within
// bytes 8..511.
func EncodeCommand(counter uint32, payload []byte) ([]byte, error) {
	if len(payload) > Size-8 {
		return nil, fmt.Errorf("frame: payload of %d bytes does not fit after the 8-byte header", len(payload))
	}
	buf := make([]byte, Size)
	putWordLE(buf, 0, CommandMagic)
	putWordLE(buf, 1, counter)
	copy(buf[8:], payload)

	crc := jmcrc.Compute(wordsLE(buf), crcWords)
	putWordLE(buf, crcWordIx, crc)

	scramble.Apply(buf)
	return buf, nil
}

// Decode unscrambles a response frame, verifies its CRC, and returns
// the magic word, counter, and the raw 512-byte unscrambled frame for
// the caller to slice further.
func Decode(resp []byte) (magic uint32, counter uint32, raw []byte, err error) {
	if len(resp) != Size {
		return 0, 0, nil, fmt.Errorf("frame: response must be exactly %d bytes, got %d", Size, len(resp))
	}
	raw = append([]byte(nil), resp...)
	scramble.Apply(raw)

	crc := jmcrc.Compute(wordsLE(raw), crcWords)
	stored := wordLE(raw, crcWordIx)
	if crc != stored {
		return 0, 0, raw, &CRCMismatchError{Expected: stored, Actual: crc}
	}

	return wordLE(raw, 0), wordLE(raw, 1), raw, nil
}

func putWordLE(buf []byte, wordIdx int, v uint32) {
	binary.LittleEndian.PutUint32(buf[wordIdx*4:], v)
}

func wordLE(buf []byte, wordIdx int) uint32 {
	return binary.LittleEndian.Uint32(buf[wordIdx*4:])
}

// wordsLE reinterprets a 512-byte little-endian buffer as 128 u32
// words, matching the frame layout the CRC engine expects.
func wordsLE(buf []byte) []uint32 {
	words := make([]uint32, wordCount)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return words
}
