package jmcrc

import "testing"

func TestComputeZeroWordsReturnsSeed(t *testing.T) {
	words := []uint32{0x11223344, 0xaabbccdd}
	if got := Compute(words, 0); got != seed {
		t.Fatalf("Compute(words, 0) = %#08x, want seed %#08x", got, seed)
	}
}

func TestComputeDeterministic(t *testing.T) {
	words := make([]uint32, 127)
	for i := range words {
		words[i] = uint32(i*2654435761 + 1)
	}
	a := Compute(words, len(words))
	b := Compute(words, len(words))
	if a != b {
		t.Fatalf("Compute is not deterministic: %#08x != %#08x", a, b)
	}
}

func TestComputeSensitiveToBitFlips(t *testing.T) {
	words := make([]uint32, 127)
	for i := range words {
		words[i] = uint32(i*97 + 13)
	}
	base := Compute(words, len(words))

	flipped := make([]uint32, len(words))
	copy(flipped, words)
	flipped[40] ^= 1 // flip the low bit of one word

	if got := Compute(flipped, len(flipped)); got == base {
		t.Fatalf("single bit flip did not change CRC: both %#08x", base)
	}
}

func TestComputeTableDrivenVectors(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		n     int
	}{
		{"single zero word", []uint32{0}, 1},
		{"single all-ones word", []uint32{0xffffffff}, 1},
		{"two words", []uint32{0x197b0322, 0x00000001}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Compute(tc.words, tc.n)
			again := Compute(tc.words, tc.n)
			if got != again {
				t.Fatalf("non-deterministic result for %v: %#08x vs %#08x", tc.words, got, again)
			}
		})
	}
}
