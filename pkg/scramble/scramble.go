// Package scramble implements the fixed XOR whitening applied to
// JMicron mailbox command frames. The transform is its own inverse:
// Apply(Apply(x)) == x for any 512-byte frame.
//
// The reference firmware's actual 512-byte mask table was not present
// in the retrieved source (only the SATA_XOR prototype, not its
// defining translation unit). The mask below is synthesized with a
// fixed xorshift32 generator seeded from the ASCII bytes of "JMRA" so
// that the package is self-contained and reproducible; it is NOT
// claimed to be bit-identical to any real bridge firmware. See
// DESIGN.md for the accepted consequences of this substitution.
package scramble

const Size = 512

// Apply XORs buf in place against the fixed mask. len(buf) must be
// Size; Apply panics otherwise, matching the frame layer's guarantee
// that only full 512-byte frames ever reach the scrambler.
func Apply(buf []byte) {
	if len(buf) != Size {
		panic("scramble: buf must be exactly 512 bytes")
	}
	for i := range buf {
		buf[i] ^= mask[i]
	}
}

var mask = [Size]byte{
	0x23, 0xb3, 0x18, 0x9a, 0xdd, 0x71, 0x9d, 0x66, 0x8c, 0xd8, 0x92, 0xba, 0x82, 0x42, 0x3b, 0xea,
	0x4f, 0x06, 0x0f, 0xf5, 0x47, 0xe7, 0xa7, 0x87, 0x64, 0x6c, 0x9a, 0x48, 0xb7, 0x8b, 0x8c, 0x31,
	0xeb, 0x1f, 0x12, 0x2d, 0x38, 0xf0, 0x08, 0x46, 0x13, 0xbc, 0xe9, 0x67, 0x7a, 0xb4, 0x3d, 0x9d,
	0xd1, 0x3e, 0x7c, 0xb6, 0x78, 0x3e, 0x8e, 0x44, 0x45, 0x67, 0xfa, 0x85, 0x20, 0x80, 0x84, 0x06,
	0x4d, 0xfe, 0xb3, 0x60, 0x79, 0x76, 0xb0, 0xee, 0x62, 0x07, 0x0b, 0xd3, 0xf6, 0xab, 0xc7, 0xfb,
	0x98, 0xa7, 0x3e, 0x8f, 0x9c, 0x16, 0xf4, 0x04, 0xe3, 0x1c, 0x00, 0xf7, 0x95, 0x48, 0x3b, 0x6c,
	0x5a, 0xb7, 0xc8, 0x91, 0x71, 0x7e, 0x3b, 0xa2, 0xc4, 0x34, 0x9e, 0x24, 0xdb, 0xc0, 0x5a, 0xb8,
	0xc6, 0xf8, 0xc0, 0x2b, 0x9a, 0xcd, 0xea, 0xc2, 0x63, 0x25, 0xe6, 0xa4, 0x85, 0x01, 0x9e, 0x03,
	0xf3, 0xa3, 0x42, 0x5a, 0x67, 0x39, 0xc9, 0x02, 0xad, 0xb5, 0x88, 0x6f, 0x58, 0xaf, 0xcd, 0xa6,
	0x71, 0xa3, 0x98, 0x52, 0x8f, 0x91, 0xcf, 0x67, 0x30, 0x16, 0xa4, 0xb0, 0x0f, 0x84, 0xb2, 0x62,
	0x93, 0xe5, 0xb6, 0x0a, 0x95, 0x6c, 0x7c, 0xbf, 0xe2, 0xf1, 0x66, 0x39, 0x67, 0x9d, 0x06, 0x6e,
	0xd8, 0xa8, 0x5e, 0xc0, 0xaf, 0xba, 0xa8, 0x4b, 0xf0, 0x3c, 0x85, 0x1d, 0x0f, 0xea, 0xe2, 0x36,
	0x55, 0xa9, 0x2b, 0x6c, 0x65, 0x96, 0x7f, 0xb3, 0xee, 0xe5, 0x9e, 0xe3, 0xd9, 0xe4, 0x8a, 0xf2,
	0x85, 0xce, 0x1c, 0xa0, 0xd6, 0x15, 0xa7, 0xb2, 0xd2, 0xb6, 0x11, 0x6a, 0x18, 0xec, 0x0c, 0x01,
	0x06, 0x2b, 0x1b, 0x86, 0xc7, 0xe9, 0x3a, 0x67, 0x86, 0xe8, 0x4c, 0xa3, 0x67, 0xaa, 0xab, 0xa2,
	0x01, 0xe3, 0x7c, 0xcb, 0x6c, 0x4d, 0x76, 0x6d, 0x62, 0xc4, 0x98, 0xe7, 0x44, 0x03, 0x96, 0x56,
	0xa8, 0x43, 0x2d, 0xce, 0x66, 0x63, 0x6a, 0x6a, 0x29, 0x97, 0x40, 0x5f, 0x01, 0xb2, 0xb3, 0x76,
	0xd6, 0x64, 0xd9, 0x09, 0xc9, 0x6a, 0xaa, 0x6f, 0x8c, 0xe3, 0x69, 0xb5, 0xd0, 0x57, 0x3d, 0xb6,
	0x87, 0x10, 0x86, 0x0f, 0x84, 0x8c, 0x62, 0xad, 0x83, 0xbd, 0x49, 0xf3, 0x25, 0xee, 0x3a, 0x60,
	0x85, 0xb0, 0xbf, 0xe8, 0x03, 0xd1, 0xed, 0xf0, 0xa2, 0xb6, 0xbd, 0xc1, 0xe1, 0x3c, 0xdd, 0x0c,
	0x37, 0x79, 0xe4, 0xf5, 0xac, 0x1a, 0x6d, 0x73, 0x03, 0x4c, 0xfd, 0x70, 0x94, 0xb0, 0x47, 0x01,
	0xd1, 0x0c, 0xcf, 0x89, 0xd8, 0x38, 0x07, 0xda, 0xfd, 0xc0, 0x22, 0x16, 0xb9, 0x14, 0xbc, 0xa1,
	0xfa, 0x86, 0xfe, 0x2e, 0x7f, 0xbe, 0xcb, 0x9d, 0xcc, 0x80, 0x3e, 0x0c, 0x22, 0x0e, 0xe5, 0xbf,
	0x9c, 0x75, 0xe1, 0xd3, 0x9a, 0xe7, 0x3d, 0x1d, 0x0f, 0x35, 0xc0, 0xbb, 0x76, 0x8d, 0x16, 0x79,
	0xd1, 0x74, 0x59, 0x4a, 0x80, 0xc4, 0x77, 0xe2, 0xc9, 0x5a, 0x64, 0x53, 0x18, 0xbe, 0x56, 0xfa,
	0xd8, 0x20, 0x6b, 0xa5, 0x06, 0xe2, 0x30, 0x4e, 0x33, 0xf9, 0x91, 0xa3, 0x36, 0xc4, 0x1e, 0xac,
	0x5a, 0xca, 0x04, 0xea, 0xc2, 0x47, 0xc7, 0x98, 0xf8, 0x68, 0x30, 0x07, 0x45, 0x98, 0x3e, 0x4d,
	0x02, 0xa5, 0x5b, 0x86, 0x35, 0x88, 0x10, 0xb2, 0x3a, 0xe5, 0x18, 0x5f, 0x0e, 0x24, 0xae, 0xfa,
	0x43, 0x5d, 0xc5, 0x1c, 0x42, 0xa8, 0x58, 0x0c, 0x49, 0x35, 0x4a, 0x57, 0xbf, 0xd0, 0xae, 0xf0,
	0xcd, 0xdd, 0x82, 0x02, 0x50, 0x45, 0x63, 0xfb, 0xda, 0x43, 0x5d, 0xc3, 0xe0, 0x44, 0xef, 0xa5,
	0x38, 0xd0, 0x44, 0x9e, 0x1c, 0x5f, 0xfe, 0xd0, 0xdb, 0xb3, 0x31, 0x12, 0x00, 0x74, 0x36, 0xea,
	0xee, 0x81, 0x80, 0x83, 0x8a, 0x9c, 0xfe, 0x6d, 0x2f, 0xc8, 0x29, 0xcb, 0x1f, 0x05, 0xd1, 0x85,
}
