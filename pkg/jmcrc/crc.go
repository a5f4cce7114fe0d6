// Package jmcrc implements the CRC-32 variant used by the JMicron
// in-band mailbox protocol: polynomial 0x04C11DB7, seed 0x52325032,
// big-endian word order, no final XOR. This is not the reflected
// CRC-32 family exposed by hash/crc32.
package jmcrc

const (
	poly = 0x04C11DB7
	seed = 0x52325032
)

var table [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		crc := uint32(i) << 24
		for j := 0; j < 8; j++ {
			if crc&0x80000000 != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc = crc << 1
			}
		}
		table[i] = crc
	}
}

// Compute returns the JMicron CRC-32 over the first n words of words,
// processing each word in big-endian byte order. Compute(w, 0) returns
// the seed unchanged.
func Compute(words []uint32, n int) uint32 {
	crc := uint32(seed)
	for i := 0; i < n; i++ {
		w := bswap32(words[i])
		crc = table[byte(w)^byte(crc>>24)] ^ (crc << 8)
		crc = table[byte(w>>8)^byte(crc>>24)] ^ (crc << 8)
		crc = table[byte(w>>16)^byte(crc>>24)] ^ (crc << 8)
		crc = table[byte(w>>24)^byte(crc>>24)] ^ (crc << 8)
	}
	return crc
}

func bswap32(w uint32) uint32 {
	return (w>>24)&0xff | (w>>8)&0xff00 | (w<<8)&0xff0000 | (w << 24)
}
