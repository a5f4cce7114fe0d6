package sgio

import (
	"encoding/binary"
	"errors"
)

// ErrInvalidSectorLen is returned when WriteSector is given a buffer
// that is not exactly one 512-byte sector.
var ErrInvalidSectorLen = errors.New("sgio: buffer must be exactly one 512-byte sector")

const (
	READ10  = 0x28
	WRITE10 = 0x2a

	SectorSize = 512
)

// ReadSector issues a single-sector READ(10) at lba and returns the
// 512 bytes read.
func ReadSector(fd uintptr, lba uint32) ([]byte, error) {
	buf := make([]byte, SectorSize)
	cdb := rwCDB(READ10, lba)
	if err := SendCDB(fd, cdb[:], CDBFromDevice, &buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// WriteSector issues a single-sector WRITE(10) at lba with the
// contents of buf, which must be exactly 512 bytes.
func WriteSector(fd uintptr, lba uint32, buf []byte) error {
	if len(buf) != SectorSize {
		return ErrInvalidSectorLen
	}
	cdb := rwCDB(WRITE10, lba)
	out := append([]byte(nil), buf...)
	return SendCDB(fd, cdb[:], CDBToDevice, &out)
}

func rwCDB(opcode byte, lba uint32) CDB10 {
	var cdb CDB10
	cdb[0] = opcode
	binary.BigEndian.PutUint32(cdb[2:6], lba)
	cdb[8] = 1 // one sector
	return cdb
}
