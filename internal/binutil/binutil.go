// Package binutil reads fixed-width little-endian integers out of a byte slice
// with explicit bounds checking, the way the container and section decoders need.
package binutil

import (
	"encoding/binary"

	"github.com/laenix/idbgo/errs"
)

// U8 reads one byte at off.
func U8(buf []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(buf) {
		return 0, errs.New(errs.Corrupt, "truncated read: u8 at %d (len %d)", off, len(buf))
	}
	return buf[off], nil
}

// U16 reads a little-endian uint16 at off.
func U16(buf []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(buf) {
		return 0, errs.New(errs.Corrupt, "truncated read: u16 at %d (len %d)", off, len(buf))
	}
	return binary.LittleEndian.Uint16(buf[off : off+2]), nil
}

// U32 reads a little-endian uint32 at off.
func U32(buf []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(buf) {
		return 0, errs.New(errs.Corrupt, "truncated read: u32 at %d (len %d)", off, len(buf))
	}
	return binary.LittleEndian.Uint32(buf[off : off+4]), nil
}

// U64 reads a little-endian uint64 at off.
func U64(buf []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(buf) {
		return 0, errs.New(errs.Corrupt, "truncated read: u64 at %d (len %d)", off, len(buf))
	}
	return binary.LittleEndian.Uint64(buf[off : off+8]), nil
}

// Word reads a little-endian word of the given size (4 or 8 bytes) at off,
// widened to uint64.
func Word(buf []byte, off int, wordSize int) (uint64, error) {
	switch wordSize {
	case 4:
		v, err := U32(buf, off)
		return uint64(v), err
	case 8:
		return U64(buf, off)
	default:
		return 0, errs.New(errs.Corrupt, "unsupported word size %d", wordSize)
	}
}

// Bytes slices buf[off:off+n], bounds-checked.
func Bytes(buf []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off+n > len(buf) {
		return nil, errs.New(errs.Corrupt, "truncated read: %d bytes at %d (len %d)", n, off, len(buf))
	}
	return buf[off : off+n], nil
}
