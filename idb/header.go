// Package idb parses a disassembler database container: a fixed file
// header, a directory of six fixed-purpose sections, and typed decoders for
// each section's payload (id0, id1, nam, til; seg and id2 are carried as raw
// bytes only — see SPEC_FULL.md Non-goals).
package idb

import (
	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
)

const (
	magic         = "IDA1"
	magic2        = 0xAABBCCDD
	supportedVers = 6
)

// sectionSlot indexes FileHeader.Offsets and FileHeader.Checksums.
type sectionSlot int

const (
	slotID0 sectionSlot = iota
	slotID1
	slotNAM
	slotSEG
	slotTIL
	slotID2
	sectionSlotCount
)

// FileHeader is the fixed prologue of an idb container: a magic value, two
// unused/unvalidated fields carried for completeness, the absolute offset of
// each of the six fixed sections, a secondary magic constant, a format
// version, and a checksum per section.
type FileHeader struct {
	Unk04     uint16
	Offsets   [sectionSlotCount]uint64
	Unk16     uint16
	Sig2      uint32
	Version   uint16
	Checksums [sectionSlotCount]uint32
}

// parseFileHeader decodes and validates the container's fixed-size header.
// The six section offsets are always 64-bit on disk regardless of the
// configurable word size: that knob only governs ID1 segment bounds and NAM
// addresses, not the file header. Field order follows the on-disk layout
// exactly: magic, unk04, offsets, unk16, sig2, version, checksums.
func parseFileHeader(buf []byte) (*FileHeader, error) {
	sig, err := binutil.Bytes(buf, 0, len(magic))
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading magic")
	}
	if string(sig) != magic {
		return nil, errs.New(errs.BadSignature, "idb: bad magic %q", sig)
	}

	off := len(magic)
	unk04, err := binutil.U16(buf, off)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading unk04")
	}
	off += 2

	h := &FileHeader{Unk04: unk04}
	for i := 0; i < int(sectionSlotCount); i++ {
		v, err := binutil.U64(buf, off)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "idb: reading section %d offset", i)
		}
		h.Offsets[i] = v
		off += 8
	}

	unk16, err := binutil.U16(buf, off)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading unk16")
	}
	h.Unk16 = unk16
	off += 2

	sig2, err := binutil.U32(buf, off)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading sig2")
	}
	if sig2 != magic2 {
		return nil, errs.New(errs.BadSignature, "idb: bad secondary signature %#x", sig2)
	}
	h.Sig2 = sig2
	off += 4

	version, err := binutil.U16(buf, off)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading version")
	}
	if version != supportedVers {
		return nil, errs.New(errs.UnsupportedVersion, "idb: unsupported version %d", version)
	}
	h.Version = version
	off += 2

	for i := 0; i < int(sectionSlotCount); i++ {
		v, err := binutil.U32(buf, off)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "idb: reading section %d checksum", i)
		}
		h.Checksums[i] = v
		off += 4
	}

	return h, nil
}
