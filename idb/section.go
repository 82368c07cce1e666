package idb

import (
	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
)

// sectionHeaderSize is the size of the (is_compressed, length) prologue that
// precedes every section's payload.
const sectionHeaderSize = 1 + 8

// section is a decoded section: its compression flag and raw payload bytes.
type section struct {
	compressed bool
	payload    []byte
}

// readSection decodes the section whose header starts at off. A section
// with a zero offset is absent (til and id2 are optional in some database
// versions) and readSection reports that with a nil section and nil error.
func readSection(buf []byte, off uint64) (*section, error) {
	if off == 0 {
		return nil, nil
	}
	start := int(off)

	flag, err := binutil.U8(buf, start)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading section flag at %#x", off)
	}
	length, err := binutil.U64(buf, start+1)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading section length at %#x", off)
	}
	if length == 0 {
		return nil, errs.New(errs.Corrupt, "idb: zero-length section at %#x", off)
	}

	payload, err := binutil.Bytes(buf, start+sectionHeaderSize, int(length))
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "idb: reading section payload at %#x", off)
	}

	if flag != 0 {
		return nil, errs.New(errs.Unsupported, "idb: compressed sections are not supported (offset %#x)", off)
	}

	return &section{compressed: false, payload: payload}, nil
}
