// Package nam decodes the named-address index: a sorted array of addresses
// pointing at items that carry a symbolic name in id0.
package nam

import (
	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
)

const (
	signature  = "VA*\x00"
	constUnk04 = 0x3
	constUnk0C = 0x800
	pageSize   = 0x2000
)

// Index is a decoded nam section: header fields plus the sorted address list.
type Index struct {
	NonEmpty  uint32
	PageCount uint32
	NameCount uint32
	WordSize  int
	Names     []uint64
}

// Parse decodes a nam section payload. wordSize is 4 or 8, matching the
// address width used for the name array.
func Parse(buf []byte, wordSize int) (*Index, error) {
	if wordSize != 4 && wordSize != 8 {
		return nil, errs.New(errs.Corrupt, "nam: unsupported word size %d", wordSize)
	}

	sig, err := binutil.Bytes(buf, 0, 4)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading signature")
	}
	if string(sig) != signature {
		return nil, errs.New(errs.BadSignature, "nam: bad signature %q", sig)
	}

	unk04, err := binutil.U32(buf, 4)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading unk04")
	}
	if unk04 != constUnk04 {
		return nil, errs.New(errs.Corrupt, "nam: unexpected unk04 value %#x", unk04)
	}

	nonEmpty, err := binutil.U32(buf, 8)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading non_empty")
	}
	if nonEmpty != 0 && nonEmpty != 1 {
		return nil, errs.New(errs.Corrupt, "nam: unexpected non_empty value %d", nonEmpty)
	}

	unk0C, err := binutil.U32(buf, 12)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading unk0C")
	}
	if unk0C != constUnk0C {
		return nil, errs.New(errs.Corrupt, "nam: unexpected unk0C value %#x", unk0C)
	}

	pageCount, err := binutil.U32(buf, 16)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading page_count")
	}

	unk14, err := binutil.Word(buf, 20, wordSize)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading unk14")
	}
	if unk14 != 0 {
		return nil, errs.New(errs.Corrupt, "nam: unexpected unk14 value %#x", unk14)
	}

	nameCountOff := 20 + wordSize
	nameCount, err := binutil.U32(buf, nameCountOff)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading name_count")
	}

	bufferOff := pageSize
	bufferLen := int(pageCount) * pageSize
	dataBuf, err := binutil.Bytes(buf, bufferOff, bufferLen)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "nam: reading data buffer")
	}

	names := make([]uint64, 0, nameCount)
	for i := uint32(0); i < nameCount; i++ {
		off := int(i) * wordSize
		v, err := binutil.Word(dataBuf, off, wordSize)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "nam: reading name %d", i)
		}
		names = append(names, v)
	}

	return &Index{
		NonEmpty:  nonEmpty,
		PageCount: pageCount,
		NameCount: nameCount,
		WordSize:  wordSize,
		Names:     names,
	}, nil
}

// Validate re-checks the structural invariants already enforced by Parse; it
// exists so idb.Options.StrictValidate has a uniform per-section validate
// hook to call, matching til.Section.Validate and id1.Map.Validate.
func (idx *Index) Validate() error {
	if idx.NonEmpty != 0 && idx.NonEmpty != 1 {
		return errs.New(errs.Corrupt, "nam: unexpected non_empty value %d", idx.NonEmpty)
	}
	if uint32(len(idx.Names)) != idx.NameCount {
		return errs.New(errs.Corrupt, "nam: name count mismatch")
	}
	return nil
}
