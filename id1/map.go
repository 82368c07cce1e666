// Package id1 decodes the per-byte flags map: a segment table plus a dense
// 32-bit-per-byte flags buffer over the disassembled address space.
package id1

import (
	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/flags"
	"github.com/laenix/idbgo/internal/binutil"
	"github.com/laenix/idbgo/internal/logz"
	"go.uber.org/zap"
)

const (
	signature  = "VA*\x00"
	constUnk04 = 0x3
	constUnk0C = 0x800
	pageSize   = 0x2000
)

// Bounds is a segment's half-open address range [Start, End).
type Bounds struct {
	Start uint64
	End   uint64
}

// SegmentDescriptor pairs a segment's bounds with the byte offset of its
// first flags word within the flags buffer.
type SegmentDescriptor struct {
	Bounds Bounds
	Offset uint64
}

// Map is a decoded id1 section: the segment table and the flags buffer.
type Map struct {
	WordSize int
	Segments []SegmentDescriptor
	buffer   []byte
}

// Parse decodes an id1 section payload.
func Parse(buf []byte, wordSize int) (*Map, error) {
	if wordSize != 4 && wordSize != 8 {
		return nil, errs.New(errs.Corrupt, "id1: unsupported word size %d", wordSize)
	}

	sig, err := binutil.Bytes(buf, 0, 4)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading signature")
	}
	if string(sig) != signature {
		return nil, errs.New(errs.BadSignature, "id1: bad signature %q", sig)
	}

	unk04, err := binutil.U32(buf, 4)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading unk04")
	}
	if unk04 != constUnk04 {
		return nil, errs.New(errs.Corrupt, "id1: unexpected unk04 value %#x", unk04)
	}

	segmentCount, err := binutil.U32(buf, 8)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading segment_count")
	}

	unk0C, err := binutil.U32(buf, 12)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading unk0C")
	}
	if unk0C != constUnk0C {
		return nil, errs.New(errs.Corrupt, "id1: unexpected unk0C value %#x", unk0C)
	}

	pageCount, err := binutil.U32(buf, 16)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading page_count")
	}

	segments := make([]SegmentDescriptor, 0, segmentCount)
	off := 20
	var cumOffset uint64
	for i := uint32(0); i < segmentCount; i++ {
		start, err := binutil.Word(buf, off, wordSize)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id1: reading segment %d start", i)
		}
		end, err := binutil.Word(buf, off+wordSize, wordSize)
		if err != nil {
			return nil, errs.Wrap(errs.Corrupt, err, "id1: reading segment %d end", i)
		}
		if start > end {
			return nil, errs.New(errs.Corrupt, "id1: segment %d ends before it starts", i)
		}
		segments = append(segments, SegmentDescriptor{
			Bounds: Bounds{Start: start, End: end},
			Offset: cumOffset,
		})
		cumOffset += 4 * (end - start)
		off += 2 * wordSize
	}

	bufferOff := pageSize
	bufferLen := int(pageCount) * pageSize
	buffer, err := binutil.Bytes(buf, bufferOff, bufferLen)
	if err != nil {
		return nil, errs.Wrap(errs.Corrupt, err, "id1: reading flags buffer")
	}

	return &Map{
		WordSize: wordSize,
		Segments: segments,
		buffer:   buffer,
	}, nil
}

// Validate re-checks the structural invariants Parse already enforces.
func (m *Map) Validate() error {
	for i, seg := range m.Segments {
		if seg.Bounds.Start > seg.Bounds.End {
			return errs.New(errs.Corrupt, "id1: segment %d ends before it starts", i)
		}
	}
	return nil
}

// GetSegment returns the first segment containing ea.
func (m *Map) GetSegment(ea uint64) (SegmentDescriptor, error) {
	for _, seg := range m.Segments {
		if seg.Bounds.Start <= ea && ea < seg.Bounds.End {
			return seg, nil
		}
	}
	return SegmentDescriptor{}, errs.New(errs.NotFound, "id1: no segment contains %#x", ea)
}

// GetNextSegment returns the segment immediately following the one
// containing ea. It fails with OutOfRange if ea is in the last segment, and
// NotFound if ea is in no segment.
func (m *Map) GetNextSegment(ea uint64) (SegmentDescriptor, error) {
	for i, seg := range m.Segments {
		if seg.Bounds.Start <= ea && ea < seg.Bounds.End {
			if i == len(m.Segments)-1 {
				return SegmentDescriptor{}, errs.New(errs.OutOfRange, "id1: %#x is in the last segment", ea)
			}
			return m.Segments[i+1], nil
		}
	}
	return SegmentDescriptor{}, errs.New(errs.NotFound, "id1: no segment contains %#x", ea)
}

// GetFlags reads the 32-bit flag word for the given address.
func (m *Map) GetFlags(ea uint64) (flags.Word, error) {
	seg, err := m.GetSegment(ea)
	if err != nil {
		return 0, err
	}
	off := seg.Offset + 4*(ea-seg.Bounds.Start)
	v, err := binutil.U32(m.buffer, int(off))
	if err != nil {
		return 0, errs.Wrap(errs.Corrupt, err, "id1: reading flags at %#x", ea)
	}
	return flags.Word(v), nil
}

// Head walks ea downward until it finds the start of an instruction or data
// item (class Code or Data).
func (m *Map) Head(ea uint64) (uint64, error) {
	for {
		f, err := m.GetFlags(ea)
		if err != nil {
			logz.L().Debug("id1: head walk ran off a segment boundary", zap.Uint64("ea", ea))
			return 0, errs.New(errs.OutOfRange, "id1: head walk ran off segment below %#x", ea)
		}
		if f.IsHead() {
			return ea, nil
		}
		if ea == 0 {
			return 0, errs.New(errs.OutOfRange, "id1: head walk ran off segment below %#x", ea)
		}
		ea--
	}
}

// NextHead walks upward from ea+1 until it finds a head byte.
func (m *Map) NextHead(ea uint64) (uint64, error) {
	next := ea + 1
	for {
		f, err := m.GetFlags(next)
		if err != nil {
			logz.L().Debug("id1: next-head walk crossed a segment boundary", zap.Uint64("ea", next))
			return 0, errs.New(errs.OutOfRange, "id1: next-head walk ran off segment above %#x", next)
		}
		if f.IsHead() {
			return next, nil
		}
		next++
	}
}

// PrevHead returns the head of the item preceding the item containing ea.
func (m *Map) PrevHead(ea uint64) (uint64, error) {
	h, err := m.Head(ea)
	if err != nil {
		return 0, err
	}
	if h == 0 {
		return 0, errs.New(errs.OutOfRange, "id1: no address before %#x", h)
	}
	return m.Head(h - 1)
}

// GetManyBytes returns size bytes starting at ea. It fails with OutOfRange if
// ea and ea+size-1 lie in different segments, and NotFound if any byte has
// no defined value.
func (m *Map) GetManyBytes(ea uint64, size uint64) ([]byte, error) {
	if size == 0 {
		return nil, nil
	}
	startSeg, err := m.GetSegment(ea)
	if err != nil {
		return nil, err
	}
	endSeg, err := m.GetSegment(ea + size - 1)
	if err != nil {
		return nil, err
	}
	if startSeg.Bounds.Start != endSeg.Bounds.Start {
		return nil, errs.New(errs.OutOfRange, "id1: [%#x, %#x) crosses a segment boundary", ea, ea+size)
	}

	out := make([]byte, 0, size)
	for i := uint64(0); i < size; i++ {
		f, err := m.GetFlags(ea + i)
		if err != nil {
			return nil, err
		}
		if !f.HasValue() {
			return nil, errs.New(errs.NotFound, "id1: no value at %#x", ea+i)
		}
		out = append(out, f.Value())
	}
	return out, nil
}
