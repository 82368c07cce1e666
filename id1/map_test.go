package id1_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/flags"
	"github.com/laenix/idbgo/id1"
)

const pageSize = 0x2000

type segSpec struct {
	start, end uint64
}

func buildID1Buffer(t *testing.T, segs []segSpec, values map[uint64]flags.Word) []byte {
	t.Helper()
	wordSize := 4

	header := new(bytes.Buffer)
	header.WriteString("VA*\x00")
	binary.Write(header, binary.LittleEndian, uint32(0x3))   // unk04
	binary.Write(header, binary.LittleEndian, uint32(len(segs)))
	binary.Write(header, binary.LittleEndian, uint32(0x800)) // unk0C
	binary.Write(header, binary.LittleEndian, uint32(1))     // page_count

	var offsets []uint64
	var cum uint64
	for _, s := range segs {
		binary.Write(header, binary.LittleEndian, uint32(s.start))
		binary.Write(header, binary.LittleEndian, uint32(s.end))
		offsets = append(offsets, cum)
		cum += 4 * (s.end - s.start)
	}

	require.LessOrEqual(t, header.Len(), pageSize)
	padded := make([]byte, pageSize)
	copy(padded, header.Bytes())
	_ = wordSize

	data := make([]byte, pageSize)
	for ea, word := range values {
		seg, off := segmentFor(segs, offsets, ea)
		_ = seg
		binary.LittleEndian.PutUint32(data[off:], uint32(word))
	}

	return append(padded, data...)
}

func segmentFor(segs []segSpec, offsets []uint64, ea uint64) (int, uint64) {
	for i, s := range segs {
		if ea >= s.start && ea < s.end {
			return i, offsets[i] + 4*(ea-s.start)
		}
	}
	panic("address not in any segment")
}

func TestGetSegmentAndFlags(t *testing.T) {
	segs := []segSpec{{0x1000, 0x1010}, {0x2000, 0x2004}}
	values := map[uint64]flags.Word{
		0x1000: flags.FF_CODE | flags.FF_IVL | 0x41,
		0x1001: flags.FF_TAIL,
		0x2000: flags.FF_DATA | flags.FF_IVL | 0x99,
	}
	buf := buildID1Buffer(t, segs, values)

	m, err := id1.Parse(buf, 4)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	seg, err := m.GetSegment(0x1005)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1000), seg.Bounds.Start)
	require.Equal(t, uint64(0x1010), seg.Bounds.End)

	f, err := m.GetFlags(0x1000)
	require.NoError(t, err)
	require.True(t, f.IsCode())
	require.Equal(t, uint8(0x41), f.Value())

	_, err = m.GetSegment(0x1FFF)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetNextSegment(t *testing.T) {
	segs := []segSpec{{0x1000, 0x1010}, {0x2000, 0x2004}}
	buf := buildID1Buffer(t, segs, nil)

	m, err := id1.Parse(buf, 4)
	require.NoError(t, err)

	next, err := m.GetNextSegment(0x1005)
	require.NoError(t, err)
	require.Equal(t, uint64(0x2000), next.Bounds.Start)

	_, err = m.GetNextSegment(0x2001)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestHeadNextHeadPrevHead(t *testing.T) {
	segs := []segSpec{{0x1000, 0x1010}}
	values := map[uint64]flags.Word{
		0x1000: flags.FF_CODE | flags.FF_IVL,
		0x1001: flags.FF_TAIL,
		0x1002: flags.FF_TAIL,
		0x1003: flags.FF_DATA | flags.FF_IVL,
		0x1004: flags.FF_TAIL,
	}
	buf := buildID1Buffer(t, segs, values)

	m, err := id1.Parse(buf, 4)
	require.NoError(t, err)

	h, err := m.Head(0x1002)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1000), h)

	next, err := m.NextHead(0x1000)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1003), next)

	prev, err := m.PrevHead(0x1003)
	require.NoError(t, err)
	require.Equal(t, uint64(0x1000), prev)

	_, err = m.NextHead(0x1003)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestHeadUnderrunAtSegmentStart(t *testing.T) {
	// Segment starts at a non-zero address with no head byte at or before
	// its start, so Head must walk below the segment's lower bound.
	segs := []segSpec{{0x1000, 0x1010}}
	values := map[uint64]flags.Word{
		0x1000: flags.FF_TAIL,
		0x1001: flags.FF_TAIL,
	}
	buf := buildID1Buffer(t, segs, values)

	m, err := id1.Parse(buf, 4)
	require.NoError(t, err)

	_, err = m.Head(0x1001)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	// PrevHead walks to the item preceding the segment's first head, which
	// also runs off the segment's lower bound rather than address zero.
	values2 := map[uint64]flags.Word{
		0x1000: flags.FF_CODE | flags.FF_IVL,
	}
	buf2 := buildID1Buffer(t, segs, values2)
	m2, err := id1.Parse(buf2, 4)
	require.NoError(t, err)

	_, err = m2.PrevHead(0x1000)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
}

func TestGetManyBytes(t *testing.T) {
	segs := []segSpec{{0x1000, 0x1010}, {0x1010, 0x1020}}
	values := map[uint64]flags.Word{
		0x1000: flags.FF_DATA | flags.FF_IVL | 0x41,
		0x1001: flags.FF_DATA | flags.FF_IVL | 0x42,
		0x1002: flags.FF_DATA | flags.FF_IVL | 0x43,
	}
	buf := buildID1Buffer(t, segs, values)

	m, err := id1.Parse(buf, 4)
	require.NoError(t, err)

	b, err := m.GetManyBytes(0x1000, 3)
	require.NoError(t, err)
	require.Equal(t, []byte{0x41, 0x42, 0x43}, b)

	_, err = m.GetManyBytes(0x1000, 0x20)
	require.ErrorIs(t, err, errs.ErrOutOfRange)

	_, err = m.GetManyBytes(0x1003, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}
