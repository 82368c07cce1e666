package idb_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/idb"
)

// Container header layout: magic(4) unk04(2) offsets(6*8) unk16(2) sig2(4)
// version(2) checksums(6*4). Section offsets are always 64-bit on disk,
// independent of the configurable word size (that only governs ID1 segment
// bounds and NAM addresses).
const headerSize = 4 + 2 + 6*8 + 2 + 4 + 2 + 6*4

func buildHeader(offsets [6]uint64, version uint16) []byte {
	buf := make([]byte, headerSize)
	copy(buf[0:], "IDA1")
	binary.LittleEndian.PutUint16(buf[4:], 0) // unk04
	off := 6
	for _, o := range offsets {
		binary.LittleEndian.PutUint64(buf[off:], o)
		off += 8
	}
	binary.LittleEndian.PutUint16(buf[off:], 0) // unk16
	off += 2
	binary.LittleEndian.PutUint32(buf[off:], 0xAABBCCDD)
	off += 4
	binary.LittleEndian.PutUint16(buf[off:], version)
	off += 2
	for range offsets {
		binary.LittleEndian.PutUint32(buf[off:], 0) // checksum
		off += 4
	}
	return buf
}

func buildSection(flag byte, payload []byte) []byte {
	buf := make([]byte, 1+8+len(payload))
	buf[0] = flag
	binary.LittleEndian.PutUint64(buf[1:], uint64(len(payload)))
	copy(buf[9:], payload)
	return buf
}

const tilSectionOffset = 0x100

func buildContainerWithTilOnly(t *testing.T, version uint16, compressed bool) []byte {
	t.Helper()
	var offsets [6]uint64
	offsets[4] = tilSectionOffset // slotTIL

	header := buildHeader(offsets, version)
	flag := byte(0)
	if compressed {
		flag = 1
	}
	section := buildSection(flag, []byte("IDATIL"))

	buf := make([]byte, tilSectionOffset+len(section))
	copy(buf, header)
	copy(buf[tilSectionOffset:], section)
	return buf
}

func TestParseDecodesPresentSectionsOnly(t *testing.T) {
	buf := buildContainerWithTilOnly(t, 6, false)

	f, err := idb.Parse(buf, idb.Options{})
	require.NoError(t, err)
	require.Equal(t, uint16(6), f.Header.Version)
	require.NotNil(t, f.Til)
	require.Nil(t, f.ID0)
	require.Nil(t, f.ID1)
	require.Nil(t, f.Nam)
}

func TestParseRejectsBadMagic(t *testing.T) {
	buf := buildContainerWithTilOnly(t, 6, false)
	copy(buf[:4], "NOPE")

	_, err := idb.Parse(buf, idb.Options{})
	require.ErrorIs(t, err, errs.ErrBadSignature)
}

func TestParseRejectsUnsupportedVersion(t *testing.T) {
	buf := buildContainerWithTilOnly(t, 5, false)

	_, err := idb.Parse(buf, idb.Options{})
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestParseRejectsCompressedSections(t *testing.T) {
	buf := buildContainerWithTilOnly(t, 6, true)

	_, err := idb.Parse(buf, idb.Options{})
	require.ErrorIs(t, err, errs.ErrUnsupported)
}

func TestSegmentAndFlagWrappersRequireID1(t *testing.T) {
	buf := buildContainerWithTilOnly(t, 6, false)
	f, err := idb.Parse(buf, idb.Options{})
	require.NoError(t, err)

	_, err = f.SegStart(0x1000)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = f.GetFlags(0x1000)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDumpValue(t *testing.T) {
	// "Hi" in UTF-16LE.
	raw := []byte{'H', 0, 'i', 0}
	s := idb.DumpValue(raw)
	require.Contains(t, s, "Hi")
}
