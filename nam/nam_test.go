package nam_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/nam"
)

const pageSize = 0x2000

func buildNamBuffer(t *testing.T, names []uint32) []byte {
	t.Helper()

	header := new(bytes.Buffer)
	header.WriteString("VA*\x00")
	binary.Write(header, binary.LittleEndian, uint32(0x3))       // unk04
	binary.Write(header, binary.LittleEndian, uint32(1))         // non_empty
	binary.Write(header, binary.LittleEndian, uint32(0x800))     // unk0C
	binary.Write(header, binary.LittleEndian, uint32(1))         // page_count
	binary.Write(header, binary.LittleEndian, uint32(0))         // unk14 (wordSize=4)
	binary.Write(header, binary.LittleEndian, uint32(len(names))) // name_count

	require.LessOrEqual(t, header.Len(), pageSize)
	padded := make([]byte, pageSize)
	copy(padded, header.Bytes())

	data := make([]byte, pageSize)
	for i, n := range names {
		binary.LittleEndian.PutUint32(data[i*4:], n)
	}

	buf := append(padded, data...)
	return buf
}

func TestParseDecodesSortedNames(t *testing.T) {
	buf := buildNamBuffer(t, []uint32{0x1000, 0x1010, 0x2000})

	idx, err := nam.Parse(buf, 4)
	require.NoError(t, err)
	require.Equal(t, uint32(3), idx.NameCount)
	require.Equal(t, uint32(1), idx.NonEmpty)
	require.Equal(t, []uint64{0x1000, 0x1010, 0x2000}, idx.Names)
	require.NoError(t, idx.Validate())
}

func TestParseBadSignature(t *testing.T) {
	buf := buildNamBuffer(t, nil)
	copy(buf[:4], "XXXX")

	_, err := nam.Parse(buf, 4)
	require.ErrorIs(t, err, errs.ErrBadSignature)
}

func TestParseUnsupportedWordSize(t *testing.T) {
	buf := buildNamBuffer(t, nil)

	_, err := nam.Parse(buf, 3)
	require.ErrorIs(t, err, errs.ErrCorrupt)
}
