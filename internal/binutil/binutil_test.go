package binutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laenix/idbgo/errs"
	"github.com/laenix/idbgo/internal/binutil"
)

func TestFixedWidthReaders(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	b, err := binutil.U8(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint8(0x01), b)

	u16, err := binutil.U16(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), u16)

	u32, err := binutil.U32(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint32(0x04030201), u32)

	u64, err := binutil.U64(buf, 0)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0807060504030201), u64)
}

func TestReadersRejectTruncatedInput(t *testing.T) {
	buf := []byte{0x01, 0x02}

	_, err := binutil.U32(buf, 0)
	require.ErrorIs(t, err, errs.ErrCorrupt)

	_, err = binutil.U16(buf, 1)
	require.ErrorIs(t, err, errs.ErrCorrupt)

	_, err = binutil.Bytes(buf, 0, 10)
	require.ErrorIs(t, err, errs.ErrCorrupt)
}

func TestWordDispatchesOnSize(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}

	v4, err := binutil.Word(buf, 0, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(0x04030201), v4)

	v8, err := binutil.Word(buf, 0, 8)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0807060504030201), v8)

	_, err = binutil.Word(buf, 0, 3)
	require.ErrorIs(t, err, errs.ErrCorrupt)
}
