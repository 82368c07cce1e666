package flags_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/laenix/idbgo/flags"
)

func TestValueAndHasValue(t *testing.T) {
	w := flags.Word(0x42) | flags.FF_IVL
	require.True(t, w.HasValue())
	require.Equal(t, uint8(0x42), w.Value())

	var undefined flags.Word
	require.False(t, undefined.HasValue())
}

func TestClassPredicates(t *testing.T) {
	code := flags.FF_CODE | flags.FF_IVL | 0x90
	require.True(t, code.IsCode())
	require.False(t, code.IsData())
	require.True(t, code.IsHead())
	require.True(t, code.IsNotTail())

	data := flags.FF_DATA | flags.FF_IVL
	require.True(t, data.IsData())
	require.True(t, data.IsHead())

	tail := flags.FF_TAIL
	require.True(t, tail.IsTail())
	require.False(t, tail.IsHead())
	require.False(t, tail.IsNotTail())

	unk := flags.FF_UNK
	require.True(t, unk.IsUnknown())
}

func TestCodeSubtypePredicates(t *testing.T) {
	f := flags.FF_CODE | flags.FF_FUNC
	require.True(t, f.IsFunc())
	require.False(t, f.IsImmd())
	require.False(t, f.IsJump())
}

func TestDataTypePredicates(t *testing.T) {
	require.True(t, (flags.FF_DATA | flags.FF_DWRD).IsDwrd())
	require.True(t, (flags.FF_DATA | flags.FF_ASCI).IsASCII())
	require.True(t, (flags.FF_DATA | flags.FF_BYTE).IsByte())
}

func TestOperandTypePredicates(t *testing.T) {
	f := flags.FF_0OFF | flags.FF_1ENUM
	require.True(t, f.IsOff0())
	require.True(t, f.IsDefArg0())
	require.True(t, f.IsEnum1())
	require.True(t, f.IsDefArg1())
	require.False(t, f.IsNum0())

	num := flags.FF_0NUMH
	require.True(t, num.IsNum0())
}

func TestCommonBitPredicates(t *testing.T) {
	f := flags.FF_COMM | flags.FF_REF | flags.FF_NAME
	require.True(t, f.HasComment())
	require.True(t, f.HasRef())
	require.True(t, f.HasName())
	require.False(t, f.HasExtra())
	require.False(t, f.HasDummyName())
}
