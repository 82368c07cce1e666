// Package flags interprets the 32-bit per-byte flag word: byte value, class,
// common bits, and operand/data-type sub-fields.
package flags

// Word is the 32-bit flag value describing one byte of the program.
type Word uint32

// Masks and tagged values for the flag word's sub-fields. Values come from the
// disassembler's own bit-layout documentation for the per-byte flag word.
const (
	MS_VAL Word = 0x000000FF
	FF_IVL Word = 0x00000100

	MS_CLS  Word = 0x00000600
	FF_CODE Word = 0x00000600
	FF_DATA Word = 0x00000400
	FF_TAIL Word = 0x00000200
	FF_UNK  Word = 0x00000000

	MS_COMM Word = 0x000FF800
	FF_COMM Word = 0x00000800
	FF_REF  Word = 0x00001000
	FF_LINE Word = 0x00002000
	FF_NAME Word = 0x00004000
	FF_LABL Word = 0x00008000
	FF_FLOW Word = 0x00010000
	FF_SIGN Word = 0x00020000
	FF_BNOT Word = 0x00040000
	FF_VAR  Word = 0x00080000

	MS_0TYPE Word = 0x00F00000
	FF_0VOID Word = 0x00000000
	FF_0NUMH Word = 0x00100000
	FF_0NUMD Word = 0x00200000
	FF_0CHAR Word = 0x00300000
	FF_0SEG  Word = 0x00400000
	FF_0OFF  Word = 0x00500000
	FF_0NUMB Word = 0x00600000
	FF_0NUMO Word = 0x00700000
	FF_0ENUM Word = 0x00800000
	FF_0FOP  Word = 0x00900000
	FF_0STRO Word = 0x00A00000
	FF_0STK  Word = 0x00B00000
	FF_0FLT  Word = 0x00C00000
	FF_0CUST Word = 0x00D00000

	MS_1TYPE Word = 0x0F000000
	FF_1VOID Word = 0x00000000
	FF_1NUMH Word = 0x01000000
	FF_1NUMD Word = 0x02000000
	FF_1CHAR Word = 0x03000000
	FF_1SEG  Word = 0x04000000
	FF_1OFF  Word = 0x05000000
	FF_1NUMB Word = 0x06000000
	FF_1NUMO Word = 0x07000000
	FF_1ENUM Word = 0x08000000
	FF_1FOP  Word = 0x09000000
	FF_1STRO Word = 0x0A000000
	FF_1STK  Word = 0x0B000000
	FF_1FLT  Word = 0x0C000000
	FF_1CUST Word = 0x0D000000

	MS_CODE Word = 0xF0000000
	FF_FUNC Word = 0x10000000
	FF_IMMD Word = 0x40000000
	FF_JUMP Word = 0x80000000

	DT_TYPE     Word = 0xF0000000
	FF_BYTE     Word = 0x00000000
	FF_WORD     Word = 0x10000000
	FF_DWRD     Word = 0x20000000
	FF_QWRD     Word = 0x30000000
	FF_TBYT     Word = 0x40000000
	FF_ASCI     Word = 0x50000000
	FF_STRU     Word = 0x60000000
	FF_OWRD     Word = 0x70000000
	FF_FLOAT    Word = 0x80000000
	FF_DOUBLE   Word = 0x90000000
	FF_PACKREAL Word = 0xA0000000
	FF_ALIGN    Word = 0xB0000000
	FF_3BYTE    Word = 0xC0000000
	FF_CUSTOM   Word = 0xD0000000
	FF_YWRD     Word = 0xE0000000
)
