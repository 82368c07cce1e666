package flags

// Predicates below are a mechanical reading of the mask tables in constants.go:
// one function per named bit or tagged sub-field value, grouped the way the
// upstream bit-layout documentation groups them (byte value, class, common
// bits, code subtype, data type, operand-0/1 type). They are not hand-picked;
// the full named surface is carried even where a given predicate is rarely
// used, since downstream callers key off these names directly.

// Value returns the byte value carried in the low 8 bits, valid only when
// HasValue reports true.
func (w Word) Value() uint8 { return uint8(w & MS_VAL) }

// HasValue reports whether the byte has a defined value (FF_IVL).
func (w Word) HasValue() bool { return w&FF_IVL != 0 }

// Class predicates.

func (w Word) IsCode() bool    { return w&MS_CLS == FF_CODE }
func (w Word) IsData() bool    { return w&MS_CLS == FF_DATA }
func (w Word) IsTail() bool    { return w&MS_CLS == FF_TAIL }
func (w Word) IsUnknown() bool { return w&MS_CLS == FF_UNK }
func (w Word) IsNotTail() bool { return !w.IsTail() }

// IsHead reports whether this byte starts an instruction or data item.
func (w Word) IsHead() bool { return w.IsCode() || w.IsData() }

// Common-bits predicates (all bit-set tests against MS_COMM).

func (w Word) HasComment() bool    { return w&MS_COMM&FF_COMM != 0 }
func (w Word) HasRef() bool        { return w&MS_COMM&FF_REF != 0 }
func (w Word) HasExtra() bool      { return w&MS_COMM&FF_LINE != 0 }
func (w Word) HasName() bool       { return w&MS_COMM&FF_NAME != 0 }
func (w Word) HasDummyName() bool  { return w&MS_COMM&FF_LABL != 0 }
func (w Word) IsFlow() bool        { return w&MS_COMM&FF_FLOW != 0 }
func (w Word) IsInvSign() bool     { return w&MS_COMM&FF_SIGN != 0 }
func (w Word) IsBNot() bool        { return w&MS_COMM&FF_BNOT != 0 }
func (w Word) IsVar() bool         { return w&MS_COMM&FF_VAR != 0 }

// Code subtype predicates, meaningful when IsCode() is true.

func (w Word) IsFunc() bool { return w&MS_CODE == FF_FUNC }
func (w Word) IsImmd() bool { return w&MS_CODE == FF_IMMD }
func (w Word) IsJump() bool { return w&MS_CODE == FF_JUMP }

// Data type predicates, meaningful when IsData() is true.

func (w Word) IsByte() bool     { return w&DT_TYPE == FF_BYTE }
func (w Word) IsWord() bool     { return w&DT_TYPE == FF_WORD }
func (w Word) IsDwrd() bool     { return w&DT_TYPE == FF_DWRD }
func (w Word) IsQwrd() bool     { return w&DT_TYPE == FF_QWRD }
func (w Word) IsOwrd() bool     { return w&DT_TYPE == FF_OWRD }
func (w Word) IsYwrd() bool     { return w&DT_TYPE == FF_YWRD }
func (w Word) IsTbyt() bool     { return w&DT_TYPE == FF_TBYT }
func (w Word) IsFloat() bool    { return w&DT_TYPE == FF_FLOAT }
func (w Word) IsDouble() bool   { return w&DT_TYPE == FF_DOUBLE }
func (w Word) IsPackReal() bool { return w&DT_TYPE == FF_PACKREAL }
func (w Word) IsASCII() bool    { return w&DT_TYPE == FF_ASCI }
func (w Word) IsStruct() bool   { return w&DT_TYPE == FF_STRU }
func (w Word) IsAlign() bool    { return w&DT_TYPE == FF_ALIGN }
func (w Word) Is3Byte() bool    { return w&DT_TYPE == FF_3BYTE }
func (w Word) IsCustom() bool   { return w&DT_TYPE == FF_CUSTOM }

// Operand-defined predicates: whether operand 0/1 has any representation set.

func (w Word) IsDefArg0() bool { return w&MS_0TYPE != 0 }
func (w Word) IsDefArg1() bool { return w&MS_1TYPE != 0 }

// Operand-0 type predicates.

func (w Word) IsOff0() bool     { return w&MS_0TYPE == FF_0OFF }
func (w Word) IsChar0() bool    { return w&MS_0TYPE == FF_0CHAR }
func (w Word) IsSeg0() bool     { return w&MS_0TYPE == FF_0SEG }
func (w Word) IsEnum0() bool    { return w&MS_0TYPE == FF_0ENUM }
func (w Word) IsStroff0() bool  { return w&MS_0TYPE == FF_0STRO }
func (w Word) IsStkvar0() bool  { return w&MS_0TYPE == FF_0STK }
func (w Word) IsFloat0() bool   { return w&MS_0TYPE == FF_0FLT }
func (w Word) IsCustFmt0() bool { return w&MS_0TYPE == FF_0CUST }

// IsNum0 reports whether operand 0 is any kind of number (binary, octal,
// decimal, or hex).
func (w Word) IsNum0() bool {
	t := w & MS_0TYPE
	return t == FF_0NUMB || t == FF_0NUMO || t == FF_0NUMD || t == FF_0NUMH
}

// Operand-1 type predicates, mirroring operand-0.

func (w Word) IsOff1() bool     { return w&MS_1TYPE == FF_1OFF }
func (w Word) IsChar1() bool    { return w&MS_1TYPE == FF_1CHAR }
func (w Word) IsSeg1() bool     { return w&MS_1TYPE == FF_1SEG }
func (w Word) IsEnum1() bool    { return w&MS_1TYPE == FF_1ENUM }
func (w Word) IsStroff1() bool  { return w&MS_1TYPE == FF_1STRO }
func (w Word) IsStkvar1() bool  { return w&MS_1TYPE == FF_1STK }
func (w Word) IsFloat1() bool   { return w&MS_1TYPE == FF_1FLT }
func (w Word) IsCustFmt1() bool { return w&MS_1TYPE == FF_1CUST }

// IsNum1 reports whether operand 1 is any kind of number.
func (w Word) IsNum1() bool {
	t := w & MS_1TYPE
	return t == FF_1NUMB || t == FF_1NUMO || t == FF_1NUMD || t == FF_1NUMH
}

// GetOptypeFlags0 returns the raw operand-0 type sub-field.
func (w Word) GetOptypeFlags0() Word { return w & MS_0TYPE }

// GetOptypeFlags1 returns the raw operand-1 type sub-field.
func (w Word) GetOptypeFlags1() Word { return w & MS_1TYPE }
