package bitstream

import "github.com/orizon-lang/orizon-bc/internal/bcerrors"

// operandLenWidth is fixed at 6 bits per the wire format: an Array or Blob
// operand is always preceded by a 6-bit-VBR element/byte count.
const operandLenWidth = 6

// OperandKind identifies which alphabet member an OperandDef/OperandValue
// belongs to.
type OperandKind int

const (
	KindLiteral OperandKind = iota
	KindFixed
	KindVBR
	KindArray
	KindBlob
	KindChar6
)

// OperandDef is the shape of one slot in an abbreviation: Literal(value),
// Fixed(width), Vbr(width), Array(inner), Blob, or Char6. Array wraps
// exactly one inner definition (the wire format permits no more), whose
// encoding rule applies homogeneously to every element in a matching
// OperandValue.Elements.
type OperandDef struct {
	Kind    OperandKind
	Literal uint32
	Width   uint32
	Inner   *OperandDef
}

func LiteralOperand(value uint32) OperandDef { return OperandDef{Kind: KindLiteral, Literal: value} }
func FixedOperand(width uint32) OperandDef   { return OperandDef{Kind: KindFixed, Width: width} }
func VBROperand(width uint32) OperandDef     { return OperandDef{Kind: KindVBR, Width: width} }
func BlobOperand() OperandDef                { return OperandDef{Kind: KindBlob} }
func Char6Operand() OperandDef               { return OperandDef{Kind: KindChar6} }

func ArrayOperand(inner OperandDef) OperandDef {
	return OperandDef{Kind: KindArray, Inner: &inner}
}

// Count is the structural size of the slot, used as the operand-count
// header of an abbreviation definition: an Array counts as 1 (its own
// header) plus its inner definition's count; every other variant counts 1.
func (d OperandDef) Count() int {
	if d.Kind == KindArray {
		return 1 + d.Inner.Count()
	}

	return 1
}

// OperandValue is the concrete datum encoded into one operand slot.
type OperandValue struct {
	Kind        OperandKind
	VBRValue    uint64
	VBRWidth    uint32
	FixedValue  uint32
	FixedWidth  uint32
	Elements    []OperandValue
	Blob        []byte
	Char6Letter byte
}

func LiteralValue() OperandValue { return OperandValue{Kind: KindLiteral} }

func VBRValue(value uint64, width uint32) OperandValue {
	return OperandValue{Kind: KindVBR, VBRValue: value, VBRWidth: width}
}

func FixedValue(value uint32, width uint32) OperandValue {
	return OperandValue{Kind: KindFixed, FixedValue: value, FixedWidth: width}
}

func ArrayValue(elements ...OperandValue) OperandValue {
	return OperandValue{Kind: KindArray, Elements: elements}
}

func BlobValue(data []byte) OperandValue {
	return OperandValue{Kind: KindBlob, Blob: data}
}

func Char6Value(ch byte) OperandValue {
	return OperandValue{Kind: KindChar6, Char6Letter: ch}
}

// Char6String builds an Array of Char6 values from an ASCII string, the
// common case for symbol-name-like operands (mirrors the reference
// implementation's `impl From<&str> for OperandValue`).
func Char6String(s string) OperandValue {
	elems := make([]OperandValue, 0, len(s))
	for i := 0; i < len(s); i++ {
		elems = append(elems, Char6Value(s[i]))
	}

	return ArrayValue(elems...)
}

// Encode writes this value into stream according to its own shape. Clients
// are responsible for matching an OperandValue's shape to the OperandDef
// slot it fills; Encode does not cross-check against a definition.
func (v OperandValue) Encode(s *BitStream) {
	switch v.Kind {
	case KindLiteral:
		// Implicit in the abbreviation; nothing to write.
	case KindVBR:
		s.WriteVBRU64(uint32(v.VBRValue>>32), uint32(v.VBRValue), v.VBRWidth)
	case KindFixed:
		s.Writer.WriteBits(v.FixedValue, v.FixedWidth)
	case KindArray:
		s.WriteVBR(uint32(len(v.Elements)), operandLenWidth)
		for _, e := range v.Elements {
			e.Encode(s)
		}
	case KindBlob:
		s.WriteVBR(uint32(len(v.Blob)), operandLenWidth)
		s.Align(32)

		for _, b := range v.Blob {
			s.Writer.WriteBits(uint32(b), 8)
		}

		s.Align(32)
	case KindChar6:
		s.Writer.WriteBits(uint32(char6Code(v.Char6Letter)), 6)
	}
}

// char6Code maps an ASCII byte into the 6-bit char6 alphabet: a-z -> 0..25,
// A-Z -> 26..51, 0-9 -> 52..61, '.' -> 62, '_' -> 63. Any other byte is a
// contract violation.
func char6Code(ch byte) uint32 {
	switch {
	case ch >= 'a' && ch <= 'z':
		return uint32(ch - 'a')
	case ch >= 'A' && ch <= 'Z':
		return uint32(ch-'A') + 26
	case ch >= '0' && ch <= '9':
		return uint32(ch-'0') + 52
	case ch == '.':
		return 62
	case ch == '_':
		return 63
	default:
		bcerrors.Raise(bcerrors.InvalidChar6(ch))

		return 0
	}
}
