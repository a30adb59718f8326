package bitstream

// Widths and tags for the wire encoding of an abbreviation's own
// definition (spec §4.3 / §6).
const (
	isLiteralWidth    = 1
	literalValueWidth = 8
	operandEncWidth   = 3
	operandValueWidth = 5
	operandCountWidth = 5

	literalTag    = 1
	notLiteralTag = 0

	fixedEnc = 1
	vbrEnc   = 2
	arrayEnc = 3
	char6Enc = 4
	blobEnc  = 5
)

// Abbrev is a named, ordered list of operand definitions. It serializes
// its own definition into a block (DEFINE_ABBREV) and later encodes
// matching record values using the compact abbreviated-record path.
type Abbrev struct {
	Name         string
	Operands     []OperandDef
	OperandCount uint32
}

// NewAbbrev builds an Abbrev, summing each operand's Count() into the
// declared operand-count header up front.
func NewAbbrev(name string, operands []OperandDef) *Abbrev {
	var count int
	for _, op := range operands {
		count += op.Count()
	}

	return &Abbrev{Name: name, Operands: operands, OperandCount: uint32(count)}
}

// WriteDefinition serializes the abbreviation's shape (not its values)
// into the current block, per spec §4.3: the operand count as VBR-5, then
// one is-literal bit plus payload per operand.
func (a *Abbrev) WriteDefinition(s *BitStream) {
	s.WriteVBR(a.OperandCount, operandCountWidth)
	writeOperandDefs(s, a.Operands)
}

func writeOperandDefs(s *BitStream, operands []OperandDef) {
	for _, op := range operands {
		writeOperandDef(s, op)
	}
}

func writeOperandDef(s *BitStream, op OperandDef) {
	switch op.Kind {
	case KindLiteral:
		s.Writer.WriteBits(literalTag, isLiteralWidth)
		s.WriteVBR(op.Literal, literalValueWidth)
	case KindVBR:
		s.Writer.WriteBits(notLiteralTag, isLiteralWidth)
		s.Writer.WriteBits(vbrEnc, operandEncWidth)
		s.WriteVBR(op.Width, operandValueWidth)
	case KindFixed:
		s.Writer.WriteBits(notLiteralTag, isLiteralWidth)
		s.Writer.WriteBits(fixedEnc, operandEncWidth)
		s.WriteVBR(op.Width, operandValueWidth)
	case KindArray:
		s.Writer.WriteBits(notLiteralTag, isLiteralWidth)
		s.Writer.WriteBits(arrayEnc, operandEncWidth)
		// Only the inner definition is written; the Array tag itself
		// already accounted for one slot in OperandCount.
		writeOperandDef(s, *op.Inner)
	case KindBlob:
		s.Writer.WriteBits(notLiteralTag, isLiteralWidth)
		s.Writer.WriteBits(blobEnc, operandEncWidth)
	case KindChar6:
		s.Writer.WriteBits(notLiteralTag, isLiteralWidth)
		s.Writer.WriteBits(char6Enc, operandEncWidth)
	}
}

// Write encodes a record's values in the order this abbreviation
// specifies. The caller is responsible for shape-matching values to the
// operand definitions; Write does not check it.
func (a *Abbrev) Write(s *BitStream, values []OperandValue) {
	for _, v := range values {
		v.Encode(s)
	}
}
