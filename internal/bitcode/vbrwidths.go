package bitcode

// VBR width constants used throughout LLVM IR's built-in abbreviation
// sets. original_source/src/bitcode/blocks.rs references a `vbr_widths`
// module that was never captured alongside it; the values below are the
// ones LLVM's own BitcodeWriter.cpp uses for the same operand slots
// (see DESIGN.md for this Open Question's resolution).
const (
	// VBRTypeIndex is the width used for type-table indices (e.g.
	// CST_CODE_SETTYPE's operand).
	VBRTypeIndex = 6
	// VBRValueIndex is the width used for value-table indices, e.g. each
	// element of a CST_CODE_AGGREGATE's array operand.
	VBRValueIndex = 8
	// VBRInteger is the width used for CST_CODE_INTEGER's operand.
	VBRInteger = 8
)
