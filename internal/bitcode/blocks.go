package bitcode

import "github.com/orizon-lang/orizon-bc/internal/bitstream"

// BuildConstantsBlockInfo installs the Constants block's built-in
// abbreviation set into info, ported from LLVM's own writer
// (BitcodeWriter.cpp's WriteConstants, via
// original_source/src/bitcode/blocks.rs).
func BuildConstantsBlockInfo(info bitstream.BlockInfoMap) {
	info[uint32(BlockConstants)] = []*bitstream.Abbrev{
		bitstream.NewAbbrev("settype", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ConstantsSetType)),
			bitstream.VBROperand(VBRTypeIndex),
		}),
		bitstream.NewAbbrev("int", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ConstantsInteger)),
			bitstream.VBROperand(VBRInteger),
		}),
		bitstream.NewAbbrev("null", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ConstantsNull)),
		}),
		bitstream.NewAbbrev("undef", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ConstantsUndef)),
		}),
		bitstream.NewAbbrev("aggr", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ConstantsAggregate)),
			bitstream.ArrayOperand(bitstream.VBROperand(VBRValueIndex)),
		}),
	}
}

// BuildIdentificationBlockInfo installs the Identification block's
// built-in abbreviation set: a char6-encoded producer string and a
// VBR-6 epoch record. original_source declared IdentificationCodes
// but never wired a BlockInfo builder for it; this supplements that gap
// per SPEC_FULL §4.
func BuildIdentificationBlockInfo(info bitstream.BlockInfoMap) {
	info[uint32(BlockIdentification)] = []*bitstream.Abbrev{
		bitstream.NewAbbrev("string", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(IdentificationString)),
			bitstream.ArrayOperand(bitstream.Char6Operand()),
		}),
		bitstream.NewAbbrev("epoch", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(IdentificationEpoch)),
			bitstream.VBROperand(6),
		}),
	}
}

// BuildModuleBlockInfo installs a small built-in abbreviation set for the
// Module block's most common scalar records (target triple and data
// layout, both blob-encoded strings). Like BuildIdentificationBlockInfo,
// this supplements a gap in original_source rather than translating it.
func BuildModuleBlockInfo(info bitstream.BlockInfoMap) {
	info[uint32(BlockModule)] = []*bitstream.Abbrev{
		bitstream.NewAbbrev("triple", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ModuleTriple)),
			bitstream.BlobOperand(),
		}),
		bitstream.NewAbbrev("datalayout", []bitstream.OperandDef{
			bitstream.LiteralOperand(uint32(ModuleDataLayout)),
			bitstream.BlobOperand(),
		}),
	}
}

// BuildDefaultBlockInfo installs every built-in abbreviation set this
// package knows about, keyed by block id, ready to pass to
// (*bitstream.BitStream).WriteBlockInfo.
func BuildDefaultBlockInfo() bitstream.BlockInfoMap {
	info := bitstream.BlockInfoMap{}

	BuildIdentificationBlockInfo(info)
	BuildModuleBlockInfo(info)
	BuildConstantsBlockInfo(info)

	return info
}
