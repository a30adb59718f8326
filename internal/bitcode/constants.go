package bitcode

// ConstantsCode enumerates the CONSTANTS_BLOCK's record codes.
type ConstantsCode uint32

const (
	ConstantsSetType ConstantsCode = iota + 1
	ConstantsNull
	ConstantsUndef
	ConstantsInteger
	ConstantsWideInteger
	ConstantsFloat
	ConstantsAggregate
	ConstantsString
	ConstantsCString
	ConstantsCEBinop
	ConstantsCECast
	ConstantsCEGepOld
	ConstantsCESelect
	ConstantsCEExtractElt
	ConstantsCEInsertElt
	ConstantsCEShuffleVec
	ConstantsCECmp
	ConstantsCEInlineAsmOld
	ConstantsCEShufVecEx
	ConstantsCEInboundsGep
	ConstantsBlockAddress
	ConstantsData
	ConstantsInlineAsmOld2
	ConstantsCEGepWithInRangeIndexOld
	ConstantsCEUnOp
	ConstantsPoison
	ConstantsDsoLocalEquivalent
	ConstantsInlineAsmOld3
	ConstantsNoCFIValue
	ConstantsInlineAsm
	ConstantsCEGepWithInrange
	ConstantsCEGep
	ConstantsPtrAuth
)

// CastCode enumerates the cast opcodes used by CST_CODE_CE_CAST and
// FUNC_CODE_INST_CAST records.
type CastCode uint32

const (
	CastTrunc CastCode = iota
	CastZExt
	CastSExt
	CastFPToUI
	CastFPToSI
	CastUIToFP
	CastSIToFP
	CastFPTrunc
	CastFPExt
	CastPtrToInt
	CastIntToPtr
	CastBitcast
	CastAddrSpaceCast
)

// UnaryOpCode enumerates FUNC_CODE_INST_UNOP's opcodes.
type UnaryOpCode uint32

const UnaryFNeg UnaryOpCode = 0

// BinaryOpCode enumerates the binary opcodes used by CST_CODE_CE_BINOP and
// FUNC_CODE_INST_BINOP records.
type BinaryOpCode uint32

const (
	BinaryAdd BinaryOpCode = iota
	BinarySub
	BinaryMul
	BinaryUDiv
	BinarySDiv
	BinaryURem
	BinarySRem
	BinaryShl
	BinaryLShr
	BinaryAShr
	BinaryAnd
	BinaryOr
	BinaryXor
)

// RMWOperation enumerates atomicrmw operations.
type RMWOperation uint32

const (
	RMWXchg RMWOperation = iota
	RMWAdd
	RMWSub
	RMWAnd
	RMWNand
	RMWOr
	RMWXor
	RMWMax
	RMWMin
	RMWUMax
	RMWUMin
	RMWFAdd
	RMWFSub
	RMWFMax
	RMWFMin
	RMWUIncWrap
	RMWUDecWrap
)

// FunctionCode enumerates the FUNCTION_BLOCK's record codes.
type FunctionCode uint32

const (
	FunctionDeclareBlocks FunctionCode = iota + 1
	FunctionInstBinop
	FunctionInstCast
	FunctionInstGEPOld
	FunctionInstSelect
	FunctionInstExtractElt
	FunctionInstInsertElt
	FunctionInstShuffleVec
	FunctionInstCmp
	FunctionInstRet
	FunctionInstBr
	FunctionInstSwitch
	FunctionInstInvoke
	_ // 14 is unused
	FunctionInstUnreachable
	FunctionInstPHI
	_ // 17 is unused
	_ // 18 is unused
	FunctionInstAlloca
	FunctionInstLoad
	_ // 21 is unused
	_ // 22 is unused
	FunctionInstVAArg
	FunctionInstStoreOld
	_ // 25 is unused
	FunctionInstExtractVal
	FunctionInstInsertVal
	FunctionInstCmp2
	FunctionInstVSelect
	FunctionInstInboundsGEPOld
	FunctionInstIndirectBr
	_ // 32 is unused
	FunctionDebugLocAgain
	FunctionInstCall
	FunctionDebugLoc
	FunctionInstFence
	FunctionInstCmpXchgOld
	FunctionInstAtomicRMWOld
	FunctionInstResume
	FunctionInstLandingPadOld
	FunctionInstLoadAtomic
	FunctionInstStoreAtomicOld
	FunctionInstGEP
	FunctionInstStore
	FunctionInstStoreAtomic
	FunctionInstCmpXchg
	FunctionInstLandingPad
	FunctionInstCleanupRet
	FunctionInstCatchRet
	FunctionInstCatchPad
	FunctionInstCleanupPad
	FunctionInstCatchSwitch
	_ // 53 is unused
	_ // 54 is unused
	FunctionOperandBundle
	FunctionInstUnOp
	FunctionInstCallBr
	FunctionInstFreeze
	FunctionInstAtomicRMW
	FunctionBlockAddrUsers
	FunctionDebugRecordValue
	FunctionDebugRecordDeclare
	FunctionDebugRecordAssign
	FunctionDebugRecordValueSimple
	FunctionDebugRecordLabel
)
