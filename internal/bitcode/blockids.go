// Package bitcode declares the static LLVM bitcode format tables consumed
// by clients of internal/bitstream: block ids, record codes, the per-VBR
// width constants, and the built-in abbreviation sets LLVM's own writer
// installs via BLOCKINFO. None of this is executable encoding logic — it
// is data that a module/type/value serializer built on top of
// internal/bitstream would look up.
package bitcode

// BlockID enumerates LLVM IR's top-level block ids.
// https://llvm.org/docs/BitCodeFormat.html#llvm-ir-blocks
type BlockID uint32

const (
	BlockModule BlockID = 8 + iota
	BlockParamAttr
	BlockParamAttrGroup
	BlockConstants
	BlockFunction
	BlockIdentification
	BlockValueSymtab
	BlockMetadata
	BlockMetadataAttachment
	BlockType
	BlockUseList
	BlockModuleStrtab
	BlockGlobalValSummary
	BlockOperandBundleTags
	BlockMetadataKind
	BlockStrtab
	BlockFullLTOGlobalValSummary
	BlockSymtab
	BlockSyncScopeNames
)

// IdentificationCode enumerates the IDENTIFICATION_BLOCK's record codes.
type IdentificationCode uint32

const (
	IdentificationString IdentificationCode = iota + 1
	IdentificationEpoch
)

// CurrentEpoch is the producer identification epoch this writer declares.
const CurrentEpoch uint32 = 0

// ModuleCode enumerates the MODULE_BLOCK's record codes.
// https://llvm.org/docs/BitCodeFormat.html#module-block-contents
type ModuleCode uint32

const (
	ModuleVersion ModuleCode = iota + 1
	ModuleTriple
	ModuleDataLayout
	ModuleAsm
	ModuleSectionName
	ModuleDeplib
	ModuleGlobalVar
	ModuleFunction
	ModuleAliasOld
	_ // 10 is unused
	ModuleGCName
	ModuleComdat
	ModuleVSTOffset
	ModuleAlias
	_ // 15: METADATA_VALUES, unused by this writer
	ModuleSourceFilename
	ModuleCodeHash
	ModuleCodeIFunc
)

// AttributeCode enumerates the PARAMATTR_BLOCK's record codes.
type AttributeCode uint32

const (
	AttributeEntryOld AttributeCode = iota + 1
	AttributeCodeEntry
	AttributeGrpCodeEntry
)

// TypeCode enumerates the TYPE_BLOCK's record codes.
// https://llvm.org/docs/BitCodeFormat.html#type-block-contents
type TypeCode uint32

const (
	TypeNumEntry TypeCode = iota + 1
	TypeVoid
	TypeFloat
	TypeDouble
	TypeLabel
	TypeOpaque
	TypeInteger
	TypePointer
	TypeFunctionOld
	TypeHalf
	TypeArray
	TypeVector
	TypeX86FP80
	TypeFP128
	TypePPCFP128
	TypeMetadata
	TypeX86MMX
	TypeStructAnon
	TypeStructName
	TypeStructNamed
	TypeFunction
	_ // 22 is unused
	TypeBFloat
	TypeX86AMX
	TypeOpaquePointer
	TypeTargetType
)

// OperandBundleTagCode enumerates the OPERAND_BUNDLE_TAGS_BLOCK's record
// codes.
type OperandBundleTagCode uint32

const OperandBundleTag OperandBundleTagCode = 1

// SyncScopeNameCode enumerates the SYNC_SCOPE_NAMES_BLOCK's record codes.
type SyncScopeNameCode uint32

const SyncScopeName SyncScopeNameCode = 1

// ValueSymtabCode enumerates the VALUE_SYMTAB_BLOCK's record codes.
type ValueSymtabCode uint32

const (
	ValueSymtabEntry ValueSymtabCode = iota + 1
	ValueSymtabBBEntry
	ValueSymtabFnEntry
	_ // 4 is unused
	ValueSymtabCombinedEntry
)

// ModulePathSymtabCode enumerates the module-path symbol table's record
// codes (used by ThinLTO summaries).
type ModulePathSymtabCode uint32

const (
	ModulePathSymtabEntry ModulePathSymtabCode = iota + 1
	ModulePathSymtabHash
)

// StrtabCode enumerates the STRTAB_BLOCK's record codes.
type StrtabCode uint32

const StrtabBlob StrtabCode = 1
