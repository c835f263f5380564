// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

// Statement program standard opcode encodings
const (
	lnsCopy           = 1
	lnsAdvancePC      = 2
	lnsAdvanceLine    = 3
	lnsSetFile        = 4
	lnsSetColumn      = 5
	lnsNegateStmt     = 6
	lnsSetBasicBlock  = 7
	lnsConstAddPC     = 8
	lnsFixedAdvancePC = 9

	// DWARF 3
	lnsSetPrologueEnd   = 10
	lnsSetEpilogueBegin = 11
	lnsSetISA           = 12
)

// Statement program extended opcode encodings
const (
	lneEndSequence = 1
	lneSetAddress  = 2
	lneDefineFile  = 3

	// DWARF 4
	lneSetDiscriminator = 4
)

// Tag identifies the kind of a DIE (DW_TAG_* in the DWARF standard).
type Tag uint64

// DW_TAG_* constants, DWARF v2 and v3.
const (
	TagArrayType              Tag = 0x01
	TagClassType              Tag = 0x02
	TagEntryPoint             Tag = 0x03
	TagEnumerationType        Tag = 0x04
	TagFormalParameter        Tag = 0x05
	TagImportedDeclaration    Tag = 0x08
	TagLabel                  Tag = 0x0a
	TagLexicalBlock           Tag = 0x0b
	TagMember                 Tag = 0x0d
	TagPointerType            Tag = 0x0f
	TagReferenceType          Tag = 0x10
	TagCompileUnit            Tag = 0x11
	TagStringType             Tag = 0x12
	TagStructureType          Tag = 0x13
	TagSubroutineType         Tag = 0x15
	TagTypedef                Tag = 0x16
	TagUnionType              Tag = 0x17
	TagUnspecifiedParameters  Tag = 0x18
	TagVariant                Tag = 0x19
	TagCommonBlock            Tag = 0x1a
	TagCommonInclusion        Tag = 0x1b
	TagInheritance            Tag = 0x1c
	TagInlinedSubroutine      Tag = 0x1d
	TagModule                 Tag = 0x1e
	TagPtrToMemberType        Tag = 0x1f
	TagSetType                Tag = 0x20
	TagSubrangeType           Tag = 0x21
	TagWithStmt               Tag = 0x22
	TagAccessDeclaration      Tag = 0x23
	TagBaseType               Tag = 0x24
	TagCatchBlock             Tag = 0x25
	TagConstType              Tag = 0x26
	TagConstant               Tag = 0x27
	TagEnumerator             Tag = 0x28
	TagFileType               Tag = 0x29
	TagFriend                 Tag = 0x2a
	TagNamelist               Tag = 0x2b
	TagNamelistItem           Tag = 0x2c
	TagPackedType             Tag = 0x2d
	TagSubprogram             Tag = 0x2e
	TagTemplateTypeParameter  Tag = 0x2f
	TagTemplateValueParameter Tag = 0x30
	TagThrownType             Tag = 0x31
	TagTryBlock               Tag = 0x32
	TagVariantPart            Tag = 0x33
	TagVariable               Tag = 0x34
	TagVolatileType           Tag = 0x35
	TagDwarfProcedure         Tag = 0x36 // DWARF3
	TagRestrictType           Tag = 0x37 // DWARF3
	TagInterfaceType          Tag = 0x38 // DWARF3
	TagNamespace              Tag = 0x39 // DWARF3
	TagImportedModule         Tag = 0x3a // DWARF3
	TagUnspecifiedType        Tag = 0x3b // DWARF3
	TagPartialUnit            Tag = 0x3c // DWARF3
	TagImportedUnit           Tag = 0x3d // DWARF3
	TagCondition              Tag = 0x3f // DWARF3
	TagSharedType             Tag = 0x40 // DWARF3
	TagLoUser                 Tag = 0x4080
	TagHiUser                 Tag = 0xffff
)

// AttributeName identifies a DIE attribute (DW_AT_* in the standard).
type AttributeName uint64

// DW_AT_* constants, DWARF v2 and v3.
const (
	AttrSibling            AttributeName = 0x01
	AttrLocation           AttributeName = 0x02
	AttrName               AttributeName = 0x03
	AttrOrdering           AttributeName = 0x09
	AttrByteSize           AttributeName = 0x0b
	AttrBitOffset          AttributeName = 0x0c
	AttrBitSize            AttributeName = 0x0d
	AttrStmtList           AttributeName = 0x10
	AttrLowpc              AttributeName = 0x11
	AttrHighpc             AttributeName = 0x12
	AttrLanguage           AttributeName = 0x13
	AttrDiscr              AttributeName = 0x15
	AttrDiscrValue         AttributeName = 0x16
	AttrVisibility         AttributeName = 0x17
	AttrImport             AttributeName = 0x18
	AttrStringLength       AttributeName = 0x19
	AttrCommonReference    AttributeName = 0x1a
	AttrCompDir            AttributeName = 0x1b
	AttrConstValue         AttributeName = 0x1c
	AttrContainingType     AttributeName = 0x1d
	AttrDefaultValue       AttributeName = 0x1e
	AttrInline             AttributeName = 0x20
	AttrIsOptional         AttributeName = 0x21
	AttrLowerBound         AttributeName = 0x22
	AttrProducer           AttributeName = 0x25
	AttrPrototyped         AttributeName = 0x27
	AttrReturnAddr         AttributeName = 0x2a
	AttrStartScope         AttributeName = 0x2c
	AttrBitStride          AttributeName = 0x2e
	AttrUpperBound         AttributeName = 0x2f
	AttrAbstractOrigin     AttributeName = 0x31
	AttrAccessibility      AttributeName = 0x32
	AttrAddressClass       AttributeName = 0x33
	AttrArtificial         AttributeName = 0x34
	AttrBaseTypes          AttributeName = 0x35
	AttrCallingConvention  AttributeName = 0x36
	AttrCount              AttributeName = 0x37
	AttrDataMemberLocation AttributeName = 0x38
	AttrDeclColumn         AttributeName = 0x39
	AttrDeclFile           AttributeName = 0x3a
	AttrDeclLine           AttributeName = 0x3b
	AttrDeclaration        AttributeName = 0x3c
	AttrDiscrList          AttributeName = 0x3d
	AttrEncoding           AttributeName = 0x3e
	AttrExternal           AttributeName = 0x3f
	AttrFrameBase          AttributeName = 0x40
	AttrFriend             AttributeName = 0x41
	AttrIdentifierCase     AttributeName = 0x42
	AttrMacroInfo          AttributeName = 0x43
	AttrNamelistItem       AttributeName = 0x44
	AttrPriority           AttributeName = 0x45
	AttrSegment            AttributeName = 0x46
	AttrSpecification      AttributeName = 0x47
	AttrStaticLink         AttributeName = 0x48
	AttrType               AttributeName = 0x49
	AttrUseLocation        AttributeName = 0x4a
	AttrVariableParameter  AttributeName = 0x4b
	AttrVirtuality         AttributeName = 0x4c
	AttrVtableElemLocation AttributeName = 0x4d
	AttrAllocated          AttributeName = 0x4e // DWARF3
	AttrAssociated         AttributeName = 0x4f // DWARF3
	AttrDataLocation       AttributeName = 0x50 // DWARF3
	AttrByteStride         AttributeName = 0x51 // DWARF3
	AttrEntryPc            AttributeName = 0x52 // DWARF3
	AttrUseUTF8            AttributeName = 0x53 // DWARF3
	AttrExtension          AttributeName = 0x54 // DWARF3
	AttrRanges             AttributeName = 0x55 // DWARF3
	AttrTrampoline         AttributeName = 0x56 // DWARF3
	AttrCallColumn         AttributeName = 0x57 // DWARF3
	AttrCallFile           AttributeName = 0x58 // DWARF3
	AttrCallLine           AttributeName = 0x59 // DWARF3
	AttrMIPSLinkageName    AttributeName = 0x2007
	AttrGNUAllCallSites    AttributeName = 0x2117
)

// Form identifies how an attribute's value is encoded (DW_FORM_*).
type Form uint64

// DW_FORM_* constants, DWARF v2 and v3. Only the subset this package's
// attribute decoder switches on is ever produced by real abbrev tables
// in practice for this spec's scope; the rest exist so an unrecognized
// form can still be named instead of printed as a bare number.
const (
	FormAddr     Form = 0x01
	FormBlock2   Form = 0x03
	FormBlock4   Form = 0x04
	FormData2    Form = 0x05
	FormData4    Form = 0x06
	FormData8    Form = 0x07
	FormString   Form = 0x08
	FormBlock    Form = 0x09
	FormBlock1   Form = 0x0a
	FormData1    Form = 0x0b
	FormFlag     Form = 0x0c
	FormSdata    Form = 0x0d
	FormStrp     Form = 0x0e
	FormUdata    Form = 0x0f
	FormRefAddr  Form = 0x10
	FormRef1     Form = 0x11
	FormRef2     Form = 0x12
	FormRef4     Form = 0x13
	FormRef8     Form = 0x14
	FormRefUdata Form = 0x15
	FormIndirect Form = 0x16
)

// DW_CHILDREN_* values in a .debug_abbrev declaration.
const (
	ChildrenNo  = 0x00
	ChildrenYes = 0x01
)
