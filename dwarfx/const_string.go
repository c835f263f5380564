// String tables for Tag, AttributeName and Form, written by hand in
// the map-based style stringer uses for sparse enums.

package dwarfx

import "strconv"

var _Tag_map = map[Tag]string{
	TagArrayType:              "ArrayType",
	TagClassType:              "ClassType",
	TagEntryPoint:             "EntryPoint",
	TagEnumerationType:        "EnumerationType",
	TagFormalParameter:        "FormalParameter",
	TagImportedDeclaration:    "ImportedDeclaration",
	TagLabel:                  "Label",
	TagLexicalBlock:           "LexicalBlock",
	TagMember:                 "Member",
	TagPointerType:            "PointerType",
	TagReferenceType:          "ReferenceType",
	TagCompileUnit:            "CompileUnit",
	TagStringType:             "StringType",
	TagStructureType:          "StructureType",
	TagSubroutineType:         "SubroutineType",
	TagTypedef:                "Typedef",
	TagUnionType:              "UnionType",
	TagUnspecifiedParameters:  "UnspecifiedParameters",
	TagVariant:                "Variant",
	TagCommonBlock:            "CommonBlock",
	TagCommonInclusion:        "CommonInclusion",
	TagInheritance:            "Inheritance",
	TagInlinedSubroutine:      "InlinedSubroutine",
	TagModule:                 "Module",
	TagPtrToMemberType:        "PtrToMemberType",
	TagSetType:                "SetType",
	TagSubrangeType:           "SubrangeType",
	TagWithStmt:               "WithStmt",
	TagAccessDeclaration:      "AccessDeclaration",
	TagBaseType:               "BaseType",
	TagCatchBlock:             "CatchBlock",
	TagConstType:              "ConstType",
	TagConstant:               "Constant",
	TagEnumerator:             "Enumerator",
	TagFileType:               "FileType",
	TagFriend:                 "Friend",
	TagNamelist:               "Namelist",
	TagNamelistItem:           "NamelistItem",
	TagPackedType:             "PackedType",
	TagSubprogram:             "Subprogram",
	TagTemplateTypeParameter:  "TemplateTypeParameter",
	TagTemplateValueParameter: "TemplateValueParameter",
	TagThrownType:             "ThrownType",
	TagTryBlock:               "TryBlock",
	TagVariantPart:            "VariantPart",
	TagVariable:               "Variable",
	TagVolatileType:           "VolatileType",
	TagDwarfProcedure:         "DwarfProcedure",
	TagRestrictType:           "RestrictType",
	TagInterfaceType:          "InterfaceType",
	TagNamespace:              "Namespace",
	TagImportedModule:         "ImportedModule",
	TagUnspecifiedType:        "UnspecifiedType",
	TagPartialUnit:            "PartialUnit",
	TagImportedUnit:           "ImportedUnit",
	TagCondition:              "Condition",
	TagSharedType:             "SharedType",
	TagLoUser:                 "LoUser",
	TagHiUser:                 "HiUser",
}

func (t Tag) String() string {
	if s, ok := _Tag_map[t]; ok {
		return s
	}
	return "Tag(" + strconv.FormatUint(uint64(t), 16) + ")"
}

var _AttributeName_map = map[AttributeName]string{
	AttrSibling:            "Sibling",
	AttrLocation:           "Location",
	AttrName:               "Name",
	AttrOrdering:           "Ordering",
	AttrByteSize:           "ByteSize",
	AttrBitOffset:          "BitOffset",
	AttrBitSize:            "BitSize",
	AttrStmtList:           "StmtList",
	AttrLowpc:              "Lowpc",
	AttrHighpc:             "Highpc",
	AttrLanguage:           "Language",
	AttrDiscr:              "Discr",
	AttrDiscrValue:         "DiscrValue",
	AttrVisibility:         "Visibility",
	AttrImport:             "Import",
	AttrStringLength:       "StringLength",
	AttrCommonReference:    "CommonReference",
	AttrCompDir:            "CompDir",
	AttrConstValue:         "ConstValue",
	AttrContainingType:     "ContainingType",
	AttrDefaultValue:       "DefaultValue",
	AttrInline:             "Inline",
	AttrIsOptional:         "IsOptional",
	AttrLowerBound:         "LowerBound",
	AttrProducer:           "Producer",
	AttrPrototyped:         "Prototyped",
	AttrReturnAddr:         "ReturnAddr",
	AttrStartScope:         "StartScope",
	AttrBitStride:          "BitStride",
	AttrUpperBound:         "UpperBound",
	AttrAbstractOrigin:     "AbstractOrigin",
	AttrAccessibility:      "Accessibility",
	AttrAddressClass:       "AddressClass",
	AttrArtificial:         "Artificial",
	AttrBaseTypes:          "BaseTypes",
	AttrCallingConvention:  "CallingConvention",
	AttrCount:              "Count",
	AttrDataMemberLocation: "DataMemberLocation",
	AttrDeclColumn:         "DeclColumn",
	AttrDeclFile:           "DeclFile",
	AttrDeclLine:           "DeclLine",
	AttrDeclaration:        "Declaration",
	AttrDiscrList:          "DiscrList",
	AttrEncoding:           "Encoding",
	AttrExternal:           "External",
	AttrFrameBase:          "FrameBase",
	AttrFriend:             "Friend",
	AttrIdentifierCase:     "IdentifierCase",
	AttrMacroInfo:          "MacroInfo",
	AttrNamelistItem:       "NamelistItem",
	AttrPriority:           "Priority",
	AttrSegment:            "Segment",
	AttrSpecification:      "Specification",
	AttrStaticLink:         "StaticLink",
	AttrType:               "Type",
	AttrUseLocation:        "UseLocation",
	AttrVariableParameter:  "VariableParameter",
	AttrVirtuality:         "Virtuality",
	AttrVtableElemLocation: "VtableElemLocation",
	AttrAllocated:          "Allocated",
	AttrAssociated:         "Associated",
	AttrDataLocation:       "DataLocation",
	AttrByteStride:         "ByteStride",
	AttrEntryPc:            "EntryPc",
	AttrUseUTF8:            "UseUTF8",
	AttrExtension:          "Extension",
	AttrRanges:             "Ranges",
	AttrTrampoline:         "Trampoline",
	AttrCallColumn:         "CallColumn",
	AttrCallFile:           "CallFile",
	AttrCallLine:           "CallLine",
	AttrMIPSLinkageName:    "MIPSLinkageName",
	AttrGNUAllCallSites:    "GNUAllCallSites",
}

func (a AttributeName) String() string {
	if s, ok := _AttributeName_map[a]; ok {
		return s
	}
	return "AttributeName(" + strconv.FormatUint(uint64(a), 16) + ")"
}

var _Form_map = map[Form]string{
	FormAddr:     "Addr",
	FormBlock2:   "Block2",
	FormBlock4:   "Block4",
	FormData2:    "Data2",
	FormData4:    "Data4",
	FormData8:    "Data8",
	FormString:   "String",
	FormBlock:    "Block",
	FormBlock1:   "Block1",
	FormData1:    "Data1",
	FormFlag:     "Flag",
	FormSdata:    "Sdata",
	FormStrp:     "Strp",
	FormUdata:    "Udata",
	FormRefAddr:  "RefAddr",
	FormRef1:     "Ref1",
	FormRef2:     "Ref2",
	FormRef4:     "Ref4",
	FormRef8:     "Ref8",
	FormRefUdata: "RefUdata",
	FormIndirect: "Indirect",
}

func (f Form) String() string {
	if s, ok := _Form_map[f]; ok {
		return s
	}
	return "Form(" + strconv.FormatUint(uint64(f), 16) + ")"
}
