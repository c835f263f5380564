// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import "fmt"

// DieRecord is transient per-DIE metadata retained for the lifetime of
// one compilation-unit walk, used to resolve DW_AT_type back-references.
type DieRecord struct {
	Offset int
	Tag    Tag
	Name   string
}

// DieTreeNode is one node of the DIE tree: a monotonically assigned
// index plus its children, addressed as indices into the owning
// DieTree's Nodes slice. There is no pointer-linked structure and no
// back-pointers, so the tree has no internal cycles.
type DieTreeNode struct {
	Index    int
	Children []int
}

// DieTree is the arena of nodes produced by walking one compilation
// unit, plus every attribute line printed along the way.
type DieTree struct {
	Root  int
	Nodes []DieTreeNode
	Dump  []string
}

// DieTreeParser walks one compilation unit of .debug_info.
type DieTreeParser struct {
	Is64        bool
	DebugStr    []byte
	DebugLoc    []byte
	DebugAbbrev []byte

	// abbrevCache memoizes LocateAbbrevTable by offset, since a
	// multi-CU object typically reuses the same debug_abbrev_offset
	// across many units.
	abbrevCache map[uint32]AbbrevTable

	// records accumulates every DIE seen in the unit currently being
	// walked, keyed by its byte offset from the start of the unit
	// header, so that DW_AT_type references resolve against whatever
	// has been seen so far. A forward reference finds no record.
	records map[int]*DieRecord
}

// NewDieTreeParser constructs a parser over a whole .debug_info
// section. debugAbbrev is the raw .debug_abbrev section content;
// tables are located from it lazily, keyed by the debug_abbrev_offset
// each compilation unit's header names.
func NewDieTreeParser(is64 bool, debugStr, debugLoc, debugAbbrev []byte) *DieTreeParser {
	return &DieTreeParser{
		Is64:        is64,
		DebugStr:    debugStr,
		DebugLoc:    debugLoc,
		DebugAbbrev: debugAbbrev,
		abbrevCache: make(map[uint32]AbbrevTable),
	}
}

// ParseUnit parses one compilation unit starting at the beginning of
// data (the caller slices out the unit's bytes from .debug_info).
func (p *DieTreeParser) ParseUnit(data []byte) (*DieTree, error) {
	s := NewByteStream(".debug_info", data)

	unitLength, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	version, err := s.ReadUint16()
	if err != nil {
		return nil, err
	}
	debugAbbrevOffset, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	_, err = s.ReadUint8() // address_size; not otherwise consulted by this decoder
	if err != nil {
		return nil, err
	}
	_ = version

	table, ok := p.abbrevCache[debugAbbrevOffset]
	if !ok {
		var err error
		table, err = LocateAbbrevTable(p.DebugAbbrev, int(debugAbbrevOffset))
		if err != nil {
			return nil, fmt.Errorf("locating abbrev table at %#x: %w", debugAbbrevOffset, err)
		}
		p.abbrevCache[debugAbbrevOffset] = table
	}

	unitEnd := 4 + int(unitLength) // unit_length field itself is 4 bytes, not counted in unit_length
	p.records = make(map[int]*DieRecord)

	tree := &DieTree{Root: -1}
	var stack []int
	index := 0

	for s.offset() < unitEnd {
		dieOffset := s.offset()
		code, err := s.ReadULEB128()
		if err != nil {
			return nil, err
		}

		if code == 0 {
			if len(stack) == 0 {
				return nil, decodeErrorf(".debug_info", dieOffset, ErrStructuralAssert,
					"parent stack underflow")
			}
			stack = stack[:len(stack)-1]
			continue
		}

		entry, ok := table[code]
		if !ok {
			return nil, decodeErrorf(".debug_info", dieOffset, ErrStructuralAssert,
				"abbrev code %d not in table", code)
		}

		tree.Dump = append(tree.Dump, fmt.Sprintf("%#x: %s", dieOffset, entry.Tag))
		rec := &DieRecord{Offset: dieOffset, Tag: entry.Tag}

		for _, attr := range entry.Attrs {
			line, err := p.decodeAttr(s, attr, rec)
			if err != nil {
				return nil, err
			}
			tree.Dump = append(tree.Dump, "  "+line)
		}

		p.records[dieOffset] = rec

		if tree.Root < 0 {
			tree.Root = index
			tree.Nodes = append(tree.Nodes, DieTreeNode{Index: index})
			stack = append(stack, index)
		} else {
			parent := stack[len(stack)-1]
			tree.Nodes = append(tree.Nodes, DieTreeNode{Index: index})
			tree.Nodes[parent].Children = append(tree.Nodes[parent].Children, index)
			if entry.HasChildren {
				stack = append(stack, index)
			}
		}

		index++
	}

	return tree, nil
}

// decodeAttr decodes one (attrName, form) pair per §4.3.1, producing a
// printable "AttrName: value" line and side-effecting rec's Name.
func (p *DieTreeParser) decodeAttr(s *ByteStream, attr AttrSpec, rec *DieRecord) (string, error) {
	switch attr.Form {
	case FormStrp:
		off, err := s.ReadUint32()
		if err != nil {
			return "", err
		}
		str, err := stringAt(p.DebugStr, int(off))
		if err != nil {
			return "", err
		}
		if attr.Name == AttrName {
			rec.Name = str
			if rec.Tag == TagSubprogram {
				if demangled := DemangleName(str); demangled != str {
					return fmt.Sprintf("%s: %s (demangled: %s)", attr.Name, str, demangled), nil
				}
			}
		}
		return fmt.Sprintf("%s: %s", attr.Name, str), nil

	case FormString:
		str, err := s.ReadCString()
		if err != nil {
			return "", err
		}
		if attr.Name == AttrName {
			rec.Name = str
			if rec.Tag == TagSubprogram {
				if demangled := DemangleName(str); demangled != str {
					return fmt.Sprintf("%s: %s (demangled: %s)", attr.Name, str, demangled), nil
				}
			}
		}
		return fmt.Sprintf("%s: %s", attr.Name, str), nil

	case FormData1:
		v, err := s.ReadUint8()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %#x", attr.Name, v), nil

	case FormData2:
		v, err := s.ReadUint16()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %#x", attr.Name, v), nil

	case FormData4:
		v, err := s.ReadUint32()
		if err != nil {
			return "", err
		}
		if attr.Name == AttrLocation {
			locList, err := DecodeLocListAt(p.DebugLoc, int(v))
			if err != nil {
				return "", fmt.Errorf("resolving loclist for %s: %w", attr.Name, err)
			}
			return fmt.Sprintf("%s: loclist@%#x %v", attr.Name, v, locList), nil
		}
		return fmt.Sprintf("%s: %#x", attr.Name, v), nil

	case FormAddr:
		v, err := s.ReadAddr(p.Is64)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %#x", attr.Name, v), nil

	case FormFlag:
		v, err := s.ReadUint8()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %#x", attr.Name, v), nil

	case FormRef1:
		v, err := s.ReadUint8()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: ref %#x", attr.Name, v), nil

	case FormRef2:
		v, err := s.ReadUint16()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: ref %#x", attr.Name, v), nil

	case FormRef4:
		v, err := s.ReadUint32()
		if err != nil {
			return "", err
		}
		if attr.Name == AttrType {
			typeName := p.resolveTypeName(int(v))
			return fmt.Sprintf("%s: ref %#x (%s)", attr.Name, v, typeName), nil
		}
		return fmt.Sprintf("%s: ref %#x", attr.Name, v), nil

	case FormBlock1, FormBlock2, FormBlock4:
		n, err := readBlockLength(s, attr.Form)
		if err != nil {
			return "", err
		}
		block, err := s.ReadBytes(n)
		if err != nil {
			return "", err
		}
		if attr.Name == AttrLocation {
			expr, err := DecodeLocationExpr(block)
			if err != nil {
				return "", fmt.Errorf("decoding location expression for %s: %w", attr.Name, err)
			}
			return fmt.Sprintf("%s: %v", attr.Name, expr), nil
		}
		return fmt.Sprintf("%s: %s", attr.Name, hexBlock(block)), nil

	default:
		return "", decodeErrorf(s.section, s.offset(), ErrUnimplementedForm, "%s", attr.Form)
	}
}

func readBlockLength(s *ByteStream, form Form) (int, error) {
	switch form {
	case FormBlock1:
		v, err := s.ReadUint8()
		return int(v), err
	case FormBlock2:
		v, err := s.ReadUint16()
		return int(v), err
	default: // FormBlock4
		v, err := s.ReadUint32()
		return int(v), err
	}
}

func hexBlock(b []byte) string {
	s := ""
	for _, v := range b {
		s += fmt.Sprintf("0x%x ", v)
	}
	return s
}

// resolveTypeName implements §4.3.2. The ref4 offset is interpreted as
// relative to the start of the current unit's header, which is how
// records is keyed (ParseUnit reads from the unit's own slice) and how
// the DWARF standard defines DW_FORM_ref4; see DESIGN.md.
func (p *DieTreeParser) resolveTypeName(offset int) string {
	rec, ok := p.records[offset]
	if !ok {
		return ""
	}
	switch rec.Tag {
	case TagBaseType, TagTypedef:
		return rec.Name
	case TagPointerType:
		return "pointer"
	case TagConstType:
		return "const"
	case TagStructureType, TagClassType:
		if rec.Name != "" {
			return rec.Name
		}
		return "struct"
	case TagArrayType:
		return "array"
	default:
		return rec.Name
	}
}

func stringAt(data []byte, offset int) (string, error) {
	if offset < 0 || offset > len(data) {
		return "", decodeErrorf(".debug_str", offset, ErrOutOfBounds, "strp offset out of range")
	}
	s := NewByteStream(".debug_str", data[offset:])
	return s.ReadCString()
}
