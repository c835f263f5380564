// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

// AttrSpec pairs an attribute name with the form used to encode its
// value, as declared in a .debug_abbrev entry.
type AttrSpec struct {
	Name AttributeName
	Form Form
}

// AbbrevEntry is one abbreviation declaration: a tag, whether the DIE
// using it has children, and the ordered list of attributes it
// carries.
type AbbrevEntry struct {
	Tag         Tag
	HasChildren bool
	Attrs       []AttrSpec
}

// AbbrevTable maps an abbreviation code (as referenced by DIEs in
// .debug_info) to its declaration.
type AbbrevTable map[uint64]AbbrevEntry

// ParseAbbrevTable decodes one .debug_abbrev table occupying the
// entirety of data: reading the code-0 terminator must land exactly
// at the end of data, or the producer is considered malformed.
func ParseAbbrevTable(data []byte) (AbbrevTable, error) {
	s := NewByteStream(".debug_abbrev", data)
	table, err := parseAbbrevTableFrom(s)
	if err != nil {
		return nil, err
	}
	if !s.ReachedEnd() {
		return nil, decodeErrorf(s.section, s.offset(), ErrStructuralAssert,
			"abbrev table code 0 before section end")
	}
	return table, nil
}

// LocateAbbrevTable decodes the .debug_abbrev table starting at
// offset within section. A single ELF may carry several tables packed
// back to back, one per compilation unit; callers keep these keyed by
// the unit's debug_abbrev_offset and call LocateAbbrevTable once per
// offset. Unlike ParseAbbrevTable, it stops as soon as it reads its
// own code-0 terminator, regardless of whatever table follows.
func LocateAbbrevTable(section []byte, offset int) (AbbrevTable, error) {
	if offset < 0 || offset > len(section) {
		return nil, decodeErrorf(".debug_abbrev", offset, ErrOutOfBounds,
			"offset out of range (len %d)", len(section))
	}
	s := NewByteStream(".debug_abbrev", section[offset:])
	return parseAbbrevTableFrom(s)
}

func parseAbbrevTableFrom(s *ByteStream) (AbbrevTable, error) {
	table := make(AbbrevTable)

	for {
		code, err := s.ReadULEB128()
		if err != nil {
			return nil, err
		}
		if code == 0 {
			return table, nil
		}

		if _, dup := table[code]; dup {
			return nil, decodeErrorf(s.section, s.offset(), ErrStructuralAssert,
				"duplicate abbrev code %d", code)
		}

		tag, err := s.ReadULEB128()
		if err != nil {
			return nil, err
		}

		hasChildByte, err := s.ReadUint8()
		if err != nil {
			return nil, err
		}
		var hasChildren bool
		switch hasChildByte {
		case ChildrenYes:
			hasChildren = true
		case ChildrenNo:
			hasChildren = false
		default:
			return nil, decodeErrorf(s.section, s.offset(), ErrUnknownChildrenFlag,
				"got %#x", hasChildByte)
		}

		entry := AbbrevEntry{Tag: Tag(tag), HasChildren: hasChildren}
		for {
			attrName, err := s.ReadULEB128()
			if err != nil {
				return nil, err
			}
			form, err := s.ReadULEB128()
			if err != nil {
				return nil, err
			}
			if attrName == 0 && form == 0 {
				break
			}
			entry.Attrs = append(entry.Attrs, AttrSpec{AttributeName(attrName), Form(form)})
		}

		table[code] = entry
	}
}
