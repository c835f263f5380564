// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elfx locates the DWARF debug sections inside an ELF object,
// on top of the standard library's debug/elf container reader, and
// hands off (offset, size) ranges for dwarfx to decode.
package elfx

import (
	"bytes"
	"debug/elf"
	"fmt"
)

var elfMagic = []byte{0x7f, 'E', 'L', 'F'}

// SectionRange locates a section's content as an (offset, size) pair
// inside the original file buffer, so dwarfx's ByteStream can read it
// without any copy.
type SectionRange struct {
	Offset int
	Size   int
}

func (r SectionRange) slice(data []byte) []byte {
	return data[r.Offset : r.Offset+r.Size]
}

// SectionInfo names one section header, for the --sections listing.
type SectionInfo struct {
	Name   string
	Offset uint64
	Size   uint64
}

// Sections is the result of locating an ELF object's debug sections.
// DebugStr and DebugLoc are optional: zero-valued if the section is
// absent. DebugLine is repeated because COMDAT-style compilation can
// emit the section more than once.
type Sections struct {
	Is64        bool
	DebugAbbrev SectionRange
	DebugInfo   SectionRange
	DebugStr    SectionRange
	HasDebugStr bool
	DebugLoc    SectionRange
	HasDebugLoc bool
	DebugLine   []SectionRange
	All         []SectionInfo
}

// Bytes returns the raw content of the section the range describes.
func (s SectionRange) Bytes(data []byte) []byte {
	return s.slice(data)
}

// Locate validates an ELF object's magic and class, then finds the
// offsets of .debug_abbrev, .debug_info, .debug_str, .debug_loc and
// every .debug_line occurrence.
func Locate(data []byte) (*Sections, error) {
	if len(data) < 5 || !bytes.Equal(data[0:4], elfMagic) {
		return nil, fmt.Errorf("not an ELF object: bad magic")
	}
	switch data[4] {
	case 1, 2: // ELFCLASS32, ELFCLASS64
	default:
		return nil, fmt.Errorf("unsupported ELF class byte %#x", data[4])
	}
	is64 := data[4] == 2

	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing ELF section headers: %w", err)
	}
	defer f.Close()

	sec := &Sections{Is64: is64}
	for _, s := range f.Sections {
		sec.All = append(sec.All, SectionInfo{Name: s.Name, Offset: s.Offset, Size: s.Size})

		r := SectionRange{Offset: int(s.Offset), Size: int(s.Size)}
		switch s.Name {
		case ".debug_abbrev":
			sec.DebugAbbrev = r
		case ".debug_info":
			sec.DebugInfo = r
		case ".debug_str":
			sec.DebugStr = r
			sec.HasDebugStr = true
		case ".debug_loc":
			sec.DebugLoc = r
			sec.HasDebugLoc = true
		case ".debug_line":
			sec.DebugLine = append(sec.DebugLine, r)
		}
	}

	if sec.DebugAbbrev.Size == 0 {
		return nil, fmt.Errorf("object has no .debug_abbrev section")
	}
	if sec.DebugInfo.Size == 0 {
		return nil, fmt.Errorf("object has no .debug_info section")
	}

	return sec, nil
}
