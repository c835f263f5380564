// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

// FileEntry is one row of a line program's file-name table.
type FileEntry struct {
	Name    string
	DirIdx  uint64
	Mtime   uint64
	Size    uint64
}

// LineEntry is one row emitted by the line-number state machine.
// Column, IsStmt, BasicBlock and EpilogueBegin are set by their opcodes
// but are not semantically tracked beyond this struct. PrologueEnd and
// ISA are never set: DW_LNS_set_prologue_end and DW_LNS_set_isa fail
// with ErrUnimplementedOpcode. Discriminator is never set either:
// DW_LNE_set_discriminator is skipped over by its declared length.
type LineEntry struct {
	Address       uint64
	File          uint64
	Line          int32
	Column        uint64
	IsStmt        bool
	BasicBlock    bool
	PrologueEnd   bool
	EpilogueBegin bool
	ISA           uint64
	Discriminator uint64
	EndSequence   bool
}

// LineProgram decodes one compilation unit's .debug_line program.
// Only DWARF version 3 is accepted.
type LineProgram struct {
	is64 bool

	minInstructionLength int
	defaultIsStmt        bool
	lineBase             int
	lineRange            int
	opcodeBase           int
	opcodeLengths        []int
	directories          []string
	files                []FileEntry // files[0] is unused; DWARF file indices are 1-based

	stream   *ByteStream
	unitEnd  int
	state    LineEntry
	done     bool
}

// knownStandardOpcodeLengths gives the number of uLEB128 operands each
// DWARF3 standard opcode this program implements is declared to have
// in the header's standard_opcode_lengths table.
var knownStandardOpcodeLengths = map[int]int{
	lnsCopy:             0,
	lnsAdvancePC:        1,
	lnsAdvanceLine:      1,
	lnsSetFile:          1,
	lnsSetColumn:        1,
	lnsNegateStmt:       0,
	lnsSetBasicBlock:    0,
	lnsConstAddPC:       0,
	lnsSetEpilogueBegin: 0,
}

// NewLineProgram decodes the prologue of the line program occupying
// data (the caller slices out one .debug_line unit) and returns a
// program positioned at the start of its statement opcodes. is64
// selects the address width used by DW_LNE_set_address.
func NewLineProgram(is64 bool, data []byte) (*LineProgram, error) {
	s := NewByteStream(".debug_line", data)

	unitLength, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	unitStart := s.offset()
	unitEnd := unitStart + int(unitLength)

	version, err := s.ReadUint16()
	if err != nil {
		return nil, err
	}
	if version != 3 {
		return nil, decodeErrorf(".debug_line", s.offset(), ErrUnsupportedVersion,
			"got version %d, want 3", version)
	}

	headerLength, err := s.ReadUint32()
	if err != nil {
		return nil, err
	}
	if int(headerLength) > int(unitLength) {
		return nil, decodeErrorf(".debug_line", s.offset(), ErrStructuralAssert,
			"header_length %d exceeds unit_length %d", headerLength, unitLength)
	}
	programStart := s.offset() + int(headerLength)

	minInstructionLength, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	defaultIsStmtByte, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	lineBaseByte, err := s.ReadInt8()
	if err != nil {
		return nil, err
	}
	lineRange, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	opcodeBase, err := s.ReadUint8()
	if err != nil {
		return nil, err
	}
	if opcodeBase == 0 {
		return nil, decodeErrorf(".debug_line", s.offset(), ErrStructuralAssert,
			"opcode_base is 0")
	}

	opcodeLengths := make([]int, int(opcodeBase))
	for i := 1; i < int(opcodeBase); i++ {
		v, err := s.ReadUint8()
		if err != nil {
			return nil, err
		}
		opcodeLengths[i] = int(v)
	}
	for opcode, want := range knownStandardOpcodeLengths {
		if opcode >= len(opcodeLengths) {
			continue
		}
		if opcodeLengths[opcode] != want {
			return nil, decodeErrorf(".debug_line", s.offset(), ErrStructuralAssert,
				"opcode %d declared with %d args, want %d", opcode, opcodeLengths[opcode], want)
		}
	}

	var directories []string
	for {
		dir, err := s.ReadCString()
		if err != nil {
			return nil, err
		}
		if dir == "" {
			break
		}
		directories = append(directories, dir)
	}

	files := make([]FileEntry, 1) // index 0 unused
	for {
		fe, done, err := readFileEntry(s)
		if err != nil {
			return nil, err
		}
		if done {
			break
		}
		files = append(files, fe)
	}

	if err := s.Skip(programStart - s.offset()); err != nil {
		return nil, err
	}

	p := &LineProgram{
		is64:                  is64,
		minInstructionLength:  int(minInstructionLength),
		defaultIsStmt:         defaultIsStmtByte != 0,
		lineBase:              int(lineBaseByte),
		lineRange:             int(lineRange),
		opcodeBase:            int(opcodeBase),
		opcodeLengths:         opcodeLengths,
		directories:           directories,
		files:                 files,
		stream:                s,
		unitEnd:               unitEnd,
	}
	p.resetState()
	return p, nil
}

func (p *LineProgram) resetState() {
	p.state = LineEntry{Address: 0, File: 1, Line: 1, IsStmt: p.defaultIsStmt}
}

// Files returns the line program's file-name table, including the
// unused index-0 placeholder.
func (p *LineProgram) Files() []FileEntry {
	return p.files
}

// Directories returns the line program's include-directory table.
func (p *LineProgram) Directories() []string {
	return p.directories
}

func readFileEntry(s *ByteStream) (FileEntry, bool, error) {
	name, err := s.ReadCString()
	if err != nil {
		return FileEntry{}, false, err
	}
	if name == "" {
		return FileEntry{}, true, nil
	}
	dirIdx, err := s.ReadULEB128()
	if err != nil {
		return FileEntry{}, false, err
	}
	mtime, err := s.ReadULEB128()
	if err != nil {
		return FileEntry{}, false, err
	}
	size, err := s.ReadULEB128()
	if err != nil {
		return FileEntry{}, false, err
	}
	return FileEntry{Name: name, DirIdx: dirIdx, Mtime: mtime, Size: size}, false, nil
}

// Next executes opcodes until one emits a row, and returns it. It
// returns nil, nil once the unit's statement program is exhausted.
func (p *LineProgram) Next() (*LineEntry, error) {
	if p.done {
		return nil, nil
	}
	for p.stream.offset() < p.unitEnd-1 {
		entry, err := p.step()
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return entry, nil
		}
	}
	p.done = true
	return nil, nil
}

func (p *LineProgram) step() (*LineEntry, error) {
	opcodeByte, err := p.stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	opcode := int(opcodeByte)

	var addressIncrement, lineIncrement int

	switch {
	case opcode >= p.opcodeBase:
		adjusted := opcode - p.opcodeBase
		addressIncrement = (adjusted / p.lineRange) * p.minInstructionLength
		lineIncrement = p.lineBase + adjusted%p.lineRange
		return p.applyAndEmit(addressIncrement, lineIncrement), nil

	case opcode == 0:
		return p.stepExtended()

	default:
		return p.stepStandard(opcode)
	}
}

func (p *LineProgram) stepStandard(opcode int) (*LineEntry, error) {
	switch opcode {
	case lnsCopy:
		return p.applyAndEmit(0, 0), nil

	case lnsAdvancePC:
		n, err := p.stream.ReadULEB128()
		if err != nil {
			return nil, err
		}
		p.apply(int(n)*p.minInstructionLength, 0)
		return nil, nil

	case lnsAdvanceLine:
		n, err := p.stream.ReadSLEB128()
		if err != nil {
			return nil, err
		}
		p.apply(0, int(n))
		return nil, nil

	case lnsSetFile:
		n, err := p.stream.ReadULEB128()
		if err != nil {
			return nil, err
		}
		if n < 1 || int(n) >= len(p.files) {
			return nil, decodeErrorf(".debug_line", p.stream.offset(), ErrStructuralAssert,
				"set_file index %d out of range (have %d files)", n, len(p.files))
		}
		p.state.File = n
		return nil, nil

	case lnsSetColumn:
		n, err := p.stream.ReadULEB128()
		if err != nil {
			return nil, err
		}
		p.state.Column = n
		return nil, nil

	case lnsNegateStmt:
		p.state.IsStmt = !p.state.IsStmt
		return nil, nil

	case lnsSetBasicBlock:
		p.state.BasicBlock = true
		return nil, nil

	case lnsConstAddPC:
		p.apply(((255-p.opcodeBase)/p.lineRange)*p.minInstructionLength, 0)
		return nil, nil

	case lnsFixedAdvancePC:
		n, err := p.stream.ReadUint16()
		if err != nil {
			return nil, err
		}
		p.apply(int(n), 0)
		return nil, nil

	case lnsSetEpilogueBegin:
		p.state.EpilogueBegin = true
		return nil, nil

	default:
		return nil, decodeErrorf(".debug_line", p.stream.offset(), ErrUnimplementedOpcode,
			"standard opcode %d", opcode)
	}
}

func (p *LineProgram) stepExtended() (*LineEntry, error) {
	length, err := p.stream.ReadULEB128()
	if err != nil {
		return nil, err
	}
	startOffset := p.stream.offset()

	subOpcodeByte, err := p.stream.ReadUint8()
	if err != nil {
		return nil, err
	}
	subOpcode := int(subOpcodeByte)

	var entry *LineEntry
	switch subOpcode {
	case lneEndSequence:
		p.state.EndSequence = true
		result := p.state
		entry = &result
		p.resetState()

	case lneSetAddress:
		addr, err := p.stream.ReadAddr(p.is64)
		if err != nil {
			return nil, err
		}
		p.state.Address = addr

	case lneDefineFile:
		fe, done, err := readFileEntry(p.stream)
		if err != nil {
			return nil, err
		}
		if done {
			return nil, decodeErrorf(".debug_line", startOffset, ErrStructuralAssert,
				"DW_LNE_define_file with empty name")
		}
		p.files = append(p.files, fe)

	default:
		// Discriminator and any unrecognized extended opcode: skip
		// its declared length, discarding the operand.
	}

	if err := p.stream.Skip(startOffset + int(length) - p.stream.offset()); err != nil {
		return nil, err
	}
	return entry, nil
}

func (p *LineProgram) apply(addressIncrement, lineIncrement int) {
	p.state.Address += uint64(addressIncrement)
	p.state.Line += int32(lineIncrement)
}

func (p *LineProgram) applyAndEmit(addressIncrement, lineIncrement int) *LineEntry {
	p.apply(addressIncrement, lineIncrement)
	result := p.state
	p.state.BasicBlock = false
	p.state.PrologueEnd = false
	p.state.EpilogueBegin = false
	p.state.Discriminator = 0
	return &result
}
