// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import (
	"errors"
	"strings"
	"testing"
)

func abbrevForDieTests() []byte {
	return []byte{
		0x01, 0x11, 0x01, 0x00, 0x00, // code 1: compile_unit, children, no attrs
		0x02, 0x34, 0x00, 0x00, 0x00, // code 2: variable, no children, no attrs
		0x00,
	}
}

// S4: a compilation unit with a root DIE and two leaf children. The DIE
// body is the literal "01 02 02 00 00" sequence: root, two no-children
// leaves, the null that closes root's child list, and one trailing
// byte past unit_length that the walk never reaches.
func TestParseUnitTreeShape(t *testing.T) {
	data := []byte{
		0x0b, 0x00, 0x00, 0x00, // unit_length = 11
		0x03, 0x00, // version 3
		0x00, 0x00, 0x00, 0x00, // debug_abbrev_offset
		0x04, // address_size
		0x01, // root: code 1
		0x02, // child: code 2
		0x02, // child: code 2
		0x00, // terminator, closes root's child list
		0x00, // past unit_length; never read
	}

	p := NewDieTreeParser(false, nil, nil, abbrevForDieTests())
	tree, err := p.ParseUnit(data)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Root != 0 {
		t.Fatalf("root = %d, want 0", tree.Root)
	}
	if got := tree.Nodes[tree.Root].Children; len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("root children = %v, want [1 2]", got)
	}
}

func TestParseUnitParentStackUnderflow(t *testing.T) {
	abbrev := []byte{
		0x01, 0x11, 0x00, 0x00, 0x00, // code 1: compile_unit, no children, no attrs
		0x00,
	}
	data := []byte{
		0x0a, 0x00, 0x00, 0x00, // unit_length = 10
		0x03, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x04,
		0x01, // root: code 1
		0x00, // pops root
		0x00, // nothing left to pop
	}

	p := NewDieTreeParser(false, nil, nil, abbrev)
	if _, err := p.ParseUnit(data); !errors.Is(err, ErrStructuralAssert) {
		t.Fatalf("got %v, want ErrStructuralAssert", err)
	}
}

// Exercises DW_FORM_ref4 type-name resolution per §4.3.2: a base_type
// DIE named "int" referenced from a variable DIE's DW_AT_type.
func TestParseUnitResolvesBaseTypeName(t *testing.T) {
	abbrev := []byte{
		0x01, 0x11, 0x01, 0x00, 0x00, // code 1: compile_unit, children, no attrs
		0x02, 0x24, 0x00, 0x03, 0x08, 0x00, 0x00, // code 2: base_type, (name, string)
		0x03, 0x34, 0x00, 0x49, 0x13, 0x00, 0x00, // code 3: variable, (type, ref4)
		0x00,
	}
	data := []byte{
		0x13, 0x00, 0x00, 0x00, // unit_length = 19
		0x03, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x04,
		0x01,             // root: code 1, offset 11
		0x02, 'i', 'n', 't', 0x00, // base_type "int", offset 12
		0x03, 0x0c, 0x00, 0x00, 0x00, // variable, type = ref 0xc, offset 17
		0x00, // terminator
	}

	p := NewDieTreeParser(false, nil, nil, abbrev)
	tree, err := p.ParseUnit(data)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, line := range tree.Dump {
		if strings.Contains(line, "ref 0xc (int)") {
			found = true
		}
	}
	if !found {
		t.Errorf("dump = %v, want a line resolving ref 0xc to int", tree.Dump)
	}
}

// A block* form with blockLength == 0 is accepted and decodes to an
// empty location expression, not an error.
func TestParseUnitEmptyLocationBlock(t *testing.T) {
	abbrev := []byte{
		0x01, 0x34, 0x00, 0x02, 0x0a, 0x00, 0x00, // code 1: variable, (location, block1)
		0x00,
	}
	data := []byte{
		0x09, 0x00, 0x00, 0x00, // unit_length = 9
		0x03, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x04,
		0x01, // root: code 1
		0x00, // block1 length = 0
	}

	p := NewDieTreeParser(false, nil, nil, abbrev)
	tree, err := p.ParseUnit(data)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, line := range tree.Dump {
		if strings.Contains(line, "Location:") {
			found = true
		}
	}
	if !found {
		t.Errorf("dump = %v, want a Location attribute line", tree.Dump)
	}
}

func TestParseUnitUnknownAbbrevCode(t *testing.T) {
	data := []byte{
		0x08, 0x00, 0x00, 0x00, // unit_length = 8 (version+abbrev_offset+addr_size+1 die byte)
		0x03, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x04,
		0x09, // DIE referencing an abbrev code that doesn't exist
	}

	p := NewDieTreeParser(false, nil, nil, abbrevForDieTests())
	if _, err := p.ParseUnit(data); !errors.Is(err, ErrStructuralAssert) {
		t.Fatalf("got %v, want ErrStructuralAssert", err)
	}
}
