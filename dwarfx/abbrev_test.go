// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import (
	"errors"
	"testing"
)

func TestParseAbbrevTableSingleEntry(t *testing.T) {
	// S3: code 1, tag compile_unit, has-children, one attribute
	// (name, string), attr terminator, table terminator.
	data := []byte{0x01, 0x11, 0x01, 0x03, 0x08, 0x00, 0x00, 0x00}

	table, err := ParseAbbrevTable(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 1 {
		t.Fatalf("got %d entries, want 1", len(table))
	}
	entry, ok := table[1]
	if !ok {
		t.Fatal("missing code 1")
	}
	if entry.Tag != TagCompileUnit {
		t.Errorf("tag = %s, want CompileUnit", entry.Tag)
	}
	if !entry.HasChildren {
		t.Error("hasChildren = false, want true")
	}
	if len(entry.Attrs) != 1 || entry.Attrs[0] != (AttrSpec{AttrName, FormString}) {
		t.Errorf("attrs = %v, want [{Name String}]", entry.Attrs)
	}
}

func TestParseAbbrevTableDuplicateCode(t *testing.T) {
	data := []byte{
		0x01, 0x24, 0x00, 0x00, 0x00, // code 1, base_type, no children, no attrs
		0x01, 0x24, 0x00, 0x00, 0x00, // code 1 again
		0x00,
	}
	if _, err := ParseAbbrevTable(data); !errors.Is(err, ErrStructuralAssert) {
		t.Fatalf("got %v, want ErrStructuralAssert", err)
	}
}

func TestParseAbbrevTableUnknownChildrenFlag(t *testing.T) {
	data := []byte{0x01, 0x24, 0x02, 0x00, 0x00, 0x00}
	if _, err := ParseAbbrevTable(data); !errors.Is(err, ErrUnknownChildrenFlag) {
		t.Fatalf("got %v, want ErrUnknownChildrenFlag", err)
	}
}

func TestLocateAbbrevTableMultiple(t *testing.T) {
	one := []byte{0x01, 0x24, 0x00, 0x00, 0x00, 0x00}
	two := []byte{0x01, 0x11, 0x00, 0x00, 0x00, 0x00}
	section := append(append([]byte{}, one...), two...)

	t1, err := LocateAbbrevTable(section, 0)
	if err != nil {
		t.Fatal(err)
	}
	if t1[1].Tag != TagBaseType {
		t.Errorf("table 1: got tag %s, want BaseType", t1[1].Tag)
	}

	t2, err := LocateAbbrevTable(section, len(one))
	if err != nil {
		t.Fatal(err)
	}
	if t2[1].Tag != TagCompileUnit {
		t.Errorf("table 2: got tag %s, want CompileUnit", t2[1].Tag)
	}
}
