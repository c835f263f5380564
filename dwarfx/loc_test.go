// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import (
	"encoding/binary"
	"errors"
	"testing"
)

func encodeLocEntry(start, end uint64, expr []byte) []byte {
	buf := make([]byte, 8+8+2+len(expr))
	binary.LittleEndian.PutUint64(buf[0:], start)
	binary.LittleEndian.PutUint64(buf[8:], end)
	binary.LittleEndian.PutUint16(buf[16:], uint16(len(expr)))
	copy(buf[18:], expr)
	return buf
}

func TestDecodeLocListAtSingleEntry(t *testing.T) {
	expr := []byte{byte(OpReg0) + 5}
	data := append(encodeLocEntry(0x1000, 0x1010, expr), make([]byte, 16)...) // terminator (0,0)

	list, err := DecodeLocListAt(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 {
		t.Fatalf("got %d entries, want 1", len(list))
	}
	if list[0].StartPC != 0x1000 || list[0].EndPC != 0x1010 {
		t.Errorf("got range [%#x, %#x)", list[0].StartPC, list[0].EndPC)
	}
	if len(list[0].Expr) != 1 || list[0].Expr[0].Operand != 5 {
		t.Errorf("got expr %+v", list[0].Expr)
	}
}

func TestDecodeLocListAtOffset(t *testing.T) {
	prefix := make([]byte, 4)
	entry := encodeLocEntry(0x2000, 0x2004, []byte{byte(OpReg0)})
	terminator := make([]byte, 16)
	data := append(append(prefix, entry...), terminator...)

	list, err := DecodeLocListAt(data, len(prefix))
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].StartPC != 0x2000 {
		t.Fatalf("got %+v", list)
	}
}

func TestDecodeLocListAtOutOfBounds(t *testing.T) {
	if _, err := DecodeLocListAt([]byte{0x01}, 5); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("got %v, want ErrOutOfBounds", err)
	}
}

func TestDecodeLocListAtEmpty(t *testing.T) {
	data := make([]byte, 16) // just the terminator
	list, err := DecodeLocListAt(data, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 0 {
		t.Fatalf("got %d entries, want 0", len(list))
	}
}
