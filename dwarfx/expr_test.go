// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import (
	"errors"
	"testing"
)

func TestDecodeLocationExprFbreg(t *testing.T) {
	// DW_OP_fbreg -24
	expr, err := DecodeLocationExpr([]byte{0x91, 0x68})
	if err != nil {
		t.Fatal(err)
	}
	if len(expr) != 1 || expr[0].Op != OpFbreg || expr[0].Operand != -24 {
		t.Fatalf("got %+v, want [{Fbreg -24}]", expr)
	}
}

func TestDecodeLocationExprReg(t *testing.T) {
	for reg := 0; reg <= 31; reg++ {
		expr, err := DecodeLocationExpr([]byte{byte(OpReg0) + byte(reg)})
		if err != nil {
			t.Fatalf("reg%d: %v", reg, err)
		}
		if len(expr) != 1 || expr[0].Operand != int64(reg) {
			t.Fatalf("reg%d: got %+v", reg, expr)
		}
	}
}

func TestDecodeLocationExprRegx(t *testing.T) {
	// DW_OP_regx 130 (ULEB128: 0x82 0x01)
	expr, err := DecodeLocationExpr([]byte{byte(OpRegx), 0x82, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if len(expr) != 1 || expr[0].Op != OpRegx || expr[0].Operand != 130 {
		t.Fatalf("got %+v, want [{Regx 130}]", expr)
	}
}

func TestDecodeLocationExprGNUEntryValueNested(t *testing.T) {
	// DW_OP_GNU_entry_value, size 1, nested: DW_OP_reg0
	nested := []byte{byte(OpReg0)}
	data := append([]byte{byte(OpGNUEntryValue), byte(len(nested))}, nested...)

	expr, err := DecodeLocationExpr(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(expr) != 1 || expr[0].Op != OpGNUEntryValue {
		t.Fatalf("got %+v", expr)
	}
	if len(expr[0].Nested) != 1 || expr[0].Nested[0].Op != OpReg0 {
		t.Fatalf("nested = %+v, want [{Reg0 0}]", expr[0].Nested)
	}
}

func TestDecodeLocationExprUnimplementedOpcode(t *testing.T) {
	_, err := DecodeLocationExpr([]byte{0x03}) // DW_OP_addr, not implemented
	if !errors.Is(err, ErrUnimplementedOpcode) {
		t.Fatalf("got %v, want ErrUnimplementedOpcode", err)
	}
}

func TestDecodeLocationExprSequence(t *testing.T) {
	// DW_OP_reg3 followed by DW_OP_fbreg 16
	data := []byte{byte(OpReg0) + 3, 0x91, 0x10}
	expr, err := DecodeLocationExpr(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(expr) != 2 {
		t.Fatalf("got %d pieces, want 2", len(expr))
	}
	if expr[0].Operand != 3 || expr[1].Operand != 16 {
		t.Fatalf("got %+v", expr)
	}
}
