// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import "fmt"

// LocEntry is one range/expression pair from a .debug_loc list.
type LocEntry struct {
	StartPC uint64
	EndPC   uint64
	Expr    LocationExpr
}

// LocList is a sequence of LocEntry read from .debug_loc starting at a
// given byte offset and running to the (0, 0) terminator.
type LocList []LocEntry

// DecodeLocListAt decodes the location list in data starting at
// offset. Addresses are always read as u64, regardless of the ELF
// class of the object the list came from.
func DecodeLocListAt(data []byte, offset int) (LocList, error) {
	if offset < 0 || offset >= len(data) {
		return nil, decodeErrorf(".debug_loc", offset, ErrOutOfBounds,
			"offset out of range (len %d)", len(data))
	}
	s := NewByteStream(".debug_loc", data[offset:])

	var list LocList
	for {
		startPC, err := s.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("reading loclist entry start: %w", err)
		}
		endPC, err := s.ReadUint64()
		if err != nil {
			return nil, fmt.Errorf("reading loclist entry end: %w", err)
		}
		if startPC == 0 && endPC == 0 {
			return list, nil
		}

		size, err := s.ReadUint16()
		if err != nil {
			return nil, fmt.Errorf("reading loclist entry size: %w", err)
		}
		exprBytes, err := s.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("reading loclist entry expression: %w", err)
		}
		expr, err := DecodeLocationExpr(exprBytes)
		if err != nil {
			return nil, fmt.Errorf("decoding loclist entry [%#x, %#x): %w", startPC, endPC, err)
		}

		list = append(list, LocEntry{StartPC: startPC, EndPC: endPC, Expr: expr})
	}
}
