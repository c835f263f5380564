// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import "encoding/binary"

// A ByteStream is a cursored, boundary-checked reader over a borrowed
// byte range. ReadBytes returns slices backed by the caller's buffer,
// so the buffer must outlive those slices. ReadCString and
// ReadStringTable return Go strings, which copy the bytes they hold.
//
// Every DWARF section parser reads through a ByteStream; this keeps
// the "never read past the end of the section" invariant local to one
// type.
type ByteStream struct {
	section string // section name, for diagnostics
	start   []byte // the borrowed range, start[0] is byte 0 of the section/block
	cur     int    // cursor, an index into start
}

// NewByteStream returns a ByteStream over data. section is used only
// to label diagnostics produced while reading it.
func NewByteStream(section string, data []byte) *ByteStream {
	return &ByteStream{section: section, start: data}
}

// offset returns the number of bytes consumed so far.
func (b *ByteStream) offset() int {
	return b.cur
}

// Offset is the exported form of offset, used by callers that record
// a DIE's byte offset before decoding it.
func (b *ByteStream) Offset() int {
	return b.offset()
}

// Len returns the number of unread bytes remaining in the stream.
func (b *ByteStream) Len() int {
	return len(b.start) - b.cur
}

func (b *ByteStream) outOfBounds(need int) error {
	return decodeErrorf(b.section, b.cur, ErrOutOfBounds,
		"need %d bytes, only %d remain", need, b.Len())
}

// ReachedEnd reports whether the cursor is at the end of the stream.
func (b *ByteStream) ReachedEnd() bool {
	return b.cur == len(b.start)
}

// Skip advances the cursor by n bytes.
func (b *ByteStream) Skip(n int) error {
	if n < 0 || n > b.Len() {
		return b.outOfBounds(n)
	}
	b.cur += n
	return nil
}

// ReadBytes returns a borrowed slice of the next n bytes and advances
// the cursor past them.
func (b *ByteStream) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > b.Len() {
		return nil, b.outOfBounds(n)
	}
	s := b.start[b.cur : b.cur+n]
	b.cur += n
	return s, nil
}

// ReadUint8 reads one byte.
func (b *ByteStream) ReadUint8() (uint8, error) {
	if b.Len() < 1 {
		return 0, b.outOfBounds(1)
	}
	v := b.start[b.cur]
	b.cur++
	return v, nil
}

// ReadInt8 reads one byte as a signed value.
func (b *ByteStream) ReadInt8() (int8, error) {
	v, err := b.ReadUint8()
	return int8(v), err
}

// ReadUint16 reads a little-endian uint16.
func (b *ByteStream) ReadUint16() (uint16, error) {
	buf, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf), nil
}

// ReadUint32 reads a little-endian uint32.
func (b *ByteStream) ReadUint32() (uint32, error) {
	buf, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadUint64 reads a little-endian uint64.
func (b *ByteStream) ReadUint64() (uint64, error) {
	buf, err := b.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf), nil
}

// ReadAddr reads an address-sized value: a uint32 for 32-bit ELF, or a
// uint64 for 64-bit ELF.
func (b *ByteStream) ReadAddr(is64 bool) (uint64, error) {
	if is64 {
		return b.ReadUint64()
	}
	v, err := b.ReadUint32()
	return uint64(v), err
}

// ReadCString consumes bytes up to and including the first NUL byte
// and returns the preceding bytes as a string. It fails if no NUL is
// found before the end of the stream.
func (b *ByteStream) ReadCString() (string, error) {
	rest := b.start[b.cur:]
	i := indexByte(rest, 0)
	if i < 0 {
		return "", b.outOfBounds(len(rest) + 1)
	}
	s := string(rest[:i])
	b.cur += i + 1
	return s, nil
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// ReadStringTable repeats ReadCString until an empty string is read;
// the terminating empty string is consumed but not included in the
// result.
func (b *ByteStream) ReadStringTable() ([]string, error) {
	var out []string
	for {
		s, err := b.ReadCString()
		if err != nil {
			return nil, err
		}
		if s == "" {
			return out, nil
		}
		out = append(out, s)
	}
}

// ReadLEB128 decodes a variable-length integer. If signed is true, the
// result is sign-extended according to the DWARF/LEB128 rules;
// otherwise it's zero-extended. maxBits bounds the width of the
// decoded value (<= 64); bits beyond maxBits must be valid padding
// (all-zero for unsigned/positive, all-one for negative) or decoding
// fails with ErrMalformedLEB128.
func (b *ByteStream) ReadLEB128(signed bool, maxBits uint) (uint64, error) {
	var result uint64
	var bitsWritten uint
	var byt uint8
	first := true

	for first || byt&0x80 != 0 {
		first = false
		var err error
		byt, err = b.ReadUint8()
		if err != nil {
			return 0, err
		}

		low := uint64(byt & 0x7F)
		result |= low << bitsWritten
		bitsWritten += 7

		if bitsWritten > maxBits {
			overflow := bitsWritten - maxBits
			signBitPos := uint(6) - overflow
			negative := signed && byt&(1<<signBitPos) != 0

			var mask uint8 = (0xFF << (signBitPos + 1)) & 0x7F
			if negative {
				if byt&mask != mask {
					return 0, decodeErrorf(b.section, b.cur, ErrMalformedLEB128,
						"wrong padding in signed LEB128")
				}
			} else {
				if byt&mask != 0 {
					return 0, decodeErrorf(b.section, b.cur, ErrMalformedLEB128,
						"wrong padding in unsigned LEB128")
				}
			}
		}
	}

	if signed && byt&0x40 != 0 && bitsWritten < 64 {
		result |= ^uint64(0) << bitsWritten
	}

	return result, nil
}

// ReadSLEB128 is a convenience wrapper around ReadLEB128(true, 64)
// that returns the result as a signed int64.
func (b *ByteStream) ReadSLEB128() (int64, error) {
	v, err := b.ReadLEB128(true, 64)
	return int64(v), err
}

// ReadULEB128 is a convenience wrapper around ReadLEB128(false, 64).
func (b *ByteStream) ReadULEB128() (uint64, error) {
	return b.ReadLEB128(false, 64)
}
