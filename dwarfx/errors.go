// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import (
	"errors"
	"fmt"
)

// Sentinel errors for the decode failure taxonomy. Every DecodeError
// wraps exactly one of these, so callers can test with errors.Is.
var (
	ErrOutOfBounds         = errors.New("out of bounds")
	ErrMalformedLEB128     = errors.New("malformed LEB128")
	ErrUnsupportedVersion  = errors.New("unsupported version")
	ErrUnknownChildrenFlag = errors.New("unknown children flag")
	ErrUnimplementedForm   = errors.New("unimplemented form")
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
	ErrUnknownTag          = errors.New("unknown tag")
	ErrUnknownAttribute    = errors.New("unknown attribute")
	ErrStructuralAssert    = errors.New("structural assertion failed")
)

// DecodeError records a decode failure together with the section and
// byte offset it occurred at.
type DecodeError struct {
	Section string
	Offset  int
	Kind    error
	Message string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("%s:%#x: %s: %s", e.Section, e.Offset, e.Kind, e.Message)
}

func (e DecodeError) Unwrap() error {
	return e.Kind
}

func decodeErrorf(section string, offset int, kind error, format string, args ...interface{}) error {
	return DecodeError{section, offset, kind, fmt.Sprintf(format, args...)}
}
