// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dwarfx

import "github.com/ianlancetaylor/demangle"

// DemangleName returns a human-readable form of a DW_TAG_subprogram's
// DW_AT_name when it looks like a mangled C++ or Rust linkage name. If
// name does not demangle (the common case for C sources, or names
// already in source form), it's returned unchanged.
func DemangleName(name string) string {
	demangled, err := demangle.ToString(name)
	if err != nil {
		return name
	}
	return demangled
}
