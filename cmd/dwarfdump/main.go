// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dwarfdump prints the DWARF v3 debug information embedded in
// an ELF object, in the style of binutils' objdump --dwarf.
package main

func main() {
	Execute()
}
