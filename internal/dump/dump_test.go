// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dump

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriterPlainDegradesColor(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, false)

	w.Section(".debug_info")
	w.Header("compilation unit at %#x", 0x10)
	w.Attr("Name", "main")
	w.Line("addr=%#x line=%d", 0x400000, 12)

	out := buf.String()
	if strings.Contains(out, "\x1b[") {
		t.Errorf("expected no ANSI escapes with color disabled, got %q", out)
	}
	for _, want := range []string{"dump .debug_info:", "compilation unit at 0x10", "Name: main", "addr=0x400000 line=12"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestWriterColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, true)
	w.Tag(stubStringer("DW_TAG_compile_unit"))

	out := buf.String()
	if !strings.Contains(out, "DW_TAG_compile_unit") {
		t.Errorf("output %q missing tag text", out)
	}
}

type stubStringer string

func (s stubStringer) String() string { return string(s) }
