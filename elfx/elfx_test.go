// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elfx

import "testing"

func TestLocateRejectsBadMagic(t *testing.T) {
	data := []byte{0x00, 'E', 'L', 'F', 0x01}
	if _, err := Locate(data); err == nil {
		t.Fatal("expected an error for bad magic")
	}
}

func TestLocateRejectsTruncatedHeader(t *testing.T) {
	if _, err := Locate([]byte{0x7f, 'E', 'L'}); err == nil {
		t.Fatal("expected an error for a truncated header")
	}
}

func TestLocateRejectsUnknownClass(t *testing.T) {
	data := []byte{0x7f, 'E', 'L', 'F', 0x03} // neither ELFCLASS32 nor ELFCLASS64
	if _, err := Locate(data); err == nil {
		t.Fatal("expected an error for an unsupported ELF class byte")
	}
}

func TestSectionRangeBytes(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	r := SectionRange{Offset: 2, Size: 3}
	got := r.Bytes(data)
	want := []byte{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
