// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump writes the human-readable text output dwarfdump
// produces for each decoded section, optionally colorized.
package dump

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Writer formats decoded DWARF structures to an io.Writer. When
// Color is false, every color method degrades to plain Sprint.
type Writer struct {
	w     io.Writer
	Color bool

	offset  *color.Color
	tag     *color.Color
	attr    *color.Color
	value   *color.Color
	header  *color.Color
	section *color.Color
}

// New returns a Writer over w. Pass color=true to colorize output for
// a terminal; pass false for plain text (e.g. when stdout is piped).
func New(w io.Writer, colorEnabled bool) *Writer {
	return &Writer{
		w:       w,
		Color:   colorEnabled,
		offset:  color.New(color.FgCyan),
		tag:     color.New(color.FgYellow, color.Bold),
		attr:    color.New(color.FgGreen),
		value:   color.New(color.FgWhite),
		header:  color.New(color.FgWhite, color.Bold, color.Underline),
		section: color.New(color.FgMagenta, color.Bold),
	}
}

func (d *Writer) sprint(c *color.Color, s string) string {
	if !d.Color {
		return s
	}
	return c.Sprint(s)
}

// Section prints a section banner, e.g. "dump .debug_info:".
func (d *Writer) Section(name string) {
	fmt.Fprintf(d.w, "%s\n", d.sprint(d.section, "dump "+name+":"))
}

// Header prints a compilation-unit or line-program header line.
func (d *Writer) Header(format string, args ...interface{}) {
	fmt.Fprintf(d.w, "%s\n", d.sprint(d.header, fmt.Sprintf(format, args...)))
}

// Offset prints a hex byte offset label, e.g. "0x1a: ".
func (d *Writer) Offset(offset int) {
	fmt.Fprintf(d.w, "%s: ", d.sprint(d.offset, fmt.Sprintf("%#x", offset)))
}

// Tag prints a DIE's tag on its own line.
func (d *Writer) Tag(tag fmt.Stringer) {
	fmt.Fprintf(d.w, "%s\n", d.sprint(d.tag, tag.String()))
}

// Attr prints one "name: value" attribute line, indented.
func (d *Writer) Attr(name, value string) {
	fmt.Fprintf(d.w, "  %s: %s\n", d.sprint(d.attr, name), d.sprint(d.value, value))
}

// Line prints a plain, uncolored line (used for raw dumps where no
// semantic coloring applies, like the loclist or line-table rows).
func (d *Writer) Line(format string, args ...interface{}) {
	fmt.Fprintf(d.w, format+"\n", args...)
}
