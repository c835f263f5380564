// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Changqing-JING/DwarfLearn/dwarfx"
	"github.com/Changqing-JING/DwarfLearn/elfx"
	"github.com/Changqing-JING/DwarfLearn/internal/dump"
)

var (
	flagSections []string
	flagColor    bool
	flagListOnly bool
)

// rootCmd dumps the DWARF v3 debug sections of an ELF object.
var rootCmd = &cobra.Command{
	Use:   "dwarfdump <elf-file>",
	Short: "Dump DWARF v3 debug information from an ELF object",
	Args:  cobra.ExactArgs(1),
	RunE:  runDump,
}

func init() {
	rootCmd.Flags().StringSliceVar(&flagSections, "section", []string{"abbrev", "info", "line"},
		"which sections to dump (abbrev, info, line); may be repeated")
	rootCmd.Flags().BoolVar(&flagColor, "color", true, "colorize output (auto-disabled when not a terminal)")
	rootCmd.Flags().BoolVar(&flagListOnly, "sections", false, "list ELF section headers and exit")
}

// Execute runs the root command; main calls this once.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDump(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	sections, err := elfx.Locate(data)
	if err != nil {
		return err
	}

	colorEnabled := flagColor && !color.NoColor
	w := dump.New(cmd.OutOrStdout(), colorEnabled)

	if flagListOnly {
		listSections(w, sections)
		return nil
	}

	wantAbbrev, wantInfo, wantLine := false, false, false
	for _, s := range flagSections {
		switch s {
		case "abbrev":
			wantAbbrev = true
		case "info":
			wantInfo = true
		case "line":
			wantLine = true
		default:
			return fmt.Errorf("unknown --section value %q (want abbrev, info, or line)", s)
		}
	}

	if wantAbbrev {
		if err := dumpAbbrev(w, data, sections); err != nil {
			return err
		}
	}
	if wantInfo {
		if err := dumpInfo(w, data, sections); err != nil {
			return err
		}
	}
	if wantLine {
		if err := dumpLine(w, data, sections); err != nil {
			return err
		}
	}
	return nil
}

func listSections(w *dump.Writer, s *elfx.Sections) {
	w.Section("ELF section headers")
	for _, si := range s.All {
		w.Line("%-20s offset=%#x size=%#x", si.Name, si.Offset, si.Size)
	}
}

// dumpAbbrev prints every abbreviation table reachable from .debug_info's
// compilation units, keyed by the debug_abbrev_offset each unit's header
// names (a real object commonly packs several tables back to back).
func dumpAbbrev(w *dump.Writer, data []byte, s *elfx.Sections) error {
	w.Section(".debug_abbrev")

	debugAbbrev := s.DebugAbbrev.Bytes(data)
	debugInfo := s.DebugInfo.Bytes(data)

	seen := make(map[uint32]bool)
	offset := 0
	for offset < len(debugInfo) {
		unitBytes := debugInfo[offset:]
		unitLength, abbrevOffset, err := readCUHeader(unitBytes)
		if err != nil {
			return fmt.Errorf("reading compilation unit header at %#x: %w", offset, err)
		}

		if !seen[abbrevOffset] {
			seen[abbrevOffset] = true
			table, err := dwarfx.LocateAbbrevTable(debugAbbrev, int(abbrevOffset))
			if err != nil {
				return fmt.Errorf("locating abbrev table at %#x: %w", abbrevOffset, err)
			}
			w.Header("abbrev table at %#x", abbrevOffset)
			dumpAbbrevTable(w, table)
		}

		offset += 4 + int(unitLength)
	}
	return nil
}

func dumpAbbrevTable(w *dump.Writer, table dwarfx.AbbrevTable) {
	codes := make([]uint64, 0, len(table))
	for code := range table {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	for _, code := range codes {
		entry := table[code]
		w.Line("code %d: %s children=%v", code, entry.Tag, entry.HasChildren)
		for _, attr := range entry.Attrs {
			w.Line("  %s (%s)", attr.Name, attr.Form)
		}
	}
}

func readCUHeader(data []byte) (unitLength uint32, debugAbbrevOffset uint32, err error) {
	s := dwarfx.NewByteStream(".debug_info", data)
	unitLength, err = s.ReadUint32()
	if err != nil {
		return 0, 0, err
	}
	if _, err = s.ReadUint16(); err != nil { // version; not needed here
		return 0, 0, err
	}
	debugAbbrevOffset, err = s.ReadUint32()
	if err != nil {
		return 0, 0, err
	}
	return unitLength, debugAbbrevOffset, nil
}

func dumpInfo(w *dump.Writer, data []byte, s *elfx.Sections) error {
	w.Section(".debug_info")

	var debugStr []byte
	if s.HasDebugStr {
		debugStr = s.DebugStr.Bytes(data)
	}
	var debugLoc []byte
	if s.HasDebugLoc {
		debugLoc = s.DebugLoc.Bytes(data)
	}
	debugAbbrev := s.DebugAbbrev.Bytes(data)
	debugInfo := s.DebugInfo.Bytes(data)

	parser := dwarfx.NewDieTreeParser(s.Is64, debugStr, debugLoc, debugAbbrev)

	offset := 0
	for offset < len(debugInfo) {
		unitBytes := debugInfo[offset:]
		tree, err := parser.ParseUnit(unitBytes)
		if err != nil {
			return fmt.Errorf("parsing compilation unit at %#x: %w", offset, err)
		}

		w.Header("compilation unit at %#x (root die index %d)", offset, tree.Root)
		for _, line := range tree.Dump {
			w.Line("%s", line)
		}

		unitLength, err := readUnitLength(unitBytes)
		if err != nil {
			return err
		}
		offset += 4 + int(unitLength)
	}
	return nil
}

func readUnitLength(data []byte) (uint32, error) {
	s := dwarfx.NewByteStream(".debug_info", data)
	return s.ReadUint32()
}

func dumpLine(w *dump.Writer, data []byte, s *elfx.Sections) error {
	w.Section(".debug_line")
	for i, r := range s.DebugLine {
		prog, err := dwarfx.NewLineProgram(s.Is64, r.Bytes(data))
		if err != nil {
			return fmt.Errorf("line program %d at %#x: %w", i, r.Offset, err)
		}
		w.Header("line program %d at %#x", i, r.Offset)

		for dirIdx, dir := range prog.Directories() {
			w.Line("include_directory[%d] = %s", dirIdx+1, dir)
		}
		for fileIdx, fe := range prog.Files() {
			if fileIdx == 0 {
				continue // unused placeholder, DWARF file indices are 1-based
			}
			w.Line("file[%d] = %s dir=%d mtime=%d size=%d", fileIdx, fe.Name, fe.DirIdx, fe.Mtime, fe.Size)
		}

		for {
			entry, err := prog.Next()
			if err != nil {
				return fmt.Errorf("line program %d at %#x: %w", i, r.Offset, err)
			}
			if entry == nil {
				break
			}
			w.Line("addr=%#x file=%d line=%d end_sequence=%v", entry.Address, entry.File, entry.Line, entry.EndSequence)
		}
	}
	return nil
}
