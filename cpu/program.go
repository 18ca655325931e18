package cpu

import (
	"iter"
)

// Line is one assembled source line.
type Line struct {
	LineNo    int      // Source line number.
	Addr      int      // Memory address of Data.
	Words     []string // Source words, after equate substitution.
	Data      []byte   // Assembled bytes.
	LinkLabel string   // Label to link into the address field of Data.
}

// Program is the output of the assembler.
type Program struct {
	Lines []Line
}

type Debug struct {
	*Line
	Index int // Offset of the address into Data.
}

// Debug finds the source line of an address. The zero Debug is returned for
// addresses outside the program.
func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, line := range prog.Lines {
		if int(addr) >= line.Addr && int(addr) < line.Addr+len(line.Data) {
			dbg = Debug{
				Line:  &prog.Lines[n],
				Index: int(addr) - line.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the program image, to be loaded at PROGRAM_START.
func (prog *Program) Binary() (bin []byte) {
	for addr, data := range prog.Bytes() {
		offset := int(addr) - PROGRAM_START
		if offset < 0 {
			continue
		}
		if offset < len(bin) {
			bin[offset] = data
			continue
		}
		for len(bin) < offset {
			bin = append(bin, 0)
		}
		bin = append(bin, data)
	}

	return
}

// Bytes iterates over the assembled bytes and their addresses.
func (prog *Program) Bytes() iter.Seq2[uint16, byte] {
	return func(yield func(addr uint16, data byte) bool) {
		for _, line := range prog.Lines {
			for n, data := range line.Data {
				if !yield(uint16(line.Addr+n), data) {
					return
				}
			}
		}
	}
}
