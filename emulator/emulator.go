// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"context"
	"log"
	"time"

	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/io"
)

// Emulator is a CHIP-8 session: the interpreter and its host devices.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the interpreter.
	Program  *cpu.Program // Listing of the running program, if it was assembled.

	err error // Error that halted the session.
}

// NewEmulator creates a new emulator. Nil devices do nothing.
func NewEmulator(display io.Display, keypad io.Keypad, buzzer io.Buzzer) (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(display, keypad, buzzer),
		Program: &cpu.Program{},
	}

	return
}

// Load a program image.
func (emu *Emulator) Load(image []byte) (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Program = &cpu.Program{}
	emu.err = nil

	err = emu.Cpu.Load(image)
	return
}

// LoadProgram loads an assembled program, keeping its listing for LineNo.
func (emu *Emulator) LoadProgram(prog *cpu.Program) (err error) {
	err = emu.Load(prog.Binary())
	if err != nil {
		return
	}

	emu.Program = prog
	return
}

// Reset the session to run the loaded program from the start.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.err = nil
	emu.Cpu.Reset()
}

// Ticks returns the instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Pc returns the current program counter.
func (emu *Emulator) Pc() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the source line of the instruction at the program counter,
// or 0 when there is no listing for it.
func (emu *Emulator) LineNo() int {
	if emu.Program == nil {
		return 0
	}

	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Line == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator. A quit request from the keypad
// ends the session with done set. After an error the session is halted, and
// every later Tick returns the same error.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.err != nil {
		err = emu.err
		return
	}

	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	if emu.Cpu.Keypad.QuitRequested() {
		done = true
		return
	}

	pc := emu.Pc()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
			emu.err = err
			if emu.Verbose {
				log.Printf("%v\n%v", err, emu.Cpu.String())
			}
		}
	}()

	err = emu.Cpu.Tick()
	return
}

// Run ticks the emulator hz times a second, or as fast as possible when hz
// is not positive, until the session is done, fails, the context is
// cancelled, or limit instructions have run (limit <= 0 has no limit).
func (emu *Emulator) Run(ctx context.Context, hz int, limit int) (err error) {
	var tick <-chan time.Time
	if hz > 0 {
		ticker := time.NewTicker(time.Second / time.Duration(hz))
		defer ticker.Stop()
		tick = ticker.C
	}

	for n := 0; limit <= 0 || n < limit; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				err = ctx.Err()
				return
			case <-tick:
			}
		} else {
			err = ctx.Err()
			if err != nil {
				return
			}
		}

		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	return
}
