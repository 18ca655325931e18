// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/sqweek/dialog"

	"github.com/ezrec/chip8/console"
	"github.com/ezrec/chip8/cpu"
	"github.com/ezrec/chip8/emulator"
	"github.com/ezrec/chip8/io"
	"github.com/ezrec/chip8/window"
)

// SDL must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

// host is the set of devices the session runs against.
type host struct {
	display io.Display
	keypad  io.Keypad
	buzzer  io.Buzzer
	close   func() error

	// run drives the host for as long as session runs.
	run func(session func() error) error

	closed bool
}

func noClose() error { return nil }

// shutdown closes the host once.
func (h *host) shutdown() {
	if h.closed {
		return
	}
	h.closed = true

	err := h.close()
	if err != nil {
		log.Printf("%v: %v", os.Args[0], err)
	}
}

// session loads the program and runs it on the host. On failure the host is
// shut down before the error is returned, as callers exit without deferring.
func (h *host) session(ctx context.Context, emu *emulator.Emulator, prog *cpu.Program, image []byte, hz int, limit int) (err error) {
	defer func() {
		if err != nil {
			h.shutdown()
		}
	}()

	if prog != nil {
		err = emu.LoadProgram(prog)
	} else {
		err = emu.Load(image)
	}
	if err != nil {
		return
	}

	err = h.run(func() error {
		return emu.Run(ctx, hz, limit)
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return
}

func runDirect(session func() error) error { return session() }

// terminalHost runs in the terminal, with keyboard input when stdout is one.
// Otherwise frames are written as plain text.
func terminalHost(verbose bool) (h *host) {
	info, err := os.Stdout.Stat()
	if err == nil && info.Mode()&os.ModeCharDevice == 0 {
		term := io.NewTerminal(os.Stdout)
		term.Plain = true
		h = &host{
			display: term,
			keypad:  &io.Keys{},
			buzzer:  io.Null{},
			close:   noClose,
			run:     runDirect,
		}
		return
	}

	con := console.NewConsole()
	con.Verbose = verbose

	h = &host{
		display: con,
		keypad:  con,
		buzzer:  con,
		close:   noClose,
		run: func(session func() error) (err error) {
			done := make(chan error, 1)
			go func() {
				err := session()
				con.Halt(err)
				done <- err
			}()

			con.Start()
			err = <-done
			return
		},
	}
	return
}

func windowHost(title string, scale int, verbose bool) (h *host, err error) {
	win, err := window.NewWindow(title, scale)
	if err != nil {
		return
	}
	win.Verbose = verbose

	h = &host{
		display: win,
		keypad:  win,
		buzzer:  win,
		close:   win.Close,
		run:     runDirect,
	}
	return
}

// readRom loads a ROM image from a host path.
func readRom(path string) (rom *io.Rom, err error) {
	path, err = filepath.Abs(path)
	if err != nil {
		return
	}

	rom, err = io.ReadRom(os.DirFS(filepath.Dir(path)), filepath.Base(path), cpu.PROGRAM_LIMIT)
	return
}

// pickRom asks for a ROM with a file dialog. An empty path means cancelled.
func pickRom() (path string, err error) {
	path, err = dialog.File().
		Title("Load CHIP-8 ROM").
		Filter("CHIP-8 ROM", "ch8", "c8").
		Filter("All files", "*").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		path = ""
		err = nil
	}
	return
}

func main() {
	var compile string
	var save bool
	var output string
	var hz int
	var scale int
	var terminal bool
	var limit int
	var verbose bool

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] [ROM]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.BoolVar(&save, "s", false, "Save the assembled image to -o, do not execute")
	flag.StringVar(&output, "o", "", "Output file for -s")
	flag.IntVar(&hz, "hz", 500, "Instructions per second (0 for unpaced)")
	flag.IntVar(&scale, "scale", window.DEFAULT_SCALE, "Window pixels per display pixel")
	flag.BoolVar(&terminal, "t", false, "Run in the terminal, without a window (ESC quits)")
	flag.IntVar(&limit, "n", 0, "Stop after this many instructions (0 for no limit)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() > 1 || (flag.NArg() == 1 && len(compile) != 0) {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if save && len(output) == 0 {
		log.Fatalf("%v: -s needs an -o file", os.Args[0])
	}

	// fatal reports an error, also in a message box when there is a window.
	fatal := func(name string, err error) {
		if !terminal {
			dialog.Message("%v: %v", name, err).Title("CHIP-8").Error()
		}
		log.Fatalf("%v: %v", name, err)
	}

	var name string
	var image []byte
	var prog *cpu.Program

	switch {
	case len(compile) != 0:
		name = compile
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if save {
			err = os.WriteFile(output, prog.Binary(), 0o644)
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
			return
		}
	default:
		name = flag.Arg(0)
		if len(name) == 0 {
			if terminal {
				log.Fatalf("%v: no ROM given", os.Args[0])
			}
			var err error
			name, err = pickRom()
			if err != nil {
				log.Fatalf("%v: %v", os.Args[0], err)
			}
			if len(name) == 0 {
				return
			}
		}

		rom, err := readRom(name)
		if err != nil {
			fatal(name, err)
		}
		image = rom.Data
	}

	var h *host
	if terminal {
		h = terminalHost(verbose)
	} else {
		var err error
		h, err = windowHost("CHIP-8 - "+filepath.Base(name), scale, verbose)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
	}
	defer h.shutdown()

	emu := emulator.NewEmulator(h.display, h.keypad, h.buzzer)
	emu.Verbose = verbose

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := h.session(ctx, emu, prog, image, hz, limit)
	if err != nil {
		fatal(name, err)
	}

	if verbose {
		log.Printf("%v: %d instructions", name, emu.Ticks())
	}
}
