package io

import (
	"io"
)

// ANSI sequence to home the cursor and erase the screen.
const ansiClear = "\033[H\033[2J"

// Terminal presents frames as text to an io.Writer, paced to FRAME_RATE.
type Terminal struct {
	Output io.Writer
	Pacer  *Pacer

	// Plain disables the ANSI clear sequence between frames.
	Plain bool
}

var _ Display = (*Terminal)(nil)

// NewTerminal creates a terminal display writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{
		Output: out,
		Pacer:  NewPacer(FRAME_RATE),
	}
}

// Clear erases the terminal.
func (tm *Terminal) Clear() (err error) {
	if tm.Plain {
		return
	}
	_, err = io.WriteString(tm.Output, ansiClear)
	return
}

// Present writes the frame.
func (tm *Terminal) Present(frame *Frame) (err error) {
	if tm.Pacer != nil {
		tm.Pacer.Wait()
	}

	err = tm.Clear()
	if err != nil {
		return
	}

	_, err = io.WriteString(tm.Output, frame.String())
	return
}

// Bell is a Buzzer that writes the BEL control character.
type Bell struct {
	Output io.Writer
}

var _ Buzzer = (*Bell)(nil)

// Beep writes BEL. Write errors are dropped.
func (bl *Bell) Beep() {
	if bl.Output == nil {
		return
	}
	bl.Output.Write([]byte{'\a'})
}

// Null is a Display, Keypad and Buzzer that does nothing.
type Null struct{}

var (
	_ Display = Null{}
	_ Keypad  = Null{}
	_ Buzzer  = Null{}
)

func (Null) Clear() error                       { return nil }
func (Null) Present(frame *Frame) error         { return nil }
func (Null) KeyDown(key uint8) bool             { return false }
func (Null) FirstPressed() (key uint8, ok bool) { return }
func (Null) QuitRequested() bool                { return false }
func (Null) Beep()                              {}
