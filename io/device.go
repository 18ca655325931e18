// Package io provides the host collaborators for the CHIP-8 interpreter.
// It defines the contracts the interpreter core depends on (Display, Keypad,
// Buzzer) and in-process implementations of them: a monochrome Frame, an
// in-memory Keys pad, a Terminal display, a Bell buzzer, and the ROM loader.
package io

// Display presents the monochrome frame to the user.
type Display interface {
	// Clear blanks the visible display.
	Clear() error
	// Present shows the frame. Implementations pace themselves to their
	// refresh rate.
	Present(frame *Frame) error
}

// Keypad reports the state of the sixteen key hexadecimal keypad.
type Keypad interface {
	// KeyDown reports whether the key (0x0-0xF) is currently held.
	KeyDown(key uint8) bool
	// FirstPressed returns a held key, if any.
	FirstPressed() (key uint8, ok bool)
	// QuitRequested reports whether the user asked to end the session.
	QuitRequested() bool
}

// Buzzer emits the audible tone.
type Buzzer interface {
	// Beep plays a short tone; fire-and-forget.
	Beep()
}
