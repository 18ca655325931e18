package io

import (
	"strings"
	"unicode"
)

// KEY_ORDER is the keypad layout, top left to bottom right.
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
var KEY_ORDER = [16]uint8{
	0x1, 0x2, 0x3, 0xC,
	0x4, 0x5, 0x6, 0xD,
	0x7, 0x8, 0x9, 0xE,
	0xA, 0x0, 0xB, 0xF,
}

// KEY_QWERTY is the left hand block of a QWERTY keyboard, in KEY_ORDER.
const KEY_QWERTY = "1234qwerasdfzxcv"

// QwertyKey maps a character of KEY_QWERTY, in either case, to its key.
func QwertyKey(ch rune) (key uint8, ok bool) {
	n := strings.IndexRune(KEY_QWERTY, unicode.ToLower(ch))
	if n < 0 {
		return
	}

	key = KEY_ORDER[n]
	ok = true
	return
}

// Keys is an in-memory keypad. Hosts set its state from their own input
// events; the interpreter reads it through the Keypad interface.
type Keys struct {
	Down [16]bool
	Quit bool
}

var _ Keypad = (*Keys)(nil)

// Press holds a key down. Keys above 0xF are ignored.
func (ks *Keys) Press(key uint8) {
	if key < 16 {
		ks.Down[key] = true
	}
}

// Release lets a key up. Keys above 0xF are ignored.
func (ks *Keys) Release(key uint8) {
	if key < 16 {
		ks.Down[key] = false
	}
}

// Reset releases all keys and clears the quit request.
func (ks *Keys) Reset() {
	clear(ks.Down[:])
	ks.Quit = false
}

// RequestQuit asks the session to end at its next tick.
func (ks *Keys) RequestQuit() {
	ks.Quit = true
}

// KeyDown reports whether the key is held.
func (ks *Keys) KeyDown(key uint8) bool {
	if key >= 16 {
		return false
	}
	return ks.Down[key]
}

// FirstPressed returns the first held key in keypad layout order.
func (ks *Keys) FirstPressed() (key uint8, ok bool) {
	for _, key = range KEY_ORDER {
		if ks.Down[key] {
			ok = true
			return
		}
	}

	key = 0
	return
}

// QuitRequested reports whether RequestQuit was called.
func (ks *Keys) QuitRequested() bool {
	return ks.Quit
}
