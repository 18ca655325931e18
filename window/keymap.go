package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/io"
)

// qwertyScancodes are the keys of io.KEY_QWERTY.
var qwertyScancodes = [16]sdl.Scancode{
	sdl.SCANCODE_1, sdl.SCANCODE_2, sdl.SCANCODE_3, sdl.SCANCODE_4,
	sdl.SCANCODE_Q, sdl.SCANCODE_W, sdl.SCANCODE_E, sdl.SCANCODE_R,
	sdl.SCANCODE_A, sdl.SCANCODE_S, sdl.SCANCODE_D, sdl.SCANCODE_F,
	sdl.SCANCODE_Z, sdl.SCANCODE_X, sdl.SCANCODE_C, sdl.SCANCODE_V,
}

// KeyMap maps the left hand block of a QWERTY keyboard onto the keypad.
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var KeyMap = func() (keymap map[sdl.Scancode]uint8) {
	keymap = make(map[sdl.Scancode]uint8, len(qwertyScancodes))
	for n, code := range qwertyScancodes {
		keymap[code] = io.KEY_ORDER[n]
	}
	return
}()

// KEY_QUIT ends the session.
const KEY_QUIT = sdl.SCANCODE_ESCAPE
