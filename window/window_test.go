package window

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/io"
)

func TestKeyMap(t *testing.T) {
	assert := assert.New(t)

	assert.Len(KeyMap, 16)

	for n, code := range qwertyScancodes {
		expected, ok := io.QwertyKey(rune(io.KEY_QWERTY[n]))
		assert.True(ok)
		assert.Equal(expected, KeyMap[code])
	}

	seen := map[uint8]bool{}
	for _, key := range KeyMap {
		assert.Less(key, uint8(16))
		seen[key] = true
	}
	assert.Len(seen, 16)

	assert.Equal(uint8(0xC), KeyMap[sdl.SCANCODE_4])
	assert.Equal(uint8(0x0), KeyMap[sdl.SCANCODE_X])
	assert.Equal(uint8(0xF), KeyMap[sdl.SCANCODE_V])
}

func TestWindow_KeyEvent(t *testing.T) {
	assert := assert.New(t)

	win := &Window{}

	win.keyEvent(sdl.SCANCODE_W, true)
	assert.True(win.KeyDown(0x5))
	key, ok := win.FirstPressed()
	assert.True(ok)
	assert.Equal(uint8(0x5), key)

	win.keyEvent(sdl.SCANCODE_W, false)
	assert.False(win.KeyDown(0x5))

	// Unmapped keys are ignored.
	win.keyEvent(sdl.SCANCODE_P, true)
	_, ok = win.FirstPressed()
	assert.False(ok)

	assert.False(win.Keys.QuitRequested())
	win.keyEvent(KEY_QUIT, false)
	assert.False(win.Keys.QuitRequested())
	win.keyEvent(KEY_QUIT, true)
	assert.True(win.Keys.QuitRequested())
}

func TestWindow_Beep(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	win := &Window{bell: io.Bell{Output: out}}

	win.Beep()
	assert.Equal("\a", out.String())
}

func TestPixelRects(t *testing.T) {
	assert := assert.New(t)

	frame := &io.Frame{}
	assert.Empty(pixelRects(frame, 4))

	frame.Flip(0, 0)
	frame.Flip(63, 31)

	rects := pixelRects(frame, 4)
	assert.Equal([]sdl.Rect{
		{X: 0, Y: 0, W: 4, H: 4},
		{X: 252, Y: 124, W: 4, H: 4},
	}, rects)
}

func TestSquareWave(t *testing.T) {
	assert := assert.New(t)

	wave := squareWave(8, 2, time.Second, 10)
	assert.Equal([]byte{10, 10, 0xf6, 0xf6, 10, 10, 0xf6, 0xf6}, wave)

	wave = squareWave(SAMPLE_RATE, TONE_FREQUENCY, TONE_LENGTH, TONE_VOLUME)
	assert.Len(wave, SAMPLE_RATE/10)

	assert.Empty(squareWave(0, 440, time.Second, 10))
	assert.Empty(squareWave(100, 0, time.Second, 10))
	assert.Empty(squareWave(100, 440, 0, 10))

	// Frequencies above half the rate still alternate.
	wave = squareWave(4, 100, time.Second, 1)
	assert.Equal([]byte{1, 0xff, 1, 0xff}, wave)
}
