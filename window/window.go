// Package window hosts the interpreter in an SDL2 window: the frame is drawn
// scaled, the keyboard drives the keypad, and beeps play on the default audio
// device.
package window

import (
	"errors"
	"log"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ezrec/chip8/io"
)

const (
	DEFAULT_SCALE = 16 // Window pixels per frame pixel.
)

var (
	colorBackground = sdl.Color{R: 143, G: 145, B: 133, A: 255}
	colorForeground = sdl.Color{R: 17, G: 29, B: 43, A: 255}
)

// Window is a Display, Keypad and Buzzer backed by SDL2.
// All methods must be called from the thread that created it.
type Window struct {
	Verbose bool
	Pacer   *io.Pacer
	Keys    io.Keys

	scale    int32
	window   *sdl.Window
	renderer *sdl.Renderer

	audio sdl.AudioDeviceID
	tone  []byte
	bell  io.Bell // Used when no audio device could be opened.
}

var (
	_ io.Display = (*Window)(nil)
	_ io.Keypad  = (*Window)(nil)
	_ io.Buzzer  = (*Window)(nil)
)

// NewWindow opens a window of the frame size times scale.
func NewWindow(title string, scale int) (win *Window, err error) {
	if scale <= 0 {
		scale = DEFAULT_SCALE
	}

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		err = errors.Join(ErrVideo, err)
		return
	}

	win = &Window{
		Pacer: io.NewPacer(io.FRAME_RATE),
		scale: int32(scale),
		bell:  io.Bell{Output: os.Stdout},
	}

	win.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		io.FRAME_WIDTH*win.scale, io.FRAME_HEIGHT*win.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		win = nil
		err = errors.Join(ErrVideo, err)
		return
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		win.window.Destroy()
		sdl.Quit()
		win = nil
		err = errors.Join(ErrVideo, err)
		return
	}

	win.openAudio()

	return
}

// openAudio prepares the beep. Without audio, beeps fall back to the bell.
func (win *Window) openAudio() {
	spec := &sdl.AudioSpec{
		Freq:     SAMPLE_RATE,
		Format:   sdl.AUDIO_S8,
		Channels: 1,
		Samples:  512,
	}

	dev, err := sdl.OpenAudioDevice("", false, spec, nil, 0)
	if err != nil {
		log.Printf("window: no audio, beeping the terminal: %v", err)
		return
	}

	win.audio = dev
	win.tone = squareWave(SAMPLE_RATE, TONE_FREQUENCY, TONE_LENGTH, TONE_VOLUME)
	sdl.PauseAudioDevice(dev, false)
}

// Close releases the window and its audio device.
func (win *Window) Close() (err error) {
	if win.audio != 0 {
		sdl.CloseAudioDevice(win.audio)
		win.audio = 0
	}

	if win.renderer != nil {
		err = errors.Join(err, win.renderer.Destroy())
		win.renderer = nil
	}

	if win.window != nil {
		err = errors.Join(err, win.window.Destroy())
		win.window = nil
	}

	sdl.Quit()
	return
}

// Poll drains pending window events into the keypad state.
func (win *Window) Poll() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			win.Keys.RequestQuit()
		case *sdl.KeyboardEvent:
			win.keyEvent(ev.Keysym.Scancode, ev.Type == sdl.KEYDOWN)
		}
	}
}

func (win *Window) keyEvent(code sdl.Scancode, down bool) {
	if code == KEY_QUIT {
		if down {
			win.Keys.RequestQuit()
		}
		return
	}

	key, ok := KeyMap[code]
	if !ok {
		return
	}

	if win.Verbose {
		log.Printf("window: key %X down %v", key, down)
	}

	if down {
		win.Keys.Press(key)
	} else {
		win.Keys.Release(key)
	}
}

func (win *Window) fill(color sdl.Color) (err error) {
	err = win.renderer.SetDrawColor(color.R, color.G, color.B, color.A)
	if err != nil {
		return
	}

	err = win.renderer.Clear()
	return
}

// Clear blanks the window.
func (win *Window) Clear() (err error) {
	err = win.fill(colorBackground)
	if err != nil {
		return
	}

	win.renderer.Present()
	return
}

// Present draws the frame, at most FRAME_RATE times a second.
func (win *Window) Present(frame *io.Frame) (err error) {
	if win.Pacer != nil {
		win.Pacer.Wait()
	}

	win.Poll()

	err = win.fill(colorBackground)
	if err != nil {
		return
	}

	rects := pixelRects(frame, win.scale)
	if len(rects) != 0 {
		c := colorForeground
		err = win.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
		if err != nil {
			return
		}
		err = win.renderer.FillRects(rects)
		if err != nil {
			return
		}
	}

	win.renderer.Present()
	return
}

// pixelRects returns a scale sized square for every lit pixel.
func pixelRects(frame *io.Frame, scale int32) (rects []sdl.Rect) {
	for y := range io.FRAME_HEIGHT {
		for x := range io.FRAME_WIDTH {
			if !frame.Lit(x, y) {
				continue
			}
			rects = append(rects, sdl.Rect{
				X: int32(x) * scale,
				Y: int32(y) * scale,
				W: scale,
				H: scale,
			})
		}
	}

	return
}

// KeyDown reports whether the key is held.
func (win *Window) KeyDown(key uint8) bool {
	return win.Keys.KeyDown(key)
}

// FirstPressed returns the first held key in keypad layout order.
func (win *Window) FirstPressed() (key uint8, ok bool) {
	return win.Keys.FirstPressed()
}

// QuitRequested pumps window events, and reports whether the window was
// closed or ESC pressed.
func (win *Window) QuitRequested() bool {
	win.Poll()
	return win.Keys.QuitRequested()
}

// Beep queues one tone, unless one is already playing.
func (win *Window) Beep() {
	if win.audio == 0 {
		win.bell.Beep()
		return
	}

	if sdl.GetQueuedAudioSize(win.audio) != 0 {
		return
	}

	err := sdl.QueueAudio(win.audio, win.tone)
	if err != nil && win.Verbose {
		log.Printf("window: beep: %v", err)
	}
}
