// Package console hosts the interpreter in a terminal with termloop. The
// frame is drawn with two character cells per pixel, and the keyboard drives
// the keypad through io.KEY_QWERTY.
package console

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	tl "github.com/JoelOtter/termloop"

	"github.com/ezrec/chip8/io"
)

const (
	KEY_HOLD = 200 * time.Millisecond // Terminals report presses only; keys release after this.
	KEY_QUIT = tl.KeyEsc              // Ends the session.
)

var (
	pixelCell = tl.Cell{Bg: tl.ColorWhite, Fg: tl.ColorWhite, Ch: ' '}
)

// Console is a Display, Keypad and Buzzer backed by a termloop game. The
// interpreter runs on its own goroutine while Start drives the terminal.
type Console struct {
	Verbose bool
	Hold    time.Duration    // Key hold time; KEY_HOLD when zero.
	Now     func() time.Time // Defaults to time.Now.

	game *tl.Game
	bell io.Bell

	mutex   sync.Mutex
	keys    io.Keys
	pressed [16]time.Time
	frame   io.Frame
	status  string
}

var (
	_ io.Display  = (*Console)(nil)
	_ io.Keypad   = (*Console)(nil)
	_ io.Buzzer   = (*Console)(nil)
	_ tl.Drawable = (*Console)(nil)
)

// NewConsole creates a console drawing at io.FRAME_RATE.
func NewConsole() (con *Console) {
	con = &Console{
		game:   tl.NewGame(),
		bell:   io.Bell{Output: os.Stdout},
		status: "ESC to quit",
	}

	con.game.SetEndKey(KEY_QUIT)
	con.game.Screen().SetFps(io.FRAME_RATE)
	con.game.Screen().AddEntity(con)

	return
}

// Start takes over the terminal until ESC is pressed, then requests quit.
func (con *Console) Start() {
	con.game.Start()

	con.mutex.Lock()
	defer con.mutex.Unlock()
	con.keys.RequestQuit()
}

// Halt shows why the session stopped. The terminal stays up until ESC.
func (con *Console) Halt(err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	if err != nil {
		con.status = fmt.Sprintf("%v (ESC to exit)", err)
	} else {
		con.status = "stopped (ESC to exit)"
	}
}

func (con *Console) now() time.Time {
	if con.Now != nil {
		return con.Now()
	}
	return time.Now()
}

// expire releases keys held longer than Hold. Must hold the mutex.
func (con *Console) expire(now time.Time) {
	hold := con.Hold
	if hold <= 0 {
		hold = KEY_HOLD
	}

	for key, when := range con.pressed {
		if when.IsZero() || now.Sub(when) < hold {
			continue
		}
		con.keys.Release(uint8(key))
		con.pressed[key] = time.Time{}
	}
}

// Tick handles a terminal event.
func (con *Console) Tick(ev tl.Event) {
	if ev.Type != tl.EventKey {
		return
	}

	con.mutex.Lock()
	defer con.mutex.Unlock()

	if ev.Key == KEY_QUIT || ev.Key == tl.KeyCtrlC {
		con.keys.RequestQuit()
		return
	}

	if ev.Ch == 0 {
		return
	}

	key, ok := io.QwertyKey(ev.Ch)
	if !ok {
		return
	}

	if con.Verbose {
		log.Printf("console: key %X", key)
	}

	con.keys.Press(key)
	con.pressed[key] = con.now()
}

// Draw renders the last presented frame and the status line.
func (con *Console) Draw(screen *tl.Screen) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.expire(con.now())

	for y := range io.FRAME_HEIGHT {
		for x := range io.FRAME_WIDTH {
			if con.frame.Lit(x, y) {
				screen.RenderCell(x*2, y, &pixelCell)
				screen.RenderCell(x*2+1, y, &pixelCell)
			}
		}
	}

	tl.NewText(0, io.FRAME_HEIGHT+1, con.status, tl.ColorDefault, tl.ColorDefault).Draw(screen)
}

// Clear blanks the display.
func (con *Console) Clear() (err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.frame.Clear()
	return
}

// Present keeps a copy of the frame for the next Draw.
func (con *Console) Present(frame *io.Frame) (err error) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.frame = *frame
	return
}

// KeyDown reports whether the key was pressed within the hold time.
func (con *Console) KeyDown(key uint8) bool {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.expire(con.now())
	return con.keys.KeyDown(key)
}

// FirstPressed returns the first held key in keypad layout order.
func (con *Console) FirstPressed() (key uint8, ok bool) {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	con.expire(con.now())
	return con.keys.FirstPressed()
}

// QuitRequested reports whether ESC was pressed.
func (con *Console) QuitRequested() bool {
	con.mutex.Lock()
	defer con.mutex.Unlock()

	return con.keys.QuitRequested()
}

// Beep rings the terminal bell.
func (con *Console) Beep() {
	con.bell.Beep()
}
