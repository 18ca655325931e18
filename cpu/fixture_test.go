package cpu

import (
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ezrec/chip8/io"
)

var errDisplay = errors.New("display unplugged")

// recorder is a Display that counts calls, and fails with err when set.
type recorder struct {
	clears   int
	presents int
	last     io.Frame
	err      error
}

func (rc *recorder) Clear() error {
	rc.clears++
	return rc.err
}

func (rc *recorder) Present(frame *io.Frame) error {
	rc.presents++
	rc.last = *frame
	return rc.err
}

// beeper is a Buzzer that counts beeps.
type beeper struct {
	beeps int
}

func (bp *beeper) Beep() {
	bp.beeps++
}

// fixture is an interpreter with recording devices and a manual clock.
type fixture struct {
	cpu     *Cpu
	display *recorder
	keys    *io.Keys
	buzzer  *beeper
	now     time.Time
}

// testSeed seeds the random source of every fixture.
var testSeed = [2]uint64{1, 2}

func newFixture(t testing.TB, words ...uint16) (fx *fixture) {
	fx = &fixture{
		display: &recorder{},
		keys:    &io.Keys{},
		buzzer:  &beeper{},
		now:     time.Unix(1_000_000, 0),
	}

	fx.cpu = NewCpu(fx.display, fx.keys, fx.buzzer)
	fx.cpu.Clock = func() time.Time { return fx.now }
	fx.cpu.Rand = rand.New(rand.NewPCG(testSeed[0], testSeed[1]))

	image := make([]byte, 0, len(words)*2)
	for _, word := range words {
		image = append(image, byte(word>>8), byte(word))
	}

	err := fx.cpu.Load(image)
	if err != nil {
		t.Fatal(err)
	}

	return
}

// step ticks count times, failing the test on error.
func (fx *fixture) step(t testing.TB, count int) {
	for range count {
		err := fx.cpu.Tick()
		if err != nil {
			t.Log(fx.cpu.String())
			t.Fatal(err)
		}
	}
}

// wait advances the clock.
func (fx *fixture) wait(d time.Duration) {
	fx.now = fx.now.Add(d)
}
