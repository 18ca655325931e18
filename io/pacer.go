package io

import (
	"time"
)

const FRAME_RATE = 60 // Presented frames per second.

// Pacer holds back a caller so that consecutive calls to Wait are at least
// Interval apart.
type Pacer struct {
	Interval time.Duration

	// Sleep defaults to time.Sleep, Now to time.Now.
	Sleep func(d time.Duration)
	Now   func() time.Time

	last time.Time
}

// NewPacer creates a pacer for the given rate per second.
func NewPacer(rate int) *Pacer {
	pc := &Pacer{}
	if rate > 0 {
		pc.Interval = time.Second / time.Duration(rate)
	}
	return pc
}

// Wait sleeps until Interval has passed since the previous Wait.
func (pc *Pacer) Wait() {
	now := pc.now()

	if !pc.last.IsZero() {
		elapsed := now.Sub(pc.last)
		if elapsed < pc.Interval {
			pc.sleep(pc.Interval - elapsed)
			now = pc.now()
		}
	}

	pc.last = now
}

func (pc *Pacer) now() time.Time {
	if pc.Now != nil {
		return pc.Now()
	}
	return time.Now()
}

func (pc *Pacer) sleep(d time.Duration) {
	if pc.Sleep != nil {
		pc.Sleep(d)
		return
	}
	time.Sleep(d)
}
