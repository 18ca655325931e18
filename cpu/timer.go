package cpu

import (
	"time"
)

const TIMER_PERIOD = time.Second // Time for a timer to count down by one.

// Timer is a count down timer. Its value decays lazily: nothing counts it
// down, instead each read works out how many periods passed since Updated.
type Timer struct {
	Value   uint8
	Updated time.Time
}

// Set the value, restarting the count down at now.
func (tm *Timer) Set(value uint8, now time.Time) {
	tm.Value = value
	tm.Updated = now
}

// elapsed returns the whole periods since the last update.
func (tm *Timer) elapsed(now time.Time) int64 {
	periods := int64(now.Sub(tm.Updated) / TIMER_PERIOD)
	if periods < 0 {
		periods = 0
	}
	return periods
}

// Remaining returns the decayed value at now, without changing the timer.
func (tm *Timer) Remaining(now time.Time) uint8 {
	periods := tm.elapsed(now)
	if periods >= int64(tm.Value) {
		return 0
	}
	return tm.Value - uint8(periods)
}

// Tick commits the decayed value and returns it. Partial periods are kept, so
// repeated ticks decay the timer at the same rate as a single late one.
func (tm *Timer) Tick(now time.Time) (value uint8) {
	periods := tm.elapsed(now)
	if periods >= int64(tm.Value) {
		tm.Value = 0
		tm.Updated = now
	} else if periods > 0 {
		tm.Value -= uint8(periods)
		tm.Updated = tm.Updated.Add(time.Duration(periods) * TIMER_PERIOD)
	}

	value = tm.Value
	return
}

// Expire reports, once, that a running timer has counted down to zero.
func (tm *Timer) Expire(now time.Time) (expired bool) {
	if tm.Value == 0 {
		return
	}

	if tm.elapsed(now) >= int64(tm.Value) {
		tm.Value = 0
		tm.Updated = now
		expired = true
	}

	return
}
