package cpu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	assert := assert.New(t)

	now := time.Unix(500, 0)

	tm := &Timer{}
	tm.Set(5, now)
	assert.Equal(uint8(5), tm.Remaining(now))
	assert.Equal(uint8(5), tm.Tick(now))

	assert.Equal(uint8(4), tm.Remaining(now.Add(1500*time.Millisecond)))
	assert.Equal(uint8(5), tm.Value)

	assert.Equal(uint8(0), tm.Remaining(now.Add(6*time.Second)))
	assert.Equal(uint8(0), tm.Tick(now.Add(6*time.Second)))
	assert.Equal(uint8(0), tm.Tick(now.Add(7*time.Second)))
}

func TestTimer_Partial(t *testing.T) {
	assert := assert.New(t)

	now := time.Unix(500, 0)

	tm := &Timer{}
	tm.Set(10, now)

	// Reads every 600ms lose no time.
	for range 5 {
		now = now.Add(600 * time.Millisecond)
		tm.Tick(now)
	}
	assert.Equal(uint8(7), tm.Value)

	// Repeated reads in the same instant are idempotent.
	assert.Equal(uint8(7), tm.Tick(now))
	assert.Equal(uint8(7), tm.Tick(now))
}

func TestTimer_Backwards(t *testing.T) {
	assert := assert.New(t)

	now := time.Unix(500, 0)

	tm := &Timer{}
	tm.Set(3, now)
	assert.Equal(uint8(3), tm.Tick(now.Add(-time.Hour)))
}

func TestTimer_Expire(t *testing.T) {
	assert := assert.New(t)

	now := time.Unix(500, 0)

	tm := &Timer{}
	assert.False(tm.Expire(now))

	tm.Set(2, now)
	assert.False(tm.Expire(now))
	assert.False(tm.Expire(now.Add(1999 * time.Millisecond)))
	assert.True(tm.Expire(now.Add(2 * time.Second)))
	assert.False(tm.Expire(now.Add(3 * time.Second)))
	assert.Equal(uint8(0), tm.Value)
}
