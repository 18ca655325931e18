package io

import (
	"strings"
)

const (
	FRAME_WIDTH  = 64 // Display width in pixels.
	FRAME_HEIGHT = 32 // Display height in pixels.
)

// Frame is the 64x32 monochrome pixel grid; true is lit.
type Frame [FRAME_HEIGHT][FRAME_WIDTH]bool

// Clear unlights every pixel.
func (fr *Frame) Clear() {
	*fr = Frame{}
}

// Lit reports whether the pixel at x, y is lit. Out of range is unlit.
func (fr *Frame) Lit(x, y int) bool {
	if x < 0 || x >= FRAME_WIDTH || y < 0 || y >= FRAME_HEIGHT {
		return false
	}
	return fr[y][x]
}

// Flip toggles the pixel at x, y, and reports if it was turned off.
// Pixels outside the frame are clipped and never collide.
func (fr *Frame) Flip(x, y int) (collided bool) {
	if x < 0 || x >= FRAME_WIDTH || y < 0 || y >= FRAME_HEIGHT {
		return
	}

	collided = fr[y][x]
	fr[y][x] = !fr[y][x]

	return
}

// Count returns the number of lit pixels.
func (fr *Frame) Count() (count int) {
	for y := range FRAME_HEIGHT {
		for x := range FRAME_WIDTH {
			if fr[y][x] {
				count++
			}
		}
	}
	return
}

// String renders the frame as text, one line per row.
func (fr *Frame) String() string {
	var sb strings.Builder

	sb.Grow((FRAME_WIDTH + 1) * FRAME_HEIGHT)
	for y := range FRAME_HEIGHT {
		for x := range FRAME_WIDTH {
			if fr[y][x] {
				sb.WriteRune('#')
			} else {
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}
