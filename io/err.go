package io

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	// ROM loading errors
	ErrRomMissing  = errors.New(f("rom missing"))
	ErrRomRead     = errors.New(f("rom unreadable"))
	ErrRomTooLarge = errors.New(f("rom too large"))
)
