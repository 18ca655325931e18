package window

import (
	"errors"

	"github.com/ezrec/chip8/translate"
)

var f = translate.From

var (
	ErrVideo = errors.New(f("video unavailable"))
)
