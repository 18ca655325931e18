package emulator

import (
	"github.com/ezrec/chip8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc     int // Program counter of the failed instruction.
	LineNo int // Source line, when the program was assembled; else 0.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo > 0 {
		return f("line %d pc 0x%03x %v", err.LineNo, err.Pc, err.Err)
	}
	return f("pc 0x%03x %v", err.Pc, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
