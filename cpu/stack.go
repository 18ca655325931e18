package cpu

import (
	"slices"
)

const (
	STACK_LIMIT = 16 // Maximum stack depth
)

// Stack holds the return addresses of the active subroutine calls.
type Stack struct {
	data []uint16
}

// Push a return address; fails with ErrStackOverflow when full.
func (s *Stack) Push(value uint16) (err error) {
	if s.Full() {
		err = ErrStackOverflow
		return
	}

	s.data = append(s.data, value)
	return
}

// Pop the most recent return address; fails with ErrStackUnderflow when empty.
func (s *Stack) Pop() (value uint16, err error) {
	if s.Empty() {
		err = ErrStackUnderflow
		return
	}

	value = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return
}

func (s *Stack) Len() int {
	return len(s.data)
}

func (s *Stack) Empty() bool {
	return len(s.data) == 0
}

func (s *Stack) Full() bool {
	return len(s.data) >= STACK_LIMIT
}

func (s *Stack) Reset() {
	if len(s.data) > 0 {
		s.data = s.data[:0]
	}
}

// Backtrace copies the return addresses, oldest first, for diagnostics.
func (s *Stack) Backtrace() (trace []uint16) {
	trace = slices.Clone(s.data)
	return
}
