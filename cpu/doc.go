// Package cpu implements the CHIP-8 interpreter core and an assembler for it.
//
// The interpreter has sixteen 8-bit registers (v0-vf, with vf doubling as the
// carry, borrow and collision flag), a 16-bit address register (I), a program
// counter starting at 0x200, a sixteen entry call stack, 4095 bytes of memory
// with the hexadecimal font at 0x000, and the delay and sound timers.
//
// Each 16-bit opcode is decoded by matching it against a priority ordered
// table of nibble patterns, from the most fixed nibbles to the fewest, and is
// then executed by one of the 35 instruction handlers.
//
// The assembler accepts the customary CHIP-8 mnemonics, with labels, equates,
// data directives and compile-time $(...) expressions.
package cpu
