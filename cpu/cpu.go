package cpu

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/ezrec/chip8/io"
)

const (
	MEMORY_SIZE   = 0xfff // Bytes of interpreter memory.
	PROGRAM_START = 0x200 // Load address of programs, and the reset program counter.
	PROGRAM_LIMIT = MEMORY_SIZE - PROGRAM_START

	REGISTER_FLAG = 0xf // vf: carry, borrow and collision flag.
)

// Cpu is the interpreter state, with the host devices it drives.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Register [16]uint8         // v0 through vf.
	I        uint16            // Address register.
	Pc       uint16            // Program counter.
	Stack    Stack             // Return addresses.
	Memory   [MEMORY_SIZE]byte // Font, program and data.
	Delay    Timer             // Delay timer.
	Sound    Timer             // Sound timer; beeps when it runs out.
	Frame    io.Frame          // Pixels drawn by the program.

	Display io.Display
	Keypad  io.Keypad
	Buzzer  io.Buzzer

	Clock func() time.Time // Wall clock for the timers.
	Rand  *rand.Rand       // Source for rnd.

	Ticks int // Instructions executed since reset.

	program []byte
}

// NewCpu creates a reset interpreter. Nil devices are replaced by io.Null.
func NewCpu(display io.Display, keypad io.Keypad, buzzer io.Buzzer) (cpu *Cpu) {
	if display == nil {
		display = io.Null{}
	}
	if keypad == nil {
		keypad = io.Null{}
	}
	if buzzer == nil {
		buzzer = io.Null{}
	}

	cpu = &Cpu{
		Display: display,
		Keypad:  keypad,
		Buzzer:  buzzer,
		Clock:   time.Now,
		Rand:    newRand(time.Now()),
	}

	cpu.Reset()

	return
}

// newRand seeds a random source from the wall clock.
func newRand(now time.Time) *rand.Rand {
	seed := uint64(now.UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>32))
}

// now returns the time from Clock.
func (cpu *Cpu) now() time.Time {
	if cpu.Clock == nil {
		return time.Now()
	}
	return cpu.Clock()
}

// Reset the interpreter to its power-on state.
// - Clears the registers, stack, timers, frame and memory.
// - Loads the font at FONT_START.
// - Copies the loaded program to PROGRAM_START.
// - Sets the program counter to PROGRAM_START.
//
// Missing devices are replaced by io.Null, and a missing Rand is seeded
// from the clock.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	if cpu.Display == nil {
		cpu.Display = io.Null{}
	}
	if cpu.Keypad == nil {
		cpu.Keypad = io.Null{}
	}
	if cpu.Buzzer == nil {
		cpu.Buzzer = io.Null{}
	}
	if cpu.Rand == nil {
		cpu.Rand = newRand(cpu.now())
	}

	clear(cpu.Register[:])
	clear(cpu.Memory[:])
	cpu.I = 0
	cpu.Pc = PROGRAM_START
	cpu.Stack.Reset()
	cpu.Frame.Clear()
	cpu.Ticks = 0

	now := cpu.now()
	cpu.Delay.Set(0, now)
	cpu.Sound.Set(0, now)

	for n, glyph := range Font {
		copy(cpu.Memory[int(FontAddress(uint8(n))):], glyph[:])
	}

	copy(cpu.Memory[PROGRAM_START:], cpu.program)
}

// Load a program image and reset the interpreter to run it.
func (cpu *Cpu) Load(program []byte) (err error) {
	if len(program) > PROGRAM_LIMIT {
		err = ErrOutOfMemory
		return
	}

	cpu.program = slices.Clone(program)
	cpu.Reset()

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(program))
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	regs := []string{
		"pc", "i",
		"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7",
		"v8", "v9", "va", "vb", "vc", "vd", "ve", "vf",
		"stack", "dt", "st",
	}
	now := cpu.now()
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			strval = fmt.Sprintf("%03X", cpu.Pc)
		case "i":
			strval = fmt.Sprintf("%03X", cpu.I)
		case "stack":
			trace := cpu.Stack.Backtrace()
			strval = fmt.Sprintf("%d", len(trace))
			if len(trace) != 0 {
				strval += fmt.Sprintf(" (%03X)", trace[len(trace)-1])
			}
		case "dt":
			strval = fmt.Sprintf("%d", cpu.Delay.Remaining(now))
		case "st":
			strval = fmt.Sprintf("%d", cpu.Sound.Remaining(now))
		default:
			index := strings.IndexByte("0123456789abcdef", reg[1])
			strval = fmt.Sprintf("%02X", cpu.Register[index])
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// span returns count bytes of memory at addr, or ErrOutOfMemory when any of
// them is past the end of memory.
func (cpu *Cpu) span(addr uint16, count int) (mem []byte, err error) {
	if int(addr)+count > MEMORY_SIZE {
		err = ErrOutOfMemory
		return
	}

	mem = cpu.Memory[int(addr) : int(addr)+count]
	return
}

// Fetch returns the instruction word at the program counter.
func (cpu *Cpu) Fetch() (word uint16, err error) {
	if int(cpu.Pc)+1 >= MEMORY_SIZE {
		err = ErrOutOfMemory
		return
	}

	word = uint16(cpu.Memory[cpu.Pc])<<8 | uint16(cpu.Memory[cpu.Pc+1])
	return
}

// Tick executes a single instruction cycle: the sound timer is serviced,
// then the instruction at the program counter is fetched, decoded and
// executed.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Sound.Expire(cpu.now()) {
		if cpu.Verbose {
			log.Printf("cpu: beep")
		}
		cpu.Buzzer.Beep()
	}

	word, err := cpu.Fetch()
	if err != nil {
		return
	}

	op, err := Decode(word)
	if err != nil {
		return
	}

	err = cpu.Execute(op)
	return
}

// Execute executes a single decoded instruction.
// The program counter only moves when the instruction succeeds.
func (cpu *Cpu) Execute(op Opcode) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(op.Word), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("%03x: %v", cpu.Pc, op)
	}

	if int(op.Mnemonic) >= len(instructions) || op.Mnemonic < 0 {
		err = ErrUnknownOpcode
		return
	}

	next_pc, err := instructions[op.Mnemonic](cpu, op)
	if err != nil {
		return
	}

	cpu.Pc = next_pc
	cpu.Ticks += 1

	return
}
