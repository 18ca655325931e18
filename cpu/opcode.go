package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// Shape is the nibble layout of an opcode family. Letters A through D are
// fixed selector nibbles; X and Y are register indices, N a 4-bit count,
// KK an 8-bit immediate and NNN a 12-bit address.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_ABCD = Shape(0) // ABCD
	SHAPE_AXBC = Shape(1) // AXBC
	SHAPE_AXYB = Shape(2) // AXYB
	SHAPE_AXKK = Shape(3) // AXKK
	SHAPE_AXYN = Shape(4) // AXYN
	SHAPE_ANNN = Shape(5) // ANNN
)

var shapeMask = [...]uint16{
	SHAPE_ABCD: 0xffff,
	SHAPE_AXBC: 0xf0ff,
	SHAPE_AXYB: 0xf00f,
	SHAPE_AXKK: 0xf000,
	SHAPE_AXYN: 0xf000,
	SHAPE_ANNN: 0xf000,
}

// Mask returns the bits of the fixed nibbles.
func (sh Shape) Mask() uint16 {
	return shapeMask[sh]
}

// Fixed returns the number of fixed nibbles.
func (sh Shape) Fixed() (count int) {
	for mask := sh.Mask(); mask != 0; mask >>= 4 {
		if mask&0xf != 0 {
			count++
		}
	}
	return
}

// Mnemonic names an instruction. The text form is its assembly syntax.
type Mnemonic int

//go:generate go tool stringer -linecomment -type=Mnemonic
const (
	OP_SYS      = Mnemonic(0)  // sys nnn
	OP_CLS      = Mnemonic(1)  // cls
	OP_RET      = Mnemonic(2)  // ret
	OP_JP       = Mnemonic(3)  // jp nnn
	OP_CALL     = Mnemonic(4)  // call nnn
	OP_SE_KK    = Mnemonic(5)  // se vx, kk
	OP_SNE_KK   = Mnemonic(6)  // sne vx, kk
	OP_SE_VY    = Mnemonic(7)  // se vx, vy
	OP_LD_KK    = Mnemonic(8)  // ld vx, kk
	OP_ADD_KK   = Mnemonic(9)  // add vx, kk
	OP_LD_VY    = Mnemonic(10) // ld vx, vy
	OP_OR       = Mnemonic(11) // or vx, vy
	OP_AND      = Mnemonic(12) // and vx, vy
	OP_XOR      = Mnemonic(13) // xor vx, vy
	OP_ADD_VY   = Mnemonic(14) // add vx, vy
	OP_SUB      = Mnemonic(15) // sub vx, vy
	OP_SHR      = Mnemonic(16) // shr vx
	OP_SUBN     = Mnemonic(17) // subn vx, vy
	OP_SHL      = Mnemonic(18) // shl vx
	OP_SNE_VY   = Mnemonic(19) // sne vx, vy
	OP_LD_I     = Mnemonic(20) // ld i, nnn
	OP_JP_V0    = Mnemonic(21) // jp v0, nnn
	OP_RND      = Mnemonic(22) // rnd vx, kk
	OP_DRW      = Mnemonic(23) // drw vx, vy, n
	OP_SKP      = Mnemonic(24) // skp vx
	OP_SKNP     = Mnemonic(25) // sknp vx
	OP_LD_VX_DT = Mnemonic(26) // ld vx, dt
	OP_LD_VX_K  = Mnemonic(27) // ld vx, k
	OP_LD_DT    = Mnemonic(28) // ld dt, vx
	OP_LD_ST    = Mnemonic(29) // ld st, vx
	OP_ADD_I    = Mnemonic(30) // add i, vx
	OP_LD_F     = Mnemonic(31) // ld f, vx
	OP_LD_B     = Mnemonic(32) // ld b, vx
	OP_STORE    = Mnemonic(33) // ld [i], vx
	OP_LOAD     = Mnemonic(34) // ld vx, [i]
)

// MNEMONIC_COUNT is the number of instructions.
const MNEMONIC_COUNT = 35

// Syntax splits the assembly syntax into the instruction name and its
// operand placeholders.
func (mn Mnemonic) Syntax() (name string, operands []string) {
	name, args, _ := strings.Cut(mn.String(), " ")
	if len(args) == 0 {
		return
	}

	operands = strings.Split(args, ", ")
	return
}

// Pattern matches a family of opcodes. Value holds the fixed nibbles.
type Pattern struct {
	Mnemonic Mnemonic
	Shape    Shape
	Value    uint16
}

// Match reports whether the word carries this pattern's fixed nibbles.
func (pat Pattern) Match(word uint16) bool {
	return word&pat.Shape.Mask() == pat.Value
}

// Patterns is the decode table. Decode takes the first match, so entries are
// ordered from the most fixed nibbles to the fewest: a looser shape sharing a
// leading nibble with a stricter one (0NNN against 00E0 and 00EE) must never
// be tried first.
var Patterns = []Pattern{
	{OP_CLS, SHAPE_ABCD, 0x00e0},
	{OP_RET, SHAPE_ABCD, 0x00ee},

	{OP_SKP, SHAPE_AXBC, 0xe09e},
	{OP_SKNP, SHAPE_AXBC, 0xe0a1},
	{OP_LD_VX_DT, SHAPE_AXBC, 0xf007},
	{OP_LD_VX_K, SHAPE_AXBC, 0xf00a},
	{OP_LD_DT, SHAPE_AXBC, 0xf015},
	{OP_LD_ST, SHAPE_AXBC, 0xf018},
	{OP_ADD_I, SHAPE_AXBC, 0xf01e},
	{OP_LD_F, SHAPE_AXBC, 0xf029},
	{OP_LD_B, SHAPE_AXBC, 0xf033},
	{OP_STORE, SHAPE_AXBC, 0xf055},
	{OP_LOAD, SHAPE_AXBC, 0xf065},

	{OP_SE_VY, SHAPE_AXYB, 0x5000},
	{OP_LD_VY, SHAPE_AXYB, 0x8000},
	{OP_OR, SHAPE_AXYB, 0x8001},
	{OP_AND, SHAPE_AXYB, 0x8002},
	{OP_XOR, SHAPE_AXYB, 0x8003},
	{OP_ADD_VY, SHAPE_AXYB, 0x8004},
	{OP_SUB, SHAPE_AXYB, 0x8005},
	{OP_SHR, SHAPE_AXYB, 0x8006},
	{OP_SUBN, SHAPE_AXYB, 0x8007},
	{OP_SHL, SHAPE_AXYB, 0x800e},
	{OP_SNE_VY, SHAPE_AXYB, 0x9000},

	{OP_SE_KK, SHAPE_AXKK, 0x3000},
	{OP_SNE_KK, SHAPE_AXKK, 0x4000},
	{OP_LD_KK, SHAPE_AXKK, 0x6000},
	{OP_ADD_KK, SHAPE_AXKK, 0x7000},
	{OP_RND, SHAPE_AXKK, 0xc000},

	{OP_DRW, SHAPE_AXYN, 0xd000},

	{OP_SYS, SHAPE_ANNN, 0x0000},
	{OP_JP, SHAPE_ANNN, 0x1000},
	{OP_CALL, SHAPE_ANNN, 0x2000},
	{OP_LD_I, SHAPE_ANNN, 0xa000},
	{OP_JP_V0, SHAPE_ANNN, 0xb000},
}

// Opcode is a decoded instruction word.
type Opcode struct {
	Word uint16
	Pattern
}

// Decode finds the pattern of an instruction word.
func Decode(word uint16) (op Opcode, err error) {
	for _, pat := range Patterns {
		if pat.Match(word) {
			op = Opcode{Word: word, Pattern: pat}
			return
		}
	}

	err = errors.Join(ErrUnknownOpcode, ErrOpcode(word))
	return
}

// X is the first register index.
func (op Opcode) X() uint8 {
	return uint8((op.Word >> 8) & 0xf)
}

// Y is the second register index.
func (op Opcode) Y() uint8 {
	return uint8((op.Word >> 4) & 0xf)
}

// N is the low nibble.
func (op Opcode) N() uint8 {
	return uint8(op.Word & 0xf)
}

// KK is the low byte.
func (op Opcode) KK() uint8 {
	return uint8(op.Word & 0xff)
}

// NNN is the low 12 bits.
func (op Opcode) NNN() uint16 {
	return op.Word & 0xfff
}

// String returns the assembly language form of the opcode.
func (op Opcode) String() string {
	name, operands := op.Mnemonic.Syntax()
	if len(operands) == 0 {
		return name
	}

	args := make([]string, len(operands))
	for n, operand := range operands {
		switch operand {
		case "vx":
			args[n] = fmt.Sprintf("v%x", op.X())
		case "vy":
			args[n] = fmt.Sprintf("v%x", op.Y())
		case "kk":
			args[n] = fmt.Sprintf("0x%02x", op.KK())
		case "nnn":
			args[n] = fmt.Sprintf("0x%03x", op.NNN())
		case "n":
			args[n] = fmt.Sprintf("%d", op.N())
		default:
			args[n] = operand
		}
	}

	return name + " " + strings.Join(args, ", ")
}
