package cpu

import (
	"errors"

	"github.com/ezrec/chip8/io"
)

// instruction executes an opcode and returns the next program counter.
type instruction func(cpu *Cpu, op Opcode) (next_pc uint16, err error)

// instructions is indexed by Mnemonic.
var instructions = [MNEMONIC_COUNT]instruction{
	OP_SYS:      (*Cpu).opSys,
	OP_CLS:      (*Cpu).opCls,
	OP_RET:      (*Cpu).opRet,
	OP_JP:       (*Cpu).opJp,
	OP_CALL:     (*Cpu).opCall,
	OP_SE_KK:    (*Cpu).opSeKk,
	OP_SNE_KK:   (*Cpu).opSneKk,
	OP_SE_VY:    (*Cpu).opSeVy,
	OP_LD_KK:    (*Cpu).opLdKk,
	OP_ADD_KK:   (*Cpu).opAddKk,
	OP_LD_VY:    (*Cpu).opLdVy,
	OP_OR:       (*Cpu).opOr,
	OP_AND:      (*Cpu).opAnd,
	OP_XOR:      (*Cpu).opXor,
	OP_ADD_VY:   (*Cpu).opAddVy,
	OP_SUB:      (*Cpu).opSub,
	OP_SHR:      (*Cpu).opShr,
	OP_SUBN:     (*Cpu).opSubn,
	OP_SHL:      (*Cpu).opShl,
	OP_SNE_VY:   (*Cpu).opSneVy,
	OP_LD_I:     (*Cpu).opLdI,
	OP_JP_V0:    (*Cpu).opJpV0,
	OP_RND:      (*Cpu).opRnd,
	OP_DRW:      (*Cpu).opDrw,
	OP_SKP:      (*Cpu).opSkp,
	OP_SKNP:     (*Cpu).opSknp,
	OP_LD_VX_DT: (*Cpu).opLdVxDt,
	OP_LD_VX_K:  (*Cpu).opLdVxK,
	OP_LD_DT:    (*Cpu).opLdDt,
	OP_LD_ST:    (*Cpu).opLdSt,
	OP_ADD_I:    (*Cpu).opAddI,
	OP_LD_F:     (*Cpu).opLdF,
	OP_LD_B:     (*Cpu).opLdB,
	OP_STORE:    (*Cpu).opStore,
	OP_LOAD:     (*Cpu).opLoad,
}

// next returns the address of the following instruction.
func (cpu *Cpu) next() uint16 {
	return cpu.Pc + 2
}

// skipIf returns the address after the following instruction when cond holds.
func (cpu *Cpu) skipIf(cond bool) uint16 {
	if cond {
		return cpu.Pc + 4
	}
	return cpu.Pc + 2
}

// setFlag sets vf, after the result register has been written.
func (cpu *Cpu) setFlag(flag bool) {
	cpu.Register[REGISTER_FLAG] = 0
	if flag {
		cpu.Register[REGISTER_FLAG] = 1
	}
}

// Machine code routines are not supported; sys is a no-op.
func (cpu *Cpu) opSys(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opCls(op Opcode) (next_pc uint16, err error) {
	cpu.Frame.Clear()
	err = cpu.Display.Clear()
	if err != nil {
		err = errors.Join(ErrDevice, err)
		return
	}

	next_pc = cpu.next()
	return
}

// ret resumes after the call that pushed the return address.
func (cpu *Cpu) opRet(op Opcode) (next_pc uint16, err error) {
	addr, err := cpu.Stack.Pop()
	if err != nil {
		return
	}

	next_pc = addr + 2
	return
}

func (cpu *Cpu) opJp(op Opcode) (next_pc uint16, err error) {
	next_pc = op.NNN()
	return
}

// call pushes its own address; ret skips over it.
func (cpu *Cpu) opCall(op Opcode) (next_pc uint16, err error) {
	err = cpu.Stack.Push(cpu.Pc)
	if err != nil {
		return
	}

	next_pc = op.NNN()
	return
}

func (cpu *Cpu) opSeKk(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(cpu.Register[op.X()] == op.KK())
	return
}

func (cpu *Cpu) opSneKk(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(cpu.Register[op.X()] != op.KK())
	return
}

func (cpu *Cpu) opSeVy(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(cpu.Register[op.X()] == cpu.Register[op.Y()])
	return
}

func (cpu *Cpu) opSneVy(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(cpu.Register[op.X()] != cpu.Register[op.Y()])
	return
}

func (cpu *Cpu) opLdKk(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] = op.KK()
	next_pc = cpu.next()
	return
}

// add vx, kk wraps without touching vf.
func (cpu *Cpu) opAddKk(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] += op.KK()
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opLdVy(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] = cpu.Register[op.Y()]
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opOr(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] |= cpu.Register[op.Y()]
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opAnd(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] &= cpu.Register[op.Y()]
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opXor(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] ^= cpu.Register[op.Y()]
	next_pc = cpu.next()
	return
}

// vf is the carry out of bit 7.
func (cpu *Cpu) opAddVy(op Opcode) (next_pc uint16, err error) {
	sum := uint16(cpu.Register[op.X()]) + uint16(cpu.Register[op.Y()])
	cpu.Register[op.X()] = uint8(sum)
	cpu.setFlag(sum > 0xff)
	next_pc = cpu.next()
	return
}

// vf is set when no borrow occurs: vx > vy.
func (cpu *Cpu) opSub(op Opcode) (next_pc uint16, err error) {
	x, y := cpu.Register[op.X()], cpu.Register[op.Y()]
	cpu.Register[op.X()] = x - y
	cpu.setFlag(x > y)
	next_pc = cpu.next()
	return
}

// vf is set when no borrow occurs: vy > vx.
func (cpu *Cpu) opSubn(op Opcode) (next_pc uint16, err error) {
	x, y := cpu.Register[op.X()], cpu.Register[op.Y()]
	cpu.Register[op.X()] = y - x
	cpu.setFlag(y > x)
	next_pc = cpu.next()
	return
}

// vf is the bit shifted out.
func (cpu *Cpu) opShr(op Opcode) (next_pc uint16, err error) {
	x := cpu.Register[op.X()]
	cpu.Register[op.X()] = x >> 1
	cpu.setFlag(x&0x01 != 0)
	next_pc = cpu.next()
	return
}

// vf is the bit shifted out.
func (cpu *Cpu) opShl(op Opcode) (next_pc uint16, err error) {
	x := cpu.Register[op.X()]
	cpu.Register[op.X()] = x << 1
	cpu.setFlag(x&0x80 != 0)
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opLdI(op Opcode) (next_pc uint16, err error) {
	cpu.I = op.NNN()
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opJpV0(op Opcode) (next_pc uint16, err error) {
	next_pc = op.NNN() + uint16(cpu.Register[0])
	return
}

func (cpu *Cpu) opRnd(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] = uint8(cpu.Rand.UintN(256)) & op.KK()
	next_pc = cpu.next()
	return
}

// drw xors an 8 pixel wide, n row tall sprite from [i] onto the frame.
// The origin wraps around the frame; pixels past its edges are clipped.
// vf is set when any lit pixel was turned off.
func (cpu *Cpu) opDrw(op Opcode) (next_pc uint16, err error) {
	left := int(cpu.Register[op.X()] % io.FRAME_WIDTH)
	top := int(cpu.Register[op.Y()] % io.FRAME_HEIGHT)

	sprite, err := cpu.span(cpu.I, int(op.N()))
	if err != nil {
		return
	}

	cpu.Register[REGISTER_FLAG] = 0

	var collided bool
	for row, bits := range sprite {
		for col := range 8 {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if cpu.Frame.Flip(left+col, top+row) {
				collided = true
			}
		}
	}

	cpu.setFlag(collided)

	err = cpu.Display.Present(&cpu.Frame)
	if err != nil {
		err = errors.Join(ErrDevice, err)
		return
	}

	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opSkp(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(cpu.Keypad.KeyDown(cpu.Register[op.X()] & 0xf))
	return
}

func (cpu *Cpu) opSknp(op Opcode) (next_pc uint16, err error) {
	next_pc = cpu.skipIf(!cpu.Keypad.KeyDown(cpu.Register[op.X()] & 0xf))
	return
}

// Reading the delay timer commits its decayed value.
func (cpu *Cpu) opLdVxDt(op Opcode) (next_pc uint16, err error) {
	cpu.Register[op.X()] = cpu.Delay.Tick(cpu.now())
	next_pc = cpu.next()
	return
}

// ld vx, k stays on this instruction until a key is down.
func (cpu *Cpu) opLdVxK(op Opcode) (next_pc uint16, err error) {
	key, ok := cpu.Keypad.FirstPressed()
	if !ok {
		next_pc = cpu.Pc
		return
	}

	cpu.Register[op.X()] = key & 0xf
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opLdDt(op Opcode) (next_pc uint16, err error) {
	cpu.Delay.Set(cpu.Register[op.X()], cpu.now())
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opLdSt(op Opcode) (next_pc uint16, err error) {
	cpu.Sound.Set(cpu.Register[op.X()], cpu.now())
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opAddI(op Opcode) (next_pc uint16, err error) {
	cpu.I += uint16(cpu.Register[op.X()])
	next_pc = cpu.next()
	return
}

func (cpu *Cpu) opLdF(op Opcode) (next_pc uint16, err error) {
	cpu.I = FontAddress(cpu.Register[op.X()])
	next_pc = cpu.next()
	return
}

// ld b, vx stores the decimal digits of vx at [i], hundreds first.
func (cpu *Cpu) opLdB(op Opcode) (next_pc uint16, err error) {
	mem, err := cpu.span(cpu.I, 3)
	if err != nil {
		return
	}

	x := cpu.Register[op.X()]
	mem[0] = x / 100
	mem[1] = (x / 10) % 10
	mem[2] = x % 10

	next_pc = cpu.next()
	return
}

// ld [i], vx stores v0 through vx at [i]. I is unchanged.
func (cpu *Cpu) opStore(op Opcode) (next_pc uint16, err error) {
	count := int(op.X()) + 1
	mem, err := cpu.span(cpu.I, count)
	if err != nil {
		return
	}

	copy(mem, cpu.Register[:count])
	next_pc = cpu.next()
	return
}

// ld vx, [i] loads v0 through vx from [i]. I is unchanged.
func (cpu *Cpu) opLoad(op Opcode) (next_pc uint16, err error) {
	count := int(op.X()) + 1
	mem, err := cpu.span(cpu.I, count)
	if err != nil {
		return
	}

	copy(cpu.Register[:count], mem)
	next_pc = cpu.next()
	return
}
