package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		shape Shape
		name  string
		mask  uint16
		fixed int
	}){
		{SHAPE_ABCD, "ABCD", 0xffff, 4},
		{SHAPE_AXBC, "AXBC", 0xf0ff, 3},
		{SHAPE_AXYB, "AXYB", 0xf00f, 2},
		{SHAPE_AXKK, "AXKK", 0xf000, 1},
		{SHAPE_AXYN, "AXYN", 0xf000, 1},
		{SHAPE_ANNN, "ANNN", 0xf000, 1},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.shape.String())
		assert.Equal(entry.mask, entry.shape.Mask(), entry.name)
		assert.Equal(entry.fixed, entry.shape.Fixed(), entry.name)
	}
}

func TestMnemonic_Syntax(t *testing.T) {
	assert := assert.New(t)

	name, operands := OP_DRW.Syntax()
	assert.Equal("drw", name)
	assert.Equal([]string{"vx", "vy", "n"}, operands)

	name, operands = OP_CLS.Syntax()
	assert.Equal("cls", name)
	assert.Empty(operands)

	name, operands = OP_STORE.Syntax()
	assert.Equal("ld", name)
	assert.Equal([]string{"[i]", "vx"}, operands)
}

func TestPatterns(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(MNEMONIC_COUNT, len(Patterns))

	seen := map[Mnemonic]bool{}
	for n, pat := range Patterns {
		assert.False(seen[pat.Mnemonic], pat.Mnemonic.String())
		seen[pat.Mnemonic] = true

		assert.Equal(pat.Value, pat.Value&pat.Shape.Mask(), pat.Mnemonic.String())

		// Most fixed nibbles first.
		if n > 0 {
			assert.LessOrEqual(pat.Shape.Fixed(), Patterns[n-1].Shape.Fixed(), pat.Mnemonic.String())
		}
	}

	for mn := range Mnemonic(MNEMONIC_COUNT) {
		assert.True(seen[mn], mn.String())
	}
}

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word     uint16
		mnemonic Mnemonic
	}){
		{0x00e0, OP_CLS},
		{0x00ee, OP_RET},
		{0x0000, OP_SYS},
		{0x00e1, OP_SYS},
		{0x0fff, OP_SYS},
		{0x1abc, OP_JP},
		{0x2abc, OP_CALL},
		{0x3a12, OP_SE_KK},
		{0x4a12, OP_SNE_KK},
		{0x5ab0, OP_SE_VY},
		{0x6a12, OP_LD_KK},
		{0x7a12, OP_ADD_KK},
		{0x8ab0, OP_LD_VY},
		{0x8ab1, OP_OR},
		{0x8ab2, OP_AND},
		{0x8ab3, OP_XOR},
		{0x8ab4, OP_ADD_VY},
		{0x8ab5, OP_SUB},
		{0x8ab6, OP_SHR},
		{0x8ab7, OP_SUBN},
		{0x8abe, OP_SHL},
		{0x9ab0, OP_SNE_VY},
		{0xaabc, OP_LD_I},
		{0xbabc, OP_JP_V0},
		{0xca12, OP_RND},
		{0xdab5, OP_DRW},
		{0xea9e, OP_SKP},
		{0xeaa1, OP_SKNP},
		{0xfa07, OP_LD_VX_DT},
		{0xfa0a, OP_LD_VX_K},
		{0xfa15, OP_LD_DT},
		{0xfa18, OP_LD_ST},
		{0xfa1e, OP_ADD_I},
		{0xfa29, OP_LD_F},
		{0xfa33, OP_LD_B},
		{0xfa55, OP_STORE},
		{0xfa65, OP_LOAD},
	}

	for _, entry := range table {
		op, err := Decode(entry.word)
		assert.NoError(err, "%04x", entry.word)
		assert.Equal(entry.mnemonic, op.Mnemonic, "%04x", entry.word)
		assert.Equal(entry.word, op.Word)
	}
}

func TestDecode_Unknown(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint16{0x5ab1, 0x8ab8, 0x8abf, 0x9abf, 0xea00, 0xeaff, 0xfa00, 0xfaff} {
		_, err := Decode(word)
		assert.ErrorIs(err, ErrUnknownOpcode, "%04x", word)
		assert.ErrorIs(err, ErrOpcode(word), "%04x", word)
	}
}

func TestDecode_Strictest(t *testing.T) {
	assert := assert.New(t)

	var known int
	for word := range 0x10000 {
		op, err := Decode(uint16(word))

		var best *Pattern
		for n, pat := range Patterns {
			if pat.Match(uint16(word)) && (best == nil || pat.Shape.Fixed() > best.Shape.Fixed()) {
				best = &Patterns[n]
			}
		}

		if best == nil {
			assert.ErrorIs(err, ErrUnknownOpcode, "%04x", word)
			continue
		}

		known++
		assert.NoError(err, "%04x", word)
		assert.Equal(best.Mnemonic, op.Mnemonic, "%04x", word)
	}

	assert.Less(known, 0x10000)
}

func TestOpcode_Fields(t *testing.T) {
	assert := assert.New(t)

	op, err := Decode(0xd12f)
	assert.NoError(err)
	assert.Equal(uint8(0x1), op.X())
	assert.Equal(uint8(0x2), op.Y())
	assert.Equal(uint8(0xf), op.N())
	assert.Equal(uint8(0x2f), op.KK())
	assert.Equal(uint16(0x12f), op.NNN())
}

func TestOpcode_String(t *testing.T) {
	assert := assert.New(t)

	table := map[uint16]string{
		0x00e0: "cls",
		0x00ee: "ret",
		0x0123: "sys 0x123",
		0x1abc: "jp 0xabc",
		0x6a0f: "ld va, 0x0f",
		0x8124: "add v1, v2",
		0x8126: "shr v1",
		0xa123: "ld i, 0x123",
		0xb200: "jp v0, 0x200",
		0xd125: "drw v1, v2, 5",
		0xf30a: "ld v3, k",
		0xf355: "ld [i], v3",
		0xf365: "ld v3, [i]",
		0xf129: "ld f, v1",
	}

	for word, text := range table {
		op, err := Decode(word)
		assert.NoError(err)
		assert.Equal(text, op.String())
	}
}
