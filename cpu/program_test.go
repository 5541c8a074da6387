package cpu

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/a256/vector"
)

func TestProgramBinary(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse("set $01, 0x12345678\nnop\n")
	require.NoError(t, err)

	data := prog.Binary()
	assert.Len(data, 3*INSN_SIZE)
	for n, op := range prog.Code {
		assert.Equal(uint64(op), binary.LittleEndian.Uint64(data[n*INSN_SIZE:]))
	}

	assert.Equal([]byte{0x01, 0x00, 0x01, 0xff, 0x78, 0x56, 0x34, 0x12}, data[:INSN_SIZE])
}

func TestProgramDebug(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse("nop\n  addd $01, $02, $03\n")
	require.NoError(t, err)

	dbg, ok := prog.Debug(1)
	assert.True(ok)
	assert.Equal(Debug{Index: 1, Offset: 6, Mnemonic: "addd"}, dbg)

	dbg, ok = prog.Debug(2)
	assert.True(ok)
	assert.Equal("stop", dbg.Mnemonic)

	_, ok = prog.Debug(3)
	assert.False(ok)
	_, ok = prog.Debug(-1)
	assert.False(ok)
}

func TestProgramInstructions(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Code:   []Instruction{MakeOp0(OP_NOP), MakeOp0(OP_NOP), sentinel},
		Offset: []int{0, 4, 8},
	}

	var addrs []int
	for addr := range prog.Instructions() {
		addrs = append(addrs, addr)
		if addr == INSN_SIZE {
			break
		}
	}
	assert.Equal([]int{0, INSN_SIZE}, addrs)

	assert.Equal("000000: nop\n000008: nop\n000010: stop 0, 0x0\n", prog.String())
}

func TestDisassemble(t *testing.T) {
	table := [](struct {
		op       Instruction
		expected string
	}){
		{MakeOp0(OP_NOP), "nop"},
		{MakeOp1i(OP_SET, 0, 0x03, 5), "set $NP, 0x5"},
		{MakeOp1i(OP_SET, 0, 0x0f, 5), "set $00.0x0f, 0x5"},
		{MakeOp1i(OP_ADDQIN, 1, 0xff, 0xfffffffd), "addqin $01, -3"},
		{MakeOp1i(OP_ADDBI, 1, 0xff, 0x010203ff), "addbi $01, 1, 2, 3, 255"},
		{MakeOp1i(OP_ADDWI, 1, 0xff, 0x1234fffe), "addwi $01, 4660, 65534"},
		{MakeOp1i(OP_JNZB, 2, 0x05, 0xfffffff0), "jnzb $02.ub5, 0xfffffff0"},
		{MakeOp1i(OP_JZQ, 0, 0xc1, 8), "jzq $CS, 0x8"},
		{MakeOp2i(OP_MMOVB, 1, 2, 0x80), "mmovb $01, $02, 0x80"},
		{MakeOp3(OP_ADDB, 1, 0x04, 2, 0x25, 253, vector.SEL_IMM_NEG), "addb $01.0x04, $02.sb5, -3"},
		{MakeOp3(OP_LD, 4, 0xf0, 0, 0xc3, 0, vector.SEL_IMM_HIGH), "ld $04.0xf0, $SP, 256"},
		{MakeOp3(OP_ST, 4, 0x0f, 0, 0xc2, 212, vector.SEL_IMM_LOW), "st $04.0x0f, $BP, -300"},
		{MakeOp3(OP_SUBQ, 5, 0xc0, 6, 0xe3, 7, 0xfe), "subq $05.0xc0, $06.sxbw, $07.not"},
		{MakeOp3(OP_MULFS, 8, 0x80, 9, 0xa3, 10, 0xdd), "mulfs $08.0x80, $09.fsr3, $0A.fdc1"},
		{MakeOp3(OP_ADDD, 1, 0xff, 2, 0x50, 3, 0xff), "addd $01, $02.?50, $03"},
		{MakeOp3(OP_POPQ, 0, 0xc0, 2, 0x08, 0, 0xff), "popq $SP, $02.0x08, $00"},
		{MakeOp3(OP_SELD, 1, 0x80, 2, 0xff, 7, vector.SEL_IMM), "seld $01.ud0, $02, 7"},
		{MakeOp4(OP_FMAD, 1, 0x0f, 2, 3, 4, 0xc6), "fmad $01.0x0f, -, $02.abs, $03, $04.-abs"},
		{MakeOp4(OP_FMAQ, 1, 0xff, 2, 3, 4, 0), "fmaq $01, $02, $03, $04"},
		{MakeOp6(OP_SHUFBX, 1, [5]uint8{2, 3, 4, 5, 6}), "shufbx $01, $02, $03, $04, $05, $06"},
		{MakeOp1i(OP_STOP, 0, vector.SEL_IMM, STOP_EXIT), "stop 0, 0x0"},
		{Instruction(0x1234_5678_0000_0012), ".word 0x1234567800000012"},
		{Instruction(0xffff), ".word 0x000000000000ffff"},
	}

	for _, entry := range table {
		t.Run(entry.expected, func(t *testing.T) {
			assert := assert.New(t)
			assert.Equal(entry.expected, Disassemble(entry.op))
		})
	}
}
