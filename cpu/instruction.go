package cpu

import (
	"encoding/binary"
)

// INSN_SIZE is the size of an instruction word in bytes.
const INSN_SIZE = 8

// Instruction is a 64-bit instruction word.
//
// Bits 0..15 hold the opcode. The six payload bytes that follow are read
// according to the opcode's shape, through one of the layouts below.
// The 32-bit immediate, when present, is always the upper four bytes.
type Instruction uint64

// Opcode of the instruction.
func (op Instruction) Opcode() Opcode {
	return Opcode(op & 0xffff)
}

// Byte n (0..5) of the payload.
func (op Instruction) Byte(n int) uint8 {
	return uint8(op >> (16 + 8*n))
}

// Word n (0..2) of the payload.
func (op Instruction) Word(n int) uint16 {
	return uint16(op >> (16 + 16*n))
}

// Imm is the 32-bit immediate.
func (op Instruction) Imm() uint32 {
	return uint32(op >> 32)
}

// Op1i decodes a register, its mask or selector, and an immediate.
func (op Instruction) Op1i() (r, mask uint8, imm uint32) {
	return op.Byte(0), op.Byte(1), op.Imm()
}

// Op2i decodes two registers and an immediate.
func (op Instruction) Op2i() (r, a uint8, imm uint32) {
	return op.Byte(0), op.Byte(1), op.Imm()
}

// Op3 decodes three registers, each with a mask or selector.
func (op Instruction) Op3() (r, rmask, a, amask, b, bmask uint8) {
	return op.Byte(0), op.Byte(1), op.Byte(2), op.Byte(3), op.Byte(4), op.Byte(5)
}

// Op4 decodes a masked result, three sources and the sign control byte.
func (op Instruction) Op4() (r, rmask, a, b, c, sign uint8) {
	return op.Byte(0), op.Byte(1), op.Byte(2), op.Byte(3), op.Byte(4), op.Byte(5)
}

// Op6 decodes six bare registers.
func (op Instruction) Op6() (r uint8, arg [5]uint8) {
	r = op.Byte(0)
	for n := range arg {
		arg[n] = op.Byte(1 + n)
	}
	return
}

// MakeOp0 encodes an instruction without operands.
func MakeOp0(opcode Opcode) Instruction {
	return Instruction(opcode)
}

// MakeOp1i encodes a register, mask and immediate.
func MakeOp1i(opcode Opcode, r, mask uint8, imm uint32) Instruction {
	return MakeOp3(opcode, r, mask, 0, 0, 0, 0) | Instruction(imm)<<32
}

// MakeOp2i encodes two registers and an immediate.
func MakeOp2i(opcode Opcode, r, a uint8, imm uint32) Instruction {
	return MakeOp3(opcode, r, a, 0, 0, 0, 0) | Instruction(imm)<<32
}

// MakeOp3 encodes six payload bytes.
func MakeOp3(opcode Opcode, r, rmask, a, amask, b, bmask uint8) Instruction {
	return Instruction(opcode) |
		Instruction(r)<<16 | Instruction(rmask)<<24 |
		Instruction(a)<<32 | Instruction(amask)<<40 |
		Instruction(b)<<48 | Instruction(bmask)<<56
}

// MakeOp4 encodes a masked result, three sources and a sign control byte.
func MakeOp4(opcode Opcode, r, rmask, a, b, c, sign uint8) Instruction {
	return MakeOp3(opcode, r, rmask, a, b, c, sign)
}

// MakeOp6 encodes six bare registers.
func MakeOp6(opcode Opcode, r uint8, arg [5]uint8) Instruction {
	return MakeOp3(opcode, r, arg[0], arg[1], arg[2], arg[3], arg[4])
}

// Bytes is the little-endian encoding of the instruction.
func (op Instruction) Bytes() (data [INSN_SIZE]byte) {
	binary.LittleEndian.PutUint64(data[:], uint64(op))
	return
}
