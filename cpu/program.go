package cpu

import (
	"fmt"
	"iter"
	"strings"

	"github.com/ezrec/a256/vector"
)

// Program is an assembled instruction stream.
type Program struct {
	Source string        // Assembly source.
	Code   []Instruction // Instructions, with relocations resolved.
	Offset []int         // Source offset of each instruction.
}

// Debug describes the source of an instruction.
type Debug struct {
	Index    int    // Instruction index.
	Offset   int    // Source offset.
	Mnemonic string // Instruction mnemonic.
}

// Debug returns the source information of instruction index.
// ok is false when the index is outside the program.
func (prog *Program) Debug(index int) (dbg Debug, ok bool) {
	if index < 0 || index >= len(prog.Code) {
		return
	}

	dbg = Debug{
		Index:    index,
		Offset:   prog.Offset[index],
		Mnemonic: prog.Code[index].Opcode().String(),
	}
	ok = true
	return
}

// Binary is the little-endian encoding of the program.
func (prog *Program) Binary() (data []byte) {
	data = make([]byte, 0, len(prog.Code)*INSN_SIZE)
	for _, op := range prog.Code {
		bytes := op.Bytes()
		data = append(data, bytes[:]...)
	}

	return
}

// Instructions iterates over the byte address and instruction of each
// instruction.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(addr int, op Instruction) bool) {
		for n, op := range prog.Code {
			if !yield(n*INSN_SIZE, op) {
				return
			}
		}
	}
}

// String is the disassembly listing of the program.
func (prog *Program) String() string {
	var text strings.Builder
	for addr, op := range prog.Instructions() {
		fmt.Fprintf(&text, "%06x: %v\n", addr, Disassemble(op))
	}
	return text.String()
}

var controlNames = [4]string{"$NP", "$CS", "$BP", "$SP"}

// maskText renders a register with a result mask.
func maskText(r, mask uint8) string {
	if r == 0 {
		for lane, name := range controlNames {
			if mask == 3<<(2*lane) {
				return name
			}
		}
	}
	if mask == 0xff {
		return fmt.Sprintf("$%02X", r)
	}
	return fmt.Sprintf("$%02X.0x%02x", r, mask)
}

// selectorText renders a register with a selector.
func selectorText(r, code uint8) string {
	switch code {
	case vector.SEL_ALL:
		return fmt.Sprintf("$%02X", r)
	case vector.SEL_IMM:
		return fmt.Sprintf("%d", int(r))
	case vector.SEL_IMM_NEG:
		return fmt.Sprintf("%d", int(r)-256)
	case vector.SEL_IMM_HIGH:
		return fmt.Sprintf("%d", int(r)+256)
	case vector.SEL_IMM_LOW:
		return fmt.Sprintf("%d", int(r)-512)
	}

	if r == 0 && code >= 0xc0 && code <= 0xc3 {
		return controlNames[code-0xc0]
	}

	form, index, ok := vector.FormOf(code)
	switch {
	case !ok:
		return fmt.Sprintf("$%02X.?%02x", r, code)
	case form.Limit < 0:
		return fmt.Sprintf("$%02X.%v", r, form.Name)
	}
	return fmt.Sprintf("$%02X.%v%d", r, form.Name, index)
}

var signNames = [4]string{"", "abs", "-", "-abs"}

// Disassemble renders a single instruction in assembler syntax.
func Disassemble(op Instruction) string {
	entry, err := DefaultTable.Decode(op.Opcode())
	if err != nil {
		return fmt.Sprintf(".word 0x%016x", uint64(op))
	}

	name := entry.Name()
	imm := op.Imm()

	switch entry.Shape {
	case SHAPE_EMPTY:
		return name
	case SHAPE_R1I32, SHAPE_R1I32P:
		r, mask, _ := op.Op1i()
		return fmt.Sprintf("%v %v, 0x%x", name, maskText(r, mask), imm)
	case SHAPE_R1I32N:
		r, mask, _ := op.Op1i()
		return fmt.Sprintf("%v %v, -%d", name, maskText(r, mask), (1<<32)-uint64(imm))
	case SHAPE_R1I8X4:
		r, mask, _ := op.Op1i()
		return fmt.Sprintf("%v %v, %d, %d, %d, %d", name, maskText(r, mask),
			op.Byte(5), op.Byte(4), op.Byte(3), op.Byte(2))
	case SHAPE_R1I16X2:
		r, mask, _ := op.Op1i()
		return fmt.Sprintf("%v %v, %d, %d", name, maskText(r, mask), op.Word(2), op.Word(1))
	case SHAPE_S1I32:
		r, sel, _ := op.Op1i()
		return fmt.Sprintf("%v %v, 0x%x", name, selectorText(r, sel), imm)
	case SHAPE_R2I32:
		r, a, _ := op.Op2i()
		return fmt.Sprintf("%v $%02X, $%02X, 0x%x", name, r, a, imm)
	case SHAPE_R3S2:
		r, rmask, a, asel, b, bsel := op.Op3()
		return fmt.Sprintf("%v %v, %v, %v", name, maskText(r, rmask), selectorText(a, asel), selectorText(b, bsel))
	case SHAPE_R3M2S1:
		r, rmask, a, amask, b, bsel := op.Op3()
		return fmt.Sprintf("%v %v, %v, %v", name, maskText(r, rmask), maskText(a, amask), selectorText(b, bsel))
	case SHAPE_S3:
		r, rsel, a, asel, b, bsel := op.Op3()
		return fmt.Sprintf("%v %v, %v, %v", name, selectorText(r, rsel), selectorText(a, asel), selectorText(b, bsel))
	case SHAPE_R4SIGN:
		r, rmask, a, b, c, sign := op.Op4()
		var text strings.Builder
		fmt.Fprintf(&text, "%v %v, ", name, maskText(r, rmask))
		if sign&3 != 0 {
			fmt.Fprintf(&text, "%v, ", signNames[sign&3])
		}
		for n, reg := range []uint8{a, b, c} {
			if n > 0 {
				text.WriteString(", ")
			}
			fmt.Fprintf(&text, "$%02X", reg)
			if s := (sign >> (2 * (n + 1))) & 3; s != 0 {
				fmt.Fprintf(&text, ".%v", signNames[s])
			}
		}
		return text.String()
	case SHAPE_R6:
		r, arg := op.Op6()
		return fmt.Sprintf("%v $%02X, $%02X, $%02X, $%02X, $%02X, $%02X", name, r, arg[0], arg[1], arg[2], arg[3], arg[4])
	}

	return fmt.Sprintf("%v 0x%012x", name, uint64(op)>>16)
}
