package cpu

import (
	"fmt"
	"iter"
)

// Handler executes one instruction on the machine.
type Handler func(cpu *Machine, op Instruction) error

// Entry is a registered opcode.
type Entry struct {
	Opcode  Opcode
	Shape   Shape
	Handler Handler
}

// Name is the mnemonic of the entry.
func (entry *Entry) Name() string {
	return entry.Opcode.String()
}

// Table maps opcodes to their shapes and handlers, and mnemonics back to
// opcodes.
type Table struct {
	entry  []Entry
	byName map[string]Opcode
}

// NewTable returns a table with every A256 opcode registered.
func NewTable() (table *Table) {
	table = &Table{}
	for _, entry := range defaultEntries {
		table.Register(entry.Opcode, entry.Shape, entry.Handler)
	}
	return
}

// DefaultTable is shared by the assembler and machines that do not
// provide their own.
var DefaultTable = NewTable()

// Register an opcode. A collision with an existing opcode or mnemonic is
// a programming error, and panics.
func (table *Table) Register(opcode Opcode, shape Shape, handler Handler) {
	if handler == nil {
		panic(fmt.Sprintf("cpu: opcode 0x%03x has no handler", uint16(opcode)))
	}

	if int(opcode) >= len(table.entry) {
		table.entry = append(table.entry, make([]Entry, int(opcode)+1-len(table.entry))...)
	}

	if table.entry[opcode].Handler != nil {
		panic(fmt.Sprintf("cpu: opcode 0x%03x registered twice", uint16(opcode)))
	}

	name := opcode.String()
	if table.byName == nil {
		table.byName = make(map[string]Opcode)
	}
	if _, ok := table.byName[name]; ok {
		panic(fmt.Sprintf("cpu: mnemonic %v registered twice", name))
	}

	table.entry[opcode] = Entry{Opcode: opcode, Shape: shape, Handler: handler}
	table.byName[name] = opcode
}

// Decode returns the entry for an opcode.
func (table *Table) Decode(opcode Opcode) (entry *Entry, err error) {
	if int(opcode) >= len(table.entry) || table.entry[opcode].Handler == nil {
		err = ErrOpcodeUnknown
		return
	}

	entry = &table.entry[opcode]
	return
}

// Lookup returns the opcode of a mnemonic.
func (table *Table) Lookup(name string) (opcode Opcode, err error) {
	opcode, ok := table.byName[name]
	if !ok {
		err = ErrInstructionUnregistered
	}
	return
}

// Entries iterates over the registered opcodes in numeric order.
func (table *Table) Entries() iter.Seq[*Entry] {
	return func(yield func(*Entry) bool) {
		for n := range table.entry {
			entry := &table.entry[n]
			if entry.Handler == nil {
				continue
			}
			if !yield(entry) {
				return
			}
		}
	}
}

var defaultEntries = []Entry{
	{OP_STOP, SHAPE_S1I32, opStop},
	{OP_SET, SHAPE_R1I32, opSet},
	{OP_MMOVB, SHAPE_R2I32, opMmovb},
	{OP_MSWAPB, SHAPE_R2I32, opMswapb},
	{OP_LD, SHAPE_R3S2, opLd},
	{OP_ST, SHAPE_R3S2, opSt},
	{OP_LDR, SHAPE_R1I32, opLdr},
	{OP_STR, SHAPE_R1I32, opStr},
	{OP_CMOVB, SHAPE_R3S2, cmov[int8](false)},
	{OP_CMOVW, SHAPE_R3S2, cmov[int16](false)},
	{OP_CMOVD, SHAPE_R3S2, cmov[int32](false)},
	{OP_CMOVQ, SHAPE_R3S2, cmov[int64](false)},
	{OP_CMOVZB, SHAPE_R3S2, cmov[int8](true)},
	{OP_CMOVZW, SHAPE_R3S2, cmov[int16](true)},
	{OP_CMOVZD, SHAPE_R3S2, cmov[int32](true)},
	{OP_CMOVZQ, SHAPE_R3S2, cmov[int64](true)},
	{OP_ADDFS, SHAPE_R3S2, lanewise(add[float32])},
	{OP_ADDFD, SHAPE_R3S2, lanewise(add[float64])},
	{OP_ADDB, SHAPE_R3S2, lanewise(add[int8])},
	{OP_ADDW, SHAPE_R3S2, lanewise(add[int16])},
	{OP_ADDD, SHAPE_R3S2, lanewise(add[int32])},
	{OP_ADDQ, SHAPE_R3S2, lanewise(add[int64])},
	{OP_ADDFSI, SHAPE_R1I32, addImmediate(immFloat32, add[float32])},
	{OP_ADDFDI, SHAPE_R1I32, addImmediate(immFloat64, add[float64])},
	{OP_ADDBI, SHAPE_R1I8X4, addImmediate(immPacked, add[int8])},
	{OP_ADDWI, SHAPE_R1I16X2, addImmediate(immPacked, add[int16])},
	{OP_ADDDI, SHAPE_R1I32, addImmediate(immPacked, add[int32])},
	{OP_ADDQIP, SHAPE_R1I32P, addImmediate(immPositive, add[int64])},
	{OP_ADDQIN, SHAPE_R1I32N, addImmediate(immNegative, add[int64])},
	{OP_SUBFS, SHAPE_R3S2, lanewise(sub[float32])},
	{OP_SUBFD, SHAPE_R3S2, lanewise(sub[float64])},
	{OP_SUBB, SHAPE_R3S2, lanewise(sub[int8])},
	{OP_SUBW, SHAPE_R3S2, lanewise(sub[int16])},
	{OP_SUBD, SHAPE_R3S2, lanewise(sub[int32])},
	{OP_SUBQ, SHAPE_R3S2, lanewise(sub[int64])},
	{OP_JNZFS, SHAPE_S1I32, jump[float32](false)},
	{OP_JNZFD, SHAPE_S1I32, jump[float64](false)},
	{OP_JNZB, SHAPE_S1I32, jump[int8](false)},
	{OP_JNZW, SHAPE_S1I32, jump[int16](false)},
	{OP_JNZD, SHAPE_S1I32, jump[int32](false)},
	{OP_JNZQ, SHAPE_S1I32, jump[int64](false)},
	{OP_MULFS, SHAPE_R3S2, lanewise(mul[float32])},
	{OP_MULFD, SHAPE_R3S2, lanewise(mul[float64])},
	{OP_MULB, SHAPE_R3S2, lanewise(mul[int8])},
	{OP_MULW, SHAPE_R3S2, lanewise(mul[int16])},
	{OP_MULD, SHAPE_R3S2, lanewise(mul[int32])},
	{OP_MULQ, SHAPE_R3S2, lanewise(mul[int64])},
	{OP_JZFS, SHAPE_S1I32, jump[float32](true)},
	{OP_JZFD, SHAPE_S1I32, jump[float64](true)},
	{OP_JZB, SHAPE_S1I32, jump[int8](true)},
	{OP_JZW, SHAPE_S1I32, jump[int16](true)},
	{OP_JZD, SHAPE_S1I32, jump[int32](true)},
	{OP_JZQ, SHAPE_S1I32, jump[int64](true)},
	{OP_FMAFS, SHAPE_R4SIGN, fma[float32]},
	{OP_FMAFD, SHAPE_R4SIGN, fma[float64]},
	{OP_FMAB, SHAPE_R4SIGN, fma[int8]},
	{OP_FMAW, SHAPE_R4SIGN, fma[int16]},
	{OP_FMAD, SHAPE_R4SIGN, fma[int32]},
	{OP_FMAQ, SHAPE_R4SIGN, fma[int64]},
	{OP_CALL, SHAPE_R1I32, opCall},
	{OP_RET, SHAPE_R1I32, opRet},
	{OP_ANDFS, SHAPE_R3S2, bitwise[float32](and)},
	{OP_ANDFD, SHAPE_R3S2, bitwise[float64](and)},
	{OP_ANDDQ, SHAPE_R3S2, bitwise[uint64](and)},
	{OP_ANDQQ, SHAPE_R3S2, bitwise[uint64](and)},
	{OP_ANDB, SHAPE_R3S2, bitwise[int8](and)},
	{OP_ANDW, SHAPE_R3S2, bitwise[int16](and)},
	{OP_ANDD, SHAPE_R3S2, bitwise[int32](and)},
	{OP_ANDQ, SHAPE_R3S2, bitwise[int64](and)},
	{OP_PUSHD, SHAPE_R3S2, push(4)},
	{OP_PUSHQ, SHAPE_R3S2, push(8)},
	{OP_PUSHDQ, SHAPE_R3S2, push(16)},
	{OP_PUSHQQ, SHAPE_R3S2, push(32)},
	{OP_ORFS, SHAPE_R3S2, bitwise[float32](or)},
	{OP_ORFD, SHAPE_R3S2, bitwise[float64](or)},
	{OP_ORDQ, SHAPE_R3S2, bitwise[uint64](or)},
	{OP_ORQQ, SHAPE_R3S2, bitwise[uint64](or)},
	{OP_ORB, SHAPE_R3S2, bitwise[int8](or)},
	{OP_ORW, SHAPE_R3S2, bitwise[int16](or)},
	{OP_ORD, SHAPE_R3S2, bitwise[int32](or)},
	{OP_ORQ, SHAPE_R3S2, bitwise[int64](or)},
	{OP_POPD, SHAPE_R3M2S1, pop(4)},
	{OP_POPQ, SHAPE_R3M2S1, pop(8)},
	{OP_POPDQ, SHAPE_R3M2S1, pop(16)},
	{OP_POPQQ, SHAPE_R3M2S1, pop(32)},
	{OP_XORFS, SHAPE_R3S2, bitwise[float32](xor)},
	{OP_XORFD, SHAPE_R3S2, bitwise[float64](xor)},
	{OP_XORDQ, SHAPE_R3S2, bitwise[uint64](xor)},
	{OP_XORQQ, SHAPE_R3S2, bitwise[uint64](xor)},
	{OP_XORB, SHAPE_R3S2, bitwise[int8](xor)},
	{OP_XORW, SHAPE_R3S2, bitwise[int16](xor)},
	{OP_XORD, SHAPE_R3S2, bitwise[int32](xor)},
	{OP_XORQ, SHAPE_R3S2, bitwise[int64](xor)},
	{OP_SHUFB, SHAPE_R3S2, opShufb},
	{OP_SHUFBX, SHAPE_R6, opShufbx},
	{OP_UNPKFS, SHAPE_R3S2, unpack[float32](4)},
	{OP_UNPKFD, SHAPE_R3S2, unpack[float64](8)},
	{OP_UNPKDQ, SHAPE_R3S2, unpack[uint64](16)},
	{OP_UNPKB, SHAPE_R3S2, unpack[int8](1)},
	{OP_UNPKW, SHAPE_R3S2, unpack[int16](2)},
	{OP_UNPKD, SHAPE_R3S2, unpack[int32](4)},
	{OP_UNPKQ, SHAPE_R3S2, unpack[int64](8)},
	{OP_PACKLFS, SHAPE_R3S2, pack[float32](4, 0)},
	{OP_PACKLFD, SHAPE_R3S2, pack[float64](8, 0)},
	{OP_PACKLDQ, SHAPE_R3S2, pack[uint64](16, 0)},
	{OP_PACKLB, SHAPE_R3S2, pack[int8](1, 0)},
	{OP_PACKLW, SHAPE_R3S2, pack[int16](2, 0)},
	{OP_PACKLD, SHAPE_R3S2, pack[int32](4, 0)},
	{OP_PACKLQ, SHAPE_R3S2, pack[int64](8, 0)},
	{OP_PACKHFS, SHAPE_R3S2, pack[float32](4, 1)},
	{OP_PACKHFD, SHAPE_R3S2, pack[float64](8, 1)},
	{OP_PACKHDQ, SHAPE_R3S2, pack[uint64](16, 1)},
	{OP_PACKHB, SHAPE_R3S2, pack[int8](1, 1)},
	{OP_PACKHW, SHAPE_R3S2, pack[int16](2, 1)},
	{OP_PACKHD, SHAPE_R3S2, pack[int32](4, 1)},
	{OP_PACKHQ, SHAPE_R3S2, pack[int64](8, 1)},
	{OP_DIVFS, SHAPE_R3S2, lanewiseErr(div[float32])},
	{OP_DIVFD, SHAPE_R3S2, lanewiseErr(div[float64])},
	{OP_DIVSB, SHAPE_R3S2, lanewiseErr(div[int8])},
	{OP_DIVSW, SHAPE_R3S2, lanewiseErr(div[int16])},
	{OP_DIVSD, SHAPE_R3S2, lanewiseErr(div[int32])},
	{OP_DIVSQ, SHAPE_R3S2, lanewiseErr(div[int64])},
	{OP_DIVUB, SHAPE_R3S2, lanewiseErr(div[uint8])},
	{OP_DIVUW, SHAPE_R3S2, lanewiseErr(div[uint16])},
	{OP_DIVUD, SHAPE_R3S2, lanewiseErr(div[uint32])},
	{OP_DIVUQ, SHAPE_R3S2, lanewiseErr(div[uint64])},
	{OP_RLFS, SHAPE_R3S2, shift[float32, uint32](rl)},
	{OP_RLFD, SHAPE_R3S2, shift[float64, uint64](rl)},
	{OP_RLDQ, SHAPE_R3S2, shiftWide(128, wideRl)},
	{OP_RLQQ, SHAPE_R3S2, shiftWide(256, wideRl)},
	{OP_RLB, SHAPE_R3S2, shift[int8, uint8](rl)},
	{OP_RLW, SHAPE_R3S2, shift[int16, uint16](rl)},
	{OP_RLD, SHAPE_R3S2, shift[int32, uint32](rl)},
	{OP_RLQ, SHAPE_R3S2, shift[int64, uint64](rl)},
	{OP_SLLFS, SHAPE_R3S2, shift[float32, uint32](sll)},
	{OP_SLLFD, SHAPE_R3S2, shift[float64, uint64](sll)},
	{OP_SLLDQ, SHAPE_R3S2, shiftWide(128, wideSll)},
	{OP_SLLQQ, SHAPE_R3S2, shiftWide(256, wideSll)},
	{OP_SLLB, SHAPE_R3S2, shift[int8, uint8](sll)},
	{OP_SLLW, SHAPE_R3S2, shift[int16, uint16](sll)},
	{OP_SLLD, SHAPE_R3S2, shift[int32, uint32](sll)},
	{OP_SLLQ, SHAPE_R3S2, shift[int64, uint64](sll)},
	{OP_SARFS, SHAPE_R3S2, shift[float32, uint32](sar)},
	{OP_SARFD, SHAPE_R3S2, shift[float64, uint64](sar)},
	{OP_SARDQ, SHAPE_R3S2, shiftWide(128, wideSar)},
	{OP_SARQQ, SHAPE_R3S2, shiftWide(256, wideSar)},
	{OP_SARB, SHAPE_R3S2, shift[int8, uint8](sar)},
	{OP_SARW, SHAPE_R3S2, shift[int16, uint16](sar)},
	{OP_SARD, SHAPE_R3S2, shift[int32, uint32](sar)},
	{OP_SARQ, SHAPE_R3S2, shift[int64, uint64](sar)},
	{OP_SLRFS, SHAPE_R3S2, shift[float32, uint32](slr)},
	{OP_SLRFD, SHAPE_R3S2, shift[float64, uint64](slr)},
	{OP_SLRDQ, SHAPE_R3S2, shiftWide(128, wideSlr)},
	{OP_SLRQQ, SHAPE_R3S2, shiftWide(256, wideSlr)},
	{OP_SLRB, SHAPE_R3S2, shift[int8, uint8](slr)},
	{OP_SLRW, SHAPE_R3S2, shift[int16, uint16](slr)},
	{OP_SLRD, SHAPE_R3S2, shift[int32, uint32](slr)},
	{OP_SLRQ, SHAPE_R3S2, shift[int64, uint64](slr)},
	{OP_CMPEQFS, SHAPE_R3S2, compare(eq[float32])},
	{OP_CMPEQFD, SHAPE_R3S2, compare(eq[float64])},
	{OP_CMPEQB, SHAPE_R3S2, compare(eq[int8])},
	{OP_CMPEQW, SHAPE_R3S2, compare(eq[int16])},
	{OP_CMPEQD, SHAPE_R3S2, compare(eq[int32])},
	{OP_CMPEQQ, SHAPE_R3S2, compare(eq[int64])},
	{OP_CMPGTFS, SHAPE_R3S2, compare(gt[float32])},
	{OP_CMPGTFD, SHAPE_R3S2, compare(gt[float64])},
	{OP_CMPGTSB, SHAPE_R3S2, compare(gt[int8])},
	{OP_CMPGTSW, SHAPE_R3S2, compare(gt[int16])},
	{OP_CMPGTSD, SHAPE_R3S2, compare(gt[int32])},
	{OP_CMPGTSQ, SHAPE_R3S2, compare(gt[int64])},
	{OP_CMPGTUB, SHAPE_R3S2, compare(gt[uint8])},
	{OP_CMPGTUW, SHAPE_R3S2, compare(gt[uint16])},
	{OP_CMPGTUD, SHAPE_R3S2, compare(gt[uint32])},
	{OP_CMPGTUQ, SHAPE_R3S2, compare(gt[uint64])},
	{OP_MINFS, SHAPE_R3S2, lanewise(minimum[float32])},
	{OP_MINFD, SHAPE_R3S2, lanewise(minimum[float64])},
	{OP_MINSB, SHAPE_R3S2, lanewise(minimum[int8])},
	{OP_MINSW, SHAPE_R3S2, lanewise(minimum[int16])},
	{OP_MINSD, SHAPE_R3S2, lanewise(minimum[int32])},
	{OP_MINSQ, SHAPE_R3S2, lanewise(minimum[int64])},
	{OP_MAXFS, SHAPE_R3S2, lanewise(maximum[float32])},
	{OP_MAXFD, SHAPE_R3S2, lanewise(maximum[float64])},
	{OP_MAXSB, SHAPE_R3S2, lanewise(maximum[int8])},
	{OP_MAXSW, SHAPE_R3S2, lanewise(maximum[int16])},
	{OP_MAXSD, SHAPE_R3S2, lanewise(maximum[int32])},
	{OP_MAXSQ, SHAPE_R3S2, lanewise(maximum[int64])},
	{OP_MINUB, SHAPE_R3S2, lanewise(minimum[uint8])},
	{OP_MINUW, SHAPE_R3S2, lanewise(minimum[uint16])},
	{OP_MINUD, SHAPE_R3S2, lanewise(minimum[uint32])},
	{OP_MINUQ, SHAPE_R3S2, lanewise(minimum[uint64])},
	{OP_MAXUB, SHAPE_R3S2, lanewise(maximum[uint8])},
	{OP_MAXUW, SHAPE_R3S2, lanewise(maximum[uint16])},
	{OP_MAXUD, SHAPE_R3S2, lanewise(maximum[uint32])},
	{OP_MAXUQ, SHAPE_R3S2, lanewise(maximum[uint64])},
	{OP_HADDFS, SHAPE_R3S2, horizontal(add[float32])},
	{OP_HADDFD, SHAPE_R3S2, horizontal(add[float64])},
	{OP_HADDB, SHAPE_R3S2, horizontal(add[int8])},
	{OP_HADDW, SHAPE_R3S2, horizontal(add[int16])},
	{OP_HADDD, SHAPE_R3S2, horizontal(add[int32])},
	{OP_HADDQ, SHAPE_R3S2, horizontal(add[int64])},
	{OP_HSUBFS, SHAPE_R3S2, horizontal(sub[float32])},
	{OP_HSUBFD, SHAPE_R3S2, horizontal(sub[float64])},
	{OP_HSUBB, SHAPE_R3S2, horizontal(sub[int8])},
	{OP_HSUBW, SHAPE_R3S2, horizontal(sub[int16])},
	{OP_HSUBD, SHAPE_R3S2, horizontal(sub[int32])},
	{OP_HSUBQ, SHAPE_R3S2, horizontal(sub[int64])},
	{OP_MULHSB, SHAPE_R3S2, lanewise(mulh[int8])},
	{OP_MULHSW, SHAPE_R3S2, lanewise(mulh[int16])},
	{OP_MULHSD, SHAPE_R3S2, lanewise(mulh[int32])},
	{OP_MULHSQ, SHAPE_R3S2, lanewise(mulh[int64])},
	{OP_MULHUB, SHAPE_R3S2, lanewise(mulh[uint8])},
	{OP_MULHUW, SHAPE_R3S2, lanewise(mulh[uint16])},
	{OP_MULHUD, SHAPE_R3S2, lanewise(mulh[uint32])},
	{OP_MULHUQ, SHAPE_R3S2, lanewise(mulh[uint64])},
	{OP_SELFS, SHAPE_S3, selectLanes[float32]},
	{OP_SELFD, SHAPE_S3, selectLanes[float64]},
	{OP_SELB, SHAPE_S3, selectLanes[int8]},
	{OP_SELW, SHAPE_S3, selectLanes[int16]},
	{OP_SELD, SHAPE_S3, selectLanes[int32]},
	{OP_SELQ, SHAPE_S3, selectLanes[int64]},
	{OP_NOP, SHAPE_EMPTY, opNop},
}
