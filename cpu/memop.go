package cpu

import (
	"encoding/binary"

	"github.com/ezrec/a256/vector"
)

// load the dwords enabled by mask from addr into register r.
// The register is unchanged when any access fails.
func (cpu *Machine) load(r uint8, mask uint8, addr uint64) (err error) {
	res := cpu.Register[r]
	for i := range 8 {
		if mask&(1<<i) == 0 {
			continue
		}
		err = cpu.memory().Load(addr+uint64(i*4), res[i*4:i*4+4])
		if err != nil {
			return
		}
	}

	cpu.Register[r] = res
	return
}

// store the dwords of register r enabled by mask to addr.
func (cpu *Machine) store(r uint8, mask uint8, addr uint64) (err error) {
	reg := &cpu.Register[r]
	for i := range 8 {
		if mask&(1<<i) == 0 {
			continue
		}
		err = cpu.memory().Store(addr+uint64(i*4), reg[i*4:i*4+4])
		if err != nil {
			return
		}
	}
	return
}

// address decodes the a and b selectors as qwords and sums their low lanes.
func (cpu *Machine) address(op Instruction) (r, rmask uint8, addr uint64, err error) {
	r, rmask, a, b, err := operands[uint64](cpu, op)
	if err != nil {
		return
	}

	addr = vector.Get[uint64](&a, 0) + vector.Get[uint64](&b, 0)
	return
}

func opLd(cpu *Machine, op Instruction) (err error) {
	r, rmask, addr, err := cpu.address(op)
	if err != nil {
		return
	}

	err = cpu.load(r, rmask, addr)
	return
}

func opSt(cpu *Machine, op Instruction) (err error) {
	r, rmask, addr, err := cpu.address(op)
	if err != nil {
		return
	}

	err = cpu.store(r, rmask, addr)
	return
}

// relative is NP plus a signed displacement.
func (cpu *Machine) relative(imm uint32) uint64 {
	return cpu.Control(LANE_NP) + uint64(int64(int32(imm)))
}

func opLdr(cpu *Machine, op Instruction) (err error) {
	r, rmask, imm := op.Op1i()
	err = cpu.load(r, rmask, cpu.relative(imm))
	return
}

func opStr(cpu *Machine, op Instruction) (err error) {
	r, rmask, imm := op.Op1i()
	err = cpu.store(r, rmask, cpu.relative(imm))
	return
}

func opMmovb(cpu *Machine, op Instruction) (err error) {
	r, a, imm := op.Op2i()

	for i := range vector.SIZE {
		if imm&(1<<i) != 0 {
			cpu.Register[r][i] = cpu.Register[a][i]
		}
	}
	return
}

func opMswapb(cpu *Machine, op Instruction) (err error) {
	r, a, imm := op.Op2i()

	for i := range vector.SIZE {
		if imm&(1<<i) != 0 {
			cpu.Register[r][i], cpu.Register[a][i] = cpu.Register[a][i], cpu.Register[r][i]
		}
	}
	return
}

// stackLanes returns the qword lanes a stack pointer mask selects.
// Each lane must be selected by both of its dword bits.
func stackLanes(mask uint8) (lanes []int, err error) {
	for i := range 4 {
		switch (mask >> (2 * i)) & 3 {
		case 0:
		case 3:
			lanes = append(lanes, i)
		default:
			err = ErrPartialStackPointerUpdate
			return
		}
	}
	return
}

// stackLane returns the single qword lane a stack pointer mask selects.
func stackLane(mask uint8) (lane int, err error) {
	lanes, err := stackLanes(mask)
	switch {
	case err != nil:
	case len(lanes) == 0:
		err = ErrStackPointerMissing
	case len(lanes) > 1:
		err = ErrMultipleStackPointerUpdate
	default:
		lane = lanes[0]
	}
	return
}

// push stores the low size bytes of a on every selected stack. Each stack
// pointer is decremented by size, then aligned by the mask in b.uq0.
func push(size int) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, value, align, err := operands[uint64](cpu, op)
		if err != nil {
			return
		}

		lanes, err := stackLanes(rmask)
		if err != nil {
			return
		}
		if len(lanes) == 0 {
			err = ErrStackPointerMissing
			return
		}

		stack := cpu.Register[r]
		for _, lane := range lanes {
			sp := vector.Get[uint64](&stack, lane)
			sp = (sp - uint64(size)) & vector.Get[uint64](&align, 0)
			err = cpu.memory().Store(sp, value[:size])
			if err != nil {
				return
			}
			vector.Set(&stack, lane, sp)
		}

		cpu.Register[r] = stack
		return
	}
}

// pop loads size bytes from the selected stack, replicates them across the
// register, and writes the dwords selected by the a mask.
func pop(size int) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, amask, _, _ := op.Op3()

		lane, err := stackLane(rmask)
		if err != nil {
			return
		}

		sp := vector.Get[uint64](&cpu.Register[r], lane)

		var res vector.Register
		err = cpu.memory().Load(sp, res[:size])
		if err != nil {
			return
		}
		for n := size; n < vector.SIZE; n += size {
			copy(res[n:n+size], res[:size])
		}

		vector.Set(&cpu.Register[r], lane, sp+uint64(size))
		cpu.save(a, amask, &res)
		return
	}
}

func opCall(cpu *Machine, op Instruction) (err error) {
	r, rmask, imm := op.Op1i()

	lane, err := stackLane(rmask)
	if err != nil {
		return
	}

	var data [8]byte
	binary.LittleEndian.PutUint64(data[:], cpu.Control(LANE_NP))

	sp := vector.Get[uint64](&cpu.Register[r], lane) - 8
	err = cpu.memory().Store(sp, data[:])
	if err != nil {
		return
	}

	target := cpu.relative(imm)
	vector.Set(&cpu.Register[r], lane, sp)
	cpu.SetControl(LANE_NP, target)
	return
}

func opRet(cpu *Machine, op Instruction) (err error) {
	r, rmask, imm := op.Op1i()

	if imm != 0 {
		err = ErrInvalidImmediate
		return
	}

	lane, err := stackLane(rmask)
	if err != nil {
		return
	}

	var data [8]byte
	sp := vector.Get[uint64](&cpu.Register[r], lane)
	err = cpu.memory().Load(sp, data[:])
	if err != nil {
		return
	}

	vector.Set(&cpu.Register[r], lane, sp+8)
	cpu.SetControl(LANE_NP, binary.LittleEndian.Uint64(data[:]))
	return
}
