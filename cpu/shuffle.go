package cpu

import (
	"github.com/ezrec/a256/vector"
)

// opShufb gathers bytes of a by the indices in b. An index with bit 7
// set yields zero.
func opShufb(cpu *Machine, op Instruction) (err error) {
	r, rmask, a, b, err := operands[uint8](cpu, op)
	if err != nil {
		return
	}

	var res vector.Register
	for i, idx := range b {
		if idx&0x80 == 0 {
			res[i] = a[idx&31]
		}
	}

	cpu.save(r, rmask, &res)
	return
}

// opShufbx gathers bytes from four sources by the indices in arg0.
// Index bits 5..6 pick the source from arg4, arg3, arg2, arg1, and bits
// 0..4 the byte. An index with bit 7 set yields zero.
func opShufbx(cpu *Machine, op Instruction) (err error) {
	r, arg := op.Op6()

	index := cpu.Register[arg[0]]
	var source [4]vector.Register
	for n := range source {
		source[n] = cpu.Register[arg[4-n]]
	}

	var res vector.Register
	for i, idx := range index {
		if idx&0x80 == 0 {
			res[i] = source[(idx>>5)&3][idx&31]
		}
	}

	cpu.Register[r] = res
	return
}

// unpack interleaves the size byte elements of the low halves of a and b.
func unpack[T vector.Lane](size int) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range 16 / size {
			copy(res[(2*i)*size:(2*i+1)*size], a[i*size:(i+1)*size])
			copy(res[(2*i+1)*size:(2*i+2)*size], b[i*size:(i+1)*size])
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// pack gathers the even (high == 0) or odd (high == 1) size byte elements
// of a into the low half of the result, and those of b into the high half.
func pack[T vector.Lane](size int, high int) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range 16 / size {
			n := 2*i + high
			copy(res[i*size:(i+1)*size], a[n*size:(n+1)*size])
			copy(res[16+i*size:16+(i+1)*size], b[n*size:(n+1)*size])
		}

		cpu.save(r, rmask, &res)
		return
	}
}
