package cpu

import (
	"math"
	"math/bits"

	"github.com/ezrec/a256/vector"
)

type signed interface {
	int8 | int16 | int32 | int64
}

type unsigned interface {
	uint8 | uint16 | uint32 | uint64
}

type integer interface {
	signed | unsigned
}

func add[T vector.Lane](a, b T) T {
	return a + b
}

func sub[T vector.Lane](a, b T) T {
	return a - b
}

func mul[T vector.Lane](a, b T) T {
	return a * b
}

// div traps integer division by zero. Go already wraps MinInt / -1.
func div[T vector.Lane](a, b T) (q T, err error) {
	if b == 0 && !vector.KindOf[T]().Float() {
		err = ErrDivideByZero
		return
	}

	q = a / b
	return
}

// minimum and maximum propagate NaN.
func minimum[T vector.Lane](a, b T) T {
	return min(a, b)
}

func maximum[T vector.Lane](a, b T) T {
	return max(a, b)
}

func eq[T vector.Lane](a, b T) bool {
	return a == b
}

func gt[T vector.Lane](a, b T) bool {
	return a > b
}

func and(a, b uint64) uint64 {
	return a & b
}

func or(a, b uint64) uint64 {
	return a | b
}

func xor(a, b uint64) uint64 {
	return a ^ b
}

// mulh returns the upper half of the double width product.
func mulh[T integer](a, b T) T {
	kind := vector.KindOf[T]()
	width := 8 * kind.Size()

	if width < 64 {
		if kind.Signed() {
			return T((int64(a) * int64(b)) >> width)
		}
		return T((uint64(a) * uint64(b)) >> width)
	}

	hi, _ := bits.Mul64(uint64(a), uint64(b))
	if kind.Signed() {
		if a < 0 {
			hi -= uint64(b)
		}
		if b < 0 {
			hi -= uint64(a)
		}
	}

	return T(hi)
}

// lanewise applies fn to each pair of T lanes of a and b.
func lanewise[T vector.Lane](fn func(a, b T) T) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range vector.Count[T]() {
			vector.Set(&res, i, fn(vector.Get[T](&a, i), vector.Get[T](&b, i)))
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// lanewiseErr is lanewise for operations that can trap.
// Nothing is written when any lane traps.
func lanewiseErr[T vector.Lane](fn func(a, b T) (T, error)) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range vector.Count[T]() {
			var v T
			v, err = fn(vector.Get[T](&a, i), vector.Get[T](&b, i))
			if err != nil {
				return
			}
			vector.Set(&res, i, v)
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// bitwise applies fn to the raw bits of the operands decoded as T.
func bitwise[T vector.Lane](fn func(a, b uint64) uint64) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range vector.Count[uint64]() {
			vector.Set(&res, i, fn(vector.Get[uint64](&a, i), vector.Get[uint64](&b, i)))
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// compare sets every bit of the T lanes where fn holds.
func compare[T vector.Lane](fn func(a, b T) bool) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		size := vector.KindOf[T]().Size()

		var res vector.Register
		for i := range vector.Count[T]() {
			if fn(vector.Get[T](&a, i), vector.Get[T](&b, i)) {
				for n := range size {
					res[i*size+n] = 0xff
				}
			}
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// horizontal combines adjacent lane pairs: a into the low half of the
// result, b into the high half.
func horizontal[T vector.Lane](fn func(a, b T) T) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		half := vector.Count[T]() / 2

		var res vector.Register
		for i := range half {
			vector.Set(&res, i, fn(vector.Get[T](&a, 2*i), vector.Get[T](&a, 2*i+1)))
			vector.Set(&res, half+i, fn(vector.Get[T](&b, 2*i), vector.Get[T](&b, 2*i+1)))
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// cmov replaces r lanes with a lanes where the b lane is non-zero, or
// zero when zero is set.
func cmov[T vector.Lane](zero bool) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[T](cpu, op)
		if err != nil {
			return
		}

		res := cpu.Register[r]
		for i := range vector.Count[T]() {
			if (vector.Get[T](&b, i) == 0) == zero {
				vector.Set(&res, i, vector.Get[T](&a, i))
			}
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// selectLanes takes a lanes where the r selector lane is non-zero, and b
// lanes elsewhere. The whole of r is written.
func selectLanes[T vector.Lane](cpu *Machine, op Instruction) (err error) {
	r, rsel, ra, asel, rb, bsel := op.Op3()

	cond, err := vector.Decode[T](&cpu.Register[r], rsel, r)
	if err != nil {
		return
	}
	a, err := vector.Decode[T](&cpu.Register[ra], asel, ra)
	if err != nil {
		return
	}
	b, err := vector.Decode[T](&cpu.Register[rb], bsel, rb)
	if err != nil {
		return
	}

	res := b
	for i := range vector.Count[T]() {
		if vector.Get[T](&cond, i) != 0 {
			vector.Set(&res, i, vector.Get[T](&a, i))
		}
	}

	cpu.Register[r] = res
	return
}

// fma computes r = sign(sign(a) * sign(b) + sign(c)).
func fma[T vector.Lane](cpu *Machine, op Instruction) (err error) {
	r, rmask, ra, rb, rc, sign := op.Op4()

	a := vector.Sign[T](&cpu.Register[ra], sign>>2)
	b := vector.Sign[T](&cpu.Register[rb], sign>>4)
	c := vector.Sign[T](&cpu.Register[rc], sign>>6)

	var res vector.Register
	for i := range vector.Count[T]() {
		// The conversion keeps the multiply and add separately rounded.
		v := T(vector.Get[T](&a, i)*vector.Get[T](&b, i)) + vector.Get[T](&c, i)
		vector.Set(&res, i, v)
	}

	res = vector.Sign[T](&res, sign)
	cpu.save(r, rmask, &res)
	return
}

// Immediate expansions for the add immediate family.
func immFloat32(imm uint32) vector.Register {
	return vector.Fill(math.Float32frombits(imm))
}

func immFloat64(imm uint32) vector.Register {
	return vector.Fill(float64(math.Float32frombits(imm)))
}

func immPacked(imm uint32) vector.Register {
	return vector.Fill(imm)
}

func immPositive(imm uint32) vector.Register {
	return vector.Fill(uint64(imm))
}

func immNegative(imm uint32) vector.Register {
	return vector.Fill(0xffff_ffff_0000_0000 | uint64(imm))
}

// addImmediate applies fn to the r lanes and the expanded immediate.
func addImmediate[T vector.Lane](expand func(imm uint32) vector.Register, fn func(a, b T) T) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, imm := op.Op1i()

		value := expand(imm)
		res := cpu.Register[r]
		for i := range vector.Count[T]() {
			vector.Set(&res, i, fn(vector.Get[T](&res, i), vector.Get[T](&value, i)))
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// jump branches when any decoded lane is non-zero, or when all lanes are
// zero if zero is set.
func jump[T vector.Lane](zero bool) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, sel, imm := op.Op1i()

		value, err := vector.Decode[T](&cpu.Register[r], sel, r)
		if err != nil {
			return
		}

		found := false
		for i := range vector.Count[T]() {
			if vector.Get[T](&value, i) != 0 {
				found = true
				break
			}
		}

		if found != zero {
			cpu.branch(imm)
		}
		return
	}
}

func opSet(cpu *Machine, op Instruction) (err error) {
	r, rmask, imm := op.Op1i()

	res := vector.Fill(imm)
	cpu.save(r, rmask, &res)
	return
}

func opNop(cpu *Machine, op Instruction) (err error) {
	return
}
