package cpu

import (
	"github.com/holiman/uint256"

	"github.com/ezrec/a256/vector"
)

func bitsOf[U unsigned]() U {
	return U(8 * vector.KindOf[U]().Size())
}

func sll[U unsigned](v, n U) U {
	if n >= bitsOf[U]() {
		return 0
	}
	return v << n
}

func slr[U unsigned](v, n U) U {
	if n >= bitsOf[U]() {
		return 0
	}
	return v >> n
}

func sar[U unsigned](v, n U) U {
	w := bitsOf[U]()
	if n >= w {
		n = w - 1
	}

	res := v >> n
	if v>>(w-1) != 0 {
		res |= ^(^U(0) >> n)
	}
	return res
}

func rl[U unsigned](v, n U) U {
	w := bitsOf[U]()
	n %= w
	if n == 0 {
		return v
	}
	return v<<n | v>>(w-n)
}

// shift applies fn to each lane of a decoded as S, with the count from the
// matching lane of b decoded as U. The lane bits are shifted as U.
func shift[S vector.Lane, U unsigned](fn func(v, n U) U) Handler {
	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, ra, amask, rb, bmask := op.Op3()

		a, err := vector.Decode[S](&cpu.Register[ra], amask, ra)
		if err != nil {
			return
		}
		b, err := vector.Decode[U](&cpu.Register[rb], bmask, rb)
		if err != nil {
			return
		}

		var res vector.Register
		for i := range vector.Count[U]() {
			vector.Set(&res, i, fn(vector.Get[U](&a, i), vector.Get[U](&b, i)))
		}

		cpu.save(r, rmask, &res)
		return
	}
}

// wideFunc shifts a value of the given bit width, held in the low words of v.
type wideFunc func(v *uint256.Int, n uint64, width uint) uint256.Int

// truncate clears the bits of z at and above width.
func truncate(z *uint256.Int, width uint) {
	for i := width / 64; i < 4; i++ {
		z[i] = 0
	}
}

func wideSll(v *uint256.Int, n uint64, width uint) (z uint256.Int) {
	if n >= uint64(width) {
		return
	}
	z.Lsh(v, uint(n))
	truncate(&z, width)
	return
}

func wideSlr(v *uint256.Int, n uint64, width uint) (z uint256.Int) {
	if n >= uint64(width) {
		return
	}
	z.Rsh(v, uint(n))
	return
}

func wideSar(v *uint256.Int, n uint64, width uint) (z uint256.Int) {
	if n >= uint64(width) {
		n = uint64(width) - 1
	}

	// Move the sign bit to bit 255, shift, and move back.
	top := 256 - width
	z.Lsh(v, top)
	z.SRsh(&z, uint(n))
	z.Rsh(&z, top)
	return
}

func wideRl(v *uint256.Int, n uint64, width uint) (z uint256.Int) {
	n %= uint64(width)
	if n == 0 {
		z = *v
		return
	}

	var lo uint256.Int
	z.Lsh(v, uint(n))
	truncate(&z, width)
	lo.Rsh(v, width-uint(n))
	z.Or(&z, &lo)
	return
}

// shiftWide treats each width bit part of a as a single integer. The count
// for each part is the low qword of the matching part of b.
func shiftWide(width uint, fn wideFunc) Handler {
	words := int(width / 64)
	parts := 4 / words

	return func(cpu *Machine, op Instruction) (err error) {
		r, rmask, a, b, err := operands[uint64](cpu, op)
		if err != nil {
			return
		}

		var res vector.Register
		for part := range parts {
			base := part * words

			var v uint256.Int
			for w := range words {
				v[w] = vector.Get[uint64](&a, base+w)
			}

			z := fn(&v, vector.Get[uint64](&b, base), width)
			for w := range words {
				vector.Set(&res, base+w, z[w])
			}
		}

		cpu.save(r, rmask, &res)
		return
	}
}
