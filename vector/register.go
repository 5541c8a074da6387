// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/holiman/uint256"
)

// SIZE of a register in bytes.
const SIZE = 32

// Register is a 256-bit vector register.
//
// Every lane view aliases the same little-endian bytes: a value written
// through one view is visible through all others.
type Register [SIZE]byte

// Count of T lanes in a register.
func Count[T Lane]() int {
	return SIZE / KindOf[T]().Size()
}

// Get lane i of the register, viewed as T.
func Get[T Lane](r *Register, i int) (v T) {
	le := binary.LittleEndian
	switch any(v).(type) {
	case uint8:
		v = T(r[i])
	case int8:
		v = T(int8(r[i]))
	case uint16:
		v = T(le.Uint16(r[i*2:]))
	case int16:
		v = T(int16(le.Uint16(r[i*2:])))
	case uint32:
		v = T(le.Uint32(r[i*4:]))
	case int32:
		v = T(int32(le.Uint32(r[i*4:])))
	case uint64:
		v = T(le.Uint64(r[i*8:]))
	case int64:
		v = T(int64(le.Uint64(r[i*8:])))
	case float32:
		v = T(math.Float32frombits(le.Uint32(r[i*4:])))
	case float64:
		v = T(math.Float64frombits(le.Uint64(r[i*8:])))
	}
	return
}

// Set lane i of the register, viewed as T.
func Set[T Lane](r *Register, i int, v T) {
	le := binary.LittleEndian
	switch x := any(v).(type) {
	case uint8:
		r[i] = x
	case int8:
		r[i] = uint8(x)
	case uint16:
		le.PutUint16(r[i*2:], x)
	case int16:
		le.PutUint16(r[i*2:], uint16(x))
	case uint32:
		le.PutUint32(r[i*4:], x)
	case int32:
		le.PutUint32(r[i*4:], uint32(x))
	case uint64:
		le.PutUint64(r[i*8:], x)
	case int64:
		le.PutUint64(r[i*8:], uint64(x))
	case float32:
		le.PutUint32(r[i*4:], math.Float32bits(x))
	case float64:
		le.PutUint64(r[i*8:], math.Float64bits(x))
	}
}

// Fill every T lane of a register with v.
func Fill[T Lane](v T) (r Register) {
	for i := range Count[T]() {
		Set(&r, i, v)
	}
	return
}

// FillHalf replicates 128-bit half n of src into both halves.
func FillHalf(src *Register, n int) (r Register) {
	copy(r[0:16], src[n*16:n*16+16])
	copy(r[16:32], src[n*16:n*16+16])
	return
}

// Not returns the bitwise complement of the register.
func (r *Register) Not() (res Register) {
	for n, b := range r {
		res[n] = ^b
	}
	return
}

// Zero is true if every bit of the register is clear.
func (r *Register) Zero() bool {
	return *r == Register{}
}

// Uint256 returns the register as a single 256-bit integer.
func (r *Register) Uint256() (z uint256.Int) {
	for i := range z {
		z[i] = Get[uint64](r, i)
	}
	return
}

// SetUint256 stores a 256-bit integer into the register.
func (r *Register) SetUint256(z *uint256.Int) {
	for i := range z {
		Set(r, i, z[i])
	}
}

// String renders the register as qwords, most significant first.
func (r *Register) String() string {
	return fmt.Sprintf("%016x_%016x_%016x_%016x",
		Get[uint64](r, 3), Get[uint64](r, 2), Get[uint64](r, 1), Get[uint64](r, 0))
}
