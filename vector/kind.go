// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"math"
)

// Lane is the set of numeric types a register can be viewed as.
type Lane interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | float32 | float64
}

// Kind identifies a lane view of a register.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_UB = Kind(0) // ub
	KIND_SB = Kind(1) // sb
	KIND_UW = Kind(2) // uw
	KIND_SW = Kind(3) // sw
	KIND_UD = Kind(4) // ud
	KIND_SD = Kind(5) // sd
	KIND_UQ = Kind(6) // uq
	KIND_SQ = Kind(7) // sq
	KIND_FS = Kind(8) // fs
	KIND_FD = Kind(9) // fd
)

// KindOf returns the lane kind of T.
func KindOf[T Lane]() Kind {
	var v T
	switch any(v).(type) {
	case uint8:
		return KIND_UB
	case int8:
		return KIND_SB
	case uint16:
		return KIND_UW
	case int16:
		return KIND_SW
	case uint32:
		return KIND_UD
	case int32:
		return KIND_SD
	case uint64:
		return KIND_UQ
	case int64:
		return KIND_SQ
	case float32:
		return KIND_FS
	}
	return KIND_FD
}

// Size of a lane in bytes.
func (k Kind) Size() int {
	switch k {
	case KIND_UB, KIND_SB:
		return 1
	case KIND_UW, KIND_SW:
		return 2
	case KIND_UD, KIND_SD, KIND_FS:
		return 4
	}
	return 8
}

// Float is true for the floating point kinds.
func (k Kind) Float() bool {
	return k == KIND_FS || k == KIND_FD
}

// Signed is true for signed integer kinds.
func (k Kind) Signed() bool {
	switch k {
	case KIND_SB, KIND_SW, KIND_SD, KIND_SQ:
		return true
	}
	return false
}

// Min is the smallest integer value of the kind.
func (k Kind) Min() int64 {
	switch k {
	case KIND_SB:
		return math.MinInt8
	case KIND_SW:
		return math.MinInt16
	case KIND_SD:
		return math.MinInt32
	case KIND_SQ:
		return math.MinInt64
	}
	return 0
}

// Max is the largest integer value of the kind.
func (k Kind) Max() uint64 {
	switch k {
	case KIND_UB:
		return math.MaxUint8
	case KIND_SB:
		return math.MaxInt8
	case KIND_UW:
		return math.MaxUint16
	case KIND_SW:
		return math.MaxInt16
	case KIND_UD:
		return math.MaxUint32
	case KIND_SD:
		return math.MaxInt32
	case KIND_UQ:
		return math.MaxUint64
	case KIND_SQ:
		return math.MaxInt64
	}
	return 0
}
