// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package vector

import (
	"math"
)

// Selector codes with a fixed meaning.
const (
	SEL_IMM      = uint8(0xfa) // Register index as 0..255
	SEL_IMM_NEG  = uint8(0xfb) // Register index as -256..-1
	SEL_IMM_HIGH = uint8(0xfc) // Register index as 256..511
	SEL_IMM_LOW  = uint8(0xfd) // Register index as -512..-257
	SEL_NOT      = uint8(0xfe) // Bitwise complement
	SEL_ALL      = uint8(0xff) // Register unchanged
)

// Round is a float rounding mode applied before conversion.
type Round int

const (
	ROUND_NEAREST = Round(0) // Nearest, halfway away from zero.
	ROUND_TRUNC   = Round(1)
	ROUND_FLOOR   = Round(2)
	ROUND_CEIL    = Round(3)
)

// Apply the rounding mode to f.
func (mode Round) Apply(f float64) float64 {
	switch mode {
	case ROUND_TRUNC:
		return math.Trunc(f)
	case ROUND_FLOOR:
		return math.Floor(f)
	case ROUND_CEIL:
		return math.Ceil(f)
	}
	return math.Round(f)
}

// Form is one assembler spelling of a selector code.
type Form struct {
	Name  string // Suffix spelling, without the leading '.'.
	Base  uint8  // Selector code of index 0.
	Limit int    // Largest lane index, or -1 if the form takes no index.
}

// Forms lists every selector spelling. The first spelling of a code is
// its canonical name.
var Forms = []Form{
	{"ub", 0x00, 31},
	{"sb", 0x20, 31},
	{"uw", 0x40, 15},
	{"sw", 0x40, 15},
	{"uws", 0x60, 15},
	{"sws", 0x70, 15},
	{"ud", 0x80, 7},
	{"sd", 0x80, 7},
	{"fs", 0x80, 7},
	{"fss", 0x88, 7},
	{"uds", 0x90, 7},
	{"sds", 0x98, 7},
	{"fsr", 0xa0, 7},
	{"fst", 0xa8, 7},
	{"fsf", 0xb0, 7},
	{"fsc", 0xb8, 7},
	{"uq", 0xc0, 3},
	{"sq", 0xc0, 3},
	{"fd", 0xc0, 3},
	{"fds", 0xc4, 3},
	{"uqs", 0xc8, 3},
	{"sqs", 0xcc, 3},
	{"fdr", 0xd0, 3},
	{"fdt", 0xd4, 3},
	{"fdf", 0xd8, 3},
	{"fdc", 0xdc, 3},
	{"dq", 0xe0, 1},
	{"zxbw", 0xe2, -1},
	{"sxbw", 0xe3, -1},
	{"zxbd", 0xe4, -1},
	{"sxbd", 0xe5, -1},
	{"zxbq", 0xe6, -1},
	{"sxbq", 0xe7, -1},
	{"zxwd", 0xe8, -1},
	{"sxwd", 0xe9, -1},
	{"zxwq", 0xea, -1},
	{"sxwq", 0xeb, -1},
	{"zxdq", 0xec, -1},
	{"sxdq", 0xed, -1},
	{"zxqdq", 0xee, -1},
	{"sxqdq", 0xef, -1},
	{"getfs", 0xf0, -1},
	{"getfd", 0xf1, -1},
	{"getub", 0xf2, -1},
	{"getsb", 0xf3, -1},
	{"getuw", 0xf4, -1},
	{"getsw", 0xf5, -1},
	{"getud", 0xf6, -1},
	{"getsd", 0xf7, -1},
	{"getuq", 0xf8, -1},
	{"getsq", 0xf9, -1},
	{"not", SEL_NOT, -1},
}

// FormOf returns the canonical spelling of a selector code, and the lane
// index for indexed forms.
func FormOf(code uint8) (form Form, index int, ok bool) {
	for _, form = range Forms {
		if form.Limit < 0 {
			if code == form.Base {
				return form, 0, true
			}
			continue
		}
		if code >= form.Base && int(code) <= int(form.Base)+form.Limit {
			return form, int(code - form.Base), true
		}
	}
	return Form{}, 0, false
}

// Decode transforms src into an operand of lane type T according to
// the selector code. regnum is the register index of src, used as the
// literal value by the immediate selectors.
func Decode[T Lane](src *Register, code uint8, regnum uint8) (res Register, err error) {
	switch code >> 5 {
	case 0:
		res = Fill(Saturate[T](Get[uint8](src, int(code%32))))
	case 1:
		res = Fill(Saturate[T](Get[int8](src, int(code%32))))
	case 2:
		if code&0x10 != 0 {
			err = ErrSelectorInvalid
			return
		}
		res = Fill(Get[uint16](src, int(code%16)))
	case 3:
		if code&0x10 != 0 {
			res = Fill(Saturate[T](Get[int16](src, int(code%16))))
		} else {
			res = Fill(Saturate[T](Get[uint16](src, int(code%16))))
		}
	case 4:
		n := int(code % 8)
		switch {
		case code&0x18 == 0x18:
			res = Fill(Saturate[T](Get[int32](src, n)))
		case code&0x10 != 0:
			res = Fill(Saturate[T](Get[uint32](src, n)))
		case code&0x08 != 0:
			res = Fill(Saturate[T](Get[float32](src, n)))
		default:
			res = Fill(Get[uint32](src, n))
		}
	case 5:
		mode := Round((code >> 3) & 3)
		value := float32(mode.Apply(float64(Get[float32](src, int(code%8)))))
		res = Fill(Saturate[T](value))
	case 6:
		n := int(code % 4)
		if code&0x10 != 0 {
			mode := Round((code >> 2) & 3)
			res = Fill(Saturate[T](mode.Apply(Get[float64](src, n))))
			break
		}
		switch {
		case code&0x0c == 0x0c:
			res = Fill(Saturate[T](Get[int64](src, n)))
		case code&0x08 != 0:
			res = Fill(Saturate[T](Get[uint64](src, n)))
		case code&0x04 != 0:
			res = Fill(Saturate[T](Get[float64](src, n)))
		default:
			res = Fill(Get[uint64](src, n))
		}
	default:
		res = decodeSpecial[T](src, code%32, regnum)
	}

	return
}

func decodeSpecial[T Lane](src *Register, code uint8, regnum uint8) (res Register) {
	switch code {
	case 0x00, 0x01:
		res = FillHalf(src, int(code))
	case 0x02:
		res = Convert[uint16, uint8](src)
	case 0x03:
		res = Convert[int16, int8](src)
	case 0x04:
		res = Convert[uint32, uint8](src)
	case 0x05:
		res = Convert[int32, int8](src)
	case 0x06:
		res = Convert[uint64, uint8](src)
	case 0x07:
		res = Convert[int64, int8](src)
	case 0x08:
		res = Convert[uint32, uint16](src)
	case 0x09:
		res = Convert[int32, int16](src)
	case 0x0a:
		res = Convert[uint64, uint16](src)
	case 0x0b:
		res = Convert[int64, int16](src)
	case 0x0c:
		res = Convert[uint64, uint32](src)
	case 0x0d:
		res = Convert[int64, int32](src)
	case 0x0e:
		Set(&res, 0, Get[uint64](src, 0))
		Set(&res, 2, Get[uint64](src, 2))
	case 0x0f:
		Set(&res, 0, Get[int64](src, 0))
		Set(&res, 1, Get[int64](src, 0)>>63)
		Set(&res, 2, Get[int64](src, 2))
		Set(&res, 3, Get[int64](src, 2)>>63)
	case 0x10:
		res = Convert[T, float32](src)
	case 0x11:
		res = Convert[T, float64](src)
	case 0x12:
		res = Convert[T, uint8](src)
	case 0x13:
		res = Convert[T, int8](src)
	case 0x14:
		res = Convert[T, uint16](src)
	case 0x15:
		res = Convert[T, int16](src)
	case 0x16:
		res = Convert[T, uint32](src)
	case 0x17:
		res = Convert[T, int32](src)
	case 0x18:
		res = Convert[T, uint64](src)
	case 0x19:
		res = Convert[T, int64](src)
	case SEL_IMM % 32:
		res = Fill(T(int64(regnum)))
	case SEL_IMM_NEG % 32:
		res = Fill(T(int64(regnum) - 256))
	case SEL_IMM_HIGH % 32:
		res = Fill(T(int64(regnum) + 256))
	case SEL_IMM_LOW % 32:
		res = Fill(T(int64(regnum) - 512))
	case SEL_NOT % 32:
		res = src.Not()
	default:
		res = *src
	}
	return
}

// Immediate returns the selector code and register index that encode the
// literal value, or ok == false if it is outside -512..511.
func Immediate(value int) (code uint8, regnum uint8, ok bool) {
	ok = true
	switch {
	case value >= 0 && value < 256:
		code = SEL_IMM
	case value >= -256 && value < 0:
		code = SEL_IMM_NEG
	case value >= 256 && value < 512:
		code = SEL_IMM_HIGH
	case value >= -512 && value < -256:
		code = SEL_IMM_LOW
	default:
		ok = false
		return
	}
	regnum = uint8(value)
	return
}
