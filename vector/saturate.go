package vector

import (
	"math"
)

// Saturate converts v to Out, clamping to the range of Out.
//
// Same width integers of differing signedness are copied bit for bit.
// Float to integer conversions clamp, and NaN becomes zero.
func Saturate[Out, In Lane](v In) Out {
	ki, ko := KindOf[In](), KindOf[Out]()

	switch {
	case ki == ko, ko.Float():
		return Out(v)
	case ki.Float():
		f := float64(v)
		lo, hi := ko.Min(), ko.Max()
		switch {
		case math.IsNaN(f):
			return 0
		case f < float64(lo):
			return Out(lo)
		case f >= float64(hi):
			return Out(hi)
		case ko.Signed():
			return Out(int64(f))
		}
		return Out(uint64(f))
	case ki.Size() == ko.Size():
		return Out(v)
	case ki.Signed():
		s := int64(v)
		if s < ko.Min() {
			return Out(ko.Min())
		}
		if s > 0 && uint64(s) > ko.Max() {
			return Out(ko.Max())
		}
		return Out(s)
	}

	u := uint64(v)
	if u > ko.Max() {
		return Out(ko.Max())
	}
	return Out(u)
}

// Convert the In lanes of src into Out lanes, with saturation.
//
// When Out is wider than In, the low In of each Out lane is converted.
// Otherwise each converted value is written to the low part of its
// In sized slot, and the remainder of the slot is zeroed.
func Convert[Out, In Lane](src *Register) (res Register) {
	ko, ki := KindOf[Out](), KindOf[In]()

	if ko.Size() > ki.Size() {
		ratio := ko.Size() / ki.Size()
		for i := range Count[Out]() {
			Set(&res, i, Saturate[Out](Get[In](src, i*ratio)))
		}
		return
	}

	ratio := ki.Size() / ko.Size()
	for i := range Count[In]() {
		Set(&res, i*ratio, Saturate[Out](Get[In](src, i)))
	}
	return
}
