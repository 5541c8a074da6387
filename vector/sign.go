package vector

// Sign manipulator bits.
const (
	SIGN_ABS = uint8(1 << 0) // Absolute value.
	SIGN_NEG = uint8(1 << 1) // Negate, after SIGN_ABS.
)

// Sign applies the 2-bit sign manipulator code to every T lane of src.
// Integer minimums wrap.
func Sign[T Lane](src *Register, code uint8) (res Register) {
	res = *src
	if code&(SIGN_ABS|SIGN_NEG) == 0 {
		return
	}

	for i := range Count[T]() {
		v := Get[T](src, i)
		if code&SIGN_ABS != 0 && v < 0 {
			v = -v
		}
		if code&SIGN_NEG != 0 {
			v = -v
		}
		Set(&res, i, v)
	}

	return
}
