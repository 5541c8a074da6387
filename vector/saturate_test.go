package vector

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bigOf returns v as an exact big.Float.
func bigOf[T Lane](v T) *big.Float {
	k := KindOf[T]()
	switch {
	case k.Float():
		return new(big.Float).SetFloat64(float64(v))
	case k.Signed():
		return new(big.Float).SetInt64(int64(v))
	}
	return new(big.Float).SetUint64(uint64(v))
}

// referenceSaturate is a slow, exact model of Saturate.
func referenceSaturate[Out, In Lane](v In) Out {
	ki, ko := KindOf[In](), KindOf[Out]()
	if ki == ko || ko.Float() {
		return Out(v)
	}
	if !ki.Float() && ki.Size() == ko.Size() {
		return Out(v)
	}
	if ki.Float() && math.IsNaN(float64(v)) {
		return 0
	}

	bv := bigOf(v)
	lo := new(big.Float).SetInt64(ko.Min())
	hi := new(big.Float).SetUint64(ko.Max())
	switch {
	case bv.Cmp(lo) < 0:
		return Out(ko.Min())
	case bv.Cmp(hi) > 0:
		return Out(ko.Max())
	case ko.Signed():
		i, _ := bv.Int64()
		return Out(i)
	}
	u, _ := bv.Uint64()
	return Out(u)
}

func checkSaturate[Out, In Lane](t *testing.T, v In) {
	got := Saturate[Out](v)
	want := referenceSaturate[Out](v)
	if KindOf[Out]().Float() && got != got && want != want {
		return
	}
	assert.Equal(t, want, got, "%v(%v) -> %v", KindOf[In](), v, KindOf[Out]())
}

func saturateAll[In Lane](t *testing.T, v In) {
	checkSaturate[uint8](t, v)
	checkSaturate[int8](t, v)
	checkSaturate[uint16](t, v)
	checkSaturate[int16](t, v)
	checkSaturate[uint32](t, v)
	checkSaturate[int32](t, v)
	checkSaturate[uint64](t, v)
	checkSaturate[int64](t, v)
	checkSaturate[float32](t, v)
	checkSaturate[float64](t, v)
}

func TestSaturatePairs(t *testing.T) {
	ints := []int64{
		0, 1, -1, 2, -2,
		math.MaxInt8, math.MinInt8, math.MaxUint8, math.MaxUint8 + 1,
		math.MaxInt16, math.MinInt16, math.MaxUint16, math.MaxUint16 + 1,
		math.MaxInt32, math.MinInt32, math.MaxUint32, math.MaxUint32 + 1,
		math.MaxInt64, math.MinInt64,
		-300, 300, 70000, -70000, 5_000_000_000,
	}
	for _, v := range ints {
		saturateAll(t, int8(v))
		saturateAll(t, uint8(v))
		saturateAll(t, int16(v))
		saturateAll(t, uint16(v))
		saturateAll(t, int32(v))
		saturateAll(t, uint32(v))
		saturateAll(t, int64(v))
		saturateAll(t, uint64(v))
	}
	saturateAll(t, uint64(math.MaxUint64))

	floats := []float64{
		0, 0.5, -0.5, 1.5, -1.5, 127.9, -128.9, 255.5, 256, -129,
		65535.9, 1e10, -1e10, 1e20, -1e20,
		math.Ldexp(1, 63), math.Ldexp(1, 64), -math.Ldexp(1, 63),
		math.Ldexp(1, 63) - 1024,
		math.Inf(1), math.Inf(-1), math.NaN(),
	}
	for _, v := range floats {
		saturateAll(t, v)
		saturateAll(t, float32(v))
	}
}

func TestSaturateExamples(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint8(255), Saturate[uint8](int16(300)))
	assert.Equal(uint8(0), Saturate[uint8](int16(-300)))
	assert.Equal(int8(-128), Saturate[int8](int32(-300)))
	assert.Equal(int8(127), Saturate[int8](uint64(1000)))
	assert.Equal(uint16(65535), Saturate[uint16](uint64(70000)))
	assert.Equal(int32(math.MaxInt32), Saturate[int32](float32(3e9)))
	assert.Equal(int32(-3), Saturate[int32](float64(-3.9)))
	assert.Equal(uint64(0), Saturate[uint64](float64(-1)))
	assert.Equal(uint64(math.MaxUint64), Saturate[uint64](math.Inf(1)))
	assert.Equal(int8(0), Saturate[int8](math.NaN()))
	assert.Equal(float32(7), Saturate[float32](int32(7)))
	assert.Equal(float64(-1), Saturate[float64](int8(-1)))

	// Same width signedness changes are bit copies.
	assert.Equal(uint8(255), Saturate[uint8](int8(-1)))
	assert.Equal(int8(-56), Saturate[int8](uint8(200)))
	assert.Equal(int64(-1), Saturate[int64](uint64(math.MaxUint64)))
	assert.Equal(uint32(0x80000000), Saturate[uint32](int32(math.MinInt32)))
}

func TestConvert(t *testing.T) {
	assert := assert.New(t)

	var src Register
	for n := range src {
		src[n] = uint8(0x80 + n)
	}

	zx := Convert[uint16, uint8](&src)
	sx := Convert[int16, int8](&src)
	for i := range 16 {
		assert.Equal(uint16(0x80+2*i), Get[uint16](&zx, i))
		assert.Equal(int16(int8(0x80+2*i)), Get[int16](&sx, i))
	}

	zxq := Convert[uint64, uint8](&src)
	assert.Equal(uint64(0x80), Get[uint64](&zxq, 0))
	assert.Equal(uint64(0x98), Get[uint64](&zxq, 3))

	// Narrowing keeps the source stride and zeroes the rest of each slot.
	var wide Register
	Set(&wide, 0, int32(1000))
	Set(&wide, 1, int32(-1000))
	Set(&wide, 2, int32(5))
	narrow := Convert[int8, int32](&wide)
	assert.Equal(int8(127), Get[int8](&narrow, 0))
	assert.Equal(uint8(0), Get[uint8](&narrow, 1))
	assert.Equal(uint8(0), Get[uint8](&narrow, 3))
	assert.Equal(int8(-128), Get[int8](&narrow, 4))
	assert.Equal(int8(5), Get[int8](&narrow, 8))

	// Same width converts lane by lane.
	var fs Register
	Set(&fs, 0, float32(2.75))
	Set(&fs, 7, float32(-1e20))
	sd := Convert[int32, float32](&fs)
	assert.Equal(int32(2), Get[int32](&sd, 0))
	assert.Equal(int32(math.MinInt32), Get[int32](&sd, 7))
}

func FuzzSaturate(f *testing.F) {
	f.Add(int64(0), float64(0))
	f.Add(int64(-129), float64(1e19))
	f.Add(int64(math.MaxInt64), math.Inf(-1))

	f.Fuzz(func(t *testing.T, iv int64, fv float64) {
		saturateAll(t, iv)
		saturateAll(t, uint64(iv))
		saturateAll(t, int16(iv))
		saturateAll(t, fv)
		saturateAll(t, float32(fv))
	})
}
