package vector

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
)

func TestRegisterViews(t *testing.T) {
	assert := assert.New(t)

	var r Register
	Set(&r, 0, uint32(0x44332211))
	assert.Equal(uint8(0x11), Get[uint8](&r, 0))
	assert.Equal(uint8(0x44), Get[uint8](&r, 3))
	assert.Equal(uint16(0x2211), Get[uint16](&r, 0))
	assert.Equal(uint16(0x4433), Get[uint16](&r, 1))
	assert.Equal(uint64(0x44332211), Get[uint64](&r, 0))

	Set(&r, 31, int8(-2))
	assert.Equal(uint8(0xfe), Get[uint8](&r, 31))
	assert.Equal(int16(-512), Get[int16](&r, 15))
	assert.Equal(int64(-0x200_0000_0000_0000), Get[int64](&r, 3))

	Set(&r, 1, float32(1.5))
	assert.Equal(math.Float32bits(1.5), Get[uint32](&r, 1))
	assert.Equal(float32(1.5), Get[float32](&r, 1))

	Set(&r, 2, float64(-2.25))
	assert.Equal(float64(-2.25), Get[float64](&r, 2))
	assert.Equal(math.Float64bits(-2.25), Get[uint64](&r, 2))
}

func TestRegisterCount(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(32, Count[uint8]())
	assert.Equal(32, Count[int8]())
	assert.Equal(16, Count[int16]())
	assert.Equal(8, Count[float32]())
	assert.Equal(8, Count[uint32]())
	assert.Equal(4, Count[float64]())
	assert.Equal(4, Count[int64]())
}

func TestRegisterFill(t *testing.T) {
	assert := assert.New(t)

	r := Fill(uint16(0xbeef))
	for i := range 16 {
		assert.Equal(uint16(0xbeef), Get[uint16](&r, i))
	}
	assert.Equal(uint32(0xbeefbeef), Get[uint32](&r, 7))

	var src Register
	for n := range src {
		src[n] = uint8(n)
	}
	half := FillHalf(&src, 1)
	assert.Equal(uint8(16), half[0])
	assert.Equal(uint8(31), half[15])
	assert.Equal(uint8(16), half[16])
	assert.Equal(uint8(31), half[31])
}

func TestRegisterNot(t *testing.T) {
	assert := assert.New(t)

	var r Register
	assert.True(r.Zero())
	n := r.Not()
	assert.False(n.Zero())
	assert.Equal(Fill(uint64(math.MaxUint64)), n)
}

func TestRegisterUint256(t *testing.T) {
	assert := assert.New(t)

	var r Register
	Set(&r, 0, uint64(1))
	Set(&r, 3, uint64(0x8000_0000_0000_0000))

	z := r.Uint256()
	assert.Equal(uint256.Int{1, 0, 0, 0x8000_0000_0000_0000}, z)

	z.Lsh(&z, 1)
	r.SetUint256(&z)
	assert.Equal(uint64(2), Get[uint64](&r, 0))
	assert.Equal(uint64(0), Get[uint64](&r, 3))

	assert.Equal("0000000000000000_0000000000000000_0000000000000000_0000000000000002", r.String())
}

func TestKind(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		kind   Kind
		name   string
		size   int
		signed bool
		float  bool
	}{
		{KindOf[uint8](), "ub", 1, false, false},
		{KindOf[int8](), "sb", 1, true, false},
		{KindOf[uint16](), "uw", 2, false, false},
		{KindOf[int16](), "sw", 2, true, false},
		{KindOf[uint32](), "ud", 4, false, false},
		{KindOf[int32](), "sd", 4, true, false},
		{KindOf[uint64](), "uq", 8, false, false},
		{KindOf[int64](), "sq", 8, true, false},
		{KindOf[float32](), "fs", 4, false, true},
		{KindOf[float64](), "fd", 8, false, true},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.kind.String())
		assert.Equal(entry.size, entry.kind.Size(), entry.name)
		assert.Equal(entry.signed, entry.kind.Signed(), entry.name)
		assert.Equal(entry.float, entry.kind.Float(), entry.name)
	}

	assert.Equal("Kind(10)", Kind(10).String())
}
