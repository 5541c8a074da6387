package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena(t *testing.T) {
	assert := assert.New(t)

	arena, err := NewArena(4096)
	require.NoError(t, err)
	defer arena.Close()

	assert.Equal(4096, arena.Size())
	assert.NotZero(arena.Base())
	assert.Equal(make([]byte, 4096), arena.Bytes())

	base := arena.Base()
	assert.NoError(arena.Store(base+16, []byte{1, 2, 3, 4}))
	assert.Equal([]byte{1, 2, 3, 4}, arena.Bytes()[16:20])

	data := make([]byte, 6)
	assert.NoError(arena.Load(base+15, data))
	assert.Equal([]byte{0, 1, 2, 3, 4, 0}, data)

	// Host memory sees the same bytes.
	assert.NoError(Host{}.Load(base+17, data[:2]))
	assert.Equal([]byte{2, 3}, data[:2])
}

func TestArenaContains(t *testing.T) {
	assert := assert.New(t)

	arena, err := NewArena(64)
	require.NoError(t, err)
	defer arena.Close()

	base := arena.Base()

	assert.True(arena.Contains(base, 64))
	assert.True(arena.Contains(base+60, 4))
	assert.True(arena.Contains(base+64, 0))
	assert.False(arena.Contains(base+61, 4))
	assert.False(arena.Contains(base-1, 1))
	assert.False(arena.Contains(base+65, 0))
	assert.False(arena.Contains(base, 65))
}

func TestArenaChecked(t *testing.T) {
	assert := assert.New(t)

	arena, err := NewArena(64)
	require.NoError(t, err)
	defer arena.Close()

	arena.Checked = true
	base := arena.Base()

	assert.NoError(arena.Store(base+32, make([]byte, 32)))

	err = arena.Store(base+33, make([]byte, 32))
	var fault *ErrFault
	assert.True(errors.As(err, &fault))
	assert.Equal(base+33, fault.Addr)
	assert.Equal(32, fault.Size)
	assert.True(fault.Store)

	err = arena.Load(base-8, make([]byte, 8))
	assert.True(errors.As(err, &fault))
	assert.False(fault.Store)
	assert.Contains(err.Error(), "8")
}

func TestArenaSize(t *testing.T) {
	assert := assert.New(t)

	_, err := NewArena(0)
	assert.ErrorIs(err, ErrArenaSize)

	arena, err := NewArena(16)
	assert.NoError(err)
	assert.NoError(arena.Close())
	assert.NoError(arena.Close())
}
