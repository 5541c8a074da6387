package emulator

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/a256/cpu"
	"github.com/ezrec/a256/io"
	"github.com/ezrec/a256/memory"
)

func newEmulator(t *testing.T, checked bool) (emu *Emulator, rec *io.Recorder) {
	rec = &io.Recorder{}
	emu, err := NewEmulator(0x40000, checked, rec)
	require.NoError(t, err)
	t.Cleanup(func() { emu.Close() })
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, false)

	assert.False(emu.Verbose)
	assert.NotNil(emu.Machine)
	assert.Equal(0x40000, emu.Arena.Size())
	assert.False(emu.Arena.Checked)

	_, err := NewEmulator(ARENA_STACK, false, nil)
	assert.ErrorIs(err, ErrArenaLayout)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, false)

	defines := maps.Collect(emu.Defines())
	assert.Equal("0x100000", defines["ARENA_SIZE"])
	assert.Equal("0x1000", defines["ARENA_CALL_STACK"])
	assert.Equal("0x0", defines["STOP_EXIT"])
	assert.Equal("8", defines["INSN_SIZE"])

	err := emu.Load("set $01, $(ARENA_STACK + ARENA_CALL_STACK)\n")
	require.NoError(t, err)
	assert.Equal(uint32(ARENA_STACK+ARENA_CALL_STACK), emu.Program.Code[0].Imm())
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, false)

	err := emu.Load("set $01, 1\nnop\n")
	require.NoError(t, err)

	base := emu.Arena.Base()
	top := base + 0x40000

	assert.Equal(base, emu.Control(cpu.LANE_NP))
	assert.Equal(top, emu.Control(cpu.LANE_CS))
	assert.Equal(top-ARENA_CALL_STACK, emu.Control(cpu.LANE_BP))
	assert.Equal(top-ARENA_CALL_STACK, emu.Control(cpu.LANE_SP))

	binary := emu.Program.Binary()
	assert.Equal(binary, emu.Arena.Bytes()[:len(binary)])
	assert.Equal(0, emu.Index())
	assert.Equal(1, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(1, emu.Index())
	assert.Equal(2, emu.LineNo())

	// Dirty the arena, then reset.
	emu.Arena.Bytes()[0x100] = 0xff
	assert.NoError(emu.Reset())
	assert.Equal(uint8(0), emu.Arena.Bytes()[0x100])
	assert.Equal(0, emu.Ticks)
	assert.True(emu.Register[1].Zero())
}

func TestEmulatorProgramSize(t *testing.T) {
	assert := assert.New(t)

	rec := &io.Recorder{}
	emu, err := NewEmulator(ARENA_STACK+ARENA_CALL_STACK+cpu.INSN_SIZE, false, rec)
	require.NoError(t, err)
	defer emu.Close()

	assert.NoError(emu.Load(""))
	assert.ErrorIs(emu.Load("nop"), ErrProgramSize)
}

func TestEmulatorExit(t *testing.T) {
	table := [](struct {
		source string
		exit   int32
		ticks  int
	}){
		{"", 0, 1},
		{"set $01, 7\nstop $01.sd0, 0\n", 7, 2},
		{"stop -1, 0", -1, 1},
		{`
	set $01, 3
	c @double
	stop $01.sd0, 0
@double:
	addd $01, $01, $01
	r
`, 6, 5},
	}

	for _, entry := range table {
		t.Run(entry.source, func(t *testing.T) {
			assert := assert.New(t)

			emu, _ := newEmulator(t, true)
			require.NoError(t, emu.Load(entry.source))

			err := emu.Run(0)
			assert.NoError(err)
			assert.True(emu.Halted)
			assert.Equal(entry.exit, emu.ExitStatus)
			assert.Equal(entry.ticks, emu.Ticks)

			_, err = emu.Tick()
			assert.ErrorIs(err, cpu.ErrHalted)
		})
	}
}

func TestEmulatorOutput(t *testing.T) {
	assert := assert.New(t)

	emu, rec := newEmulator(t, true)
	require.NoError(t, emu.Load(`
	set $01, 5
	stop $01, $(STOP_SD)
	set $02, -2
	stop $02.sd3, $(STOP_SD)
`))

	assert.NoError(emu.Run(0))
	assert.Equal([]string{
		"[$01]:sd 5 5 5 5 5 5 5 5",
		"[$02 (bsc 0x83)]:sd -2 -2 -2 -2 -2 -2 -2 -2",
	}, rec.Lines())
}

func TestEmulatorStepLimit(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, false)
	require.NoError(t, emu.Load("nop\n@L: j @L\n"))

	err := emu.Run(100)
	assert.ErrorIs(err, ErrStepLimit)
	assert.Equal(100, emu.Ticks)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(2, rt.LineNo)
		assert.Equal(5, rt.Column)
		assert.Equal("jnzq", rt.Mnemonic)
	}
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, false)
	require.NoError(t, emu.Load("nop\n  divsd $01, $02, $03\n"))

	err := emu.Run(0)
	assert.ErrorIs(err, cpu.ErrDivideByZero)
	assert.ErrorIs(err, cpu.ErrOpcode(0))

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(6, rt.Offset)
		assert.Equal(2, rt.LineNo)
		assert.Equal(3, rt.Column)
		assert.Equal("divsd", rt.Mnemonic)
		assert.Contains(rt.Error(), "line 2:3 (divsd)")
	}
}

func TestEmulatorFault(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, true)
	require.NoError(t, emu.Load("ld $01, $SP, 0\nld $01, $CS, 0\n"))

	err := emu.Run(0)
	var fault *memory.ErrFault
	assert.True(errors.As(err, &fault))
	assert.Equal(emu.Control(cpu.LANE_CS), fault.Addr)
	assert.Equal(2, emu.Ticks)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(2, rt.LineNo)
		assert.Equal("ld", rt.Mnemonic)
	}
}

func TestEmulatorOutsideProgram(t *testing.T) {
	assert := assert.New(t)

	emu, _ := newEmulator(t, true)
	require.NoError(t, emu.Load(`
	set $01, 0xffff
	st $01.ud0, $BP, 0
	addq $NP, $BP, 0
`))

	err := emu.Run(0)
	assert.ErrorIs(err, cpu.ErrOpcodeUnknown)

	var rt *ErrRuntime
	if assert.True(errors.As(err, &rt)) {
		assert.Equal(-1, rt.Offset)
		assert.Equal(0, rt.LineNo)
	}
	assert.Equal(-1, emu.Index())
	assert.Equal(0, emu.LineNo())
}

func TestEmulatorLoop(t *testing.T) {
	if testing.Short() {
		t.Skip("long running loop")
	}

	assert := assert.New(t)

	emu, _ := newEmulator(t, false)
	require.NoError(t, emu.Load(`
#cnt 0x01000000 ; iterations
	set $01.0x93, #cnt
@SimpleLoop:
	addd $02, $02, 1
	subd $01, $01, 1
	jnzd $01.ud0, @SimpleLoop
	stop $02.sd0, 0
`))

	err := emu.Run(0)
	assert.NoError(err)
	assert.Equal(int32(0x01000000), emu.ExitStatus)
	assert.Equal(1+3*0x01000000+1, emu.Ticks)
}

func TestPosition(t *testing.T) {
	table := [](struct {
		source string
		offset int
		line   int
		column int
	}){
		{"", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"abc\ndef", 4, 2, 1},
		{"abc\ndef", 6, 2, 3},
		{"abc\n\n\nx", 6, 4, 1},
		{"abc", 10, 1, 4},
		{"abc", -1, 1, 1},
	}

	for _, entry := range table {
		assert := assert.New(t)
		line, column := Position(entry.source, entry.offset)
		assert.Equal(entry.line, line, "%q %d", entry.source, entry.offset)
		assert.Equal(entry.column, column, "%q %d", entry.source, entry.offset)
	}
}
