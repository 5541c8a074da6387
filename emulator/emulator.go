// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"fmt"
	"iter"
	"maps"

	"github.com/rs/zerolog"

	"github.com/ezrec/a256/cpu"
	"github.com/ezrec/a256/internal"
	"github.com/ezrec/a256/io"
	"github.com/ezrec/a256/memory"
)

// Arena layout: [code | data | stack | call stack]
const (
	ARENA_SIZE       = 0x100000 // Default arena size.
	ARENA_STACK      = 0x10000  // Data stack, below the call stack.
	ARENA_CALL_STACK = 0x1000   // Call stack, at the top of the arena.
)

var _emulator_defines = map[string]string{
	"ARENA_SIZE":       fmt.Sprintf("0x%x", ARENA_SIZE),
	"ARENA_STACK":      fmt.Sprintf("0x%x", ARENA_STACK),
	"ARENA_CALL_STACK": fmt.Sprintf("0x%x", ARENA_CALL_STACK),
}

// Emulator state. Machine + arena + program.
type Emulator struct {
	Verbose      bool           // If set, enables instruction tracing.
	Logger       zerolog.Logger // Emulator log, with component=emulator.
	*cpu.Machine                // Reference to the machine.
	Program      *cpu.Program   // Reference to the currently running program.
	Arena        *memory.Arena  // Arena holding code, data and stacks.
}

// NewEmulator maps an arena of size bytes, and creates a machine that
// executes from it. A size of 0 selects ARENA_SIZE.
func NewEmulator(size int, checked bool, sink io.Sink) (emu *Emulator, err error) {
	if size == 0 {
		size = ARENA_SIZE
	}
	if size <= ARENA_STACK+ARENA_CALL_STACK {
		err = fmt.Errorf("%w: 0x%x", ErrArenaLayout, size)
		return
	}

	arena, err := memory.NewArena(size)
	if err != nil {
		return
	}
	arena.Checked = checked

	emu = &Emulator{
		Logger:  zerolog.Nop(),
		Machine: cpu.NewMachine(arena, sink),
		Program: &cpu.Program{},
		Arena:   arena,
	}

	return
}

// SetLogger sets the emulator and machine loggers from a parent logger.
func (emu *Emulator) SetLogger(logger zerolog.Logger) {
	emu.Logger = logger.With().Str("component", "emulator").Logger()
	emu.Machine.Logger = logger.With().Str("component", "cpu").Logger()
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		cpu.Defines(),
	)
}

// Assembler returns an assembler with the emulator defines predefined.
func (emu *Emulator) Assembler() (asm *cpu.Assembler) {
	asm = &cpu.Assembler{
		Verbose: emu.Verbose,
		Logger:  emu.Logger,
		Table:   emu.Machine.Table,
	}
	for key, value := range emu.Defines() {
		asm.Predefine(key, value)
	}
	return
}

// Load assembles source, and resets the emulator to run it.
func (emu *Emulator) Load(source string) (err error) {
	prog, err := emu.Assembler().Parse(source)
	if err != nil {
		return
	}

	emu.Program = prog
	err = emu.Reset()
	return
}

// Close the emulator, and unmap its arena.
func (emu *Emulator) Close() (err error) {
	err = emu.Arena.Close()
	return
}

// Reset clears the arena and machine, copies the program to the bottom of
// the arena, and seeds the control lanes of $00.
func (emu *Emulator) Reset() (err error) {
	data := emu.Arena.Bytes()
	code := emu.Program.Binary()

	if len(code) > len(data)-ARENA_STACK-ARENA_CALL_STACK {
		err = fmt.Errorf("%w: %d bytes", ErrProgramSize, len(code))
		return
	}

	clear(data)
	copy(data, code)

	base := emu.Arena.Base()
	top := base + uint64(len(data))

	emu.Machine.Reset()
	emu.Machine.Verbose = emu.Verbose
	emu.SetControl(cpu.LANE_NP, base)
	emu.SetControl(cpu.LANE_CS, top)
	emu.SetControl(cpu.LANE_BP, top-ARENA_CALL_STACK)
	emu.SetControl(cpu.LANE_SP, top-ARENA_CALL_STACK)

	emu.Logger.Debug().
		Str("base", fmt.Sprintf("%x", base)).
		Int("size", len(data)).
		Int("code", len(code)).
		Msg("reset")

	return
}

// Index returns the program instruction index at NP, or -1 if NP is
// outside the program.
func (emu *Emulator) Index() int {
	np := emu.Control(cpu.LANE_NP)
	base := emu.Arena.Base()
	if np < base || (np-base)%cpu.INSN_SIZE != 0 {
		return -1
	}

	index := (np - base) / cpu.INSN_SIZE
	if index >= uint64(len(emu.Program.Code)) {
		return -1
	}
	return int(index)
}

// LineNo returns the current line number for the executing opcode, or 0
// if NP is outside the program.
func (emu *Emulator) LineNo() int {
	dbg, ok := emu.Program.Debug(emu.Index())
	if !ok {
		return 0
	}

	line, _ := Position(emu.Program.Source, dbg.Offset)
	return line
}

// runtime wraps err with the source position of instruction index.
func (emu *Emulator) runtime(index int, err error) error {
	rt := &ErrRuntime{Offset: -1, Err: err}

	if dbg, ok := emu.Program.Debug(index); ok {
		rt.Offset = dbg.Offset
		rt.Mnemonic = dbg.Mnemonic
		rt.LineNo, rt.Column = Position(emu.Program.Source, dbg.Offset)
	}

	return rt
}

// Tick performs a single tick of the emulator. done is set once the
// program has halted.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	index := emu.Index()

	running, err := emu.Machine.Tick()
	if err != nil {
		err = emu.runtime(index, err)
		return
	}

	if !running {
		done = true
		emu.Logger.Debug().
			Int32("exit", emu.ExitStatus).
			Int("ticks", emu.Ticks).
			Msg("halt")
	}

	return
}

// Run ticks until the program halts. If steps is positive, Run stops with
// ErrStepLimit after that many ticks.
func (emu *Emulator) Run(steps int) (err error) {
	for n := 0; steps <= 0 || n < steps; n++ {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}

	err = emu.runtime(emu.Index(), ErrStepLimit)
	return
}
