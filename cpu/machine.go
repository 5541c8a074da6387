// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ezrec/a256/io"
	"github.com/ezrec/a256/memory"
	"github.com/ezrec/a256/vector"
)

// REGISTERS is the size of the register file.
const REGISTERS = 256

// Control lanes of register $00, as qwords.
const (
	LANE_NP = 0 // Next instruction pointer.
	LANE_CS = 1 // Call stack pointer.
	LANE_BP = 2 // Stack base.
	LANE_SP = 3 // Stack pointer.
)

// Machine is the interpreter state of an A256 processor.
type Machine struct {
	Verbose bool           // Set to trace every instruction.
	Logger  zerolog.Logger // Trace destination.

	Memory memory.Memory // Memory for fetch, load and store. Defaults to memory.Host.
	Sink   io.Sink       // Destination of stop diagnostics. nil discards.
	Table  *Table        // Opcode table. Defaults to DefaultTable.

	Register [REGISTERS]vector.Register // Register file.

	Ticks      int   // Instructions executed.
	ExitStatus int32 // Status of the exit stop.
	Halted     bool  // Set by the exit stop.
}

// NewMachine returns a machine with a zeroed register file.
func NewMachine(mem memory.Memory, sink io.Sink) (cpu *Machine) {
	cpu = &Machine{
		Logger: zerolog.Nop(),
		Memory: mem,
		Sink:   sink,
		Table:  DefaultTable,
	}

	return
}

// Reset clears the register file, counters and halt state.
func (cpu *Machine) Reset() {
	clear(cpu.Register[:])
	cpu.Ticks = 0
	cpu.ExitStatus = 0
	cpu.Halted = false
}

// Control returns a control lane of $00.
func (cpu *Machine) Control(lane int) uint64 {
	return vector.Get[uint64](&cpu.Register[0], lane)
}

// SetControl sets a control lane of $00.
func (cpu *Machine) SetControl(lane int, value uint64) {
	vector.Set(&cpu.Register[0], lane, value)
}

// String returns the control registers and every non-zero register.
func (cpu *Machine) String() string {
	var text strings.Builder

	for n, name := range []string{"np", "cs", "bp", "sp"} {
		fmt.Fprintf(&text, "%5s: %016x\n", name, cpu.Control(n))
	}
	for n := 1; n < REGISTERS; n++ {
		if cpu.Register[n].Zero() {
			continue
		}
		fmt.Fprintf(&text, "  $%02X: %v\n", n, &cpu.Register[n])
	}

	return text.String()
}

func (cpu *Machine) memory() memory.Memory {
	if cpu.Memory == nil {
		return memory.Host{}
	}
	return cpu.Memory
}

func (cpu *Machine) sink() io.Sink {
	if cpu.Sink == nil {
		return io.Discard
	}
	return cpu.Sink
}

func (cpu *Machine) table() *Table {
	if cpu.Table == nil {
		return DefaultTable
	}
	return cpu.Table
}

// Fetch the instruction at NP.
func (cpu *Machine) Fetch() (op Instruction, err error) {
	var data [INSN_SIZE]byte

	err = cpu.memory().Load(cpu.Control(LANE_NP), data[:])
	if err != nil {
		return
	}

	op = Instruction(binary.LittleEndian.Uint64(data[:]))
	return
}

// Tick executes a single instruction.
// NP is advanced past the instruction before it is executed.
// running is false once the machine has halted.
func (cpu *Machine) Tick() (running bool, err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	np := cpu.Control(LANE_NP)
	op, err := cpu.Fetch()
	if err != nil {
		return
	}

	if cpu.Verbose {
		cpu.Logger.Debug().
			Int("tick", cpu.Ticks).
			Str("np", fmt.Sprintf("%016x", np)).
			Str("op", Disassemble(op)).
			Msg("execute")
	}

	cpu.SetControl(LANE_NP, np+INSN_SIZE)
	cpu.Ticks++

	err = cpu.Execute(op)
	if err != nil {
		return
	}

	running = !cpu.Halted
	return
}

// Execute a single instruction.
func (cpu *Machine) Execute(op Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(op), err)
		}
	}()

	entry, err := cpu.table().Decode(op.Opcode())
	if err != nil {
		return
	}

	err = entry.Handler(cpu, op)
	return
}

// save the dwords of res enabled by mask into register r.
func (cpu *Machine) save(r uint8, mask uint8, res *vector.Register) {
	reg := &cpu.Register[r]
	for i := range 8 {
		if mask&(1<<i) != 0 {
			copy(reg[i*4:i*4+4], res[i*4:i*4+4])
		}
	}
}

// operands decodes the a and b selectors of an op3 instruction as T lanes.
func operands[T vector.Lane](cpu *Machine, op Instruction) (r, rmask uint8, a, b vector.Register, err error) {
	r, rmask, ra, amask, rb, bmask := op.Op3()

	a, err = vector.Decode[T](&cpu.Register[ra], amask, ra)
	if err != nil {
		return
	}

	b, err = vector.Decode[T](&cpu.Register[rb], bmask, rb)
	return
}

// branch adds a signed displacement to NP.
func (cpu *Machine) branch(imm uint32) {
	cpu.SetControl(LANE_NP, cpu.Control(LANE_NP)+uint64(int64(int32(imm))))
}
