package cpu

import (
	"encoding/hex"
	"fmt"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/a256/vector"
)

// Stop codes, carried in the immediate of the stop instruction.
const (
	STOP_EXIT   = uint32(0x00) // Halt with the exit status in sd0.
	STOP_FS     = uint32(0x01) // Print fs lanes.
	STOP_FD     = uint32(0x02) // Print fd lanes.
	STOP_UB     = uint32(0x03) // Print ub lanes.
	STOP_SB     = uint32(0x04) // Print sb lanes.
	STOP_UW     = uint32(0x05) // Print uw lanes.
	STOP_SW     = uint32(0x06) // Print sw lanes.
	STOP_UD     = uint32(0x07) // Print ud lanes.
	STOP_SD     = uint32(0x08) // Print sd lanes.
	STOP_UQ     = uint32(0x09) // Print uq lanes.
	STOP_SQ     = uint32(0x0a) // Print sq lanes.
	STOP_DUMP   = uint32(0x0b) // Print the whole register in hex.
	STOP_MEMORY = uint32(0x0c) // Hex dump of uq1 bytes at uq0.
	STOP_ASSERT = uint32(0x0d) // Fail if every lane is zero.
	STOP_TEXT   = uint32(0x0e) // Print uq1 bytes at uq0.
)

var _cpu_defines = map[string]string{
	"STOP_EXIT":   fmt.Sprintf("0x%x", STOP_EXIT),
	"STOP_FS":     fmt.Sprintf("0x%x", STOP_FS),
	"STOP_FD":     fmt.Sprintf("0x%x", STOP_FD),
	"STOP_UB":     fmt.Sprintf("0x%x", STOP_UB),
	"STOP_SB":     fmt.Sprintf("0x%x", STOP_SB),
	"STOP_UW":     fmt.Sprintf("0x%x", STOP_UW),
	"STOP_SW":     fmt.Sprintf("0x%x", STOP_SW),
	"STOP_UD":     fmt.Sprintf("0x%x", STOP_UD),
	"STOP_SD":     fmt.Sprintf("0x%x", STOP_SD),
	"STOP_UQ":     fmt.Sprintf("0x%x", STOP_UQ),
	"STOP_SQ":     fmt.Sprintf("0x%x", STOP_SQ),
	"STOP_DUMP":   fmt.Sprintf("0x%x", STOP_DUMP),
	"STOP_MEMORY": fmt.Sprintf("0x%x", STOP_MEMORY),
	"STOP_ASSERT": fmt.Sprintf("0x%x", STOP_ASSERT),
	"STOP_TEXT":   fmt.Sprintf("0x%x", STOP_TEXT),
	"INSN_SIZE":   fmt.Sprintf("%v", INSN_SIZE),
}

// Defines for the cpu
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// stopOperand renders the register and selector of a stop operand.
func stopOperand(r, sel uint8) string {
	if sel == vector.SEL_ALL {
		return fmt.Sprintf("[$%02X]", r)
	}
	return fmt.Sprintf("[$%02X (bsc 0x%x)]", r, sel)
}

type stopPrinter func(cpu *Machine, r, sel uint8) (text string, err error)

// printLanes renders the lanes of the operand decoded as T.
func printLanes[T vector.Lane](format string) stopPrinter {
	return func(cpu *Machine, r, sel uint8) (text string, err error) {
		value, err := vector.Decode[T](&cpu.Register[r], sel, r)
		if err != nil {
			return
		}

		var line strings.Builder
		fmt.Fprintf(&line, "%v:%v", stopOperand(r, sel), vector.KindOf[T]())
		for i := range vector.Count[T]() {
			line.WriteByte(' ')
			fmt.Fprintf(&line, format, vector.Get[T](&value, i))
		}
		line.WriteByte('\n')

		text = line.String()
		return
	}
}

var stopPrint = map[uint32]stopPrinter{
	STOP_FS: printLanes[float32]("%f"),
	STOP_FD: printLanes[float64]("%f"),
	STOP_UB: printLanes[uint8]("%02x"),
	STOP_SB: printLanes[int8]("%d"),
	STOP_UW: printLanes[uint16]("%04x"),
	STOP_SW: printLanes[int16]("%d"),
	STOP_UD: printLanes[uint32]("%08x"),
	STOP_SD: printLanes[int32]("%d"),
	STOP_UQ: printLanes[uint64]("%016x"),
	STOP_SQ: printLanes[int64]("%d"),
}

// MAX_SPAN is the largest memory span a stop can print.
const MAX_SPAN = 1 << 20

// span reads the uq1 bytes at address uq0 of value.
func (cpu *Machine) span(value *vector.Register) (addr uint64, data []byte, err error) {
	addr = vector.Get[uint64](value, 0)
	size := vector.Get[uint64](value, 1)
	if size > MAX_SPAN {
		err = fmt.Errorf("%w: %d", ErrSpanSize, size)
		return
	}

	data = make([]byte, size)
	err = cpu.memory().Load(addr, data)
	return
}

func opStop(cpu *Machine, op Instruction) (err error) {
	r, sel, code := op.Op1i()

	if code == STOP_EXIT {
		var value vector.Register
		value, err = vector.Decode[int32](&cpu.Register[r], sel, r)
		if err != nil {
			return
		}
		cpu.ExitStatus = vector.Get[int32](&value, 0)
		cpu.Halted = true
		return
	}

	printer, ok := stopPrint[code]
	if ok {
		var text string
		text, err = printer(cpu, r, sel)
		if err != nil {
			return
		}
		err = cpu.sink().Print(text)
		return
	}

	value, err := vector.Decode[uint64](&cpu.Register[r], sel, r)
	if err != nil {
		return
	}

	switch code {
	case STOP_DUMP:
		err = cpu.sink().Print(fmt.Sprintf("%v %016x%016x%016x%016x\n",
			stopOperand(r, sel),
			vector.Get[uint64](&value, 3), vector.Get[uint64](&value, 2),
			vector.Get[uint64](&value, 1), vector.Get[uint64](&value, 0)))
	case STOP_MEMORY:
		var addr uint64
		var data []byte
		addr, data, err = cpu.span(&value)
		if err != nil {
			return
		}
		err = cpu.sink().Print(fmt.Sprintf("%v:memory %016x %d\n%v",
			stopOperand(r, sel), addr, len(data), hex.Dump(data)))
	case STOP_ASSERT:
		if value.Zero() {
			err = ErrAssertion
		}
	case STOP_TEXT:
		var data []byte
		_, data, err = cpu.span(&value)
		if err != nil {
			return
		}
		err = cpu.sink().Print(string(data))
	default:
		err = fmt.Errorf("%w: 0x%x", ErrStopCode, code)
	}

	return
}
