// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"maps"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/a256/vector"
)

// relocation is an immediate resolved after the whole source is read.
type relocation struct {
	index  int    // Instruction index.
	target string // Label or constant name, with its '@' or '#'.
	offset int    // Source offset of the reference.
}

// Assembler is a single pass assembler for the A256 instruction set.
type Assembler struct {
	Verbose bool           // If set, logs each emitted instruction.
	Logger  zerolog.Logger // Destination of verbose logging.
	Table   *Table         // Opcode table. Defaults to DefaultTable.

	predefine map[string]string // Predefines, visible to $(...) expressions.

	source   string
	pos      int
	code     []Instruction
	offset   []int
	label    map[string]int
	constant map[string]uint32
	reloc    []relocation
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) table() *Table {
	if asm.Table == nil {
		return DefaultTable
	}
	return asm.Table
}

// syntax wraps err with a source offset.
func (asm *Assembler) syntax(offset int, err error) error {
	return &ErrSyntax{Offset: offset, Err: err}
}

func (asm *Assembler) eof() bool {
	return asm.pos >= len(asm.source)
}

func (asm *Assembler) peek() byte {
	if asm.eof() {
		return 0
	}
	return asm.source[asm.pos]
}

// skipSpace skips all whitespace, including line ends.
func (asm *Assembler) skipSpace() {
	for !asm.eof() {
		switch asm.peek() {
		case ' ', '\t', '\r', '\n':
			asm.pos++
		default:
			return
		}
	}
}

// skipBlank skips whitespace within a line.
func (asm *Assembler) skipBlank() {
	for !asm.eof() {
		switch asm.peek() {
		case ' ', '\t':
			asm.pos++
		default:
			return
		}
	}
}

// endOfStatement is true at the end of input, a line end, or a comment.
func (asm *Assembler) endOfStatement() bool {
	switch asm.peek() {
	case 0, '\n', '\r', ';':
		return true
	}
	return false
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexValue(c byte) (value uint8, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return
}

// unexpected reports the character at the current position.
func (asm *Assembler) unexpected() error {
	if asm.eof() {
		return asm.syntax(asm.pos, ErrEndOfInput)
	}
	return asm.syntax(asm.pos, fmt.Errorf("%w: %q", ErrUnexpectedChar, asm.peek()))
}

// expect skips blanks, then consumes c.
func (asm *Assembler) expect(c byte) (err error) {
	asm.skipBlank()
	if asm.peek() != c || asm.eof() {
		return asm.unexpected()
	}
	asm.pos++
	return
}

// word reads a run of lowercase letters.
func (asm *Assembler) word() string {
	start := asm.pos
	for isLower(asm.peek()) {
		asm.pos++
	}
	return asm.source[start:asm.pos]
}

// symbol reads a label or constant name. Names run to whitespace, ',',
// ';' or ':'.
func (asm *Assembler) symbol() (name string, err error) {
	start := asm.pos
	asm.pos++ // '@' or '#'
	for !asm.eof() {
		switch asm.peek() {
		case ' ', '\t', '\r', '\n', ',', ';', ':':
		default:
			asm.pos++
			continue
		}
		break
	}

	if asm.pos == start+1 {
		err = asm.unexpected()
		return
	}

	name = asm.source[start:asm.pos]
	return
}

// number reads an unsigned decimal (up to 19 digits) or 0x hex (up to
// 16 digits) number.
func (asm *Assembler) number() (value uint64, err error) {
	start := asm.pos

	base := 10
	limit := 19
	check := isDigit
	if strings.HasPrefix(asm.source[asm.pos:], "0x") || strings.HasPrefix(asm.source[asm.pos:], "0X") {
		asm.pos += 2
		base = 16
		limit = 16
		check = func(c byte) bool {
			_, ok := hexValue(c)
			return ok
		}
	}

	digits := asm.pos
	for !asm.eof() && check(asm.peek()) {
		asm.pos++
	}

	switch {
	case asm.pos == digits:
		err = asm.syntax(start, ErrNumberEmpty)
		return
	case asm.pos-digits > limit:
		err = asm.syntax(start, ErrNumberTooBig)
		return
	}

	value, err = strconv.ParseUint(asm.source[digits:asm.pos], base, 64)
	if err != nil {
		err = asm.syntax(start, fmt.Errorf("%w: %v", ErrNumberTooBig, err))
	}
	return
}

// signed reads an optionally negative number in the range [min, max].
func (asm *Assembler) signed(min, max int64) (value int64, err error) {
	asm.skipBlank()
	start := asm.pos

	negative := false
	if asm.peek() == '-' {
		negative = true
		asm.pos++
	}

	if asm.peek() == '\'' {
		var chars uint32
		chars, err = asm.character()
		value = int64(chars)
	} else {
		var num uint64
		num, err = asm.number()
		if num > math.MaxInt64 {
			err = asm.syntax(start, ErrImmediateRange)
		}
		value = int64(num)
	}
	if err != nil {
		return
	}

	if negative {
		value = -value
	}

	if value < min || value > max {
		err = asm.syntax(start, fmt.Errorf("%w: %d", ErrImmediateRange, value))
	}
	return
}

var charEscape = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'0':  0,
	'e':  0x1b,
	'a':  0x07,
	'b':  0x08,
	'f':  0x0c,
	'v':  0x0b,
}

// character reads a quoted literal of up to four bytes. The first
// character is the lowest byte.
func (asm *Assembler) character() (value uint32, err error) {
	start := asm.pos
	asm.pos++ // '\''

	count := 0
	for {
		if asm.eof() {
			err = asm.syntax(asm.pos, ErrEndOfInput)
			return
		}

		c := asm.peek()
		asm.pos++
		if c == '\'' {
			break
		}

		if c == '\\' {
			if asm.eof() {
				err = asm.syntax(asm.pos, ErrEndOfInput)
				return
			}
			escape := asm.pos - 1
			e := asm.peek()
			asm.pos++
			if e == 'x' {
				hi, hok := hexValue(asm.peek())
				if hok {
					asm.pos++
				}
				lo, lok := hexValue(asm.peek())
				if !hok || !lok {
					err = asm.syntax(escape, ErrCharEscape)
					return
				}
				asm.pos++
				c = hi<<4 | lo
			} else {
				var ok bool
				c, ok = charEscape[e]
				if !ok {
					err = asm.syntax(escape, fmt.Errorf("%w: \\%c", ErrCharEscape, e))
					return
				}
			}
		}

		if count == 4 {
			err = asm.syntax(start, ErrNumberTooBig)
			return
		}
		value |= uint32(c) << (8 * count)
		count++
	}

	if count == 0 {
		err = asm.syntax(start, ErrNumberEmpty)
	}
	return
}

// starlarkValue converts an equate to a starlark value.
func starlarkValue(text string) starlark.Value {
	if v, err := strconv.ParseInt(text, 0, 64); err == nil {
		return starlark.MakeInt64(v)
	}
	if v, err := strconv.ParseUint(text, 0, 64); err == nil {
		return starlark.MakeUint64(v)
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		return starlark.Float(v)
	}
	return starlark.String(text)
}

// expression evaluates $(...) at compile time.
func (asm *Assembler) expression() (value uint32, err error) {
	start := asm.pos
	asm.pos += 2 // "$("

	depth := 1
	body := asm.pos
	for depth > 0 {
		if asm.eof() {
			err = asm.syntax(asm.pos, ErrEndOfInput)
			return
		}
		switch asm.peek() {
		case '(':
			depth++
		case ')':
			depth--
		}
		asm.pos++
	}
	expr := asm.source[body : asm.pos-1]

	pred := starlark.StringDict{}
	for key, str := range Defines() {
		pred[key] = starlarkValue(str)
	}
	for key, str := range asm.predefine {
		pred[key] = starlarkValue(str)
	}
	for key, val := range asm.constant {
		pred[key[1:]] = starlark.MakeUint64(uint64(val))
	}

	thread := starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(1 << 16)
	opts := syntax.FileOptions{}
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "expr", "rc="+expr+"\n", pred)
	if serr != nil {
		err = asm.syntax(start, fmt.Errorf("%w: %v", ErrParseExpression, serr))
		return
	}

	switch rc := dict["rc"].(type) {
	case starlark.Int:
		v, ok := rc.Int64()
		if !ok || v < math.MinInt32 || v > math.MaxUint32 {
			err = asm.syntax(start, fmt.Errorf("%w: %v", ErrImmediateRange, rc))
			return
		}
		value = uint32(v)
	case starlark.Float:
		value = math.Float32bits(float32(rc))
	default:
		err = asm.syntax(start, fmt.Errorf("%w: %v", ErrParseExpression, expr))
	}
	return
}

// immediate range modes
const (
	immModeAny = iota
	immModePositive
	immModeNegative
)

// imm32 reads a 32-bit immediate. Label and constant references are
// recorded for the relocation pass when reloc is set.
func (asm *Assembler) imm32(mode int, reloc bool) (value uint32, err error) {
	asm.skipBlank()
	start := asm.pos
	c := asm.peek()

	if mode == immModeNegative && c != '-' {
		err = asm.unexpected()
		return
	}

	switch {
	case c == '@' || c == '#':
		if !reloc {
			err = asm.unexpected()
			return
		}
		var name string
		name, err = asm.symbol()
		if err != nil {
			return
		}
		asm.reloc = append(asm.reloc, relocation{index: len(asm.code), target: name, offset: start})
	case c == '\'':
		value, err = asm.character()
	case c == '$':
		if !strings.HasPrefix(asm.source[asm.pos:], "$(") {
			err = asm.unexpected()
			return
		}
		value, err = asm.expression()
	case c == '-':
		if mode == immModePositive {
			err = asm.unexpected()
			return
		}
		asm.pos++
		var num uint64
		num, err = asm.number()
		if err != nil {
			return
		}
		if num == 0 || num > 1<<32 {
			err = asm.syntax(start, fmt.Errorf("%w: -%d", ErrImmediateRange, num))
			return
		}
		value = uint32(-int64(num))
	case isDigit(c):
		var num uint64
		num, err = asm.number()
		if err != nil {
			return
		}
		if num > math.MaxUint32 {
			err = asm.syntax(start, fmt.Errorf("%w: %d", ErrImmediateRange, num))
			return
		}
		value = uint32(num)
	default:
		err = asm.unexpected()
	}

	return
}

// register reads '$' and a register name. control is the $00 lane of an
// $NP, $CS, $BP or $SP alias, and -1 otherwise.
func (asm *Assembler) register() (r uint8, control int, err error) {
	control = -1
	err = asm.expect('$')
	if err != nil {
		return
	}

	start := asm.pos - 1
	if len(asm.source)-asm.pos < 2 {
		err = asm.syntax(start, ErrRegisterInvalid)
		return
	}

	name := asm.source[start : asm.pos+2]
	for lane, alias := range controlNames {
		if name == alias {
			asm.pos += 2
			control = lane
			return
		}
	}

	hi, hok := hexValue(asm.source[asm.pos])
	lo, lok := hexValue(asm.source[asm.pos+1])
	if !hok || !lok {
		err = asm.syntax(start, fmt.Errorf("%w: %v", ErrRegisterInvalid, name))
		return
	}
	asm.pos += 2

	r = hi<<4 | lo
	return
}

// bare reads a register without a suffix.
func (asm *Assembler) bare() (r uint8, err error) {
	start := asm.pos
	r, control, err := asm.register()
	if err == nil && control >= 0 {
		err = asm.syntax(start, ErrRegisterInvalid)
	}
	return
}

// index reads the lane index of a suffix, up to limit.
func (asm *Assembler) index(limit int) (n int, err error) {
	start := asm.pos
	num, err := asm.number()
	if err != nil {
		return
	}
	if num > uint64(limit) {
		err = asm.syntax(start, fmt.Errorf("%w: %d > %d", ErrSelectorRange, num, limit))
		return
	}
	n = int(num)
	return
}

// mask reads a register and its result mask.
func (asm *Assembler) mask() (r, mask uint8, err error) {
	r, control, err := asm.register()
	if err != nil {
		return
	}

	if control >= 0 {
		mask = 3 << (2 * control)
		return
	}

	mask = 0xff
	if asm.peek() != '.' {
		return
	}
	asm.pos++

	start := asm.pos
	if isDigit(asm.peek()) {
		var num uint64
		num, err = asm.number()
		if err != nil {
			return
		}
		if num > 0xff {
			err = asm.syntax(start, fmt.Errorf("%w: %d", ErrImmediateRange, num))
			return
		}
		mask = uint8(num)
		return
	}

	var n int
	switch name := asm.word(); name {
	case "ud", "sd", "fs":
		n, err = asm.index(7)
		mask = 1 << n
	case "uq", "sq", "fd":
		n, err = asm.index(3)
		mask = 3 << (2 * n)
	case "dq":
		n, err = asm.index(1)
		mask = 0x0f << (4 * n)
	default:
		err = asm.syntax(start, fmt.Errorf("%w: .%v", ErrSelectorUnknown, name))
	}

	return
}

// selector reads a register with a scalarity selector, or a literal
// encoded as an immediate selector.
func (asm *Assembler) selector() (r, code uint8, err error) {
	asm.skipBlank()
	start := asm.pos

	if asm.peek() != '$' {
		var value int64
		value, err = asm.signed(-512, 511)
		if err != nil {
			return
		}
		code, r, _ = vector.Immediate(int(value))
		return
	}

	r, control, err := asm.register()
	if err != nil {
		return
	}

	if control >= 0 {
		code = 0xc0 + uint8(control)
		return
	}

	code = vector.SEL_ALL
	if asm.peek() != '.' {
		return
	}
	asm.pos++

	name := asm.word()
	for _, form := range vector.Forms {
		if form.Name != name {
			continue
		}
		if form.Limit < 0 {
			code = form.Base
			return
		}
		var n int
		n, err = asm.index(form.Limit)
		code = form.Base + uint8(n)
		return
	}

	err = asm.syntax(start, fmt.Errorf("%w: .%v", ErrSelectorUnknown, name))
	return
}

// sign reads a sign manipulator spelling.
func (asm *Assembler) sign() (sign uint8, err error) {
	rest := asm.source[asm.pos:]
	switch {
	case strings.HasPrefix(rest, "-abs"):
		asm.pos += 4
		sign = vector.SIGN_NEG | vector.SIGN_ABS
	case strings.HasPrefix(rest, "-"):
		asm.pos += 1
		sign = vector.SIGN_NEG
	case strings.HasPrefix(rest, "abs"):
		asm.pos += 3
		sign = vector.SIGN_ABS
	default:
		err = asm.unexpected()
	}
	return
}

// packed reads count comma separated immediates of the given width,
// most significant first.
func (asm *Assembler) packed(count int, bits int) (value uint32, err error) {
	limit := int64(1) << bits
	for range count {
		err = asm.expect(',')
		if err != nil {
			return
		}
		var part int64
		part, err = asm.signed(-limit, limit-1)
		if err != nil {
			return
		}
		value = value<<bits | uint32(part)&uint32(limit-1)
	}
	return
}

// operands reads the operands of shape, and encodes the instruction.
func (asm *Assembler) operands(opcode Opcode, shape Shape) (op Instruction, err error) {
	switch shape {
	case SHAPE_EMPTY:
		op = MakeOp0(opcode)
	case SHAPE_R1I32, SHAPE_R1I32P, SHAPE_R1I32N:
		var r, mask uint8
		var imm uint32
		if r, mask, err = asm.mask(); err != nil {
			return
		}
		if err = asm.expect(','); err != nil {
			return
		}
		mode := immModeAny
		switch shape {
		case SHAPE_R1I32P:
			mode = immModePositive
		case SHAPE_R1I32N:
			mode = immModeNegative
		}
		if imm, err = asm.imm32(mode, true); err != nil {
			return
		}
		op = MakeOp1i(opcode, r, mask, imm)
	case SHAPE_R1I8X4, SHAPE_R1I16X2:
		var r, mask uint8
		var imm uint32
		if r, mask, err = asm.mask(); err != nil {
			return
		}
		if shape == SHAPE_R1I8X4 {
			imm, err = asm.packed(4, 8)
		} else {
			imm, err = asm.packed(2, 16)
		}
		if err != nil {
			return
		}
		op = MakeOp1i(opcode, r, mask, imm)
	case SHAPE_S1I32:
		var r, sel uint8
		var imm uint32
		if r, sel, err = asm.selector(); err != nil {
			return
		}
		if err = asm.expect(','); err != nil {
			return
		}
		if imm, err = asm.imm32(immModeAny, true); err != nil {
			return
		}
		op = MakeOp1i(opcode, r, sel, imm)
	case SHAPE_R2I32:
		var r, a uint8
		var imm uint32
		if r, err = asm.bare(); err != nil {
			return
		}
		if err = asm.expect(','); err != nil {
			return
		}
		if a, err = asm.bare(); err != nil {
			return
		}
		if err = asm.expect(','); err != nil {
			return
		}
		if imm, err = asm.imm32(immModeAny, true); err != nil {
			return
		}
		op = MakeOp2i(opcode, r, a, imm)
	case SHAPE_R3S2, SHAPE_R3M2S1, SHAPE_S3:
		var arg [6]uint8
		for n := range 3 {
			if n > 0 {
				if err = asm.expect(','); err != nil {
					return
				}
			}
			switch {
			case n == 0 && shape != SHAPE_S3, n == 1 && shape == SHAPE_R3M2S1:
				arg[2*n], arg[2*n+1], err = asm.mask()
			default:
				arg[2*n], arg[2*n+1], err = asm.selector()
			}
			if err != nil {
				return
			}
		}
		op = MakeOp3(opcode, arg[0], arg[1], arg[2], arg[3], arg[4], arg[5])
	case SHAPE_R4SIGN:
		var r, mask uint8
		var reg [3]uint8
		var sign, s uint8
		if r, mask, err = asm.mask(); err != nil {
			return
		}
		if err = asm.expect(','); err != nil {
			return
		}
		asm.skipBlank()
		if asm.peek() != '$' {
			if sign, err = asm.sign(); err != nil {
				return
			}
			if err = asm.expect(','); err != nil {
				return
			}
		}
		for n := range reg {
			if n > 0 {
				if err = asm.expect(','); err != nil {
					return
				}
			}
			if reg[n], err = asm.bare(); err != nil {
				return
			}
			if asm.peek() == '.' {
				asm.pos++
				if s, err = asm.sign(); err != nil {
					return
				}
				sign |= s << (2 * (n + 1))
			}
		}
		op = MakeOp4(opcode, r, mask, reg[0], reg[1], reg[2], sign)
	case SHAPE_R6:
		var r uint8
		var arg [5]uint8
		if r, err = asm.bare(); err != nil {
			return
		}
		for n := range arg {
			if err = asm.expect(','); err != nil {
				return
			}
			if arg[n], err = asm.bare(); err != nil {
				return
			}
		}
		op = MakeOp6(opcode, r, arg)
	default:
		err = asm.syntax(asm.pos, fmt.Errorf("%w: shape %v", ErrInstructionUnknown, shape))
	}

	return
}

// shorthand encodes the single letter instructions.
func (asm *Assembler) shorthand(letter string) (op Instruction, err error) {
	lookup := func(name string) (opcode Opcode) {
		opcode, err = asm.table().Lookup(name)
		return
	}

	var imm uint32
	switch letter {
	case "j":
		opcode := lookup("jnzq")
		if err == nil {
			imm, err = asm.imm32(immModeAny, true)
		}
		op = MakeOp1i(opcode, 0, vector.SEL_ALL, imm)
	case "c":
		opcode := lookup("call")
		if err == nil {
			imm, err = asm.imm32(immModeAny, true)
		}
		op = MakeOp1i(opcode, 0, 3<<(2*LANE_CS), imm)
	case "r":
		opcode := lookup("ret")
		asm.skipBlank()
		if err == nil && !asm.endOfStatement() {
			imm, err = asm.imm32(immModeAny, true)
		}
		op = MakeOp1i(opcode, 0, 3<<(2*LANE_CS), imm)
	case "s":
		opcode := lookup("stop")
		if err == nil {
			imm, err = asm.imm32(immModeAny, true)
		}
		op = MakeOp1i(opcode, 0, vector.SEL_ALL, imm)
	case "d":
		opcode := lookup("stop")
		var r, sel uint8
		if err == nil {
			r, sel, err = asm.selector()
		}
		op = MakeOp1i(opcode, r, sel, STOP_DUMP)
	default:
		err = fmt.Errorf("%w: %v", ErrInstructionUnknown, letter)
	}

	return
}

// instruction reads one instruction and appends it to the code.
func (asm *Assembler) instruction() (err error) {
	start := asm.pos

	name := asm.word()
	if len(name) == 0 {
		return asm.unexpected()
	}

	var op Instruction
	if len(name) == 1 {
		op, err = asm.shorthand(name)
	} else {
		var opcode Opcode
		var entry *Entry
		opcode, err = asm.table().Lookup(name)
		if err == nil {
			entry, err = asm.table().Decode(opcode)
		}
		if err != nil {
			return asm.syntax(start, fmt.Errorf("%w: %v", ErrInstructionUnknown, name))
		}
		op, err = asm.operands(opcode, entry.Shape)
	}
	if err != nil {
		if _, ok := err.(*ErrSyntax); !ok {
			err = asm.syntax(start, err)
		}
		return
	}

	asm.skipBlank()
	if !asm.endOfStatement() {
		return asm.unexpected()
	}

	asm.code = append(asm.code, op)
	asm.offset = append(asm.offset, start)
	return
}

// definition reads '@label:' or '#const value'.
func (asm *Assembler) definition() (err error) {
	start := asm.pos
	name, err := asm.symbol()
	if err != nil {
		return
	}

	if name[0] == '@' {
		if err = asm.expect(':'); err != nil {
			return
		}
		if _, ok := asm.label[name]; ok {
			return asm.syntax(start, &ErrSymbol{Name: name, Err: ErrLabelDuplicate})
		}
		asm.label[name] = len(asm.code)
		return
	}

	if _, ok := asm.constant[name]; ok {
		return asm.syntax(start, &ErrSymbol{Name: name, Err: ErrConstDuplicate})
	}
	value, err := asm.imm32(immModeAny, false)
	if err != nil {
		return
	}

	asm.skipBlank()
	if !asm.endOfStatement() {
		return asm.unexpected()
	}

	asm.constant[name] = value
	return
}

// relocate resolves every label and constant reference.
func (asm *Assembler) relocate() (err error) {
	for _, reloc := range asm.reloc {
		var value uint32
		switch reloc.target[0] {
		case '@':
			index, ok := asm.label[reloc.target]
			if !ok {
				return asm.syntax(reloc.offset, &ErrSymbol{Name: reloc.target, Err: ErrLabelNotFound})
			}
			value = uint32(int32(index-reloc.index-1) * INSN_SIZE)
		default:
			var ok bool
			value, ok = asm.constant[reloc.target]
			if !ok {
				return asm.syntax(reloc.offset, &ErrSymbol{Name: reloc.target, Err: ErrConstNotFound})
			}
		}
		asm.code[reloc.index] |= Instruction(value) << 32
	}
	return
}

// Parse assembles source into a Program. The program always ends with an
// exit stop of status 0.
func (asm *Assembler) Parse(source string) (prog *Program, err error) {
	asm.source = source
	asm.pos = 0
	asm.code = nil
	asm.offset = nil
	asm.label = make(map[string]int)
	asm.constant = make(map[string]uint32)
	asm.reloc = nil

	for {
		asm.skipSpace()
		if asm.eof() {
			break
		}

		switch asm.peek() {
		case ';':
			for !asm.eof() && asm.peek() != '\n' {
				asm.pos++
			}
		case '@', '#':
			err = asm.definition()
		default:
			err = asm.instruction()
		}
		if err != nil {
			return
		}
	}

	stop, err := asm.table().Lookup("stop")
	if err != nil {
		return
	}
	asm.code = append(asm.code, MakeOp1i(stop, 0, vector.SEL_IMM, STOP_EXIT))
	asm.offset = append(asm.offset, len(source))

	err = asm.relocate()
	if err != nil {
		return
	}

	prog = &Program{
		Source: source,
		Code:   asm.code,
		Offset: asm.offset,
	}

	if asm.Verbose {
		for n, op := range prog.Code {
			asm.Logger.Debug().
				Int("index", n).
				Int("offset", prog.Offset[n]).
				Str("op", Disassemble(op)).
				Msg("assemble")
		}
	}

	return
}

// Constants returns a copy of the constants of the last Parse.
func (asm *Assembler) Constants() map[string]uint32 {
	return maps.Clone(asm.constant)
}

// Labels returns a copy of the labels of the last Parse, as instruction
// indexes.
func (asm *Assembler) Labels() map[string]int {
	return maps.Clone(asm.label)
}
