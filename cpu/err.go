package cpu

import (
	"errors"

	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrOpcodeUnknown              = errors.New(f("opcode unknown"))
	ErrInvalidImmediate           = errors.New(f("invalid immediate"))
	ErrPartialStackPointerUpdate  = errors.New(f("partial stack pointer update"))
	ErrMultipleStackPointerUpdate = errors.New(f("multiple stack pointer update"))
	ErrStackPointerMissing        = errors.New(f("stack pointer missing"))
	ErrStopCode                   = errors.New(f("stop code invalid"))
	ErrAssertion                  = errors.New(f("assertion failed"))
	ErrDivideByZero               = errors.New(f("divide by zero"))
	ErrHalted                     = errors.New(f("machine halted"))
	ErrSpanSize                   = errors.New(f("memory span too large"))

	// Table errors
	ErrInstructionUnregistered = errors.New(f("instruction unregistered"))

	// Assembler errors
	ErrEndOfInput         = errors.New(f("unexpected end of input"))
	ErrUnexpectedChar     = errors.New(f("unexpected character"))
	ErrNumberEmpty        = errors.New(f("number empty"))
	ErrNumberTooBig       = errors.New(f("number too big"))
	ErrCharEscape         = errors.New(f("character escape invalid"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))
	ErrSelectorRange      = errors.New(f("selector out of range"))
	ErrSelectorUnknown    = errors.New(f("selector unknown"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrLabelNotFound      = errors.New(f("label not found"))
	ErrConstNotFound      = errors.New(f("constant not found"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrConstDuplicate     = errors.New(f("constant duplicated"))
	ErrParseExpression    = errors.New(f("expression invalid"))
)

// ErrOpcode identifies the instruction that failed to execute.
type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0x%016x %v", uint64(eo), Instruction(eo).Opcode().String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrSyntax is an assembly error at a source byte offset.
type ErrSyntax struct {
	Offset int
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("offset %d: %v", err.Offset, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrSymbol names the symbol an error refers to.
type ErrSymbol struct {
	Name string
	Err  error
}

func (err *ErrSymbol) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrSymbol) Unwrap() error {
	return err.Err
}
