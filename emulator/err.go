package emulator

import (
	"errors"

	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	ErrStepLimit   = errors.New(f("step limit reached"))
	ErrProgramSize = errors.New(f("program does not fit in the arena"))
	ErrArenaLayout = errors.New(f("arena too small for the stacks"))
)

// ErrRuntime indicates the source location of a runtime error.
type ErrRuntime struct {
	Offset   int    // Source offset, or -1 if NP was outside the program.
	LineNo   int    // 1-based line, or 0 if unknown.
	Column   int    // 1-based column, or 0 if unknown.
	Mnemonic string // Mnemonic of the failing instruction, if known.
	Err      error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("%v", err.Err)
	}
	return f("line %d:%d (%v) %v", err.LineNo, err.Column, err.Mnemonic, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
