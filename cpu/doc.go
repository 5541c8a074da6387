// Package cpu implements the interpreter and assembler for the A256
// 256-bit SIMD register machine.
//
// The machine has 256 vector registers of 32 bytes each. Register $00
// holds the control lanes as qwords: the next instruction pointer (NP),
// the call stack pointer (CS), the stack base (BP) and the stack pointer
// (SP). Instructions are 64-bit words, dispatched through a Table of
// opcode handlers.
//
// The assembler is a single pass, recursive descent parser with labels,
// named constants, scalarity selectors and compile-time expression
// evaluation.
package cpu
