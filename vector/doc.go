// Package vector implements the 256-bit register of the A256 machine.
//
// A register is 32 bytes that can be viewed as lanes of 8, 16, 32 or 64-bit
// integers, 32 or 64-bit floats, two 128-bit halves, or one 256-bit whole.
// Operands are read through a scalarity selector, an 8-bit code that picks
// a lane to broadcast, a conversion, an extension, or a small immediate.
package vector
