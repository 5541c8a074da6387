// Package memory provides the address spaces an A256 machine loads from
// and stores to.
//
// The machine trusts every address it computes. Host is the raw process
// address space; Arena is a host-owned mapping that can optionally check
// accesses against its bounds.
package memory

// Memory is the only path from the machine to memory.
type Memory interface {
	// Load fills data from the bytes at addr.
	Load(addr uint64, data []byte) error
	// Store writes data to the bytes at addr.
	Store(addr uint64, data []byte) error
}
