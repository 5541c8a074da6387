// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package memory

import (
	"unsafe"
)

// Arena is a block of memory outside the Go heap, addressed by the
// machine with raw host addresses.
type Arena struct {
	Checked bool // If set, accesses outside the arena fail with ErrFault.

	data []byte
}

var _ Memory = (*Arena)(nil)

// NewArena maps a zeroed arena of size bytes.
func NewArena(size int) (arena *Arena, err error) {
	if size <= 0 {
		err = ErrArenaSize
		return
	}

	data, err := mmap(size)
	if err != nil {
		return
	}

	arena = &Arena{data: data}
	return
}

// Close unmaps the arena. Addresses into it are invalid afterwards.
func (a *Arena) Close() (err error) {
	if a.data == nil {
		return
	}
	err = munmap(a.data)
	a.data = nil
	return
}

// Base is the host address of the first arena byte.
func (a *Arena) Base() uint64 {
	return uint64(uintptr(unsafe.Pointer(unsafe.SliceData(a.data))))
}

// Size of the arena in bytes.
func (a *Arena) Size() int {
	return len(a.data)
}

// Bytes is the arena contents.
func (a *Arena) Bytes() []byte {
	return a.data
}

// Contains is true if size bytes at addr lie inside the arena.
func (a *Arena) Contains(addr uint64, size int) bool {
	base := a.Base()
	if addr < base {
		return false
	}
	offset := addr - base
	return offset <= uint64(len(a.data)) && uint64(size) <= uint64(len(a.data))-offset
}

// Load copies len(data) bytes from addr.
func (a *Arena) Load(addr uint64, data []byte) (err error) {
	if a.Checked && !a.Contains(addr, len(data)) {
		err = &ErrFault{Addr: addr, Size: len(data)}
		return
	}
	return Host{}.Load(addr, data)
}

// Store copies data to addr.
func (a *Arena) Store(addr uint64, data []byte) (err error) {
	if a.Checked && !a.Contains(addr, len(data)) {
		err = &ErrFault{Addr: addr, Size: len(data), Store: true}
		return
	}
	return Host{}.Store(addr, data)
}
