package memory

import (
	"unsafe"
)

// Host accesses raw process addresses. Nothing is checked; an address that
// is not mapped into the process faults the process.
type Host struct{}

var _ Memory = Host{}

// span is the single unsafe conversion from a machine address to bytes.
func span(addr uint64, size int) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(uintptr(addr))), size)
}

// Load copies len(data) bytes from addr.
func (Host) Load(addr uint64, data []byte) (err error) {
	copy(data, span(addr, len(data)))
	return
}

// Store copies data to addr.
func (Host) Store(addr uint64, data []byte) (err error) {
	copy(span(addr, len(data)), data)
	return
}
