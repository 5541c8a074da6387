package memory

import (
	"errors"

	"github.com/ezrec/a256/translate"
)

var f = translate.From

var (
	ErrArenaSize = errors.New(f("arena size invalid"))
)

// ErrFault is an access outside of a checked arena.
type ErrFault struct {
	Addr  uint64
	Size  int
	Store bool
}

func (err *ErrFault) Error() string {
	if err.Store {
		return f("fault storing %d bytes at 0x%x", err.Size, err.Addr)
	}
	return f("fault loading %d bytes at 0x%x", err.Size, err.Addr)
}
