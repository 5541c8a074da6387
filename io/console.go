package io

import (
	"io"
)

// Console writes machine output to an io.Writer, such as os.Stdout.
type Console struct {
	Output io.Writer
	Bytes  int // Total bytes written.
}

var _ Sink = (*Console)(nil)

// Print writes text to the output.
func (con *Console) Print(text string) (err error) {
	if con.Output == nil {
		err = ErrSinkClosed
		return
	}

	n, err := io.WriteString(con.Output, text)
	con.Bytes += n

	return
}
