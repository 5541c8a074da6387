// Package io provides the output sinks for the A256 machine.
//
// The stop instruction family is the machine's only I/O surface; its text
// is routed to a Sink chosen by the host.
package io

// Sink receives text emitted by the machine.
type Sink interface {
	// Print emits text verbatim. Diagnostic lines carry their own newline.
	Print(text string) error
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Print(text string) (err error) {
	return
}
