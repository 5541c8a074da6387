package io

import (
	"strings"
)

// Recorder keeps machine output in memory.
type Recorder struct {
	Limit int // If non-zero, the maximum number of bytes kept.

	text strings.Builder
}

var _ Sink = (*Recorder)(nil)

// Reset discards the recorded output.
func (rec *Recorder) Reset() {
	rec.text.Reset()
}

// Print appends text to the recording.
func (rec *Recorder) Print(text string) (err error) {
	if rec.Limit > 0 && rec.text.Len()+len(text) > rec.Limit {
		err = ErrSinkFull
		return
	}

	rec.text.WriteString(text)
	return
}

// String is all recorded output.
func (rec *Recorder) String() string {
	return rec.text.String()
}

// Lines returns the recorded output split into lines, without the
// terminating newline of each.
func (rec *Recorder) Lines() (lines []string) {
	text := strings.TrimSuffix(rec.text.String(), "\n")
	if len(text) == 0 {
		return
	}
	lines = strings.Split(text, "\n")
	return
}
