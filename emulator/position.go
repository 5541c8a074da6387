package emulator

import (
	"strings"
)

// Position converts a source byte offset to a 1-based line and column.
// Offsets past the end of source are clamped to the end.
func Position(source string, offset int) (line, column int) {
	offset = max(0, min(offset, len(source)))

	before := source[:offset]
	line = strings.Count(before, "\n") + 1
	column = offset - (strings.LastIndexByte(before, '\n') + 1) + 1
	return
}
