package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())

	assert.Equal("opcode stop", From("opcode %v", "stop"))
	assert.Equal("plain", From("plain"))
}
