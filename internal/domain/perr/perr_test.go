package perr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsComparesKindNotPayload(t *testing.T) {
	a := InvalidChar('x')
	b := InvalidChar('y')
	assert.True(t, errors.Is(a, b))
	assert.True(t, errors.Is(a, InvalidChar(0)))
	assert.False(t, errors.Is(a, EndOfInput()))
}

func TestUnknownControlSequenceMessage(t *testing.T) {
	err := UnknownControlSequence("frobnicate")
	assert.Contains(t, err.Error(), "frobnicate")
}

func TestErrorSatisfiesStdlibErrorsIs(t *testing.T) {
	var err error = EndOfInput()
	assert.True(t, errors.Is(err, EndOfInput()))
	assert.False(t, errors.Is(err, MathShift()))
}
