package primitive

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/texstream/texevents/internal/domain/event"
)

func TestLookupGreekLetter(t *testing.T) {
	a, ok := Lookup("alpha")
	assert.True(t, ok)
	assert.Equal(t, KindIdentifier, a.Kind)
	assert.Equal(t, 'α', a.Char)
}

func TestLookupFontModifier(t *testing.T) {
	a, ok := Lookup("mathbf")
	assert.True(t, ok)
	assert.Equal(t, KindFontModifier, a.Kind)
	assert.Equal(t, event.FontBold, a.Font)
}

func TestLookupFraction(t *testing.T) {
	a, ok := Lookup("frac")
	assert.True(t, ok)
	assert.Equal(t, KindComposite, a.Kind)
	assert.Equal(t, FormFraction, a.Form)
	assert.Equal(t, 2, a.ArgCount)
}

func TestLookupOverscriptComposite(t *testing.T) {
	a, ok := Lookup("bar")
	assert.True(t, ok)
	assert.Equal(t, KindComposite, a.Kind)
	assert.Equal(t, FormOverscriptOperator, a.Form)
	assert.Equal(t, 1, a.ArgCount)
	assert.Equal(t, '‾', a.OpChar)
}

func TestLookupBareInfix(t *testing.T) {
	a, ok := Lookup("over")
	assert.True(t, ok)
	assert.Equal(t, KindInfix, a.Kind)
	assert.Equal(t, event.Fraction, a.Infix)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("notarealcommand")
	assert.False(t, ok)
}

func TestIsDelimiterChar(t *testing.T) {
	assert.True(t, IsDelimiterChar('('))
	assert.True(t, IsDelimiterChar('|'))
	assert.False(t, IsDelimiterChar('x'))
}
