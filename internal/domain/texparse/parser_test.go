package texparse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texstream/texevents/internal/domain/event"
	"github.com/texstream/texevents/internal/domain/perr"
)

func drain(t *testing.T, p *Parser) []event.Event {
	t.Helper()
	var events []event.Event
	for {
		ev, ok, err := p.Next()
		require.NoError(t, err)
		if !ok {
			return events
		}
		events = append(events, ev)
	}
}

func TestBarAccentDesugarsToOverscript(t *testing.T) {
	p := New(`\bar{y}`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'y'}}),
		event.EndGroup(),
		event.NewInfix(event.Overscript),
		event.NewContent(event.Content{Operator: &event.Operator{Char: '‾'}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestFractionDesugarsToInfixFraction(t *testing.T) {
	p := New(`\frac{1}{2}`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.BeginGroup(),
		event.NewContent(event.Content{Number: &event.Number{Digits: "1"}}),
		event.EndGroup(),
		event.NewInfix(event.Fraction),
		event.BeginGroup(),
		event.NewContent(event.Content{Number: &event.Number{Digits: "2"}}),
		event.EndGroup(),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainIdentifiersAndOperators(t *testing.T) {
	p := New("x+y", nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x'}}),
		event.NewContent(event.Content{Operator: &event.Operator{Char: '+'}}),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'y'}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestSubscriptAndSuperscript(t *testing.T) {
	p := New("x_i^2", nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x'}}),
		event.NewInfix(event.Subscript),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'i'}}),
		event.NewInfix(event.Superscript),
		event.NewContent(event.Content{Number: &event.Number{Digits: "2"}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestBraceGroupOpensAndClosesExplicitly(t *testing.T) {
	p := New("{a}", nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(), // outer seed
		event.BeginGroup(), // literal `{`
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'a'}}),
		event.EndGroup(),
		event.EndGroup(), // outer seed
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestSiblingBraceGroups(t *testing.T) {
	p := New("{x}{y}", nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x'}}),
		event.EndGroup(),
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'y'}}),
		event.EndGroup(),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestBeginGroupEndGroupPrimitives(t *testing.T) {
	p := New(`\begingroup a\endgroup`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'a'}}),
		event.EndGroup(),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestEndgroupCannotCloseBraceGroup(t *testing.T) {
	p := New(`{\endgroup`, nil)

	_, _, err := p.Next() // outer BeginGroup
	require.NoError(t, err)
	_, _, err = p.Next() // `{`
	require.NoError(t, err)

	_, _, err = p.Next() // \endgroup against a Brace group
	assert.ErrorIs(t, err, perr.UnmatchedClose())
}

func TestBareInfixPrimitives(t *testing.T) {
	p := New(`a\sb b\over c`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'a'}}),
		event.NewInfix(event.Subscript),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'b'}}),
		event.NewInfix(event.Fraction),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'c'}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

// Every completed stream must open with BeginGroup, close with EndGroup,
// keep a non-negative group balance at every prefix, and end balanced.
func TestBracketMatchingInvariant(t *testing.T) {
	inputs := []string{
		"",
		"x+y",
		"{a}{b{c}}",
		`\frac{1}{2}`,
		`\mathbf{\frac{\alpha}{2}}_i`,
		`\sqrt{\bar{x}}`,
		`\begingroup{a}\endgroup`,
	}
	for _, in := range inputs {
		p := New(in, nil)
		events := drain(t, p)

		require.NotEmpty(t, events, "input %q", in)
		assert.Equal(t, event.KindBeginGroup, events[0].Kind, "input %q", in)
		assert.Equal(t, event.KindEndGroup, events[len(events)-1].Kind, "input %q", in)

		balance := 0
		for i, ev := range events {
			switch ev.Kind {
			case event.KindBeginGroup:
				balance++
			case event.KindEndGroup:
				balance--
			}
			require.GreaterOrEqual(t, balance, 0, "input %q, event %d", in, i)
		}
		assert.Zero(t, balance, "input %q", in)
	}
}

func TestHashSignAndAlignmentCharAreErrors(t *testing.T) {
	for input, want := range map[string]*perr.Error{
		"#": perr.HashSign(),
		"&": perr.AlignmentChar(),
	} {
		p := New(input, nil)
		_, _, err := p.Next() // outer BeginGroup
		require.NoError(t, err)

		_, _, err = p.Next()
		assert.ErrorIs(t, err, want)
	}
}

func TestUnmatchedCloseBraceIsAnError(t *testing.T) {
	p := New("a}", nil)

	_, ok, err := p.Next() // outer BeginGroup
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = p.Next() // Identifier(a)
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = p.Next() // stray `}`
	assert.ErrorIs(t, err, perr.UnmatchedClose())
}

func TestUnknownControlSequenceIsAnError(t *testing.T) {
	p := New(`\notarealcommand`, nil)

	_, ok, err := p.Next() // outer BeginGroup
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = p.Next()
	var perrErr *perr.Error
	require.ErrorAs(t, err, &perrErr)
	assert.Equal(t, perr.KindUnknownControlSequence, perrErr.Kind)
}

func TestMathShiftIsAnError(t *testing.T) {
	p := New("$", nil)
	_, ok, err := p.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, _, err = p.Next()
	assert.ErrorIs(t, err, perr.MathShift())
}

func TestCommentIsSkippedToEndOfLine(t *testing.T) {
	p := New("a% a comment\nb", nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'a'}}),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'b'}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestFontModifierAppliesVariantToArgument(t *testing.T) {
	p := New(`\mathbf{x}`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x', Variant: event.FontBold}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestFontModifierSingleTokenArgument(t *testing.T) {
	p := New(`\mathbf x`, nil)
	got := drain(t, p)

	want := []event.Event{
		event.BeginGroup(),
		event.NewContent(event.Content{Identifier: &event.Identifier{Char: 'x', Variant: event.FontBold}}),
		event.EndGroup(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestBytePosTracksOriginalInputOffset(t *testing.T) {
	p := New("ab", nil)

	_, _, err := p.Next() // outer BeginGroup
	require.NoError(t, err)

	pos, ok := p.BytePos()
	require.True(t, ok)
	assert.Equal(t, 0, pos)

	_, _, err = p.Next() // Identifier(a), consumes one byte
	require.NoError(t, err)

	pos, ok = p.BytePos()
	require.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestGroupNumberLexerAllowsMultipleDots(t *testing.T) {
	p := New("1.2.3", nil)
	got := drain(t, p)
	require.Len(t, got, 3) // outer BeginGroup, one Number, outer EndGroup

	num := got[1].Content.Number
	require.NotNil(t, num)
	assert.Equal(t, "1.2.3", num.Digits)
}
