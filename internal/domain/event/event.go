// Package event defines the typed output vocabulary the parser produces:
// scoping markers, content (identifiers, operators, numbers), infix
// markers, and the font/dimension attributes content can carry.
//
// Event payloads borrow their text from the input string the parser was
// constructed with (or, for macro expansions, from the Storage arena
// that outlives the event stream) — they are never copied.
package event

import "fmt"

// Font is the stylistic variant carried on identifiers and numbers. The
// zero value, FontNone, means "no variant specified" — callers must not
// confuse it with an explicit upright request.
type Font int

const (
	FontNone Font = iota
	FontUpright
	FontBold
	FontItalic
	FontBoldItalic
	FontScript
	FontFraktur
	FontDoubleStruck
	FontSansSerif
	FontMonospace
)

func (f Font) String() string {
	switch f {
	case FontNone:
		return "none"
	case FontUpright:
		return "upright"
	case FontBold:
		return "bold"
	case FontItalic:
		return "italic"
	case FontBoldItalic:
		return "bold-italic"
	case FontScript:
		return "script"
	case FontFraktur:
		return "fraktur"
	case FontDoubleStruck:
		return "double-struck"
	case FontSansSerif:
		return "sans-serif"
	case FontMonospace:
		return "monospace"
	default:
		return fmt.Sprintf("Font(%d)", int(f))
	}
}

// DimensionUnit is one of the closed set of TeX physical units.
type DimensionUnit int

const (
	Em DimensionUnit = iota
	Ex
	Pt
	Pc
	In
	Bp
	Cm
	Mm
	Dd
	Cc
	Sp
	Mu
)

// DimensionUnits maps the two-letter unit spelling to its DimensionUnit,
// the single source of truth the lexeme package's dimension_unit scanner
// consults.
var DimensionUnits = map[string]DimensionUnit{
	"em": Em, "ex": Ex, "pt": Pt, "pc": Pc,
	"in": In, "bp": Bp, "cm": Cm, "mm": Mm,
	"dd": Dd, "cc": Cc, "sp": Sp, "mu": Mu,
}

func (u DimensionUnit) String() string {
	for s, v := range DimensionUnits {
		if v == u {
			return s
		}
	}
	return fmt.Sprintf("DimensionUnit(%d)", int(u))
}

// Dimension is a numeric value paired with a physical unit.
type Dimension struct {
	Value float32
	Unit  DimensionUnit
}

// Glue is a dimension with optional stretch ("plus") and shrink ("minus").
type Glue struct {
	Base  Dimension
	Plus  *Dimension
	Minus *Dimension
}

// Identifier is a named or single-character content atom, e.g. the `x`
// in `x^2` or the `\alpha` in `\alpha + 1`.
type Identifier struct {
	// Char is the code point for a single-character identifier. Name is
	// used instead for multi-character identifiers produced by a
	// primitive (e.g. the spelled-out name of an operator-like command
	// that is nonetheless classified as an identifier). Exactly one of
	// Char (non-zero) or Name (non-empty) is populated.
	Char    rune
	Name    string
	Variant Font
}

// Operator is an operator content atom, carrying the presentation
// metadata MathML-family renderers expect.
type Operator struct {
	Char rune
	// Stretchy, MoveableLimits are nil when unspecified, so a caller can
	// distinguish "not set" from an explicit false.
	Stretchy       *bool
	MoveableLimits *bool
	// LeftSpace, RightSpace are in em units; nil means unspecified.
	LeftSpace  *float64
	RightSpace *float64
	// Size is an optional size class name (e.g. "1" for \big-style sizing).
	Size *string
}

// Number is a run of digits (and whatever decimal points the lexer let
// through: the parser's number branch takes any run of digits and `.`,
// so "1.2.3" is a single Number) plus an optional font variant.
type Number struct {
	Digits  string
	Variant Font
}

// Content is the payload of a content event: exactly one of Identifier,
// Operator, or Number is populated.
type Content struct {
	Identifier *Identifier
	Operator   *Operator
	Number     *Number
}

// InfixKind names a binary marker that rebinds the two surrounding
// atoms/groups in the consumer.
type InfixKind int

const (
	Subscript InfixKind = iota
	Superscript
	Overscript
	Underscript
	Fraction
)

func (k InfixKind) String() string {
	switch k {
	case Subscript:
		return "subscript"
	case Superscript:
		return "superscript"
	case Overscript:
		return "overscript"
	case Underscript:
		return "underscript"
	case Fraction:
		return "fraction"
	default:
		return fmt.Sprintf("InfixKind(%d)", int(k))
	}
}

// Kind tags which variant an Event holds.
type Kind int

const (
	KindBeginGroup Kind = iota
	KindEndGroup
	KindContent
	KindInfix
)

// Event is the linear, typed typesetting event the parser yields one at
// a time from Next(). Only the field matching Kind is meaningful.
type Event struct {
	Kind    Kind
	Content Content
	Infix   InfixKind
}

// BeginGroup builds a scoping-open event.
func BeginGroup() Event { return Event{Kind: KindBeginGroup} }

// EndGroup builds a scoping-close event.
func EndGroup() Event { return Event{Kind: KindEndGroup} }

// NewContent builds a ContentEvent wrapping c.
func NewContent(c Content) Event { return Event{Kind: KindContent, Content: c} }

// NewInfix builds an Infix event of the given kind.
func NewInfix(k InfixKind) Event { return Event{Kind: KindInfix, Infix: k} }

func (e Event) String() string {
	switch e.Kind {
	case KindBeginGroup:
		return "BeginGroup"
	case KindEndGroup:
		return "EndGroup"
	case KindInfix:
		return fmt.Sprintf("Infix(%s)", e.Infix)
	case KindContent:
		switch {
		case e.Content.Identifier != nil:
			id := e.Content.Identifier
			if id.Char != 0 {
				return fmt.Sprintf("Identifier(%q, variant=%s)", id.Char, id.Variant)
			}
			return fmt.Sprintf("Identifier(%s, variant=%s)", id.Name, id.Variant)
		case e.Content.Operator != nil:
			return fmt.Sprintf("Operator(%q)", e.Content.Operator.Char)
		case e.Content.Number != nil:
			return fmt.Sprintf("Number(%s, variant=%s)", e.Content.Number.Digits, e.Content.Number.Variant)
		default:
			return "Content(<empty>)"
		}
	default:
		return fmt.Sprintf("Event(kind=%d)", int(e.Kind))
	}
}
