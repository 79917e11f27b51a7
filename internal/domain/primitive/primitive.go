// Package primitive is the static control-sequence → semantic-action
// table the parser engine consults: given a control-sequence name, it
// returns the name's semantic classification and payload. The table is
// a working reference set of common primitives, not a claim of
// exhaustive TeX symbol coverage — a full symbol database can replace
// it behind the same Lookup signature.
package primitive

import "github.com/texstream/texevents/internal/domain/event"

// Kind classifies what a control sequence does once looked up.
type Kind int

const (
	// KindIdentifier emits a single content identifier with a fixed
	// code point (e.g. Greek letters).
	KindIdentifier Kind = iota
	// KindOperator emits a single content operator with presentation
	// metadata.
	KindOperator
	// KindFontModifier opens an internal font-state group around its
	// one argument (e.g. \mathbf, \mathrm).
	KindFontModifier
	// KindGroupOpen/KindGroupClose open/close an explicit (non-brace)
	// group, for \begingroup/\endgroup.
	KindGroupOpen
	KindGroupClose
	// KindInfix emits a bare infix marker with no arguments (rare; most
	// infixes are the `_`/`^` character tokens handled directly by the
	// parser engine).
	KindInfix
	// KindComposite consumes a fixed number of arguments and desugars
	// into a sequence of events/substrings (e.g. \frac, \sqrt, \bar).
	KindComposite
)

// CompositeForm names the shape a KindComposite primitive desugars
// into, so the parser engine's dispatch doesn't need a name switch.
type CompositeForm int

const (
	// FormFraction: {num}{den} -> BeginGroup num EndGroup Infix(Fraction) BeginGroup den EndGroup
	FormFraction CompositeForm = iota
	// FormRadical: {radicand} -> Operator('√', stretchy) BeginGroup radicand EndGroup
	FormRadical
	// FormOverscriptOperator: {base} -> BeginGroup base EndGroup Infix(Overscript) Operator(Char)
	FormOverscriptOperator
	// FormUnderscriptOperator: {base} -> BeginGroup base EndGroup Infix(Underscript) Operator(Char)
	FormUnderscriptOperator
)

// Action is the payload a lookup returns: what kind of primitive this
// is, plus the kind-specific metadata the parser engine needs to act on
// it without a further name switch.
type Action struct {
	Kind Kind

	// KindIdentifier / KindOperator
	Char rune

	// KindOperator presentation metadata; nil means unspecified.
	Stretchy       *bool
	MoveableLimits *bool
	LeftSpace      *float64
	RightSpace     *float64

	// KindFontModifier
	Font event.Font

	// KindInfix
	Infix event.InfixKind

	// KindComposite
	Form     CompositeForm
	ArgCount int
	// OpChar is the fixed operator character a composite form emits
	// alongside its argument(s) (e.g. the overline '‾' for \bar).
	OpChar rune
}

// Lookup maps a control-sequence name (without the leading backslash)
// to its primitive action. The second return value is false for an
// unknown name.
func Lookup(name string) (Action, bool) {
	a, ok := table[name]
	return a, ok
}

func boolPtr(b bool) *bool { return &b }

var table = map[string]Action{
	// Greek letters (lowercase): emit as identifiers.
	"alpha":   {Kind: KindIdentifier, Char: 'α'},
	"beta":    {Kind: KindIdentifier, Char: 'β'},
	"gamma":   {Kind: KindIdentifier, Char: 'γ'},
	"delta":   {Kind: KindIdentifier, Char: 'δ'},
	"epsilon": {Kind: KindIdentifier, Char: 'ε'},
	"zeta":    {Kind: KindIdentifier, Char: 'ζ'},
	"eta":     {Kind: KindIdentifier, Char: 'η'},
	"theta":   {Kind: KindIdentifier, Char: 'θ'},
	"iota":    {Kind: KindIdentifier, Char: 'ι'},
	"kappa":   {Kind: KindIdentifier, Char: 'κ'},
	"lambda":  {Kind: KindIdentifier, Char: 'λ'},
	"mu":      {Kind: KindIdentifier, Char: 'μ'},
	"nu":      {Kind: KindIdentifier, Char: 'ν'},
	"xi":      {Kind: KindIdentifier, Char: 'ξ'},
	"pi":      {Kind: KindIdentifier, Char: 'π'},
	"rho":     {Kind: KindIdentifier, Char: 'ρ'},
	"sigma":   {Kind: KindIdentifier, Char: 'σ'},
	"tau":     {Kind: KindIdentifier, Char: 'τ'},
	"upsilon": {Kind: KindIdentifier, Char: 'υ'},
	"phi":     {Kind: KindIdentifier, Char: 'φ'},
	"chi":     {Kind: KindIdentifier, Char: 'χ'},
	"psi":     {Kind: KindIdentifier, Char: 'ψ'},
	"omega":   {Kind: KindIdentifier, Char: 'ω'},

	// Greek letters (uppercase).
	"Gamma":   {Kind: KindIdentifier, Char: 'Γ'},
	"Delta":   {Kind: KindIdentifier, Char: 'Δ'},
	"Theta":   {Kind: KindIdentifier, Char: 'Θ'},
	"Lambda":  {Kind: KindIdentifier, Char: 'Λ'},
	"Xi":      {Kind: KindIdentifier, Char: 'Ξ'},
	"Pi":      {Kind: KindIdentifier, Char: 'Π'},
	"Sigma":   {Kind: KindIdentifier, Char: 'Σ'},
	"Upsilon": {Kind: KindIdentifier, Char: 'Υ'},
	"Phi":     {Kind: KindIdentifier, Char: 'Φ'},
	"Psi":     {Kind: KindIdentifier, Char: 'Ψ'},
	"Omega":   {Kind: KindIdentifier, Char: 'Ω'},

	// Big operators: stretchy, allow moveable limits (except \int).
	"sum":    {Kind: KindOperator, Char: '∑', Stretchy: boolPtr(true), MoveableLimits: boolPtr(true)},
	"prod":   {Kind: KindOperator, Char: '∏', Stretchy: boolPtr(true), MoveableLimits: boolPtr(true)},
	"int":    {Kind: KindOperator, Char: '∫', Stretchy: boolPtr(true), MoveableLimits: boolPtr(false)},
	"coprod": {Kind: KindOperator, Char: '∐', Stretchy: boolPtr(true), MoveableLimits: boolPtr(true)},
	"bigcup": {Kind: KindOperator, Char: '⋃', Stretchy: boolPtr(true), MoveableLimits: boolPtr(true)},
	"bigcap": {Kind: KindOperator, Char: '⋂', Stretchy: boolPtr(true), MoveableLimits: boolPtr(true)},

	// Binary/relational operators; no spacing metadata is set, so their
	// LeftSpace/RightSpace stay nil (unspecified).
	"times":   {Kind: KindOperator, Char: '×'},
	"div":     {Kind: KindOperator, Char: '÷'},
	"pm":      {Kind: KindOperator, Char: '±'},
	"mp":      {Kind: KindOperator, Char: '∓'},
	"cdot":    {Kind: KindOperator, Char: '⋅'},
	"leq":     {Kind: KindOperator, Char: '≤'},
	"geq":     {Kind: KindOperator, Char: '≥'},
	"neq":     {Kind: KindOperator, Char: '≠'},
	"approx":  {Kind: KindOperator, Char: '≈'},
	"equiv":   {Kind: KindOperator, Char: '≡'},
	"to":      {Kind: KindOperator, Char: '→'},
	"infty":   {Kind: KindIdentifier, Char: '∞'},
	"partial": {Kind: KindIdentifier, Char: '∂'},
	"nabla":   {Kind: KindIdentifier, Char: '∇'},

	// Explicit groups.
	"begingroup": {Kind: KindGroupOpen},
	"endgroup":   {Kind: KindGroupClose},

	// Font modifiers: open an internal group, applying a font variant
	// to whatever the next argument (token or braced group) contains.
	"mathrm":   {Kind: KindFontModifier, Font: event.FontUpright},
	"mathbf":   {Kind: KindFontModifier, Font: event.FontBold},
	"mathit":   {Kind: KindFontModifier, Font: event.FontItalic},
	"mathsf":   {Kind: KindFontModifier, Font: event.FontSansSerif},
	"mathtt":   {Kind: KindFontModifier, Font: event.FontMonospace},
	"mathbb":   {Kind: KindFontModifier, Font: event.FontDoubleStruck},
	"mathfrak": {Kind: KindFontModifier, Font: event.FontFraktur},
	"mathcal":  {Kind: KindFontModifier, Font: event.FontScript},

	// Bare infix markers: \sb and \sp are the TeXBook's control-sequence
	// aliases for `_` and `^`; \over is the infix form of a fraction.
	"sb":   {Kind: KindInfix, Infix: event.Subscript},
	"sp":   {Kind: KindInfix, Infix: event.Superscript},
	"over": {Kind: KindInfix, Infix: event.Fraction},

	// Composite (argument-consuming) forms.
	"frac":      {Kind: KindComposite, Form: FormFraction, ArgCount: 2},
	"dfrac":     {Kind: KindComposite, Form: FormFraction, ArgCount: 2},
	"tfrac":     {Kind: KindComposite, Form: FormFraction, ArgCount: 2},
	"sqrt":      {Kind: KindComposite, Form: FormRadical, ArgCount: 1, OpChar: '√'},
	"bar":       {Kind: KindComposite, Form: FormOverscriptOperator, ArgCount: 1, OpChar: '‾'},
	"hat":       {Kind: KindComposite, Form: FormOverscriptOperator, ArgCount: 1, OpChar: '^'},
	"vec":       {Kind: KindComposite, Form: FormOverscriptOperator, ArgCount: 1, OpChar: '→'},
	"dot":       {Kind: KindComposite, Form: FormOverscriptOperator, ArgCount: 1, OpChar: '˙'},
	"tilde":     {Kind: KindComposite, Form: FormOverscriptOperator, ArgCount: 1, OpChar: '~'},
	"underline": {Kind: KindComposite, Form: FormUnderscriptOperator, ArgCount: 1, OpChar: '_'},
}

// delimiterChars is the set of bare ASCII characters that are
// themselves valid delimiters (as opposed to delimiters that can only
// be named through a control sequence like \lfloor). `.` is the null
// delimiter.
var delimiterChars = map[rune]bool{
	'(': true, ')': true,
	'[': true, ']': true,
	'.': true,
	'|': true,
	'<': true, '>': true,
}

// IsDelimiterChar reports whether c is a valid delimiter when it
// appears as a bare character token (as opposed to via a named control
// sequence like \lfloor).
func IsDelimiterChar(c rune) bool {
	return delimiterChars[c]
}
