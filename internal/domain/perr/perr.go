// Package perr defines the error taxonomy shared by the lexeme and
// texparse packages. Every error the parser can surface to a consumer
// is one of the kinds listed here; nothing is a bare fmt.Errorf string.
package perr

import "fmt"

// Kind classifies a parse error without needing a type switch on the
// concrete error value.
type Kind int

const (
	// KindInvalidChar means a character was not allowed at the current
	// position (unknown dimension unit letter, non-ASCII after a
	// backtick, unknown delimiter character, and so on).
	KindInvalidChar Kind = iota
	// KindEndOfInput means the input was exhausted where more was required.
	KindEndOfInput
	// KindMathShift means a `$` was encountered; math-shift is unsupported.
	KindMathShift
	// KindHashSign means a `#` was encountered outside a macro definition.
	KindHashSign
	// KindAlignmentChar means a `&` was encountered.
	KindAlignmentChar
	// KindUnknownControlSequence means the primitive table had no entry
	// for a control sequence name.
	KindUnknownControlSequence
	// KindUnmatchedClose means a `}` or `\endgroup` appeared without a
	// matching opener.
	KindUnmatchedClose
	// KindInvalidParameterText means a `\def`-style parameter text
	// contained a forbidden `}` or `%` byte.
	KindInvalidParameterText
)

// Error is the single error type for the whole taxonomy. Char and Name
// are populated only for the kinds that carry a payload.
type Error struct {
	Kind Kind
	Char rune
	Name string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindInvalidChar:
		return fmt.Sprintf("invalid character found in input: %q", e.Char)
	case KindEndOfInput:
		return "unexpected end of input"
	case KindMathShift:
		return "unexpected math `$` (math shift) character - this character is currently unsupported"
	case KindHashSign:
		return "unexpected hash sign `#` character - this character can only be used in macro definitions"
	case KindAlignmentChar:
		return "unexpected alignment character `&` - this character can only be used in tabular environments (not yet supported)"
	case KindUnknownControlSequence:
		return fmt.Sprintf("unknown control sequence: \\%s", e.Name)
	case KindUnmatchedClose:
		return "unmatched closing brace or \\endgroup"
	case KindInvalidParameterText:
		return "macro parameter text cannot contain '}' or '%'"
	default:
		return "unknown parse error"
	}
}

// Is reports whether target is an *Error with the same Kind, so callers
// can write errors.Is(err, perr.EndOfInput()) without comparing payloads.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// InvalidChar builds a KindInvalidChar error for c.
func InvalidChar(c rune) *Error { return &Error{Kind: KindInvalidChar, Char: c} }

// EndOfInput builds the singleton-shaped KindEndOfInput error.
func EndOfInput() *Error { return &Error{Kind: KindEndOfInput} }

// MathShift builds the KindMathShift error.
func MathShift() *Error { return &Error{Kind: KindMathShift} }

// HashSign builds the KindHashSign error.
func HashSign() *Error { return &Error{Kind: KindHashSign} }

// AlignmentChar builds the KindAlignmentChar error.
func AlignmentChar() *Error { return &Error{Kind: KindAlignmentChar} }

// UnknownControlSequence builds a KindUnknownControlSequence error for name.
func UnknownControlSequence(name string) *Error {
	return &Error{Kind: KindUnknownControlSequence, Name: name}
}

// UnmatchedClose builds the KindUnmatchedClose error.
func UnmatchedClose() *Error { return &Error{Kind: KindUnmatchedClose} }

// InvalidParameterText builds the KindInvalidParameterText error.
func InvalidParameterText() *Error { return &Error{Kind: KindInvalidParameterText} }
