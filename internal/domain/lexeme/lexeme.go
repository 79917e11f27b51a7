// Package lexeme holds the pure, cursor-advancing scanner functions the
// parser engine drives on demand. Every function here takes a *string
// cursor into the remaining input, consumes a prefix of it, and either
// returns the parsed value with the cursor advanced past it, or returns
// an error. On error the cursor may already have been advanced past
// whatever was consumed before the failure (leading whitespace, signs,
// a control sequence name, ...).
//
// The scanning rules follow the TeXBook; page references are on the
// individual functions.
package lexeme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/texstream/texevents/internal/domain/event"
	"github.com/texstream/texevents/internal/domain/perr"
	"github.com/texstream/texevents/internal/domain/primitive"
)

// TokenKind tags which variant a Token holds.
type TokenKind int

const (
	TokenControlSequence TokenKind = iota
	TokenCharacter
)

// Token is either a control sequence name (without the leading
// backslash) or a single character.
type Token struct {
	Kind            TokenKind
	ControlSequence string
	Character       rune
}

// ArgKind tags which variant an Argument holds.
type ArgKind int

const (
	ArgGroup ArgKind = iota
	ArgToken
)

// Arg is the result of parsing one macro/primitive argument: either
// a braced group's inner content, or a single token.
type Arg struct {
	Kind  ArgKind
	Group string
	Token Token
}

// ControlSequence requires a leading `\` and returns the control
// sequence name (without the backslash), cursor advanced past it.
func ControlSequence(cur *string) (string, error) {
	if strings.HasPrefix(*cur, `\`) {
		*cur = (*cur)[1:]
		return RhsControlSequence(cur), nil
	}
	r, size := utf8.DecodeRuneInString(*cur)
	if size == 0 {
		return "", perr.EndOfInput()
	}
	return "", perr.InvalidChar(r)
}

// RhsControlSequence parses the name of a control sequence whose
// leading `\` has already been consumed: a maximal run of ASCII
// alphabetic characters, or — if the next byte is not alphabetic — that
// one character (a control symbol), per TeXBook p. 46. Empty input
// yields an empty name (macro-definition compatibility edge case).
// Trailing whitespace is consumed after the name either way.
//
// The returned name is normalized to Unicode NFC. Since a name is either
// ASCII letters or a single character, this only changes a control
// symbol whose character has a singleton canonical decomposition (e.g.
// U+212B ANGSTROM SIGN becomes U+00C5); a letter followed by a
// combining mark is not read as one name.
func RhsControlSequence(cur *string) string {
	if *cur == "" {
		return ""
	}

	nameLen := 0
	for _, r := range *cur {
		if !isASCIILetter(r) {
			break
		}
		nameLen += utf8.RuneLen(r)
	}
	if nameLen == 0 {
		_, size := utf8.DecodeRuneInString(*cur)
		nameLen = size
	}

	name := (*cur)[:nameLen]
	rest := (*cur)[nameLen:]
	*cur = strings.TrimLeft(rest, " \t\n\r\f\v")
	return norm.NFC.String(name)
}

// ReadToken returns the next token: a control sequence if the input begins
// with `\`, otherwise a single consumed character.
func ReadToken(cur *string) (Token, error) {
	if strings.HasPrefix(*cur, `\`) {
		*cur = (*cur)[1:]
		name := RhsControlSequence(cur)
		return Token{Kind: TokenControlSequence, ControlSequence: name}, nil
	}
	if *cur == "" {
		return Token{}, perr.EndOfInput()
	}
	r, size := utf8.DecodeRuneInString(*cur)
	*cur = (*cur)[size:]
	return Token{Kind: TokenCharacter, Character: r}, nil
}

// Argument skips leading whitespace, then returns either a braced
// Group (with the `{`/`}` consumed) or a single Token.
func Argument(cur *string) (Arg, error) {
	*cur = strings.TrimLeft(*cur, " \t\n\r\f\v")
	if strings.HasPrefix(*cur, "{") {
		*cur = (*cur)[1:]
		content, err := GroupContent(cur)
		if err != nil {
			return Arg{}, err
		}
		return Arg{Kind: ArgGroup, Group: content}, nil
	}
	tok, err := ReadToken(cur)
	if err != nil {
		return Arg{}, err
	}
	return Arg{Kind: ArgToken, Token: tok}, nil
}

// Arguments parses exactly n mandatory Arguments in order.
func Arguments(cur *string, n int) ([]Arg, error) {
	args := make([]Arg, 0, n)
	for i := 0; i < n; i++ {
		arg, err := Argument(cur)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// GroupContent assumes the opening `{` has already been consumed. It
// scans forward tracking brace balance — a `\` toggles an "escaped"
// flag so that `\{` and `\}` do not affect balance, and two backslashes
// in a row cancel the escape — and returns the slice up to the matching
// `}`, cursor advanced past it. The returned content is normalized to
// NFC.
func GroupContent(cur *string) (string, error) {
	balance := 0
	escaped := false
	endIndex := -1
loop:
	for i, r := range *cur {
		switch {
		case r == '{' && !escaped:
			balance++
			escaped = false
		case r == '}' && !escaped:
			if balance == 0 {
				endIndex = i
				break loop
			}
			balance--
			escaped = false
		case r == '\\':
			escaped = !escaped
		default:
			escaped = false
		}
	}
	if endIndex < 0 {
		return "", perr.EndOfInput()
	}
	content := (*cur)[:endIndex]
	*cur = (*cur)[endIndex+1:]
	return norm.NFC.String(content), nil
}

// Definition parses the right-hand side of a `\def`/`\edef`/`\gdef`/
// `\xdef` (TeXBook p. 271): the control sequence, the parameter text
// (everything up to the first `{`), and the replacement text. The
// parameter text must not contain `}` or `%`.
func Definition(cur *string) (controlSequence, parameterText, replacement string, err error) {
	controlSequence, err = ControlSequence(cur)
	if err != nil {
		return "", "", "", err
	}
	idx := strings.IndexByte(*cur, '{')
	if idx < 0 {
		return "", "", "", perr.EndOfInput()
	}
	parameterText = (*cur)[:idx]
	if strings.ContainsAny(parameterText, "}%") {
		return "", "", "", perr.InvalidParameterText()
	}
	*cur = (*cur)[idx+1:]
	replacement, err = GroupContent(cur)
	if err != nil {
		return "", "", "", err
	}
	return controlSequence, parameterText, replacement, nil
}

// LetAssignment parses the right-hand side of a `\let` assignment
// (TeXBook p. 273): the control sequence, an optional `=` (with one
// optional trailing space), then one token.
func LetAssignment(cur *string) (controlSequence string, tok Token, err error) {
	controlSequence, err = ControlSequence(cur)
	if err != nil {
		return "", Token{}, err
	}
	*cur = strings.TrimLeft(*cur, " \t\n\r\f\v")
	if strings.HasPrefix(*cur, "=") {
		*cur = (*cur)[1:]
		OneOptionalSpace(cur)
	}
	tok, err = ReadToken(cur)
	if err != nil {
		return "", Token{}, err
	}
	return controlSequence, tok, nil
}

// FuturletAssignment parses the right-hand side of a `\futurelet`
// assignment (TeXBook p. 273): the control sequence, then two tokens.
func FuturletAssignment(cur *string) (controlSequence string, tok1, tok2 Token, err error) {
	controlSequence, err = ControlSequence(cur)
	if err != nil {
		return "", Token{}, Token{}, err
	}
	tok1, err = ReadToken(cur)
	if err != nil {
		return "", Token{}, Token{}, err
	}
	tok2, err = ReadToken(cur)
	if err != nil {
		return "", Token{}, Token{}, err
	}
	return controlSequence, tok1, tok2, nil
}

// Delimiter parses a token and maps it to a delimiter code point: a
// fixed set of control-sequence names (parentheses, brackets, braces,
// angles, floors/ceilings, corners, moustaches, arrows, bars,
// slash/backslash), or a bare character that is itself in the delimiter
// table.
func Delimiter(cur *string) (rune, error) {
	*cur = strings.TrimLeft(*cur, " \t\n\r\f\v")
	tok, err := ReadToken(cur)
	if err != nil {
		return 0, err
	}
	if tok.Kind == TokenCharacter {
		if tok.Character == '/' {
			return '/', nil
		}
		if primitive.IsDelimiterChar(tok.Character) {
			return tok.Character, nil
		}
		return 0, perr.InvalidChar(tok.Character)
	}
	if r, ok := delimiterNames[tok.ControlSequence]; ok {
		return r, nil
	}
	if tok.ControlSequence == "" {
		return 0, perr.EndOfInput()
	}
	first, _ := utf8.DecodeRuneInString(tok.ControlSequence)
	return 0, perr.InvalidChar(first)
}

var delimiterNames = map[string]rune{
	"lparen": '(', "rparen": ')',
	"llparenthesis": '⦇', "rrparenthesis": '⦈',
	"lgroup": '⟮', "rgroup": '⟯',
	"lbrack": '[', "rbrack": ']',
	"lBrack": '⟦', "rBrack": '⟧',
	"{": '{', "lbrace": '{',
	"}": '}', "rbrace": '}',
	"lBrace": '⦃', "rBrace": '⦄',
	"langle": '⟨', "rangle": '⟩',
	"lAngle": '⟪', "rAngle": '⟫',
	"llangle": '⦉', "rrangle": '⦊',
	"lfloor": '⌊', "rfloor": '⌋',
	"lceil": '⌈', "rceil": '⌉',
	"ulcorner": '┌', "urcorner": '┐',
	"llcorner": '└', "lrcorner": '┘',
	"lmoustache": '⎰', "rmoustache": '⎱',
	"backslash": '\\',
	"vert":      '|', "|": '‖', "Vert": '‖',
	"uparrow": '↑', "Uparrow": '⇑',
	"downarrow": '↓', "Downarrow": '⇓',
	"updownarrow": '↕', "Updownarrow": '⇕',
}

// Integer parses an optionally-signed integer (TeXBook p. 265): decimal
// digits, or a backtick followed by one (possibly backslash-escaped)
// character yielding its code point, or a quote followed by octal
// digits, or a double-quote followed by uppercase hex digits. One
// optional trailing space is consumed.
func Integer(cur *string) (int, error) {
	signum, err := Signs(cur)
	if err != nil {
		return 0, err
	}

	r, size := utf8.DecodeRuneInString(*cur)
	if size == 0 {
		return 0, perr.EndOfInput()
	}
	if r > unicode.MaxASCII {
		return 0, perr.InvalidChar(r)
	}

	if isASCIIDigit(r) {
		n, err := Decimal(cur)
		if err != nil {
			return 0, err
		}
		return n * signum, nil
	}

	*cur = (*cur)[size:]
	switch r {
	case '`':
		b, err := nextByte(cur)
		if err != nil {
			return 0, err
		}
		if b == '\\' {
			*cur = (*cur)[1:]
			b, err = nextByte(cur)
			if err != nil {
				return 0, err
			}
		}
		if b > unicode.MaxASCII {
			rr, _ := utf8.DecodeRuneInString(*cur)
			return 0, perr.InvalidChar(rr)
		}
		*cur = (*cur)[1:]
		OneOptionalSpace(cur)
		return int(b) * signum, nil
	case '\'':
		n, err := Octal(cur)
		if err != nil {
			return 0, err
		}
		return n * signum, nil
	case '"':
		n, err := Hexadecimal(cur)
		if err != nil {
			return 0, err
		}
		return n * signum, nil
	default:
		return 0, perr.InvalidChar(r)
	}
}

func nextByte(cur *string) (byte, error) {
	if *cur == "" {
		return 0, perr.EndOfInput()
	}
	return (*cur)[0], nil
}

// Signs scans through whitespace and `+`/`-` characters, returning -1 if
// an odd number of `-` were seen, else +1. Leading and trailing
// whitespace around the sign run is consumed.
func Signs(cur *string) (int, error) {
	s := strings.TrimLeft(*cur, " \t\n\r\f\v")
	minusCount := 0
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '-' {
			minusCount++
			i++
			continue
		}
		if c == '+' || isASCIISpaceByte(c) {
			i++
			continue
		}
		break
	}
	rest := s[i:]
	*cur = strings.TrimLeft(rest, " \t\n\r\f\v")
	if minusCount%2 == 0 {
		return 1, nil
	}
	return -1, nil
}

// Decimal parses a maximal run of decimal digits (base 10), consuming
// one optional trailing space.
func Decimal(cur *string) (int, error) {
	n, rest := scanDigits(*cur, 10)
	*cur = rest
	OneOptionalSpace(cur)
	return n, nil
}

// Octal parses a maximal run of octal digits (base 8), consuming one
// optional trailing space.
func Octal(cur *string) (int, error) {
	n, rest := scanDigits(*cur, 8)
	*cur = rest
	OneOptionalSpace(cur)
	return n, nil
}

// Hexadecimal parses a maximal run of hex digits restricted to decimal
// digits and uppercase A-F (TeXBook's convention; lowercase is not
// accepted), consuming one optional trailing space.
func Hexadecimal(cur *string) (int, error) {
	n := 0
	i := 0
	s := *cur
	for i < len(s) {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			goto done
		}
		n = n*16 + d
		i++
	}
done:
	*cur = s[i:]
	OneOptionalSpace(cur)
	return n, nil
}

func scanDigits(s string, base int) (int, string) {
	n := 0
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] < '0'+byte(base) {
		n = n*base + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}

// FloatingPoint parses a signed integer part followed optionally by a
// `.` or `,` and a fractional digit run (TeXBook's "factor", p. 266).
// No exponent notation is supported.
func FloatingPoint(cur *string) (float32, error) {
	signum, err := Signs(cur)
	if err != nil {
		return 0, err
	}

	var whole float32
	s := *cur
	i := 0
	for i < len(s) && isASCIIDigitByte(s[i]) {
		whole = whole*10 + float32(s[i]-'0')
		i++
	}
	s = s[i:]

	if len(s) > 0 && (s[0] == '.' || s[0] == ',') {
		s = s[1:]
		var frac float32
		var divisor float32 = 1
		j := 0
		for j < len(s) && isASCIIDigitByte(s[j]) {
			frac = frac*10 + float32(s[j]-'0')
			divisor *= 10
			j++
		}
		whole += frac / divisor
		s = s[j:]
	}

	*cur = s
	return float32(signum) * whole, nil
}

// Dimension parses a floating point value followed by a dimension unit.
func Dimension(cur *string) (event.Dimension, error) {
	value, err := FloatingPoint(cur)
	if err != nil {
		return event.Dimension{}, err
	}
	unit, err := DimensionUnit(cur)
	if err != nil {
		return event.Dimension{}, err
	}
	return event.Dimension{Value: value, Unit: unit}, nil
}

// DimensionUnit parses one of the closed set of two-letter TeX units,
// after skipping leading whitespace, consuming one optional trailing
// space. If the first letter is a plausible unit-start but the pair is
// unknown, the error points at the second letter; otherwise at the
// first.
func DimensionUnit(cur *string) (event.DimensionUnit, error) {
	*cur = strings.TrimLeft(*cur, " \t\n\r\f\v")
	if len(*cur) < 2 {
		return 0, perr.EndOfInput()
	}

	r1, size1 := utf8.DecodeRuneInString(*cur)
	if size1 != 1 {
		return 0, perr.InvalidChar(r1)
	}
	rest := (*cur)[1:]
	r2, size2 := utf8.DecodeRuneInString(rest)
	if size2 != 1 {
		return 0, perr.InvalidChar(r2)
	}

	candidate := (*cur)[0:2]
	unit, ok := event.DimensionUnits[candidate]
	if !ok {
		switch candidate[0] {
		case 'e', 'p', 'i', 'b', 'c', 'm', 'd', 's':
			return 0, perr.InvalidChar(rune(candidate[1]))
		default:
			return 0, perr.InvalidChar(rune(candidate[0]))
		}
	}

	*cur = (*cur)[2:]
	OneOptionalSpace(cur)
	return unit, nil
}

// Glue parses a mandatory dimension, then optional `plus <dimension>`,
// then optional `minus <dimension>` (TeXBook p. 267).
func Glue(cur *string) (event.Glue, error) {
	base, err := Dimension(cur)
	if err != nil {
		return event.Glue{}, err
	}
	g := event.Glue{Base: base}

	trimmed := strings.TrimLeft(*cur, " \t\n\r\f\v")
	if rest, ok := strings.CutPrefix(trimmed, "plus"); ok {
		*cur = rest
		d, err := Dimension(cur)
		if err != nil {
			return event.Glue{}, err
		}
		g.Plus = &d
	}

	trimmed = strings.TrimLeft(*cur, " \t\n\r\f\v")
	if rest, ok := strings.CutPrefix(trimmed, "minus"); ok {
		*cur = rest
		d, err := Dimension(cur)
		if err != nil {
			return event.Glue{}, err
		}
		g.Minus = &d
	}

	return g, nil
}

// OneOptionalSpace consumes exactly one leading whitespace character if
// present and reports whether one was consumed.
func OneOptionalSpace(cur *string) bool {
	r, size := utf8.DecodeRuneInString(*cur)
	if size > 0 && unicode.IsSpace(r) {
		*cur = (*cur)[size:]
		return true
	}
	return false
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIISpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}
