// Package texparse is the pull-driven parser engine: it owns the
// instruction stack (pending events and substrings still to be
// reparsed) and the group-nesting stack (scoping + font state), and
// lowers TeX-family math markup into event.Event values one at a time.
//
// The design is coroutine-style: a recursive-descent parser's suspended
// continuation, encoded as an explicit stack instead of native
// call-stack recursion, so pull consumers can request one event at a
// time without the engine needing goroutines or channels. Nested brace
// groups and composite arguments do not grow the call stack. Font
// modifiers do: handleFontModifier returns through a nested call to
// Next, so font modifiers reached one directly after another (nested,
// as in \mathbf{\mathrm{x}}, or with empty arguments, as in
// \mathbf{}\mathbf{}) add one call frame per modifier.
package texparse

import (
	"unicode/utf8"

	"github.com/texstream/texevents/internal/domain/event"
	"github.com/texstream/texevents/internal/domain/lexeme"
	"github.com/texstream/texevents/internal/domain/perr"
	"github.com/texstream/texevents/internal/domain/primitive"
	"github.com/texstream/texevents/internal/storage"
)

// GroupType records how a group on the group stack was opened.
type GroupType int

const (
	// GroupInternal groups are opened by a primitive that needs scoped
	// state (most commonly a font change) but must never surface as a
	// BeginGroup/EndGroup pair to the consumer. The outermost seed group
	// is the one exception, bracketing the whole output explicitly.
	GroupInternal GroupType = iota
	// GroupBrace groups are opened by a literal `{` and closed by `}`.
	GroupBrace
	// GroupBeginGroup groups are opened by \begingroup and closed by
	// \endgroup.
	GroupBeginGroup
)

type groupNesting struct {
	fontState event.Font
	groupType GroupType
}

type instrKind int

const (
	instrPendingEvent instrKind = iota
	instrSubstring
)

// instruction is one element of the instruction stack: either an event
// ready to be popped and returned, or a cursor into a string still to be
// lexed and dispatched.
type instruction struct {
	kind  instrKind
	event event.Event

	content                 string
	popInternalGroupOnEmpty bool
	// origin is the byte offset of content's first byte within the
	// original input the Parser was constructed with, or -1 for content
	// with no single faithful position in the original input. Argument
	// text reparsed for composites and font modifiers carries the
	// approximate origin argumentContent assigns; nothing the parser
	// builds today sets -1.
	origin int
}

// Parser is a pull iterator over a TeX-family math string: repeated
// calls to Next() yield one event at a time until the stream is
// exhausted. It holds no locks, performs no I/O, and is owned by a
// single consumer.
type Parser struct {
	input            string
	storage          *storage.Storage
	instructionStack []instruction
	groupStack       []groupNesting
}

// New constructs a Parser over input. storage is an arena-like
// collaborator the parser may intern synthesized strings into (future
// macro expansion); it may be nil if nothing will ever synthesize
// content with a lifetime beyond a single Next() call.
func New(input string, arena *storage.Storage) *Parser {
	return &Parser{
		input:   input,
		storage: arena,
		instructionStack: []instruction{
			{kind: instrPendingEvent, event: event.EndGroup()},
			{kind: instrSubstring, content: input, popInternalGroupOnEmpty: true, origin: 0},
			{kind: instrPendingEvent, event: event.BeginGroup()},
		},
		groupStack: []groupNesting{{fontState: event.FontNone, groupType: GroupInternal}},
	}
}

// Next returns the next event, or ok=false when the stream is
// exhausted. A non-nil error leaves the Parser in an unspecified state;
// it should be dropped after an error, not reused.
func (p *Parser) Next() (event.Event, bool, error) {
	for {
		if len(p.instructionStack) == 0 {
			return event.Event{}, false, nil
		}
		idx := len(p.instructionStack) - 1
		top := p.instructionStack[idx]

		if top.kind == instrPendingEvent {
			p.instructionStack = p.instructionStack[:idx]
			return top.event, true, nil
		}

		if top.content == "" {
			p.instructionStack = p.instructionStack[:idx]
			if top.popInternalGroupOnEmpty {
				gidx := len(p.groupStack) - 1
				if gidx < 0 || p.groupStack[gidx].groupType != GroupInternal {
					panic("texparse: internal error: expected Internal group at top of stack")
				}
				p.groupStack = p.groupStack[:gidx]
			}
			continue
		}

		r, size := utf8.DecodeRuneInString(top.content)

		switch {
		case r == '.' || isASCIIDigit(r):
			numLen := size
			for _, c := range top.content[size:] {
				if isASCIIDigit(c) || c == '.' {
					numLen += utf8.RuneLen(c)
					continue
				}
				break
			}
			digits := top.content[:numLen]
			p.advanceTopContent(idx, top.content[numLen:])
			return event.NewContent(event.Content{Number: &event.Number{
				Digits:  digits,
				Variant: p.currentGroup().fontState,
			}}), true, nil

		case r == '\\':
			rest := top.content[size:]
			p.advanceTopContent(idx, rest)
			content := p.instructionStack[idx].content
			name := lexeme.RhsControlSequence(&content)
			p.advanceTopContent(idx, content)
			return p.handlePrimitive(name)

		default:
			p.advanceTopContent(idx, top.content[size:])
			if isWhitespace(r) {
				continue
			}
			if r == '%' {
				p.skipToEndOfLine()
				continue
			}
			return p.handleCharToken(r)
		}
	}
}

func (p *Parser) currentGroup() groupNesting {
	return p.groupStack[len(p.groupStack)-1]
}

// advanceTopContent writes remaining back into instructionStack[idx] and
// keeps that instruction's origin in sync with how many bytes were
// consumed. It assumes content only ever shrinks from the front.
func (p *Parser) advanceTopContent(idx int, remaining string) {
	old := p.instructionStack[idx].content
	consumed := len(old) - len(remaining)
	if p.instructionStack[idx].origin >= 0 {
		p.instructionStack[idx].origin += consumed
	}
	p.instructionStack[idx].content = remaining
}

// BytePos returns the byte offset of the parser's current cursor within
// the original input string, and true. It returns (0, false) if the
// top substring has origin -1 (no faithful position in the original
// input) or no substring is left on the stack. Inside reparsed argument
// text the offset is argumentContent's approximation.
func (p *Parser) BytePos() (int, bool) {
	for i := len(p.instructionStack) - 1; i >= 0; i-- {
		ins := p.instructionStack[i]
		if ins.kind == instrSubstring {
			if ins.origin < 0 {
				return 0, false
			}
			return ins.origin, true
		}
	}
	return 0, false
}

// handleCharToken dispatches one character token by its syntactic
// class. Whitespace and `%` comments never reach it; Next consumes
// those in its own loop so a long run of either cannot grow the call
// stack.
func (p *Parser) handleCharToken(c rune) (event.Event, bool, error) {
	switch c {
	case '{':
		p.groupStack = append(p.groupStack, groupNesting{fontState: p.currentGroup().fontState, groupType: GroupBrace})
		return event.BeginGroup(), true, nil

	case '}':
		gidx := len(p.groupStack) - 1
		if gidx < 0 || p.groupStack[gidx].groupType != GroupBrace {
			return event.Event{}, false, perr.UnmatchedClose()
		}
		p.groupStack = p.groupStack[:gidx]
		return event.EndGroup(), true, nil

	case '_':
		return event.NewInfix(event.Subscript), true, nil
	case '^':
		return event.NewInfix(event.Superscript), true, nil

	case '$':
		return event.Event{}, false, perr.MathShift()
	case '#':
		return event.Event{}, false, perr.HashSign()
	case '&':
		return event.Event{}, false, perr.AlignmentChar()

	default:
		return p.classifyPlainChar(c), true, nil
	}
}

// skipToEndOfLine consumes the rest of the current line from the top
// substring instruction, implementing `%` comments.
func (p *Parser) skipToEndOfLine() {
	idx := len(p.instructionStack) - 1
	content := p.instructionStack[idx].content
	if nl := indexByteRune(content, '\n'); nl >= 0 {
		p.advanceTopContent(idx, content[nl+1:])
	} else {
		p.advanceTopContent(idx, "")
	}
}

func indexByteRune(s string, target rune) int {
	for i, r := range s {
		if r == target {
			return i
		}
	}
	return -1
}

// classifyPlainChar handles a character with no special syntactic role:
// it is either an identifier or an operator, per a small fixed
// classification (see the primitive package's doc comment for the
// intended scope of the symbol tables).
func (p *Parser) classifyPlainChar(c rune) event.Event {
	if plainOperatorChars[c] {
		return event.NewContent(event.Content{Operator: &event.Operator{Char: c}})
	}
	return event.NewContent(event.Content{Identifier: &event.Identifier{
		Char:    c,
		Variant: p.currentGroup().fontState,
	}})
}

var plainOperatorChars = map[rune]bool{
	'+': true, '-': true, '*': true, '/': true,
	'=': true, '<': true, '>': true, '!': true,
	'(': true, ')': true, '[': true, ']': true, '|': true,
}

// handlePrimitive dispatches a control sequence name through the
// primitive table.
func (p *Parser) handlePrimitive(name string) (event.Event, bool, error) {
	action, ok := primitive.Lookup(name)
	if !ok {
		return event.Event{}, false, perr.UnknownControlSequence(name)
	}

	switch action.Kind {
	case primitive.KindIdentifier:
		return event.NewContent(event.Content{Identifier: &event.Identifier{
			Char:    action.Char,
			Variant: p.currentGroup().fontState,
		}}), true, nil

	case primitive.KindOperator:
		return event.NewContent(event.Content{Operator: &event.Operator{
			Char:           action.Char,
			Stretchy:       action.Stretchy,
			MoveableLimits: action.MoveableLimits,
			LeftSpace:      action.LeftSpace,
			RightSpace:     action.RightSpace,
		}}), true, nil

	case primitive.KindGroupOpen:
		p.groupStack = append(p.groupStack, groupNesting{fontState: p.currentGroup().fontState, groupType: GroupBeginGroup})
		return event.BeginGroup(), true, nil

	case primitive.KindGroupClose:
		gidx := len(p.groupStack) - 1
		if gidx < 0 || p.groupStack[gidx].groupType != GroupBeginGroup {
			return event.Event{}, false, perr.UnmatchedClose()
		}
		p.groupStack = p.groupStack[:gidx]
		return event.EndGroup(), true, nil

	case primitive.KindFontModifier:
		return p.handleFontModifier(action)

	case primitive.KindComposite:
		return p.handleComposite(action)

	case primitive.KindInfix:
		return event.NewInfix(action.Infix), true, nil

	default:
		return event.Event{}, false, perr.UnknownControlSequence(name)
	}
}

// handleFontModifier parses one argument and opens an Internal group
// around it carrying the new font state. The argument is reparsed as a
// Substring so any primitives nested inside it (e.g. `\mathbf{x_i}`)
// still go through the ordinary dispatch.
func (p *Parser) handleFontModifier(action primitive.Action) (event.Event, bool, error) {
	arg, err := p.parseOneArgument()
	if err != nil {
		return event.Event{}, false, err
	}
	content, origin := p.argumentContent(arg)

	p.groupStack = append(p.groupStack, groupNesting{fontState: action.Font, groupType: GroupInternal})
	p.instructionStack = append(p.instructionStack, instruction{
		kind:                    instrSubstring,
		content:                 content,
		popInternalGroupOnEmpty: true,
		origin:                  origin,
	})
	return p.Next()
}

// handleComposite desugars an argument-consuming primitive (\frac,
// \sqrt, \bar, ...) into its event/substring sequence, pushed in
// reverse so it pops out in forward order.
func (p *Parser) handleComposite(action primitive.Action) (event.Event, bool, error) {
	args, err := p.parseArguments(action.ArgCount)
	if err != nil {
		return event.Event{}, false, err
	}

	switch action.Form {
	case primitive.FormFraction:
		num, numOrigin := p.argumentContent(args[0])
		den, denOrigin := p.argumentContent(args[1])
		p.enqueue(
			pendingEvent(event.BeginGroup()),
			substringItem(num, numOrigin),
			pendingEvent(event.EndGroup()),
			pendingEvent(event.NewInfix(event.Fraction)),
			pendingEvent(event.BeginGroup()),
			substringItem(den, denOrigin),
			pendingEvent(event.EndGroup()),
		)
		return p.Next()

	case primitive.FormRadical:
		radicand, origin := p.argumentContent(args[0])
		stretchy := true
		p.enqueue(
			pendingEvent(event.NewContent(event.Content{Operator: &event.Operator{Char: action.OpChar, Stretchy: &stretchy}})),
			pendingEvent(event.BeginGroup()),
			substringItem(radicand, origin),
			pendingEvent(event.EndGroup()),
		)
		return p.Next()

	case primitive.FormOverscriptOperator, primitive.FormUnderscriptOperator:
		base, origin := p.argumentContent(args[0])
		kind := event.Overscript
		if action.Form == primitive.FormUnderscriptOperator {
			kind = event.Underscript
		}
		p.enqueue(
			pendingEvent(event.BeginGroup()),
			substringItem(base, origin),
			pendingEvent(event.EndGroup()),
			pendingEvent(event.NewInfix(kind)),
			pendingEvent(event.NewContent(event.Content{Operator: &event.Operator{Char: action.OpChar}})),
		)
		return p.Next()

	default:
		return event.Event{}, false, perr.UnknownControlSequence("")
	}
}

// parseOneArgument parses a single argument from the top substring.
func (p *Parser) parseOneArgument() (lexeme.Arg, error) {
	idx := len(p.instructionStack) - 1
	content := p.instructionStack[idx].content
	arg, err := lexeme.Argument(&content)
	p.advanceTopContent(idx, content)
	if err != nil {
		return lexeme.Arg{}, err
	}
	return arg, nil
}

// parseArguments parses n arguments in order from the top substring.
func (p *Parser) parseArguments(n int) ([]lexeme.Arg, error) {
	idx := len(p.instructionStack) - 1
	content := p.instructionStack[idx].content
	args, err := lexeme.Arguments(&content, n)
	p.advanceTopContent(idx, content)
	if err != nil {
		return nil, err
	}
	return args, nil
}

// argumentContent turns a parsed Argument back into literal text to
// reparse as a Substring, and the best-effort byte origin for that
// text. For both a braced Group and a bare Token this is the parent
// substring's current origin, i.e. the offset just past the last
// argument the primitive consumed, not the start of this argument's own
// text (for `\bar{y}` the origin is 7, not 5). Exact positions would
// require lexeme to thread offsets through every scanner function.
func (p *Parser) argumentContent(arg lexeme.Arg) (content string, origin int) {
	idx := len(p.instructionStack) - 1
	origin = p.instructionStack[idx].origin

	switch arg.Kind {
	case lexeme.ArgGroup:
		return arg.Group, origin
	case lexeme.ArgToken:
		if arg.Token.Kind == lexeme.TokenCharacter {
			return string(arg.Token.Character), origin
		}
		return `\` + arg.Token.ControlSequence, origin
	default:
		return "", origin
	}
}

type stackItem struct {
	isEvent bool
	event   event.Event
	content string
	origin  int
}

func pendingEvent(e event.Event) stackItem { return stackItem{isEvent: true, event: e} }

func substringItem(content string, origin int) stackItem {
	return stackItem{isEvent: false, content: content, origin: origin}
}

// enqueue pushes items onto the instruction stack in reverse so that,
// popped one at a time by Next(), they are emitted in the order given.
func (p *Parser) enqueue(items ...stackItem) {
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		if it.isEvent {
			p.instructionStack = append(p.instructionStack, instruction{kind: instrPendingEvent, event: it.event})
		} else {
			p.instructionStack = append(p.instructionStack, instruction{
				kind:                    instrSubstring,
				content:                 it.content,
				popInternalGroupOnEmpty: false,
				origin:                  it.origin,
			})
		}
	}
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
