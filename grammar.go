package json

// containerKind distinguishes an array frame from an object frame.
type containerKind int8

const (
	containerArray containerKind = iota
	containerObject
)

// frameState is the sub-state within one nested container, per
// spec.md section 4.6's grammar table.
type frameState int8

const (
	arrAfterOpen frameState = iota
	arrAfterValue
	arrAfterComma

	objAfterOpen
	objAfterKey
	objAfterColon
	objAfterValue
	objAfterComma
)

// frame is one entry in the nesting stack: which kind of container is
// open, and where within it the grammar currently stands.
type frame struct {
	kind  containerKind
	state frameState
}

// topState tracks the single value the whole document is.
type topState int8

const (
	topStart topState = iota
	topDone
)

// expectingKey reports whether the current grammar position expects an
// object key next; used by the IdentifierObjectKey extension to decide
// whether a bare identifier is permitted at this point.
func (p *Parser) expectingKey() bool {
	if len(p.stack) == 0 {
		return false
	}
	top := &p.stack[len(p.stack)-1]
	if top.kind != containerObject {
		return false
	}
	return top.state == objAfterOpen || top.state == objAfterComma
}

// acceptToken drives the grammar one token forward. It is called by the
// lexer every time it completes a lexeme.
func (p *Parser) acceptToken(tok token) error {
	if len(p.stack) == 0 {
		return p.acceptTopToken(tok)
	}
	top := &p.stack[len(p.stack)-1]
	if top.kind == containerArray {
		return p.acceptArrayToken(tok)
	}
	return p.acceptObjectToken(tok)
}

func (p *Parser) acceptTopToken(tok token) error {
	switch p.top {
	case topStart:
		return p.acceptValueToken(tok, p.closeTopValue)
	case topDone:
		return p.fail(CodeUnexpectedExtraInput)
	default:
		return p.fail(CodeExpectedToken)
	}
}

func (p *Parser) closeTopValue() error {
	p.top = topDone
	return nil
}

func (p *Parser) acceptArrayToken(tok token) error {
	top := &p.stack[len(p.stack)-1]
	switch top.state {
	case arrAfterOpen:
		if tok.kind == tokRBracket {
			return p.popFrame(p.emitEndArray)
		}
		return p.acceptValueToken(tok, p.afterArrayValue)
	case arrAfterValue:
		switch tok.kind {
		case tokRBracket:
			return p.popFrame(p.emitEndArray)
		case tokComma:
			top.state = arrAfterComma
			return nil
		default:
			return p.fail(CodeExpectedArrayMember)
		}
	case arrAfterComma:
		if tok.kind == tokRBracket {
			if p.ext.Has(ArrayTrailingComma) {
				return p.popFrame(p.emitEndArray)
			}
			return p.fail(CodeExpectedArrayMember)
		}
		return p.acceptValueToken(tok, p.afterArrayValue)
	}
	return p.fail(CodeExpectedToken)
}

func (p *Parser) afterArrayValue() error {
	p.stack[len(p.stack)-1].state = arrAfterValue
	return nil
}

func (p *Parser) acceptObjectToken(tok token) error {
	top := &p.stack[len(p.stack)-1]
	switch top.state {
	case objAfterOpen:
		if tok.kind == tokRBrace {
			return p.popFrame(p.emitEndObject)
		}
		return p.acceptKeyToken(tok, top)
	case objAfterKey:
		if tok.kind != tokColon {
			return p.fail(CodeExpectedColon)
		}
		top.state = objAfterColon
		return nil
	case objAfterColon:
		return p.acceptValueToken(tok, p.afterObjectValue)
	case objAfterValue:
		switch tok.kind {
		case tokRBrace:
			return p.popFrame(p.emitEndObject)
		case tokComma:
			top.state = objAfterComma
			return nil
		default:
			return p.fail(CodeExpectedObjectMember)
		}
	case objAfterComma:
		if tok.kind == tokRBrace {
			if p.ext.Has(ObjectTrailingComma) {
				return p.popFrame(p.emitEndObject)
			}
			return p.fail(CodeExpectedObjectKey)
		}
		return p.acceptKeyToken(tok, top)
	}
	return p.fail(CodeExpectedToken)
}

func (p *Parser) acceptKeyToken(tok token, top *frame) error {
	switch tok.kind {
	case tokString, tokIdentifier:
		if err := p.backend.Key(tok.s); err != nil {
			return err
		}
		top.state = objAfterKey
		return nil
	default:
		return p.fail(CodeExpectedObjectKey)
	}
}

func (p *Parser) afterObjectValue() error {
	p.stack[len(p.stack)-1].state = objAfterValue
	return nil
}

// acceptValueToken dispatches a token that is expected to begin (or be)
// a JSON value. onValueDone is called after a scalar value's backend
// callback succeeds, or (for container opens) deferred until the matching
// close; it advances whichever grammar position — top-level or
// array/object — requested this value.
func (p *Parser) acceptValueToken(tok token, onValueDone func() error) error {
	switch tok.kind {
	case tokLBrace:
		return p.pushFrame(containerObject, objAfterOpen, p.backend.BeginObject, onValueDone)
	case tokLBracket:
		return p.pushFrame(containerArray, arrAfterOpen, p.backend.BeginArray, onValueDone)
	case tokNull:
		if err := p.backend.Null(); err != nil {
			return err
		}
	case tokTrue:
		if err := p.backend.Bool(true); err != nil {
			return err
		}
	case tokFalse:
		if err := p.backend.Bool(false); err != nil {
			return err
		}
	case tokInt:
		if err := p.backend.Int64(tok.i); err != nil {
			return err
		}
	case tokUint:
		ub, ok := p.backend.(Uint64Backend)
		if !ok {
			return p.fail(CodeNumberOutOfRange)
		}
		if err := ub.Uint64(tok.u); err != nil {
			return err
		}
	case tokFloat:
		if err := p.backend.Float64(tok.f); err != nil {
			return err
		}
	case tokString:
		if err := p.backend.String(tok.s); err != nil {
			return err
		}
	default:
		return p.fail(CodeExpectedToken)
	}
	return onValueDone()
}

// pushFrame opens a new container: it invokes the backend's Begin
// callback, pushes the nesting stack (enforcing max_stack_depth), and
// remembers onClose so popFrame can later advance whatever grammar
// position this container itself was a value for.
func (p *Parser) pushFrame(kind containerKind, initial frameState, begin func() error, onClose func() error) error {
	if len(p.stack) >= p.maxStackDepth {
		return p.fail(CodeNestingTooDeep)
	}
	if err := begin(); err != nil {
		return err
	}
	p.stack = append(p.stack, frame{kind: kind, state: initial})
	p.closers = append(p.closers, onClose)
	return nil
}

func (p *Parser) popFrame(end func() error) error {
	if err := end(); err != nil {
		return err
	}
	p.stack = p.stack[:len(p.stack)-1]
	onClose := p.closers[len(p.closers)-1]
	p.closers = p.closers[:len(p.closers)-1]
	return onClose()
}

func (p *Parser) emitEndArray() error { return p.backend.EndArray() }
func (p *Parser) emitEndObject() error { return p.backend.EndObject() }

// eofGrammarError reports why the document ended with the grammar not in
// a completion-accepting state: either still inside one or more open
// containers, or having never produced a top-level value at all.
func (p *Parser) eofGrammarError() *Error {
	if len(p.stack) != 0 {
		top := p.stack[len(p.stack)-1]
		if top.kind == containerArray {
			return p.fail(CodeExpectedArrayMember)
		}
		return p.fail(CodeExpectedObjectMember)
	}
	return p.fail(CodeExpectedToken)
}
