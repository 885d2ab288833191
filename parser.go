package json

// defaultMaxStackDepth is the default bound on nested array/object depth.
const defaultMaxStackDepth = 200

// defaultMaxStringLength is the default bound, in code points, on a
// string or identifier lexeme.
const defaultMaxStringLength = 1 << 16

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxStackDepth overrides the default nesting bound (200).
func WithMaxStackDepth(n int) Option {
	return func(p *Parser) { p.maxStackDepth = n }
}

// WithMaxStringLength overrides the default string/identifier length
// bound (65536 code points).
func WithMaxStringLength(n int) Option {
	return func(p *Parser) { p.maxStringLength = n }
}

// WithExtensions sets the grammar extensions a Parser accepts, as an
// alternative to passing them positionally to New.
func WithExtensions(ext Extensions) Option {
	return func(p *Parser) { p.ext = ext }
}

// Parser is an incremental, single-use JSON parser. Construct one with
// New, feed it input with Push, and finalize it with Eof.
type Parser struct {
	backend Backend
	ext     Extensions

	maxStackDepth   int
	maxStringLength int

	codec utf8Decoder
	pos   positionTracker

	tokenStart Position

	lexState lexState

	// number scanner state
	numSt    numSubState
	negative bool
	numBuf   []byte

	// keyword / bare-literal scanner state
	kw       keywordMatcher
	kwActive bool

	// string / identifier scratch scanner state
	inIdentifier bool
	quote        rune
	text         textSubState
	hexDigits    int
	hexAccum     uint16
	highSurr     uint16
	scratch      []byte
	scratchRunes int

	// grammar driver state
	stack   []frame
	closers []func() error
	top     topState

	err    error
	closed bool
}

// New constructs a Parser bound to backend with the given extensions
// enabled. The Parser is ready to receive input via Push.
func New(backend Backend, ext Extensions, opts ...Option) *Parser {
	p := &Parser{
		backend:         backend,
		ext:             ext,
		maxStackDepth:   defaultMaxStackDepth,
		maxStringLength: defaultMaxStringLength,
		codec:           newUTF8Decoder(),
		pos:             newPositionTracker(),
		tokenStart:      startPosition(),
		lexState:        lexStart,
		top:             topStart,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Push feeds a chunk of input bytes to the parser. It returns the same
// Parser so calls can be chained. Errors are never returned directly;
// once a push causes a failure, LastError reports it and every
// subsequent call (Push or Eof) is a no-op that returns the same error.
func (p *Parser) Push(chunk []byte) *Parser {
	for _, b := range chunk {
		if p.err != nil {
			return p
		}
		r, complete := p.codec.step(b)
		if !complete {
			continue
		}
		p.consume(r)
	}
	return p
}

// Input is an alias for Push, matching the conceptual API name in the
// parser's design (input(bytes) -> &mut Parser).
func (p *Parser) Input(chunk []byte) *Parser { return p.Push(chunk) }

// consume feeds one fully-decoded code point through the lexer, then
// advances the position tracker for the next one.
func (p *Parser) consume(r rune) {
	if p.err != nil {
		return
	}
	if err := p.step(r); err != nil {
		p.latch(err)
		return
	}
	p.pos.advance(r)
}

// Eof finalizes the parser: it flushes any pending number/keyword match,
// verifies the grammar is in a completion-accepting state, and returns
// the backend's Result, or the latched error.
func (p *Parser) Eof() (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.closed {
		return p.backend.Result()
	}
	p.closed = true

	if !p.codec.accepting() || !p.codec.wellFormed {
		return nil, p.latch(p.fail(CodeBadUnicodeCodePoint))
	}
	if err := p.finalizeAtEOF(); err != nil {
		return nil, p.latch(err)
	}
	if len(p.stack) != 0 || p.top != topDone {
		return nil, p.latch(p.eofGrammarError())
	}
	return p.backend.Result()
}

// LastError returns the latched error, or nil if the parser has not
// failed.
func (p *Parser) LastError() error {
	if p.err == nil {
		return nil
	}
	return p.err
}

// Pos returns the position at which the most recently delivered (or
// currently in-flight) token began.
func (p *Parser) Pos() Position { return p.tokenStart }

// InputPos returns the current input position: where the next byte will
// be classified.
func (p *Parser) InputPos() Position { return p.pos.cur }

func (p *Parser) fail(code Code) *Error {
	return &Error{Code: code, Pos: p.tokenStart, Input: p.pos.cur}
}

// latch records the first error seen — from the lexer/grammar (always
// *Error) or from a Backend callback (any error) — and ignores any
// later one, matching Push/Eof's "first failure wins" contract.
func (p *Parser) latch(err error) error {
	if p.err == nil {
		p.err = err
	}
	return p.err
}

func (p *Parser) startToken() {
	p.tokenStart = p.pos.cur
}
