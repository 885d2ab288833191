package json

// tokenKind tags the lexemes the lexer can hand to the grammar driver.
// Whitespace and comments are discarded by the lexer and never become a
// token.
type tokenKind int8

const (
	tokLBrace tokenKind = iota
	tokRBrace
	tokLBracket
	tokRBracket
	tokColon
	tokComma
	tokNull
	tokTrue
	tokFalse
	tokInt
	tokUint
	tokFloat
	tokString
	tokIdentifier
)

// token is a tagged value produced by the lexer. s references the
// scratch buffer and is only valid until the next lexer call.
type token struct {
	kind tokenKind
	i    int64
	u    uint64
	f    float64
	s    []byte
}

// isValueStart reports whether kind can begin a JSON value (a scalar
// literal, a string, or an opening bracket/brace).
func isValueStart(kind tokenKind) bool {
	switch kind {
	case tokLBrace, tokLBracket, tokNull, tokTrue, tokFalse, tokInt, tokUint, tokFloat, tokString:
		return true
	default:
		return false
	}
}
