package json

import "fmt"

// Code enumerates the taxonomy of parse failures. It is never the whole
// error value by itself: a Code is always latched together with the
// Position at which the offending token began.
type Code int

// The full error taxonomy, per the grammar and lexical rules this package
// enforces. CodeNone is the zero value and means "no error".
const (
	CodeNone Code = iota
	CodeBadUnicodeCodePoint
	CodeExpectedArrayMember
	CodeExpectedCloseQuote
	CodeExpectedColon
	CodeExpectedDigits
	CodeExpectedObjectKey
	CodeExpectedObjectMember
	CodeExpectedToken
	CodeInvalidEscapeChar
	CodeInvalidHexChar
	CodeNestingTooDeep
	CodeNumberOutOfRange
	CodeUnexpectedExtraInput
	CodeUnrecognizedToken
	CodeStringTooLong
	CodeIdentifierTooLong
	CodeUnterminatedMultilineComment
	CodeBadIdentifier
)

var codeNames = [...]string{
	CodeNone:                         "none",
	CodeBadUnicodeCodePoint:          "bad_unicode_code_point",
	CodeExpectedArrayMember:          "expected_array_member",
	CodeExpectedCloseQuote:           "expected_close_quote",
	CodeExpectedColon:                "expected_colon",
	CodeExpectedDigits:               "expected_digits",
	CodeExpectedObjectKey:            "expected_object_key",
	CodeExpectedObjectMember:         "expected_object_member",
	CodeExpectedToken:                "expected_token",
	CodeInvalidEscapeChar:            "invalid_escape_char",
	CodeInvalidHexChar:               "invalid_hex_char",
	CodeNestingTooDeep:               "nesting_too_deep",
	CodeNumberOutOfRange:             "number_out_of_range",
	CodeUnexpectedExtraInput:         "unexpected_extra_input",
	CodeUnrecognizedToken:            "unrecognized_token",
	CodeStringTooLong:                "string_too_long",
	CodeIdentifierTooLong:            "identifier_too_long",
	CodeUnterminatedMultilineComment: "unterminated_multiline_comment",
	CodeBadIdentifier:                "bad_identifier",
}

// String returns the taxonomy spelling of the code, e.g. "expected_colon".
func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "unknown_error"
	}
	return codeNames[c]
}

// Error is the latched, terminal diagnosis a Parser surfaces. It carries
// the position at which the offending token began (Pos) and the input
// position at which the offending byte was consumed (Input).
type Error struct {
	Code  Code
	Pos   Position
	Input Position
}

func (e *Error) Error() string {
	if e.Code == CodeNone {
		return "json: no error"
	}
	return fmt.Sprintf("json: %s at line %d, column %d", e.Code, e.Pos.Line, e.Pos.Column)
}

// Is reports whether target is an *Error with the same Code, so that
// callers can write errors.Is(err, json.ErrStringTooLong) regardless of
// the position the latched error actually carries.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

// Sentinel errors for every taxonomy member, usable with errors.Is. Their
// Pos/Input fields are zero; compare only against the Code via Is.
var (
	ErrBadUnicodeCodePoint          = &Error{Code: CodeBadUnicodeCodePoint}
	ErrExpectedArrayMember          = &Error{Code: CodeExpectedArrayMember}
	ErrExpectedCloseQuote           = &Error{Code: CodeExpectedCloseQuote}
	ErrExpectedColon                = &Error{Code: CodeExpectedColon}
	ErrExpectedDigits               = &Error{Code: CodeExpectedDigits}
	ErrExpectedObjectKey            = &Error{Code: CodeExpectedObjectKey}
	ErrExpectedObjectMember         = &Error{Code: CodeExpectedObjectMember}
	ErrExpectedToken                = &Error{Code: CodeExpectedToken}
	ErrInvalidEscapeChar            = &Error{Code: CodeInvalidEscapeChar}
	ErrInvalidHexChar               = &Error{Code: CodeInvalidHexChar}
	ErrNestingTooDeep               = &Error{Code: CodeNestingTooDeep}
	ErrNumberOutOfRange             = &Error{Code: CodeNumberOutOfRange}
	ErrUnexpectedExtraInput         = &Error{Code: CodeUnexpectedExtraInput}
	ErrUnrecognizedToken            = &Error{Code: CodeUnrecognizedToken}
	ErrStringTooLong                = &Error{Code: CodeStringTooLong}
	ErrIdentifierTooLong            = &Error{Code: CodeIdentifierTooLong}
	ErrUnterminatedMultilineComment = &Error{Code: CodeUnterminatedMultilineComment}
	ErrBadIdentifier                = &Error{Code: CodeBadIdentifier}
)
