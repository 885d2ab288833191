// Package schema implements a partial JSON-Schema validator consulting a
// dom.Node instance against a dom.Node schema, modeled on peejay's
// lib/schema/schema.cpp: a type-name predicate table and int64-vs-double
// aware numeric constraint checks. Its error taxonomy is disjoint from
// package json's.
package schema

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/mcvoid/pjson/dom"
)

// Code enumerates why a Validate call failed.
type Code int

const (
	CodeNone Code = iota
	CodeWrongType
	CodeNotInEnum
	CodeConstMismatch
	CodeTooShort
	CodeTooLong
	CodeTooFewProperties
	CodeTooManyProperties
	CodeNotMultiple
	CodeBelowMinimum
	CodeAboveMaximum
)

func (c Code) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeWrongType:
		return "wrong_type"
	case CodeNotInEnum:
		return "not_in_enum"
	case CodeConstMismatch:
		return "const_mismatch"
	case CodeTooShort:
		return "too_short"
	case CodeTooLong:
		return "too_long"
	case CodeTooFewProperties:
		return "too_few_properties"
	case CodeTooManyProperties:
		return "too_many_properties"
	case CodeNotMultiple:
		return "not_multiple"
	case CodeBelowMinimum:
		return "below_minimum"
	case CodeAboveMaximum:
		return "above_maximum"
	default:
		return "unknown_error"
	}
}

// Error reports one constraint violation, including the JSONPath-ish
// location (dot-separated, "$" for the root) at which it occurred.
type Error struct {
	Code Code
	Path string
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("schema: %s at %s: %s", e.Code, e.Path, e.Msg)
}

// Validate checks instance against schemaNode, which is either a JSON
// boolean (true accepts anything, false accepts nothing) or a JSON
// object of constraint keywords, both represented as dom.Node. It
// returns the first violation found, or nil if instance is valid.
func Validate(schemaNode, instance dom.Node) error {
	return validateAt(schemaNode, instance, "$")
}

func validateAt(s, v dom.Node, path string) error {
	if s.Kind() == dom.KindBool {
		ok, _ := s.AsBool()
		if !ok {
			return &Error{Code: CodeWrongType, Path: path, Msg: "schema is false: nothing validates"}
		}
		return nil
	}
	if s.Kind() != dom.KindObject {
		return nil
	}

	if s.HasKey("type") {
		if err := checkType(s.Key("type"), v, path); err != nil {
			return err
		}
	}
	if s.HasKey("enum") {
		if err := checkEnum(s.Key("enum"), v, path); err != nil {
			return err
		}
	}
	if s.HasKey("const") {
		if c := s.Key("const"); !c.Equal(v) {
			return &Error{Code: CodeConstMismatch, Path: path, Msg: "value does not equal const"}
		}
	}
	if s.HasKey("minLength") {
		if err := checkLength(s.Key("minLength"), v, path, false); err != nil {
			return err
		}
	}
	if s.HasKey("maxLength") {
		if err := checkLength(s.Key("maxLength"), v, path, true); err != nil {
			return err
		}
	}
	// pattern is reserved: accepted in a schema document but never
	// enforced. No regex engine is wired in; a string instance always
	// passes it.
	if s.HasKey("properties") {
		if err := checkProperties(s.Key("properties"), v, path); err != nil {
			return err
		}
	}
	if s.HasKey("minProperties") {
		if err := checkPropertyCount(s.Key("minProperties"), v, path, false); err != nil {
			return err
		}
	}
	if s.HasKey("maxProperties") {
		if err := checkPropertyCount(s.Key("maxProperties"), v, path, true); err != nil {
			return err
		}
	}
	if err := checkNumberConstraints(s, v, path); err != nil {
		return err
	}
	return nil
}

func asFloat(n dom.Node) (float64, bool) {
	switch n.Kind() {
	case dom.KindInt64:
		v, _ := n.AsInt64()
		return float64(v), true
	case dom.KindUint64:
		v, _ := n.AsUint64()
		return float64(v), true
	case dom.KindFloat64:
		return n.AsFloat64()
	default:
		return 0, false
	}
}

func matchesTypeName(name string, v dom.Node) bool {
	switch name {
	case "null":
		return v.Kind() == dom.KindNull
	case "boolean":
		return v.Kind() == dom.KindBool
	case "string":
		return v.Kind() == dom.KindString
	case "array":
		return v.Kind() == dom.KindArray
	case "object":
		return v.Kind() == dom.KindObject
	case "number":
		return v.Kind() == dom.KindInt64 || v.Kind() == dom.KindUint64 || v.Kind() == dom.KindFloat64
	case "integer":
		switch v.Kind() {
		case dom.KindInt64, dom.KindUint64:
			return true
		case dom.KindFloat64:
			f, _ := v.AsFloat64()
			return !math.IsInf(f, 0) && f == math.Trunc(f)
		default:
			return false
		}
	default:
		return false
	}
}

func checkType(typeNode, v dom.Node, path string) error {
	switch typeNode.Kind() {
	case dom.KindString:
		name, _ := typeNode.AsString()
		if !matchesTypeName(name, v) {
			return &Error{Code: CodeWrongType, Path: path, Msg: fmt.Sprintf("value is not of type %q", name)}
		}
		return nil
	case dom.KindArray:
		names, _ := typeNode.AsArray()
		for _, tn := range names {
			name, _ := tn.AsString()
			if matchesTypeName(name, v) {
				return nil
			}
		}
		return &Error{Code: CodeWrongType, Path: path, Msg: "value does not match any listed type"}
	default:
		return nil
	}
}

func checkEnum(enumNode, v dom.Node, path string) error {
	items, _ := enumNode.AsArray()
	for _, it := range items {
		if it.Equal(v) {
			return nil
		}
	}
	return &Error{Code: CodeNotInEnum, Path: path, Msg: "value is not one of the enum values"}
}

func checkLength(n, v dom.Node, path string, isMax bool) error {
	s, ok := v.AsString()
	if !ok {
		return nil
	}
	bound, ok := asFloat(n)
	if !ok {
		return nil
	}
	length := float64(utf8.RuneCountInString(s))
	if isMax && length > bound {
		return &Error{Code: CodeTooLong, Path: path, Msg: "string is longer than maxLength"}
	}
	if !isMax && length < bound {
		return &Error{Code: CodeTooShort, Path: path, Msg: "string is shorter than minLength"}
	}
	return nil
}

func checkProperties(propsNode, v dom.Node, path string) error {
	if v.Kind() != dom.KindObject {
		return nil
	}
	members, _ := propsNode.AsObject()
	for _, m := range members {
		if !v.HasKey(m.Key) {
			continue
		}
		if err := validateAt(m.Value, v.Key(m.Key), path+"."+m.Key); err != nil {
			return err
		}
	}
	return nil
}

func checkPropertyCount(n, v dom.Node, path string, isMax bool) error {
	if v.Kind() != dom.KindObject {
		return nil
	}
	bound, ok := asFloat(n)
	if !ok {
		return nil
	}
	count := float64(v.Len())
	if isMax && count > bound {
		return &Error{Code: CodeTooManyProperties, Path: path, Msg: "object has more than maxProperties members"}
	}
	if !isMax && count < bound {
		return &Error{Code: CodeTooFewProperties, Path: path, Msg: "object has fewer than minProperties members"}
	}
	return nil
}

func checkNumberConstraints(s, v dom.Node, path string) error {
	fv, ok := asFloat(v)
	if !ok {
		return nil
	}

	if s.HasKey("multipleOf") {
		m, ok := asFloat(s.Key("multipleOf"))
		if ok && m != 0 {
			q := fv / m
			if q != math.Trunc(q) {
				return &Error{Code: CodeNotMultiple, Path: path, Msg: "value is not a multiple of multipleOf"}
			}
		}
	}
	if s.HasKey("minimum") {
		if m, ok := asFloat(s.Key("minimum")); ok && fv < m {
			return &Error{Code: CodeBelowMinimum, Path: path, Msg: "value is below minimum"}
		}
	}
	if s.HasKey("exclusiveMinimum") {
		if m, ok := asFloat(s.Key("exclusiveMinimum")); ok && fv <= m {
			return &Error{Code: CodeBelowMinimum, Path: path, Msg: "value is not above exclusiveMinimum"}
		}
	}
	if s.HasKey("maximum") {
		if m, ok := asFloat(s.Key("maximum")); ok && fv > m {
			return &Error{Code: CodeAboveMaximum, Path: path, Msg: "value is above maximum"}
		}
	}
	if s.HasKey("exclusiveMaximum") {
		if m, ok := asFloat(s.Key("exclusiveMaximum")); ok && fv >= m {
			return &Error{Code: CodeAboveMaximum, Path: path, Msg: "value is not below exclusiveMaximum"}
		}
	}
	return nil
}
