// Package discard provides a no-op pjson.Backend for validate-only
// parses, where the caller only cares whether the input is well-formed
// and has no use for the parsed value itself.
package discard

import pjson "github.com/mcvoid/pjson"

// Backend implements pjson.Backend and pjson.Uint64Backend with every
// callback a no-op.
type Backend struct{}

var (
	_ pjson.Backend       = Backend{}
	_ pjson.Uint64Backend = Backend{}
)

func (Backend) Null() error             { return nil }
func (Backend) Bool(bool) error         { return nil }
func (Backend) Int64(int64) error       { return nil }
func (Backend) Uint64(uint64) error     { return nil }
func (Backend) Float64(float64) error   { return nil }
func (Backend) String([]byte) error     { return nil }
func (Backend) BeginArray() error       { return nil }
func (Backend) EndArray() error         { return nil }
func (Backend) BeginObject() error      { return nil }
func (Backend) Key([]byte) error        { return nil }
func (Backend) EndObject() error        { return nil }
func (Backend) Result() (any, error)    { return struct{}{}, nil }

// Valid reports whether b is a well-formed document under ext, without
// building any representation of it.
func Valid(b []byte, ext pjson.Extensions) bool {
	p := pjson.New(Backend{}, ext)
	p.Push(b)
	_, err := p.Eof()
	return err == nil
}
