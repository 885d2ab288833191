package dom

import (
	"bufio"
	"io"

	pjson "github.com/mcvoid/pjson"
)

// ParseString parses a complete JSON document held in a string.
func ParseString(s string, opts ...pjson.Option) (Node, error) {
	return ParseBytes([]byte(s), opts...)
}

// ParseBytes parses a complete JSON document held in a byte slice. Pass
// pjson.WithExtensions to accept non-strict input.
func ParseBytes(b []byte, opts ...pjson.Option) (Node, error) {
	bld := &Builder{}
	p := pjson.New(bld, 0, opts...)
	p.Push(b)
	return finish(p)
}

// Parse reads r to completion, feeding the parser in fixed-size chunks
// so a very large document never needs to be buffered in full before
// parsing starts.
func Parse(r io.Reader, opts ...pjson.Option) (Node, error) {
	bld := &Builder{}
	p := pjson.New(bld, 0, opts...)

	buf := make([]byte, 4096)
	br := bufio.NewReader(r)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			p.Push(buf[:n])
			if lerr := p.LastError(); lerr != nil {
				return Node{}, lerr
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Node{}, err
		}
	}
	return finish(p)
}

func finish(p *pjson.Parser) (Node, error) {
	v, err := p.Eof()
	if err != nil {
		return Node{}, err
	}
	n, _ := v.(Node)
	return n, nil
}
