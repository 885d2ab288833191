// Package dom materialises a parsed document as a tagged-union tree,
// the way peejay's dom::element represents a parsed value in memory.
//
// Unlike a plain map[string]any, Node keeps object members in the order
// they were parsed and keeps integers, unsigned integers, and floats as
// distinct kinds: a 0 and a 0.0 compare as different Nodes, which
// matters to package schema's const/enum checks.
package dom

import (
	"fmt"
	"strconv"
)

// Kind tags the value a Node holds.
type Kind int8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindUint64
	KindFloat64
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Member is one key/value pair of an object Node, in parse order.
type Member struct {
	Key   string
	Value Node
}

// Node is a single parsed JSON value, including everything nested below
// it. The zero Node is a JSON null.
type Node struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Node
	obj  []Member
}

func Null() Node              { return Node{kind: KindNull} }
func Bool(v bool) Node        { return Node{kind: KindBool, b: v} }
func Int64(v int64) Node      { return Node{kind: KindInt64, i: v} }
func Uint64(v uint64) Node    { return Node{kind: KindUint64, u: v} }
func Float64(v float64) Node  { return Node{kind: KindFloat64, f: v} }
func String(v string) Node    { return Node{kind: KindString, s: v} }
func Array(v []Node) Node     { return Node{kind: KindArray, arr: v} }
func Object(v []Member) Node  { return Node{kind: KindObject, obj: v} }

// Kind reports which variant n holds.
func (n Node) Kind() Kind { return n.kind }

func (n Node) AsBool() (bool, bool)       { return n.b, n.kind == KindBool }
func (n Node) AsInt64() (int64, bool)     { return n.i, n.kind == KindInt64 }
func (n Node) AsUint64() (uint64, bool)   { return n.u, n.kind == KindUint64 }
func (n Node) AsFloat64() (float64, bool) { return n.f, n.kind == KindFloat64 }
func (n Node) AsString() (string, bool)   { return n.s, n.kind == KindString }
func (n Node) AsArray() ([]Node, bool)    { return n.arr, n.kind == KindArray }
func (n Node) AsObject() ([]Member, bool) { return n.obj, n.kind == KindObject }

// Len reports the number of elements or members n holds; it is 0 for
// any non-container Node.
func (n Node) Len() int {
	switch n.kind {
	case KindArray:
		return len(n.arr)
	case KindObject:
		return len(n.obj)
	default:
		return 0
	}
}

// Index returns the i'th array element, or a null Node if n is not an
// array or i is out of range, so a chain of Index/Key calls never needs
// its own error check until the caller asks for a concrete type at the
// end.
func (n Node) Index(i int) Node {
	if n.kind != KindArray || i < 0 || i >= len(n.arr) {
		return Node{}
	}
	return n.arr[i]
}

// HasKey reports whether n is an object with a member named k,
// distinguishing a present-but-null value from an absent key (which Key
// alone cannot, since both read back as a null Node).
func (n Node) HasKey(k string) bool {
	if n.kind != KindObject {
		return false
	}
	for i := len(n.obj) - 1; i >= 0; i-- {
		if n.obj[i].Key == k {
			return true
		}
	}
	return false
}

// Key returns the value of the last member named k, or a null Node if n
// is not an object or has no such member. Scanning from the end matches
// the common "later duplicate key wins" reading of RFC 8259.
func (n Node) Key(k string) Node {
	if n.kind != KindObject {
		return Node{}
	}
	for i := len(n.obj) - 1; i >= 0; i-- {
		if n.obj[i].Key == k {
			return n.obj[i].Value
		}
	}
	return Node{}
}

// Equal reports whether n and other are structurally identical,
// including kind: Int64(0) and Float64(0) are not Equal.
func (n Node) Equal(other Node) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindNull:
		return true
	case KindBool:
		return n.b == other.b
	case KindInt64:
		return n.i == other.i
	case KindUint64:
		return n.u == other.u
	case KindFloat64:
		return n.f == other.f
	case KindString:
		return n.s == other.s
	case KindArray:
		if len(n.arr) != len(other.arr) {
			return false
		}
		for i := range n.arr {
			if !n.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(n.obj) != len(other.obj) {
			return false
		}
		for i := range n.obj {
			if n.obj[i].Key != other.obj[i].Key || !n.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders a debug form of n. It is not the canonical JSON
// serialisation; use package emit for that.
func (n Node) String() string {
	switch n.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(n.b)
	case KindInt64:
		return strconv.FormatInt(n.i, 10)
	case KindUint64:
		return strconv.FormatUint(n.u, 10)
	case KindFloat64:
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(n.s)
	case KindArray:
		return fmt.Sprintf("%v", n.arr)
	case KindObject:
		return fmt.Sprintf("%v", n.obj)
	default:
		return "<invalid>"
	}
}
