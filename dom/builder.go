package dom

import (
	"errors"

	pjson "github.com/mcvoid/pjson"
)

// defaultMaxDepth is Builder's default nesting bound, applied whenever
// maxDepth is left at its zero value.
const defaultMaxDepth = 200

// ErrNestingTooDeep is dom's own depth-budget failure (spec taxonomy:
// dom_nesting_too_deep), distinct from the core parser's own
// CodeNestingTooDeep: the core parser bounds the grammar driver's
// container stack, while this bounds how deep the materialised Node
// tree itself is allowed to nest, mirroring peejay's
// dom_error::nesting_too_deep (lib/json/dom.cpp), enforced by the
// mark-sentinel stack in include/json/dom.hpp.
var ErrNestingTooDeep = errors.New("dom: nesting_too_deep")

// frame accumulates one open container's children while the Builder is
// nested inside it.
type frame struct {
	isObject   bool
	arr        []Node
	obj        []Member
	pendingKey string
}

// Builder is a pjson.Backend that materialises the full parsed document
// as a Node tree, mirroring peejay's dom::element_builder: each callback
// either sets the single root value or appends into whichever frame is
// on top of the nesting stack.
type Builder struct {
	root     Node
	have     bool
	stack    []frame
	maxDepth int
}

var (
	_ pjson.Backend       = (*Builder)(nil)
	_ pjson.Uint64Backend = (*Builder)(nil)
)

// Option configures a Builder at construction time.
type Option func(*Builder)

// WithMaxDepth overrides Builder's default nesting bound (200).
func WithMaxDepth(n int) Option {
	return func(b *Builder) { b.maxDepth = n }
}

// NewBuilder constructs a Builder ready to use as a pjson.Backend. The
// zero Builder is also usable directly and applies the same default
// depth budget; NewBuilder only matters when passing Option values.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// depthLimit returns the effective nesting bound, applying
// defaultMaxDepth when maxDepth was never set.
func (b *Builder) depthLimit() int {
	if b.maxDepth <= 0 {
		return defaultMaxDepth
	}
	return b.maxDepth
}

func (b *Builder) emit(n Node) error {
	if len(b.stack) == 0 {
		b.root = n
		b.have = true
		return nil
	}
	top := &b.stack[len(b.stack)-1]
	if top.isObject {
		top.obj = append(top.obj, Member{Key: top.pendingKey, Value: n})
		return nil
	}
	top.arr = append(top.arr, n)
	return nil
}

func (b *Builder) Null() error              { return b.emit(Node{kind: KindNull}) }
func (b *Builder) Bool(v bool) error        { return b.emit(Node{kind: KindBool, b: v}) }
func (b *Builder) Int64(v int64) error      { return b.emit(Node{kind: KindInt64, i: v}) }
func (b *Builder) Uint64(v uint64) error    { return b.emit(Node{kind: KindUint64, u: v}) }
func (b *Builder) Float64(v float64) error  { return b.emit(Node{kind: KindFloat64, f: v}) }
func (b *Builder) String(s []byte) error    { return b.emit(Node{kind: KindString, s: string(s)}) }

func (b *Builder) BeginArray() error {
	if len(b.stack) >= b.depthLimit() {
		return ErrNestingTooDeep
	}
	b.stack = append(b.stack, frame{})
	return nil
}

func (b *Builder) EndArray() error {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.emit(Node{kind: KindArray, arr: top.arr})
}

func (b *Builder) BeginObject() error {
	if len(b.stack) >= b.depthLimit() {
		return ErrNestingTooDeep
	}
	b.stack = append(b.stack, frame{isObject: true})
	return nil
}

func (b *Builder) Key(s []byte) error {
	b.stack[len(b.stack)-1].pendingKey = string(s)
	return nil
}

func (b *Builder) EndObject() error {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.emit(Node{kind: KindObject, obj: top.obj})
}

// Result returns the completed document. It is only meaningful after
// the driving Parser's Eof has returned a nil error.
func (b *Builder) Result() (any, error) {
	if !b.have {
		return Node{}, nil
	}
	return b.root, nil
}
