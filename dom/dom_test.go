package dom_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	pjson "github.com/mcvoid/pjson"
	"github.com/mcvoid/pjson/dom"
)

func TestParseString_Scalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want dom.Node
	}{
		{"null", `null`, dom.Null()},
		{"true", `true`, dom.Bool(true)},
		{"false", `false`, dom.Bool(false)},
		{"int", `42`, dom.Int64(42)},
		{"negative int", `-7`, dom.Int64(-7)},
		{"float", `1.5`, dom.Float64(1.5)},
		{"string", `"hi"`, dom.String("hi")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dom.ParseString(tt.in)
			require.NoError(t, err)
			require.True(t, tt.want.Equal(got), "got %v, want %v", got, tt.want)
		})
	}
}

func TestParseString_ObjectPreservesOrder(t *testing.T) {
	got, err := dom.ParseString(`{"b": 1, "a": 2, "c": 3}`)
	require.NoError(t, err)

	members, ok := got.AsObject()
	require.True(t, ok)
	require.Len(t, members, 3)
	require.Equal(t, "b", members[0].Key)
	require.Equal(t, "a", members[1].Key)
	require.Equal(t, "c", members[2].Key)
}

func TestParseString_DuplicateKeyLastWins(t *testing.T) {
	got, err := dom.ParseString(`{"a": 1, "a": 2}`)
	require.NoError(t, err)

	v, ok := got.Key("a").AsInt64()
	require.True(t, ok)
	require.Equal(t, int64(2), v)
}

func TestParseString_NestedArrayAndObject(t *testing.T) {
	got, err := dom.ParseString(`{"list": [1, 2, {"x": true}]}`)
	require.NoError(t, err)

	want := dom.Object([]dom.Member{
		{Key: "list", Value: dom.Array([]dom.Node{
			dom.Int64(1),
			dom.Int64(2),
			dom.Object([]dom.Member{{Key: "x", Value: dom.Bool(true)}}),
		})},
	})
	require.True(t, want.Equal(got))

	third := got.Key("list").Index(2).Key("x")
	b, ok := third.AsBool()
	require.True(t, ok)
	require.True(t, b)
}

func TestNode_FluentAccessOnMissingPathReturnsNull(t *testing.T) {
	got, err := dom.ParseString(`{"a": 1}`)
	require.NoError(t, err)

	null := got.Key("nope").Index(5).Key("also-nope")
	require.Equal(t, dom.KindNull, null.Kind())
}

func TestParse_FromReader(t *testing.T) {
	got, err := dom.Parse(strings.NewReader(`[1, 2, 3]`))
	require.NoError(t, err)

	if diff := cmp.Diff(dom.Array([]dom.Node{dom.Int64(1), dom.Int64(2), dom.Int64(3)}), got, cmp.Comparer(dom.Node.Equal)); diff != "" {
		t.Errorf("unexpected DOM (-want +got):\n%s", diff)
	}
}

func TestParseString_SyntaxErrorPropagates(t *testing.T) {
	_, err := dom.ParseString(`{"a": }`)
	require.Error(t, err)
}

func TestBuilder_NestingTooDeep(t *testing.T) {
	bld := dom.NewBuilder(dom.WithMaxDepth(2))
	p := pjson.New(bld, 0)
	p.Push([]byte(`[[[1]]]`))
	_, err := p.Eof()
	require.ErrorIs(t, err, dom.ErrNestingTooDeep)
}

func TestBuilder_NestingWithinBudgetSucceeds(t *testing.T) {
	bld := dom.NewBuilder(dom.WithMaxDepth(3))
	p := pjson.New(bld, 0)
	p.Push([]byte(`[[[1]]]`))
	_, err := p.Eof()
	require.NoError(t, err)
}

func TestBuilder_ZeroValueUsesDefaultDepthBudget(t *testing.T) {
	opens := strings.Repeat("[", 201)
	closes := strings.Repeat("]", 201)

	// Raise the core parser's own nesting bound well past dom's default
	// of 200 so this test isolates dom's own depth budget.
	bld := &dom.Builder{}
	p := pjson.New(bld, 0, pjson.WithMaxStackDepth(1000))
	p.Push([]byte(opens + "1" + closes))
	_, err := p.Eof()
	require.ErrorIs(t, err, dom.ErrNestingTooDeep)
}
