package emit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mcvoid/pjson/dom"
	"github.com/mcvoid/pjson/emit"
)

func TestString_Compact(t *testing.T) {
	n := dom.Object([]dom.Member{
		{Key: "a", Value: dom.Int64(1)},
		{Key: "b", Value: dom.Array([]dom.Node{dom.Bool(true), dom.Null()})},
	})
	got, err := emit.String(n, emit.Compact)
	require.NoError(t, err)
	require.Equal(t, `{"a":1,"b":[true,null]}`, got)
}

func TestString_Indented(t *testing.T) {
	n := dom.Array([]dom.Node{dom.Int64(1), dom.Int64(2)})
	got, err := emit.String(n, emit.Config{Indent: "  "})
	require.NoError(t, err)
	require.Equal(t, "[\n  1,\n  2\n]", got)
}

func TestString_EscapesControlAndQuoteCharacters(t *testing.T) {
	got, err := emit.String(dom.String("a\"b\\c\n\x01"), emit.Compact)
	require.NoError(t, err)
	require.Equal(t, "\"a\\\"b\\\\c\\n\\u0001\"", got)
}

func TestString_EmptyContainers(t *testing.T) {
	got, err := emit.String(dom.Array(nil), emit.Compact)
	require.NoError(t, err)
	require.Equal(t, "[]", got)

	got, err = emit.String(dom.Object(nil), emit.Compact)
	require.NoError(t, err)
	require.Equal(t, "{}", got)
}

func TestString_FloatKeepsDecimalPoint(t *testing.T) {
	got, err := emit.String(dom.Float64(5), emit.Compact)
	require.NoError(t, err)
	require.Equal(t, "5.0", got)
}

func TestRoundTrip_ParseThenEmit(t *testing.T) {
	src := `{"name":"Ringo","role":"drums","active":true}`
	n, err := dom.ParseString(src)
	require.NoError(t, err)

	got, err := emit.String(n, emit.Compact)
	require.NoError(t, err)
	require.Equal(t, src, got)
}
