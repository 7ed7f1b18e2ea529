package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatArrayQuoting(t *testing.T) {
	got := formatArray([]string{"plain", "", "NULL", `q"uote`, `back\slash`, "sp ace", "a,b"})
	assert.Equal(t, `{plain,"","NULL","q\"uote","back\\slash","sp ace","a,b"}`, string(got))
}

func TestParseArrayElements(t *testing.T) {
	elems, err := parseArray(`{plain,"","NULL","q\"uote","back\\slash", spaced ,null}`)
	require.NoError(t, err)
	require.Len(t, elems, 7)

	var got []string
	for _, e := range elems[:6] {
		require.NotNil(t, e)
		got = append(got, *e)
	}
	assert.Equal(t, []string{"plain", "", "NULL", `q"uote`, `back\slash`, "spaced"}, got)
	assert.Nil(t, elems[6])
}

func TestParseArrayWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{`{ "a.b" , c}`, []string{"a.b", "c"}},
		{"{\t\"x y\"\n,\"z\" }", []string{"x y", "z"}},
		{`{ a , "b" }`, []string{"a", "b"}},
		{`{  }`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			elems, err := parseArray(tt.in)
			require.NoError(t, err)

			var got []string
			for _, e := range elems {
				require.NotNil(t, e)
				got = append(got, *e)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArrayMalformed(t *testing.T) {
	for _, in := range []string{`{"a" b}`, `{a, }`, `{"a"`, `{"a}`} {
		t.Run(in, func(t *testing.T) {
			_, err := parseArray(in)
			assert.Error(t, err)
		})
	}
}

func TestLoadArrayWithSpaces(t *testing.T) {
	paths, err := LtreePair.LoadArray([]byte(`{ "a.b" , top.science }`))
	require.NoError(t, err)
	require.Len(t, paths, 2)
	assert.Equal(t, "a.b", paths[0].String())
	assert.Equal(t, "top.science", paths[1].String())
}

func TestFormatParseArrayRoundTrip(t *testing.T) {
	in := []string{"a.*{1,2}", "", "x|y", `we"ird`}
	elems, err := parseArray(string(formatArray(in)))
	require.NoError(t, err)
	require.Len(t, elems, len(in))
	for i := range in {
		assert.Equal(t, in[i], *elems[i])
	}
}
