package treenode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want Path
	}{
		{"", Path{}},
		{"/", Path{}},
		{"0", Path{0}},
		{"0/1", Path{0, 1}},
		{"/0/1", Path{0, 1}},
		{" 2/10/3 ", Path{2, 10, 3}},
		{"[0][1]", Path{0, 1}},
		{"[7]", Path{7}},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, in := range []string{"a", "0/", "0//1", "-1", "0/-2", "[0", "[]", "[a]"} {
		_, err := ParsePath(in)
		assert.Error(t, err, in)
	}
	assert.Panics(t, func() { MustParsePath("x") })
}

func TestPathString(t *testing.T) {
	assert.Equal(t, "/", Path{}.String())
	assert.Equal(t, "/", Path(nil).String())
	assert.Equal(t, "3", Path{3}.String())
	assert.Equal(t, "0/1/2", Path{0, 1, 2}.String())

	for _, p := range []Path{{}, {4}, {0, 12, 1}} {
		assert.Equal(t, p, MustParsePath(p.String()))
	}
}

func TestPathHelpers(t *testing.T) {
	p := Path{0, 1}
	q := p.Append(2)
	assert.Equal(t, Path{0, 1, 2}, q)
	assert.Equal(t, Path{0, 1}, p)

	assert.Equal(t, Path{0}, p.Parent())
	assert.Equal(t, Path{}, Path{}.Parent())
	assert.Equal(t, 1, p.Last())
	assert.Equal(t, -1, Path{}.Last())

	assert.True(t, q.HasPrefix(p))
	assert.True(t, q.HasPrefix(Path{}))
	assert.True(t, p.HasPrefix(p))
	assert.False(t, p.HasPrefix(q))
	assert.False(t, Path{1, 1}.HasPrefix(Path{0}))

	assert.True(t, p.Equal(Path{0, 1}))
	assert.False(t, p.Equal(q))

	c := p.Clone()
	c[0] = 9
	assert.Equal(t, 0, p[0])
}

func TestPathCompare(t *testing.T) {
	assert.Equal(t, -1, Path{}.Compare(Path{0}))
	assert.Equal(t, -1, Path{0}.Compare(Path{0, 0}))
	assert.Equal(t, -1, Path{0, 5}.Compare(Path{1}))
	assert.Equal(t, -1, Path{2}.Compare(Path{10}))
	assert.Equal(t, 0, Path{1, 2}.Compare(Path{1, 2}))
	assert.Equal(t, 1, Path{1}.Compare(Path{0, 9}))
}
