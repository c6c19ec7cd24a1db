package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicery/treepath/pkg/treenode"
)

// sampleTree builds R{A{C,D},B}.
func sampleTree() (r, a, b, c, d *Node) {
	r = NewNode("R")
	a = r.AddChild(NewNode("A"))
	b = r.AddChild(NewNode("B"))
	c = a.AddChild(NewNode("C"))
	d = a.AddChild(NewNode("D"))
	return
}

func TestNewNodeOptions(t *testing.T) {
	n := NewNode("id", "name", "x", "kind", "var", "dangling")
	assert.Equal(t, map[string]string{"name": "x", "kind": "var"}, n.Options)
	assert.Nil(t, n.Parent())
	assert.True(t, n.IsLeaf())
	assert.True(t, n.IsEmpty())
}

func TestNodeScenario(t *testing.T) {
	r, a, b, _, d := sampleTree()

	assert.Equal(t, 2, r.Count())
	assert.Same(t, r, a.Parent())

	got, err := r.NodeAt(treenode.Path{1})
	require.NoError(t, err)
	assert.Same(t, b, got)

	got, err = r.NodeAt(treenode.Path{0, 1})
	require.NoError(t, err)
	assert.Same(t, d, got)

	_, err = r.NodeAt(treenode.Path{0, 5})
	assert.ErrorIs(t, err, treenode.ErrIndexOutOfRange)

	assert.Same(t, r, d.RootNode())
	assert.Equal(t, treenode.Path{0, 1}, d.IndexPath())

	i, ok := a.IndexOf(d)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	child, err := a.ChildAt(0)
	require.NoError(t, err)
	assert.Equal(t, "C", child.Name)
}

func TestReplaceAt(t *testing.T) {
	r, a, b, c, d := sampleTree()
	x := NewNode("X")

	old, err := r.ReplaceAt(treenode.Path{0, 1}, x)
	require.NoError(t, err)
	assert.Same(t, d, old)
	assert.Nil(t, d.Parent())
	assert.Same(t, a, x.Parent())
	assert.Equal(t, []*Node{c, x}, a.Children)
	assert.Equal(t, []*Node{a, b}, r.Children)
	assert.Equal(t, treenode.Path{0, 1}, x.IndexPath())

	_, err = r.ReplaceAt(treenode.Path{}, NewNode("Y"))
	assert.ErrorIs(t, err, treenode.ErrEmptyPath)

	_, err = r.ReplaceAt(treenode.Path{4}, NewNode("Y"))
	assert.ErrorIs(t, err, treenode.ErrIndexOutOfRange)
	assert.Equal(t, []*Node{a, b}, r.Children)
}

func TestSetNodeAtLeavesParent(t *testing.T) {
	r, a, _, _, _ := sampleTree()
	x := NewNode("X")
	require.NoError(t, r.SetNodeAt(treenode.Path{0, 0}, x))
	assert.Same(t, x, a.Children[0])
	assert.Nil(t, x.Parent())
	// x is unlinked, so it has no path of its own yet
	assert.Empty(t, x.IndexPath())
}

func TestCloneAndLink(t *testing.T) {
	r, _, _, _, _ := sampleTree()
	r.Options["value"] = "root"

	c := r.Clone()
	require.NotSame(t, r, c)
	assert.Nil(t, c.Parent())
	assert.Equal(t, "root", c.Options["value"])
	c.Options["value"] = "copy"
	assert.Equal(t, "root", r.Options["value"])

	d, err := c.NodeAt(treenode.Path{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "D", d.Name)
	assert.Same(t, c, d.RootNode())

	// an unlinked tree built literally
	lit := &Node{Name: "R", Children: []*Node{{Name: "A", Children: []*Node{{Name: "C"}}}}}
	leaf := lit.Children[0].Children[0]
	assert.Same(t, leaf, leaf.RootNode())
	_, err = lit.Link()
	require.NoError(t, err)
	assert.Same(t, lit, leaf.RootNode())
	assert.Equal(t, treenode.Path{0, 0}, leaf.IndexPath())
}

func TestLabel(t *testing.T) {
	tests := []struct {
		node *Node
		trim int
		want string
	}{
		{NewNode("form"), 0, "form"},
		{NewNode("id", "name", "x"), 0, "id: x"},
		{NewNode("number", "value", "12345"), 0, "number: 12345"},
		{NewNode("number", "value", "12345"), 3, "number: 12…"},
		{NewNode("id", "name", "x", "value", "v"), 0, "id: v"},
		{NewNode("id", "name", "x", "kind", "k"), 0, "id: x"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.node.Label(&PrintOptions{TrimTokenOnOutput: tt.trim}))
	}
}

func TestTrimValue(t *testing.T) {
	assert.Equal(t, "abcdef", TrimValue("value", "abcdef", 0))
	assert.Equal(t, "abcdef", TrimValue("name", "abcdef", 2))
	assert.Equal(t, "a…", TrimValue("value", "abcdef", 2))
	assert.Equal(t, "a", TrimValue("value", "abcdef", 1))
	assert.Equal(t, "héll…", TrimValue("value", "héllo wörld", 5))
	assert.Equal(t, "日本…", TrimValue("value", "日本語テキスト", 3))
	assert.Equal(t, "日", TrimValue("value", "日本語", 1))
	assert.Equal(t, "日本語", TrimValue("value", "日本語", 3))
}

func TestIndentString(t *testing.T) {
	assert.Equal(t, "", (&PrintOptions{}).IndentString())
	assert.Equal(t, "    ", (&PrintOptions{Indent: 4}).IndentString())
}

func TestWalkPaths(t *testing.T) {
	r, _, _, _, _ := sampleTree()
	r.Walk(func(path treenode.Path, node *Node) bool {
		got, err := r.NodeAt(path)
		require.NoError(t, err)
		assert.Same(t, node, got)
		assert.Equal(t, path, node.IndexPath())
		return true
	})
}
