package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/treenode"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "trees.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	upToDate, err := s.CheckMigration()
	require.NoError(t, err)
	assert.False(t, upToDate)
	require.NoError(t, s.Migrate())
	upToDate, err = s.CheckMigration()
	require.NoError(t, err)
	assert.True(t, upToDate)
	return s
}

// wideTree has more than ten children under the root so that sorting by
// text would put "10" before "2".
func wideTree() *common.Node {
	r := common.NewNode("R", "value", "root")
	for i := 0; i < 12; i++ {
		kid := r.AddChild(common.NewNode("k", "name", string(rune('a'+i))))
		if i%5 == 0 {
			kid.AddChild(common.NewNode("leaf"))
			kid.AddChild(common.NewNode("leaf2"))
		}
	}
	return r
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	tree := wideTree()
	require.NoError(t, s.SaveTree("wide", tree))

	loaded, err := s.LoadTree("wide")
	require.NoError(t, err)

	diff, err := common.DiffTrees(tree, loaded, nil)
	require.NoError(t, err)
	assert.Empty(t, diff)

	loaded.Walk(func(path treenode.Path, node *common.Node) bool {
		assert.Equal(t, path, node.IndexPath())
		return true
	})

	node, err := loaded.NodeAt(treenode.Path{10, 1})
	require.NoError(t, err)
	assert.Equal(t, "leaf2", node.Name)
	assert.Same(t, loaded, node.RootNode())
}

func TestSaveReplacesTree(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveTree("t", wideTree()))
	small := common.NewNode("only")
	require.NoError(t, s.SaveTree("t", small))

	loaded, err := s.LoadTree("t")
	require.NoError(t, err)
	assert.Equal(t, "only", loaded.Name)
	assert.True(t, loaded.IsLeaf())
}

func TestSaveSubtreeUsesRelativePaths(t *testing.T) {
	s := openTestStore(t)
	tree := wideTree()
	sub, err := tree.NodeAt(treenode.Path{5})
	require.NoError(t, err)
	require.NoError(t, s.SaveTree("sub", sub))

	loaded, err := s.LoadTree("sub")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Count())
	assert.Nil(t, loaded.Parent())
}

func TestLoadNode(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveTree("wide", wideTree()))

	node, err := s.LoadNode("wide", treenode.Path{0})
	require.NoError(t, err)
	assert.Equal(t, "a", node.Options["name"])
	assert.Nil(t, node.Parent())
	assert.Equal(t, 2, node.Count())

	_, err = s.LoadNode("wide", treenode.Path{1, 0})
	assert.ErrorIs(t, err, treenode.ErrIndexOutOfRange)
}

func TestListAndDelete(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveTree("b", common.NewNode("B")))
	require.NoError(t, s.SaveTree("a", common.NewNode("A")))

	names, err := s.ListTrees()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)

	require.NoError(t, s.DeleteTree("a"))
	assert.ErrorIs(t, s.DeleteTree("a"), ErrTreeNotFound)
	_, err = s.LoadTree("a")
	assert.ErrorIs(t, err, ErrTreeNotFound)

	names, err = s.ListTrees()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, names)
}

func TestLoadCorruptTree(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.SaveTree("gap", wideTree()))
	require.NoError(t, s.db.Where("tree_name = ? AND node_path = ?", "gap", "3").Delete(&NodeRecord{}).Error)

	_, err := s.LoadTree("gap")
	assert.ErrorIs(t, err, ErrCorruptTree)
}
