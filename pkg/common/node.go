package common

import (
	"fmt"
	"maps"
	"unicode/utf8"

	"github.com/spicery/treepath/pkg/treenode"
)

// Node is the concrete tree node used by the treepath tools. A tree is
// owned top-down through Children; parent is a back-reference that is kept
// in step by AddChild, ReplaceAt and Link.
type Node struct {
	Name     string            `json:"name" yaml:"name"`                             // The name of the node
	Options  map[string]string `json:"options,omitempty" yaml:"options,omitempty"`   // Attributes (name-value pairs)
	Children []*Node           `json:"children,omitempty" yaml:"children,omitempty"` // Child nodes
	parent   *Node
}

const OptionValue = "value"
const OptionName = "name"

// NewNode returns a root node. Options are given as alternating keys and
// values.
func NewNode(name string, options ...string) *Node {
	n := &Node{Name: name, Options: map[string]string{}}
	for i := 0; i+1 < len(options); i += 2 {
		n.Options[options[i]] = options[i+1]
	}
	return n
}

// Parent returns the parent of n, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AddChild appends child to n's children and links it to n. It returns the
// child so that trees can be built fluently.
func (n *Node) AddChild(child *Node) *Node {
	child.parent = n
	n.Children = append(n.Children, child)
	return child
}

// Add appends the given children and returns n.
func (n *Node) Add(children ...*Node) *Node {
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

// Link sets the parent pointer of every descendant of n. Decoded trees
// need this because parents are not serialised. n itself keeps its parent.
// A nil child is reported with its index path and leaves the tree
// partly linked.
func (n *Node) Link() (*Node, error) {
	if err := n.link(nil); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) link(path treenode.Path) error {
	for i, child := range n.Children {
		if child == nil {
			return fmt.Errorf("null child at %s", path.Append(i))
		}
		child.parent = n
		if err := child.link(path.Append(i)); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of n as a new root.
func (n *Node) Clone() *Node {
	c := &Node{Name: n.Name, Options: maps.Clone(n.Options)}
	if c.Options == nil {
		c.Options = map[string]string{}
	}
	for _, child := range n.Children {
		c.AddChild(child.Clone())
	}
	return c
}

// Label is the short display form used by the text writers.
func (n *Node) Label(options *PrintOptions) string {
	trim := 0
	if options != nil {
		trim = options.TrimTokenOnOutput
	}
	if len(n.Options) == 1 {
		for key, value := range n.Options {
			return fmt.Sprintf("%s: %s", n.Name, TrimValue(key, value, trim))
		}
	}
	if value, exists := n.Options[OptionValue]; exists {
		return fmt.Sprintf("%s: %s", n.Name, TrimValue(OptionValue, value, trim))
	}
	if name, exists := n.Options[OptionName]; exists {
		return fmt.Sprintf("%s: %s", n.Name, TrimValue(OptionName, name, trim))
	}
	return n.Name
}

func (n *Node) String() string {
	return n.Label(nil)
}

// TrimValue trims a value if it's a value option and trimming is enabled
func TrimValue(key, value string, trimLength int) string {
	if key == OptionValue && trimLength > 0 && utf8.RuneCountInString(value) > trimLength {
		runes := []rune(value)
		// Reserve space for Unicode ellipsis (1 character: "…")
		if trimLength >= 2 {
			return string(runes[:trimLength-1]) + "…"
		}
		return string(runes[:trimLength])
	}
	return value
}

// Tree capability.

func (n *Node) ParentNode() (*Node, bool) {
	return n.parent, n.parent != nil
}

func (n *Node) ChildNodes() treenode.Children[*Node] {
	return treenode.Slice[*Node](n.Children)
}

func (n *Node) MutableChildNodes() treenode.MutableChildren[*Node] {
	return treenode.Slice[*Node](n.Children)
}

func (n *Node) IsLeaf() bool  { return treenode.IsLeaf(n) }
func (n *Node) IsEmpty() bool { return treenode.IsEmpty(n) }
func (n *Node) Count() int    { return treenode.Count(n) }

func (n *Node) ChildAt(index int) (*Node, error) {
	return treenode.ChildAt(n, index)
}

func (n *Node) IndexOf(child *Node) (int, bool) {
	return treenode.IndexOf(n, child)
}

func (n *Node) NodeAt(path treenode.Path) (*Node, error) {
	return treenode.NodeAt(n, path)
}

// SetNodeAt replaces the node at path without touching parent pointers.
// Most callers want ReplaceAt.
func (n *Node) SetNodeAt(path treenode.Path, value *Node) error {
	return treenode.SetNodeAt(n, path, value)
}

// ReplaceAt replaces the node at path with value and links value to its
// new parent. The replaced node is detached and returned.
func (n *Node) ReplaceAt(path treenode.Path, value *Node) (*Node, error) {
	old, err := n.NodeAt(path)
	if err != nil {
		return nil, err
	}
	if err := n.SetNodeAt(path, value); err != nil {
		return nil, err
	}
	value.parent = old.parent
	old.parent = nil
	return old, nil
}

func (n *Node) IndexPath() treenode.Path {
	return treenode.IndexPath(n)
}

func (n *Node) LocatePath() (treenode.Path, error) {
	return treenode.LocatePath(n)
}

func (n *Node) RootNode() *Node {
	return treenode.RootNode(n)
}

// Walk visits n and its descendants in pre-order; see treenode.Walk.
func (n *Node) Walk(fn func(path treenode.Path, node *Node) bool) {
	treenode.Walk(n, fn)
}
