// Package treenode gives any node-like type with an optional parent and an
// ordered collection of children a common set of tree queries: positional
// access, access by index path, leaf checks, and root and path lookup.
//
// The package works on a single concrete node type N throughout a tree. A
// type adopts the capability by implementing [Node] (read-only) or
// [MutableNode] (read and in-place replacement).
package treenode

// Children is an ordered, integer-indexed child collection.
type Children[N any] interface {
	Len() int
	At(i int) N
}

// MutableChildren is a child collection that supports in-place replacement.
type MutableChildren[N any] interface {
	Children[N]
	Set(i int, n N)
}

// Node is implemented by every addressable tree node. ParentNode reports
// false for a root. The parent is a back-reference only; children are owned
// by the collection returned from ChildNodes.
type Node[N any] interface {
	ParentNode() (N, bool)
	ChildNodes() Children[N]
}

// MutableNode is a Node whose children can be replaced in place.
type MutableNode[N any] interface {
	Node[N]
	MutableChildNodes() MutableChildren[N]
}

// ComparableNode is a Node that can be searched for among its siblings.
type ComparableNode[N any] interface {
	Node[N]
	comparable
}

// Equaler lets a node type override == when searching children.
type Equaler[N any] interface {
	Equal(other N) bool
}

// Slice adapts a plain slice to [MutableChildren].
type Slice[N any] []N

func (s Slice[N]) Len() int       { return len(s) }
func (s Slice[N]) At(i int) N     { return s[i] }
func (s Slice[N]) Set(i int, n N) { s[i] = n }

func equal[N comparable](a, b N) bool {
	if e, ok := any(a).(Equaler[N]); ok {
		return e.Equal(b)
	}
	return a == b
}

// IsLeaf reports whether n has no children.
func IsLeaf[N Node[N]](n N) bool {
	return n.ChildNodes().Len() == 0
}

// IsEmpty is the same as [IsLeaf].
func IsEmpty[N Node[N]](n N) bool {
	return IsLeaf(n)
}

// Count returns the number of direct children of n.
func Count[N Node[N]](n N) int {
	return n.ChildNodes().Len()
}

// IsRoot reports whether n has no parent.
func IsRoot[N Node[N]](n N) bool {
	_, ok := n.ParentNode()
	return !ok
}

// ChildAt returns the child of n at the given position.
func ChildAt[N Node[N]](n N, index int) (N, error) {
	return childAt(n, index, 0)
}

func childAt[N Node[N]](n N, index, depth int) (N, error) {
	kids := n.ChildNodes()
	if index < 0 || index >= kids.Len() {
		var zero N
		return zero, &IndexOutOfRangeError{Index: index, Count: kids.Len(), Depth: depth}
	}
	return kids.At(index), nil
}

// IndexOf returns the position of the first child of n equal to child.
func IndexOf[N ComparableNode[N]](n N, child N) (int, bool) {
	kids := n.ChildNodes()
	for i := 0; i < kids.Len(); i++ {
		if equal(kids.At(i), child) {
			return i, true
		}
	}
	return -1, false
}

// NodeAt returns the descendant of n addressed by path. The empty path
// addresses n itself. It fails at the first depth whose index is invalid.
func NodeAt[N Node[N]](n N, path Path) (N, error) {
	cur := n
	for depth, index := range path {
		next, err := childAt(cur, index, depth)
		if err != nil {
			var zero N
			return zero, err
		}
		cur = next
	}
	return cur, nil
}

// SetNodeAt replaces the descendant of n addressed by path with value.
// The whole path is checked before anything is written. Each modified child
// is stored back into its parent's collection on the way up, so value-typed
// nodes see the change too. The parent of value is left untouched.
func SetNodeAt[N MutableNode[N]](n N, path Path, value N) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if _, err := NodeAt(n, path); err != nil {
		return err
	}
	setNodeAt(n, path, value)
	return nil
}

func setNodeAt[N MutableNode[N]](n N, path Path, value N) {
	kids := n.MutableChildNodes()
	if len(path) == 1 {
		kids.Set(path[0], value)
		return
	}
	child := kids.At(path[0])
	setNodeAt(child, path[1:], value)
	kids.Set(path[0], child)
}

// IndexPath returns the path from the root of n's tree down to n. A root
// has the empty path. If a node is missing from its parent's children the
// segment for that level is left out; use [LocatePath] to detect that.
func IndexPath[N ComparableNode[N]](n N) Path {
	path := Path{}
	cur := n
	for {
		parent, ok := cur.ParentNode()
		if !ok {
			break
		}
		if i, found := IndexOf(parent, cur); found {
			path = append(path, i)
		}
		cur = parent
	}
	return path.reverse()
}

// LocatePath is like [IndexPath] but fails when a node on the way up is not
// among its parent's children.
func LocatePath[N ComparableNode[N]](n N) (Path, error) {
	path := Path{}
	cur := n
	depth := 0
	for {
		parent, ok := cur.ParentNode()
		if !ok {
			break
		}
		i, found := IndexOf(parent, cur)
		if !found {
			return nil, &NotFoundInParentError{Height: depth}
		}
		path = append(path, i)
		cur = parent
		depth++
	}
	return path.reverse(), nil
}

// RootNode returns the top ancestor of n, or n itself when it is a root.
// It does not terminate if the parent chain has a cycle.
func RootNode[N Node[N]](n N) N {
	cur := n
	for {
		parent, ok := cur.ParentNode()
		if !ok {
			return cur
		}
		cur = parent
	}
}

// Depth returns the number of parent steps from n to its root.
func Depth[N Node[N]](n N) int {
	depth := 0
	for cur, ok := n.ParentNode(); ok; cur, ok = cur.ParentNode() {
		depth++
	}
	return depth
}

// Ancestors returns the ancestors of n, nearest first.
func Ancestors[N Node[N]](n N) []N {
	var out []N
	for cur, ok := n.ParentNode(); ok; cur, ok = cur.ParentNode() {
		out = append(out, cur)
	}
	return out
}

// Walk visits n and its descendants in pre-order, passing each node's path
// relative to n. Returning false from fn skips that node's children.
// The path passed to fn is reused; clone it to keep it.
func Walk[N Node[N]](n N, fn func(path Path, node N) bool) {
	walk(n, Path{}, fn)
}

func walk[N Node[N]](n N, path Path, fn func(Path, N) bool) {
	if !fn(path, n) {
		return
	}
	kids := n.ChildNodes()
	for i := 0; i < kids.Len(); i++ {
		walk(kids.At(i), append(path, i), fn)
	}
}
