package rewriter

import (
	"errors"
	"fmt"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/treenode"
)

// ErrOverlappingPaths is returned when a swap names a node and one of its
// own descendants.
var ErrOverlappingPaths = errors.New("paths overlap")

// ErrAssertionFailed is returned by assert edits that do not match.
var ErrAssertionFailed = errors.New("assertion failed")

// Action changes the tree under root at the given path. An action that
// fails leaves the tree unchanged.
type Action interface {
	Apply(root *common.Node, path treenode.Path) error
}

////////////////////////////////////////////////////////////////////////////////
/// Actions
////////////////////////////////////////////////////////////////////////////////

type ReplaceAction struct {
	With *common.Node
}

func (a *ReplaceAction) Apply(root *common.Node, path treenode.Path) error {
	// Clone so that an edit applied to several trees never shares nodes.
	_, err := root.ReplaceAt(path, a.With.Clone())
	return err
}

type RenameAction struct {
	With string
}

func (a *RenameAction) Apply(root *common.Node, path treenode.Path) error {
	node, err := root.NodeAt(path)
	if err != nil {
		return err
	}
	node.Name = a.With
	return nil
}

type SetOptionAction struct {
	Key   string
	Value string
}

func (a *SetOptionAction) Apply(root *common.Node, path treenode.Path) error {
	node, err := root.NodeAt(path)
	if err != nil {
		return err
	}
	if node.Options == nil {
		node.Options = map[string]string{}
	}
	node.Options[a.Key] = a.Value
	return nil
}

type RemoveOptionAction struct {
	Key string
}

func (a *RemoveOptionAction) Apply(root *common.Node, path treenode.Path) error {
	node, err := root.NodeAt(path)
	if err != nil {
		return err
	}
	delete(node.Options, a.Key)
	return nil
}

// SwapAction exchanges the node at the edit's path with the node at Other.
type SwapAction struct {
	Other treenode.Path
}

func (a *SwapAction) Apply(root *common.Node, path treenode.Path) error {
	if path.HasPrefix(a.Other) || a.Other.HasPrefix(path) {
		if path.Equal(a.Other) {
			return nil
		}
		return fmt.Errorf("cannot swap %s with %s: %w", path, a.Other, ErrOverlappingPaths)
	}
	first, err := root.NodeAt(path)
	if err != nil {
		return err
	}
	second, err := root.NodeAt(a.Other)
	if err != nil {
		return err
	}
	// Both paths are valid and disjoint, so neither replacement can fail.
	if _, err := root.ReplaceAt(path, common.NewNode("")); err != nil {
		return err
	}
	if _, err := root.ReplaceAt(a.Other, first); err != nil {
		return err
	}
	_, err = root.ReplaceAt(path, second)
	return err
}

// CopyFromAction replaces the node at the edit's path with a copy of the
// node at From, as it was before the edit.
type CopyFromAction struct {
	From treenode.Path
}

func (a *CopyFromAction) Apply(root *common.Node, path treenode.Path) error {
	source, err := root.NodeAt(a.From)
	if err != nil {
		return err
	}
	_, err = root.ReplaceAt(path, source.Clone())
	return err
}

type AssertAction struct {
	Pattern *NodePattern
}

func (a *AssertAction) Apply(root *common.Node, path treenode.Path) error {
	node, err := root.NodeAt(path)
	if err != nil {
		return err
	}
	if msg := a.Pattern.Mismatch(node); msg != "" {
		return fmt.Errorf("node at %s %s: %w", path, msg, ErrAssertionFailed)
	}
	return nil
}
