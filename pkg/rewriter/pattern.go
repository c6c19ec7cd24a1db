package rewriter

import (
	"fmt"

	"github.com/spicery/treepath/pkg/common"
)

// NodePattern describes what an assert edit expects to find.
type NodePattern struct {
	Name  *string `yaml:"name,omitempty"`
	Key   *string `yaml:"key,omitempty"`
	Value *string `yaml:"value,omitempty"`
	Cmp   *bool   `yaml:"cmp,omitempty"`
	Count *int    `yaml:"count,omitempty"`
	Leaf  *bool   `yaml:"leaf,omitempty"`
}

// GetCmp returns the comparison value, defaulting to true if not set
func (np *NodePattern) GetCmp() bool {
	if np.Cmp == nil {
		return true
	}
	return *np.Cmp
}

func (np *NodePattern) IsEmpty() bool {
	return np == nil || (np.Name == nil && np.Key == nil && np.Value == nil && np.Count == nil && np.Leaf == nil)
}

// Validate reports conditions that could never be checked.
func (np *NodePattern) Validate() error {
	if np.IsEmpty() {
		return fmt.Errorf("no conditions given")
	}
	if np.Key == nil {
		if np.Value != nil {
			return fmt.Errorf("'value' requires 'key'")
		}
		if np.Cmp != nil {
			return fmt.Errorf("'cmp' requires 'key'")
		}
	}
	return nil
}

// Mismatch returns a description of the first condition node fails, or
// the empty string when node matches.
func (np *NodePattern) Mismatch(node *common.Node) string {
	if node == nil {
		return "no node"
	}
	if np.IsEmpty() {
		return ""
	}
	if np.Name != nil && node.Name != *np.Name {
		return fmt.Sprintf("name is %q, expected %q", node.Name, *np.Name)
	}
	if np.Key != nil {
		val, exists := node.Options[*np.Key]
		if !exists {
			return fmt.Sprintf("option %q is missing", *np.Key)
		}
		if np.Value != nil && (val == *np.Value) != np.GetCmp() {
			return fmt.Sprintf("option %q is %q", *np.Key, val)
		}
	}
	if np.Count != nil && node.Count() != *np.Count {
		return fmt.Sprintf("has %d children, expected %d", node.Count(), *np.Count)
	}
	if np.Leaf != nil && node.IsLeaf() != *np.Leaf {
		if *np.Leaf {
			return "is not a leaf"
		}
		return "is a leaf"
	}
	return ""
}

func (np *NodePattern) Matches(node *common.Node) bool {
	return np.Mismatch(node) == ""
}
