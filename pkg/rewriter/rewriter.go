// Package rewriter applies YAML edit scripts to trees. Every edit addresses
// its target by index path.
package rewriter

import (
	"fmt"
	"io"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/treenode"
)

type Rule struct {
	Name   string
	Path   treenode.Path
	Action Action
}

type Rewriter struct {
	Name  string
	Rules []*Rule
	// Trace, when set, receives one line per applied edit.
	Trace io.Writer
}

// NewRewriter creates a new Rewriter instance from the given RewriteConfig,
// effectively compiling the configuration into executable rules.
func NewRewriter(rewriteConfig *RewriteConfig) (*Rewriter, error) {
	rewriter := &Rewriter{
		Name:  rewriteConfig.Name,
		Rules: []*Rule{},
	}
	for i, edit := range rewriteConfig.Edits {
		name := edit.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i+1)
		}
		path, err := parsePath(edit.At)
		if err != nil {
			return nil, fmt.Errorf("error in edit \"%s/%s\": %w", rewriteConfig.Name, name, err)
		}
		action, err := edit.Action.ToAction()
		if err != nil {
			return nil, fmt.Errorf("error in edit \"%s/%s\": %w", rewriteConfig.Name, name, err)
		}
		rewriter.Rules = append(rewriter.Rules, &Rule{
			Name:   name,
			Path:   path,
			Action: action,
		})
	}
	return rewriter, nil
}

// Rewrite applies the rules in order and stops at the first failure. Edits
// before the failing one stay applied.
func (r *Rewriter) Rewrite(root *common.Node) error {
	for _, rule := range r.Rules {
		if err := rule.Action.Apply(root, rule.Path); err != nil {
			return fmt.Errorf("edit \"%s\" at %s failed: %w", rule.Name, rule.Path, err)
		}
		if r.Trace != nil {
			fmt.Fprintf(r.Trace, "Applied edit %s at %s\n", rule.Name, rule.Path)
		}
	}
	return nil
}

// parsePath wraps ParsePath errors so they read well inside edit messages.
func parsePath(s string) (treenode.Path, error) {
	path, err := treenode.ParsePath(s)
	if err != nil {
		return nil, fmt.Errorf("bad path: %w", err)
	}
	return path, nil
}
