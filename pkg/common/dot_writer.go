package common

import (
	"fmt"
	"io"
	"strings"

	"github.com/spicery/treepath/pkg/treenode"
)

func PrintTreeDOT(root *Node, output io.Writer, options *PrintOptions) error {
	var sb strings.Builder

	// Initialize the DOT graph
	sb.WriteString("digraph G {\n")
	sb.WriteString("  bgcolor=\"transparent\";\n")
	sb.WriteString("  node [shape=\"box\", style=\"filled\", fontname=\"Ubuntu Mono\"];\n")

	// Node ids are index paths, so they are stable across runs.
	root.Walk(func(path treenode.Path, node *Node) bool {
		nodeID := "n" + strings.ReplaceAll(path.String(), "/", "_")
		label := node.Label(options)
		if options != nil && options.ShowPaths {
			label = fmt.Sprintf("[%s] %s", path, label)
		}
		fmt.Fprintf(&sb, "  \"%s\" [label=\"%s\", fillcolor=\"%s\"];\n", nodeID, escapeDOTValue(label), fillColor(path, node))
		if len(path) > 0 {
			parentID := "n" + strings.ReplaceAll(path.Parent().String(), "/", "_")
			fmt.Fprintf(&sb, "  \"%s\" -> \"%s\";\n", parentID, nodeID)
		}
		return true
	})

	// Close the graph
	sb.WriteString("}\n")
	_, err := io.WriteString(output, sb.String())
	return err
}

func escapeDOTValue(value string) string {
	// Escape special characters for DOT format
	return strings.ReplaceAll(value, `"`, `\"`)
}

// fillColor picks a colour by position: the top node, inner nodes and
// leaves differ.
func fillColor(path treenode.Path, node *Node) string {
	switch {
	case len(path) == 0:
		return "lightpink"
	case node.IsLeaf():
		return "lightgoldenrodyellow"
	default:
		return "PaleTurquoise"
	}
}
