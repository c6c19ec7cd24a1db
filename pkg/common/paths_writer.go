package common

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spicery/treepath/pkg/treenode"
)

// PrintTreePaths writes one line per node: its index path from root, a tab,
// and its label.
func PrintTreePaths(root *Node, output io.Writer, options *PrintOptions) error {
	w := bufio.NewWriter(output)
	root.Walk(func(path treenode.Path, node *Node) bool {
		fmt.Fprintf(w, "%s\t%s\n", path, node.Label(options))
		return true
	})
	return w.Flush()
}
