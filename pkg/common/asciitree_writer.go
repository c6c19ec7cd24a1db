package common

import (
	"fmt"
	"io"
	"sort"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/spicery/treepath/pkg/treenode"
)

type AsciiNode struct {
	Label    string      `asciitree:"label"`
	Props    []string    `asciitree:"properties"`
	Children []AsciiNode `asciitree:"children"`
}

// convertToTree converts a Node into the shape asciitree renders.
func convertToTree(n *Node, path treenode.Path, options *PrintOptions) AsciiNode {
	label := n.Name

	// Extract and sort keys lexically
	sortedKeys := make([]string, 0, len(n.Options))
	for key := range n.Options {
		sortedKeys = append(sortedKeys, key)
	}
	sort.Strings(sortedKeys)

	var props []string
	for _, key := range sortedKeys {
		value := n.Options[key]
		trimmedValue := TrimValue(key, value, options.TrimTokenOnOutput)
		props = append(props, fmt.Sprintf("%s: %s", key, trimmedValue))
	}
	if options.ShowPaths {
		props = append(props, fmt.Sprintf("path: %s", path))
	}

	var children []AsciiNode
	for i, child := range n.Children {
		children = append(children, convertToTree(child, path.Append(i), options))
	}
	return AsciiNode{
		Label:    label,
		Props:    props,
		Children: children,
	}
}

func PrintTreeAsciiTree(root *Node, output io.Writer, options *PrintOptions) error {
	if options == nil {
		options = DefaultPrintOptions()
	}
	_, err := fmt.Fprintln(output, asciitree.RenderFancy(convertToTree(root, treenode.Path{}, options)))
	return err
}
