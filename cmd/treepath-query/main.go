package main

import (
	"fmt"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/treepath/pkg/common"
	"github.com/spicery/treepath/pkg/treenode"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `treepath-query - addresses a node of a tree by index path

Usage:
  treepath-query [options] --path 0/1 < tree.json

Operations (--op):
  node        print the subtree at the path (default)
  index-path  print the path computed back up from the node
  root        print the root of the node's tree
  count       print the number of children
  leaf        print whether the node is a leaf
  ancestors   print the path and label of each ancestor, nearest first

Options:
`

func main() {
	report := common.NewReporter("treepath-query")

	var pathText = pflag.StringP("path", "p", "", "Index path of the node, e.g. 0/1 (empty for the root)")
	var op = pflag.String("op", "node", "Operation to perform")
	var format = pflag.StringP("format", "f", "ASCIITREE", "Output format for node and root")
	var inputFormat = pflag.StringP("input-format", "i", "JSON", "Input format (JSON, YAML)")
	var inputFile = pflag.String("input", "", "Input file (defaults to stdin)")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s", usage)
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		report.Version(Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	path, err := treenode.ParsePath(*pathText)
	if err != nil {
		report.Fatalf("%v", err)
	}

	tree, err := common.ReadTreeFile(*inputFile, *inputFormat)
	if err != nil {
		report.Fatalf("reading input: %v", err)
	}

	node, err := tree.NodeAt(path)
	if err != nil {
		report.Fatalf("no node at %s: %v", path, err)
	}

	options := common.DefaultPrintOptions()
	options.Format = *format

	switch *op {
	case "node":
		err = common.WriteTreeFile("", node, options)
	case "root":
		err = common.WriteTreeFile("", node.RootNode(), options)
	case "index-path":
		var located treenode.Path
		located, err = node.LocatePath()
		if err == nil {
			fmt.Println(located)
		}
	case "count":
		fmt.Println(node.Count())
	case "leaf":
		fmt.Println(node.IsLeaf())
	case "ancestors":
		for _, ancestor := range treenode.Ancestors(node) {
			fmt.Printf("%s\t%s\n", ancestor.IndexPath(), ancestor.Label(options))
		}
	default:
		report.Errorf("unknown operation: %s", *op)
		pflag.Usage()
		os.Exit(1)
	}
	if err != nil {
		report.Fatalf("%v", err)
	}
}
