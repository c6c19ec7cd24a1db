package common

import (
	"fmt"
	"io"
	"strings"
)

type PrintFunc func(root *Node, output io.Writer, options *PrintOptions) error

type ReadFunc func(input io.Reader) (*Node, error)

// Formats lists the names accepted by PickPrintFunc.
var Formats = []string{"JSON", "YAML", "DOT", "ASCIITREE", "PATHS"}

func PickPrintFunc(format string) (PrintFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return PrintTreeJSON, nil
	case "YAML":
		return PrintTreeYAML, nil
	case "DOT":
		return PrintTreeDOT, nil
	case "ASCIITREE":
		return PrintTreeAsciiTree, nil
	case "PATHS":
		return PrintTreePaths, nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", format)
	}
}

func PickReadFunc(format string) (ReadFunc, error) {
	switch strings.ToUpper(format) {
	case "JSON":
		return ReadTreeJSON, nil
	case "YAML":
		return ReadTreeYAML, nil
	default:
		return nil, fmt.Errorf("unknown input format: %s", format)
	}
}
