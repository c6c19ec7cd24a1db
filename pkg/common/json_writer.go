package common

import (
	"encoding/json"
	"io"
)

func PrintTreeJSON(root *Node, output io.Writer, options *PrintOptions) error {
	encoder := json.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent("", options.IndentString())
	}
	return encoder.Encode(root)
}

// ReadTreeJSON decodes a single tree and links its parent pointers.
func ReadTreeJSON(input io.Reader) (*Node, error) {
	var root Node
	decoder := json.NewDecoder(input)
	err := decoder.Decode(&root)
	if err != nil {
		return nil, err
	}
	return root.Link()
}
