package common

import (
	"io"

	"gopkg.in/yaml.v3"
)

func PrintTreeYAML(root *Node, output io.Writer, options *PrintOptions) error {
	encoder := yaml.NewEncoder(output)
	if options != nil && options.Indent > 0 {
		encoder.SetIndent(options.Indent)
	}
	if err := encoder.Encode(root); err != nil {
		return err
	}
	return encoder.Close()
}

// ReadTreeYAML decodes a single tree and links its parent pointers.
func ReadTreeYAML(input io.Reader) (*Node, error) {
	var root Node
	if err := yaml.NewDecoder(input).Decode(&root); err != nil {
		return nil, err
	}
	return root.Link()
}
