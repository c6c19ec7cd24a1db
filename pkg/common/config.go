package common

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type PrintOptions struct {
	Format            string `yaml:"option-format,omitempty"`
	Indent            int    `yaml:"option-indent,omitempty"`
	TrimTokenOnOutput int    `yaml:"option-trim-token-on-output,omitempty"`
	ShowPaths         bool   `yaml:"option-show-paths,omitempty"`
}

// DefaultPrintOptions returns the options used when no config file is given.
func DefaultPrintOptions() *PrintOptions {
	return &PrintOptions{Format: "JSON", Indent: 2}
}

// IndentString returns Indent spaces.
func (o *PrintOptions) IndentString() string {
	return strings.Repeat(" ", o.Indent)
}

// LoadPrintOptions reads print options from a YAML file, starting from the
// defaults.
func LoadPrintOptions(filename string) (*PrintOptions, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	options := DefaultPrintOptions()
	if err := yaml.Unmarshal(data, options); err != nil {
		return nil, err
	}
	return options, nil
}
