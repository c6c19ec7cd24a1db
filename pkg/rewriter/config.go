package rewriter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/spicery/treepath/pkg/common"
)

// RewriteConfig represents the top-level edit script
type RewriteConfig struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`
	Edits       []Edit `yaml:"edits"`
}

// Edit addresses one node by index path and says what to do with it
type Edit struct {
	Name   string       `yaml:"name,omitempty"`
	At     string       `yaml:"at"`
	Action ActionConfig `yaml:"action"`
}

// ActionConfig defines what to do at the addressed node.
// This is used for YAML unmarshaling and then converted to concrete Action implementations
type ActionConfig struct {
	Replace      *common.Node     `yaml:"replace,omitempty"`
	Rename       *string          `yaml:"rename,omitempty"`
	SetOption    *SetOptionConfig `yaml:"setOption,omitempty"`
	RemoveOption *string          `yaml:"removeOption,omitempty"`
	SwapWith     *string          `yaml:"swapWith,omitempty"`
	CopyFrom     *string          `yaml:"copyFrom,omitempty"`
	Assert       *NodePattern     `yaml:"assert,omitempty"`
}

type SetOptionConfig struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

func (ac ActionConfig) Validate() error {
	// Options are mutually exclusive; only one should be set.
	count := 0
	if ac.Replace != nil {
		if ac.Replace.Name == "" {
			return fmt.Errorf("invalid replace: the replacement node needs a name")
		}
		count++
	}
	if ac.Rename != nil {
		if *ac.Rename == "" {
			return fmt.Errorf("invalid rename: the new name is empty")
		}
		count++
	}
	if ac.SetOption != nil {
		if ac.SetOption.Key == "" {
			return fmt.Errorf("invalid setOption: 'key' must be set")
		}
		count++
	}
	if ac.RemoveOption != nil {
		count++
	}
	if ac.SwapWith != nil {
		count++
	}
	if ac.CopyFrom != nil {
		count++
	}
	if ac.Assert != nil {
		if err := ac.Assert.Validate(); err != nil {
			return fmt.Errorf("invalid assert: %w", err)
		}
		count++
	}
	if count == 0 {
		return fmt.Errorf("no action specified in ActionConfig: %+v", ac)
	}
	if count > 1 {
		return fmt.Errorf("multiple actions specified in ActionConfig; only one allowed: %+v", ac)
	}
	return nil
}

// ToAction converts an ActionConfig to a concrete Action implementation
func (ac ActionConfig) ToAction() (Action, error) {
	if err := ac.Validate(); err != nil {
		return nil, err
	}
	if ac.Replace != nil {
		return &ReplaceAction{With: ac.Replace.Clone()}, nil
	}
	if ac.Rename != nil {
		return &RenameAction{With: *ac.Rename}, nil
	}
	if ac.SetOption != nil {
		return &SetOptionAction{Key: ac.SetOption.Key, Value: ac.SetOption.Value}, nil
	}
	if ac.RemoveOption != nil {
		return &RemoveOptionAction{Key: *ac.RemoveOption}, nil
	}
	if ac.SwapWith != nil {
		other, err := parsePath(*ac.SwapWith)
		if err != nil {
			return nil, fmt.Errorf("invalid swapWith: %w", err)
		}
		return &SwapAction{Other: other}, nil
	}
	if ac.CopyFrom != nil {
		from, err := parsePath(*ac.CopyFrom)
		if err != nil {
			return nil, fmt.Errorf("invalid copyFrom: %w", err)
		}
		return &CopyFromAction{From: from}, nil
	}
	if ac.Assert != nil {
		return &AssertAction{Pattern: ac.Assert}, nil
	}
	return nil, fmt.Errorf("no valid action found in ActionConfig: %+v", ac)
}

// LoadRewriteConfig loads an edit script from a YAML file
func LoadRewriteConfig(filename string) (*RewriteConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return LoadRewriteConfigFromString(string(data))
}

// LoadRewriteConfigFromString loads a RewriteConfig from a YAML string.
func LoadRewriteConfigFromString(yamlContent string) (*RewriteConfig, error) {
	var rewriteConfig RewriteConfig
	err := yaml.Unmarshal([]byte(yamlContent), &rewriteConfig)
	if err != nil {
		return nil, err
	}

	return &rewriteConfig, nil
}
