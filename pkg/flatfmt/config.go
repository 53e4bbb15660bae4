// Copyright 2024-2026 Aiku AI

package flatfmt

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed example-config.yaml
var ExampleConfig string

// Config holds tag table overrides for building a Converter. Deployments
// whose transport spells the tags differently (e.g. <strong> instead of
// <b>) list replacements here; anything not listed keeps its default.
type Config struct {
	// Tags maps node type names (strong, emphasis, underline, code,
	// code_block, ...) to replacement tag pairs. Setting both strings to
	// "" strips the tag entirely.
	Tags map[string]TagPair `yaml:"tags"`
}

func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	type rawConfig Config
	return node.Decode((*rawConfig)(c))
}

// PostProcess validates the overrides. A pair must set both tags or
// neither: a lone start or end tag would emit unbalanced markup.
func (c *Config) PostProcess() error {
	for name, pair := range c.Tags {
		if (pair.Start == "") != (pair.End == "") {
			return fmt.Errorf("tag override %q must set both start and end, or neither", name)
		}
	}
	return nil
}

// Converter builds a Converter from the built-in tag table with c's
// overrides applied. The resulting table is fixed for the Converter's
// lifetime.
func (c *Config) Converter() (*Converter, error) {
	if err := c.PostProcess(); err != nil {
		return nil, err
	}
	tags := DefaultTags()
	for name, pair := range c.Tags {
		tags[NodeType(name)] = pair
	}
	return &Converter{tags: tags}, nil
}
