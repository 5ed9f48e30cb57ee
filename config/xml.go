package config

import "github.com/instancekit/instancekit/core/descriptor"

type XMLConfig struct {
	// DefaultFactoryTag is substituted when a legacy document's element
	// carries no factory tag attribute. Empty selects the library default.
	DefaultFactoryTag string `json:"defaultFactoryTag"`
}

func (c *XMLConfig) SetDefaults() {
	if c.DefaultFactoryTag == "" {
		c.DefaultFactoryTag = descriptor.DefaultFactoryTag
	}
}
