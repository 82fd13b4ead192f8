package config

// Config represents an organize.yaml configuration file.
// Unset booleans are nil so a higher layer can tell "not set" from "false".
type Config struct {
	Version     int    `yaml:"version"`
	Rename      *bool  `yaml:"rename,omitempty"`
	DeleteEmpty *bool  `yaml:"delete_empty,omitempty"`
	Strict      *bool  `yaml:"strict,omitempty"`
	Journal     string `yaml:"journal,omitempty"`
}

// Defaults are the effective flatten settings after all layers are merged.
type Defaults struct {
	Rename      bool
	DeleteEmpty bool
	Strict      bool
	Journal     string
}

// Defaults resolves unset fields to false.
func (c *Config) Defaults() Defaults {
	if c == nil {
		return Defaults{}
	}
	return Defaults{
		Rename:      boolValue(c.Rename),
		DeleteEmpty: boolValue(c.DeleteEmpty),
		Strict:      boolValue(c.Strict),
		Journal:     c.Journal,
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

// Bool returns a pointer to b, for building configs in code.
func Bool(b bool) *bool {
	return &b
}
