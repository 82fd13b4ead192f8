package journal

import "time"

// Journal is the YAML record of one flatten run.
type Journal struct {
	Version     int       `yaml:"version"`
	Root        string    `yaml:"root"`
	CreatedAt   time.Time `yaml:"created_at"`
	Rename      bool      `yaml:"rename"`
	DeleteEmpty bool      `yaml:"delete_empty"`
	Moves       []Move    `yaml:"moves"`
	Removed     []string  `yaml:"removed,omitempty"`
	Skipped     []Skipped `yaml:"skipped,omitempty"`
}

// Move records one file relocation. Paths are relative to Root.
type Move struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Size        int64  `yaml:"size"`
}

// Skipped records an entry the walk could not read.
type Skipped struct {
	Path  string `yaml:"path"`
	Error string `yaml:"error"`
}
