package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/thatjuan/organize/internal/flatten"
	"github.com/thatjuan/organize/internal/sandbox"
)

// FromResult converts a flatten result into a journal. Paths under the root
// are stored relative to it.
func FromResult(r *flatten.Result, opts flatten.Options, now time.Time) *Journal {
	j := &Journal{
		Version:     1,
		Root:        r.Root,
		CreatedAt:   now.UTC().Truncate(time.Second),
		Rename:      opts.Rename,
		DeleteEmpty: opts.DeleteEmpty,
		Moves:       make([]Move, 0, len(r.Moves)),
	}
	for _, m := range r.Moves {
		j.Moves = append(j.Moves, Move{
			Source:      relTo(r.Root, m.Source),
			Destination: relTo(r.Root, m.Destination),
			Size:        m.Size,
		})
	}
	for _, d := range r.Removed {
		j.Removed = append(j.Removed, relTo(r.Root, d))
	}
	for _, s := range r.Skipped {
		j.Skipped = append(j.Skipped, Skipped{Path: relTo(r.Root, s.Path), Error: s.Err.Error()})
	}
	return j
}

func relTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}

// Load reads and validates a journal file.
func Load(path string) (*Journal, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}

	var j Journal
	if err := yaml.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing journal %s: %w", path, err)
	}

	if errs := Validate(&j); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	return &j, nil
}

// Save writes a journal atomically.
func Save(path string, j *Journal) error {
	data, err := yaml.Marshal(j)
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}
	if err := sandbox.SafeWrite(path, data, 0644); err != nil {
		return fmt.Errorf("writing journal %s: %w", path, err)
	}
	return nil
}

// ValidationError holds multiple validation failures.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("journal validation failed:\n  - %s", strings.Join(e.Errors, "\n  - "))
}

// Validate checks a Journal for semantic correctness.
// Returns a list of validation error messages (empty if valid).
func Validate(j *Journal) []string {
	var errs []string

	if j.Version != 1 {
		errs = append(errs, fmt.Sprintf("unsupported version %d — only version 1 is supported", j.Version))
	}
	if j.Root == "" {
		errs = append(errs, "'root' is required")
	} else if !filepath.IsAbs(j.Root) {
		errs = append(errs, fmt.Sprintf("root '%s' must be an absolute path", j.Root))
	}

	dests := make(map[string]bool)
	for i, m := range j.Moves {
		prefix := fmt.Sprintf("move[%d]", i)
		if m.Source == "" {
			errs = append(errs, fmt.Sprintf("%s: 'source' is required", prefix))
		}
		switch {
		case m.Destination == "":
			errs = append(errs, fmt.Sprintf("%s: 'destination' is required", prefix))
		case strings.Contains(m.Destination, "/"):
			errs = append(errs, fmt.Sprintf("%s: destination '%s' must be directly in root", prefix, m.Destination))
		case dests[m.Destination]:
			errs = append(errs, fmt.Sprintf("%s: destination '%s' used more than once", prefix, m.Destination))
		default:
			dests[m.Destination] = true
		}
		if m.Size < 0 {
			errs = append(errs, fmt.Sprintf("%s: negative size %d", prefix, m.Size))
		}
	}

	return errs
}
