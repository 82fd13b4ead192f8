package flatten

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OccupiedSet tracks root-level paths that are, or are about to be, in use.
// It is owned by a single flatten run and threaded explicitly through the
// move phase.
type OccupiedSet struct {
	paths map[string]struct{}
}

// NewOccupiedSet returns a set holding paths.
func NewOccupiedSet(paths ...string) *OccupiedSet {
	s := &OccupiedSet{paths: make(map[string]struct{}, len(paths))}
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// SeedOccupied builds the set from every non-directory entry directly in
// root. Root-level directories are not added; the live existence check
// catches them.
func SeedOccupied(root string) (*OccupiedSet, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, &OpError{Op: OpScan, Path: root, Err: err}
	}

	s := NewOccupiedSet()
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		s.Add(filepath.Join(root, e.Name()))
	}
	return s, nil
}

// Contains reports whether path is taken.
func (s *OccupiedSet) Contains(path string) bool {
	_, ok := s.paths[path]
	return ok
}

// Add marks path as taken.
func (s *OccupiedSet) Add(path string) {
	s.paths[path] = struct{}{}
}

// Len returns the number of taken paths.
func (s *OccupiedSet) Len() int {
	return len(s.paths)
}

// ExistsFunc reports whether something already lives at path.
type ExistsFunc func(path string) bool

// Lexists reports whether path exists without following a final symlink, so
// a dangling link still counts as taken.
func Lexists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// ResolveDestination returns dest if it is free, otherwise the first free
// "{stem}_{N}{ext}" sibling with N counting up from 1. A candidate is free
// when it is neither in occupied nor reported by exists. The set is not
// modified; callers add the result once the move commits.
func ResolveDestination(dest string, occupied *OccupiedSet, exists ExistsFunc) string {
	free := func(p string) bool {
		return !occupied.Contains(p) && !exists(p)
	}
	if free(dest) {
		return dest
	}

	dir := filepath.Dir(dest)
	stem, ext := splitName(filepath.Base(dest))
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, n, ext))
		if free(candidate) {
			return candidate
		}
	}
}

// splitName splits a file name into stem and extension. A name made only of
// a leading dot and a word (".bashrc") has no extension.
func splitName(name string) (stem, ext string) {
	ext = filepath.Ext(name)
	stem = strings.TrimSuffix(name, ext)
	if stem == "" || strings.Trim(stem, ".") == "" {
		return name, ""
	}
	return stem, ext
}
