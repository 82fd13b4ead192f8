package sandbox

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotDirectory is returned by ResolveRoot when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ResolveRoot canonicalizes path: absolute, symlinks resolved, and verified
// to be an existing directory.
func ResolveRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolving symlinks for %s: %w", path, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", resolved, ErrNotDirectory)
	}
	return resolved, nil
}

// ValidatePath checks that targetPath is safely within root. targetPath may
// be absolute or relative to root. root must already be canonical (see
// ResolveRoot). Returns the resolved absolute path or an error.
func ValidatePath(root, targetPath string) (string, error) {
	candidate := targetPath
	if !filepath.IsAbs(candidate) {
		candidate = filepath.Join(root, candidate)
	}
	candidate = filepath.Clean(candidate)

	// The path may not exist yet, so resolve as much as we can.
	resolved, err := resolveExistingPath(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	// Trailing separator avoids prefix matching "root2" for "root".
	rootPrefix := root + string(filepath.Separator)
	if resolved != root && !strings.HasPrefix(resolved, rootPrefix) {
		return "", fmt.Errorf("path '%s' resolves to '%s' which is outside the root '%s'", targetPath, resolved, root)
	}

	return resolved, nil
}

// resolveExistingPath resolves symlinks for the longest existing prefix of the path,
// then appends the non-existing suffix.
func resolveExistingPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}

	dir := filepath.Dir(path)
	base := filepath.Base(path)

	if dir == path {
		return path, nil
	}

	resolvedDir, err := resolveExistingPath(dir)
	if err != nil {
		return "", err
	}

	return filepath.Join(resolvedDir, base), nil
}

// validateEntry is ValidatePath for an entry that must not itself be
// dereferenced: only its parent is resolved, so a symlink is checked as a
// link rather than as the thing it points to.
func validateEntry(root, path string) (string, error) {
	parent, err := ValidatePath(root, filepath.Dir(path))
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, filepath.Base(path)), nil
}

// SafeRename moves src to dst after checking that both stay within root.
// Like os.Rename, an existing dst is replaced; callers guard against that.
func SafeRename(root, src, dst string) error {
	from, err := validateEntry(root, src)
	if err != nil {
		return fmt.Errorf("source escapes root: %w", err)
	}
	to, err := validateEntry(root, dst)
	if err != nil {
		return fmt.Errorf("destination escapes root: %w", err)
	}
	return os.Rename(from, to)
}

// SafeRemoveDir removes a single directory within root. It never removes
// root itself and never recurses; a non-empty directory is an error.
func SafeRemoveDir(root, dir string) error {
	resolved, err := validateEntry(root, dir)
	if err != nil {
		return err
	}
	if resolved == root {
		return fmt.Errorf("refusing to remove root '%s'", root)
	}
	return os.Remove(resolved)
}

// SafeWrite atomically writes content to path, creating parent directories.
// The temp file is created next to path so the final rename stays on one
// filesystem.
func SafeWrite(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".organize-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", path, err)
	}

	success = true
	return nil
}
