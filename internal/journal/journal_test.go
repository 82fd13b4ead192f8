package journal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatjuan/organize/internal/flatten"
)

func sampleResult(root string) *flatten.Result {
	return &flatten.Result{
		Root: root,
		Moves: []flatten.MoveAction{
			{Source: filepath.Join(root, "a", "x.txt"), Destination: filepath.Join(root, "x.txt"), Size: 3},
			{Source: filepath.Join(root, "b", "x.txt"), Destination: filepath.Join(root, "x_1.txt"), Size: 4, Renamed: true},
		},
		Removed: []string{filepath.Join(root, "a"), filepath.Join(root, "b")},
		Skipped: []flatten.SkippedEntry{{Path: filepath.Join(root, "locked"), Err: errors.New("permission denied")}},
	}
}

func TestFromResultRelativePaths(t *testing.T) {
	root := filepath.FromSlash("/data/inbox")
	now := time.Date(2026, 3, 4, 5, 6, 7, 890, time.FixedZone("X", 3600))

	j := FromResult(sampleResult(root), flatten.Options{Rename: true, DeleteEmpty: true}, now)

	assert.Equal(t, 1, j.Version)
	assert.Equal(t, root, j.Root)
	assert.Equal(t, time.Date(2026, 3, 4, 4, 6, 7, 0, time.UTC), j.CreatedAt)
	assert.True(t, j.Rename)
	assert.True(t, j.DeleteEmpty)
	assert.Equal(t, []Move{
		{Source: "a/x.txt", Destination: "x.txt", Size: 3},
		{Source: "b/x.txt", Destination: "x_1.txt", Size: 4},
	}, j.Moves)
	assert.Equal(t, []string{"a", "b"}, j.Removed)
	assert.Equal(t, []Skipped{{Path: "locked", Error: "permission denied"}}, j.Skipped)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "logs", "journal.yaml")
	j := FromResult(sampleResult(root), flatten.Options{}, time.Now())

	require.NoError(t, Save(path, j))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, j.Root, loaded.Root)
	assert.Equal(t, j.Moves, loaded.Moves)
	assert.Equal(t, j.Removed, loaded.Removed)
	assert.True(t, j.CreatedAt.Equal(loaded.CreatedAt))
}

func TestSaveEmptyRunHasMovesKey(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(t.TempDir(), "journal.yaml")

	j := FromResult(&flatten.Result{Root: root}, flatten.Options{}, time.Now())
	require.NoError(t, Save(path, j))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "moves: []")
	assert.NotContains(t, string(data), "removed:")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: [unclosed"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing journal")
}

func TestValidate(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "root")

	tests := []struct {
		name string
		j    Journal
		want []string
	}{
		{
			name: "valid",
			j:    Journal{Version: 1, Root: abs, Moves: []Move{{Source: "a/b", Destination: "b"}}},
		},
		{
			name: "bad version and root",
			j:    Journal{Version: 2, Root: "relative/root"},
			want: []string{"unsupported version 2", "must be an absolute path"},
		},
		{
			name: "missing root",
			j:    Journal{Version: 1},
			want: []string{"'root' is required"},
		},
		{
			name: "bad moves",
			j: Journal{Version: 1, Root: abs, Moves: []Move{
				{Source: "", Destination: "x"},
				{Source: "a/x", Destination: "x"},
				{Source: "a/y", Destination: "sub/y"},
				{Source: "a/z", Destination: "", Size: -1},
			}},
			want: []string{
				"move[0]: 'source' is required",
				"destination 'x' used more than once",
				"must be directly in root",
				"move[3]: 'destination' is required",
				"negative size",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(&tt.j)
			require.Len(t, errs, len(tt.want), "errors: %v", errs)
			for i, w := range tt.want {
				assert.Contains(t, errs[i], w)
			}
		})
	}
}

func TestLoadRejectsInvalidJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nroot: relative\nmoves: []\n"), 0644))

	_, err := Load(path)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Error(), "journal validation failed")
}
