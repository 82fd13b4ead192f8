package config

import (
	"errors"
	"fmt"
	"io/fs"
)

// Merge combines two configs where overlay takes precedence over base:
//   - version: must agree if both declare it (non-zero); fatal error on mismatch
//   - rename, delete_empty, strict: overlay wins when set
//   - journal: overlay wins when non-empty
func Merge(base, overlay *Config) (*Config, error) {
	if base == nil {
		return overlay, nil
	}
	if overlay == nil {
		return base, nil
	}

	result := &Config{}

	if err := mergeVersion(base.Version, overlay.Version, &result.Version); err != nil {
		return nil, err
	}

	result.Rename = mergeBool(base.Rename, overlay.Rename)
	result.DeleteEmpty = mergeBool(base.DeleteEmpty, overlay.DeleteEmpty)
	result.Strict = mergeBool(base.Strict, overlay.Strict)

	result.Journal = base.Journal
	if overlay.Journal != "" {
		result.Journal = overlay.Journal
	}

	return result, nil
}

// MergeAll merges multiple configs in order (lowest precedence first).
// Returns an error if any version mismatch is found.
func MergeAll(configs []*Config) (*Config, error) {
	if len(configs) == 0 {
		return nil, fmt.Errorf("no configs to merge")
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		var err error
		result, err = Merge(result, configs[i])
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func mergeVersion(base, overlay int, out *int) error {
	switch {
	case base == 0 && overlay == 0:
		*out = 0 // neither declares; validation will catch this
	case base == 0:
		*out = overlay
	case overlay == 0:
		*out = base
	case base == overlay:
		*out = base
	default:
		return fmt.Errorf("config version mismatch: one layer declares version %d, another declares version %d — all config layers must agree on version", base, overlay)
	}
	return nil
}

func mergeBool(base, overlay *bool) *bool {
	if overlay != nil {
		return overlay
	}
	return base
}

// HierarchicalResult is the merged config plus the layers that produced it.
type HierarchicalResult struct {
	Config *Config
	Layers []ConfigLayerInfo
}

// LoadHierarchical loads every discovered layer that exists, merges them and
// validates the result. Missing layers are skipped. When no layer exists the
// result is an empty version 1 config.
func LoadHierarchical(opts DiscoverOptions) (*HierarchicalResult, error) {
	layers := DiscoverPaths(opts)
	hr := &HierarchicalResult{Layers: layers}

	var loaded []*Config
	for i := range layers {
		cfg, err := Parse(layers[i].Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			layers[i].Err = err
			return hr, fmt.Errorf("%s config: %w", layers[i].Level, err)
		}
		layers[i].Loaded = true
		loaded = append(loaded, cfg)
	}

	if len(loaded) == 0 {
		hr.Config = &Config{Version: 1}
		return hr, nil
	}

	merged, err := MergeAll(loaded)
	if err != nil {
		return hr, err
	}
	if errs := Validate(merged); len(errs) > 0 {
		return hr, &ValidationError{Errors: errs}
	}

	hr.Config = merged
	return hr, nil
}
