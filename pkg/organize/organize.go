// Package organize provides the public Go library API for organize.
//
// organize flattens directory trees: every file nested below a root is moved
// up into the root. Name collisions get a numeric suffix ("file_1.txt")
// instead of overwriting anything, and directories left empty can be pruned.
//
// # Basic Usage
//
//	result, err := organize.Flatten(ctx, "/path/to/dir", organize.Options{
//	    Rename:      true,
//	    DeleteEmpty: true,
//	})
//
// # Config-driven usage
//
//	client, err := organize.New(organize.ClientOptions{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	opts := client.RunOptions() // defaults from organize.yaml layers
//	opts.DryRun = true
//	result, err := client.Flatten(ctx, "/path/to/dir", opts)
package organize

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/thatjuan/organize/internal/config"
	"github.com/thatjuan/organize/internal/flatten"
	"github.com/thatjuan/organize/internal/journal"
)

// Flattener moves nested files up to a root directory.
type Flattener interface {
	Flatten(ctx context.Context, root string, opts RunOptions) (*Result, error)
}

// Flatten runs a single flatten with explicit options and no config lookup.
func Flatten(ctx context.Context, root string, opts Options) (*Result, error) {
	return flatten.Flatten(ctx, root, opts)
}

// RunOptions are flatten options plus run-level settings.
type RunOptions struct {
	Options
	// Journal, when set, is where a YAML record of the run is written.
	// Relative paths are resolved against the working directory.
	// Dry runs never write a journal.
	Journal string
}

// ClientOptions configures a Client.
type ClientOptions struct {
	// ConfigPath is the project-level config. Default: ".organize.yaml".
	ConfigPath string

	// SystemConfigPath and UserConfigPath override the OS defaults.
	SystemConfigPath string
	UserConfigPath   string

	// NoInherit skips system and user config layers.
	NoInherit bool
}

// ConfigLayer describes one config file considered by New.
type ConfigLayer struct {
	Level  string // "system", "user", "project"
	Path   string
	Loaded bool
}

// Client runs flatten operations with defaults taken from layered config.
type Client struct {
	defaults config.Defaults
	layers   []ConfigLayer
	now      func() time.Time
}

var _ Flattener = (*Client)(nil)

// New loads the config layers and returns a Client.
func New(opts ClientOptions) (*Client, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultProjectPath
	}

	hr, err := config.LoadHierarchical(config.DiscoverOptions{
		ProjectPath:      opts.ConfigPath,
		SystemConfigPath: opts.SystemConfigPath,
		UserConfigPath:   opts.UserConfigPath,
		NoInherit:        opts.NoInherit || config.EnvNoInherit(),
	})
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	c := &Client{
		defaults: hr.Config.Defaults(),
		now:      time.Now,
	}
	for _, l := range hr.Layers {
		c.layers = append(c.layers, ConfigLayer{Level: string(l.Level), Path: l.Path, Loaded: l.Loaded})
	}
	return c, nil
}

// RunOptions returns the configured defaults.
func (c *Client) RunOptions() RunOptions {
	return RunOptions{
		Options: Options{
			Rename:      c.defaults.Rename,
			DeleteEmpty: c.defaults.DeleteEmpty,
			Strict:      c.defaults.Strict,
		},
		Journal: c.defaults.Journal,
	}
}

// Layers returns the config files considered, lowest precedence first.
func (c *Client) Layers() []ConfigLayer {
	return c.layers
}

// Flatten runs the operation and, unless it is a dry run, writes the journal
// when one is configured. The journal is also written after a failed run
// that got as far as collecting, so partial work is on record.
func (c *Client) Flatten(ctx context.Context, root string, opts RunOptions) (*Result, error) {
	result, runErr := flatten.Flatten(ctx, root, opts.Options)
	if result == nil || opts.DryRun || opts.Journal == "" {
		return result, runErr
	}

	path, err := filepath.Abs(opts.Journal)
	if err != nil {
		return result, errors.Join(runErr, fmt.Errorf("resolving journal path: %w", err))
	}
	j := journal.FromResult(result, opts.Options, c.now())
	if err := journal.Save(path, j); err != nil {
		return result, errors.Join(runErr, err)
	}
	return result, runErr
}
