package commands

import (
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/types"
)

// DisableOptions defines the options for deactivating a fragment
type DisableOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// Name is the fragment identifier to deactivate.
	Name string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// DisableResult reports a successful disable.
type DisableResult struct {
	Name string
}

// Disable deactivates a fragment by removing it from the active collection.
// Fails if the fragment is not currently active.
func Disable(opts DisableOptions) (*DisableResult, error) {
	logger := logging.GetLogger("commands.disable")
	logger.Debug().Str("fragment", opts.Name).Msg("Starting disable operation")

	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	if err := env.store.Deactivate(opts.Name); err != nil {
		return nil, err
	}

	return &DisableResult{Name: opts.Name}, nil
}
