package commands

import (
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/types"
)

// EnableOptions defines the options for activating a fragment
type EnableOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// Name is the fragment identifier to activate.
	Name string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// EnableResult reports a successful enable.
type EnableResult struct {
	Name string
}

// Enable activates an available fragment by copying it into the active
// collection. Enabling an already-active fragment succeeds and overwrites.
func Enable(opts EnableOptions) (*EnableResult, error) {
	logger := logging.GetLogger("commands.enable")
	logger.Debug().Str("fragment", opts.Name).Msg("Starting enable operation")

	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	if err := env.store.Activate(opts.Name); err != nil {
		return nil, err
	}

	return &EnableResult{Name: opts.Name}, nil
}
