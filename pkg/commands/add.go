package commands

import (
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/types"
)

// AddOptions defines the options for staging a new fragment
type AddOptions struct {
	// BaseDir overrides the catalog base directory. Empty means resolve from
	// config and environment.
	BaseDir string
	// SourcePath is the JSON file to stage.
	SourcePath string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// AddResult reports a successful add.
type AddResult struct {
	// Name is the identifier the fragment was staged under.
	Name string
}

// Add validates and copies a JSON file into the available collection.
func Add(opts AddOptions) (*AddResult, error) {
	logger := logging.GetLogger("commands.add")
	logger.Debug().Str("source", opts.SourcePath).Msg("Starting add operation")

	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	name, err := env.store.Add(opts.SourcePath)
	if err != nil {
		return nil, err
	}

	return &AddResult{Name: name}, nil
}
