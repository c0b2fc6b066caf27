package commands

import (
	"github.com/mcptools/mcpconf/pkg/types"
)

// ListOptions defines the options for listing fragments
type ListOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// ListResult holds the sorted identifiers of each collection.
type ListResult struct {
	Available []string
	Active    []string
}

// List returns the available and active fragment identifiers,
// lexicographically sorted.
func List(opts ListOptions) (*ListResult, error) {
	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	listing, err := env.store.List()
	if err != nil {
		return nil, err
	}

	return &ListResult{Available: listing.Available, Active: listing.Active}, nil
}
