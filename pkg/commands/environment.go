package commands

import (
	"github.com/mcptools/mcpconf/pkg/config"
	"github.com/mcptools/mcpconf/pkg/filesystem"
	"github.com/mcptools/mcpconf/pkg/paths"
	"github.com/mcptools/mcpconf/pkg/store"
	"github.com/mcptools/mcpconf/pkg/types"
)

// environment bundles the collaborators every operation needs.
type environment struct {
	fs    types.FS
	cfg   *config.Config
	paths *paths.Paths
	store types.Store
}

// newEnvironment resolves configuration, bootstraps the directory layout and
// wires the store. fsys may be nil, in which case the OS filesystem is used.
func newEnvironment(baseDir string, fsys types.FS) (*environment, error) {
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		return nil, err
	}

	p := paths.New(cfg)
	if err := p.EnsureLayout(fsys); err != nil {
		return nil, err
	}

	return &environment{
		fs:    fsys,
		cfg:   cfg,
		paths: p,
		store: store.New(fsys, p),
	}, nil
}
