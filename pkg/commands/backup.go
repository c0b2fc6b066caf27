package commands

import (
	"github.com/mcptools/mcpconf/pkg/backup"
	"github.com/mcptools/mcpconf/pkg/types"
)

// BackupOptions defines the options for snapshotting the combined document
type BackupOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// BackupResult reports the snapshot taken.
type BackupResult struct {
	// Name of the snapshot file; empty when there was no combined document
	// to back up.
	Name string
}

// Backup snapshots the current combined document. Taking a backup when no
// combined document exists is a no-op, not a failure.
func Backup(opts BackupOptions) (*BackupResult, error) {
	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	name, err := backup.New(env.fs, env.paths).Snapshot()
	if err != nil {
		return nil, err
	}

	return &BackupResult{Name: name}, nil
}
