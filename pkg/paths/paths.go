// Package paths derives every filesystem location mcpconf uses from the
// resolved configuration and bootstraps the directory layout.
package paths

import (
	"path/filepath"
	"time"

	"github.com/mcptools/mcpconf/pkg/config"
	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/types"
)

// Paths resolves the catalog layout beneath the base directory:
//
//	<base>/available/*.json   staged fragments
//	<base>/active/*.json      activated fragments
//	<base>/backups/           snapshots of the combined document
//	<base>/<combined file>    the combined document itself
type Paths struct {
	cfg *config.Config
}

// New creates a Paths instance from the resolved configuration.
func New(cfg *config.Config) *Paths {
	return &Paths{cfg: cfg}
}

// BaseDir returns the catalog base directory.
func (p *Paths) BaseDir() string {
	return p.cfg.BaseDir
}

// AvailableDir returns the directory holding staged fragments.
func (p *Paths) AvailableDir() string {
	return filepath.Join(p.cfg.BaseDir, p.cfg.AvailableDir)
}

// ActiveDir returns the directory holding activated fragments.
func (p *Paths) ActiveDir() string {
	return filepath.Join(p.cfg.BaseDir, p.cfg.ActiveDir)
}

// BackupsDir returns the directory holding snapshots.
func (p *Paths) BackupsDir() string {
	return filepath.Join(p.cfg.BaseDir, p.cfg.BackupsDir)
}

// CombinedFile returns the path of the combined document.
func (p *Paths) CombinedFile() string {
	return filepath.Join(p.cfg.BaseDir, p.cfg.CombinedFile)
}

// BackupFile returns the snapshot path for the given time. Second-level
// resolution; two snapshots within the same second map to the same path.
func (p *Paths) BackupFile(t time.Time) string {
	name := p.cfg.BackupPrefix + t.Format(p.cfg.TimestampFormat) + ".json"
	return filepath.Join(p.BackupsDir(), name)
}

// EnsureLayout creates the directory structure if it does not exist yet.
func (p *Paths) EnsureLayout(fs types.FS) error {
	for _, dir := range []string{p.BaseDir(), p.AvailableDir(), p.ActiveDir(), p.BackupsDir()} {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to create directory %s", dir)
		}
	}
	return nil
}
