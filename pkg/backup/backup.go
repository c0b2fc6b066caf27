// Package backup snapshots the combined document before it is overwritten.
package backup

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/paths"
	"github.com/mcptools/mcpconf/pkg/types"
)

// Service creates timestamped snapshots of the combined document.
type Service struct {
	fs    types.FS
	paths *paths.Paths

	// now is the clock used for snapshot names; replaceable in tests.
	now func() time.Time
}

// New creates a backup service.
func New(fsys types.FS, p *paths.Paths) *Service {
	return &Service{fs: fsys, paths: p, now: time.Now}
}

// WithClock overrides the clock used for snapshot names.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Snapshot copies the current combined document verbatim into the backups
// directory under a second-resolution timestamped name. When no combined
// document exists it returns an empty name and no error. Two snapshots
// within the same second overwrite each other.
func (s *Service) Snapshot() (string, error) {
	logger := logging.GetLogger("backup")

	data, err := s.fs.ReadFile(s.paths.CombinedFile())
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			logger.Debug().Msg("No combined configuration to back up")
			return "", nil
		}
		return "", errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", s.paths.CombinedFile())
	}

	backupPath := s.paths.BackupFile(s.now())
	if err := s.fs.WriteFile(backupPath, data, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrIOFailure, "failed to write backup %s", backupPath)
	}

	name := filepath.Base(backupPath)
	logger.Info().Str("backup", name).Msg("Backup created")
	return name, nil
}
