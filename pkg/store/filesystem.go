// Package store implements the fragment catalog on top of the types.FS
// abstraction: a key-value store of JSON fragments with an available and an
// active partition, each backed by a directory.
package store

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/paths"
	"github.com/mcptools/mcpconf/pkg/types"
)

// filesystemStore implements types.Store. It keeps no state between calls;
// every operation re-reads the directories, so external modification is
// visible immediately.
type filesystemStore struct {
	fs    types.FS
	paths *paths.Paths
}

// New creates a Store backed by the given filesystem and layout.
func New(fsys types.FS, p *paths.Paths) types.Store {
	return &filesystemStore{fs: fsys, paths: p}
}

func (s *filesystemStore) Add(sourcePath string) (string, error) {
	logger := logging.GetLogger("store")

	data, err := s.fs.ReadFile(sourcePath)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "cannot read %s", sourcePath)
	}

	var value interface{}
	if err := json.Unmarshal(data, &value); err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "%s does not contain valid JSON", sourcePath)
	}

	name := filepath.Base(sourcePath)
	dest := filepath.Join(s.paths.AvailableDir(), name)
	if err := s.copyFile(sourcePath, dest, data); err != nil {
		return "", err
	}

	logger.Info().Str("fragment", name).Msg("Fragment added to available configurations")
	return name, nil
}

func (s *filesystemStore) Activate(name string) error {
	logger := logging.GetLogger("store")

	source := filepath.Join(s.paths.AvailableDir(), name)
	if _, err := s.fs.Stat(source); err != nil {
		return errors.Newf(errors.ErrNotFound, "configuration %s does not exist in the available directory", name)
	}

	// Unconditional copy: re-activating overwrites, which makes this
	// idempotent.
	dest := filepath.Join(s.paths.ActiveDir(), name)
	if err := s.copyFile(source, dest, nil); err != nil {
		return err
	}

	logger.Info().Str("fragment", name).Msg("Fragment activated")
	return nil
}

func (s *filesystemStore) Deactivate(name string) error {
	logger := logging.GetLogger("store")

	path := filepath.Join(s.paths.ActiveDir(), name)
	if _, err := s.fs.Stat(path); err != nil {
		return errors.Newf(errors.ErrNotFound, "configuration %s is not active", name)
	}

	if err := s.fs.Remove(path); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to remove %s", path)
	}

	logger.Info().Str("fragment", name).Msg("Fragment deactivated")
	return nil
}

func (s *filesystemStore) List() (types.Listing, error) {
	available, err := s.listNames(s.paths.AvailableDir())
	if err != nil {
		return types.Listing{}, err
	}
	active, err := s.listNames(s.paths.ActiveDir())
	if err != nil {
		return types.Listing{}, err
	}
	return types.Listing{Available: available, Active: active}, nil
}

func (s *filesystemStore) ActiveFragments() ([]types.Fragment, error) {
	names, err := s.listNames(s.paths.ActiveDir())
	if err != nil {
		return nil, err
	}

	fragments := make([]types.Fragment, 0, len(names))
	for _, name := range names {
		data, err := s.fs.ReadFile(filepath.Join(s.paths.ActiveDir(), name))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read active fragment %s", name)
		}
		fragments = append(fragments, types.Fragment{Name: name, Data: data})
	}
	return fragments, nil
}

// listNames returns the .json entries of dir in lexicographic order. A
// missing directory counts as empty.
func (s *filesystemStore) listNames(dir string) ([]string, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read directory %s", dir)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

// copyFile copies source to dest, preserving mode and modification time
// where the backing filesystem supports it. data may carry pre-read source
// content to avoid a second read.
func (s *filesystemStore) copyFile(source, dest string, data []byte) error {
	info, err := s.fs.Stat(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to stat %s", source)
	}

	if data == nil {
		data, err = s.fs.ReadFile(source)
		if err != nil {
			return errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", source)
		}
	}

	if err := s.fs.WriteFile(dest, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", dest)
	}

	// WriteFile's perm only applies on create; align mode and mtime with the
	// source for overwrites too.
	if err := s.fs.Chmod(dest, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to set mode on %s", dest)
	}
	if err := s.fs.Chtimes(dest, info.ModTime(), info.ModTime()); err != nil {
		return errors.Wrapf(err, errors.ErrIOFailure, "failed to set times on %s", dest)
	}
	return nil
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist)
}
