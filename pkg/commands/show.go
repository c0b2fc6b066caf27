package commands

import (
	stderrors "errors"
	"io/fs"
	"strings"

	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/merge"
	"github.com/mcptools/mcpconf/pkg/types"
)

// ShowOptions defines the options for displaying the combined document
type ShowOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// ShowResult carries the combined document rendered for display.
type ShowResult struct {
	// Path of the combined document.
	Path string
	// JSON is the re-indented document content.
	JSON string
}

// Show reads the combined document and renders it with 2-space indentation.
// Fails if no combined document exists yet.
func Show(opts ShowOptions) (*ShowResult, error) {
	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	path := env.paths.CombinedFile()
	data, err := env.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrNotFound, "no combined configuration exists (%s)", path)
		}
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to read %s", path)
	}

	doc, err := merge.Decode(env.cfg.CombinedFile, data)
	if err != nil {
		return nil, err
	}

	rendered, err := encodeDocument(doc)
	if err != nil {
		return nil, err
	}

	return &ShowResult{Path: path, JSON: strings.TrimRight(string(rendered), "\n")}, nil
}
