package commands

import (
	"bytes"
	"encoding/json"

	"github.com/mcptools/mcpconf/pkg/backup"
	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/logging"
	"github.com/mcptools/mcpconf/pkg/merge"
	"github.com/mcptools/mcpconf/pkg/types"
)

// CombineOptions defines the options for combining the active fragments
type CombineOptions struct {
	// BaseDir overrides the catalog base directory.
	BaseDir string
	// FileSystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// CombineResult reports a successful combine.
type CombineResult struct {
	// Path of the written combined document.
	Path string
	// Fragments merged, in merge order.
	Fragments []string
	// Backup is the snapshot name taken of the previous combined document,
	// empty when none existed.
	Backup string
}

// Combine merges every active fragment, in lexicographic order, into the
// combined document. The previous combined document is snapshotted before
// being overwritten. If any fragment fails to parse, Combine aborts without
// touching the combined document or the backups.
func Combine(opts CombineOptions) (*CombineResult, error) {
	logger := logging.GetLogger("commands.combine")
	logger.Debug().Msg("Starting combine operation")

	env, err := newEnvironment(opts.BaseDir, opts.FileSystem)
	if err != nil {
		return nil, err
	}

	fragments, err := env.store.ActiveFragments()
	if err != nil {
		return nil, err
	}
	if len(fragments) == 0 {
		logger.Info().Msg("No active configurations found, writing empty configuration")
	}

	// Decode everything up front so a parse failure aborts before the
	// previous state is disturbed.
	names := make([]string, 0, len(fragments))
	docs := make([]map[string]interface{}, 0, len(fragments))
	for _, fragment := range fragments {
		doc, err := merge.Decode(fragment.Name, fragment.Data)
		if err != nil {
			logger.Error().Err(err).Str("fragment", fragment.Name).Msg("Failed to process fragment")
			return nil, err
		}
		names = append(names, fragment.Name)
		docs = append(docs, doc)
	}

	combined := merge.Documents(docs)

	backupName, err := backup.New(env.fs, env.paths).Snapshot()
	if err != nil {
		return nil, err
	}

	data, err := encodeDocument(combined)
	if err != nil {
		return nil, err
	}
	if err := env.fs.WriteFile(env.paths.CombinedFile(), data, 0644); err != nil {
		return nil, errors.Wrapf(err, errors.ErrIOFailure, "failed to write %s", env.paths.CombinedFile())
	}

	logger.Info().
		Int("fragments", len(names)).
		Str("path", env.paths.CombinedFile()).
		Msg("Configurations combined")

	return &CombineResult{
		Path:      env.paths.CombinedFile(),
		Fragments: names,
		Backup:    backupName,
	}, nil
}

// encodeDocument renders a document with 2-space indentation, keeping
// non-ASCII characters unescaped.
func encodeDocument(doc map[string]interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode combined document")
	}
	return buf.Bytes(), nil
}
