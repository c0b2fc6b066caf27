// Package config loads tool configuration with koanf, layering built-in
// defaults, an optional config file in the working directory, environment
// variables and an explicit --dir override, in that order.
package config

import (
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mcptools/mcpconf/pkg/errors"
)

// Config holds the resolved tool configuration.
type Config struct {
	// BaseDir is the catalog base directory; may be relative.
	BaseDir string
	// AvailableDir, ActiveDir and BackupsDir are directory names beneath
	// BaseDir.
	AvailableDir string
	ActiveDir    string
	BackupsDir   string
	// CombinedFile is the filename of the combined document.
	CombinedFile string
	// BackupPrefix prefixes backup snapshot filenames.
	BackupPrefix string
	// TimestampFormat is the Go layout used in backup filenames.
	TimestampFormat string
}

// envKeys maps MCPCONF_* environment variables onto config keys. Variables
// not listed here are ignored.
var envKeys = map[string]string{
	"MCPCONF_DIR":              "storage.base_dir",
	"MCPCONF_COMBINED_FILE":    "storage.combined_file",
	"MCPCONF_BACKUP_PREFIX":    "backup.prefix",
	"MCPCONF_TIMESTAMP_FORMAT": "backup.timestamp_format",
}

// Load resolves the configuration. baseDirOverride, when non-empty, takes
// precedence over every other layer (it comes from the --dir flag).
func Load(baseDirOverride string) (*Config, error) {
	k := koanf.New(".")

	// 1. Built-in defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Config file in the working directory, if present
	for _, filename := range []string{".mcpconf.toml", "mcpconf.toml"} {
		if _, err := os.Stat(filename); err == nil {
			if err := k.Load(file.Provider(filename), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", filename)
			}
			break
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider("MCPCONF_", ".", func(s string) string {
		return envKeys[s]
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg := &Config{
		BaseDir:         k.String("storage.base_dir"),
		AvailableDir:    k.String("storage.available_dir"),
		ActiveDir:       k.String("storage.active_dir"),
		BackupsDir:      k.String("storage.backups_dir"),
		CombinedFile:    k.String("storage.combined_file"),
		BackupPrefix:    k.String("backup.prefix"),
		TimestampFormat: k.String("backup.timestamp_format"),
	}

	// 4. Explicit flag wins over everything
	if baseDirOverride != "" {
		cfg.BaseDir = baseDirOverride
	}

	abs, err := filepath.Abs(cfg.BaseDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to resolve base directory")
	}
	cfg.BaseDir = abs

	return cfg, nil
}
