package paths_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcptools/mcpconf/pkg/config"
	"github.com/mcptools/mcpconf/pkg/filesystem"
	"github.com/mcptools/mcpconf/pkg/paths"
)

func testConfig() *config.Config {
	return &config.Config{
		BaseDir:         "/mcp_configs",
		AvailableDir:    "available",
		ActiveDir:       "active",
		BackupsDir:      "backups",
		CombinedFile:    "claude_desktop_config.json",
		BackupPrefix:    "config_backup_",
		TimestampFormat: "20060102_150405",
	}
}

func TestLayout(t *testing.T) {
	p := paths.New(testConfig())

	assert.Equal(t, "/mcp_configs", p.BaseDir())
	assert.Equal(t, filepath.Join("/mcp_configs", "available"), p.AvailableDir())
	assert.Equal(t, filepath.Join("/mcp_configs", "active"), p.ActiveDir())
	assert.Equal(t, filepath.Join("/mcp_configs", "backups"), p.BackupsDir())
	assert.Equal(t, filepath.Join("/mcp_configs", "claude_desktop_config.json"), p.CombinedFile())
}

func TestBackupFile(t *testing.T) {
	p := paths.New(testConfig())

	at := time.Date(2026, 8, 24, 9, 30, 59, 0, time.UTC)
	assert.Equal(t,
		filepath.Join("/mcp_configs", "backups", "config_backup_20260824_093059.json"),
		p.BackupFile(at))

	// Sub-second times collapse onto the same name
	assert.Equal(t, p.BackupFile(at), p.BackupFile(at.Add(500*time.Millisecond)))
}

func TestEnsureLayout(t *testing.T) {
	fs := filesystem.NewMemory()
	p := paths.New(testConfig())

	require.NoError(t, p.EnsureLayout(fs))
	for _, dir := range []string{p.BaseDir(), p.AvailableDir(), p.ActiveDir(), p.BackupsDir()} {
		info, err := fs.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}

	// Idempotent
	require.NoError(t, p.EnsureLayout(fs))
}
