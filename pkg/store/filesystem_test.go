package store_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcptools/mcpconf/pkg/config"
	"github.com/mcptools/mcpconf/pkg/errors"
	"github.com/mcptools/mcpconf/pkg/filesystem"
	"github.com/mcptools/mcpconf/pkg/paths"
	"github.com/mcptools/mcpconf/pkg/store"
	"github.com/mcptools/mcpconf/pkg/types"
)

// setupStore creates a store over a fresh in-memory filesystem.
func setupStore(t *testing.T) (types.Store, types.FS, *paths.Paths) {
	t.Helper()

	fs := filesystem.NewMemory()
	cfg := &config.Config{
		BaseDir:         "/mcp_configs",
		AvailableDir:    "available",
		ActiveDir:       "active",
		BackupsDir:      "backups",
		CombinedFile:    "claude_desktop_config.json",
		BackupPrefix:    "config_backup_",
		TimestampFormat: "20060102_150405",
	}
	p := paths.New(cfg)
	require.NoError(t, p.EnsureLayout(fs))

	return store.New(fs, p), fs, p
}

func writeSource(t *testing.T, fs types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fs.WriteFile(path, []byte(content), 0644))
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, fs types.FS)
		source   string
		wantName string
		wantCode errors.ErrorCode
	}{
		{
			name: "valid_json_is_staged",
			setup: func(t *testing.T, fs types.FS) {
				writeSource(t, fs, "/src/server1.json", `{"mcpServers": {"server1": {}}}`)
			},
			source:   "/src/server1.json",
			wantName: "server1.json",
		},
		{
			name:     "missing_source_fails",
			setup:    func(t *testing.T, fs types.FS) {},
			source:   "/src/missing.json",
			wantCode: errors.ErrInvalidInput,
		},
		{
			name: "invalid_json_fails",
			setup: func(t *testing.T, fs types.FS) {
				writeSource(t, fs, "/src/broken.json", `{broken`)
			},
			source:   "/src/broken.json",
			wantCode: errors.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, fs, p := setupStore(t)
			tt.setup(t, fs)

			name, err := s.Add(tt.source)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, tt.wantCode))

				// No state change on failure
				listing, listErr := s.List()
				require.NoError(t, listErr)
				assert.Empty(t, listing.Available)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)

			// Staged content matches the source
			data, err := fs.ReadFile(filepath.Join(p.AvailableDir(), tt.wantName))
			require.NoError(t, err)
			assert.JSONEq(t, `{"mcpServers": {"server1": {}}}`, string(data))

			listing, err := s.List()
			require.NoError(t, err)
			assert.Contains(t, listing.Available, tt.wantName)
		})
	}
}

func TestActivate(t *testing.T) {
	s, fs, p := setupStore(t)
	writeSource(t, fs, "/src/server1.json", `{"mcpServers": {"server1": {}}}`)
	_, err := s.Add("/src/server1.json")
	require.NoError(t, err)

	t.Run("unknown_fragment_fails", func(t *testing.T) {
		err := s.Activate("nope.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("available_fragment_is_copied_to_active", func(t *testing.T) {
		require.NoError(t, s.Activate("server1.json"))

		data, err := fs.ReadFile(filepath.Join(p.ActiveDir(), "server1.json"))
		require.NoError(t, err)
		assert.JSONEq(t, `{"mcpServers": {"server1": {}}}`, string(data))
	})

	t.Run("reactivation_is_idempotent", func(t *testing.T) {
		require.NoError(t, s.Activate("server1.json"))
		require.NoError(t, s.Activate("server1.json"))

		listing, err := s.List()
		require.NoError(t, err)
		assert.Equal(t, []string{"server1.json"}, listing.Active)
	})
}

func TestDeactivate(t *testing.T) {
	s, fs, _ := setupStore(t)
	writeSource(t, fs, "/src/server1.json", `{"a": 1}`)
	_, err := s.Add("/src/server1.json")
	require.NoError(t, err)
	require.NoError(t, s.Activate("server1.json"))

	t.Run("active_fragment_is_removed", func(t *testing.T) {
		require.NoError(t, s.Deactivate("server1.json"))

		listing, err := s.List()
		require.NoError(t, err)
		assert.Empty(t, listing.Active)
		// Still available
		assert.Equal(t, []string{"server1.json"}, listing.Available)
	})

	t.Run("second_deactivation_fails", func(t *testing.T) {
		err := s.Deactivate("server1.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})

	t.Run("never_active_fragment_fails", func(t *testing.T) {
		err := s.Deactivate("other.json")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}

func TestList_SortedAndFiltered(t *testing.T) {
	s, fs, p := setupStore(t)

	for _, name := range []string{"zeta.json", "alpha.json", "mid.json"} {
		writeSource(t, fs, "/src/"+name, `{}`)
		_, err := s.Add("/src/" + name)
		require.NoError(t, err)
	}
	// Non-JSON entries are ignored
	require.NoError(t, fs.WriteFile(filepath.Join(p.AvailableDir(), "README.txt"), []byte("hi"), 0644))

	require.NoError(t, s.Activate("zeta.json"))
	require.NoError(t, s.Activate("alpha.json"))

	listing, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha.json", "mid.json", "zeta.json"}, listing.Available)
	assert.Equal(t, []string{"alpha.json", "zeta.json"}, listing.Active)
}

func TestActiveFragments_OrderAndContent(t *testing.T) {
	s, fs, _ := setupStore(t)

	writeSource(t, fs, "/src/b.json", `{"b": 1}`)
	writeSource(t, fs, "/src/a.json", `{"a": 1}`)
	for _, name := range []string{"b.json", "a.json"} {
		_, err := s.Add("/src/" + name)
		require.NoError(t, err)
		require.NoError(t, s.Activate(name))
	}

	fragments, err := s.ActiveFragments()
	require.NoError(t, err)
	require.Len(t, fragments, 2)
	assert.Equal(t, "a.json", fragments[0].Name)
	assert.JSONEq(t, `{"a": 1}`, string(fragments[0].Data))
	assert.Equal(t, "b.json", fragments[1].Name)
	assert.JSONEq(t, `{"b": 1}`, string(fragments[1].Data))
}

func TestStore_OnOSFilesystem(t *testing.T) {
	// The memory filesystem covers most cases; this keeps one smoke test on
	// the real OS filesystem.
	tempDir := t.TempDir()
	fs := filesystem.NewOS()
	cfg := &config.Config{
		BaseDir:         filepath.Join(tempDir, "mcp_configs"),
		AvailableDir:    "available",
		ActiveDir:       "active",
		BackupsDir:      "backups",
		CombinedFile:    "claude_desktop_config.json",
		BackupPrefix:    "config_backup_",
		TimestampFormat: "20060102_150405",
	}
	p := paths.New(cfg)
	require.NoError(t, p.EnsureLayout(fs))
	s := store.New(fs, p)

	source := filepath.Join(tempDir, "server1.json")
	require.NoError(t, fs.WriteFile(source, []byte(`{"mcpServers": {"server1": {}}}`), 0644))

	name, err := s.Add(source)
	require.NoError(t, err)
	require.NoError(t, s.Activate(name))

	// Metadata is preserved on copy
	srcInfo, err := fs.Stat(source)
	require.NoError(t, err)
	dstInfo, err := fs.Stat(filepath.Join(p.AvailableDir(), name))
	require.NoError(t, err)
	assert.Equal(t, srcInfo.Mode().Perm(), dstInfo.Mode().Perm())
	assert.True(t, srcInfo.ModTime().Equal(dstInfo.ModTime()))

	listing, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"server1.json"}, listing.Available)
	assert.Equal(t, []string{"server1.json"}, listing.Active)
}
