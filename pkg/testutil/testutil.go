// Package testutil provides shared helpers for configtool tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/configtool/pkg/filesystem"
	"github.com/arthur-debert/configtool/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes content to path on fsys, creating parent directories.
func WriteFile(t *testing.T, fsys types.FS, path, content string) {
	t.Helper()
	require.NoError(t, fsys.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, fsys.WriteFile(path, []byte(content), 0644))
}

// ReadFile returns the content at path on fsys, failing the test on error.
func ReadFile(t *testing.T, fsys types.FS, path string) string {
	t.Helper()
	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// LookupFrom returns an environment lookup backed by a fixed map.
func LookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// SetupConfigHome points XDG_CONFIG_HOME and XDG_STATE_HOME at fresh
// temporary directories and returns the config home.
func SetupConfigHome(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	configHome := filepath.Join(root, "config")
	require.NoError(t, os.MkdirAll(configHome, 0755))
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return configHome
}
