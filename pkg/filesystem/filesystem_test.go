package filesystem_test

import (
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/configtool/pkg/filesystem"
	"github.com/arthur-debert/configtool/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplementations(t *testing.T) {
	tests := []struct {
		name string
		fs   types.FS
		root string
	}{
		{name: "os", fs: filesystem.NewOS(), root: t.TempDir()},
		{name: "afero", fs: filesystem.NewAferoFS(afero.NewMemMapFs()), root: "/work"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := filepath.Join(tt.root, "a", "b")
			require.NoError(t, tt.fs.MkdirAll(dir, 0755))

			file := filepath.Join(dir, "f.txt")
			require.NoError(t, tt.fs.WriteFile(file, []byte("hello"), 0644))

			data, err := tt.fs.ReadFile(file)
			require.NoError(t, err)
			assert.Equal(t, "hello", string(data))

			info, err := tt.fs.Stat(file)
			require.NoError(t, err)
			assert.Equal(t, int64(5), info.Size())

			_, err = tt.fs.ReadFile(filepath.Join(dir, "missing"))
			assert.ErrorIs(t, err, fs.ErrNotExist)

			_, err = tt.fs.ReadFile(dir)
			assert.Error(t, err, "reading a directory must fail")
		})
	}
}
