package testutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// MemFS returns an in-memory filesystem holding files, keyed by path.
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		AddFile(t, fs, path, content)
	}
	return fs
}

// AddFile writes content to path, creating parent directories.
func AddFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
}
