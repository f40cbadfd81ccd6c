package fsutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name:  "creates new directory",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "newdir") },
		},
		{
			name:  "creates nested directories",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "parent", "child", "nested") },
		},
		{
			name:  "succeeds when directory already exists",
			setup: func(t *testing.T) string { return t.TempDir() },
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			path := testCase.setup(t)

			require.NoError(t, EnsureDir(path))
			assert.DirExists(t, path)
			assert.True(t, IsDir(path))
		})
	}
}

func TestEnsureFileDir(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "logs", "pulpctl.log")

	require.NoError(t, EnsureFileDir(filePath))
	assert.DirExists(t, filepath.Dir(filePath))
	assert.NoFileExists(t, filePath)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(filepath.Dir(filePath))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(DirModeDefault), info.Mode().Perm())
	}
}

func TestEnsureDir_PermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping permission test on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	readonlyDir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.Mkdir(readonlyDir, 0o555))

	err := EnsureDir(filepath.Join(readonlyDir, "shouldfail"))
	assert.Error(t, err)
	assert.False(t, os.IsExist(err), "Should not be an 'already exists' error")
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(file, []byte("<html/>"), FileModeDefault))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
