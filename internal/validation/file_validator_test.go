package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInputFile(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "export.txt")
		require.NoError(t, os.WriteFile(path, []byte("scientificName\tyear\n"), 0644))
		assert.NoError(t, v.ValidateInputFile(path))
	})

	t.Run("missing file", func(t *testing.T) {
		err := v.ValidateInputFile(filepath.Join(dir, "absent.txt"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("directory", func(t *testing.T) {
		err := v.ValidateInputFile(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0644))
		err := v.ValidateInputFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is empty")
	})
}

func TestValidateInputDirectory(t *testing.T) {
	v := NewFileValidator(nil)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.txt"), []byte("x"), 0644))

	t.Run("exists with matches", func(t *testing.T) {
		assert.NoError(t, v.ValidateInputDirectory(dir, "*.txt"))
	})

	t.Run("no matches is not an error", func(t *testing.T) {
		assert.NoError(t, v.ValidateInputDirectory(dir, "*.xlsx"))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := v.ValidateInputDirectory(filepath.Join(dir, "absent"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("file instead of directory", func(t *testing.T) {
		err := v.ValidateInputDirectory(filepath.Join(dir, "export.txt"), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a directory")
	})
}

func TestValidateOutputDirectory(t *testing.T) {
	v := NewFileValidator(nil)

	t.Run("creates missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "outputs", "figuras")
		require.NoError(t, v.ValidateOutputDirectory(dir))

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("removes the write probe", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, v.ValidateOutputDirectory(dir))
		_, err := os.Stat(filepath.Join(dir, ".write_test"))
		assert.True(t, os.IsNotExist(err))
	})
}
