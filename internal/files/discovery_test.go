package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string, modTime time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
	return path
}

func TestFindOccurrenceFiles(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	touch(t, dir, "export_old.txt", base)
	touch(t, dir, "export_new.tsv", base.Add(time.Hour))
	touch(t, dir, "report.csv", base.Add(2*time.Hour))
	touch(t, dir, "workbook.xlsx", base)
	touch(t, dir, "~$export_old.txt", base)
	touch(t, dir, "notes.md", base)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.txt"), 0755))

	discovery := NewDiscovery(dir)
	found, err := discovery.FindOccurrenceFiles(".")
	require.NoError(t, err)

	require.Len(t, found, 3)
	// Oldest first.
	assert.Equal(t, "export_old.txt", found[0].Name)
	assert.Equal(t, "export_new.tsv", found[1].Name)
	assert.Equal(t, "report.csv", found[2].Name)
}

func TestFindExcelFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "workbook.xlsx", now)
	touch(t, dir, "legacy.XLS", now)
	touch(t, dir, "export.txt", now)

	discovery := NewDiscovery(dir)
	found, err := discovery.FindExcelFiles(".")
	require.NoError(t, err)

	require.Len(t, found, 2)
}

func TestFindByExtensionMissingDirectory(t *testing.T) {
	discovery := NewDiscovery(t.TempDir())
	_, err := discovery.FindOccurrenceFiles("absent")
	assert.Error(t, err)
}

func TestFindFilesByPattern(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	touch(t, dir, "ocurrencias_2024.csv", now)
	touch(t, dir, "ocurrencias_2025.csv", now)
	touch(t, dir, "resumen.csv", now)

	discovery := NewDiscovery(dir)
	found, err := discovery.FindFilesByPattern(".", "ocurrencias_*.csv")
	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestGetLatestFile(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	files := []FileInfo{
		{Name: "a.txt", ModTime: base},
		{Name: "c.txt", ModTime: base.Add(2 * time.Hour)},
		{Name: "b.txt", ModTime: base.Add(time.Hour)},
	}

	latest, ok := GetLatestFile(files)
	require.True(t, ok)
	assert.Equal(t, "c.txt", latest.Name)

	_, ok = GetLatestFile(nil)
	assert.False(t, ok)
}
