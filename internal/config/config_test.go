package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointAwayFromConfigFile keeps tests independent of any config.yaml in the
// working directory.
func pointAwayFromConfigFile(t *testing.T) {
	t.Helper()
	t.Setenv("DERIVA_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
}

func TestLoadDefaults(t *testing.T) {
	pointAwayFromConfigFile(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)

	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, "data/reports", cfg.Paths.ReportsDir)
	assert.Equal(t, "outputs/figuras", cfg.Paths.FiguresDir)

	assert.Equal(t, 2000, cfg.Cleaning.AnioMin)
	assert.Equal(t, 2024, cfg.Cleaning.AnioMax)
	assert.False(t, cfg.Cleaning.StrictRegions)

	assert.Equal(t, 10, cfg.Charts.TopN)
	assert.Equal(t, 30, cfg.Charts.HistogramBins)
	assert.Equal(t, 2010, cfg.Charts.DecadeSplit)
	assert.Equal(t, []string{"Stenella coeruleoalba", "Delphinus delphis"}, cfg.Charts.Species)
	assert.Equal(t, "#2A9D8F", cfg.Charts.Palette["Stenella coeruleoalba"])
	assert.Equal(t, "#B55656", cfg.Charts.Palette["Delphinus delphis"])
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	pointAwayFromConfigFile(t)
	t.Setenv("DERIVA_CLEANING_ANIO_MIN", "1990")
	t.Setenv("DERIVA_CLEANING_ANIO_MAX", "2020")
	t.Setenv("DERIVA_CLEANING_STRICT_REGIONS", "true")
	t.Setenv("DERIVA_PATHS_FIGURES_DIR", "custom/figs")
	t.Setenv("DERIVA_CHARTS_SPECIES", "Tursiops truncatus")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1990, cfg.Cleaning.AnioMin)
	assert.Equal(t, 2020, cfg.Cleaning.AnioMax)
	assert.True(t, cfg.Cleaning.StrictRegions)
	assert.Equal(t, "custom/figs", cfg.Paths.FiguresDir)
	assert.Equal(t, []string{"Tursiops truncatus"}, cfg.Charts.Species)
}

func TestLoadValidation(t *testing.T) {
	t.Run("inverted year window", func(t *testing.T) {
		pointAwayFromConfigFile(t)
		t.Setenv("DERIVA_CLEANING_ANIO_MAX", "1990")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("bad log level", func(t *testing.T) {
		pointAwayFromConfigFile(t)
		t.Setenv("DERIVA_LOGGING_LEVEL", "loud")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})
}

func TestLoadMalformedConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [not a mapping"), 0644))
	t.Setenv("DERIVA_CONFIG", path)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config from file")
}

func TestLoadEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("paths:\n  data_dir: from_file\n"), 0644))
	t.Setenv("DERIVA_CONFIG", path)
	t.Setenv("DERIVA_PATHS_DATA_DIR", "from_env")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.Paths.DataDir)
}

func TestPathHelpers(t *testing.T) {
	p := PathsConfig{
		DataDir:    "data",
		ReportsDir: "data/reports",
		FiguresDir: "outputs/figuras",
		LogsDir:    "logs",
	}
	assert.Equal(t, filepath.Join("logs", "run.log"), p.LogPath("run.log"))
	assert.Equal(t, filepath.Join("data/reports", "out.csv"), p.ReportPath("out.csv"))
	assert.Equal(t, filepath.Join("outputs/figuras", "fig.png"), p.FigurePath("fig.png"))
}

func TestEnsureDirectories(t *testing.T) {
	base := t.TempDir()
	p := PathsConfig{
		DataDir:    filepath.Join(base, "data"),
		ReportsDir: filepath.Join(base, "data", "reports"),
		FiguresDir: filepath.Join(base, "outputs", "figuras"),
		LogsDir:    filepath.Join(base, "logs"),
	}
	require.NoError(t, p.EnsureDirectories())

	for _, dir := range []string{p.DataDir, p.ReportsDir, p.FiguresDir, p.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
