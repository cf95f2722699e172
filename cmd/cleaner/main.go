package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"derivacli/internal/cleaning"
	"derivacli/internal/config"
	"derivacli/internal/exporter"
	"derivacli/internal/files"
	"derivacli/internal/infrastructure"
	"derivacli/internal/validation"
	"derivacli/pkg/contracts/domain"
)

func main() {
	inPath := flag.String("in", "", "occurrence export to clean (defaults to the newest export in the data directory)")
	outName := flag.String("out", "ocurrencias_limpias.csv", "output CSV file name (written to the reports directory)")
	anioMin := flag.Int("anio-min", 0, "minimum year, inclusive (defaults to the configured value)")
	anioMax := flag.Int("anio-max", 0, "maximum year, inclusive (defaults to the configured value)")
	strict := flag.Bool("strict-regions", false, "fail on province values missing from the region table")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, runID := infrastructure.NewRunContext(context.Background())
	logger = infrastructure.LoggerFromContext(ctx)
	logger.Info("Starting occurrence cleaning run",
		slog.String("run_id", runID),
		slog.String("data_dir", cfg.Paths.DataDir))

	if *anioMin == 0 {
		*anioMin = cfg.Cleaning.AnioMin
	}
	if *anioMax == 0 {
		*anioMax = cfg.Cleaning.AnioMax
	}
	strictRegions := *strict || cfg.Cleaning.StrictRegions

	path := *inPath
	if path == "" {
		path, err = newestExport(cfg.Paths.DataDir)
		if err != nil {
			logger.Error("No occurrence export found", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateInputFile(path); err != nil {
		logger.Error("Input validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := validator.ValidateOutputDirectory(cfg.Paths.ReportsDir); err != nil {
		logger.Error("Output validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ds, err := loadExport(path)
	if err != nil {
		logger.Error("Failed to load dataset", slog.String("path", path), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Dataset loaded",
		slog.String("path", path),
		slog.Int("rows", ds.Len()),
		slog.Int("columns", len(ds.Columns)))

	opts := cleaning.Options{
		AnioMin:       *anioMin,
		AnioMax:       *anioMax,
		StrictRegions: strictRegions,
		Logger:        logger,
	}
	if err := cleaning.Clean(ds, opts); err != nil {
		logger.Error("Cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	writer := exporter.NewCSVWriter(cfg.Paths.ReportsDir)
	if err := writer.WriteDataset(*outName, ds); err != nil {
		logger.Error("Failed to write cleaned dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Cleaning run complete",
		slog.Int("rows", ds.Len()),
		slog.String("output", cfg.Paths.ReportPath(*outName)))
}

// newestExport picks the most recent occurrence export in the data
// directory, preferring tab-separated files over Excel workbooks.
func newestExport(dataDir string) (string, error) {
	discovery := files.NewDiscovery(dataDir)

	found, err := discovery.FindOccurrenceFiles(".")
	if err == nil {
		if latest, ok := files.GetLatestFile(found); ok {
			return latest.Path, nil
		}
	}

	excel, err := discovery.FindExcelFiles(".")
	if err != nil {
		return "", err
	}
	if latest, ok := files.GetLatestFile(excel); ok {
		return latest.Path, nil
	}
	return "", os.ErrNotExist
}

// loadExport dispatches on file extension.
func loadExport(path string) (*domain.Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return cleaning.LoadExcel(path)
	default:
		return cleaning.LoadTSV(path)
	}
}
