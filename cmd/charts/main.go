package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"derivacli/internal/charts"
	"derivacli/internal/cleaning"
	"derivacli/internal/config"
	"derivacli/internal/files"
	"derivacli/internal/infrastructure"
	"derivacli/internal/validation"
	"derivacli/pkg/contracts/domain"
)

// periodStep is the width of the year ranges used for the per-period
// distribution figures.
const periodStep = 6

func main() {
	inPath := flag.String("in", "", "occurrence export to chart (defaults to the newest export in the data directory)")
	decadeSplit := flag.Int("decade-split", 0, "year separating the two comparison periods (defaults to the configured value)")
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
	logger.Info("Starting figure rendering run", slog.String("run_id", runID))

	split := *decadeSplit
	if split == 0 {
		split = cfg.Charts.DecadeSplit
	}

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
	if err := validator.ValidateOutputDirectory(cfg.Paths.FiguresDir); err != nil {
		logger.Error("Output validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ds, err := loadExport(path)
	if err != nil {
		logger.Error("Failed to load dataset", slog.String("path", path), slog.String("error", err.Error()))
		os.Exit(1)
	}

	opts := cleaning.Options{
		AnioMin:       cfg.Cleaning.AnioMin,
		AnioMax:       cfg.Cleaning.AnioMax,
		StrictRegions: cfg.Cleaning.StrictRegions,
		Logger:        logger,
	}
	if err := cleaning.Clean(ds, opts); err != nil {
		logger.Error("Cleaning failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer := charts.NewRenderer(cfg.Paths.FiguresDir, cfg.Charts.Palette, logger)
	species := cfg.Charts.Species
	periods := buildPeriods(cfg.Cleaning.AnioMin, cfg.Cleaning.AnioMax, periodStep)

	// Figures are independent of each other; render them concurrently.
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := renderer.IndividualsPerYear(ds, species)
		return err
	})
	g.Go(func() error {
		_, err := renderer.IndividualsPerMonth(ds, species)
		return err
	})
	g.Go(func() error {
		_, err := renderer.RecordsPerYear(ds)
		return err
	})
	g.Go(func() error {
		_, err := renderer.RecordsPerMonth(ds)
		return err
	})
	g.Go(func() error {
		_, err := renderer.TopSpecies(ds, cfg.Charts.TopN)
		return err
	})
	g.Go(func() error {
		_, err := renderer.TopRegions(ds, cfg.Charts.TopN)
		return err
	})
	g.Go(func() error {
		_, err := renderer.IndividualCountHistogram(ds, cfg.Charts.HistogramBins)
		return err
	})
	g.Go(func() error {
		_, err := renderer.SpeciesDistribution(ds, species)
		return err
	})
	g.Go(func() error {
		_, err := renderer.CompareSpeciesByPeriods(ds, species, periods)
		return err
	})
	g.Go(func() error {
		_, err := renderer.SpeciesMap(ds, species)
		return err
	})
	for _, name := range species {
		name := name
		g.Go(func() error {
			_, err := renderer.DistributionByDecade(ds, name, cfg.Cleaning.AnioMin, cfg.Cleaning.AnioMax, split)
			return err
		})
		g.Go(func() error {
			_, err := renderer.DistributionByPeriods(ds, name, periods)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		logger.Error("Figure rendering failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Figure rendering complete",
		slog.String("figures_dir", cfg.Paths.FiguresDir),
		slog.Int("rows", ds.Len()))
}

// buildPeriods splits [min, max] into consecutive step-year ranges.
func buildPeriods(min, max, step int) [][2]int {
	var periods [][2]int
	for start := min; start <= max; start += step {
		end := start + step - 1
		if end > max {
			end = max
		}
		periods = append(periods, [2]int{start, end})
	}
	return periods
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
