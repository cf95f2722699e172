package cleaning

import (
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"derivacli/pkg/contracts/domain"
)

var validate = validator.New()

// Options configures a cleaning run.
type Options struct {
	AnioMin       int
	AnioMax       int
	StrictRegions bool
	Logger        *slog.Logger
}

// Clean runs the full pipeline over the dataset in sequence: column
// normalization, year filter, dedup and coordinate completeness, temporal
// extraction, species simplification, and region mapping. The dataset is
// mutated in place; each stage owns it exclusively while it runs.
func Clean(ds *domain.Dataset, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.AnioMin == 0 && opts.AnioMax == 0 {
		opts.AnioMin, opts.AnioMax = DefaultAnioMin, DefaultAnioMax
	}

	NormalizeColumns(ds)

	before := ds.Len()
	FilterByYear(ds, opts.AnioMin, opts.AnioMax)
	logger.Info("Filtered rows by year",
		slog.Int("anio_min", opts.AnioMin),
		slog.Int("anio_max", opts.AnioMax),
		slog.Int("rows_in", before),
		slog.Int("rows_out", ds.Len()))

	before = ds.Len()
	DropIrrelevant(ds)
	logger.Info("Dropped duplicates and rows without coordinates",
		slog.Int("rows_in", before),
		slog.Int("rows_out", ds.Len()))

	ExtractAnioMes(ds)
	SimplifyNames(ds)

	if opts.StrictRegions {
		if err := MapRegionsStrict(ds); err != nil {
			return err
		}
		if err := validateRows(ds); err != nil {
			return err
		}
	} else {
		MapRegions(ds)
	}
	logger.Info("Cleaning complete", slog.Int("rows", ds.Len()))
	return nil
}

// validateRows checks every cleaned record against its struct tags
// (coordinate ranges, month bounds). Only run in strict mode; the default
// pipeline tolerates out-of-range values the way the source data does.
func validateRows(ds *domain.Dataset) error {
	for i := range ds.Rows {
		if err := validate.Struct(&ds.Rows[i]); err != nil {
			return fmt.Errorf("record %d failed validation: %w", i, err)
		}
	}
	return nil
}
