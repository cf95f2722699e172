package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"derivacli/internal/analytics"
	"derivacli/pkg/contracts/domain"
)

// SpeciesMap renders an interactive HTML map of record locations, one
// toggleable series per species, centered on the mean coordinate of all
// points.
func (r *Renderer) SpeciesMap(ds *domain.Dataset, species []string) (string, error) {
	var all []analytics.Point
	perSpecies := make(map[string][]analytics.Point, len(species))
	var colors []string
	for _, name := range species {
		points := analytics.SpeciesPoints(ds, name, 0, 0)
		if len(points) == 0 {
			continue
		}
		perSpecies[name] = points
		all = append(all, points...)
		colors = append(colors, r.hexColor(name))
	}
	if len(all) == 0 {
		return "", fmt.Errorf("no georeferenced records for species %v", species)
	}

	centerLon, centerLat := analytics.Center(all)

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Distribución de especies",
			Width:     "1000px",
			Height:    "700px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Distribución geográfica de registros por especie",
			Subtitle: fmt.Sprintf("Centro: %.3f, %.3f", centerLat, centerLon),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitud", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitud", Type: "value"}),
		charts.WithColorsOpts(opts.Colors(colors)),
	)

	for _, name := range species {
		points := perSpecies[name]
		if len(points) == 0 {
			continue
		}
		data := make([]opts.ScatterData, len(points))
		for i, p := range points {
			data[i] = opts.ScatterData{
				Value:      []interface{}{p.Lon, p.Lat},
				SymbolSize: 6,
			}
		}
		scatter.AddSeries(name, data)
	}

	if err := os.MkdirAll(r.figuresDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create figures directory: %w", err)
	}
	path := filepath.Join(r.figuresDir, "mapa_especies.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create map file: %w", err)
	}
	defer f.Close()

	if err := scatter.Render(f); err != nil {
		return "", fmt.Errorf("failed to render species map: %w", err)
	}
	r.logger.Info("Interactive map rendered", slog.String("path", path))
	return path, nil
}
