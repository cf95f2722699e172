package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"derivacli/internal/analytics"
	"derivacli/pkg/contracts/domain"
)

// SpeciesDistribution renders a geographic scatter of every record of the
// given species, one colored series per species.
func (r *Renderer) SpeciesDistribution(ds *domain.Dataset, species []string) (string, error) {
	var series []chart.Series
	for _, name := range species {
		points := analytics.SpeciesPoints(ds, name, 0, 0)
		if len(points) == 0 {
			continue
		}
		series = append(series, r.scatterSeries(name, points))
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no georeferenced records for species %v", species)
	}

	graph := chart.Chart{
		Title:  "Distribución geográfica de registros por especie",
		Width:  1000,
		Height: 800,
		XAxis:  chart.XAxis{Name: "Longitud"},
		YAxis:  chart.YAxis{Name: "Latitud"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.savePNG("distribucion_registros_sp.png", renderChart(&graph))
}

// DistributionByDecade renders a species' geographic distribution before and
// from the split year, one figure per period.
func (r *Renderer) DistributionByDecade(ds *domain.Dataset, species string, anioMin, anioMax, split int) ([]string, error) {
	early, recent := analytics.SplitByDecade(ds, species, split)

	var paths []string
	periods := []struct {
		points []analytics.Point
		start  int
		end    int
	}{
		{early, anioMin, split - 1},
		{recent, split, anioMax},
	}
	for _, p := range periods {
		if len(p.points) == 0 {
			continue
		}
		graph := chart.Chart{
			Title:  fmt.Sprintf("Distribución de %s (%d–%d)", species, p.start, p.end),
			Width:  900,
			Height: 600,
			XAxis:  chart.XAxis{Name: "Longitud"},
			YAxis:  chart.YAxis{Name: "Latitud"},
			Series: []chart.Series{r.scatterSeries(species, p.points)},
		}
		name := fmt.Sprintf("cambio_distribucion_%s_%d_%d.png", Slug(species), p.start, p.end)
		path, err := r.savePNG(name, renderChart(&graph))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no georeferenced records for %s", species)
	}
	return paths, nil
}

// DistributionByPeriods renders a species' geographic distribution for each
// caller-defined year range, one figure per period.
func (r *Renderer) DistributionByPeriods(ds *domain.Dataset, species string, periods [][2]int) ([]string, error) {
	var paths []string
	for _, period := range periods {
		points := analytics.SpeciesPoints(ds, species, period[0], period[1])
		if len(points) == 0 {
			continue
		}
		graph := chart.Chart{
			Title:  fmt.Sprintf("Distribución de %s (%d–%d)", species, period[0], period[1]),
			Width:  900,
			Height: 600,
			XAxis:  chart.XAxis{Name: "Longitud"},
			YAxis:  chart.YAxis{Name: "Latitud"},
			Series: []chart.Series{r.scatterSeries(species, points)},
		}
		name := fmt.Sprintf("cambio_detallado_distribucion_%s_%d_%d.png", Slug(species), period[0], period[1])
		path, err := r.savePNG(name, renderChart(&graph))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no georeferenced records for %s in the given periods", species)
	}
	return paths, nil
}

// CompareSpeciesByPeriods renders, for each year range, one scatter with a
// series per species so their distributions can be compared.
func (r *Renderer) CompareSpeciesByPeriods(ds *domain.Dataset, species []string, periods [][2]int) ([]string, error) {
	var paths []string
	for _, period := range periods {
		var series []chart.Series
		for _, name := range species {
			points := analytics.SpeciesPoints(ds, name, period[0], period[1])
			if len(points) == 0 {
				continue
			}
			series = append(series, r.scatterSeries(name, points))
		}
		if len(series) == 0 {
			continue
		}
		graph := chart.Chart{
			Title:  fmt.Sprintf("Comparativa de distribución geográfica (%d–%d)", period[0], period[1]),
			Width:  1200,
			Height: 600,
			XAxis:  chart.XAxis{Name: "Longitud"},
			YAxis:  chart.YAxis{Name: "Latitud"},
			Series: series,
		}
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}

		name := fmt.Sprintf("comparativa_distribucion_%d_%d.png", period[0], period[1])
		path, err := r.savePNG(name, renderChart(&graph))
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no georeferenced records in the given periods")
	}
	return paths, nil
}

// scatterSeries builds a dots-only series from a point set.
func (r *Renderer) scatterSeries(name string, points []analytics.Point) chart.Series {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Lon
		ys[i] = p.Lat
	}
	return chart.ContinuousSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style: chart.Style{
			StrokeWidth: chart.Disabled,
			DotColor:    r.color(name),
			DotWidth:    4,
		},
	}
}
