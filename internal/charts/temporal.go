package charts

import (
	"fmt"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"derivacli/internal/analytics"
	"derivacli/pkg/contracts/domain"
)

// IndividualsPerYear renders the annual evolution of observed individuals
// for the given species as a line chart.
func (r *Renderer) IndividualsPerYear(ds *domain.Dataset, species []string) (string, error) {
	totals := analytics.IndividualsPerYear(ds, species)

	var series []chart.Series
	for _, name := range sortedKeys(totals) {
		points := totals[name]
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.Year)
			ys[i] = float64(p.Total)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: r.color(name),
				StrokeWidth: 2,
				DotColor:    r.color(name),
				DotWidth:    4,
			},
		})
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no data for species %v", species)
	}

	graph := chart.Chart{
		Title:  "Evolución anual del número de individuos observados",
		Width:  1000,
		Height: 600,
		XAxis:  chart.XAxis{Name: "Año"},
		YAxis:  chart.YAxis{Name: "Número de individuos"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.savePNG("evolucion_registros_anuales.png", renderChart(&graph))
}

// IndividualsPerMonth renders the monthly seasonality of observed
// individuals for the given species as a line chart.
func (r *Renderer) IndividualsPerMonth(ds *domain.Dataset, species []string) (string, error) {
	totals := analytics.IndividualsPerMonth(ds, species)

	var series []chart.Series
	for _, name := range sortedKeys(totals) {
		points := totals[name]
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = float64(p.Month)
			ys[i] = float64(p.Total)
		}
		series = append(series, chart.ContinuousSeries{
			Name:    name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: r.color(name),
				StrokeWidth: 2,
				DotColor:    r.color(name),
				DotWidth:    4,
			},
		})
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no data for species %v", species)
	}

	graph := chart.Chart{
		Title:  "Distribución mensual del número de individuos observados",
		Width:  1000,
		Height: 600,
		XAxis:  chart.XAxis{Name: "Mes", Ticks: monthTicks()},
		YAxis:  chart.YAxis{Name: "Número de individuos"},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return r.savePNG("estacionalidad_individuos_mes.png", renderChart(&graph))
}

// RecordsPerYear renders the number of records per year as a bar chart.
func (r *Renderer) RecordsPerYear(ds *domain.Dataset) (string, error) {
	counts := analytics.RecordsPerYear(ds)
	if len(counts) == 0 {
		return "", fmt.Errorf("no records with a derived year")
	}

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{Label: fmt.Sprintf("%d", c.Year), Value: float64(c.Total)}
	}

	graph := chart.BarChart{
		Title:    "Número de registros por año",
		Width:    1200,
		Height:   500,
		BarWidth: 22,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}

	return r.savePNG("registros_por_anio.png", renderBarChart(&graph))
}

// RecordsPerMonth renders the number of records per calendar month as a bar
// chart; all twelve months appear.
func (r *Renderer) RecordsPerMonth(ds *domain.Dataset) (string, error) {
	counts := analytics.RecordsPerMonth(ds)

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{Label: fmt.Sprintf("%d", c.Month), Value: float64(c.Total)}
	}

	graph := chart.BarChart{
		Title:    "Número de registros por mes",
		Width:    1000,
		Height:   500,
		BarWidth: 40,
		Bars:     bars,
	}

	return r.savePNG("registros_por_mes.png", renderBarChart(&graph))
}

func monthTicks() []chart.Tick {
	ticks := make([]chart.Tick, 12)
	for m := 1; m <= 12; m++ {
		ticks[m-1] = chart.Tick{Value: float64(m), Label: fmt.Sprintf("%d", m)}
	}
	return ticks
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
