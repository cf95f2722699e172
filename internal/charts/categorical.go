package charts

import (
	"fmt"

	"github.com/wcharczuk/go-chart/v2"

	"derivacli/internal/analytics"
	"derivacli/pkg/contracts/domain"
)

// TopSpecies renders the most frequently recorded species as a bar chart.
func (r *Renderer) TopSpecies(ds *domain.Dataset, topN int) (string, error) {
	return r.topCategories(ds, "scientificname", topN,
		fmt.Sprintf("Top %d especies más registradas", topN),
		"top_especies.png")
}

// TopRegions renders the regions with the most records as a bar chart.
func (r *Renderer) TopRegions(ds *domain.Dataset, topN int) (string, error) {
	return r.topCategories(ds, "comunidad_autonoma", topN,
		fmt.Sprintf("Top %d regiones con más registros", topN),
		"top_regiones.png")
}

// topCategories renders the topN most frequent values of a column.
func (r *Renderer) topCategories(ds *domain.Dataset, column string, topN int, title, fileName string) (string, error) {
	categories := analytics.TopCategories(ds, column, topN)
	if len(categories) == 0 {
		return "", fmt.Errorf("no values in column %s", column)
	}

	bars := make([]chart.Value, len(categories))
	for i, c := range categories {
		bars[i] = chart.Value{Label: c.Label, Value: float64(c.Count)}
	}

	graph := chart.BarChart{
		Title:    title,
		Width:    1200,
		Height:   600,
		BarWidth: 60,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}

	return r.savePNG(fileName, renderBarChart(&graph))
}

// IndividualCountHistogram renders the distribution of individuals per
// record as a histogram.
func (r *Renderer) IndividualCountHistogram(ds *domain.Dataset, bins int) (string, error) {
	histogram := analytics.HistogramIndividualCount(ds, bins)
	if len(histogram) == 0 {
		return "", fmt.Errorf("no individual counts to bin")
	}

	bars := make([]chart.Value, len(histogram))
	for i, bin := range histogram {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%.0f-%.0f", bin.Lo, bin.Hi),
			Value: float64(bin.Count),
		}
	}

	graph := chart.BarChart{
		Title:    "Distribución del número de individuos por registro",
		Width:    1200,
		Height:   500,
		BarWidth: 26,
		XAxis:    chart.Style{TextRotationDegrees: 45},
		Bars:     bars,
	}

	return r.savePNG("distribucion_individualcount.png", renderBarChart(&graph))
}
