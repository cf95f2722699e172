package exporter

import (
	"derivacli/pkg/contracts/domain"
)

// contractColumns is the column order guaranteed to downstream chart
// consumers; extra source columns follow in schema order.
var contractColumns = []string{
	"scientificname",
	"nombre_cientifico",
	"eventdate",
	"year",
	"month",
	"anio",
	"mes",
	"decimallatitude",
	"decimallongitude",
	"stateprovince",
	"comunidad_autonoma",
	"individualcount",
}

// DatasetHeaders returns the export header order for a dataset: the contract
// columns the dataset actually carries, then any remaining source columns.
func DatasetHeaders(ds *domain.Dataset) []string {
	var headers []string
	seen := make(map[string]struct{})
	for _, col := range contractColumns {
		if ds.HasColumn(col) {
			headers = append(headers, col)
			seen[col] = struct{}{}
		}
	}
	for _, col := range ds.Columns {
		if _, ok := seen[col]; !ok {
			headers = append(headers, col)
			seen[col] = struct{}{}
		}
	}
	return headers
}

// recordValues renders a record's values in header order.
func recordValues(o *domain.Occurrence, headers []string) []string {
	values := make([]string, len(headers))
	for i, col := range headers {
		values[i] = o.Value(col)
	}
	return values
}
