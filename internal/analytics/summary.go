package analytics

import (
	"sort"

	"derivacli/pkg/contracts/domain"
)

// YearTotal is an aggregated value for one year.
type YearTotal struct {
	Year  int
	Total int64
}

// MonthTotal is an aggregated value for one calendar month.
type MonthTotal struct {
	Month int
	Total int64
}

// Category is a label with its record count.
type Category struct {
	Label string
	Count int64
}

// Point is one georeferenced record position.
type Point struct {
	Lon float64
	Lat float64
}

// HistogramBin is one bin of the individual-count histogram. Hi is
// exclusive except for the last bin.
type HistogramBin struct {
	Lo    float64
	Hi    float64
	Count int64
}

// IndividualsPerYear sums observed individuals per year for each species in
// the list, keyed by simplified name. Rows without a derived year or an
// individual count contribute nothing.
func IndividualsPerYear(ds *domain.Dataset, species []string) map[string][]YearTotal {
	wanted := toSet(species)
	totals := make(map[string]map[int]int64)
	for i := range ds.Rows {
		row := &ds.Rows[i]
		if _, ok := wanted[row.SimplifiedName]; !ok {
			continue
		}
		if row.Anio == nil || row.IndividualCount == nil {
			continue
		}
		if totals[row.SimplifiedName] == nil {
			totals[row.SimplifiedName] = make(map[int]int64)
		}
		totals[row.SimplifiedName][*row.Anio] += *row.IndividualCount
	}

	result := make(map[string][]YearTotal, len(totals))
	for name, byYear := range totals {
		series := make([]YearTotal, 0, len(byYear))
		for year, total := range byYear {
			series = append(series, YearTotal{Year: year, Total: total})
		}
		sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
		result[name] = series
	}
	return result
}

// IndividualsPerMonth sums observed individuals per calendar month for each
// species in the list. Every month 1-12 is present in the output.
func IndividualsPerMonth(ds *domain.Dataset, species []string) map[string][]MonthTotal {
	wanted := toSet(species)
	totals := make(map[string]map[int]int64)
	for i := range ds.Rows {
		row := &ds.Rows[i]
		if _, ok := wanted[row.SimplifiedName]; !ok {
			continue
		}
		if row.Mes == nil || row.IndividualCount == nil {
			continue
		}
		if totals[row.SimplifiedName] == nil {
			totals[row.SimplifiedName] = make(map[int]int64)
		}
		totals[row.SimplifiedName][*row.Mes] += *row.IndividualCount
	}

	result := make(map[string][]MonthTotal, len(totals))
	for name, byMonth := range totals {
		series := make([]MonthTotal, 0, 12)
		for m := 1; m <= 12; m++ {
			series = append(series, MonthTotal{Month: m, Total: byMonth[m]})
		}
		result[name] = series
	}
	return result
}

// RecordsPerYear counts records per derived year, sorted ascending.
func RecordsPerYear(ds *domain.Dataset) []YearTotal {
	byYear := make(map[int]int64)
	for i := range ds.Rows {
		if ds.Rows[i].Anio != nil {
			byYear[*ds.Rows[i].Anio]++
		}
	}
	series := make([]YearTotal, 0, len(byYear))
	for year, count := range byYear {
		series = append(series, YearTotal{Year: year, Total: count})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Year < series[j].Year })
	return series
}

// RecordsPerMonth counts records per derived month; all twelve months are
// present in order.
func RecordsPerMonth(ds *domain.Dataset) []MonthTotal {
	byMonth := make(map[int]int64)
	for i := range ds.Rows {
		if ds.Rows[i].Mes != nil {
			byMonth[*ds.Rows[i].Mes]++
		}
	}
	series := make([]MonthTotal, 0, 12)
	for m := 1; m <= 12; m++ {
		series = append(series, MonthTotal{Month: m, Total: byMonth[m]})
	}
	return series
}

// TopCategories returns the n most frequent values of a column, most
// frequent first. Ties break alphabetically so output is deterministic.
func TopCategories(ds *domain.Dataset, column string, n int) []Category {
	counts := make(map[string]int64)
	for i := range ds.Rows {
		value := ds.Rows[i].Value(column)
		if value == "" {
			continue
		}
		counts[value]++
	}

	categories := make([]Category, 0, len(counts))
	for label, count := range counts {
		categories = append(categories, Category{Label: label, Count: count})
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Count != categories[j].Count {
			return categories[i].Count > categories[j].Count
		}
		return categories[i].Label < categories[j].Label
	})

	if n > 0 && len(categories) > n {
		categories = categories[:n]
	}
	return categories
}

// HistogramIndividualCount bins the individual-count field into the given
// number of equal-width bins.
func HistogramIndividualCount(ds *domain.Dataset, bins int) []HistogramBin {
	if bins <= 0 {
		return nil
	}

	var values []float64
	for i := range ds.Rows {
		if ds.Rows[i].IndividualCount != nil {
			values = append(values, float64(*ds.Rows[i].IndividualCount))
		}
	}
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(bins)
	if width == 0 {
		return []HistogramBin{{Lo: min, Hi: max, Count: int64(len(values))}}
	}

	result := make([]HistogramBin, bins)
	for i := range result {
		result[i].Lo = min + float64(i)*width
		result[i].Hi = min + float64(i+1)*width
	}
	for _, v := range values {
		idx := int((v - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}
	return result
}

// SpeciesPoints returns the coordinates of every georeferenced record of a
// species, optionally restricted to an inclusive year range. Zero bounds
// disable the range check.
func SpeciesPoints(ds *domain.Dataset, species string, startYear, endYear int) []Point {
	var points []Point
	for i := range ds.Rows {
		row := &ds.Rows[i]
		if row.SimplifiedName != species || !row.HasCoordinates() {
			continue
		}
		if startYear != 0 || endYear != 0 {
			if row.Anio == nil || *row.Anio < startYear || *row.Anio > endYear {
				continue
			}
		}
		points = append(points, Point{Lon: *row.DecimalLongitude, Lat: *row.DecimalLatitude})
	}
	return points
}

// SplitByDecade partitions a species' georeferenced records into the years
// before the split year and the split year onward.
func SplitByDecade(ds *domain.Dataset, species string, split int) (early, recent []Point) {
	for i := range ds.Rows {
		row := &ds.Rows[i]
		if row.SimplifiedName != species || !row.HasCoordinates() || row.Anio == nil {
			continue
		}
		p := Point{Lon: *row.DecimalLongitude, Lat: *row.DecimalLatitude}
		if *row.Anio < split {
			early = append(early, p)
		} else {
			recent = append(recent, p)
		}
	}
	return early, recent
}

// Center returns the mean coordinate of a point set, used to center the
// interactive map.
func Center(points []Point) (lon, lat float64) {
	if len(points) == 0 {
		return 0, 0
	}
	for _, p := range points {
		lon += p.Lon
		lat += p.Lat
	}
	n := float64(len(points))
	return lon / n, lat / n
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
