package cleaning

import (
	"derivacli/pkg/contracts/domain"
)

// Default inclusive year bounds for the study window.
const (
	DefaultAnioMin = 2000
	DefaultAnioMax = 2024
)

// FilterByYear retains only rows whose raw year field lies in
// [anioMin, anioMax]. Rows with a missing year are excluded. The filter reads
// the source year column, not the derived anio field, so it can run before
// temporal extraction.
func FilterByYear(ds *domain.Dataset, anioMin, anioMax int) {
	kept := ds.Rows[:0]
	for _, row := range ds.Rows {
		if row.Year == nil {
			continue
		}
		if *row.Year >= anioMin && *row.Year <= anioMax {
			kept = append(kept, row)
		}
	}
	ds.Rows = kept
}

// DropIrrelevant removes exact full-row duplicates, then removes rows missing
// either coordinate. Duplicate comparison covers every column of the record.
func DropIrrelevant(ds *domain.Dataset) {
	seen := make(map[string]struct{}, len(ds.Rows))
	kept := ds.Rows[:0]
	for _, row := range ds.Rows {
		key := row.Key(ds.Columns)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !row.HasCoordinates() {
			continue
		}
		kept = append(kept, row)
	}
	ds.Rows = kept
}
