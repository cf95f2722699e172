package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"derivacli/pkg/contracts/domain"
)

func intPtr(v int) *int { return &v }
func int64Ptr(v int64) *int64 { return &v }
func floatPtr(v float64) *float64 { return &v }

func yearRow(year *int) domain.Occurrence {
	return domain.Occurrence{ScientificName: "Delphinus delphis", Year: year}
}

func TestFilterByYear(t *testing.T) {
	tests := []struct {
		name     string
		years    []*int
		anioMin  int
		anioMax  int
		expected []int
	}{
		{
			name:     "inclusive bounds",
			years:    []*int{intPtr(1999), intPtr(2000), intPtr(2012), intPtr(2024), intPtr(2025)},
			anioMin:  2000,
			anioMax:  2024,
			expected: []int{2000, 2012, 2024},
		},
		{
			name:     "missing year excluded",
			years:    []*int{nil, intPtr(2010), nil},
			anioMin:  2000,
			anioMax:  2024,
			expected: []int{2010},
		},
		{
			name:     "single year window",
			years:    []*int{intPtr(2009), intPtr(2010), intPtr(2011)},
			anioMin:  2010,
			anioMax:  2010,
			expected: []int{2010},
		},
		{
			name:     "empty dataset",
			years:    nil,
			anioMin:  2000,
			anioMax:  2024,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &domain.Dataset{Columns: []string{"scientificname", "year"}}
			for _, y := range tt.years {
				ds.Rows = append(ds.Rows, yearRow(y))
			}
			FilterByYear(ds, tt.anioMin, tt.anioMax)

			var got []int
			for _, row := range ds.Rows {
				got = append(got, *row.Year)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDropIrrelevantDeduplicates(t *testing.T) {
	row := domain.Occurrence{
		ScientificName:   "Stenella coeruleoalba",
		EventDate:        "2015-06-12",
		Year:             intPtr(2015),
		DecimalLatitude:  floatPtr(36.5),
		DecimalLongitude: floatPtr(-4.9),
		StateProvince:    "Málaga",
	}
	dup := row // full-field copy
	distinct := row
	distinct.EventDate = "2015-06-13"

	ds := &domain.Dataset{
		Columns: []string{"scientificname", "eventdate", "year", "decimallatitude", "decimallongitude", "stateprovince"},
		Rows:    []domain.Occurrence{row, dup, distinct},
	}
	DropIrrelevant(ds)

	assert.Equal(t, 2, ds.Len())
	assert.Equal(t, "2015-06-12", ds.Rows[0].EventDate)
	assert.Equal(t, "2015-06-13", ds.Rows[1].EventDate)
}

func TestDropIrrelevantRequiresBothCoordinates(t *testing.T) {
	columns := []string{"scientificname", "decimallatitude", "decimallongitude"}
	ds := &domain.Dataset{
		Columns: columns,
		Rows: []domain.Occurrence{
			{ScientificName: "a", DecimalLatitude: floatPtr(36.5), DecimalLongitude: floatPtr(-4.9)},
			{ScientificName: "b", DecimalLatitude: floatPtr(36.5)},
			{ScientificName: "c", DecimalLongitude: floatPtr(-4.9)},
			{ScientificName: "d"},
		},
	}
	DropIrrelevant(ds)

	assert.Equal(t, 1, ds.Len())
	assert.Equal(t, "a", ds.Rows[0].ScientificName)
}

func TestDropIrrelevantZeroCoordinatesAreValid(t *testing.T) {
	ds := &domain.Dataset{
		Columns: []string{"scientificname", "decimallatitude", "decimallongitude"},
		Rows: []domain.Occurrence{
			{ScientificName: "equator", DecimalLatitude: floatPtr(0), DecimalLongitude: floatPtr(0)},
		},
	}
	DropIrrelevant(ds)
	assert.Equal(t, 1, ds.Len())
}

func TestDropIrrelevantComparesExtraColumns(t *testing.T) {
	columns := []string{"scientificname", "decimallatitude", "decimallongitude", "basisofrecord"}
	base := domain.Occurrence{
		ScientificName:   "Delphinus delphis",
		DecimalLatitude:  floatPtr(43.1),
		DecimalLongitude: floatPtr(-8.4),
	}
	observed := base
	observed.Extra = map[string]string{"basisofrecord": "HUMAN_OBSERVATION"}
	stranded := base
	stranded.Extra = map[string]string{"basisofrecord": "PRESERVED_SPECIMEN"}

	ds := &domain.Dataset{Columns: columns, Rows: []domain.Occurrence{observed, stranded}}
	DropIrrelevant(ds)

	// Rows differing only in a non-promoted column are not duplicates.
	assert.Equal(t, 2, ds.Len())
}
