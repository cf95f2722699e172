package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }
func int64Ptr(v int64) *int64 { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestOccurrenceHasCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		row      Occurrence
		expected bool
	}{
		{"both present", Occurrence{DecimalLatitude: floatPtr(36.5), DecimalLongitude: floatPtr(-4.9)}, true},
		{"zero is a coordinate", Occurrence{DecimalLatitude: floatPtr(0), DecimalLongitude: floatPtr(0)}, true},
		{"missing longitude", Occurrence{DecimalLatitude: floatPtr(36.5)}, false},
		{"missing latitude", Occurrence{DecimalLongitude: floatPtr(-4.9)}, false},
		{"missing both", Occurrence{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.row.HasCoordinates())
		})
	}
}

func TestOccurrenceIndividuals(t *testing.T) {
	present := Occurrence{IndividualCount: int64Ptr(12)}
	absent := Occurrence{}
	assert.Equal(t, int64(12), present.Individuals())
	assert.Equal(t, int64(0), absent.Individuals())
}

func TestOccurrenceValue(t *testing.T) {
	row := Occurrence{
		ScientificName:    "Stenella coeruleoalba (Meyen, 1833)",
		SimplifiedName:    "Stenella coeruleoalba",
		EventDate:         "2015-06-12",
		Year:              intPtr(2015),
		Month:             intPtr(6),
		Anio:              intPtr(2015),
		Mes:               intPtr(6),
		DecimalLatitude:   floatPtr(36.5),
		DecimalLongitude:  floatPtr(-4.9),
		StateProvince:     "Málaga",
		ComunidadAutonoma: "andalucía",
		IndividualCount:   int64Ptr(3),
		Extra:             map[string]string{"basisofrecord": "HUMAN_OBSERVATION"},
	}

	tests := []struct {
		column   string
		expected string
	}{
		{"scientificname", "Stenella coeruleoalba (Meyen, 1833)"},
		{"nombre_cientifico", "Stenella coeruleoalba"},
		{"eventdate", "2015-06-12"},
		{"year", "2015"},
		{"mes", "6"},
		{"decimallatitude", "36.5"},
		{"decimallongitude", "-4.9"},
		{"stateprovince", "Málaga"},
		{"comunidad_autonoma", "andalucía"},
		{"individualcount", "3"},
		{"basisofrecord", "HUMAN_OBSERVATION"},
		{"nonexistent", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, row.Value(tt.column), "column %s", tt.column)
	}
}

func TestOccurrenceValueAbsentFields(t *testing.T) {
	var row Occurrence
	for _, col := range []string{"year", "month", "anio", "mes", "decimallatitude", "decimallongitude", "individualcount"} {
		assert.Equal(t, "", row.Value(col), "column %s", col)
	}
}

func TestOccurrenceKey(t *testing.T) {
	columns := []string{"scientificname", "year", "decimallatitude"}
	a := Occurrence{ScientificName: "Orcinus orca", Year: intPtr(2012), DecimalLatitude: floatPtr(28.1)}
	b := Occurrence{ScientificName: "Orcinus orca", Year: intPtr(2012), DecimalLatitude: floatPtr(28.1)}
	c := Occurrence{ScientificName: "Orcinus orca", Year: intPtr(2013), DecimalLatitude: floatPtr(28.1)}

	assert.Equal(t, a.Key(columns), b.Key(columns))
	assert.NotEqual(t, a.Key(columns), c.Key(columns))
}

func TestOccurrenceKeyFieldBoundaries(t *testing.T) {
	columns := []string{"scientificname", "stateprovince"}
	a := Occurrence{ScientificName: "ab", StateProvince: "c"}
	b := Occurrence{ScientificName: "a", StateProvince: "bc"}
	assert.NotEqual(t, a.Key(columns), b.Key(columns))
}

func TestDatasetColumns(t *testing.T) {
	ds := &Dataset{Columns: []string{"scientificname", "year"}}

	assert.True(t, ds.HasColumn("year"))
	assert.False(t, ds.HasColumn("anio"))

	ds.AddColumn("anio")
	ds.AddColumn("anio")
	assert.Equal(t, []string{"scientificname", "year", "anio"}, ds.Columns)

	assert.Equal(t, 0, ds.Len())
	ds.Rows = append(ds.Rows, Occurrence{})
	assert.Equal(t, 1, ds.Len())
}
