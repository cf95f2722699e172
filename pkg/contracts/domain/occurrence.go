package domain

import (
	"strconv"
	"strings"
)

// Occurrence represents a single cetacean sighting record from a GBIF-style
// occurrence export. Raw fields keep whatever the source file carried; the
// derived fields (Anio, Mes, ComunidadAutonoma, SimplifiedName) are populated
// by the cleaning pipeline. Pointer fields distinguish "absent" from zero.
type Occurrence struct {
	ScientificName    string             `json:"scientificname" csv:"scientificname"`
	SimplifiedName    string             `json:"nombre_cientifico" csv:"nombre_cientifico"`
	EventDate         string             `json:"eventdate" csv:"eventdate"`
	Year              *int               `json:"year" csv:"year"`
	Month             *int               `json:"month" csv:"month"`
	Anio              *int               `json:"anio" csv:"anio"`
	Mes               *int               `json:"mes" csv:"mes" validate:"omitempty,min=1,max=12"`
	DecimalLatitude   *float64           `json:"decimallatitude" csv:"decimallatitude" validate:"omitempty,min=-90,max=90"`
	DecimalLongitude  *float64           `json:"decimallongitude" csv:"decimallongitude" validate:"omitempty,min=-180,max=180"`
	StateProvince     string             `json:"stateprovince" csv:"stateprovince"`
	ComunidadAutonoma string             `json:"comunidad_autonoma" csv:"comunidad_autonoma"`
	IndividualCount   *int64             `json:"individualcount" csv:"individualcount"`
	// Extra holds every source column that has no dedicated field above,
	// keyed by normalized label. Kept so duplicate detection can compare
	// the full record, not just the promoted fields.
	Extra map[string]string `json:"extra,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (o *Occurrence) HasCoordinates() bool {
	return o.DecimalLatitude != nil && o.DecimalLongitude != nil
}

// Individuals returns the individual count, or zero when the source field
// was absent.
func (o *Occurrence) Individuals() int64 {
	if o.IndividualCount == nil {
		return 0
	}
	return *o.IndividualCount
}

// Key builds a deterministic identity string over every field of the record,
// in the given column order, for exact-duplicate detection.
func (o *Occurrence) Key(columns []string) string {
	var b strings.Builder
	for _, col := range columns {
		b.WriteString(o.Value(col))
		b.WriteByte('\x1f')
	}
	return b.String()
}

// Value returns the record's value for a normalized column label as a string.
// Unknown labels are looked up in Extra.
func (o *Occurrence) Value(col string) string {
	switch col {
	case "scientificname":
		return o.ScientificName
	case "nombre_cientifico":
		return o.SimplifiedName
	case "eventdate":
		return o.EventDate
	case "year":
		return formatIntPtr(o.Year)
	case "month":
		return formatIntPtr(o.Month)
	case "anio":
		return formatIntPtr(o.Anio)
	case "mes":
		return formatIntPtr(o.Mes)
	case "decimallatitude":
		return formatFloatPtr(o.DecimalLatitude)
	case "decimallongitude":
		return formatFloatPtr(o.DecimalLongitude)
	case "stateprovince":
		return o.StateProvince
	case "comunidad_autonoma":
		return o.ComunidadAutonoma
	case "individualcount":
		if o.IndividualCount == nil {
			return ""
		}
		return strconv.FormatInt(*o.IndividualCount, 10)
	default:
		return o.Extra[col]
	}
}

func formatIntPtr(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func formatFloatPtr(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

// Dataset is an ordered collection of occurrence records sharing a uniform
// column schema. Columns holds the normalized source labels in file order,
// plus the labels the pipeline appends (anio, mes, comunidad_autonoma,
// nombre_cientifico).
type Dataset struct {
	Columns []string
	Rows    []Occurrence
}

// HasColumn reports whether the dataset schema contains the given label.
func (d *Dataset) HasColumn(label string) bool {
	for _, c := range d.Columns {
		if c == label {
			return true
		}
	}
	return false
}

// AddColumn appends a label to the schema if not already present.
func (d *Dataset) AddColumn(label string) {
	if !d.HasColumn(label) {
		d.Columns = append(d.Columns, label)
	}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}
