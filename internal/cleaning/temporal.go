package cleaning

import (
	"strings"
	"time"

	"derivacli/pkg/contracts/domain"
)

// eventDateLayouts lists the date shapes seen in occurrence exports, most
// specific first. Year-only values carry no usable month component, so the
// month falls back to the raw month column.
var eventDateLayouts = []struct {
	layout   string
	hasMonth bool
}{
	{"2006-01-02T15:04:05Z", true},
	{"2006-01-02T15:04:05", true},
	{"2006-01-02 15:04:05", true},
	{"2006-01-02", true},
	{"2006/01/02", true},
	{"2006-01", true},
	{"2006", false},
}

// parseEventDate parses a raw event date, returning nil components when the
// value is missing or unparseable. Interval values ("2010-05-01/2010-05-03")
// are read from their start date.
func parseEventDate(raw string) (year, month *int) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	if i := strings.Index(s, "/"); i > 0 && strings.Contains(s, "-") {
		s = s[:i]
	}
	for _, dl := range eventDateLayouts {
		t, err := time.Parse(dl.layout, s)
		if err != nil {
			continue
		}
		y := t.Year()
		year = &y
		if dl.hasMonth {
			m := int(t.Month())
			month = &m
		}
		return year, month
	}
	return nil, nil
}

// ExtractAnioMes derives the anio and mes columns from the event date,
// falling back per field to the raw year and month columns when the date is
// missing or does not carry that component. The two fallbacks are
// independent: a row can take anio from the date and mes from the month
// column, or vice versa.
func ExtractAnioMes(ds *domain.Dataset) {
	for i := range ds.Rows {
		row := &ds.Rows[i]
		year, month := parseEventDate(row.EventDate)
		if year == nil {
			year = row.Year
		}
		if month == nil {
			month = row.Month
		}
		row.Anio = copyIntPtr(year)
		row.Mes = copyIntPtr(month)
	}
	ds.AddColumn("anio")
	ds.AddColumn("mes")
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
