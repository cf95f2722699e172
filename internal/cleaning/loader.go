package cleaning

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"derivacli/pkg/contracts/domain"
)

// LoadTSV reads a tab-separated occurrence export into a dataset. The first
// row is the header; rows whose field count does not match the header are
// skipped, never an error. A missing or unreadable file is fatal.
func LoadTSV(path string) (*domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	ds, err := LoadTSVReader(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ds, nil
}

// LoadTSVReader parses tab-separated occurrence data from r in a single
// streaming pass.
func LoadTSVReader(r io.Reader) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	columns := make([]string, len(header))
	for i, label := range header {
		columns[i] = NormalizeLabel(label)
	}

	ds := &domain.Dataset{Columns: columns}
	skipped := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Malformed line; drop it and keep going.
			skipped++
			continue
		}
		if len(rec) != len(columns) {
			skipped++
			continue
		}
		ds.Rows = append(ds.Rows, rowToOccurrence(columns, rec))
	}

	if skipped > 0 {
		slog.Warn("Skipped malformed rows during load",
			slog.Int("skipped", skipped),
			slog.Int("loaded", len(ds.Rows)))
	}
	return ds, nil
}

// LoadExcel reads an occurrence export from an .xlsx workbook. The sheet
// whose first row contains a scientificname column is used; short rows are
// padded, since excelize trims trailing empty cells.
func LoadExcel(path string) (*domain.Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var rows [][]string
	for _, name := range f.GetSheetList() {
		sheetRows, err := f.GetRows(name)
		if err != nil || len(sheetRows) == 0 {
			continue
		}
		for _, label := range sheetRows[0] {
			if NormalizeLabel(label) == "scientificname" {
				rows = sheetRows
				break
			}
		}
		if rows != nil {
			break
		}
	}
	if rows == nil {
		return nil, fmt.Errorf("no occurrence sheet found in %s", path)
	}

	columns := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		columns[i] = NormalizeLabel(label)
	}

	ds := &domain.Dataset{Columns: columns}
	for _, rec := range rows[1:] {
		if len(rec) > len(columns) {
			continue
		}
		for len(rec) < len(columns) {
			rec = append(rec, "")
		}
		ds.Rows = append(ds.Rows, rowToOccurrence(columns, rec))
	}
	return ds, nil
}

// rowToOccurrence maps a raw row onto the typed record. Columns without a
// dedicated field are preserved in Extra so the full record stays comparable.
func rowToOccurrence(columns []string, rec []string) domain.Occurrence {
	var o domain.Occurrence
	for i, col := range columns {
		val := rec[i]
		switch col {
		case "scientificname":
			o.ScientificName = strings.TrimSpace(val)
		case "eventdate":
			o.EventDate = strings.TrimSpace(val)
		case "year":
			o.Year = parseIntPtr(val)
		case "month":
			o.Month = parseIntPtr(val)
		case "decimallatitude":
			o.DecimalLatitude = parseFloatPtr(val)
		case "decimallongitude":
			o.DecimalLongitude = parseFloatPtr(val)
		case "stateprovince":
			o.StateProvince = val
		case "individualcount":
			o.IndividualCount = parseCountPtr(val)
		default:
			if o.Extra == nil {
				o.Extra = make(map[string]string)
			}
			o.Extra[col] = val
		}
	}
	return o
}

func parseIntPtr(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	// Some exports carry integer columns as floats ("2015.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		return &n
	}
	return nil
}

func parseFloatPtr(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return &f
	}
	return nil
}

func parseCountPtr(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int64(f)
		return &n
	}
	return nil
}
