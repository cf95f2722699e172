package cleaning

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"derivacli/pkg/contracts/domain"
)

// stripDiacritics decomposes accented characters and drops the combining
// marks, reducing labels like "año" to "ano".
var stripDiacritics = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nonWordOrSpace = regexp.MustCompile(`[^\w\s]`)

// NormalizeLabel rewrites a column label into its canonical form: trimmed,
// lowercase, interior spaces as underscores, diacritics stripped, and any
// remaining non-word characters removed. The transform is idempotent.
func NormalizeLabel(label string) string {
	s := strings.TrimSpace(label)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	if out, _, err := transform.String(stripDiacritics, s); err == nil {
		s = out
	}
	return nonWordOrSpace.ReplaceAllString(s, "")
}

// NormalizeColumns applies NormalizeLabel to every column label of the
// dataset. Row values are never touched.
func NormalizeColumns(ds *domain.Dataset) {
	for i, c := range ds.Columns {
		ds.Columns[i] = NormalizeLabel(c)
	}
}
