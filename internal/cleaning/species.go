package cleaning

import (
	"strings"

	"derivacli/pkg/contracts/domain"
)

// SimplifyNames derives the nombre_cientifico column: the binomial
// (genus + epithet) from the full scientific name, with the author citation
// dropped. "Stenella coeruleoalba (Meyen, 1833)" becomes
// "Stenella coeruleoalba".
func SimplifyNames(ds *domain.Dataset) {
	for i := range ds.Rows {
		ds.Rows[i].SimplifiedName = SimplifyName(ds.Rows[i].ScientificName)
	}
	ds.AddColumn("nombre_cientifico")
}

// SimplifyName reduces a full scientific name to its first two tokens.
func SimplifyName(name string) string {
	fields := strings.Fields(name)
	if len(fields) >= 2 {
		return fields[0] + " " + fields[1]
	}
	return strings.TrimSpace(name)
}
