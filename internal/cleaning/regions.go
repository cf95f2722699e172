package cleaning

import (
	"fmt"
	"sort"
	"strings"

	"derivacli/pkg/contracts/domain"
)

// RegionUnassigned is the catch-all bucket for records that cannot be placed
// in a comunidad autónoma (open sea, unknown provenance, empty field).
const RegionUnassigned = "no asignado"

// Comunidades lists the 17 canonical first-level administrative regions.
var Comunidades = []string{
	"andalucía",
	"aragón",
	"asturias",
	"cantabria",
	"castilla y león",
	"castilla-la mancha",
	"cataluña",
	"comunidad valenciana",
	"extremadura",
	"galicia",
	"madrid",
	"murcia",
	"navarra",
	"país vasco",
	"la rioja",
	"islas baleares",
	"canarias",
}

// regionMap maps lowercased, trimmed province names — including spelling and
// language variants — onto their comunidad autónoma. Loaded once; never
// mutated.
var regionMap = map[string]string{
	// Andalucía
	"sevilla":   "andalucía",
	"cádiz":     "andalucía",
	"huelva":    "andalucía",
	"granada":   "andalucía",
	"jaén":      "andalucía",
	"jaen":      "andalucía",
	"almería":   "andalucía",
	"cordoba":   "andalucía",
	"málaga":    "andalucía",
	"malaga":    "andalucía",
	"andalucía": "andalucía",

	// Aragón
	"zaragoza": "aragón",
	"huesca":   "aragón",
	"teruel":   "aragón",

	// Asturias
	"asturias":               "asturias",
	"principado de asturias": "asturias",

	// Cantabria
	"cantabria": "cantabria",

	// Castilla y León
	"valladolid":      "castilla y león",
	"león":            "castilla y león",
	"zamora":          "castilla y león",
	"burgos":          "castilla y león",
	"palencia":        "castilla y león",
	"soria":           "castilla y león",
	"avila":           "castilla y león",
	"segovia":         "castilla y león",
	"castilla y león": "castilla y león",

	// Castilla-La Mancha
	"cuenca":      "castilla-la mancha",
	"albacete":    "castilla-la mancha",
	"toledo":      "castilla-la mancha",
	"guadalajara": "castilla-la mancha",
	"ciudad real": "castilla-la mancha",

	// Cataluña
	"barcelona": "cataluña",
	"girona":    "cataluña",
	"lleida":    "cataluña",
	"tarragona": "cataluña",
	"cataluña":  "cataluña",
	"catalonia": "cataluña",

	// Comunidad Valenciana
	"valencia":             "comunidad valenciana",
	"alicante":             "comunidad valenciana",
	"castellón":            "comunidad valenciana",
	"castelló":             "comunidad valenciana",
	"castellón/castelló":   "comunidad valenciana",
	"valencia/valència":    "comunidad valenciana",
	"comunidad valenciana": "comunidad valenciana",
	"alicante/alicant":     "comunidad valenciana",

	// Extremadura
	"badajoz": "extremadura",
	"cáceres": "extremadura",

	// Galicia
	"a coruña":   "galicia",
	"la coruña":  "galicia",
	"la coruna":  "galicia",
	"lugo":       "galicia",
	"ourense":    "galicia",
	"pontevedra": "galicia",
	"galicia":    "galicia",

	// Madrid
	"madrid": "madrid",

	// Murcia
	"murcia":           "murcia",
	"región de murcia": "murcia",

	// Navarra
	"navarra": "navarra",

	// País Vasco
	"bizkaia":    "país vasco",
	"gipuzkoa":   "país vasco",
	"guipúzcoa":  "país vasco",
	"guipuzcoa":  "país vasco",
	"álava":      "país vasco",
	"alava":      "país vasco",
	"país vasco": "país vasco",

	// La Rioja
	"la rioja": "la rioja",

	// Islas Baleares
	"illes balears":  "islas baleares",
	"islas baleares": "islas baleares",

	// Canarias
	"santa cruz de tenerife":   "canarias",
	"las palmas":               "canarias",
	"islas canarias":           "canarias",
	"canarias, canary islands": "canarias",
	"canary islands":           "canarias",
	"canarias":                 "canarias",

	// No asignado
	"mar":                     RegionUnassigned,
	"northern atlantic ocean": RegionUnassigned,
	"desconocido":             RegionUnassigned,
	"":                        RegionUnassigned,
}

// normalizeProvince lowercases and trims a raw province value for lookup.
func normalizeProvince(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// MapRegion resolves a single province value. Unmapped values pass through
// as their normalized form; the empty string maps to "no asignado".
func MapRegion(raw string) string {
	norm := normalizeProvince(raw)
	if region, ok := regionMap[norm]; ok {
		return region
	}
	// Unknown provinces leak through unchanged. Kept to match the original
	// analysis; use MapRegionsStrict to surface them instead.
	return norm
}

// MapRegions fills the comunidad_autonoma column for every row from the
// stateprovince field.
func MapRegions(ds *domain.Dataset) {
	for i := range ds.Rows {
		ds.Rows[i].ComunidadAutonoma = MapRegion(ds.Rows[i].StateProvince)
	}
	ds.AddColumn("comunidad_autonoma")
}

// MapRegionsStrict behaves like MapRegions but fails when any province value
// has no table entry, listing the offending values.
func MapRegionsStrict(ds *domain.Dataset) error {
	unknown := make(map[string]struct{})
	for i := range ds.Rows {
		norm := normalizeProvince(ds.Rows[i].StateProvince)
		region, ok := regionMap[norm]
		if !ok {
			unknown[norm] = struct{}{}
			continue
		}
		ds.Rows[i].ComunidadAutonoma = region
	}
	if len(unknown) > 0 {
		values := make([]string, 0, len(unknown))
		for v := range unknown {
			values = append(values, v)
		}
		sort.Strings(values)
		return fmt.Errorf("unmapped province values: %s", strings.Join(values, ", "))
	}
	ds.AddColumn("comunidad_autonoma")
	return nil
}
