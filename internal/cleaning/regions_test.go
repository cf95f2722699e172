package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"derivacli/pkg/contracts/domain"
)

func TestMapRegion(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"province", "Cádiz", "andalucía"},
		{"case insensitive", "MÁLAGA", "andalucía"},
		{"surrounding whitespace", "  Valencia  ", "comunidad valenciana"},
		{"language variant", "A Coruña", "galicia"},
		{"bilingual form", "Castellón/Castelló", "comunidad valenciana"},
		{"open sea", "Mar", RegionUnassigned},
		{"empty value", "", RegionUnassigned},
		{"unknown passes through normalized", "Atlantis", "atlantis"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapRegion(tt.input))
		})
	}
}

func TestMapRegions(t *testing.T) {
	ds := &domain.Dataset{
		Columns: []string{"scientificname", "stateprovince"},
		Rows: []domain.Occurrence{
			{StateProvince: "Sevilla"},
			{StateProvince: "Illes Balears"},
			{StateProvince: ""},
		},
	}
	MapRegions(ds)

	assert.Equal(t, "andalucía", ds.Rows[0].ComunidadAutonoma)
	assert.Equal(t, "islas baleares", ds.Rows[1].ComunidadAutonoma)
	assert.Equal(t, RegionUnassigned, ds.Rows[2].ComunidadAutonoma)
	assert.True(t, ds.HasColumn("comunidad_autonoma"))
}

func TestMapRegionsStrict(t *testing.T) {
	t.Run("all mapped", func(t *testing.T) {
		ds := &domain.Dataset{
			Columns: []string{"stateprovince"},
			Rows:    []domain.Occurrence{{StateProvince: "Granada"}, {StateProvince: "Mar"}},
		}
		require.NoError(t, MapRegionsStrict(ds))
		assert.Equal(t, "andalucía", ds.Rows[0].ComunidadAutonoma)
		assert.Equal(t, RegionUnassigned, ds.Rows[1].ComunidadAutonoma)
	})

	t.Run("unmapped values listed sorted", func(t *testing.T) {
		ds := &domain.Dataset{
			Columns: []string{"stateprovince"},
			Rows: []domain.Occurrence{
				{StateProvince: "Zzz"},
				{StateProvince: "Atlantis"},
				{StateProvince: "atlantis"},
			},
		}
		err := MapRegionsStrict(ds)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unmapped province values: atlantis, zzz")
	})
}

func TestRegionMapCoversAllComunidades(t *testing.T) {
	targets := make(map[string]struct{})
	for _, region := range regionMap {
		targets[region] = struct{}{}
	}
	for _, comunidad := range Comunidades {
		assert.Contains(t, targets, comunidad)
	}
}
