package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/sections-go/internal/domain"
	"github.com/quantmind-br/sections-go/internal/manning"
	"github.com/quantmind-br/sections-go/internal/rivers"
)

func testSection() *domain.Section {
	return &domain.Section{
		Date:          "2020-01-01",
		SectionNumber: "1.001",
		Chainage:      50.0,
		Offset:        45.0,
		Easting:       100.0,
		Northing:      200.0,
		Level:         90.0,
		Ground:        "gravel",
		CrossSections: []domain.CrossSection{
			{
				Offset:      0.0,
				Level:       1.5,
				FeatureCode: "AS*NO",
				Easting:     100.0,
				Northing:    200.0,
				Bank:        domain.BankLeft,
			},
		},
	}
}

func testRenderer() *Renderer {
	return NewRenderer(rivers.NameMapping{1: "OUSE"}, manning.New())
}

func TestRiverRows_RowCountPerSection(t *testing.T) {
	section := testSection()
	section.CrossSections = append(section.CrossSections, domain.CrossSection{
		Offset: 5.0, Level: 1.2, FeatureCode: "GR*RE", Easting: 105.0, Northing: 200.0,
	})

	rows, err := testRenderer().RiverRows(1, []*domain.Section{section})

	require.NoError(t, err)
	// One WLEVEL row plus one BED row per cross-section.
	assert.Len(t, rows, 1+len(section.CrossSections))
}

func TestRiverRows_WaterLevelRow(t *testing.T) {
	rows, err := testRenderer().RiverRows(1, []*domain.Section{testSection()})

	require.NoError(t, err)
	assert.Equal(t,
		"WLEVEL,1.001,OUSE.00050,2020-01-01,50.0,45.0,90.0,100.0,200.0,WATER,,gravel,",
		rows[0])
}

func TestRiverRows_BedRow_NoVegetationUsesSurfaceCoefficient(t *testing.T) {
	rows, err := testRenderer().RiverRows(1, []*domain.Section{testSection()})

	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Vegetation NO means no vegetation effect: the surface coefficient
	// applies, and NO's empty name leaves the VEGETATION column blank.
	assert.Equal(t,
		"BED,1.001,OUSE.00050,2020-01-01,50.0,0.0,1.5,100.0,200.0,LEFT,0.016,tarmacadam,",
		rows[1])
}

func TestRiverRows_BedRow_ZeroCoefficientRendersEmpty(t *testing.T) {
	overrides, err := manning.ParseOverrides(
		[]byte(`{"surface": {"AS": {"name": "tarmacadam", "manning": 0.0}}, "vegetation": {}}`),
		".json",
	)
	require.NoError(t, err)
	table := manning.New()
	table.Merge(overrides)

	renderer := NewRenderer(rivers.NameMapping{1: "OUSE"}, table)

	rows, err := renderer.RiverRows(1, []*domain.Section{testSection()})

	require.NoError(t, err)
	fields := strings.Split(rows[1], ",")
	require.Len(t, fields, 13)
	// A resolved coefficient of exactly zero renders empty, same as an
	// absent code.
	assert.Equal(t, "", fields[10])
	assert.Equal(t, "tarmacadam", fields[11])
}

func TestRiverRows_BedRow_VegetationCoefficientWins(t *testing.T) {
	section := testSection()
	section.CrossSections = []domain.CrossSection{
		{Offset: 0.0, Level: 1.5, FeatureCode: "GR*RE", Easting: 100.0, Northing: 200.0},
	}

	rows, err := testRenderer().RiverRows(1, []*domain.Section{section})

	require.NoError(t, err)
	fields := strings.Split(rows[1], ",")
	require.Len(t, fields, 13)
	assert.Equal(t, "", fields[9])        // no bank side
	assert.Equal(t, "0.1", fields[10])    // Reeds coefficient
	assert.Equal(t, "gravel", fields[11]) // surface name
	assert.Equal(t, "Reeds", fields[12])  // vegetation name
}

func TestRiverRows_BedRow_AbsentCodesRenderEmpty(t *testing.T) {
	section := testSection()
	section.CrossSections = []domain.CrossSection{
		{Offset: 0.0, Level: 1.5, FeatureCode: "UNSPLIT", Easting: 100.0, Northing: 200.0},
	}

	rows, err := testRenderer().RiverRows(1, []*domain.Section{section})

	require.NoError(t, err)
	fields := strings.Split(rows[1], ",")
	require.Len(t, fields, 13)
	assert.Equal(t, "", fields[10])
	assert.Equal(t, "", fields[11])
	assert.Equal(t, "", fields[12])
}

func TestRiverRows_UnknownRiverNumber(t *testing.T) {
	_, err := testRenderer().RiverRows(7, []*domain.Section{testSection()})

	var unknown *domain.UnknownRiverNumberError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 7, unknown.Number)
}

func TestRiverRows_SectionOrderPreserved(t *testing.T) {
	first := testSection()
	second := testSection()
	second.SectionNumber = "1.002"
	second.Chainage = 123.4
	second.CrossSections = nil

	rows, err := testRenderer().RiverRows(1, []*domain.Section{first, second})

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.True(t, strings.HasPrefix(rows[2], "WLEVEL,1.002,OUSE.00123,"))
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		shortName string
		chainage  float64
		want      string
	}{
		{"OUSE", 123.4, "OUSE.00123"},
		{"OUSE", 123.5, "OUSE.00124"},
		{"OUSE", 0.0, "OUSE.00000"},
		{"OUSE", 99999.0, "OUSE.99999"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, displayName(tt.shortName, tt.chainage))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50.0, "50.0"},
		{123.4, "123.4"},
		{0.0, "0.0"},
		{-1.25, "-1.25"},
		{0.016, "0.016"},
		{1000000.0, "1000000.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatFloat(tt.in))
		})
	}
}
