// Package output serializes validated sections into the per-river CSV
// format: one WLEVEL row per section followed by one BED row per
// cross-section point.
package output

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/quantmind-br/sections-go/internal/domain"
	"github.com/quantmind-br/sections-go/internal/manning"
	"github.com/quantmind-br/sections-go/internal/rivers"
)

// Header is the fixed 13-column CSV header.
const Header = "REF,SECTION NUMBER,NAME,DATE,CHAINAGE,OFFSET/BRG,LEVEL,EASTING,NORTHING,BANK,MANNINGS,GROUND,VEGETATION"

// Renderer renders sections into CSV data rows using the short name mapping
// and the Manning's table.
type Renderer struct {
	names rivers.NameMapping
	table *manning.Table
}

// NewRenderer creates a renderer.
func NewRenderer(names rivers.NameMapping, table *manning.Table) *Renderer {
	return &Renderer{names: names, table: table}
}

// RiverRows renders every section of one river, in order. It fails when the
// river number has no short name mapping.
func (r *Renderer) RiverRows(number int, sections []*domain.Section) ([]string, error) {
	shortName, ok := r.names[number]
	if !ok {
		return nil, &domain.UnknownRiverNumberError{Number: number}
	}

	var rows []string
	for _, section := range sections {
		rows = append(rows, r.waterLevelRow(section, shortName))
		for _, cross := range section.CrossSections {
			rows = append(rows, r.bedRow(section, cross, shortName))
		}
	}
	return rows, nil
}

// displayName is the short river name joined with the chainage rounded to
// the nearest integer, zero-padded to width 5.
func displayName(shortName string, chainage float64) string {
	return fmt.Sprintf("%s.%05d", shortName, int(math.Round(chainage)))
}

func (r *Renderer) waterLevelRow(s *domain.Section, shortName string) string {
	return strings.Join([]string{
		"WLEVEL",
		s.SectionNumber,
		displayName(shortName, s.Chainage),
		s.Date,
		formatFloat(s.Chainage),
		formatFloat(s.Offset),
		formatFloat(s.Level),
		formatFloat(s.Easting),
		formatFloat(s.Northing),
		"WATER",
		"",
		s.Ground,
		"",
	}, ",")
}

func (r *Renderer) bedRow(s *domain.Section, cross domain.CrossSection, shortName string) string {
	var manningText, surfaceName, vegetationName string

	if surfaceCode, ok := cross.SurfaceCode(); ok {
		vegetationCode, _ := cross.VegetationCode()

		surfaceEntry, _ := r.table.Surface(surfaceCode)
		vegetationEntry, _ := r.table.Vegetation(vegetationCode)
		surfaceName = surfaceEntry.Name
		vegetationName = vegetationEntry.Name

		// Vegetation takes precedence unless the point carries the explicit
		// no-vegetation code. A resolved coefficient of exactly zero renders
		// empty, same as an absent code.
		coefficient := surfaceEntry.Manning
		if vegetationCode != manning.NoVegetationCode {
			coefficient = vegetationEntry.Manning
		}
		if coefficient != 0 {
			manningText = formatFloat(coefficient)
		}
	}

	return strings.Join([]string{
		"BED",
		s.SectionNumber,
		displayName(shortName, s.Chainage),
		s.Date,
		formatFloat(s.Chainage),
		formatFloat(cross.Offset),
		formatFloat(cross.Level),
		formatFloat(cross.Easting),
		formatFloat(cross.Northing),
		cross.Bank.Label(),
		manningText,
		surfaceName,
		vegetationName,
	}, ",")
}

// formatFloat renders a float in its shortest decimal form, with integral
// values keeping a trailing ".0".
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
