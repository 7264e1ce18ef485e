// Package builder converts raw sections into validated domain entities,
// resolving feature codes against the Manning's table.
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantmind-br/sections-go/internal/domain"
	"github.com/quantmind-br/sections-go/internal/manning"
)

// Build validates one raw section and its cross-section rows. The returned
// section's feature codes are guaranteed to resolve in the given table.
func Build(raw *domain.RawSection, table *manning.Table) (*domain.Section, error) {
	section, err := buildSection(raw)
	if err != nil {
		return nil, err
	}

	// River number must be derivable up front; emission depends on it.
	if _, err := section.RiverNumber(); err != nil {
		return nil, err
	}

	for i, row := range raw.Rows {
		cross, err := buildCrossSection(row, table)
		if err != nil {
			return nil, fmt.Errorf("cross section %d: %w", i+1, err)
		}
		section.CrossSections = append(section.CrossSections, *cross)
	}

	return section, nil
}

// BuildAll validates every raw section in order.
func BuildAll(raws []*domain.RawSection, table *manning.Table) ([]*domain.Section, error) {
	sections := make([]*domain.Section, 0, len(raws))
	for _, raw := range raws {
		section, err := Build(raw, table)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, nil
}

func buildSection(raw *domain.RawSection) (*domain.Section, error) {
	section := &domain.Section{
		Date:          raw.MetadataValue(domain.TagSectionDate, 0),
		SectionNumber: raw.MetadataValue(domain.TagNewSection, 0),
		Ground:        raw.MetadataValue(domain.TagBedMaterial, 0),
	}

	var invalid []string

	if section.Date == "" {
		invalid = append(invalid, "date")
	}
	if section.SectionNumber == "" {
		invalid = append(invalid, "section_number")
	}

	floats := []struct {
		name  string
		value string
		dest  *float64
	}{
		{"chainage", raw.MetadataValue(domain.TagNewSection, 1), &section.Chainage},
		{"level", raw.MetadataValue(domain.TagNewSection, 2), &section.Level},
		{"offset", raw.MetadataValue(domain.TagBearing, 0), &section.Offset},
		{"easting", raw.MetadataValue(domain.TagCoordinates, 0), &section.Easting},
		{"northing", raw.MetadataValue(domain.TagCoordinates, 1), &section.Northing},
	}
	for _, f := range floats {
		if f.value == "" {
			invalid = append(invalid, f.name)
			continue
		}
		value, err := strconv.ParseFloat(f.value, 64)
		if err != nil {
			invalid = append(invalid, f.name)
			continue
		}
		*f.dest = value
	}

	if len(invalid) > 0 {
		return nil, &domain.SectionValidationError{
			SectionNumber: section.SectionNumber,
			Fields:        invalid,
		}
	}

	return section, nil
}

// buildCrossSection parses a 5-field raw row:
// [offset, level with optional bank suffix, feature code, easting, northing].
func buildCrossSection(row []string, table *manning.Table) (*domain.CrossSection, error) {
	if len(row) != 5 {
		return nil, fmt.Errorf("input row must be length 5, got %d", len(row))
	}

	offset, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing offset %q: %w", row[0], err)
	}

	levelCode := row[1]
	bank := domain.BankNone
	switch {
	case strings.HasSuffix(levelCode, "L"):
		bank = domain.BankLeft
	case strings.HasSuffix(levelCode, "R"):
		bank = domain.BankRight
	}
	if bank != domain.BankNone {
		levelCode = levelCode[:len(levelCode)-1]
	}

	level, err := strconv.ParseFloat(levelCode, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing level %q: %w", row[1], err)
	}

	easting, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing easting %q: %w", row[3], err)
	}
	northing, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return nil, fmt.Errorf("parsing northing %q: %w", row[4], err)
	}

	cross := &domain.CrossSection{
		Offset:      offset,
		Level:       level,
		FeatureCode: row[2],
		Easting:     easting,
		Northing:    northing,
		Bank:        bank,
	}

	if err := resolveFeatureCodes(cross, table); err != nil {
		return nil, err
	}

	return cross, nil
}

// resolveFeatureCodes checks that any derived codes exist in their Manning's
// code set. A feature code that does not split into two parts carries no
// codes and is not an error.
func resolveFeatureCodes(cross *domain.CrossSection, table *manning.Table) error {
	if code, ok := cross.SurfaceCode(); ok {
		if _, found := table.Surface(code); !found {
			return &domain.UnknownFeatureCodeError{Set: string(manning.SetSurface), Code: code}
		}
	}
	if code, ok := cross.VegetationCode(); ok {
		if _, found := table.Vegetation(code); !found {
			return &domain.UnknownFeatureCodeError{Set: string(manning.SetVegetation), Code: code}
		}
	}
	return nil
}
