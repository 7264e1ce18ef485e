package domain

import (
	"strconv"
	"strings"
)

// Record tags recognized in survey data files.
const (
	TagNewSection  = "NEWSEC"
	TagSectionDate = "SECDATE"
	TagBedMaterial = "BEDMATERIAL"
	TagBearing     = "SECBEARING"
	TagCoordinates = "SECCOORDS"
)

// CrossSectionTags are the record tags carrying cross-section point rows.
var CrossSectionTags = []string{"XSS", "XSN"}

// MetadataTags are the record tags stored as per-section metadata. Each may
// appear at most once per section.
var MetadataTags = []string{
	TagNewSection,
	TagSectionDate,
	TagBedMaterial,
	TagBearing,
	TagCoordinates,
}

// ManningEntry is one Manning's table entry: a display name and the
// hydraulic roughness coefficient for a surface or vegetation code.
type ManningEntry struct {
	Name    string  `json:"name" yaml:"name"`
	Manning float64 `json:"manning" yaml:"manning"`
}

// RawSection is the intermediate form of one NEWSEC block: metadata record
// values keyed by tag, plus the cross-section rows in encounter order.
// Absent field values are stored as empty strings.
type RawSection struct {
	Metadata map[string][]string
	Rows     [][]string
}

// MetadataValue returns the value at index in the metadata stored under tag,
// or "" when the tag or index is absent.
func (r *RawSection) MetadataValue(tag string, index int) string {
	values, ok := r.Metadata[tag]
	if !ok || index >= len(values) {
		return ""
	}
	return values[index]
}

// BankSide marks whether a cross-section point lies on a bank.
type BankSide int

const (
	BankNone BankSide = iota
	BankLeft
	BankRight
)

// Label returns the CSV bank column value.
func (b BankSide) Label() string {
	switch b {
	case BankLeft:
		return "LEFT"
	case BankRight:
		return "RIGHT"
	default:
		return ""
	}
}

// CrossSection is one sampled point within a section's profile.
type CrossSection struct {
	Offset      float64
	Level       float64
	FeatureCode string
	Easting     float64
	Northing    float64
	Bank        BankSide
}

// featureCodes splits the feature code into its surface and vegetation parts.
// Leading and trailing '~' and '*' characters are stripped before splitting
// on '*'; anything other than exactly two parts means no codes.
func (c CrossSection) featureCodes() (surface, vegetation string, ok bool) {
	codes := strings.Split(strings.Trim(c.FeatureCode, "~*"), "*")
	if len(codes) != 2 {
		return "", "", false
	}
	return codes[0], codes[1], true
}

// SurfaceCode returns the derived bed surface code, if present.
func (c CrossSection) SurfaceCode() (string, bool) {
	surface, _, ok := c.featureCodes()
	return surface, ok
}

// VegetationCode returns the derived vegetation code, if present.
func (c CrossSection) VegetationCode() (string, bool) {
	_, vegetation, ok := c.featureCodes()
	return vegetation, ok
}

// Section is one river cross-section survey record.
type Section struct {
	Date          string
	SectionNumber string
	Chainage      float64
	Offset        float64
	Easting       float64
	Northing      float64
	Level         float64
	Ground        string
	CrossSections []CrossSection
}

// RiverNumber derives the river identifier from the section number prefix
// before the first '.'.
func (s *Section) RiverNumber() (int, error) {
	prefix, _, _ := strings.Cut(s.SectionNumber, ".")
	number, err := strconv.Atoi(prefix)
	if err != nil {
		return 0, &InvalidSectionNumberError{SectionNumber: s.SectionNumber}
	}
	return number, nil
}
