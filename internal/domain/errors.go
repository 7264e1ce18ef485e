package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors
var (
	// ErrEmptyInput indicates a survey file with no non-blank lines
	ErrEmptyInput = errors.New("input contains no data lines")

	// ErrMissingRecordTag indicates a record whose first field is empty
	ErrMissingRecordTag = errors.New("first element of a record was empty")

	// ErrInvalidOverride indicates a Manning's override file that does not
	// match the strict schema
	ErrInvalidOverride = errors.New("invalid mannings override")
)

// MalformedRecordError indicates a record that did not split into exactly
// six comma-separated fields.
type MalformedRecordError struct {
	Section int // 1-based section index within the file
	Line    int // 1-based line index within the section
	Width   int
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("expected 6 elements for each row, got %d for section %d, line %d",
		e.Width, e.Section, e.Line)
}

// IncompleteRowError indicates a cross-section row with an absent field.
type IncompleteRowError struct {
	Section int
	Line    int
	Fields  []string
}

func (e *IncompleteRowError) Error() string {
	return fmt.Sprintf("an element in a cross section was empty: %q (section %d, line %d)",
		e.Fields, e.Section, e.Line)
}

// DuplicateMetadataError indicates a metadata tag that appeared more than
// once within a single section block.
type DuplicateMetadataError struct {
	Section int
	Tag     string
}

func (e *DuplicateMetadataError) Error() string {
	return fmt.Sprintf("metadata key already exists %s (section %d)", e.Tag, e.Section)
}

// SectionValidationError reports every required section field that was
// missing or failed to parse.
type SectionValidationError struct {
	SectionNumber string // may be empty when NEWSEC itself was incomplete
	Fields        []string
}

func (e *SectionValidationError) Error() string {
	section := e.SectionNumber
	if section == "" {
		section = "<unknown>"
	}
	return fmt.Sprintf("section %s: missing or invalid fields: %s",
		section, strings.Join(e.Fields, ", "))
}

// UnknownFeatureCodeError indicates a derived surface or vegetation code
// with no Manning's table entry.
type UnknownFeatureCodeError struct {
	Set  string // "surface" or "vegetation"
	Code string
}

func (e *UnknownFeatureCodeError) Error() string {
	return fmt.Sprintf("unknown %s code %q", e.Set, e.Code)
}

// InvalidSectionNumberError indicates a section number whose prefix before
// the first '.' is not an integer.
type InvalidSectionNumberError struct {
	SectionNumber string
}

func (e *InvalidSectionNumberError) Error() string {
	return fmt.Sprintf("could not parse river number from section number %q", e.SectionNumber)
}

// InvalidRiverMappingError indicates a SHORT_RIVERNAME line whose key does
// not end in a digit.
type InvalidRiverMappingError struct {
	Line string
}

func (e *InvalidRiverMappingError) Error() string {
	return fmt.Sprintf("could not parse integer from short river name %q", e.Line)
}

// UnknownRiverNumberError indicates a river number present in the survey
// data but absent from the name mapping.
type UnknownRiverNumberError struct {
	Number int
}

func (e *UnknownRiverNumberError) Error() string {
	return fmt.Sprintf("no short name mapping for river number %d", e.Number)
}
