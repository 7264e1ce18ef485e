package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/quantmind-br/sections-go/internal/domain"
)

const recordWidth = 6

// ParseGroup parses one section's line group into a RawSection. sectionIndex
// is the 1-based position of the group within the file and is used for error
// context only.
func ParseGroup(group []string, sectionIndex int) (*domain.RawSection, error) {
	raw := &domain.RawSection{
		Metadata: make(map[string][]string),
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(group, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	line := 0
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading section %d: %w", sectionIndex, err)
		}
		line++

		if len(record) != recordWidth {
			return nil, &domain.MalformedRecordError{
				Section: sectionIndex,
				Line:    line,
				Width:   len(record),
			}
		}

		fields := normalizeFields(record)
		tag := fields[0]

		if tag == "" {
			return nil, fmt.Errorf("section %d, line %d: %w",
				sectionIndex, line, domain.ErrMissingRecordTag)
		}

		switch {
		case slices.Contains(domain.CrossSectionTags, tag):
			if slices.Contains(fields, "") {
				return nil, &domain.IncompleteRowError{
					Section: sectionIndex,
					Line:    line,
					Fields:  fields,
				}
			}
			raw.Rows = append(raw.Rows, fields[1:])

		case slices.Contains(domain.MetadataTags, tag):
			if _, exists := raw.Metadata[tag]; exists {
				return nil, &domain.DuplicateMetadataError{
					Section: sectionIndex,
					Tag:     tag,
				}
			}
			raw.Metadata[tag] = fields[1:]

		default:
			// Unrecognized record types are skipped.
		}
	}

	return raw, nil
}

// ParseGroups parses every line group in order.
func ParseGroups(groups [][]string) ([]*domain.RawSection, error) {
	sections := make([]*domain.RawSection, 0, len(groups))
	for i, group := range groups {
		raw, err := ParseGroup(group, i+1)
		if err != nil {
			return nil, err
		}
		sections = append(sections, raw)
	}
	return sections, nil
}

// normalizeFields trims each field; fields that are empty after trimming
// stay empty, meaning absent.
func normalizeFields(record []string) []string {
	fields := make([]string, len(record))
	for i, field := range record {
		fields[i] = strings.TrimSpace(field)
	}
	return fields
}
