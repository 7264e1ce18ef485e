// Package parser turns survey file text into raw section data: it splits the
// file into one line group per NEWSEC block and parses each group's
// comma-separated records into typed metadata and cross-section rows.
package parser

import "strings"

// sectionMarker starts a new section block.
const sectionMarker = "NEWSEC"

// GroupLines splits survey file text into ordered groups of lines, one per
// section. Blank lines are discarded; a line starting with NEWSEC opens a new
// group, and the first non-blank line implicitly opens the first group even
// without a marker. Input with no non-blank lines yields zero groups.
func GroupLines(text string) [][]string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var groups [][]string
	var current []string
	for _, line := range lines {
		if strings.HasPrefix(line, sectionMarker) && len(current) > 0 {
			groups = append(groups, current)
			current = nil
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}
