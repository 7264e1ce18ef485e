// Package rivers partitions validated sections by river number and loads the
// short river name mapping used to label output files.
package rivers

import "github.com/quantmind-br/sections-go/internal/domain"

// Groups holds sections partitioned by river number. Iteration order of
// rivers, and of sections within a river, follows file-encounter order.
type Groups struct {
	numbers  []int
	sections map[int][]*domain.Section
}

// Group partitions sections by their derived river number. Sections were
// validated at build time, so the derivation cannot fail here.
func Group(sections []*domain.Section) *Groups {
	groups := &Groups{sections: make(map[int][]*domain.Section)}
	for _, section := range sections {
		number, err := section.RiverNumber()
		if err != nil {
			// Build guarantees a parseable river number.
			continue
		}
		if _, seen := groups.sections[number]; !seen {
			groups.numbers = append(groups.numbers, number)
		}
		groups.sections[number] = append(groups.sections[number], section)
	}
	return groups
}

// Numbers returns the river numbers in first-encounter order.
func (g *Groups) Numbers() []int {
	return g.numbers
}

// Sections returns the sections for a river in file-encounter order.
func (g *Groups) Sections(number int) []*domain.Section {
	return g.sections[number]
}

// Len returns the number of distinct rivers.
func (g *Groups) Len() int {
	return len(g.numbers)
}
