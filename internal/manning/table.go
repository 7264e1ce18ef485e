// Package manning provides the Manning's roughness lookup table: compiled-in
// defaults for bed surface and vegetation feature codes, optionally merged
// with a strict-schema override file.
package manning

import "github.com/quantmind-br/sections-go/internal/domain"

// Set identifies one of the two independent code sets.
type Set string

const (
	SetSurface    Set = "surface"
	SetVegetation Set = "vegetation"
)

// Table is an immutable feature-code lookup table. Construct it with New or
// Load and treat it as read-only.
type Table struct {
	surface    map[string]domain.ManningEntry
	vegetation map[string]domain.ManningEntry
}

// New returns a table holding only the compiled-in defaults.
func New() *Table {
	return &Table{
		surface:    copyEntries(defaultSurface),
		vegetation: copyEntries(defaultVegetation),
	}
}

// Surface looks up a bed surface code.
func (t *Table) Surface(code string) (domain.ManningEntry, bool) {
	entry, ok := t.surface[code]
	return entry, ok
}

// Vegetation looks up a vegetation code.
func (t *Table) Vegetation(code string) (domain.ManningEntry, bool) {
	entry, ok := t.vegetation[code]
	return entry, ok
}

// Lookup looks up a code in the given set.
func (t *Table) Lookup(set Set, code string) (domain.ManningEntry, bool) {
	switch set {
	case SetSurface:
		return t.Surface(code)
	case SetVegetation:
		return t.Vegetation(code)
	default:
		return domain.ManningEntry{}, false
	}
}

// Merge applies override entries on top of the table's current entries.
// Same-key overrides replace defaults, new keys are added.
func (t *Table) Merge(o *Overrides) {
	for code, entry := range o.Surface {
		t.surface[code] = entry
	}
	for code, entry := range o.Vegetation {
		t.vegetation[code] = entry
	}
}

func copyEntries(src map[string]domain.ManningEntry) map[string]domain.ManningEntry {
	dst := make(map[string]domain.ManningEntry, len(src))
	for code, entry := range src {
		dst[code] = entry
	}
	return dst
}
