package manning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/sections-go/internal/domain"
)

func TestNew_Defaults(t *testing.T) {
	table := New()

	entry, ok := table.Surface("AS")
	require.True(t, ok)
	assert.Equal(t, "tarmacadam", entry.Name)
	assert.Equal(t, 0.016, entry.Manning)

	entry, ok = table.Vegetation("RE")
	require.True(t, ok)
	assert.Equal(t, "Reeds", entry.Name)
	assert.Equal(t, 0.1, entry.Manning)
}

func TestNew_NoVegetationHasZeroCoefficient(t *testing.T) {
	table := New()

	entry, ok := table.Vegetation(NoVegetationCode)

	require.True(t, ok)
	assert.Empty(t, entry.Name)
	assert.Zero(t, entry.Manning)
}

func TestTable_UnknownCode(t *testing.T) {
	table := New()

	_, ok := table.Surface("ZZ")
	assert.False(t, ok)

	_, ok = table.Vegetation("ZZ")
	assert.False(t, ok)
}

func TestTable_Lookup(t *testing.T) {
	table := New()

	entry, ok := table.Lookup(SetSurface, "GR")
	require.True(t, ok)
	assert.Equal(t, "gravel", entry.Name)

	entry, ok = table.Lookup(SetVegetation, "GS")
	require.True(t, ok)
	assert.Equal(t, "Grass", entry.Name)

	_, ok = table.Lookup(Set("bogus"), "GR")
	assert.False(t, ok)
}

func TestTable_CodeSetsAreIndependent(t *testing.T) {
	table := New()

	// GR is a surface code only, RE a vegetation code only.
	_, ok := table.Vegetation("GR")
	assert.False(t, ok)

	_, ok = table.Surface("RE")
	assert.False(t, ok)
}

func TestNew_ReturnsIndependentCopies(t *testing.T) {
	a := New()
	b := New()

	a.surface["AS"] = domain.ManningEntry{Name: "patched", Manning: 9.9}

	entry, ok := b.Surface("AS")
	require.True(t, ok)
	assert.Equal(t, 0.016, entry.Manning)
}
