package symtab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_SeedsBuiltins(t *testing.T) {
	tab := New()

	v, ok := tab.LookupValue("PI")
	assert.True(t, ok)
	assert.InDelta(t, math.Pi, v, 1e-12)

	v, ok = tab.LookupValue("e")
	assert.True(t, ok)
	assert.InDelta(t, math.E, v, 1e-12)

	fn, ok := tab.LookupFunction("sin")
	assert.True(t, ok)
	assert.InDelta(t, math.Sin(1), fn(1), 1e-12)

	assert.True(t, tab.IsFunction("SQRT"))
	assert.False(t, tab.IsFunction("PI"))
}

func TestLookup_CaseInsensitive(t *testing.T) {
	tab := New()
	_, ok := tab.LookupValue("Pi")
	assert.True(t, ok)
	_, ok = tab.LookupFunction("Cos")
	assert.True(t, ok)
}

func TestExists(t *testing.T) {
	tab := New()
	assert.True(t, tab.Exists("PI"))
	assert.False(t, tab.Exists("T"))
}

func TestInsertAndRemove_DynamicOverlay(t *testing.T) {
	tab := New()
	assert.False(t, tab.Exists("T"))

	tab.Insert("T", 3.5)
	assert.True(t, tab.Exists("T"))
	v, ok := tab.LookupValue("t")
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	tab.Remove("T")
	assert.False(t, tab.Exists("T"))
}

func TestRemove_LIFOByName(t *testing.T) {
	tab := New()
	tab.Insert("T", 1)
	tab.Insert("T", 2)

	v, _ := tab.LookupValue("T")
	assert.Equal(t, 2.0, v)

	tab.Remove("T")
	v, ok := tab.LookupValue("T")
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	tab.Remove("T")
	assert.False(t, tab.Exists("T"))
}

func TestClearDynamic(t *testing.T) {
	tab := New()
	tab.Insert("T", 1)
	tab.ClearDynamic()
	assert.False(t, tab.Exists("T"))
	assert.True(t, tab.Exists("PI"))
}

func TestLookupValue_RejectsFunctionEntries(t *testing.T) {
	tab := New()
	_, ok := tab.LookupValue("SIN")
	assert.False(t, ok)
}

func TestLookupFunction_RejectsValueEntries(t *testing.T) {
	tab := New()
	_, ok := tab.LookupFunction("PI")
	assert.False(t, ok)
}
