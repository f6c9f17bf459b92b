package categories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid(Income))
	assert.True(t, IsValid("Products"))
	assert.True(t, IsValid("Other expenses"))
	assert.False(t, IsValid("Groceries"))
	assert.False(t, IsValid("income"))
	assert.False(t, IsValid(""))
}

func TestCatalog(t *testing.T) {
	cat := Catalog()
	assert.Len(t, cat, 10)
	assert.Equal(t, "Main expenses", cat[0].Name)

	for _, c := range cat {
		assert.NotEmpty(t, c.Color, "category %s has no color", c.Name)
		assert.NotEqual(t, Income, c.Name, "Income is synthetic, not a catalog entry")
	}

	// Callers get a copy; mutating it must not leak into the catalog.
	cat[0].Name = "mutated"
	assert.Equal(t, "Main expenses", Catalog()[0].Name)
}
