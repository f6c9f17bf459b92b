package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/in4matic/wallet-api/categories"
	"github.com/in4matic/wallet-api/models"
)

func findTotal(t *testing.T, s Summary, category string) CategoryTotal {
	t.Helper()
	for _, ct := range s.Totals {
		if ct.Category == category {
			return ct
		}
	}
	t.Fatalf("category %q missing from totals", category)
	return CategoryTotal{}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)

	assert.Zero(t, s.TotalIncome)
	assert.Zero(t, s.TotalExpenses)
	assert.Zero(t, s.Difference)

	// Every catalog category shows up exactly once, zero-valued.
	catalog := categories.Catalog()
	assert.Len(t, s.Totals, len(catalog))
	for i, c := range catalog {
		assert.Equal(t, c.Name, s.Totals[i].Category)
		assert.Equal(t, c.Color, s.Totals[i].Color)
		assert.Zero(t, s.Totals[i].Sum)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]models.Transaction{
		{Amount: 100, Category: "Income", IsIncome: true, Date: "15-03-2024"},
		{Amount: 50, Category: "Income", IsIncome: true, Date: "02-03-2024"},
		{Amount: 30, Category: "Products", Date: "20-03-2024"},
		{Amount: 20, Category: "Products", Date: "21-03-2024"},
		{Amount: 40, Category: "Car", Date: "22-03-2024"},
	})

	assert.Equal(t, 150.0, s.TotalIncome)
	assert.Equal(t, 90.0, s.TotalExpenses)
	assert.Equal(t, 60.0, s.Difference)
	assert.Equal(t, s.TotalIncome-s.TotalExpenses, s.Difference)

	assert.Equal(t, 50.0, findTotal(t, s, "Products").Sum)
	assert.Equal(t, 40.0, findTotal(t, s, "Car").Sum)
	assert.Equal(t, 0.0, findTotal(t, s, "Education").Sum)
}

func TestSummarizeDifferenceKeepsSign(t *testing.T) {
	s := Summarize([]models.Transaction{
		{Amount: 100, Category: "Income", IsIncome: true},
		{Amount: 300, Category: "Leisure"},
	})

	assert.Equal(t, 100.0, s.TotalIncome)
	assert.Equal(t, 300.0, s.TotalExpenses)
	assert.Equal(t, -200.0, s.Difference)
}

// Headline totals and per-category sums are absolute values; only the
// difference preserves sign.
func TestSummarizeAbsoluteTotals(t *testing.T) {
	s := Summarize([]models.Transaction{
		{Amount: -80, Category: "Car"},
	})

	assert.Equal(t, 80.0, s.TotalExpenses)
	assert.Equal(t, 80.0, findTotal(t, s, "Car").Sum)
	assert.Equal(t, 80.0, s.Difference)
}

func TestSummarizeCatalogOrder(t *testing.T) {
	s := Summarize([]models.Transaction{
		{Amount: 10, Category: "Entertainment"},
		{Amount: 10, Category: "Main expenses"},
	})

	catalog := categories.Catalog()
	for i := range catalog {
		assert.Equal(t, catalog[i].Name, s.Totals[i].Category)
	}
}
