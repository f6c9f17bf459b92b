// Package report computes the category-totals summary over a user's
// transactions.
package report

import (
	"math"

	"github.com/in4matic/wallet-api/categories"
	"github.com/in4matic/wallet-api/models"
)

type CategoryTotal struct {
	Category string  `json:"category" example:"Products"`
	Sum      float64 `json:"sum" example:"320.50"`
	Color    string  `json:"color" example:"#FFD8D0"`
}

type Summary struct {
	TotalIncome   float64         `json:"totalIncome"`
	TotalExpenses float64         `json:"totalExpenses"`
	Difference    float64         `json:"difference"`
	Totals        []CategoryTotal `json:"totals"`
}

// Summarize aggregates the given transactions: headline income and expense
// totals are reported as absolute values, the difference keeps its sign, and
// Totals carries one absolute per-category sum for every catalog category in
// catalog order, including zeroes. Callers pass a pre-filtered slice when a
// month/year scope applies.
func Summarize(txs []models.Transaction) Summary {
	var income, expenses float64
	sums := make(map[string]float64)

	for _, tx := range txs {
		if tx.Category == categories.Income {
			income += tx.Amount
			continue
		}
		expenses += tx.Amount
		sums[tx.Category] += tx.Amount
	}

	catalog := categories.Catalog()
	totals := make([]CategoryTotal, 0, len(catalog))
	for _, c := range catalog {
		totals = append(totals, CategoryTotal{
			Category: c.Name,
			Sum:      math.Abs(sums[c.Name]),
			Color:    c.Color,
		})
	}

	return Summary{
		TotalIncome:   math.Abs(income),
		TotalExpenses: math.Abs(expenses),
		Difference:    income - expenses,
		Totals:        totals,
	}
}
