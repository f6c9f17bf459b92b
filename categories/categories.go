// Package categories holds the fixed expense-category catalog and the
// synthetic Income category used for income transactions.
package categories

// Income is the category every income transaction is stored under,
// regardless of what the client submitted.
const Income = "Income"

// Category is one catalog entry: a display name and its chart color.
type Category struct {
	Name  string `json:"category" example:"Products"`
	Color string `json:"color" example:"#FFD8D0"`
}

// catalog is the process-wide immutable category table. Order matters:
// aggregation reports categories in this order.
var catalog = []Category{
	{Name: "Main expenses", Color: "#FED057"},
	{Name: "Products", Color: "#FFD8D0"},
	{Name: "Car", Color: "#FD9498"},
	{Name: "Self care", Color: "#C5BAFF"},
	{Name: "Child care", Color: "#6E78E8"},
	{Name: "Household products", Color: "#4A56E2"},
	{Name: "Education", Color: "#81E1FF"},
	{Name: "Leisure", Color: "#24CCA7"},
	{Name: "Other expenses", Color: "#00AD84"},
	{Name: "Entertainment", Color: "#744CBC"},
}

// Catalog returns a copy of the catalog so callers cannot mutate it.
func Catalog() []Category {
	out := make([]Category, len(catalog))
	copy(out, catalog)
	return out
}

// IsValid reports whether name is an allowed transaction category: either
// Income or a catalog entry.
func IsValid(name string) bool {
	if name == Income {
		return true
	}
	for _, c := range catalog {
		if c.Name == name {
			return true
		}
	}
	return false
}
