package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// AllCategories is the sentinel selection meaning "no category constraint".
const AllCategories = "All"

// Criteria is the mutable set of user-chosen constraints driving the visible
// product subset. The category selection is uniformly set-valued; a selection
// containing AllCategories, like an empty one, passes every product.
type Criteria struct {
	SearchTerm string
	Categories []string

	PriceMin decimal.Decimal
	PriceMax decimal.Decimal

	// SortBy is stored but not consumed by the filter pipeline yet.
	SortBy string
}

func DefaultCriteria() Criteria {
	return Criteria{
		SearchTerm: "",
		Categories: []string{AllCategories},
		PriceMin:   decimal.Zero,
		PriceMax:   decimal.NewFromInt(1000),
		SortBy:     "name",
	}
}

// SelectsAll reports whether the category stage is a pass-through.
func (c Criteria) SelectsAll() bool {
	return len(c.Categories) == 0 || slices.Contains(c.Categories, AllCategories)
}

// SelectsCategory reports whether a product category is in the selection.
func (c Criteria) SelectsCategory(category string) bool {
	return slices.Contains(c.Categories, category)
}
