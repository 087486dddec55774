// Package filter derives the visible product subset from the catalog and the
// current criteria. It owns no state: Apply is a pure function, recomputed in
// full on every criteria change.
package filter

import (
	"strings"

	"github.com/nikolayk812/storefront/internal/domain"
)

// Apply runs the three-stage pipeline: text match, category membership,
// price range. Each stage is a pure filter over the previous stage's output,
// so the result is the intersection of the three predicates.
func Apply(catalog []domain.Product, c domain.Criteria) []domain.Product {
	filtered := bySearchTerm(catalog, c.SearchTerm)
	filtered = byCategory(filtered, c)
	return byPriceRange(filtered, c)
}

// bySearchTerm retains products whose title contains term, case-insensitively.
// An empty term passes everything through.
func bySearchTerm(products []domain.Product, term string) []domain.Product {
	if term == "" {
		return products
	}

	needle := strings.ToLower(term)

	return retain(products, func(p domain.Product) bool {
		return strings.Contains(strings.ToLower(p.Title), needle)
	})
}

func byCategory(products []domain.Product, c domain.Criteria) []domain.Product {
	if c.SelectsAll() {
		return products
	}

	return retain(products, func(p domain.Product) bool {
		return c.SelectsCategory(p.Category)
	})
}

// byPriceRange keeps products with PriceMin ≤ price ≤ PriceMax, inclusive on
// both bounds. A malformed range (min > max) retains nothing; the criteria
// store deliberately does not reorder it.
func byPriceRange(products []domain.Product, c domain.Criteria) []domain.Product {
	return retain(products, func(p domain.Product) bool {
		amount := p.Price.Amount
		return amount.GreaterThanOrEqual(c.PriceMin) && amount.LessThanOrEqual(c.PriceMax)
	})
}

func retain(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	result := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			result = append(result, p)
		}
	}
	return result
}
