package domain

// Product is a catalog row. The catalog is loaded once at startup and is
// read-only afterwards; nothing in this module mutates a Product.
type Product struct {
	ID          int64
	Title       string
	Category    string
	Image       string
	Description string

	Price Money

	Rating  float64
	Reviews int
}
