// Package catalog supplies the static product catalog. Products are created
// once here and treated as read-only by every other package.
package catalog

import (
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Default returns the built-in catalog, in display order.
func Default() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Title:       "Running Shoes",
			Category:    "Clothing",
			Image:       "https://assets.myntassets.com/w_412/9394353/running-shoes.jpg",
			Description: "Comfortable running shoes perfect for your daily workout routines.",
			Price:       usd(99),
			Rating:      4.5,
			Reviews:     120,
		},
		{
			ID:          2,
			Title:       "Wireless Headphones",
			Category:    "Electronics",
			Image:       "https://images.stockcake.com/b7047247/wireless-headphones.jpg",
			Description: "Premium wireless headphones with noise cancellation and superior sound quality.",
			Price:       usd(149),
			Rating:      4.3,
			Reviews:     89,
		},
		{
			ID:          3,
			Title:       "Backpack",
			Category:    "Clothing",
			Image:       "https://assets.myntassets.com/w_412/10293735/backpack.jpg",
			Description: "Durable and spacious backpack ideal for travel and everyday use.",
			Price:       usd(129),
			Rating:      4.7,
			Reviews:     203,
		},
		{
			ID:          4,
			Title:       "Smartwatch",
			Category:    "Electronics",
			Image:       "https://www.jiomart.com/images/product/original/smartwatch.jpg",
			Description: "Advanced smartwatch with fitness tracking and smart notifications.",
			Price:       usd(249),
			Rating:      4.2,
			Reviews:     156,
		},
		{
			ID:          5,
			Title:       "Sunglasses",
			Category:    "Clothing",
			Image:       "https://assets.myntassets.com/w_400/2025/sunglasses.jpg",
			Description: "Stylish sunglasses with UV protection and premium frame quality.",
			Price:       usd(149),
			Rating:      4.4,
			Reviews:     78,
		},
		{
			ID:          6,
			Title:       "Digital Camera",
			Category:    "Electronics",
			Image:       "https://encrypted-tbn0.gstatic.com/images/digital-camera.jpg",
			Description: "Professional digital camera with high-resolution imaging capabilities.",
			Price:       usd(499),
			Rating:      4.8,
			Reviews:     267,
		},
		{
			ID:          7,
			Title:       "T-shirt",
			Category:    "Clothing",
			Image:       "https://files.cdn.printful.com/o/upload/t-shirt.png",
			Description: "Comfortable cotton t-shirt perfect for casual wear.",
			Price:       usd(29),
			Rating:      4.1,
			Reviews:     45,
		},
		{
			ID:          8,
			Title:       "Smartphone",
			Category:    "Electronics",
			Image:       "https://encrypted-tbn0.gstatic.com/images/smartphone.jpg",
			Description: "Flagship smartphone with an edge-to-edge display.",
			Price:       usd(699),
			Rating:      4.5,
			Reviews:     342,
		},
	}
}

// Categories derives the sidebar category list: "All" followed by each
// distinct product category in first-seen order.
func Categories(products []domain.Product) []string {
	categories := []string{domain.AllCategories}

	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}

	return categories
}

func usd(amount int64) domain.Money {
	return domain.NewMoney(decimal.NewFromInt(amount), domain.DefaultCurrency)
}
