// Package cart implements the cart ledger: pure reducers over domain.Cart.
// Every operation is total — malformed numeric input degrades to a defined
// default through the normalizer, nothing here returns an error.
package cart

import (
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ItemInput is the raw add-to-cart payload. Price and Quantity arrive as
// arbitrary values from the outside and are normalized before they touch a
// typed field.
type ItemInput struct {
	ProductID int64
	Title     string
	Image     string
	Category  string

	Price    any
	Quantity any
}

// FromProduct builds an ItemInput for a catalog product with a unit quantity.
func FromProduct(p domain.Product) ItemInput {
	return ItemInput{
		ProductID: p.ID,
		Title:     p.Title,
		Image:     p.Image,
		Category:  p.Category,
		Price:     p.Price,
		Quantity:  1,
	}
}

// AddItem appends a new line item, or, when the product is already in the
// ledger, increments its quantity by one. The requested quantity only applies
// to the first add; repeat adds model one click each.
func AddItem(c domain.Cart, input ItemInput) domain.Cart {
	c = cloneItems(c)

	for i := range c.Items {
		if c.Items[i].ProductID != input.ProductID {
			continue
		}

		c.Items[i].Quantity++
		c.Items[i].LineTotal = c.Items[i].Price.Mul(c.Items[i].Quantity)
		return c
	}

	// the ledger stays single-currency: raw amounts enter in the cart's unit
	price := domain.NewMoney(domain.Normalize(input.Price, decimal.Zero), c.Unit())
	quantity := domain.NormalizeQuantity(input.Quantity, 1)

	c.Items = append(c.Items, domain.LineItem{
		ProductID: input.ProductID,
		Title:     input.Title,
		Image:     input.Image,
		Category:  input.Category,
		Price:     price,
		Quantity:  quantity,
		LineTotal: price.Mul(quantity),
		CreatedAt: time.Now(),
	})

	return c
}

// RemoveItem drops the line item for productID; absent ids are a no-op.
func RemoveItem(c domain.Cart, productID int64) domain.Cart {
	items := make([]domain.LineItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}

	c.Items = items
	return c
}

// UpdateQuantity sets a line item's quantity. A quantity of zero or less is a
// no-op at this layer: a line never holds a non-positive quantity, callers
// route deletion through RemoveItem.
func UpdateQuantity(c domain.Cart, productID int64, quantity any) domain.Cart {
	q := domain.NormalizeQuantity(quantity, 1)
	if q <= 0 {
		return c
	}

	c = cloneItems(c)

	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		c.Items[i].Quantity = q
		c.Items[i].LineTotal = c.Items[i].Price.Mul(q)
		break
	}

	return c
}

// Clear empties the ledger and zeroes both totals.
func Clear(c domain.Cart) domain.Cart {
	return domain.NewCart(c.OwnerID)
}

// RecalculateTotals folds over the items, re-deriving every line total from
// its price and quantity before summing. It is idempotent and self-healing:
// a corrupted LineTotal is overwritten, not trusted.
func RecalculateTotals(c domain.Cart) domain.Cart {
	c = cloneItems(c)

	var totalQuantity int64
	totalAmount := domain.ZeroMoney(c.Unit())

	for i := range c.Items {
		quantity := domain.NormalizeQuantity(c.Items[i].Quantity, 0)
		if quantity < 0 {
			quantity = 0
		}

		c.Items[i].Quantity = quantity
		c.Items[i].LineTotal = c.Items[i].Price.Mul(quantity)

		totalQuantity += quantity
		totalAmount = totalAmount.Add(c.Items[i].LineTotal)
	}

	c.TotalQuantity = totalQuantity
	c.TotalAmount = totalAmount
	return c
}

// Reducers hand out value copies; the items slice still has to be cloned so
// a returned cart never aliases its input.
func cloneItems(c domain.Cart) domain.Cart {
	if c.Items != nil {
		c.Items = append([]domain.LineItem(nil), c.Items...)
	}
	return c
}
