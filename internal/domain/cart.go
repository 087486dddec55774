package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// TaxRate applies to the cart subtotal at checkout display time.
var TaxRate = decimal.RequireFromString("0.08")

type Cart struct {
	OwnerID string
	Items   []LineItem

	TotalQuantity int64
	TotalAmount   Money
}

// LineItem is one row of the cart ledger, keyed by ProductID. Product fields
// are snapshotted at add time so the row renders without a catalog lookup.
// LineTotal is always Price × Quantity; it is recomputed, never set directly.
type LineItem struct {
	ProductID int64
	Title     string
	Image     string
	Category  string

	Price     Money
	Quantity  int64
	LineTotal Money

	CreatedAt time.Time
}

func NewCart(ownerID string) Cart {
	return Cart{
		OwnerID:     ownerID,
		TotalAmount: ZeroMoney(DefaultCurrency),
	}
}

// Item returns the line item for a product id, if present.
func (c Cart) Item(productID int64) (LineItem, bool) {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item, true
		}
	}
	return LineItem{}, false
}

// Unit is the currency shared by all line items, DefaultCurrency when empty.
func (c Cart) Unit() currency.Unit {
	if len(c.Items) > 0 {
		return c.Items[0].Price.Currency
	}
	return DefaultCurrency
}

// Tax is derived on every read, never stored.
func (c Cart) Tax() Money {
	return Money{
		Amount:   c.TotalAmount.Amount.Mul(TaxRate),
		Currency: c.TotalAmount.Currency,
	}
}

func (c Cart) GrandTotal() Money {
	return c.TotalAmount.Add(c.Tax())
}
