package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// fileRepository keeps one JSON blob per owner under a directory. It is the
// local key-value persistence for the cart: best-effort, no locking, callers
// absorb its errors.
type fileRepository struct {
	dir string
}

func NewFile(dir string) (port.CartRepository, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &fileRepository{dir: dir}, nil
}

type cartBlob struct {
	OwnerID string         `json:"owner_id"`
	Items   []cartItemBlob `json:"items"`
}

type cartItemBlob struct {
	ProductID     int64           `json:"product_id"`
	Title         string          `json:"title"`
	Image         string          `json:"image,omitempty"`
	Category      string          `json:"category,omitempty"`
	PriceAmount   decimal.Decimal `json:"price_amount"`
	PriceCurrency string          `json:"price_currency"`
	Quantity      int64           `json:"quantity"`
	CreatedAt     time.Time       `json:"created_at"`
}

// GetCart loads the owner's blob. A missing file is an empty cart; a blob
// that fails to parse is an error for the caller to absorb and log.
func (r *fileRepository) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	data, err := os.ReadFile(r.path(ownerID))
	if os.IsNotExist(err) {
		return domain.NewCart(ownerID), nil
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	var blob cartBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return domain.Cart{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	items, err := mapCartItemBlobsToDomain(blob.Items)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartItemBlobsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

func (r *fileRepository) SaveCart(_ context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	blob := cartBlob{
		OwnerID: cart.OwnerID,
		Items:   make([]cartItemBlob, 0, len(cart.Items)),
	}
	for _, item := range cart.Items {
		blob.Items = append(blob.Items, cartItemBlob{
			ProductID:     item.ProductID,
			Title:         item.Title,
			Image:         item.Image,
			Category:      item.Category,
			PriceAmount:   item.Price.Amount,
			PriceCurrency: item.Price.Currency.String(),
			Quantity:      item.Quantity,
			CreatedAt:     item.CreatedAt,
		})
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent: %w", err)
	}

	if err := os.WriteFile(r.path(cart.OwnerID), data, 0o644); err != nil {
		return fmt.Errorf("os.WriteFile: %w", err)
	}

	return nil
}

func (r *fileRepository) DeleteCart(_ context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	err := os.Remove(r.path(ownerID))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("os.Remove: %w", err)
	}

	return true, nil
}

func (r *fileRepository) path(ownerID string) string {
	return filepath.Join(r.dir, ownerID+".json")
}

func mapCartItemBlobToDomain(blob cartItemBlob) (domain.LineItem, error) {
	parsedCurrency, err := currency.ParseISO(blob.PriceCurrency)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("currency[%s] is not valid: %w", blob.PriceCurrency, err)
	}

	price := domain.NewMoney(blob.PriceAmount, parsedCurrency)

	return domain.LineItem{
		ProductID: blob.ProductID,
		Title:     blob.Title,
		Image:     blob.Image,
		Category:  blob.Category,
		Price:     price,
		Quantity:  blob.Quantity,
		LineTotal: price.Mul(blob.Quantity),
		CreatedAt: blob.CreatedAt,
	}, nil
}

func mapCartItemBlobsToDomain(blobs []cartItemBlob) ([]domain.LineItem, error) {
	var items []domain.LineItem

	for _, blob := range blobs {
		item, err := mapCartItemBlobToDomain(blob)
		if err != nil {
			return nil, fmt.Errorf("mapCartItemBlobToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
