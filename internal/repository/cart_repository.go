package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) (port.CartRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartRepository{pool: pool}, nil
}

type cartItemRow struct {
	ProductID     int64
	Title         string
	Image         string
	Category      string
	PriceAmount   string
	PriceCurrency string
	Quantity      int64
	CreatedAt     time.Time
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.pool.Query(ctx,
		`SELECT product_id, title, image, category,
		        price_amount::text, price_currency, quantity, created_at
		 FROM cart_items
		 WHERE owner_id = $1
		 ORDER BY position`, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pool.Query: %w", err)
	}

	dbRows, err := pgx.CollectRows(rows, pgx.RowToStructByPos[cartItemRow])
	if err != nil {
		return domain.Cart{}, fmt.Errorf("pgx.CollectRows: %w", err)
	}

	items, err := mapCartItemRowsToDomain(dbRows)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("mapCartItemRowsToDomain: %w", err)
	}

	return domain.Cart{
		OwnerID: ownerID,
		Items:   items,
	}, nil
}

// SaveCart replaces the whole cart in one transaction: delete the owner's
// rows, then insert the current items in ledger order.
func (r *cartRepository) SaveCart(ctx context.Context, cart domain.Cart) error {
	if cart.OwnerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		var zero struct{}

		if _, err := tx.Exec(ctx,
			`DELETE FROM cart_items WHERE owner_id = $1`, cart.OwnerID); err != nil {
			return zero, fmt.Errorf("tx.Exec delete: %w", err)
		}

		for position, item := range cart.Items {
			_, err := tx.Exec(ctx,
				`INSERT INTO cart_items
				   (owner_id, product_id, position, title, image, category,
				    price_amount, price_currency, quantity, created_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				cart.OwnerID, item.ProductID, position, item.Title, item.Image,
				item.Category, item.Price.Amount.String(), item.Price.Currency.String(),
				item.Quantity, item.CreatedAt)
			if err != nil {
				return zero, fmt.Errorf("tx.Exec insert: %w", err)
			}
		}

		return zero, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func (r *cartRepository) DeleteCart(ctx context.Context, ownerID string) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	tag, err := r.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE owner_id = $1`, ownerID)
	if err != nil {
		return false, fmt.Errorf("pool.Exec: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func mapCartItemRowToDomain(row cartItemRow) (domain.LineItem, error) {
	parsedCurrency, err := currency.ParseISO(row.PriceCurrency)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("currency[%s] is not valid: %w", row.PriceCurrency, err)
	}

	amount, err := decimal.NewFromString(row.PriceAmount)
	if err != nil {
		return domain.LineItem{}, fmt.Errorf("amount[%s] is not valid: %w", row.PriceAmount, err)
	}

	price := domain.NewMoney(amount, parsedCurrency)

	return domain.LineItem{
		ProductID: row.ProductID,
		Title:     row.Title,
		Image:     row.Image,
		Category:  row.Category,
		Price:     price,
		Quantity:  row.Quantity,
		LineTotal: price.Mul(row.Quantity),
		CreatedAt: row.CreatedAt,
	}, nil
}

func mapCartItemRowsToDomain(rows []cartItemRow) ([]domain.LineItem, error) {
	var items []domain.LineItem

	for _, row := range rows {
		item, err := mapCartItemRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapCartItemRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
