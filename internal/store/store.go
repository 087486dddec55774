// Package store composes the catalog, the cart ledger and the filter criteria
// into one process-wide state tree. The Store's methods are the only mutation
// entry points; reads hand out snapshots the caller cannot use to reach back
// into the state.
package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/filter"
	"github.com/nikolayk812/storefront/internal/logger"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Store is single-owner and not safe for concurrent use: one logical actor
// issues operations, and each runs to completion before the next. Construct
// one instance per process or per test, never a package-level singleton.
type Store struct {
	ctx context.Context

	catalog  []domain.Product
	cart     domain.Cart
	criteria domain.Criteria

	// repo is optional best-effort persistence; its failures are logged
	// and absorbed, they never fail a state transition.
	repo port.CartRepository
	log  *logger.Logger
}

// New builds a store over a read-only catalog and restores the owner's cart
// from repo when one is configured. A corrupt or missing persisted cart
// degrades to an empty one.
func New(ctx context.Context, catalog []domain.Product, ownerID string, repo port.CartRepository, log *logger.Logger) *Store {
	if ownerID == "" {
		ownerID = uuid.NewString()
	}

	s := &Store{
		ctx:      ctx,
		catalog:  catalog,
		cart:     domain.NewCart(ownerID),
		criteria: domain.DefaultCriteria(),
		repo:     repo,
		log:      log,
	}

	s.restore()

	return s
}

func (s *Store) restore() {
	if s.repo == nil {
		return
	}

	restored, err := s.repo.GetCart(s.ctx, s.cart.OwnerID)
	if err != nil {
		s.log.Warn("cart restore failed, starting empty",
			zap.String("owner_id", s.cart.OwnerID), zap.Error(err))
		return
	}

	s.cart = cart.RecalculateTotals(restored)
}

// --- cart dispatch surface ---

func (s *Store) AddItem(input cart.ItemInput) {
	s.cart = cart.RecalculateTotals(cart.AddItem(s.cart, input))
	s.persist()
}

func (s *Store) RemoveItem(productID int64) {
	s.cart = cart.RecalculateTotals(cart.RemoveItem(s.cart, productID))
	s.persist()
}

func (s *Store) UpdateQuantity(productID int64, quantity any) {
	s.cart = cart.RecalculateTotals(cart.UpdateQuantity(s.cart, productID, quantity))
	s.persist()
}

func (s *Store) ClearCart() {
	s.cart = cart.Clear(s.cart)

	if s.repo != nil {
		if _, err := s.repo.DeleteCart(s.ctx, s.cart.OwnerID); err != nil {
			s.log.Warn("cart delete failed",
				zap.String("owner_id", s.cart.OwnerID), zap.Error(err))
		}
	}
}

func (s *Store) RecalculateTotals() {
	s.cart = cart.RecalculateTotals(s.cart)
}

func (s *Store) persist() {
	if s.repo == nil {
		return
	}

	if err := s.repo.SaveCart(s.ctx, s.cart); err != nil {
		s.log.Warn("cart save failed",
			zap.String("owner_id", s.cart.OwnerID), zap.Error(err))
	}
}

// --- filter dispatch surface ---

func (s *Store) SetSearchTerm(term string) {
	s.criteria.SearchTerm = term
}

func (s *Store) SetSelectedCategories(categories ...string) {
	s.criteria.Categories = append([]string(nil), categories...)
}

// SetPriceRange stores the bounds as given; keeping min ≤ max is the
// caller's responsibility, a malformed range is not reordered here.
func (s *Store) SetPriceRange(min, max decimal.Decimal) {
	s.criteria.PriceMin = min
	s.criteria.PriceMax = max
}

func (s *Store) SetSortBy(key string) {
	s.criteria.SortBy = key
}

func (s *Store) ClearFilters() {
	s.criteria = domain.DefaultCriteria()
}

// --- synchronous snapshot reads ---

func (s *Store) Cart() domain.Cart {
	c := s.cart
	if c.Items != nil {
		c.Items = append([]domain.LineItem(nil), c.Items...)
	}
	return c
}

func (s *Store) Criteria() domain.Criteria {
	c := s.criteria
	c.Categories = append([]string(nil), c.Categories...)
	return c
}

func (s *Store) Catalog() []domain.Product {
	return append([]domain.Product(nil), s.catalog...)
}

// Product looks a catalog product up by id.
func (s *Store) Product(productID int64) (domain.Product, bool) {
	for _, p := range s.catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}

// VisibleProducts derives the product subset matching the current criteria.
// It is recomputed in full on every call, never cached.
func (s *Store) VisibleProducts() []domain.Product {
	return filter.Apply(s.catalog, s.criteria)
}
