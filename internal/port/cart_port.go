package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// CartRepository persists one cart blob per owner. Implementations are
// best-effort collaborators: the store absorbs and logs their errors, a
// failed save or load never fails a state transition.
type CartRepository interface {
	// GetCart loads the cart for ownerID; a missing owner yields an empty
	// cart, not an error.
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)

	// SaveCart replaces the persisted cart for cart.OwnerID in full.
	SaveCart(ctx context.Context, cart domain.Cart) error

	// DeleteCart removes the persisted cart, reporting whether one existed.
	DeleteCart(ctx context.Context, ownerID string) (bool, error)
}
