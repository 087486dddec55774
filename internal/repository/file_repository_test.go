package repository_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepositoryRoundtrip(t *testing.T) {
	repo, err := repository.NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := t.Context()
	ownerID := gofakeit.UUID()

	saved := domain.Cart{
		OwnerID: ownerID,
		Items: []domain.LineItem{
			randomLineItem(1),
			randomLineItem(2),
		},
	}
	require.NoError(t, repo.SaveCart(ctx, saved))

	got, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	assert.Equal(t, ownerID, got.OwnerID)
	require.Len(t, got.Items, 2)
	for i, want := range saved.Items {
		assertLineItem(t, want, got.Items[i])
	}
}

func TestFileRepositorySaveReplaces(t *testing.T) {
	repo, err := repository.NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := t.Context()
	ownerID := gofakeit.UUID()

	require.NoError(t, repo.SaveCart(ctx, domain.Cart{
		OwnerID: ownerID,
		Items:   []domain.LineItem{randomLineItem(1), randomLineItem(2)},
	}))
	require.NoError(t, repo.SaveCart(ctx, domain.Cart{
		OwnerID: ownerID,
		Items:   []domain.LineItem{randomLineItem(3)},
	}))

	got, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)

	require.Len(t, got.Items, 1)
	assert.Equal(t, int64(3), got.Items[0].ProductID)
}

func TestFileRepositoryGetCart(t *testing.T) {
	dir := t.TempDir()
	repo, err := repository.NewFile(dir)
	require.NoError(t, err)

	ctx := t.Context()

	t.Run("missing owner yields empty cart", func(t *testing.T) {
		ownerID := gofakeit.UUID()

		got, err := repo.GetCart(ctx, ownerID)
		require.NoError(t, err)

		assert.Equal(t, ownerID, got.OwnerID)
		assert.Empty(t, got.Items)
	})

	t.Run("corrupt blob is an error for the caller to absorb", func(t *testing.T) {
		ownerID := gofakeit.UUID()
		path := filepath.Join(dir, ownerID+".json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := repo.GetCart(ctx, ownerID)
		assert.Error(t, err)
	})

	t.Run("unknown currency in blob is an error", func(t *testing.T) {
		ownerID := gofakeit.UUID()
		blob := `{"owner_id":"` + ownerID + `","items":[{"product_id":1,"title":"x","price_amount":"9","price_currency":"NOPE","quantity":1}]}`
		path := filepath.Join(dir, ownerID+".json")
		require.NoError(t, os.WriteFile(path, []byte(blob), 0o644))

		_, err := repo.GetCart(ctx, ownerID)
		assert.Error(t, err)
	})

	t.Run("empty owner ID: error", func(t *testing.T) {
		_, err := repo.GetCart(ctx, "")
		require.EqualError(t, err, "ownerID is empty")
	})
}

func TestFileRepositoryDeleteCart(t *testing.T) {
	repo, err := repository.NewFile(t.TempDir())
	require.NoError(t, err)

	ctx := t.Context()
	ownerID := gofakeit.UUID()

	deleted, err := repo.DeleteCart(ctx, ownerID)
	require.NoError(t, err)
	assert.False(t, deleted)

	require.NoError(t, repo.SaveCart(ctx, domain.Cart{
		OwnerID: ownerID,
		Items:   []domain.LineItem{randomLineItem(1)},
	}))

	deleted, err = repo.DeleteCart(ctx, ownerID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := repo.GetCart(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, got.Items)
}

func randomLineItem(productID int64) domain.LineItem {
	price := randomMoney()
	quantity := int64(gofakeit.Number(1, 5))

	return domain.LineItem{
		ProductID: productID,
		Title:     gofakeit.ProductName(),
		Image:     gofakeit.URL(),
		Category:  gofakeit.ProductCategory(),
		Price:     price,
		Quantity:  quantity,
		LineTotal: price.Mul(quantity),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
