package tests

import (
	"context"
	"testing"

	"foodcourt/internal/catalog"
	"foodcourt/internal/domain"
	"foodcourt/internal/service"
	"foodcourt/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func setupCartService(t *testing.T) (*service.CartService, *storage.RedisKV, *storage.WriteQueue) {
	t.Helper()
	mr := miniredis.RunT(t)
	kv := storage.NewRedisKV(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	writes := storage.NewWriteQueue(kv)
	return service.NewCartService(kv, writes, catalog.NewSeed()), kv, writes
}

func TestSelectionRoundTrip(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "guest", "1")
	svc.AddItem(ctx, "guest", "1")
	svc.AddItem(ctx, "guest", "5")
	writes.Close()

	sel := svc.LoadSelection(ctx, "guest")
	assert.Equal(t, 2, sel.Quantity("1"))
	assert.Equal(t, 1, sel.Quantity("5"))
	assert.Equal(t, 3, sel.TotalItems())
	assert.InDelta(t, 2*12.99+4.99, svc.SelectionTotal(sel), 0.0001)
}

func TestSelectionIsScopedPerSession(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "alice", "1")
	svc.AddItem(ctx, "bob", "7")
	writes.Close()

	aliceSel := svc.LoadSelection(ctx, "alice")
	bobSel := svc.LoadSelection(ctx, "bob")
	assert.Equal(t, 1, aliceSel.Quantity("1"))
	assert.Equal(t, 0, aliceSel.Quantity("7"))
	assert.Equal(t, 1, bobSel.Quantity("7"))
}

func TestLoadSelectionMalformedValue(t *testing.T) {
	svc, kv, _ := setupCartService(t)
	ctx := context.Background()

	assert.NoError(t, kv.Set(ctx, "cartItems:guest", "{not json"))

	sel := svc.LoadSelection(ctx, "guest")
	assert.Equal(t, 0, sel.Len())
}

func TestProjectSelectionBuildsCart(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "guest", "1")
	svc.AddItem(ctx, "guest", "1")
	writes.Close()

	lineItems := svc.ProjectSelection(ctx, "guest")

	assert.Len(t, lineItems, 1)
	assert.Equal(t, "Butter Chicken", lineItems[0].Name)
	assert.Equal(t, 2, lineItems[0].Quantity)
	assert.Equal(t, "Desi Tadka", lineItems[0].Restaurant)
}

func TestViewCartAdoptsSuppliedItems(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	supplied := []domain.CartLineItem{
		{ID: "7", Name: "Biryani", Price: 14.99, Quantity: 1, Restaurant: "Spice Garden"},
	}
	result := svc.ViewCart(ctx, "guest", supplied)
	assert.Equal(t, supplied, result)
	writes.Close()

	loaded := svc.ViewCart(ctx, "guest", nil)
	assert.Equal(t, supplied, loaded)
}

func TestUpdateQuantityClampsAtOne(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	svc.ViewCart(ctx, "guest", []domain.CartLineItem{
		{ID: "1", Name: "Butter Chicken", Price: 12.99, Quantity: 1},
	})
	writes.Close()

	// A decrement at quantity 1 leaves the item alone.
	lineItems := svc.UpdateQuantity(ctx, "guest", "1", -1)
	assert.Len(t, lineItems, 1)
	assert.Equal(t, 1, lineItems[0].Quantity)

	lineItems = svc.UpdateQuantity(ctx, "guest", "1", 1)
	assert.Equal(t, 2, lineItems[0].Quantity)

	lineItems = svc.UpdateQuantity(ctx, "guest", "1", -1)
	assert.Equal(t, 1, lineItems[0].Quantity)
}

func TestRemoveLastLineItemClearsStorage(t *testing.T) {
	svc, kv, writes := setupCartService(t)
	ctx := context.Background()

	svc.AddItem(ctx, "guest", "1")
	svc.ProjectSelection(ctx, "guest")

	lineItems := svc.RemoveLineItem(ctx, "guest", "1")
	assert.Empty(t, lineItems)
	writes.Close()

	_, ok, err := kv.Get(ctx, "cartItems:guest")
	assert.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = kv.Get(ctx, "cartItemsArray:guest")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckoutTotals(t *testing.T) {
	svc, _, writes := setupCartService(t)
	ctx := context.Background()

	svc.ViewCart(ctx, "guest", []domain.CartLineItem{
		{ID: "1", Price: 12.99, Quantity: 2},
		{ID: "9", Price: 3.99, Quantity: 1},
	})
	writes.Close()

	total, err := svc.Checkout(ctx, "guest")
	assert.NoError(t, err)
	assert.InDelta(t, 2*12.99+3.99+service.DeliveryFee, total, 0.0001)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _, _ := setupCartService(t)

	_, err := svc.Checkout(context.Background(), "guest")
	assert.ErrorIs(t, err, service.ErrEmptyCart)
}
