package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"foodcourt/internal/cart"
	"foodcourt/internal/domain"
)

var ErrEmptyCart = errors.New("cart is empty")

// DeliveryFee is charged on top of the cart subtotal at checkout.
const DeliveryFee = 0.0

// Storage key names. The value under the selection key is the ordered
// list of selected entries; the value under the cart key is the
// projected, checkout-ready line-item list. Both are scoped per session
// so that selections made while browsing different hotels cannot
// overwrite each other.
const (
	selectionKeyName = "cartItems"
	cartKeyName      = "cartItemsArray"
)

func selectionKey(session string) string { return selectionKeyName + ":" + session }
func cartKey(session string) string      { return cartKeyName + ":" + session }

// CartService is the persistence bridge between the selection store, the
// checkout-ready cart and durable storage, plus the cart screen's own
// mutation rules. Reads swallow failures and fall back to empty state;
// writes go through the write queue and are never awaited.
type CartService struct {
	storage CartStorage
	writes  CartWriteQueue
	catalog CatalogLookup
}

func NewCartService(storage CartStorage, writes CartWriteQueue, catalog CatalogLookup) *CartService {
	return &CartService{storage: storage, writes: writes, catalog: catalog}
}

// readKey resolves a key through the pending-write overlay first, then
// durable storage, so a session always reads its own queued writes.
func (s *CartService) readKey(ctx context.Context, key string) (string, bool) {
	if value, deleted, ok := s.writes.Latest(key); ok {
		if deleted {
			return "", false
		}
		return value, true
	}
	raw, ok, err := s.storage.Get(ctx, key)
	if err != nil {
		log.Printf("[cart] error reading %q: %v", key, err)
		return "", false
	}
	return raw, ok
}

// LoadSelection rehydrates the in-progress selection for a session. A
// missing or malformed stored value reads as an empty selection.
func (s *CartService) LoadSelection(ctx context.Context, session string) *cart.SelectionStore {
	raw, ok := s.readKey(ctx, selectionKey(session))
	if !ok {
		return cart.NewSelectionStore()
	}
	var entries []cart.Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		log.Printf("[cart] discarding malformed stored selection: %v", err)
		return cart.NewSelectionStore()
	}
	return cart.Restore(entries)
}

func (s *CartService) saveSelection(session string, sel *cart.SelectionStore) {
	payload, err := json.Marshal(sel.Entries())
	if err != nil {
		log.Printf("[cart] error encoding selection: %v", err)
		return
	}
	s.writes.Enqueue(selectionKey(session), string(payload))
}

func (s *CartService) AddItem(ctx context.Context, session, itemID string) *cart.SelectionStore {
	sel := s.LoadSelection(ctx, session)
	sel.Add(itemID)
	s.saveSelection(session, sel)
	return sel
}

func (s *CartService) RemoveItem(ctx context.Context, session, itemID string) *cart.SelectionStore {
	sel := s.LoadSelection(ctx, session)
	sel.Remove(itemID)
	s.saveSelection(session, sel)
	return sel
}

func (s *CartService) SelectionTotal(sel *cart.SelectionStore) float64 {
	return sel.TotalCost(s.catalog.FindItem)
}

// ViewCart returns the checkout-ready cart. When the caller supplies an
// explicit line-item list (the hotel screen navigating over with a fresh
// projection) it is adopted and persisted immediately, overwriting any
// prior cart; otherwise the previously persisted cart is loaded.
func (s *CartService) ViewCart(ctx context.Context, session string, supplied []domain.CartLineItem) []domain.CartLineItem {
	if supplied != nil {
		s.saveCart(session, supplied)
		return supplied
	}
	return s.loadCart(ctx, session)
}

// ProjectSelection converts the session's current selection into line
// items, adopts the result as the cart and persists it.
func (s *CartService) ProjectSelection(ctx context.Context, session string) []domain.CartLineItem {
	sel := s.LoadSelection(ctx, session)
	lineItems := cart.Project(sel.Entries(), s.catalog.FindItem)
	s.saveCart(session, lineItems)
	return lineItems
}

func (s *CartService) loadCart(ctx context.Context, session string) []domain.CartLineItem {
	raw, ok := s.readKey(ctx, cartKey(session))
	if !ok {
		return []domain.CartLineItem{}
	}
	var lineItems []domain.CartLineItem
	if err := json.Unmarshal([]byte(raw), &lineItems); err != nil {
		log.Printf("[cart] discarding malformed stored cart: %v", err)
		return []domain.CartLineItem{}
	}
	return lineItems
}

func (s *CartService) saveCart(session string, lineItems []domain.CartLineItem) {
	payload, err := json.Marshal(lineItems)
	if err != nil {
		log.Printf("[cart] error encoding cart: %v", err)
		return
	}
	s.writes.Enqueue(cartKey(session), string(payload))
}

// UpdateQuantity adjusts one line item's quantity by delta. The quantity
// is clamped at 1: a decrement that would drop below 1 leaves the item
// unchanged. Removal only ever happens through RemoveLineItem.
func (s *CartService) UpdateQuantity(ctx context.Context, session, itemID string, delta int) []domain.CartLineItem {
	lineItems := s.loadCart(ctx, session)
	for i := range lineItems {
		if lineItems[i].ID == itemID {
			newQuantity := lineItems[i].Quantity + delta
			if newQuantity < 1 {
				break
			}
			lineItems[i].Quantity = newQuantity
			break
		}
	}
	s.saveCart(session, lineItems)
	return lineItems
}

// RemoveLineItem deletes a line item outright. Removing the last item
// clears the cart from storage entirely, legacy selection key included,
// so an emptied cart does not resurrect on the next load.
func (s *CartService) RemoveLineItem(ctx context.Context, session, itemID string) []domain.CartLineItem {
	lineItems := s.loadCart(ctx, session)
	remaining := lineItems[:0]
	for _, item := range lineItems {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == 0 {
		s.ClearCart(session)
		return []domain.CartLineItem{}
	}
	s.saveCart(session, remaining)
	return remaining
}

// Checkout computes subtotal plus delivery fee over the persisted cart.
// Only the total moves forward to payment, never the line items.
func (s *CartService) Checkout(ctx context.Context, session string) (float64, error) {
	lineItems := s.loadCart(ctx, session)
	if len(lineItems) == 0 {
		return 0, ErrEmptyCart
	}
	var subtotal float64
	for _, item := range lineItems {
		subtotal += item.Price * float64(item.Quantity)
	}
	return subtotal + DeliveryFee, nil
}

func (s *CartService) ClearCart(session string) {
	s.writes.EnqueueDelete(cartKey(session), selectionKey(session))
}

var _ CartServiceInterface = (*CartService)(nil)
