package cart

import "foodcourt/internal/domain"

// Project turns selection entries into the checkout-facing line items,
// resolving each id through the catalog lookup. Ids with no catalog
// match are silently dropped. Output order follows the input order,
// which is the order items were first added. Pure: no side effects.
func Project(entries []Entry, lookup func(id string) (domain.FoodItem, bool)) []domain.CartLineItem {
	lineItems := []domain.CartLineItem{}
	for _, e := range entries {
		item, ok := lookup(e.ID)
		if !ok {
			continue
		}
		lineItems = append(lineItems, domain.CartLineItem{
			ID:         e.ID,
			Name:       item.Name,
			Price:      item.Price,
			Quantity:   e.Qty,
			Image:      item.Image,
			Restaurant: item.Restaurant,
		})
	}
	return lineItems
}
