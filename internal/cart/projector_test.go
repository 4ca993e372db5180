package cart

import (
	"testing"

	"foodcourt/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProjectEmptySelection(t *testing.T) {
	lineItems := Project(nil, lookupFixture)

	assert.NotNil(t, lineItems)
	assert.Empty(t, lineItems)
}

func TestProjectResolvesCatalogFields(t *testing.T) {
	entries := []Entry{{ID: "1", Qty: 2}}

	lineItems := Project(entries, lookupFixture)

	assert.Len(t, lineItems, 1)
	assert.Equal(t, domain.CartLineItem{
		ID:         "1",
		Name:       "Paneer Tikka",
		Price:      12.99,
		Quantity:   2,
		Restaurant: "Desi Tadka",
	}, lineItems[0])
}

func TestProjectDropsUnknownIDs(t *testing.T) {
	entries := []Entry{
		{ID: "1", Qty: 1},
		{ID: "999", Qty: 4},
		{ID: "5", Qty: 2},
	}

	lineItems := Project(entries, lookupFixture)

	assert.Len(t, lineItems, 2)
	assert.Equal(t, "1", lineItems[0].ID)
	assert.Equal(t, "5", lineItems[1].ID)
}

func TestProjectPreservesEntryOrder(t *testing.T) {
	entries := []Entry{
		{ID: "5", Qty: 1},
		{ID: "2", Qty: 1},
		{ID: "1", Qty: 1},
	}

	lineItems := Project(entries, lookupFixture)

	ids := []string{}
	for _, item := range lineItems {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"5", "2", "1"}, ids)
}
