package cart

import (
	"testing"

	"foodcourt/internal/domain"

	"github.com/stretchr/testify/assert"
)

func lookupFixture(id string) (domain.FoodItem, bool) {
	items := map[string]domain.FoodItem{
		"1": {ID: "1", Name: "Paneer Tikka", Price: 12.99, Restaurant: "Desi Tadka"},
		"2": {ID: "2", Name: "Butter Chicken", Price: 10.99, Restaurant: "Desi Tadka"},
		"5": {ID: "5", Name: "Masala Chai", Price: 4.99, Restaurant: "Brothers Cafe"},
	}
	item, ok := items[id]
	return item, ok
}

func TestSelectionAddAndRemove(t *testing.T) {
	s := NewSelectionStore()

	s.Add("1")
	s.Add("1")
	s.Add("2")
	assert.Equal(t, 2, s.Quantity("1"))
	assert.Equal(t, 1, s.Quantity("2"))
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 3, s.TotalItems())

	s.Remove("1")
	assert.Equal(t, 1, s.Quantity("1"))
	assert.Equal(t, 2, s.Len())

	// Removing the last unit deletes the entry rather than leaving a zero.
	s.Remove("1")
	assert.Equal(t, 0, s.Quantity("1"))
	assert.Equal(t, 1, s.Len())
}

func TestSelectionRemoveUnknownIsNoop(t *testing.T) {
	s := NewSelectionStore()
	s.Add("1")

	s.Remove("999")

	assert.Equal(t, 1, s.Quantity("1"))
	assert.Equal(t, 1, s.Len())
}

func TestSelectionEntriesKeepInsertionOrder(t *testing.T) {
	s := NewSelectionStore()
	s.Add("5")
	s.Add("1")
	s.Add("2")
	s.Add("1")

	entries := s.Entries()

	assert.Equal(t, []Entry{{ID: "5", Qty: 1}, {ID: "1", Qty: 2}, {ID: "2", Qty: 1}}, entries)
}

func TestSelectionOrderSurvivesRemoval(t *testing.T) {
	s := NewSelectionStore()
	s.Add("5")
	s.Add("1")
	s.Add("2")

	s.Remove("1")

	assert.Equal(t, []Entry{{ID: "5", Qty: 1}, {ID: "2", Qty: 1}}, s.Entries())
}

func TestRestoreDropsNonPositiveEntries(t *testing.T) {
	s := Restore([]Entry{
		{ID: "1", Qty: 2},
		{ID: "2", Qty: 0},
		{ID: "5", Qty: -3},
	})

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 2, s.Quantity("1"))
	assert.Equal(t, 0, s.Quantity("2"))
}

func TestSelectionTotalCost(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    float64
	}{
		{
			name:    "empty selection",
			entries: nil,
			want:    0,
		},
		{
			name:    "two of one item",
			entries: []Entry{{ID: "1", Qty: 2}},
			want:    25.98,
		},
		{
			name:    "mixed items",
			entries: []Entry{{ID: "1", Qty: 1}, {ID: "5", Qty: 3}},
			want:    12.99 + 3*4.99,
		},
		{
			name:    "unknown ids contribute nothing",
			entries: []Entry{{ID: "1", Qty: 1}, {ID: "999", Qty: 10}},
			want:    12.99,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			s := Restore(testCase.entries)
			assert.InDelta(t, testCase.want, s.TotalCost(lookupFixture), 0.0001)
		})
	}
}
