package cart

import (
	"sync"

	"foodcourt/internal/domain"
)

// Entry is one selected item together with its quantity. The persisted
// selection is an ordered list of entries rather than a bare map so that
// the order items were first added survives a round trip through storage.
type Entry struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// SelectionStore tracks the in-progress, per-visit choice of items and
// quantities before the user confirms a cart. Quantities are always
// positive: removing the last unit deletes the entry instead of keeping
// a zero.
type SelectionStore struct {
	mu    sync.Mutex
	qty   map[string]int
	order []string
}

func NewSelectionStore() *SelectionStore {
	return &SelectionStore{qty: make(map[string]int)}
}

// Restore rebuilds a store from persisted entries. Entries with a
// non-positive quantity are dropped rather than restored.
func Restore(entries []Entry) *SelectionStore {
	s := NewSelectionStore()
	for _, e := range entries {
		if e.Qty <= 0 {
			continue
		}
		if _, ok := s.qty[e.ID]; !ok {
			s.order = append(s.order, e.ID)
		}
		s.qty[e.ID] += e.Qty
	}
	return s
}

// Add increments the quantity for an item, inserting it at quantity 1
// when absent. There is no upper bound.
func (s *SelectionStore) Add(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.qty[id]; !ok {
		s.order = append(s.order, id)
	}
	s.qty[id]++
}

// Remove decrements the quantity for an item, deleting the entry when
// the quantity would drop to zero or below. Removing an unknown id is a
// no-op.
func (s *SelectionStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.qty[id]
	if !ok {
		return
	}
	if q > 1 {
		s.qty[id] = q - 1
		return
	}
	delete(s.qty, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *SelectionStore) Quantity(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qty[id]
}

func (s *SelectionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.qty)
}

// TotalItems is the sum of all selected quantities.
func (s *SelectionStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, q := range s.qty {
		total += q
	}
	return total
}

// Entries snapshots the selection in the order items were first added.
func (s *SelectionStore) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		entries = append(entries, Entry{ID: id, Qty: s.qty[id]})
	}
	return entries
}

// TotalCost sums quantity times unit price over the selection, resolving
// each id through the supplied catalog lookup. Ids the lookup does not
// know contribute nothing.
func (s *SelectionStore) TotalCost(lookup func(id string) (domain.FoodItem, bool)) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for id, q := range s.qty {
		if item, ok := lookup(id); ok {
			total += item.Price * float64(q)
		}
	}
	return total
}
