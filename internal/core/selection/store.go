// Package selection holds the per-session working set of orders the user
// has chosen to invoice together.
//
// Derived values (count, total amount, membership) are recomputed from the
// current set on every read. The set is small — a page of orders at most —
// so there is no cached aggregate that could go stale.
package selection

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jcmexdev/invoice-gateway/internal/core/domain/entity"
)

// Store tracks the selected orders of one session plus the order currently
// open in the detail view. Insertion order is preserved for display; it is
// irrelevant to correctness. All operations are synchronous and error-free:
// validating the orders themselves is the caller's responsibility.
//
// The store is mutex-guarded because HTTP handlers may touch the same
// session concurrently, even though the UI drives requests serially.
type Store struct {
	mu       sync.RWMutex
	selected []entity.Order
	current  *entity.Order
}

// NewStore returns an empty selection store.
func NewStore() *Store {
	return &Store{}
}

// Toggle inserts order into the selection, or removes it when an entry
// with the same ID is already present. Calling it twice with the same
// order returns the selection to its prior state. Current is untouched.
func (s *Store) Toggle(order entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(order.ID); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
		return
	}
	s.selected = append(s.selected, order)
}

// Deselect removes the entry with the given ID. Absent IDs are a no-op,
// not an error.
func (s *Store) Deselect(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(orderID); i >= 0 {
		s.selected = append(s.selected[:i], s.selected[i+1:]...)
	}
}

// Clear empties the selection unconditionally. Called after a successful
// invoice submission so the same orders cannot be resubmitted.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Count reports how many orders are selected.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// TotalAmount is the sum of Amount over the current selection.
func (s *Store) TotalAmount() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, order := range s.selected {
		total = total.Add(order.Amount)
	}
	return total
}

// IsSelected reports membership of an order ID in the selection.
func (s *Store) IsSelected(orderID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOf(orderID) >= 0
}

// SelectedOrderIDs returns the selected IDs in insertion order, used to
// build the invoicing payload.
func (s *Store) SelectedOrderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, len(s.selected))
	for i, order := range s.selected {
		ids[i] = order.ID
	}
	return ids
}

// Orders returns a snapshot of the selection in insertion order. The
// returned slice is a copy; mutating it does not affect the store.
func (s *Store) Orders() []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Order, len(s.selected))
	copy(out, s.selected)
	return out
}

// SetCurrent records the order open in the detail view, or clears it
// when order is nil. At most one current order exists per session.
func (s *Store) SetCurrent(order *entity.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if order == nil {
		s.current = nil
		return
	}
	cp := *order
	s.current = &cp
}

// Current returns the order open in the detail view, or nil.
func (s *Store) Current() *entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil
	}
	cp := *s.current
	return &cp
}

// indexOf requires the lock to be held.
func (s *Store) indexOf(orderID string) int {
	for i, order := range s.selected {
		if order.ID == orderID {
			return i
		}
	}
	return -1
}
