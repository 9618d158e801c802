package cart

import (
	"sync"

	domartwork "example.com/gallery-storefront/internal/domain/artwork"
	domcart "example.com/gallery-storefront/internal/domain/cart"
)

// Observer receives a copy of the cart after every mutation.
type Observer func(lines []domcart.Line, total float64)

// Store is the sole owner and mutator of one session's cart. Lines keep
// insertion order for display; the index gives O(1) lookup by artwork ID.
// All mutations are atomic under the mutex, and the total is recomputed from
// the current lines on every read rather than stored.
type Store struct {
	mu    sync.Mutex
	lines []*domcart.Line
	index map[int64]*domcart.Line
	subs  map[int]Observer
	subID int
}

func NewStore() *Store {
	return &Store{
		index: make(map[int64]*domcart.Line),
		subs:  make(map[int]Observer),
	}
}

// Add puts one unit of the artwork in the cart: an existing line has its
// quantity incremented by 1, otherwise a new line is appended with quantity 1.
func (s *Store) Add(a domartwork.Artwork) {
	s.mu.Lock()
	if line, ok := s.index[a.ID]; ok {
		line.Quantity++
	} else {
		line := &domcart.Line{Artwork: a, Quantity: 1}
		s.lines = append(s.lines, line)
		s.index[a.ID] = line
	}
	s.notifyLocked()
}

// Remove deletes the line for the artwork ID. Removing an absent line is a
// no-op, not an error.
func (s *Store) Remove(artworkID int64) {
	s.mu.Lock()
	if !s.removeLocked(artworkID) {
		s.mu.Unlock()
		return
	}
	s.notifyLocked()
}

// UpdateQuantity sets the line's quantity to exactly quantity. A quantity of
// zero or less removes the line; an absent line is left alone.
func (s *Store) UpdateQuantity(artworkID int64, quantity int64) {
	s.mu.Lock()
	if quantity <= 0 {
		if !s.removeLocked(artworkID) {
			s.mu.Unlock()
			return
		}
		s.notifyLocked()
		return
	}
	line, ok := s.index[artworkID]
	if !ok {
		s.mu.Unlock()
		return
	}
	line.Quantity = quantity
	s.notifyLocked()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.clearLocked()
	s.notifyLocked()
}

// Drain atomically returns the current lines and total and empties the cart.
// Checkout uses it so confirmation generation and the clear can never observe
// a half-cleared cart.
func (s *Store) Drain() ([]domcart.Line, float64) {
	s.mu.Lock()
	lines := s.snapshotLocked()
	s.clearLocked()
	s.notifyLocked()
	return lines, domcart.Total(lines)
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []domcart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Total is derived fresh from the current lines on every call.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, line := range s.lines {
		total += line.Subtotal()
	}
	return total
}

// Subscribe registers an observer and returns its unsubscribe func.
func (s *Store) Subscribe(fn Observer) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.subID
	s.subID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) removeLocked(artworkID int64) bool {
	if _, ok := s.index[artworkID]; !ok {
		return false
	}
	delete(s.index, artworkID)
	for i, line := range s.lines {
		if line.Artwork.ID == artworkID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}
	return true
}

func (s *Store) clearLocked() {
	s.lines = nil
	s.index = make(map[int64]*domcart.Line)
}

func (s *Store) snapshotLocked() []domcart.Line {
	lines := make([]domcart.Line, 0, len(s.lines))
	for _, line := range s.lines {
		lines = append(lines, *line)
	}
	return lines
}

// notifyLocked snapshots under the lock, releases it, and then invokes the
// observers, so an observer may call back into the store.
func (s *Store) notifyLocked() {
	lines := s.snapshotLocked()
	total := domcart.Total(lines)
	subs := make([]Observer, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()
	for _, fn := range subs {
		fn(lines, total)
	}
}
