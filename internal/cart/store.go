package cart

import "sync"

// Line is one product entry in a session's cart. A cart holds at most
// one line per product id; lines keep their insertion order.
type Line struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type Store struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewStore() *Store {
	return &Store{carts: make(map[string][]Line)}
}

// Add accumulates qty onto an existing line for the product, or appends
// a new line.
func (s *Store) Add(session string, productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			return
		}
	}
	s.carts[session] = append(lines, Line{ProductID: productID, Quantity: qty})
}

// SetQuantity replaces the quantity of the product's line. A quantity of
// zero or less removes the line. No-op if the line does not exist.
func (s *Store) SetQuantity(session string, productID, qty int) {
	if qty <= 0 {
		s.Remove(session, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			return
		}
	}
}

// Remove deletes the product's line if present. Removing an absent line
// is not an error.
func (s *Store) Remove(session string, productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[session]
	n := 0
	for _, l := range lines {
		if l.ProductID != productID {
			lines[n] = l
			n++
		}
	}
	s.carts[session] = lines[:n]
}

func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
}

// Lines returns a copy of the session's cart in insertion order.
func (s *Store) Lines(session string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lines := s.carts[session]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
