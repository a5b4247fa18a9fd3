// Package catalog provides the read-only, ordered set of cities the site is built from.
package catalog

import "fmt"

// City is one catalog record. Records are loaded once and never mutated.
type City struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Country     string `json:"country"`
	Coordinates string `json:"coordinates"`
	Image       string `json:"image"`
}

// Store holds the catalog in its original order.
// It is never modified after New returns, so any number of goroutines may read it.
type Store struct {
	cities []City
	index  map[string]int
}

// New builds a store from cities, keeping their order.
// Every record needs a non-empty id and ids must be unique.
func New(cities []City) (*Store, error) {
	s := &Store{
		cities: make([]City, len(cities)),
		index:  make(map[string]int, len(cities)),
	}
	copy(s.cities, cities)

	for i, c := range s.cities {
		if c.ID == "" {
			return nil, fmt.Errorf("record %d (%q): %w", i, c.Name, ErrEmptyID)
		}
		if prev, ok := s.index[c.ID]; ok {
			return nil, fmt.Errorf("%q at %d and %d: %w", c.ID, prev, i, ErrDuplicateID)
		}
		s.index[c.ID] = i
	}
	return s, nil
}

// All returns every city in catalog order. The slice is a copy.
func (s *Store) All() []City {
	out := make([]City, len(s.cities))
	copy(out, s.cities)
	return out
}

// Len returns the number of cities.
func (s *Store) Len() int {
	return len(s.cities)
}

// At returns the city at position i. It panics if i is out of range, like a slice index.
func (s *Store) At(i int) City {
	return s.cities[i]
}

// ByID returns the city with the given id.
// Returns ErrNotFound if no record matches.
func (s *Store) ByID(id string) (City, error) {
	i, err := s.IndexOf(id)
	if err != nil {
		return City{}, err
	}
	return s.cities[i], nil
}

// IndexOf returns the position of id in catalog order.
// Returns ErrNotFound if no record matches.
func (s *Store) IndexOf(id string) (int, error) {
	i, ok := s.index[id]
	if !ok {
		return -1, fmt.Errorf("city %q: %w", id, ErrNotFound)
	}
	return i, nil
}
