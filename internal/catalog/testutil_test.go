package catalog

import (
	"strings"
	"testing"
)

func city(name string) City {
	return City{
		ID:      lowerID(name),
		Name:    name,
		Country: "France",
		Image:   "https://example.com/" + lowerID(name) + ".jpg",
	}
}

func lowerID(name string) string {
	return strings.ToLower(name) + "-id"
}

func newTestStore(t *testing.T, names ...string) *Store {
	t.Helper()
	cities := make([]City, 0, len(names))
	for _, n := range names {
		cities = append(cities, city(n))
	}
	s, err := New(cities)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s
}

func names(cities []City) []string {
	out := make([]string, len(cities))
	for i, c := range cities {
		out[i] = c.Name
	}
	return out
}
