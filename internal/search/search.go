// Package search filters the catalog by a free-text query over city names.
package search

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/citypaper/citypaper/internal/catalog"
)

// Filter returns the cities whose name contains query, ignoring case, in their
// original order. Only the name is matched, never the country or id.
// An empty query returns cities unchanged. A query with no match returns an
// empty, non-nil slice.
func Filter(cities []catalog.City, query string) []catalog.City {
	if query == "" {
		return cities
	}

	// A Caser keeps state; one per call keeps Filter safe for concurrent use.
	fold := cases.Fold()
	needle := fold.String(query)

	out := make([]catalog.City, 0, len(cities))
	for _, c := range cities {
		if strings.Contains(fold.String(c.Name), needle) {
			out = append(out, c)
		}
	}
	return out
}

// Result is the outcome of one query against the catalog.
type Result struct {
	Query  string
	Cities []catalog.City
	// Empty is set when the catalog has cities but none matched; callers show
	// a "no results" state instead of an empty grid.
	Empty bool
	// NoCatalog is set when the catalog itself has no cities.
	NoCatalog bool
}

// Filterer runs queries against a catalog store.
// It holds no query state; every call recomputes from the store.
type Filterer struct {
	store *catalog.Store
}

// NewFilterer creates a filterer over store.
func NewFilterer(store *catalog.Store) *Filterer {
	return &Filterer{store: store}
}

// Filter runs query against the whole catalog.
func (f *Filterer) Filter(query string) Result {
	cities := Filter(f.store.All(), query)
	return Result{
		Query:     query,
		Cities:    cities,
		Empty:     f.store.Len() > 0 && len(cities) == 0,
		NoCatalog: f.store.Len() == 0,
	}
}

// Closest suggests the catalog name nearest to query, for "did you mean" hints.
func (f *Filterer) Closest(query string) (Match, bool) {
	return Closest(f.store.All(), query)
}
