package search_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citypaper/citypaper/internal/catalog"
	"github.com/citypaper/citypaper/internal/search"
)

func cities(names ...string) []catalog.City {
	out := make([]catalog.City, len(names))
	for i, n := range names {
		out[i] = catalog.City{ID: strings.ToLower(n), Name: n, Country: "France"}
	}
	return out
}

func names(cs []catalog.City) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}

func TestFilter(t *testing.T) {
	all := cities("Paris", "Lyon", "Nice")

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"prefix", "par", []string{"Paris"}},
		{"upper case query", "PAR", []string{"Paris"}},
		{"infix", "yo", []string{"Lyon"}},
		{"shared letter keeps order", "i", []string{"Paris", "Nice"}},
		{"no match", "z", []string{}},
		{"whole name", "nice", []string{"Nice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(all, tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestFilter_EmptyQueryIsIdentity(t *testing.T) {
	all := cities("Paris", "Lyon", "Nice")
	assert.Equal(t, all, search.Filter(all, ""))
}

func TestFilter_MatchesNameOnly(t *testing.T) {
	all := []catalog.City{
		{ID: "nantes", Name: "Nantes", Country: "France"},
		{ID: "bern", Name: "Bern", Country: "Switzerland"},
	}

	assert.Empty(t, search.Filter(all, "france"))
	assert.Empty(t, search.Filter(all, "switz"))
	assert.Empty(t, search.Filter(all, "bern-id"))
}

func TestFilter_UnicodeCaseFolding(t *testing.T) {
	all := cities("Zürich", "São Paulo", "Łódź")

	assert.Equal(t, []string{"Zürich"}, names(search.Filter(all, "ZÜR")))
	assert.Equal(t, []string{"São Paulo"}, names(search.Filter(all, "SÃO")))
	assert.Equal(t, []string{"Łódź"}, names(search.Filter(all, "łÓ")))
}

func TestFilter_SubsequenceProperty(t *testing.T) {
	all := cities("Paris", "Lyon", "Nice", "Lille", "Marseille", "Toulouse", "Nantes", "Annecy")
	queries := []string{"", "a", "e", "lle", "N", "ou", "xyz", "ANN", "s"}

	for _, q := range queries {
		got := search.Filter(all, q)

		// Order-preserving subsequence of the catalog.
		j := 0
		for _, c := range got {
			for j < len(all) && all[j].ID != c.ID {
				j++
			}
			require.Less(t, j, len(all), "query %q: %s out of order", q, c.Name)
			j++
		}

		// Exactly the cities satisfying the predicate.
		in := map[string]bool{}
		for _, c := range got {
			in[c.ID] = true
		}
		for _, c := range all {
			matches := strings.Contains(strings.ToLower(c.Name), strings.ToLower(q))
			assert.Equal(t, matches, in[c.ID], "query %q, city %s", q, c.Name)
		}
	}
}

func TestFilterer_Result(t *testing.T) {
	store, err := catalog.New(cities("Paris", "Lyon", "Nice"))
	require.NoError(t, err)
	f := search.NewFilterer(store)

	r := f.Filter("par")
	assert.Equal(t, "par", r.Query)
	assert.Equal(t, []string{"Paris"}, names(r.Cities))
	assert.False(t, r.Empty)

	r = f.Filter("z")
	assert.Empty(t, r.Cities)
	assert.True(t, r.Empty, "no matches must be reported as empty")

	r = f.Filter("")
	assert.Equal(t, store.All(), r.Cities)
	assert.False(t, r.Empty)
	assert.False(t, r.NoCatalog)
}

func TestFilterer_EmptyCatalog(t *testing.T) {
	store, err := catalog.New(nil)
	require.NoError(t, err)

	f := search.NewFilterer(store)

	r := f.Filter("")
	assert.True(t, r.NoCatalog)
	assert.False(t, r.Empty, "an empty catalog is not a search with no matches")

	r = f.Filter("par")
	assert.True(t, r.NoCatalog)
	assert.False(t, r.Empty)
}
