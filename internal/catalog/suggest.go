package catalog

// SuggestionCount is the fixed number of related cities shown on a detail page.
const SuggestionCount = 3

// SuggestionsFor returns the SuggestionCount cities that follow id in catalog order,
// wrapping around the end. Catalogs with SuggestionCount or fewer entries yield
// repeated records, and the city itself when n <= SuggestionCount; the slot count
// never shrinks.
// Returns ErrNotFound if id is not in the catalog.
func (s *Store) SuggestionsFor(id string) ([]City, error) {
	i, err := s.IndexOf(id)
	if err != nil {
		return nil, err
	}

	n := len(s.cities)
	out := make([]City, 0, SuggestionCount)
	for k := 1; k <= SuggestionCount; k++ {
		out = append(out, s.cities[(i+k)%n])
	}
	return out, nil
}
