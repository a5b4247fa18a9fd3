package search

import (
	"strings"
	"unicode"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/citypaper/citypaper/internal/catalog"
)

// MinSimilarity is the Jaro-Winkler score below which Closest reports no match.
const MinSimilarity = 0.70

// Match is a fuzzy suggestion for a query that found nothing.
type Match struct {
	City  catalog.City
	Score float64 // Jaro-Winkler similarity (0.0-1.0)
}

// Closest returns the city whose name is most similar to query.
// Names and query are compared without case, accents or punctuation, so
// "zurich" finds "Zürich". The match never influences Filter.
func Closest(cities []catalog.City, query string) (Match, bool) {
	q := CleanName(query)
	if q == "" {
		return Match{}, false
	}

	var best Match
	found := false
	for _, c := range cities {
		score := float64(edlib.JaroWinklerSimilarity(q, CleanName(c.Name)))
		if score > best.Score {
			best = Match{City: c, Score: score}
			found = true
		}
	}

	if !found || best.Score < MinSimilarity {
		return Match{}, false
	}
	return best, true
}

// CleanName normalizes a city name for fuzzy comparison.
// Lowercases, removes accents, turns hyphens and apostrophes into spaces,
// drops other punctuation and collapses whitespace.
func CleanName(name string) string {
	s := strings.ToLower(name)
	s = removeAccents(s)
	s = strings.NewReplacer("-", " ", "'", " ", "’", " ").Replace(s)

	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
