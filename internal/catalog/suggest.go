package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// suggestCutoff is the normalized edit-distance ratio above which a
// candidate is considered unrelated to the query.
const suggestCutoff = 0.5

// Suggest proposes a display name close to a query that matched nothing,
// scanning asset and project names in both locales. ok is false when no
// candidate is close enough.
func (c *Catalog) Suggest(query string) (suggestion string, ok bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return "", false
	}

	best := ""
	bestRatio := suggestCutoff
	consider := func(name string) {
		candidate := strings.TrimSpace(name)
		if candidate == "" {
			return
		}
		// The distance is in runes, so the normalizing length must be too,
		// or multi-byte names get an inflated denominator.
		dist := levenshtein.ComputeDistance(strings.ToLower(candidate), q)
		longest := utf8.RuneCountInString(candidate)
		if n := utf8.RuneCountInString(q); n > longest {
			longest = n
		}
		ratio := float64(dist) / float64(longest)
		if ratio < bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}

	for _, a := range c.assets {
		consider(a.Name.EN)
		consider(a.Name.JA)
	}
	for _, p := range c.projects {
		consider(p.Name.EN)
		consider(p.Name.JA)
	}
	return best, best != ""
}
