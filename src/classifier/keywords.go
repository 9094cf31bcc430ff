package classifier

import (
	"regexp"
	"sort"
	"strings"
)

const maxKeywords = 8

var nonAlpha = regexp.MustCompile(`[^a-z\s]`)

// topKeywords extracts the most frequent 5+ letter tokens from the lowercased
// text. Ties keep first-occurrence order.
func topKeywords(lower string) []Keyword {
	cleaned := nonAlpha.ReplaceAllString(lower, "")

	freq := make(map[string]int)
	order := []string{}
	for _, w := range strings.Fields(cleaned) {
		if len(w) <= 4 {
			continue
		}
		if _, seen := freq[w]; !seen {
			order = append(order, w)
		}
		freq[w]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return freq[order[i]] > freq[order[j]]
	})
	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}

	keywords := make([]Keyword, 0, len(order))
	for _, w := range order {
		keywords = append(keywords, Keyword{Word: w, Score: float64(freq[w])})
	}
	return keywords
}
