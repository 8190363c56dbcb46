package versions

import (
	"sort"
	"strings"

	"github.com/quotienthq/quotient/types"
)

// SearchResult pairs a matching version with its relevance score.
type SearchResult struct {
	Version types.Version
	Score   float64
}

// Field weights: a hit on the note outranks a hit on an item name.
const (
	noteWeight   = 3.0
	clientWeight = 2.0
	itemWeight   = 1.0
)

// Search finds versions whose note, client name, or item names contain
// the query, case-insensitively, ranked by weighted match count.
// An empty query matches nothing.
func (s *Store) Search(query string) []SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []SearchResult{}
	}

	var results []SearchResult
	for _, v := range s.versions {
		score := scoreVersion(v, query)
		if score == 0 {
			continue
		}
		results = append(results, SearchResult{Version: v.Clone(), Score: score})
	}

	// Highest score first; ties resolve to the newer version.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Version.Number > results[j].Version.Number
	})
	return results
}

func scoreVersion(v types.Version, query string) float64 {
	score := 0.0
	if strings.Contains(strings.ToLower(v.Note), query) {
		score += noteWeight
	}
	if strings.Contains(strings.ToLower(v.Client.Name), query) {
		score += clientWeight
	}
	for _, section := range [][]types.Row{v.MainItems, v.AdditionalItems} {
		for _, r := range section {
			if strings.Contains(strings.ToLower(r.Name), query) {
				score += itemWeight
			}
		}
	}
	return score
}
