package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// fuzzyMaxDistance is the largest edit distance still considered a match
// when resolving an item name argument.
const fuzzyMaxDistance = 2

// matchName resolves query against names without prompting: an exact match
// wins; otherwise a single close match (case-insensitive edit distance at
// most fuzzyMaxDistance) is accepted. Anything ambiguous reports no match
// so the caller can fall back to an interactive prompt.
func matchName(names []string, query string) (int, bool) {
	if query == "" {
		return 0, false
	}

	for i, name := range names {
		if name == query {
			return i, true
		}
	}

	queryLower := strings.ToLower(query)
	best := 0
	bestDist := fuzzyMaxDistance + 1
	ties := 0
	for i, name := range names {
		dist := levenshtein.ComputeDistance(queryLower, strings.ToLower(name))
		switch {
		case dist < bestDist:
			best, bestDist, ties = i, dist, 1
		case dist == bestDist:
			ties++
		}
	}

	if bestDist <= fuzzyMaxDistance && ties == 1 {
		return best, true
	}
	return 0, false
}
