package prompt

import (
	"sort"
	"strings"
)

// matchScore reports whether query is a case-insensitive subsequence of
// label, with a score that ranks prefix matches and consecutive runs higher
// and slightly penalizes longer labels.
func matchScore(label, query string) (bool, int) {
	if query == "" {
		return true, 0
	}

	labelLower := strings.ToLower(label)
	queryLower := strings.ToLower(query)

	score := 0
	prev := -2
	from := 0
	for i := 0; i < len(queryLower); i++ {
		j := strings.IndexByte(labelLower[from:], queryLower[i])
		if j < 0 {
			return false, 0
		}
		idx := from + j

		score++
		if idx == prev+1 {
			score += 2
		}
		if idx == 0 {
			score += 3
		}

		prev = idx
		from = idx + 1
	}

	score -= (len(labelLower) - len(queryLower)) / 4
	return true, score
}

// filterOptions returns the indices of options matching query, best score
// first. Ties keep the original option order, so an empty query yields all
// indices unchanged.
func filterOptions(options []string, query string) []int {
	type scored struct {
		index int
		score int
	}

	matches := make([]scored, 0, len(options))
	for i, option := range options {
		if ok, score := matchScore(option, query); ok {
			matches = append(matches, scored{index: i, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]int, len(matches))
	for i, m := range matches {
		out[i] = m.index
	}
	return out
}
