// Package fuzzy ranks option names by edit distance so unknown options
// can carry "did you mean" suggestions.
package fuzzy

import (
	"sort"
	"strings"
)

// minInputLength keeps single-character cluster flags from matching
// every other short option.
const minInputLength = 2

// Match is one candidate within the distance limit.
type Match struct {
	Value    string
	Distance int
}

// Matches returns the candidates within maxDistance of input, closest
// first. Exact matches and duplicates are skipped; ties keep the
// candidates' order.
func Matches(input string, candidates []string, maxDistance int) []Match {
	if len(input) < minInputLength {
		return nil
	}

	input = strings.ToLower(input)
	seen := make(map[string]bool, len(candidates))
	var matches []Match
	for _, candidate := range candidates {
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true

		lower := strings.ToLower(candidate)
		if lower == input {
			continue
		}
		if d := distance(input, lower, maxDistance); d <= maxDistance {
			matches = append(matches, Match{Value: candidate, Distance: d})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return sharedPrefix(input, matches[i].Value) > sharedPrefix(input, matches[j].Value)
	})
	return matches
}

// Suggest returns at most limit candidate names, best first.
func Suggest(input string, candidates []string, maxDistance, limit int) []string {
	matches := Matches(input, candidates, maxDistance)
	if len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Value)
	}
	return out
}

// distance is the Levenshtein distance between a and b, or max+1 as
// soon as it is known to exceed max.
func distance(a, b string, max int) int {
	ra, rb := []rune(a), []rune(b)
	if abs(len(ra)-len(rb)) > max {
		return max + 1
	}
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	cur := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for i := 1; i <= len(rb); i++ {
		cur[0] = i
		rowMin := i
		for j := 1; j <= len(ra); j++ {
			cost := 1
			if ra[j-1] == rb[i-1] {
				cost = 0
			}
			cur[j] = min(cur[j-1]+1, prev[j]+1, prev[j-1]+cost)
			rowMin = min(rowMin, cur[j])
		}
		if rowMin > max {
			return max + 1
		}
		prev, cur = cur, prev
	}
	return prev[len(ra)]
}

func sharedPrefix(a, b string) int {
	b = strings.ToLower(b)
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
