package match

import (
	"sort"
	"strings"
	"unicode"
)

// MinSimilarity is the lowest normalized similarity Suggest reports.
const MinSimilarity = 0.6

// Suggest returns up to limit candidates most similar to name, best first.
// Candidates equal to name are skipped; ties are broken alphabetically.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	normName := NormalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(normName, NormalizeIdent(c))
		if score < MinSimilarity {
			continue
		}

		ranked = append(ranked, scored{c, score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, r.name)
	}

	return res
}

// NormalizeIdent lower-cases s and drops '_', '-' and spaces, so that
// "customer_name", "CustomerName" and "customerName" normalize alike.
func NormalizeIdent(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Similarity is 1 - distance/maxLen: 1.0 for identical strings, 0.0 for
// completely different ones.
func Similarity(a, b string) float64 {
	maxLen := max(len([]rune(a)), len([]rune(b)))
	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(Levenshtein(a, b))/float64(maxLen)
}

// Levenshtein computes the edit distance between a and b over runes,
// keeping two rows of the matrix.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}
