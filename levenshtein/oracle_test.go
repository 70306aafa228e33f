package levenshtein_test

import (
	"sort"

	"github.com/katalvlaran/lvlstr/rank"
)

// This file holds the deliberately simple, unoptimized oracle used to
// validate the production engine: full-matrix DP, no cutoff pruning, no
// rolling rows. It exists only inside the test binary.

// naiveDistance computes the edit distance with a full (n+1)×(m+1) matrix.
func naiveDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n, m := len(ra), len(rb)
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 0; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			best := d[i-1][j] + 1
			if v := d[i][j-1] + 1; v < best {
				best = v
			}
			if v := d[i-1][j-1] + cost; v < best {
				best = v
			}
			d[i][j] = best
		}
	}
	return d[n][m]
}

// naiveSimilarity normalizes the naive distance into [0, 1].
func naiveSimilarity(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 1
	}
	return 1 - float64(naiveDistance(a, b))/float64(longest)
}

// naiveMatch is the brute-force ranking baseline: score everything with
// the naive metric, filter, sort, truncate. Tie-breaking compares the
// raw strings, which for UTF-8 coincides with scalar-value order.
func naiveMatch(pattern string, candidates []string, min, max float64, limit int) []rank.Match {
	kept := make([]rank.Match, 0, len(candidates))
	for _, c := range candidates {
		s := naiveSimilarity(pattern, c)
		if s >= min && s <= max {
			kept = append(kept, rank.Match{Candidate: c, Score: s})
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return kept[i].Candidate < kept[j].Candidate
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}
