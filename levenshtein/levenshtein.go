package levenshtein

import (
	"math"

	"github.com/katalvlaran/lvlstr/gate"
	"github.com/katalvlaran/lvlstr/rank"
	"github.com/katalvlaran/lvlstr/textseq"
)

// Distance computes the Levenshtein edit distance between a and b,
// counting Unicode scalar values as elements.
//
// With WithCutoff(c) the result is exactly min(true distance, c+1):
// the engine returns c+1 the moment the true distance provably exceeds
// c, via two independent prunes — a length-difference pre-check before
// any DP work, and a per-row minimum abort during it.
//
// Algorithm Outline (rolling two-row DP):
//  1. Swap so the longer input runs as rows; rows then size to the
//     shorter input + 1. The swap is unobservable (the metric is symmetric).
//  2. prev[j] = j for j = 0..m.
//  3. For i = 1..n: curr[0] = i, then
//     curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
//     with cost = 0 iff a[i-1] == b[j-1]; swap rows.
//  4. distance = prev[m].
//
// Complexity: O(n·m) time, O(min(n,m)) memory.
func Distance(a, b string, opts ...Option) (int, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	sa, sb := textseq.New(a), textseq.New(b)

	var d int
	gate.Run(o.HostLock, maxLen(sa, sb), ReleaseThreshold, func() {
		d = distance(sa, sb, o.Cutoff)
	})
	return d, nil
}

// Similarity computes the normalized edit similarity
// 1 - distance/max(len(a), len(b)), clamped to [0, 1].
// Both inputs empty is defined as 1.0.
//
// WithSimilarityCutoff(s) converts s into a distance-domain cutoff via
// ceil((1-s)·maxLen) — rounded up, so the bound is never too strict —
// and prunes with it; results at or above s are always exact. When an
// explicit WithCutoff is also set, the tighter bound wins.
func Similarity(a, b string, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	sa, sb := textseq.New(a), textseq.New(b)
	longest := maxLen(sa, sb)

	cut := o.Cutoff
	if o.SimilarityCutoff >= 0 {
		if dc := distCutoff(o.SimilarityCutoff, longest); cut == NoCutoff || dc < cut {
			cut = dc
		}
	}

	var s float64
	gate.Run(o.HostLock, longest, ReleaseThreshold, func() {
		s = similarity(sa, sb, cut)
	})
	return s, nil
}

// Match ranks candidates against pattern by normalized edit similarity:
// scores in the inclusive [MinScore, MaxScore] range are kept, sorted
// by score descending (ties by ascending scalar-value order of the
// candidate), and truncated to Limit entries.
//
// MinScore doubles as an internal distance cutoff so hopeless
// candidates abort early; this is a pure performance optimization and
// never changes which candidates pass the filter. Explicit WithCutoff /
// WithSimilarityCutoff options are not consulted here — they would
// distort reported scores.
//
// The candidate slice is never mutated.
func Match(pattern string, candidates []string, opts ...Option) ([]rank.Match, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p := textseq.New(pattern)

	scorer := func(candidate string) (float64, error) {
		c := textseq.New(candidate)
		longest := maxLen(p, c)
		cut := NoCutoff
		if o.MinScore > 0 {
			cut = distCutoff(o.MinScore, longest)
		}
		var s float64
		gate.Run(o.HostLock, longest, ReleaseThreshold, func() {
			s = similarity(p, c, cut)
		})
		return s, nil
	}

	return rank.Top(candidates, scorer,
		rank.WithScoreRange(o.MinScore, o.MaxScore),
		rank.WithLimit(o.Limit),
	)
}

// distance is the cutoff-aware DP core. cutoff == NoCutoff disables
// pruning; otherwise the result is exactly min(true distance, cutoff+1).
func distance(a, b textseq.Seq, cutoff int) int {
	// Run the longer sequence as rows so the rolling rows size to the
	// shorter input.
	if a.Len() < b.Len() {
		a, b = b, a
	}
	n, m := a.Len(), b.Len() // n >= m

	if cutoff >= 0 && n-m > cutoff {
		// Even m matches plus pure insertions cannot bridge the length gap.
		return cutoff + 1
	}
	if m == 0 {
		return n
	}

	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := 0; j <= m; j++ {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= m; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			v := min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
			curr[j] = v
			if v < rowMin {
				rowMin = v
			}
		}
		// Cell values never decrease down the DP, so once a whole row
		// exceeds the bound no later row can dip back under it.
		if cutoff >= 0 && rowMin > cutoff {
			return cutoff + 1
		}
		prev, curr = curr, prev
	}

	d := prev[m]
	if cutoff >= 0 && d > cutoff {
		return cutoff + 1
	}
	return d
}

// similarity maps a (possibly cutoff-clamped) distance into [0, 1].
func similarity(a, b textseq.Seq, cutoff int) float64 {
	longest := maxLen(a, b)
	if longest == 0 {
		return 1
	}
	d := distance(a, b, cutoff)
	return clamp01(1 - float64(d)/float64(longest))
}

// distCutoff converts a similarity-domain cutoff into the distance
// domain, rounding up so the similarity bound is never too strict.
func distCutoff(sim float64, longest int) int {
	return int(math.Ceil((1 - sim) * float64(longest)))
}

// clamp01 pins x into [0, 1] after floating-point composition.
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// maxLen returns the longer sequence's element count.
func maxLen(a, b textseq.Seq) int {
	if a.Len() > b.Len() {
		return a.Len()
	}
	return b.Len()
}

// min3 returns the minimum of three ints.
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
