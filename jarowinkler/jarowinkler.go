package jarowinkler

import (
	"github.com/katalvlaran/lvlstr/gate"
	"github.com/katalvlaran/lvlstr/rank"
	"github.com/katalvlaran/lvlstr/textseq"
)

// Jaro computes the raw Jaro similarity of a and b in [0, 1].
//
// Both inputs empty → 1.0; exactly one empty → 0.0. Otherwise:
//
//  1. window = max(0, ⌊max(n,m)/2⌋ - 1).
//  2. For each position i of a, scan b inside [i-window, i+window]
//     (clamped) for the first not-yet-matched equal element and claim
//     it. This greedy, order-preserving matching is the defined Jaro
//     behavior — it is NOT an optimal assignment, and on ambiguous
//     inputs an "improved" matching would produce different scores.
//  3. No matches → 0.0.
//  4. Transpositions: lay the matched elements out in a-position order
//     and in b-position order; t = number of ranks where the two
//     layouts disagree.
//  5. score = (m/n₁ + m/n₂ + (m - t/2)/m) / 3.
//
// Jaro takes no parameters and is a pure function; the gated entry
// points are Similarity, Distance, and Match.
func Jaro(a, b string) float64 {
	return jaro(textseq.New(a), textseq.New(b))
}

// Similarity computes the Jaro-Winkler similarity: the Jaro score
// boosted by the capped common prefix,
//
//	jaro + prefix·weight·(1 - jaro)
//
// clamped to a maximum of 1.0 (the raw formula can overshoot when
// weight·prefix exceeds 1). Defaults: weight 0.1, prefix cap 4.
func Similarity(a, b string, opts ...Option) (float64, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	sa, sb := textseq.New(a), textseq.New(b)

	var s float64
	gate.Run(o.HostLock, maxLen(sa, sb), ReleaseThreshold, func() {
		s = winkler(sa, sb, o.PrefixWeight, o.MaxPrefix)
	})
	return s, nil
}

// Distance computes the Jaro-Winkler distance, 1 - Similarity.
func Distance(a, b string, opts ...Option) (float64, error) {
	s, err := Similarity(a, b, opts...)
	if err != nil {
		return 0, err
	}
	return 1 - s, nil
}

// Match ranks candidates against pattern by Jaro-Winkler similarity:
// scores in the inclusive [MinScore, MaxScore] range are kept, sorted
// by score descending (ties by ascending scalar-value order of the
// candidate), and truncated to Limit entries.
//
// Unlike the edit-distance engine, no cutoff optimization applies —
// the metric is already near-linear. The candidate slice is never
// mutated.
func Match(pattern string, candidates []string, opts ...Option) ([]rank.Match, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	p := textseq.New(pattern)

	scorer := func(candidate string) (float64, error) {
		c := textseq.New(candidate)
		var s float64
		gate.Run(o.HostLock, maxLen(p, c), ReleaseThreshold, func() {
			s = winkler(p, c, o.PrefixWeight, o.MaxPrefix)
		})
		return s, nil
	}

	return rank.Top(candidates, scorer,
		rank.WithScoreRange(o.MinScore, o.MaxScore),
		rank.WithLimit(o.Limit),
	)
}

// jaro is the greedy windowed core over scalar-value sequences.
func jaro(a, b textseq.Seq) float64 {
	la, lb := a.Len(), b.Len()
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	bMatched := make([]bool, lb)
	// matched collects the matched elements in a-position order; the
	// b-position order falls out of scanning bMatched left to right.
	matched := make([]rune, 0, minInt(la, lb))

	for i := 0; i < la; i++ {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > lb {
			end = lb
		}
		for j := start; j < end; j++ {
			if !bMatched[j] && a[i] == b[j] {
				bMatched[j] = true
				matched = append(matched, a[i])
				break
			}
		}
	}

	m := len(matched)
	if m == 0 {
		return 0
	}

	// Transpositions: ranks where the a-ordered and b-ordered layouts
	// of the matched elements disagree.
	t := 0
	k := 0
	for j := 0; j < lb; j++ {
		if !bMatched[j] {
			continue
		}
		if matched[k] != b[j] {
			t++
		}
		k++
	}

	fm := float64(m)
	return (fm/float64(la) + fm/float64(lb) + (fm-float64(t)/2)/fm) / 3
}

// winkler applies the capped-prefix boost to the Jaro score and clamps.
func winkler(a, b textseq.Seq, weight float64, maxPrefix int) float64 {
	j := jaro(a, b)
	l := textseq.CommonPrefix(a, b, maxPrefix)
	s := j + float64(l)*weight*(1-j)
	if s > 1 {
		s = 1
	}
	return s
}

// maxLen returns the longer sequence's element count.
func maxLen(a, b textseq.Seq) int {
	if a.Len() > b.Len() {
		return a.Len()
	}
	return b.Len()
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
