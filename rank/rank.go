package rank

import (
	"sort"

	"github.com/katalvlaran/lvlstr/textseq"
)

// Top ranks candidates against the query captured by score.
//
// Every candidate is scored, candidates whose score lies in the
// inclusive [MinScore, MaxScore] range are kept, the survivors are
// sorted by score descending (ties broken by ascending scalar-value
// lexicographic order of the candidate), and the first Limit entries
// are returned.
//
// Top never mutates candidates. It returns ErrScoreRange,
// ErrNegativeLimit, or ErrNilScorer on contract violations, or the
// first error produced by score. No partial result accompanies an error.
//
// Complexity: O(n·S + k·log k) where n = len(candidates), S = scorer
// cost, k = number of kept candidates.
func Top(candidates []string, score Scorer, opts ...Option) ([]Match, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if score == nil {
		return nil, ErrNilScorer
	}

	kept := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		s, err := score(c)
		if err != nil {
			return nil, err
		}
		if s < o.MinScore || s > o.MaxScore {
			continue
		}
		kept = append(kept, Match{Candidate: c, Score: s})
	}

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Score != kept[j].Score {
			return kept[i].Score > kept[j].Score
		}
		return textseq.Compare(textseq.New(kept[i].Candidate), textseq.New(kept[j].Candidate)) < 0
	})

	if len(kept) > o.Limit {
		kept = kept[:o.Limit]
	}
	return kept, nil
}
