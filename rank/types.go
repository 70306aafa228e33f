package rank

import (
	"errors"
	"fmt"
)

// Sentinel errors for ranking invocation.
var (
	// ErrScoreRange is returned when the [MinScore, MaxScore] bounds are
	// not ordered or fall outside [0, 1].
	ErrScoreRange = errors.New("rank: score bounds must satisfy 0 <= min <= max <= 1")

	// ErrNegativeLimit is returned when a negative result limit is supplied.
	ErrNegativeLimit = errors.New("rank: limit must be non-negative")

	// ErrNilScorer is returned when Top is invoked without a scorer.
	ErrNilScorer = errors.New("rank: scorer must be non-nil")
)

// Match pairs a candidate with its similarity score against the query.
type Match struct {
	// Candidate is the original candidate string, untouched.
	Candidate string

	// Score is the metric's similarity in [0, 1].
	Score float64
}

// Scorer computes the similarity of one candidate against the query the
// closure was built around. An error aborts the whole ranking.
type Scorer func(candidate string) (float64, error)

// Option configures ranking behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as a sentinel
// error when Top is invoked.
type Option func(*Options)

// Options holds the filter and truncation parameters for Top.
type Options struct {
	// MinScore and MaxScore bound the inclusive score range kept.
	MinScore, MaxScore float64

	// Limit caps the number of returned matches. 0 yields an empty result.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the stock parameters:
// keep everything (range [0,1]) and return at most 5 matches.
func DefaultOptions() Options {
	return Options{
		MinScore: 0,
		MaxScore: 1,
		Limit:    5,
		err:      nil,
	}
}

// WithScoreRange keeps only candidates whose score lies in [min, max].
// Bounds outside [0,1] or min > max are invalid → ErrScoreRange.
func WithScoreRange(min, max float64) Option {
	return func(o *Options) {
		if min < 0 || max > 1 || min > max {
			o.err = fmt.Errorf("%w: got [%v, %v]", ErrScoreRange, min, max)
			return
		}
		o.MinScore, o.MaxScore = min, max
	}
}

// WithLimit caps the result length at k.
//
//	k > 0: at most k matches
//	k == 0: explicit empty result
//	k < 0: invalid option → ErrNegativeLimit
func WithLimit(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNegativeLimit, k)
			return
		}
		o.Limit = k
	}
}
