// Package levenshtein - tunable options and error definitions for the
// edit-distance engine.
package levenshtein

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for engine invocation.
var (
	// ErrNegativeCutoff is returned when a negative distance cutoff is supplied.
	ErrNegativeCutoff = errors.New("levenshtein: distance cutoff must be non-negative")

	// ErrSimilarityCutoff is returned when a similarity cutoff falls outside [0, 1].
	ErrSimilarityCutoff = errors.New("levenshtein: similarity cutoff must lie in [0, 1]")
)

// ReleaseThreshold is the input size (in scalar values, taken from the
// longer input) at which a call releases the host's shared execution
// lock for its duration. Levenshtein is O(n·m), so the threshold sits
// low; the value is a fixed empirical constant, not derived at runtime.
const ReleaseThreshold = 64

// NoCutoff disables cutoff-bounded early exit (the default).
const NoCutoff = -1

// Option configures the engine via functional arguments. An invalid
// Option is recorded internally and surfaced as a sentinel error when
// the engine is invoked.
type Option func(*Options)

// Options holds the parameters shared by Distance, Similarity, and Match.
type Options struct {
	// Cutoff bounds the reported distance: once the true distance
	// provably exceeds Cutoff, the engine returns Cutoff+1 immediately.
	// NoCutoff disables the bound.
	Cutoff int

	// SimilarityCutoff is the similarity-domain counterpart used by
	// Similarity; values below it may be reported imprecisely (but never
	// above it). Negative disables the bound.
	SimilarityCutoff float64

	// HostLock, when non-nil, is the host's shared execution lock. The
	// caller must hold it on entry; calls at or above ReleaseThreshold
	// release it while computing and reacquire it before returning.
	HostLock sync.Locker

	// MinScore and MaxScore bound the inclusive score range Match keeps.
	MinScore, MaxScore float64

	// Limit caps the number of matches Match returns.
	Limit int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - no distance or similarity cutoff
//   - no host lock (gate stays held)
//   - Match keeps the full [0,1] range, at most 5 results.
func DefaultOptions() Options {
	return Options{
		Cutoff:           NoCutoff,
		SimilarityCutoff: -1,
		HostLock:         nil,
		MinScore:         0,
		MaxScore:         1,
		Limit:            5,
		err:              nil,
	}
}

// WithCutoff bounds the reported distance at c+1.
//
//	c >= 0: prune once the true distance provably exceeds c
//	c < 0:  invalid option → ErrNegativeCutoff
func WithCutoff(c int) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNegativeCutoff, c)
			return
		}
		o.Cutoff = c
	}
}

// WithSimilarityCutoff lets Similarity stop early once the result is
// provably below s. Values outside [0,1] → ErrSimilarityCutoff.
func WithSimilarityCutoff(s float64) Option {
	return func(o *Options) {
		if s < 0 || s > 1 {
			o.err = fmt.Errorf("%w: got %v", ErrSimilarityCutoff, s)
			return
		}
		o.SimilarityCutoff = s
	}
}

// WithHostLock supplies the host's shared execution lock; see
// ReleaseThreshold and the gate package for the hold/release contract.
func WithHostLock(l sync.Locker) Option {
	return func(o *Options) {
		o.HostLock = l
	}
}

// WithScoreRange keeps only Match candidates scoring within [min, max].
// Validation happens in the ranking layer (rank.ErrScoreRange).
func WithScoreRange(min, max float64) Option {
	return func(o *Options) {
		o.MinScore, o.MaxScore = min, max
	}
}

// WithLimit caps Match results at k; 0 yields an empty result.
// Negative values surface as rank.ErrNegativeLimit.
func WithLimit(k int) Option {
	return func(o *Options) {
		o.Limit = k
	}
}

// buildOptions folds opts over the defaults and reports the first
// recorded option violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
