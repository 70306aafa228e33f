// Package jarowinkler - tunable options and error definitions for the
// Jaro-Winkler engine.
package jarowinkler

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for engine invocation.
var (
	// ErrPrefixWeight is returned when the Winkler prefix weight falls
	// outside [0, MaxPrefixWeight].
	ErrPrefixWeight = errors.New("jarowinkler: prefix weight must lie in [0, 0.25]")

	// ErrNegativeMaxPrefix is returned when a negative prefix cap is supplied.
	ErrNegativeMaxPrefix = errors.New("jarowinkler: max prefix must be non-negative")
)

// ReleaseThreshold is the input size (in scalar values, taken from the
// longer input) at which a call releases the host's shared execution
// lock for its duration. Jaro-Winkler is near-linear, so the threshold
// sits higher than Levenshtein's; fixed empirical constant.
const ReleaseThreshold = 128

const (
	// DefaultPrefixWeight is the stock Winkler boost weight.
	DefaultPrefixWeight = 0.1

	// MaxPrefixWeight bounds the weight: above 1/4 the boost formula can
	// push scores past 1 with a full 4-element prefix.
	MaxPrefixWeight = 0.25

	// DefaultMaxPrefix is the stock cap on the counted common prefix.
	DefaultMaxPrefix = 4
)

// Option configures the engine via functional arguments. An invalid
// Option is recorded internally and surfaced as a sentinel error when
// the engine is invoked.
type Option func(*Options)

// Options holds the parameters shared by Similarity, Distance, and Match.
type Options struct {
	// PrefixWeight scales the Winkler common-prefix boost; in [0, 0.25].
	PrefixWeight float64

	// MaxPrefix caps the counted common prefix length.
	MaxPrefix int

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

// DefaultOptions returns Options with the stock Winkler parameters:
// weight 0.1, prefix cap 4, no host lock, Match over the full [0,1]
// range with at most 5 results.
func DefaultOptions() Options {
	return Options{
		PrefixWeight: DefaultPrefixWeight,
		MaxPrefix:    DefaultMaxPrefix,
		HostLock:     nil,
		MinScore:     0,
		MaxScore:     1,
		Limit:        5,
		err:          nil,
	}
}

// WithPrefixWeight sets the Winkler boost weight.
// Values outside [0, MaxPrefixWeight] → ErrPrefixWeight.
func WithPrefixWeight(w float64) Option {
	return func(o *Options) {
		if w < 0 || w > MaxPrefixWeight {
			o.err = fmt.Errorf("%w: got %v", ErrPrefixWeight, w)
			return
		}
		o.PrefixWeight = w
	}
}

// WithMaxPrefix caps the counted common prefix at n elements.
//
//	n > 0: count at most n
//	n == 0: disable the boost entirely
//	n < 0: invalid option → ErrNegativeMaxPrefix
func WithMaxPrefix(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrNegativeMaxPrefix, n)
			return
		}
		o.MaxPrefix = n
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
