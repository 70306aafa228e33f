// Package gate_test verifies the hold-or-release decision and the
// parallelism it unlocks for concurrent callers.
package gate_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/lvlstr/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyLock records Lock/Unlock traffic so tests can observe the decision.
type spyLock struct {
	mu      sync.Mutex
	locks   int
	unlocks int
}

func (s *spyLock) Lock()   { s.mu.Lock(); s.locks++; s.mu.Unlock() }
func (s *spyLock) Unlock() { s.mu.Lock(); s.unlocks++; s.mu.Unlock() }

// TestRun_NilLockStaysHeld ensures a nil lock never releases and still runs fn.
func TestRun_NilLockStaysHeld(t *testing.T) {
	ran := false
	released := gate.Run(nil, 1<<20, 0, func() { ran = true })
	assert.True(t, ran, "fn must run even without a lock")
	assert.False(t, released, "nil lock can never be released")
}

// TestRun_BelowThresholdStaysHeld ensures short calls produce zero lock traffic.
func TestRun_BelowThresholdStaysHeld(t *testing.T) {
	spy := &spyLock{}
	ran := false

	released := gate.Run(spy, 63, 64, func() { ran = true })

	assert.True(t, ran, "fn must run in held state")
	assert.False(t, released, "size below threshold must stay held")
	assert.Zero(t, spy.unlocks, "held call must not touch the lock")
	assert.Zero(t, spy.locks, "held call must not touch the lock")
}

// TestRun_AtThresholdReleases ensures size == threshold already releases,
// and that the lock is reacquired exactly once before Run returns.
func TestRun_AtThresholdReleases(t *testing.T) {
	spy := &spyLock{}
	var unlocksDuringFn int

	released := gate.Run(spy, 64, 64, func() { unlocksDuringFn = spy.unlocks })

	assert.True(t, released, "size at threshold must release")
	assert.Equal(t, 1, unlocksDuringFn, "lock must be released before fn runs")
	assert.Equal(t, 1, spy.unlocks, "exactly one release")
	assert.Equal(t, 1, spy.locks, "exactly one reacquire, before Run returns")
}

// TestRun_ReacquiresOnPanic ensures the deferred reacquire also fires when
// fn panics, leaving the host lock in the state the caller expects.
func TestRun_ReacquiresOnPanic(t *testing.T) {
	spy := &spyLock{}

	require.Panics(t, func() {
		gate.Run(spy, 128, 64, func() { panic("boom") })
	})
	assert.Equal(t, 1, spy.unlocks, "released before fn")
	assert.Equal(t, 1, spy.locks, "reacquired despite the panic")
}

// TestRun_ReleasedCallersRunInParallel proves genuine parallelism: two
// goroutines, each holding the shared lock around a released Run, meet
// inside fn at a barrier. That rendezvous is only reachable if Run really
// dropped the lock for the second caller to acquire.
func TestRun_ReleasedCallersRunInParallel(t *testing.T) {
	var host sync.Mutex
	var barrier sync.WaitGroup
	barrier.Add(2)

	var wg sync.WaitGroup
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func() {
			defer wg.Done()
			host.Lock()
			released := gate.Run(&host, 256, 64, func() {
				barrier.Done()
				barrier.Wait() // both callers must be inside simultaneously
			})
			host.Unlock()
			require.True(t, released)
		}()
	}
	wg.Wait()
}
