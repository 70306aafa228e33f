package gate

import "sync"

// Run executes fn under the hold-or-release policy and reports whether
// the lock was released for fn's duration.
//
// A nil lock, or a size below threshold, keeps the call in the held
// state: fn runs immediately with no lock traffic. At or above
// threshold the lock is released before fn starts and reacquired
// (deferred, hence also on panic) before Run returns.
//
// The caller must hold lock when invoking Run with a non-nil lock;
// fn must not touch state shared with other holders of lock.
func Run(lock sync.Locker, size, threshold int, fn func()) (released bool) {
	if lock == nil || size < threshold {
		fn()
		return false
	}
	lock.Unlock()
	defer lock.Lock()
	fn()
	return true
}
