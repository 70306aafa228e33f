// Package gate implements the per-call policy that decides whether a
// metric computation should release a shared host execution lock for
// its duration.
//
// 🚀 Why a gate?
//
//	lvlstr is embedded into hosts that serialize their own work behind a
//	single cooperative lock. The host acquires that lock before calling
//	into an engine. For trivial inputs the call should simply keep the
//	lock: releasing and reacquiring costs more than the computation
//	itself. For large inputs the call should drop the lock while it
//	crunches, so independent host threads make real parallel progress.
//
// The decision input is an O(1) size estimate (the longer input's
// element count) checked against a fixed, metric-specific threshold:
//
//	levenshtein.ReleaseThreshold — 64  (O(n·m) work grows fast)
//	jarowinkler.ReleaseThreshold — 128 (near-linear, window-bounded)
//
// Correctness precondition: while released, the computation must touch
// no shared mutable state — only its own copied inputs and local
// scratch. Every lvlstr engine is a pure function over owned sequences,
// so releasing is always safe.
//
// The lock itself is any sync.Locker supplied by the host; Run always
// reacquires before returning, so no result value ever crosses back to
// the host without the lock held again.
package gate
