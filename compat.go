package entropy

import "sync/atomic"

// seeded records whether any default-chain acquisition has met its
// target since process start.
var seeded atomic.Bool

// Status reports whether entropy acquisition has succeeded at least
// once in this process.
func Status() bool { return seeded.Load() }

// Poll runs a full default acquisition and reports whether the target
// was met. The collected bytes are wiped, not returned; Poll answers
// "can this process seed itself right now".
func Poll() bool {
	pool, err := NewPool(Config{})
	if err != nil {
		return false
	}
	defer pool.Wipe()

	AddProcessNonce(pool)
	return AcquireEntropy(pool) > 0
}

// PollEvent is kept for callers written against event-based seeding
// interfaces. The event arguments are ignored; a full poll runs
// instead and the overall status is returned.
//
// Deprecated: use Poll.
func PollEvent(event, param uintptr) bool {
	Poll()
	return Status()
}

// PollScreen survives as a name only and forwards to Poll; screen
// contents stopped being an entropy input long ago.
//
// Deprecated: use Poll.
func PollScreen() {
	Poll()
}
