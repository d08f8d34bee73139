//go:build !linux

package entropy

// currentThreadID returns 0 where no cheap thread identity exists;
// the remaining nonce fields still provide the uniqueness.
func currentThreadID() uint32 { return 0 }
