//go:build linux

package entropy

import "golang.org/x/sys/unix"

// currentThreadID returns the kernel task id of the thread the
// calling goroutine happens to run on. Goroutines migrate between
// threads, so the value is a uniqueness input, not a stable identity.
func currentThreadID() uint32 {
	return uint32(unix.Gettid())
}
