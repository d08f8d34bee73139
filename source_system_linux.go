//go:build linux

package entropy

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// resolveSystemFill probes getrandom(2) once. Kernels without the
// system call fail the probe and the binding caches the absence.
func resolveSystemFill() (fillFunc, func(), error) {
	var probe [1]byte
	if err := getrandomFill(probe[:]); err != nil {
		return nil, nil, fmt.Errorf("entropy: getrandom probe: %w", err)
	}
	return getrandomFill, nil, nil
}

// getrandomFill reads exactly len(b) bytes from getrandom(2) with the
// default flags, resuming across signal interruptions and short
// reads.
func getrandomFill(b []byte) error {
	for len(b) > 0 {
		n, err := unix.Getrandom(b, 0)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n <= 0 {
			return unix.EIO
		}
		b = b[n:]
	}
	return nil
}
