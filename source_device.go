package entropy

import (
	"io"
	"os"
)

// Well known device nodes, tried in this order after the system
// source.
const (
	// devURandom is the general purpose device every modern Unix
	// provides.
	devURandom = "/dev/urandom"

	// devHWRNG fronts a dedicated hardware generator. Most machines
	// do not have one; its absence is not an error.
	devHWRNG = "/dev/hwrng"
)

// deviceSource reads one random device node. The handle is opened and
// closed inside every acquisition; nothing is cached between calls.
type deviceSource struct {
	path string
}

func newDeviceSource(path string) *deviceSource {
	return &deviceSource{path: path}
}

func (s *deviceSource) Name() string { return "device:" + s.path }

func (s *deviceSource) Available() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Acquire opens the device, reads the full deficit and closes the
// handle before returning, on failure paths included. A short or
// failed read commits zero bytes.
func (s *deviceSource) Acquire(p *Pool) int {
	n := p.BytesNeeded(1)
	if n == 0 {
		return 0
	}
	f, err := os.Open(s.path)
	if err != nil {
		return 0
	}

	credited := 0
	if buf := p.Reserve(n); buf != nil {
		valid := 0
		if _, err := io.ReadFull(f, buf); err == nil {
			valid = n
		}
		credited = p.Commit(valid, 8*valid)
	}
	f.Close()
	return credited
}
