package entropy

import "github.com/opd-ai/go-entropy/internal/lazybind"

// fillFunc fills the whole of b from the operating system RNG or
// reports an error; partial fills are errors.
type fillFunc func(b []byte) error

// systemFill is the process-wide binding to this platform's preferred
// RNG service. Resolution runs at most once; a platform without the
// service stays permanently unavailable and the device sources take
// over.
var systemFill = lazybind.New(resolveSystemFill)

// systemSource is the primary operating system source.
type systemSource struct {
	fill *lazybind.Binding[fillFunc]
}

func newSystemSource() *systemSource {
	return &systemSource{fill: systemFill}
}

func (s *systemSource) Name() string { return "system" }

// Available resolves the binding on first use.
func (s *systemSource) Available() bool {
	_, ok := s.fill.Value()
	return ok
}

// Acquire requests the full remaining deficit in one call. Only an
// exact, complete fill is credited; any error commits zero bytes.
func (s *systemSource) Acquire(p *Pool) int {
	fill, ok := s.fill.Value()
	if !ok {
		return 0
	}

	n := p.BytesNeeded(1)
	if n == 0 {
		return 0
	}
	buf := p.Reserve(n)
	if buf == nil {
		return 0
	}

	valid := 0
	if fill(buf) == nil {
		valid = n
	}
	return p.Commit(valid, 8*valid)
}
