package entropy

import "github.com/opd-ai/go-entropy/internal/hwrand"

// cpuSource draws from the processor's random number instructions.
type cpuSource struct{}

func newCPUSource() *cpuSource { return &cpuSource{} }

func (s *cpuSource) Name() string { return "cpu" }

func (s *cpuSource) Available() bool { return hwrand.Available() }

// Acquire asks the instruction for the full deficit. A word that
// never arrives within the retry budget fails the whole fill and
// nothing is credited.
func (s *cpuSource) Acquire(p *Pool) int {
	n := p.BytesNeeded(1)
	if n == 0 {
		return 0
	}
	buf := p.Reserve(n)
	if buf == nil {
		return 0
	}

	valid := 0
	if hwrand.Fill(buf) {
		valid = n
	}
	return p.Commit(valid, 8*valid)
}
