package entropy

import (
	"time"

	"github.com/opd-ai/go-entropy/internal"
)

const (
	// samplesPerByte raw counter deltas are condensed into each byte
	// of jitter output.
	samplesPerByte = 8

	// jitterBitsPerSample is the entropy credited per raw delta, a
	// conservative single bit.
	jitterBitsPerSample = 1

	// The availability probe takes jitterProbeReads consecutive
	// deltas and requires jitterProbeDistinct distinct values before
	// the clock counts as jittering.
	jitterProbeReads    = 64
	jitterProbeDistinct = 8
)

// processStart anchors monotonic readings. time.Since carries the
// runtime's monotonic clock, so wall clock steps never show up in the
// deltas.
var processStart = time.Now()

// monotime returns nanoseconds of monotonic time since process start.
func monotime() int64 {
	return int64(time.Since(processStart))
}

// jitterSource harvests unpredictability from the jitter between
// consecutive monotonic clock reads. It makes no OS call beyond the
// clock itself and, once attempted, never fails; the only way it
// contributes nothing is not being available at all.
type jitterSource struct {
	available bool
}

// newJitterSource probes the clock once. A coarse or cached counter
// that shows too few distinct deltas leaves the source unavailable.
func newJitterSource() *jitterSource {
	return &jitterSource{available: probeJitter()}
}

func (s *jitterSource) Name() string { return "jitter" }

func (s *jitterSource) Available() bool { return s.available }

// Acquire harvests samplesPerByte deltas per output byte, condenses
// them through the BLAKE2b XOF and credits jitterBitsPerSample for
// each raw delta consumed.
func (s *jitterSource) Acquire(p *Pool) int {
	n := p.BytesNeeded(1)
	if n == 0 {
		return 0
	}
	buf := p.Reserve(n)
	if buf == nil {
		return 0
	}

	raw := getScratch(n * samplesPerByte)
	defer putScratch(raw)
	harvest(raw)

	valid := 0
	if internal.Condense(buf, raw) == nil {
		valid = n
	}
	return p.Commit(valid, valid*samplesPerByte*jitterBitsPerSample)
}

// harvest fills raw with the low byte of each consecutive clock delta.
func harvest(raw []byte) {
	last := monotime()
	for i := range raw {
		now := monotime()
		raw[i] = byte(now - last)
		last = now
	}
}

// probeJitter reads the clock back to back and checks that the deltas
// actually vary.
func probeJitter() bool {
	seen := make(map[int64]struct{}, jitterProbeReads)
	last := monotime()
	for i := 0; i < jitterProbeReads; i++ {
		now := monotime()
		seen[now-last] = struct{}{}
		last = now
	}
	return len(seen) >= jitterProbeDistinct
}
