package entropy

// A Source contributes bytes and an entropy estimate to a Pool.
// Implementations are stateless per call; the only process-wide state
// any of them keeps is a cached capability resolution.
type Source interface {
	// Name identifies the source.
	Name() string

	// Available reports whether the source can be attempted at all on
	// this system. Unavailable sources are skipped, never reported as
	// errors.
	Available() bool

	// Acquire tries to cover the pool's remaining deficit and returns
	// the bits credited. Failures leave the pool consistent and
	// return 0; partial results are never credited.
	Acquire(p *Pool) int
}

// Collector walks sources in priority order until a pool holds usable
// entropy.
type Collector struct {
	sources []Source
}

// NewCollector builds a collector over the given chain; priority is
// the argument order.
func NewCollector(sources ...Source) *Collector {
	return &Collector{sources: sources}
}

// Collect attempts each source in turn, stopping as soon as the pool
// reports usable entropy. Any single source reaching the target is
// sufficient; a source that contributes nothing just hands over to the
// next. The return value is the pool's usable entropy in bits; 0 means
// no combination of sources reached the target and the caller must
// treat the attempt as failed.
func (c *Collector) Collect(p *Pool) int {
	for _, src := range c.sources {
		if !src.Available() {
			continue
		}
		src.Acquire(p)
		if bits := p.AvailableEntropy(); bits > 0 {
			return bits
		}
	}
	return p.AvailableEntropy()
}

// defaultChain assembles the source priority list for cfg.
func defaultChain(cfg Config) []Source {
	var chain []Source
	if cfg.UseTimingJitter {
		chain = append(chain, newJitterSource())
	}
	if cfg.UseHardwareRNG {
		chain = append(chain, newCPUSource())
	}
	if !cfg.DisableSystem {
		chain = append(chain,
			newSystemSource(),
			newDeviceSource(devURandom),
			newDeviceSource(devHWRNG),
		)
	}
	return chain
}

// AcquireEntropy fills pool from the default source chain and returns
// the usable entropy in bits. A return of 0 is the hard failure
// signal: no source reached the pool's target and the pool contents
// must not seed anything.
func AcquireEntropy(pool *Pool) int {
	bits := NewCollector(defaultChain(pool.cfg)...).Collect(pool)
	if bits > 0 {
		seeded.Store(true)
	}
	return bits
}
