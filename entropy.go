// Package entropy provides seed acquisition for cryptographic random
// number generators.
//
// A Pool accumulates raw bytes from independent sources and tracks how
// many bits of real entropy the contributions are worth. AcquireEntropy
// walks the available sources in a fixed priority order (timing jitter,
// CPU random number instructions, the operating system RNG service,
// legacy random devices) and stops as soon as the pool's target is met.
// Sources that are absent or failing contribute nothing and the next
// one is tried; if no combination reaches the target the result is 0
// and the caller must treat the attempt as a failed seeding.
//
// Example usage:
//
//	pool, err := entropy.NewPool(entropy.Config{TargetBits: 256})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Wipe()
//
//	entropy.AddProcessNonce(pool)
//	if entropy.AcquireEntropy(pool) == 0 {
//	    log.Fatal("entropy acquisition failed")
//	}
//	seed := pool.Bytes()
package entropy

import (
	"errors"
	"fmt"
)

const (
	// DefaultTargetBits matches the seed strength of a 256-bit DRBG.
	DefaultTargetBits = 256

	// DefaultMaxPoolBytes bounds how much raw material a single
	// acquisition may accumulate.
	DefaultMaxPoolBytes = 4096
)

// Config specifies pool sizing and which optional sources the default
// chain may use. The zero value selects the defaults: a 256-bit target
// filled from operating system sources only.
type Config struct {
	// TargetBits is the entropy target an acquisition must reach
	// before the pool reports itself usable.
	TargetBits int

	// MaxPoolBytes caps the bytes a pool may hold, committed output
	// and wasted reservations counted together.
	MaxPoolBytes int

	// MaxEntropyBits caps the credit any combination of sources can
	// claim. Zero means the physical limit of 8*MaxPoolBytes.
	MaxEntropyBits int

	// UseTimingJitter enables the clock jitter source. Off by
	// default: jitter quality varies between machines and enabling it
	// should be a deliberate choice.
	UseTimingJitter bool

	// UseHardwareRNG enables the CPU instruction source. Off by
	// default for the same reason.
	UseHardwareRNG bool

	// DisableSystem removes the operating system sources from the
	// chain. Intended for tests and for callers that trust only the
	// sources they enable themselves.
	DisableSystem bool
}

// Validate checks if the configuration is consistent.
func (c *Config) Validate() error {
	if c.TargetBits < 0 {
		return errors.New("entropy: target bits must not be negative")
	}
	if c.MaxPoolBytes < 0 {
		return errors.New("entropy: max pool bytes must not be negative")
	}
	if c.MaxEntropyBits < 0 {
		return errors.New("entropy: max entropy bits must not be negative")
	}

	r := c.withDefaults()
	if r.MaxEntropyBits < r.TargetBits {
		return fmt.Errorf("entropy: entropy cap %d below target of %d bits", r.MaxEntropyBits, r.TargetBits)
	}
	if 8*r.MaxPoolBytes < r.TargetBits {
		return fmt.Errorf("entropy: pool of %d bytes can never hold %d bits", r.MaxPoolBytes, r.TargetBits)
	}

	return nil
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c *Config) withDefaults() Config {
	r := *c
	if r.TargetBits == 0 {
		r.TargetBits = DefaultTargetBits
	}
	if r.MaxPoolBytes == 0 {
		r.MaxPoolBytes = DefaultMaxPoolBytes
	}
	if r.MaxEntropyBits == 0 {
		r.MaxEntropyBits = 8 * r.MaxPoolBytes
	}
	return r
}
