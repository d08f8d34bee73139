package entropy

import "errors"

// Pool misuse errors returned by Add.
var (
	// ErrPoolOverflow means an Add would exceed MaxPoolBytes.
	ErrPoolOverflow = errors.New("entropy: pool overflow")

	// ErrReservationPending means Add was called between Reserve and
	// Commit.
	ErrReservationPending = errors.New("entropy: reservation pending")
)

// Pool is the accumulation buffer for one acquisition attempt.
//
// A pool belongs to a single caller: it is created, filled, consumed
// and wiped within one acquisition, so it is deliberately unlocked.
// Sources obtain space with Reserve, write into it and settle with
// Commit; the nonce helpers append through Add. Credited entropy never
// exceeds eight bits per committed byte nor the configured cap.
type Pool struct {
	cfg Config

	buf     []byte // committed output
	pending int    // open reservation size, 0 when none
	wasted  int    // reserved capacity that was never committed

	entropy  int // credited bits
	target   int // bits required before the pool is usable
	maxBits  int // credit cap
	maxBytes int // capacity cap over committed plus wasted bytes
	minBytes int // fewest committed bytes a usable pool may hold
}

// NewPool builds an empty pool for one acquisition attempt.
func NewPool(cfg Config) (*Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	minBytes := (cfg.TargetBits + 7) / 8
	return &Pool{
		cfg:      cfg,
		buf:      make([]byte, 0, minBytes),
		target:   cfg.TargetBits,
		maxBits:  cfg.MaxEntropyBits,
		maxBytes: cfg.MaxPoolBytes,
		minBytes: minBytes,
	}, nil
}

// BytesNeeded reports how many bytes the next source should deliver to
// cover the remaining deficit, with factor raw bits assumed to carry
// one bit of entropy. The result depends only on the deficit and the
// configured capacity; failed attempts by earlier sources never change
// it. Factors below 1 yield 0.
func (p *Pool) BytesNeeded(factor int) int {
	if factor < 1 {
		return 0
	}
	deficit := p.target - p.entropy
	if deficit <= 0 {
		return 0
	}
	n := (deficit*factor + 7) / 8
	if n > p.maxBytes {
		n = p.maxBytes
	}
	return n
}

// Reserve returns a writable region of exactly n bytes, or nil when n
// is not positive, a reservation is already pending, or the remaining
// capacity cannot hold n. There are no partial reservations; a nil
// return leaves the pool untouched.
func (p *Pool) Reserve(n int) []byte {
	if n <= 0 || p.pending != 0 || n > p.remaining() {
		return nil
	}

	need := len(p.buf) + n
	if cap(p.buf) < need {
		grown := make([]byte, len(p.buf), need)
		copy(grown, p.buf)
		p.buf = grown
	}

	p.pending = n
	return p.buf[len(p.buf):need]
}

// Commit settles the pending reservation: the first valid bytes become
// committed output and bits of entropy are credited, clipped to eight
// bits per valid byte and to the room left under MaxEntropyBits. The
// unused tail of the reservation is retired as wasted capacity rather
// than returned; pools are short-lived and never re-reserve it. The
// return value is the credit actually granted. Without a pending
// reservation Commit is a no-op returning 0.
func (p *Pool) Commit(valid, bits int) int {
	if p.pending == 0 {
		return 0
	}

	n := p.pending
	p.pending = 0
	if valid < 0 {
		valid = 0
	}
	if valid > n {
		valid = n
	}

	p.buf = p.buf[:len(p.buf)+valid]
	p.wasted += n - valid

	if valid == 0 {
		return 0
	}
	return p.credit(bits, valid)
}

// Add appends data directly, crediting bits under the same clipping
// rules as Commit. It is the path for nonce records, which claim zero
// entropy. Add fails when a reservation is pending or when data does
// not fit the remaining capacity.
func (p *Pool) Add(data []byte, bits int) error {
	if p.pending != 0 {
		return ErrReservationPending
	}
	if len(data) == 0 {
		return nil
	}
	if len(data) > p.remaining() {
		return ErrPoolOverflow
	}

	p.buf = append(p.buf, data...)
	p.credit(bits, len(data))
	return nil
}

// AvailableEntropy reports the usable entropy in bits. It stays 0
// until the credited bits reach the target and the output reaches the
// pool's minimum length, so a positive value always means the pool is
// ready to consume. The source chain relies on this gate to decide
// whether to keep going.
func (p *Pool) AvailableEntropy() int {
	if p.entropy < p.target || len(p.buf) < p.minBytes {
		return 0
	}
	return p.entropy
}

// EntropyNeeded reports the bits still missing to the target.
func (p *Pool) EntropyNeeded() int {
	if deficit := p.target - p.entropy; deficit > 0 {
		return deficit
	}
	return 0
}

// Len reports the committed output length in bytes.
func (p *Pool) Len() int { return len(p.buf) }

// Bytes exposes the committed output without copying. The slice stays
// valid until the next Reserve, Add or Wipe; consume it, then Wipe.
func (p *Pool) Bytes() []byte { return p.buf }

// Wipe zeroizes the buffer, wasted regions included, and resets all
// counters. The pool may be reused for a fresh attempt afterwards.
func (p *Pool) Wipe() {
	zeroBytes(p.buf[:cap(p.buf)])
	p.buf = p.buf[:0]
	p.pending = 0
	p.wasted = 0
	p.entropy = 0
}

// credit clips a claimed bit count to what the bytes can physically
// carry and to the configured cap, then adds it to the tally.
func (p *Pool) credit(bits, bytes int) int {
	if bits < 0 {
		bits = 0
	}
	if phys := 8 * bytes; bits > phys {
		bits = phys
	}
	if room := p.maxBits - p.entropy; bits > room {
		bits = room
	}
	p.entropy += bits
	return bits
}

// remaining is the capacity still open for reservations and adds.
func (p *Pool) remaining() int {
	return p.maxBytes - len(p.buf) - p.wasted
}
