package hwrand

import (
	"encoding/binary"

	"golang.org/x/sys/cpu"
)

// wordRetries bounds how often a single 64-bit read is retried before
// the whole fill is abandoned. Ten attempts is the count Intel
// documents as sufficient to ride out transient generator underflow.
const wordRetries = 10

// supported prefers RDSEED, which draws from the conditioner on every
// read, and falls back to RDRAND.
func supported() bool {
	return cpu.X86.HasRDSEED || cpu.X86.HasRDRAND
}

func fill(b []byte) bool {
	read := rdrand64
	if cpu.X86.HasRDSEED {
		read = rdseed64
	} else if !cpu.X86.HasRDRAND {
		return false
	}

	var word [8]byte
	for len(b) > 0 {
		v, ok := retryWord(read)
		if !ok {
			return false
		}
		binary.LittleEndian.PutUint64(word[:], v)
		b = b[copy(b, word[:]):]
	}
	return true
}

// retryWord retries a failed read; the carry flag cleared by the
// instruction signals that no random word was ready.
func retryWord(read func() (uint64, bool)) (uint64, bool) {
	for i := 0; i < wordRetries; i++ {
		if v, ok := read(); ok {
			return v, true
		}
	}
	return 0, false
}

// Implemented in hwrand_amd64.s.
func rdrand64() (v uint64, ok bool)
func rdseed64() (v uint64, ok bool)
