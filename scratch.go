package entropy

import "sync"

// scratchSize is the pooled buffer capacity; fills needing more get a
// dedicated allocation.
const scratchSize = 4096

// Jitter harvesting burns samplesPerByte raw bytes per output byte;
// the sample buffers are pooled so repeated acquisitions do not churn
// the heap.
var scratchPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, scratchSize)
	},
}

// getScratch returns a length-n buffer with zeroed contents. Buffers
// are cleared before they go back to the pool and fresh allocations
// start zeroed.
func getScratch(n int) []byte {
	buf := scratchPool.Get().([]byte)
	if cap(buf) < n {
		return make([]byte, n)
	}
	return buf[:n]
}

// putScratch clears buf and returns it to the pool.
func putScratch(buf []byte) {
	if buf == nil {
		return
	}
	zeroBytes(buf)
	scratchPool.Put(buf[:0])
}

// zeroBytes clears a byte slice.
func zeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
