package entropy

import (
	"bytes"
	"encoding/binary"
	"os"
	"sync/atomic"
	"time"
)

// processNonce diversifies pools across processes: process and thread
// identity plus a coarse wall clock reading.
type processNonce struct {
	PID  uint32
	TID  uint32
	Time int64
}

// threadNonce diversifies pools across concurrent callers: thread
// identity plus a high-resolution monotonic reading. The blank field
// is the struct padding, pinned to an explicit zero so the serialized
// record never carries stale memory.
type threadNonce struct {
	TID     uint32
	_       uint32
	Counter int64
}

// AddProcessNonce mixes a process-scoped uniqueness record into the
// pool. The record goes through the zero-credit path: it diversifies
// the pool contents but never counts toward the entropy target. The
// return value is true for any pool with room for a 16 byte record.
func AddProcessNonce(p *Pool) bool {
	rec := processNonce{
		PID:  uint32(os.Getpid()),
		TID:  currentThreadID(),
		Time: time.Now().UnixNano(),
	}
	return addNonce(p, &rec)
}

// AddThreadNonce mixes a caller-scoped uniqueness record into the
// pool. The monotonic reading strictly increases between calls, so
// two records taken back to back on one thread always differ even
// when the wall clock would not have moved.
func AddThreadNonce(p *Pool) bool {
	rec := threadNonce{
		TID:     currentThreadID(),
		Counter: nextCounter(),
	}
	return addNonce(p, &rec)
}

// addNonce serializes rec little-endian, blank fields as zeros, and
// appends it with zero credited entropy.
func addNonce(p *Pool, rec interface{}) bool {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, rec); err != nil {
		return false
	}
	return p.Add(buf.Bytes(), 0) == nil
}

// counterFloor remembers the last value nextCounter handed out.
var counterFloor atomic.Int64

// nextCounter returns a monotonic nanosecond reading that strictly
// increases across calls, even when the clock granularity is coarser
// than the call rate.
func nextCounter() int64 {
	for {
		now := monotime()
		last := counterFloor.Load()
		if now <= last {
			now = last + 1
		}
		if counterFloor.CompareAndSwap(last, now) {
			return now
		}
	}
}
