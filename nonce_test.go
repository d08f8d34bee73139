package entropy

import (
	"bytes"
	"encoding/binary"
	"os"
	"testing"
)

func TestAddProcessNonce(t *testing.T) {
	p := mustPool(t, Config{})

	if !AddProcessNonce(p) {
		t.Fatal("AddProcessNonce() = false")
	}
	if p.Len() != 16 {
		t.Fatalf("record length = %d, want 16", p.Len())
	}
	if p.entropy != 0 {
		t.Error("nonce record credited entropy")
	}
	if got := binary.LittleEndian.Uint32(p.Bytes()[:4]); got != uint32(os.Getpid()) {
		t.Errorf("record pid = %d, want %d", got, os.Getpid())
	}
}

func TestAddThreadNonceDiffers(t *testing.T) {
	p := mustPool(t, Config{})

	if !AddThreadNonce(p) || !AddThreadNonce(p) {
		t.Fatal("AddThreadNonce() = false")
	}
	if p.Len() != 32 {
		t.Fatalf("two records = %d bytes, want 32", p.Len())
	}
	first, second := p.Bytes()[:16], p.Bytes()[16:]
	if bytes.Equal(first, second) {
		t.Error("consecutive thread nonces are identical")
	}

	// The high-resolution counter must strictly increase.
	c1 := int64(binary.LittleEndian.Uint64(first[8:]))
	c2 := int64(binary.LittleEndian.Uint64(second[8:]))
	if c2 <= c1 {
		t.Errorf("counter went %d then %d, want strictly increasing", c1, c2)
	}

	// The explicit padding stays zero.
	if !bytes.Equal(first[4:8], []byte{0, 0, 0, 0}) {
		t.Errorf("padding bytes = %v, want zeros", first[4:8])
	}
	if p.entropy != 0 {
		t.Error("nonce records credited entropy")
	}
}

func TestNonceRecordSizes(t *testing.T) {
	if n := binary.Size(processNonce{}); n != 16 {
		t.Errorf("processNonce size = %d, want 16", n)
	}
	if n := binary.Size(threadNonce{}); n != 16 {
		t.Errorf("threadNonce size = %d, want 16", n)
	}
}

func TestNextCounterMonotonic(t *testing.T) {
	last := nextCounter()
	for i := 0; i < 1000; i++ {
		next := nextCounter()
		if next <= last {
			t.Fatalf("nextCounter() = %d after %d", next, last)
		}
		last = next
	}
}
