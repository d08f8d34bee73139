package hwrand

import (
	"bytes"
	"testing"
)

func TestFillSizes(t *testing.T) {
	if !Available() {
		t.Skip("no random number instruction on this processor")
	}

	for _, n := range []int{1, 5, 8, 9, 64} {
		b := make([]byte, n)
		if !Fill(b) {
			t.Fatalf("Fill(%d bytes) failed on a supporting processor", n)
		}
	}
}

func TestFillNonZero(t *testing.T) {
	if !Available() {
		t.Skip("no random number instruction on this processor")
	}

	b := make([]byte, 64)
	if !Fill(b) {
		t.Fatal("Fill failed")
	}
	if bytes.Equal(b, make([]byte, 64)) {
		t.Error("instruction returned 64 zero bytes")
	}
}

func TestFillTwiceDiffers(t *testing.T) {
	if !Available() {
		t.Skip("no random number instruction on this processor")
	}

	a := make([]byte, 32)
	b := make([]byte, 32)
	if !Fill(a) || !Fill(b) {
		t.Fatal("Fill failed")
	}
	if bytes.Equal(a, b) {
		t.Error("two fills returned identical bytes")
	}
}

func TestFillUnsupported(t *testing.T) {
	if Available() {
		t.Skip("processor supports the instructions")
	}

	if Fill(make([]byte, 8)) {
		t.Error("Fill reported success without instruction support")
	}
}
