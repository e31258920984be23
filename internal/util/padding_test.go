package util

import (
	"testing"
	"unsafe"
)

func TestPaddedAtomicUint64_Size(t *testing.T) {
	if got := unsafe.Sizeof(PaddedAtomicUint64{}); got != CacheLineSize {
		t.Fatalf("PaddedAtomicUint64 must be %d bytes, got %d", CacheLineSize, got)
	}
	var c PaddedAtomicUint64
	c.Add(2)
	if c.Load() != 2 {
		t.Fatalf("want 2, got %d", c.Load())
	}
}
