// Package util contains internal helpers (cache-line padding for counters).
//revive:disable:var-naming  // allow 'util' as an internal helpers package name
package util

import (
	"sync/atomic"
	"unsafe"
)

// CacheLineSize is a reasonable default for most modern CPUs.
const CacheLineSize = 64

// CacheLinePad separates a lock-guarded group of fields from the atomic
// counters that follow it.
type CacheLinePad struct{ _ [CacheLineSize]byte }

// PaddedAtomicUint64 is an atomic uint64 padded to exactly one cache line,
// so pool statistics bumped on every acquire/release do not false-share.
type PaddedAtomicUint64 struct {
	atomic.Uint64
	_ [CacheLineSize - 8]byte
}

// compile-time size check (must be exactly one cache line)
var _ [CacheLineSize - int(unsafe.Sizeof(PaddedAtomicUint64{}))]byte
