package pqueue

import "github.com/IvanBrykalov/linkedpq/policy"

// SearchMode selects the node an insertion or containment walk starts from.
type SearchMode uint8

const (
	// SearchLast starts at the tail. Best for ascending key streams.
	SearchLast SearchMode = iota
	// SearchFirst starts at the head. Best for descending key streams.
	SearchFirst
	// SearchPrev starts at the node touched by the previous insert.
	// Best for clustered keys.
	SearchPrev
)

// String returns the lowercase mode name.
func (m SearchMode) String() string {
	switch m {
	case SearchFirst:
		return "first"
	case SearchPrev:
		return "prev"
	default:
		return "last"
	}
}

// ParseSearchMode maps "first", "last" or "prev" to a SearchMode.
func ParseSearchMode(s string) (SearchMode, bool) {
	switch s {
	case "first":
		return SearchFirst, true
	case "last":
		return SearchLast, true
	case "prev":
		return SearchPrev, true
	}
	return SearchLast, false
}

// Metrics exposes pool and queue observability hooks.
// A NoopMetrics implementation is provided and used by default.
//
// Pool hooks may be called from many goroutines at once. Pooled runs while
// the pool mutex is held, so it must not call back into the pool (that
// deadlocks). Acquire and Release run after the mutex is released. Resolve
// runs on the goroutine calling Enqueue.
type Metrics interface {
	// Acquire reports a node handed out; reused is false for a fresh allocation.
	Acquire(reused bool)
	// Release reports a node returned; retained is false when it was discarded.
	Release(retained bool)
	// Pooled reports the current free chain length.
	Pooled(n int)
	// Resolve reports the outcome of every EnqueueMode call.
	Resolve(a policy.Action)
}

// PoolOptions configures a NodePool. Zero values are safe:
//   - MaxPool <= 0 => DefaultMaxPool
//   - nil Metrics  => NoopMetrics
type PoolOptions struct {
	// MaxPool caps the number of retained free nodes. Unlike
	// NodePool.SetMaxPool, zero here selects DefaultMaxPool; to build a pool
	// that retains nothing, construct it and then call SetMaxPool(0).
	MaxPool int
	Metrics Metrics
}

// Options configures a Queue. Zero values are safe; defaults are applied in
// New / NewFunc:
//   - nil Compare     => cmp.Compare (New only; NewFunc requires it)
//   - nil Pool        => SharedPool[K, V]()
//   - nil OnDuplicate => ignore duplicates
//   - nil Metrics     => the pool's Metrics
type Options[K, V any] struct {
	// Compare is a total order over keys: negative if a<b, zero if equal,
	// positive if a>b. It is fixed for the queue's lifetime.
	Compare func(a, b K) int

	// Pool recycles chain nodes. Several queues may share one pool.
	Pool *NodePool[K, V]

	// OnDuplicate resolves inserts of a key equal to an existing key.
	// It can be replaced later with Queue.SetDuplicatePolicy.
	OnDuplicate policy.Func[K, V]

	// Metrics receives Resolve events for this queue.
	Metrics Metrics
}
