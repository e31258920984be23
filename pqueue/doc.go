// Package pqueue provides a generic, key-ordered queue backed by a sorted
// doubly linked chain, plus a bounded, thread-safe pool that recycles the
// chain's nodes.
//
// Design
//
//   - Ordering: entries are kept sorted non-decreasing by a comparator fixed
//     at construction (cmp.Compare by default). Dequeue removes the smallest
//     key in O(1).
//
//   - Search modes: an insert walks the chain in both directions from a
//     start node chosen per call. SearchLast suits ascending keys,
//     SearchFirst descending keys, and SearchPrev (the node touched by the
//     previous insert) clustered keys. With locality, insertion is amortized
//     O(1); adversarial orders are O(n).
//
//   - Duplicates: when an inserted key equals an existing one, a pluggable
//     policy.Func decides: Ignore (default), AllowDuplicate (FIFO among
//     equal keys) or Override (replace the value in place).
//
//   - Node pool: nodes come from a NodePool and return to it on Dequeue.
//     The pool is a mutex-guarded free list capped at MaxPool entries. One
//     pool may back many queues across goroutines. Without an explicit pool,
//     queues share SharedPool[K, V]().
//
//   - Metrics: PoolOptions.Metrics / Options.Metrics receive acquire/release
//     and duplicate-resolution signals. NoopMetrics is the default; see
//     metrics/prom for a Prometheus adapter.
//
// Basic usage
//
//	q := pqueue.New[int, string](pqueue.Options[int, string]{})
//	q.Enqueue(5, "a")
//	q.Enqueue(3, "b")
//	k, v, err := q.Dequeue() // 3, "b", nil
//
// Duplicates
//
//	q := pqueue.New[int, int](pqueue.Options[int, int]{
//	    OnDuplicate: policy.OverrideIf[int, int](func(old, v int) bool { return old < v }),
//	})
//
// Dedicated pool
//
//	pool := pqueue.NewNodePool[int, string](pqueue.PoolOptions{MaxPool: 4096})
//	q := pqueue.New[int, string](pqueue.Options[int, string]{Pool: pool})
//
// Thread-safety
//
// A Queue is not safe for concurrent use. A NodePool is.
package pqueue
