package pqueue

import (
	"cmp"
	"errors"
	"iter"

	"github.com/IvanBrykalov/linkedpq/policy"
)

// ErrEmptyQueue is returned by Peek and Dequeue on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// Queue is a key-ordered queue over a sorted doubly linked chain.
// Dequeue always removes the entry with the smallest key.
//
// Insertion walks the chain from a chosen start node (see SearchMode), so it
// costs O(distance) between the start node and the insertion point: O(1) for
// keys with locality, O(n) worst case.
//
// A Queue is NOT safe for concurrent use; callers serialize access. Only the
// NodePool behind it is shared safely.
type Queue[K, V any] struct {
	first  *node[K, V]
	last   *node[K, V]
	cursor *node[K, V] // node touched by the last insert; nil iff empty
	length int

	compare     func(a, b K) int
	onDuplicate policy.Func[K, V]
	pool        *NodePool[K, V]
	metrics     Metrics
}

// New constructs a queue over naturally ordered keys.
// A nil Options.Compare defaults to cmp.Compare.
func New[K cmp.Ordered, V any](opt Options[K, V]) *Queue[K, V] {
	if opt.Compare == nil {
		opt.Compare = cmp.Compare[K]
	}
	return NewFunc(opt)
}

// NewFunc constructs a queue over any key type ordered by Options.Compare.
// It panics if Compare is nil.
func NewFunc[K, V any](opt Options[K, V]) *Queue[K, V] {
	if opt.Compare == nil {
		panic("pqueue: Compare must not be nil")
	}
	if opt.Pool == nil {
		opt.Pool = SharedPool[K, V]()
	}
	if opt.Metrics == nil {
		opt.Metrics = opt.Pool.metrics
	}
	return &Queue[K, V]{
		compare:     opt.Compare,
		onDuplicate: opt.OnDuplicate,
		pool:        opt.Pool,
		metrics:     opt.Metrics,
	}
}

// SetDuplicatePolicy installs fn; it applies from the next Enqueue that meets
// an equal key. nil restores the default (ignore).
func (q *Queue[K, V]) SetDuplicatePolicy(fn policy.Func[K, V]) { q.onDuplicate = fn }

// SetAllowDuplicateMode admits every duplicate key as a distinct entry.
func (q *Queue[K, V]) SetAllowDuplicateMode() { q.onDuplicate = policy.AllowAll[K, V]() }

// SetDuplicateIgnoreMode removes the duplicate policy: inserts of an existing
// key are discarded.
func (q *Queue[K, V]) SetDuplicateIgnoreMode() { q.onDuplicate = nil }

// IsEmpty reports whether the queue holds no entries.
func (q *Queue[K, V]) IsEmpty() bool { return q.first == nil }

// Len returns the number of entries in the queue.
func (q *Queue[K, V]) Len() int { return q.length }

// Enqueue inserts k→v searching from the tail (SearchLast).
func (q *Queue[K, V]) Enqueue(k K, v V) policy.Action {
	return q.EnqueueMode(k, v, SearchLast)
}

// EnqueueMode inserts k→v keeping the chain sorted, walking from the node
// selected by mode. When an equal key is met the duplicate policy decides.
// It returns the applied action: Insert for a new key, otherwise the
// resolved policy action.
func (q *Queue[K, V]) EnqueueMode(k K, v V, mode SearchMode) policy.Action {
	a := q.enqueue(k, v, mode)
	q.metrics.Resolve(a)
	return a
}

func (q *Queue[K, V]) enqueue(k K, v V, mode SearchMode) policy.Action {
	if q.first == nil {
		n := q.pool.acquire(k, v)
		q.first, q.last, q.cursor = n, n, n
		q.length = 1
		return policy.Insert
	}

	cur := q.start(mode)
	c := q.compare(k, cur.key)
	for {
		switch {
		case c == 0:
			return q.resolve(cur, k, v)

		case c > 0:
			if cur.next == nil {
				q.linkAfter(cur, q.pool.acquire(k, v))
				return policy.Insert
			}
			c = q.compare(k, cur.next.key)
			if c < 0 {
				q.linkAfter(cur, q.pool.acquire(k, v))
				return policy.Insert
			}
			cur = cur.next

		default:
			if cur.prev == nil {
				q.linkBefore(cur, q.pool.acquire(k, v))
				return policy.Insert
			}
			c = q.compare(k, cur.prev.key)
			if c > 0 {
				q.linkBefore(cur, q.pool.acquire(k, v))
				return policy.Insert
			}
			cur = cur.prev
		}
	}
}

// resolve handles an insert of k→v whose key equals cur.key.
func (q *Queue[K, V]) resolve(cur *node[K, V], k K, v V) policy.Action {
	a := policy.Resolve(q.onDuplicate, k, cur.val, v)
	switch a {
	case policy.AllowDuplicate:
		// Skip past the whole run of equal keys to keep FIFO order.
		for cur.next != nil && q.compare(k, cur.next.key) == 0 {
			cur = cur.next
		}
		q.linkAfter(cur, q.pool.acquire(k, v))
	case policy.Override:
		cur.val = v
	}
	return a
}

// Peek returns the entry with the smallest key without removing it.
func (q *Queue[K, V]) Peek() (K, V, error) {
	if q.first == nil {
		var zk K
		var zv V
		return zk, zv, ErrEmptyQueue
	}
	return q.first.key, q.first.val, nil
}

// Dequeue removes and returns the entry with the smallest key.
// The emptied node goes back to the pool.
func (q *Queue[K, V]) Dequeue() (K, V, error) {
	n := q.first
	if n == nil {
		var zk K
		var zv V
		return zk, zv, ErrEmptyQueue
	}
	k, v := n.key, n.val

	q.first = n.next
	if q.first != nil {
		q.first.prev = nil
	} else {
		q.last = nil
	}
	if q.cursor == n {
		q.cursor = q.last
	}
	q.length--

	q.pool.release(n)
	return k, v, nil
}

// Contains reports whether an entry with a key equal to k is in the queue,
// walking from the node selected by mode. It does not move the cursor.
func (q *Queue[K, V]) Contains(k K, mode SearchMode) bool {
	if q.first == nil {
		return false
	}
	cur := q.start(mode)
	c := q.compare(k, cur.key)
	for {
		switch {
		case c == 0:
			return true
		case c > 0:
			if cur.next == nil {
				return false
			}
			if c = q.compare(k, cur.next.key); c < 0 {
				return false
			}
			cur = cur.next
		default:
			if cur.prev == nil {
				return false
			}
			if c = q.compare(k, cur.prev.key); c > 0 {
				return false
			}
			cur = cur.prev
		}
	}
}

// Clear removes every entry, returning the nodes to the pool.
func (q *Queue[K, V]) Clear() {
	for n := q.first; n != nil; {
		next := n.next
		q.pool.release(n)
		n = next
	}
	q.first, q.last, q.cursor = nil, nil, nil
	q.length = 0
}

// All yields the entries in dequeue order without removing them.
// The queue must not be modified during iteration.
func (q *Queue[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := q.first; n != nil; n = n.next {
			if !yield(n.key, n.val) {
				return
			}
		}
	}
}

// -------------------- internals --------------------

// start returns the walk origin for mode. The queue must be non-empty.
func (q *Queue[K, V]) start(mode SearchMode) *node[K, V] {
	switch mode {
	case SearchFirst:
		return q.first
	case SearchPrev:
		return q.cursor
	default:
		return q.last
	}
}

// linkAfter inserts n right after cur and makes it the cursor.
func (q *Queue[K, V]) linkAfter(cur, n *node[K, V]) {
	n.prev = cur
	n.next = cur.next
	if cur.next != nil {
		cur.next.prev = n
	} else {
		q.last = n
	}
	cur.next = n
	q.cursor = n
	q.length++
}

// linkBefore inserts n right before cur and makes it the cursor.
func (q *Queue[K, V]) linkBefore(cur, n *node[K, V]) {
	n.next = cur
	n.prev = cur.prev
	if cur.prev != nil {
		cur.prev.next = n
	} else {
		q.first = n
	}
	cur.prev = n
	q.cursor = n
	q.length++
}
