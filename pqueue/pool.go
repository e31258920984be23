package pqueue

import (
	"sync"

	"github.com/IvanBrykalov/linkedpq/internal/util"
)

// DefaultMaxPool is the free chain cap used when PoolOptions.MaxPool <= 0.
const DefaultMaxPool = 1024

// NodePool is a bounded free list of chain nodes.
// All methods are safe for concurrent use; a single pool may back any number
// of queues on any number of goroutines. Every critical section is O(1).
//
// The free chain is singly linked through node.next: acquire pops the head,
// release appends at the tail.
type NodePool[K, V any] struct {
	// ---- guarded by mu ----
	mu      sync.Mutex
	head    *node[K, V]
	tail    *node[K, V]
	count   int
	maxPool int

	metrics Metrics

	// ---- statistics (read without the lock by Stats) ----
	_         util.CacheLinePad
	acquired  util.PaddedAtomicUint64
	reused    util.PaddedAtomicUint64
	released  util.PaddedAtomicUint64
	discarded util.PaddedAtomicUint64
}

// PoolStats is a point-in-time snapshot of pool counters.
type PoolStats struct {
	Acquired  uint64 // nodes handed out
	Reused    uint64 // of which came from the free chain
	Released  uint64 // nodes returned and retained
	Discarded uint64 // nodes returned while the pool was full
}

// NewNodePool constructs a pool with the provided options.
func NewNodePool[K, V any](opt PoolOptions) *NodePool[K, V] {
	if opt.MaxPool <= 0 {
		opt.MaxPool = DefaultMaxPool
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	return &NodePool[K, V]{
		maxPool: opt.MaxPool,
		metrics: opt.Metrics,
	}
}

// MaxPool returns the current retention cap.
func (p *NodePool[K, V]) MaxPool() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.maxPool
}

// SetMaxPool changes the retention cap. Lowering it does not evict nodes
// already pooled; further releases are discarded until the count drops below
// the new cap. Zero retains nothing (unlike PoolOptions.MaxPool, where zero
// selects DefaultMaxPool); negative values are treated as zero.
func (p *NodePool[K, V]) SetMaxPool(n int) {
	if n < 0 {
		n = 0
	}
	p.mu.Lock()
	p.maxPool = n
	p.mu.Unlock()
}

// Len returns the number of nodes currently parked in the free chain.
func (p *NodePool[K, V]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

// Clear drops the whole free chain; pooled nodes are left to the GC.
// Queues using the pool are not affected.
func (p *NodePool[K, V]) Clear() {
	p.mu.Lock()
	p.head, p.tail = nil, nil
	p.count = 0
	p.metrics.Pooled(0)
	p.mu.Unlock()
}

// Stats returns a snapshot of the pool counters.
func (p *NodePool[K, V]) Stats() PoolStats {
	return PoolStats{
		Acquired:  p.acquired.Load(),
		Reused:    p.reused.Load(),
		Released:  p.released.Load(),
		Discarded: p.discarded.Load(),
	}
}

// acquire returns a node holding k/v with nil links, reusing the free head
// when one is available. The node is referenced by nothing else.
func (p *NodePool[K, V]) acquire(k K, v V) *node[K, V] {
	p.mu.Lock()
	n := p.head
	if n != nil {
		p.head = n.next
		if p.head == nil {
			p.tail = nil
		}
		p.count--
		p.metrics.Pooled(p.count)
	}
	p.mu.Unlock()

	p.acquired.Add(1)
	if n == nil {
		p.metrics.Acquire(false)
		return &node[K, V]{key: k, val: v}
	}
	p.reused.Add(1)
	p.metrics.Acquire(true)
	n.reset(k, v)
	return n
}

// release parks n at the tail of the free chain, or drops it when the pool
// already holds MaxPool nodes. The caller must not touch n afterwards.
func (p *NodePool[K, V]) release(n *node[K, V]) {
	// Clear references outside the lock so pooled nodes do not pin values.
	var zk K
	var zv V
	n.key, n.val = zk, zv
	n.prev, n.next = nil, nil

	p.mu.Lock()
	if p.count >= p.maxPool {
		p.mu.Unlock()
		p.discarded.Add(1)
		p.metrics.Release(false)
		return
	}
	if p.tail != nil {
		p.tail.next = n
	} else {
		p.head = n
	}
	p.tail = n
	p.count++
	p.metrics.Pooled(p.count)
	p.mu.Unlock()

	p.released.Add(1)
	p.metrics.Release(true)
}
