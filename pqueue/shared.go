package pqueue

import (
	"reflect"
	"sync"
)

// sharedPools maps a node type to its process-wide *NodePool.
// Generic package-level variables do not exist, so one pool per (K, V)
// instantiation is kept here.
var sharedPools sync.Map // reflect.Type -> any(*NodePool[K, V])

// SharedPool returns the process-wide default pool for (K, V), constructing
// it with DefaultMaxPool on first use. It is never torn down: it grows up to
// its cap and stabilizes. Queues built without Options.Pool use it.
func SharedPool[K, V any]() *NodePool[K, V] {
	t := reflect.TypeFor[node[K, V]]()
	if p, ok := sharedPools.Load(t); ok {
		return p.(*NodePool[K, V])
	}
	p, _ := sharedPools.LoadOrStore(t, NewNodePool[K, V](PoolOptions{}))
	return p.(*NodePool[K, V])
}
