package pqueue

// node is an intrusive doubly linked chain element.
//
// While linked into a Queue it is owned by that queue and prev/next link its
// sorted neighbors. While parked in a NodePool only next is used (the free
// chain is singly linked) and prev is always nil. A node is never reachable
// from both chains at once.
type node[K, V any] struct {
	key K
	val V

	prev *node[K, V]
	next *node[K, V]
}

// reset prepares a recycled node for a new owner.
func (n *node[K, V]) reset(k K, v V) {
	n.key = k
	n.val = v
	n.prev, n.next = nil, nil
}
