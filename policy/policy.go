// Package policy defines duplicate-key resolution strategies for the ordered
// queue. A strategy is consulted when an inserted key compares equal to a key
// already in the queue and decides what happens to the incoming entry.
package policy

// Action is the outcome of resolving an inserted key against the queue.
type Action uint8

const (
	// Ignore discards the incoming entry; the queue is unchanged.
	// It is the zero value and the behavior of a nil Func.
	Ignore Action = iota
	// AllowDuplicate inserts the incoming entry after every existing entry
	// with an equal key, so equal keys dequeue in insertion order.
	AllowDuplicate
	// Override replaces the value of the existing entry in place.
	// The node keeps its identity and its position in the chain.
	Override
	// Insert is reported by the queue for a key that had no equal entry.
	// A Func never needs to return it; the queue treats it as Ignore.
	Insert
)

// String returns a stable, lowercase label (used as a metrics label).
func (a Action) String() string {
	switch a {
	case Ignore:
		return "ignore"
	case AllowDuplicate:
		return "allow_duplicate"
	case Override:
		return "override"
	case Insert:
		return "insert"
	default:
		return "unknown"
	}
}

// Func decides how an incoming (key, incoming) pair is merged with an entry
// already holding an equal key and the value existing.
//
// Concurrency: a Func is called synchronously from Enqueue, on the caller's
// goroutine. It must not mutate the queue that invoked it.
type Func[K, V any] func(key K, existing, incoming V) Action

// IgnoreAll keeps the first value ever inserted for a key.
// It behaves exactly like a nil Func.
func IgnoreAll[K, V any]() Func[K, V] {
	return func(K, V, V) Action { return Ignore }
}

// AllowAll admits every duplicate as a distinct FIFO-ordered entry.
func AllowAll[K, V any]() Func[K, V] {
	return func(K, V, V) Action { return AllowDuplicate }
}

// OverrideAll keeps the most recently inserted value for a key.
func OverrideAll[K, V any]() Func[K, V] {
	return func(K, V, V) Action { return Override }
}

// OverrideIf overrides the existing value only when better(existing, incoming)
// reports true; otherwise the incoming entry is ignored.
//
// Example: keep the largest value seen for a key.
//
//	policy.OverrideIf[int, int](func(old, v int) bool { return old < v })
func OverrideIf[K, V any](better func(existing, incoming V) bool) Func[K, V] {
	return func(_ K, existing, incoming V) Action {
		if better(existing, incoming) {
			return Override
		}
		return Ignore
	}
}

// Resolve applies fn to the pair, treating a nil fn and an out-of-range
// answer (including Insert) as Ignore.
func Resolve[K, V any](fn Func[K, V], key K, existing, incoming V) Action {
	if fn == nil {
		return Ignore
	}
	switch a := fn(key, existing, incoming); a {
	case AllowDuplicate, Override:
		return a
	default:
		return Ignore
	}
}
