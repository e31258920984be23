package pqueue

import "github.com/IvanBrykalov/linkedpq/policy"

// NoopMetrics is a drop-in Metrics implementation that does nothing.
// It is safe for concurrent use and is the default when no observability
// backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Acquire(bool)          {}
func (NoopMetrics) Release(bool)          {}
func (NoopMetrics) Pooled(int)            {}
func (NoopMetrics) Resolve(policy.Action) {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}
