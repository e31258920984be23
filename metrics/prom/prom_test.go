package prom

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/linkedpq/policy"
	"github.com/IvanBrykalov/linkedpq/pqueue"
)

// The adapter wired into a pool and queue reflects real traffic.
func TestAdapter_PoolAndQueue(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg, "pq", "test", prometheus.Labels{"app": "unit"})

	pool := pqueue.NewNodePool[int, string](pqueue.PoolOptions{MaxPool: 1, Metrics: m})
	q := pqueue.New[int, string](pqueue.Options[int, string]{Pool: pool})

	q.Enqueue(2, "b")
	q.Enqueue(1, "a")
	q.Enqueue(1, "dup") // ignored
	for !q.IsEmpty() {
		_, _, err := q.Dequeue()
		require.NoError(t, err)
	}
	q.Enqueue(3, "c") // reuses the one retained node

	assert.Equal(t, 2.0, testutil.ToFloat64(m.acquires.WithLabelValues("fresh")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.acquires.WithLabelValues("reused")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.releases.WithLabelValues("retained")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.releases.WithLabelValues("discarded")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.pooled))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.resolved.WithLabelValues(policy.Insert.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolved.WithLabelValues(policy.Ignore.String())))

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, n)
}

// Registering twice on the same registry must panic (MustRegister).
func TestAdapter_DuplicateRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = New(reg, "pq", "dup", nil)
	assert.Panics(t, func() { New(reg, "pq", "dup", nil) })
}
