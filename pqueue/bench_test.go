package pqueue

import (
	"math/rand"
	"testing"
)

// benchmarkPattern keeps a queue at a steady size and replaces the head with
// a key drawn from next. It measures the walk cost of each search mode for a
// given key pattern, plus pool reuse (allocs/op should stay at zero).
func benchmarkPattern(b *testing.B, mode SearchMode, next func(i int) int) {
	q := New[int, int](Options[int, int]{
		Pool: NewNodePool[int, int](PoolOptions{MaxPool: 1024}),
	})
	for i := 0; i < 1024; i++ {
		q.EnqueueMode(next(i), i, mode)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = q.Dequeue()
		q.EnqueueMode(next(i+1024), i, mode)
	}
}

func ascending(i int) int { return i }

func BenchmarkQueue_Ascending_Last(b *testing.B)  { benchmarkPattern(b, SearchLast, ascending) }
func BenchmarkQueue_Ascending_First(b *testing.B) { benchmarkPattern(b, SearchFirst, ascending) }

// Clustered keys: a random walk in key space favors SearchPrev.
func benchmarkLocal(b *testing.B, mode SearchMode) {
	r := rand.New(rand.NewSource(1))
	center := 1 << 20
	benchmarkPattern(b, mode, func(int) int {
		center += r.Intn(9) - 4
		return center
	})
}

func BenchmarkQueue_Local_Prev(b *testing.B) { benchmarkLocal(b, SearchPrev) }
func BenchmarkQueue_Local_Last(b *testing.B) { benchmarkLocal(b, SearchLast) }

// BenchmarkPool_Parallel measures contention on a single shared pool.
func BenchmarkPool_Parallel(b *testing.B) {
	p := NewNodePool[int, int](PoolOptions{MaxPool: 4096})
	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			p.release(p.acquire(i, i))
			i++
		}
	})
}
