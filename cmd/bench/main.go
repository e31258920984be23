// Command bench runs a synthetic enqueue/dequeue workload against ordered
// queues sharing one node pool and exposes optional pprof/Prometheus endpoints.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"os"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	pmet "github.com/IvanBrykalov/linkedpq/metrics/prom"
	"github.com/IvanBrykalov/linkedpq/pqueue"
)

func main() {
	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	mode, _ := pqueue.ParseSearchMode(cfg.Mode)

	// ---- pprof server (on DefaultServeMux) ----
	if cfg.PprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", cfg.PprofAddr)
			log.Println(http.ListenAndServe(cfg.PprofAddr, nil))
		}()
	}

	// ---- Shared pool, optionally instrumented ----
	popt := pqueue.PoolOptions{MaxPool: cfg.MaxPool}
	if cfg.HTTPAddr != "" {
		popt.Metrics = pmet.New(nil, "linkedpq", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", cfg.HTTPAddr)
			log.Println(http.ListenAndServe(cfg.HTTPAddr, nil))
		}()
	}
	pool := pqueue.NewNodePool[int, uint64](popt)

	// ---- Load generation: one queue per worker, one pool for all ----
	var rounds, dequeues, enqueues uint64
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Duration)
	defer cancel()

	start := time.Now()
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(cfg.Seed + int64(w)*9973))
			next := keyGen(cfg.Pattern, r, cfg.KeySpace, cfg.Spread)
			q := pqueue.New[int, uint64](pqueue.Options[int, uint64]{
				Pool:        pool,
				OnDuplicate: duplicatePolicy(cfg.Duplicate),
			})
			defer q.Clear()

			var i uint64
			for q.Len() < cfg.Size {
				q.EnqueueMode(next(), i, mode)
				i++
			}
			for {
				select {
				case <-ctx.Done():
					return nil
				default:
				}
				if _, _, err := q.Dequeue(); err != nil {
					return fmt.Errorf("worker %d: %w", w, err)
				}
				atomic.AddUint64(&dequeues, 1)
				for q.Len() < cfg.Size {
					q.EnqueueMode(next(), i, mode)
					atomic.AddUint64(&enqueues, 1)
					i++
				}
				atomic.AddUint64(&rounds, 1)
			}
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("bench: %v", err)
	}
	elapsed := time.Since(start)

	// ---- Report ----
	deq := atomic.LoadUint64(&dequeues)
	ins := atomic.LoadUint64(&enqueues)
	st := pool.Stats()
	reuse := 0.0
	if st.Acquired > 0 {
		reuse = float64(st.Reused) / float64(st.Acquired) * 100
	}

	fmt.Printf("pattern=%s mode=%s dup=%s size=%d workers=%d dur=%v seed=%d\n",
		cfg.Pattern, cfg.Mode, cfg.Duplicate, cfg.Size, cfg.Workers, elapsed, cfg.Seed)
	fmt.Printf("dequeues=%d (%.0f ops/s)  enqueue calls=%d  rounds=%d\n",
		deq, float64(deq)/elapsed.Seconds(), ins, atomic.LoadUint64(&rounds))
	fmt.Printf("pool: acquired=%d reused=%d (%.2f%%) released=%d discarded=%d pooled=%d/%d\n",
		st.Acquired, st.Reused, reuse, st.Released, st.Discarded, pool.Len(), pool.MaxPool())
}
