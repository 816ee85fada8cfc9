// File: parallel.go
// Role: the optional parallel engine (spec §5): N workers pulling from one
//       shared, synchronized queue, built on errgroup.WithContext for
//       cancel-on-first-error fan-out/join.
// Concurrency: the queue is queue.NewSynchronized; the attribute-match
//              cache is already mutex-guarded (match.Cache); inFlight is
//              the only new piece of shared state, an atomic pending-work
//              counter used purely for termination detection (a worker
//              seeing an empty queue cannot tell "done" from "a sibling is
//              mid-expansion and about to push more").
// AI-HINT (file):
//   - WithLimit is not honored here: coordinating an exact global limit
//     across workers would need its own atomic/consensus protocol with no
//     grounding in spec §5, which only requires P1 (completeness) and
//     sink safety from a parallel implementation. Use FindMotifs/CountMotifs
//     for exact limit semantics.

package grandiso

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/aplbrain/grandiso-go/queue"
)

// FindMotifsParallel enumerates every completion of motif in host using
// workers concurrent goroutines sharing one work queue. Result order is
// unspecified (spec §5: "list-mode ordering is unspecified across
// workers"); the set of completions matches the single-threaded result.
func FindMotifsParallel(motif, host Adapter, workers int, opts ...Option) ([]map[string]string, error) {
	e, o, q, inFlight, err := setupParallel(motif, host, workers, opts...)
	if err != nil {
		return nil, err
	}
	if atomic.LoadInt64(inFlight) == 0 {
		return nil, nil
	}

	var mu sync.Mutex
	var results []map[string]string

	g, gctx := errgroup.WithContext(o.Ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return e.parallelWorker(gctx, q, inFlight, func(b Backbone) {
				mu.Lock()
				results = append(results, b.Map())
				mu.Unlock()
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// CountMotifsParallel is CountMotifs's parallel counterpart: workers share
// one atomic counter instead of a mutex-guarded slice (spec §5: "ordered
// only for count-only mode (the count is a monotonic counter)").
func CountMotifsParallel(motif, host Adapter, workers int, opts ...Option) (int, error) {
	e, o, q, inFlight, err := setupParallel(motif, host, workers, opts...)
	if err != nil {
		return 0, err
	}
	if atomic.LoadInt64(inFlight) == 0 {
		return 0, nil
	}

	var count int64
	g, gctx := errgroup.WithContext(o.Ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			return e.parallelWorker(gctx, q, inFlight, func(Backbone) {
				atomic.AddInt64(&count, 1)
			})
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return int(count), nil
}

func setupParallel(motif, host Adapter, workers int, opts ...Option) (*engine, Options, queue.Queue[Backbone], *int64, error) {
	if workers < 1 {
		return nil, Options{}, nil, nil, fmt.Errorf("%w: workers must be >= 1 (%d)", ErrOptionViolation, workers)
	}

	e, o, err := prepareEngine(motif, host, opts...)
	if err != nil {
		return nil, Options{}, nil, nil, err
	}

	base := queue.New[Backbone](o.QueuePolicy.queuePolicy())
	q := queue.NewSynchronized[Backbone](base)
	if err := e.seed(q, o.Hints); err != nil {
		return nil, Options{}, nil, nil, err
	}

	inFlight := int64(q.Len())
	return e, o, q, &inFlight, nil
}

// parallelWorker pops backbones until inFlight reaches zero (no work
// outstanding anywhere) or ctx is canceled. Each pop-and-expand replaces
// one unit of pending work with len(extensions) units, so inFlight hits
// zero exactly when every branch of the search has terminated.
func (e *engine) parallelWorker(ctx context.Context, q queue.Queue[Backbone], inFlight *int64, emit func(Backbone)) error {
	total := len(e.motifVertices)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b, ok := q.Pop()
		if !ok {
			if atomic.LoadInt64(inFlight) == 0 {
				return nil
			}
			runtime.Gosched()
			continue
		}

		if b.Len() == total {
			emit(b)
			atomic.AddInt64(inFlight, -1)
			continue
		}

		exts, err := e.expand(b)
		if err != nil {
			return err
		}
		atomic.AddInt64(inFlight, int64(len(exts))-1)
		for _, nb := range exts {
			q.Push(nb)
		}
	}
}
