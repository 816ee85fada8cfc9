// File: api.go
// Role: the three external entry points (spec §6): FindMotifs,
//       FindMotifsIter, UniformNodeInterestingness. CountMotifs is the
//       count-only counterpart to FindMotifs; Go's static typing makes a
//       single list-or-int return awkward, so count-only mode gets its own
//       function instead of a count_only kwarg, while still sharing every
//       other option and the underlying engine.

package grandiso

import (
	"iter"

	"github.com/aplbrain/grandiso-go/interestingness"
	"github.com/aplbrain/grandiso-go/queue"
)

// UniformNodeInterestingness returns the default interestingness vector:
// every motif vertex weighted equally, degenerating selection order to
// motif vertex identifier order.
func UniformNodeInterestingness(motif Adapter) interestingness.Vector {
	if motif == nil {
		return nil
	}
	return interestingness.Uniform(motif.Vertices())
}

// FindMotifs enumerates every completion of motif in host and returns them
// as a list (spec §4.5.5 list mode). With WithLimit(n), stops after n
// completions (spec P7); with WithHints, only completions extending a
// supplied hint are produced (spec P8).
func FindMotifs(motif, host Adapter, opts ...Option) ([]map[string]string, error) {
	e, o, q, err := setup(motif, host, opts...)
	if err != nil {
		return nil, err
	}

	var results []map[string]string
	err = e.run(o.Ctx, q, func(b Backbone) bool {
		results = append(results, b.Map())
		return o.Limit <= 0 || len(results) < o.Limit
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// CountMotifs enumerates every completion like FindMotifs but returns only
// the count, dropping each backbone's payload immediately after emission
// (spec §4.5.5 count-only mode). For identical inputs, CountMotifs and
// len(FindMotifs(...)) agree (spec P6).
func CountMotifs(motif, host Adapter, opts ...Option) (int, error) {
	e, o, q, err := setup(motif, host, opts...)
	if err != nil {
		return 0, err
	}

	count := 0
	err = e.run(o.Ctx, q, func(Backbone) bool {
		count++
		return o.Limit <= 0 || count < o.Limit
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// FindMotifsInstrumented behaves like FindMotifs but also returns the
// queue-size-over-time samples recorded during the search (spec §4.4),
// regardless of whether WithInstrumentation was passed explicitly.
func FindMotifsInstrumented(motif, host Adapter, opts ...Option) ([]map[string]string, queue.Stats, error) {
	e, o, err := prepareEngine(motif, host, opts...)
	if err != nil {
		return nil, queue.Stats{}, err
	}

	base := queue.New[Backbone](o.QueuePolicy.queuePolicy())
	instr := queue.NewInstrumented[Backbone](base)
	if err := e.seed(instr, o.Hints); err != nil {
		return nil, queue.Stats{}, err
	}

	var results []map[string]string
	runErr := e.run(o.Ctx, instr, func(b Backbone) bool {
		results = append(results, b.Map())
		return o.Limit <= 0 || len(results) < o.Limit
	})
	if runErr != nil {
		return nil, instr.Stats(), runErr
	}
	return results, instr.Stats(), nil
}

// FindMotifsIter returns a lazy sequence of completions (spec §4.5.5 stream
// mode): each completion is produced only as the consumer's range loop
// requests the next one. WithLimit is ignored here; the consumer decides
// when to stop by breaking out of the range loop. Not restartable after
// exhaustion — calling FindMotifsIter again starts a fresh search.
func FindMotifsIter(motif, host Adapter, opts ...Option) iter.Seq2[map[string]string, error] {
	return func(yield func(map[string]string, error) bool) {
		e, o, q, err := setup(motif, host, opts...)
		if err != nil {
			yield(nil, err)
			return
		}

		runErr := e.run(o.Ctx, q, func(b Backbone) bool {
			return yield(b.Map(), nil)
		})
		if runErr != nil {
			yield(nil, runErr)
		}
	}
}

// setup builds the engine, resolves options, constructs the queue, and
// seeds it — the common prefix shared by every entry point.
func setup(motif, host Adapter, opts ...Option) (*engine, Options, queue.Queue[Backbone], error) {
	e, o, err := prepareEngine(motif, host, opts...)
	if err != nil {
		return nil, Options{}, nil, err
	}

	q := newQueue(o)
	if err := e.seed(q, o.Hints); err != nil {
		return nil, Options{}, nil, err
	}
	return e, o, q, nil
}

func newQueue(o Options) queue.Queue[Backbone] {
	base := queue.New[Backbone](o.QueuePolicy.queuePolicy())
	if o.Instrumented {
		return queue.NewInstrumented[Backbone](base)
	}
	return base
}
