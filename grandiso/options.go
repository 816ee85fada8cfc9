// File: options.go
// Role: Options/Option functional-options surface (spec §6), matching the
//       teacher's bfs.Option/BFSOptions shape: DefaultOptions() plus
//       With... constructors, invalid values recorded on Options.err and
//       surfaced once at call time instead of panicking mid-application.

package grandiso

import (
	"context"
	"fmt"

	"github.com/aplbrain/grandiso-go/interestingness"
	"github.com/aplbrain/grandiso-go/match"
	"github.com/aplbrain/grandiso-go/queue"
)

// QueuePolicy selects the base push/pop discipline for the engine's work
// queue (spec §4.4). Instrumentation is a separate, composable modifier —
// see WithInstrumentation — rather than a third base policy, since spec
// §4.4 describes "instrumented" as wrapping "any policy," not as a
// mutually exclusive third option.
type QueuePolicy int

const (
	// DepthFirst pops most-recently-pushed backbones first. This is the
	// engine's default: memory grows with search depth, not frontier width.
	DepthFirst QueuePolicy = iota

	// BreadthFirst pops least-recently-pushed backbones first.
	BreadthFirst
)

func (p QueuePolicy) queuePolicy() queue.Policy {
	if p == BreadthFirst {
		return queue.BreadthFirst
	}
	return queue.DepthFirst
}

// Options holds the configuration for FindMotifs/FindMotifsIter/
// FindMotifsParallel. Build one with DefaultOptions and the With...
// constructors; do not construct it directly.
type Options struct {
	Ctx              context.Context
	Interestingness  interestingness.Vector
	Directed         *bool
	QueuePolicy      QueuePolicy
	Instrumented     bool
	IsomorphismsOnly bool
	Hints            []map[string]string
	Limit            int

	NodeStructuralMatch match.NodeStructuralMatch
	NodeAttrMatch       match.NodeAttrMatch
	EdgeAttrMatch       match.EdgeAttrMatch

	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns an Options with spec §6's defaults: uniform
// interestingness (resolved lazily from the motif if left nil),
// depth-first queue policy, monomorphism semantics, no hints, no limit,
// list mode, and the default match predicates.
func DefaultOptions() Options {
	return Options{
		Ctx:                 context.Background(),
		QueuePolicy:         DepthFirst,
		NodeStructuralMatch: match.DefaultNodeStructuralMatch,
		NodeAttrMatch:       match.DefaultNodeAttrMatch,
		EdgeAttrMatch:       match.DefaultEdgeAttrMatch,
	}
}

// WithContext sets the context used for cooperative cancellation (spec §5:
// "Cancellation and limits"). There is no timeout built in; pass a context
// with a deadline for one.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInterestingness overrides the default uniform interestingness vector.
func WithInterestingness(v interestingness.Vector) Option {
	return func(o *Options) { o.Interestingness = v }
}

// WithDirected overrides directedness inference: the search treats both
// graphs as directed or undirected per directed, regardless of how either
// Adapter reports Directed() (spec P9: "running with directed=false on
// directed graphs treats edges as undirected").
func WithDirected(directed bool) Option {
	return func(o *Options) {
		d := directed
		o.Directed = &d
	}
}

// WithQueuePolicy selects the base queue discipline.
func WithQueuePolicy(p QueuePolicy) Option {
	return func(o *Options) { o.QueuePolicy = p }
}

// WithInstrumentation wraps the engine's queue with queue.Instrumented,
// recording queue-size samples over the search (spec §4.4). FindMotifs and
// CountMotifs accept it but discard the samples; use
// FindMotifsInstrumented to retrieve them.
func WithInstrumentation() Option {
	return func(o *Options) { o.Instrumented = true }
}

// WithIsomorphismsOnly activates induced-isomorphism semantics (spec
// §4.5.2 step 4): non-edges of the motif must correspond to non-edges of
// the host between mapped vertices.
func WithIsomorphismsOnly() Option {
	return func(o *Options) { o.IsomorphismsOnly = true }
}

// WithHints seeds the search from caller-supplied partial mappings instead
// of the default single-vertex seeding (spec §4.5.1). Each hint is
// validated against every backbone invariant in §3; an invalid hint causes
// FindMotifs/FindMotifsIter to return ErrInvalidHint (see DESIGN.md for why
// this implementation rejects rather than silently drops).
func WithHints(hints ...map[string]string) Option {
	return func(o *Options) { o.Hints = hints }
}

// WithLimit stops the search after n completions (spec §4.5.5). Ignored by
// FindMotifsIter; the stream consumer decides when to stop. n must be >= 0;
// n == 0 means unlimited.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: limit cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Limit = n
	}
}

// WithNodeStructuralMatch overrides the default degree-compatibility
// predicate.
func WithNodeStructuralMatch(fn match.NodeStructuralMatch) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: node structural match function is nil", ErrOptionViolation)
			return
		}
		o.NodeStructuralMatch = fn
	}
}

// WithNodeAttrMatch overrides the default node-attribute predicate.
func WithNodeAttrMatch(fn match.NodeAttrMatch) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: node attr match function is nil", ErrOptionViolation)
			return
		}
		o.NodeAttrMatch = fn
	}
}

// WithEdgeAttrMatch overrides the default edge-attribute predicate.
func WithEdgeAttrMatch(fn match.EdgeAttrMatch) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: edge attr match function is nil", ErrOptionViolation)
			return
		}
		o.EdgeAttrMatch = fn
	}
}

func buildOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
