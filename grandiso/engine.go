// File: engine.go
// Role: the search driver — seeding (§4.5.1), extension (§4.5.2),
//       termination (§4.5.3), and backbone validation for hints.
// Concurrency: an *engine is built once per search and never mutated after
//              prepareEngine returns; FindMotifsParallel shares one *engine
//              (plus a synchronized queue and the engine's own match.Cache,
//              which is already mutex-guarded) across workers.
// AI-HINT (file):
//   - m_next selection and candidate-set construction are pure functions of
//     a Backbone's domain, never of the path taken to reach it — this is
//     what spec §4.5.4 "completeness & non-duplication" depends on.

package grandiso

import (
	"context"
	"fmt"

	"github.com/aplbrain/grandiso-go/core"
	"github.com/aplbrain/grandiso-go/interestingness"
	"github.com/aplbrain/grandiso-go/match"
)

// engine carries all state for one search: the two graphs, resolved
// options, and the shared attribute-match cache. No closures — every
// method reads only e's fields and its explicit arguments, mirroring
// tsp.bbEngine's shape.
type engine struct {
	motif Adapter
	host  Adapter

	directed         bool
	isomorphismsOnly bool

	interestingness interestingness.Vector
	structuralMatch match.NodeStructuralMatch
	edgeAttrMatch   match.EdgeAttrMatch
	cache           *match.Cache

	motifVertices []string
}

func prepareEngine(motif, host Adapter, opts ...Option) (*engine, Options, error) {
	if motif == nil {
		return nil, Options{}, ErrNilMotif
	}
	if host == nil {
		return nil, Options{}, ErrNilHost
	}

	o, err := buildOptions(opts...)
	if err != nil {
		return nil, Options{}, err
	}

	motifVertices := motif.Vertices()
	if len(motifVertices) == 0 {
		return nil, Options{}, ErrEmptyMotif
	}

	directed := motif.Directed()
	if o.Directed != nil {
		directed = *o.Directed
	} else if host.Directed() != directed {
		return nil, Options{}, ErrDirectednessMismatch
	}

	iv := o.Interestingness
	if iv == nil {
		iv = interestingness.Uniform(motifVertices)
	}

	e := &engine{
		motif:            motif,
		host:             host,
		directed:         directed,
		isomorphismsOnly: o.IsomorphismsOnly,
		interestingness:  iv,
		structuralMatch:  o.NodeStructuralMatch,
		edgeAttrMatch:    o.EdgeAttrMatch,
		cache:            match.NewCache(o.NodeAttrMatch),
		motifVertices:    motifVertices,
	}
	return e, o, nil
}

// seed pushes the initial backbones onto q: either the caller's validated
// hints, or the size-1 seeds described in spec §4.5.1.
func (e *engine) seed(q backboneQueue, hints []map[string]string) error {
	if len(hints) > 0 {
		for _, h := range hints {
			b := backboneFromHint(h)
			if err := e.validateBackbone(b); err != nil {
				return err
			}
			q.Push(b)
		}
		return nil
	}

	m1 := e.interestingness.Most(e.motifVertices)
	for _, x := range e.host.Vertices() {
		ok, err := e.nodeMatches(Backbone{}, m1, x)
		if err != nil {
			return err
		}
		if ok {
			q.Push(Backbone{}.Extend(m1, x))
		}
	}
	return nil
}

// expand computes every extension of b by one motif vertex (spec §4.5.2).
func (e *engine) expand(b Backbone) ([]Backbone, error) {
	mNext := e.selectNext(b)
	candidates := e.candidateSet(b, mNext)

	survivors, err := e.filter(b, mNext, candidates)
	if err != nil {
		return nil, err
	}

	exts := make([]Backbone, len(survivors))
	for i, x := range survivors {
		exts[i] = b.Extend(mNext, x)
	}
	return exts, nil
}

// selectNext implements spec §4.5.2 step 2.
func (e *engine) selectNext(b Backbone) string {
	mapped := b.Domain()

	var adjacent []string
	seen := make(map[string]struct{})
	for _, mk := range mapped {
		for _, nb := range unionSorted(e.motif.NeighborsOut(mk), e.motif.NeighborsIn(mk)) {
			if b.Has(nb) {
				continue
			}
			if _, dup := seen[nb]; dup {
				continue
			}
			seen[nb] = struct{}{}
			adjacent = append(adjacent, nb)
		}
	}
	if len(adjacent) > 0 {
		return e.interestingness.Most(adjacent)
	}

	var unmapped []string
	for _, u := range e.motifVertices {
		if !b.Has(u) {
			unmapped = append(unmapped, u)
		}
	}
	return e.interestingness.Most(unmapped)
}

// candidateSet implements spec §4.5.2 step 3.
func (e *engine) candidateSet(b Backbone, mNext string) []string {
	mapped := b.Domain()
	var c []string
	constrained := false

	for _, mk := range mapped {
		needIn := e.hasEdge(e.motif, mNext, mk)
		needOut := e.hasEdge(e.motif, mk, mNext)
		if !needIn && !needOut {
			continue
		}
		xk, _ := b.Get(mk)

		var allowed []string
		switch {
		case needIn && needOut:
			allowed = intersectSorted(e.neighborsIn(e.host, xk), e.neighborsOut(e.host, xk))
		case needIn:
			allowed = e.neighborsIn(e.host, xk)
		default:
			allowed = e.neighborsOut(e.host, xk)
		}

		if !constrained {
			c = allowed
			constrained = true
		} else {
			c = intersectSorted(c, allowed)
		}
	}

	if !constrained {
		return e.host.Vertices()
	}
	return c
}

// filter implements spec §4.5.2 step 4.
func (e *engine) filter(b Backbone, mNext string, candidates []string) ([]string, error) {
	mapped := b.Domain()
	var out []string

candidateLoop:
	for _, x := range candidates {
		if b.HasHost(x) {
			continue
		}

		ok, err := e.nodeMatches(b, mNext, x)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		for _, mk := range mapped {
			xk, _ := b.Get(mk)
			fwd := e.hasEdge(e.motif, mNext, mk)
			rev := e.hasEdge(e.motif, mk, mNext)

			switch {
			case fwd || rev:
				if fwd {
					aok, err := e.edgeMatches(b, mNext, mk, x, xk)
					if err != nil {
						return nil, err
					}
					if !aok {
						continue candidateLoop
					}
				}
				if e.directed && rev {
					aok, err := e.edgeMatches(b, mk, mNext, xk, x)
					if err != nil {
						return nil, err
					}
					if !aok {
						continue candidateLoop
					}
				}
			case e.isomorphismsOnly:
				blocked := e.hasEdge(e.host, x, xk)
				if e.directed {
					blocked = blocked || e.host.HasEdge(xk, x)
				}
				if blocked {
					continue candidateLoop
				}
			}
		}

		out = append(out, x)
	}
	return out, nil
}

// validateBackbone checks every invariant of spec §3 for a hint-supplied
// backbone: injective, locally consistent, attribute-consistent.
func (e *engine) validateBackbone(b Backbone) error {
	dom := b.Domain()
	motifSet := toSet(e.motifVertices)
	hostSet := toSet(e.host.Vertices())

	seenHost := make(map[string]struct{}, len(dom))
	for _, u := range dom {
		x, _ := b.Get(u)
		if _, ok := motifSet[u]; !ok {
			return fmt.Errorf("%w: unknown motif vertex %q", ErrInvalidHint, u)
		}
		if _, ok := hostSet[x]; !ok {
			return fmt.Errorf("%w: unknown host vertex %q", ErrInvalidHint, x)
		}
		if _, dup := seenHost[x]; dup {
			return fmt.Errorf("%w: host vertex %q mapped more than once", ErrInvalidHint, x)
		}
		seenHost[x] = struct{}{}

		ok, err := e.nodeMatches(b, u, x)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s->%s fails the structural/attribute predicate", ErrInvalidHint, u, x)
		}
	}

	for i, u := range dom {
		x, _ := b.Get(u)
		for _, v := range dom[i+1:] {
			y, _ := b.Get(v)
			fwd := e.hasEdge(e.motif, u, v)
			rev := e.hasEdge(e.motif, v, u)

			switch {
			case fwd || rev:
				if fwd {
					if !e.hasEdge(e.host, x, y) {
						return fmt.Errorf("%w: motif edge %s->%s has no corresponding host edge %s->%s", ErrInvalidHint, u, v, x, y)
					}
					ok, err := e.edgeMatches(b, u, v, x, y)
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("%w: edge %s->%s fails the edge-attribute predicate", ErrInvalidHint, u, v)
					}
				}
				if e.directed && rev {
					if !e.hasEdge(e.host, y, x) {
						return fmt.Errorf("%w: motif edge %s->%s has no corresponding host edge %s->%s", ErrInvalidHint, v, u, y, x)
					}
					ok, err := e.edgeMatches(b, v, u, y, x)
					if err != nil {
						return err
					}
					if !ok {
						return fmt.Errorf("%w: edge %s->%s fails the edge-attribute predicate", ErrInvalidHint, v, u)
					}
				}
			case e.isomorphismsOnly:
				blocked := e.hasEdge(e.host, x, y)
				if e.directed {
					blocked = blocked || e.host.HasEdge(y, x)
				}
				if blocked {
					return fmt.Errorf("%w: induced mode forbids a host edge between %q and %q", ErrInvalidHint, x, y)
				}
			}
		}
	}
	return nil
}

// nodeMatches evaluates the structural predicate followed by the cached
// node-attribute predicate, recovering a panic from either into a
// PredicateError carrying b's context (spec §7).
func (e *engine) nodeMatches(b Backbone, u, x string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PredicateError{Backbone: b.Map(), MotifVertex: u, HostVertex: x, Err: panicToErr(r)}
		}
	}()

	if !e.structuralMatch(e.motif, e.host, e.directed, u, x) {
		return false, nil
	}
	ok = e.cache.Match(u, x, e.motif.VertexAttrs(u), e.host.VertexAttrs(x))
	return ok, nil
}

// edgeMatches evaluates the edge-attribute predicate for motif edge
// mu->mv mapped to host edge xu->xv.
func (e *engine) edgeMatches(b Backbone, mu, mv, xu, xv string) (ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PredicateError{Backbone: b.Map(), MotifVertex: mu, HostVertex: xu, Err: panicToErr(r)}
		}
	}()

	motifAttrs := e.edgeAttrsFallback(e.motif, mu, mv)
	hostAttrs := e.edgeAttrsFallback(e.host, xu, xv)
	ok = e.edgeAttrMatch(motifAttrs, hostAttrs)
	return ok, nil
}

// The following four helpers realize spec P9 (directed=false override):
// when the search's effective directedness differs from how the adapter
// physically stores adjacency, out/in collapse into one undirected view.

func (e *engine) neighborsOut(g Adapter, v string) []string {
	if e.directed {
		return g.NeighborsOut(v)
	}
	return unionSorted(g.NeighborsOut(v), g.NeighborsIn(v))
}

func (e *engine) neighborsIn(g Adapter, v string) []string {
	if e.directed {
		return g.NeighborsIn(v)
	}
	return unionSorted(g.NeighborsOut(v), g.NeighborsIn(v))
}

func (e *engine) hasEdge(g Adapter, u, v string) bool {
	if e.directed {
		return g.HasEdge(u, v)
	}
	return g.HasEdge(u, v) || g.HasEdge(v, u)
}

func (e *engine) edgeAttrsFallback(g Adapter, u, v string) core.Attrs {
	if a := g.EdgeAttrs(u, v); a != nil {
		return a
	}
	if !e.directed {
		return g.EdgeAttrs(v, u)
	}
	return nil
}

// backboneQueue is the narrow queue surface the engine's seed/run loop
// needs, satisfied by queue.Queue[Backbone].
type backboneQueue interface {
	Push(Backbone)
	Pop() (Backbone, bool)
	Empty() bool
}

// run drains q, calling emit for every completion. emit returns false to
// stop the search early (limit reached, or a stream consumer stopped
// pulling). ctx is polled once per iteration for cooperative cancellation.
func (e *engine) run(ctx context.Context, q backboneQueue, emit func(Backbone) bool) error {
	total := len(e.motifVertices)
	for !q.Empty() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		b, ok := q.Pop()
		if !ok {
			break
		}
		if b.Len() == total {
			if !emit(b) {
				return nil
			}
			continue
		}

		exts, err := e.expand(b)
		if err != nil {
			return err
		}
		for _, nb := range exts {
			q.Push(nb)
		}
	}
	return nil
}
