package dijkstra

import (
	"fmt"
	"iter"
)

// Length returns the cost of the cheapest path from start to any state for
// which isEnd reports true. The boolean is false when no such state is
// reachable, which keeps an unreachable goal apart from a zero-cost path.
//
// isEnd is tested when a state is settled, so a start that satisfies it yields
// distance 0 and next is never called for a goal state.
//
// next must yield non-negative weights; a negative weight is a programmer
// error and panics with ErrNegativeWeight. For integer weights, an edge whose
// sum would overflow W is skipped, so states only reachable past the largest
// representable distance count as unreachable.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the V states and E edges visited.
//   - Space: O(V + E) for the settled set and the lazy heap.
func Length[S comparable, W Weight](
	start S,
	isEnd func(S) bool,
	next func(S) iter.Seq2[S, W],
	opts ...Option[W],
) (W, bool) {
	return LengthFrom([]Seed[S, W]{{State: start}}, isEnd, next, opts...)
}

// LengthFrom is Length with several seeds, each with its own starting distance.
// Duplicate seeds keep the smallest distance. An empty seed list finds nothing.
func LengthFrom[S comparable, W Weight](
	seeds []Seed[S, W],
	isEnd func(S) bool,
	next func(S) iter.Seq2[S, W],
	opts ...Option[W],
) (W, bool) {
	r := newRunner(seeds, isEnd, next, false, opts)
	_, d, ok := r.process()

	return d, ok
}

// Search runs the same search as LengthFrom and also reconstructs the path to
// the goal that was reached.
func Search[S comparable, W Weight](
	seeds []Seed[S, W],
	isEnd func(S) bool,
	next func(S) iter.Seq2[S, W],
	opts ...Option[W],
) Result[S, W] {
	r := newRunner(seeds, isEnd, next, true, opts)
	goal, d, ok := r.process()
	if !ok {
		return Result[S, W]{Settled: len(r.settled)}
	}

	return Result[S, W]{
		Goal:     goal,
		Distance: d,
		Path:     r.pathTo(goal),
		Found:    true,
		Settled:  len(r.settled),
	}
}

// Distances settles every state reachable from seeds (within MaxDistance, if
// set) and returns the final distance of each.
func Distances[S comparable, W Weight](
	seeds []Seed[S, W],
	next func(S) iter.Seq2[S, W],
	opts ...Option[W],
) map[S]W {
	never := func(S) bool { return false }
	r := newRunner(seeds, never, next, false, opts)
	r.process()

	return r.settled
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[S comparable, W Weight] struct {
	options  Options[W]              // distance cap and edge threshold
	isEnd    func(S) bool            // goal predicate, tested on settle
	next     func(S) iter.Seq2[S, W] // lazy successor function
	frontier *DistanceMap[S, W]      // queued states by tentative distance
	settled  map[S]W                 // states whose distance is final
	prev     map[S]S                 // predecessor on the best path; nil unless tracking
}

// newRunner applies the options and queues the seeds.
func newRunner[S comparable, W Weight](
	seeds []Seed[S, W],
	isEnd func(S) bool,
	next func(S) iter.Seq2[S, W],
	track bool,
	opts []Option[W],
) *runner[S, W] {
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner[S, W]{
		options:  cfg,
		isEnd:    isEnd,
		next:     next,
		frontier: NewDistanceMap[S, W](),
		settled:  make(map[S]W),
	}
	if track {
		r.prev = make(map[S]S)
	}

	for _, s := range seeds {
		if s.Distance < 0 {
			panic(fmt.Errorf("%w: seed %v distance=%v", ErrNegativeWeight, s.State, s.Distance))
		}
		if cfg.HasMaxDistance && s.Distance > cfg.MaxDistance {
			continue
		}
		r.frontier.Insert(s.State, s.Distance)
	}

	return r
}

// process is the core loop. It repeatedly settles the nearest queued state,
// stops at the first goal and otherwise relaxes the state's successors.
//
// Loop termination conditions:
//
//   - A settled state satisfies isEnd (found).
//   - The frontier becomes empty (not found).
func (r *runner[S, W]) process() (S, W, bool) {
	for {
		// 1) Pop the nearest state; stale entries are skipped by the frontier.
		u, d, ok := r.frontier.PopNearest()
		if !ok {
			var zs S
			var zw W
			return zs, zw, false
		}

		// 2) Its distance is final; relax never queues a settled state again.
		r.settled[u] = d

		// 3) Goal test on settle.
		if r.isEnd(u) {
			return u, d, true
		}

		// 4) Expand.
		r.relax(u, d)
	}
}

// relax pulls the successors of u and queues every strict improvement.
func (r *runner[S, W]) relax(u S, d W) {
	for v, w := range r.next(u) {
		if w < 0 {
			panic(fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w))
		}

		// Edges at or above the threshold are walls.
		if r.options.HasInfEdgeThreshold && w >= r.options.InfEdgeThreshold {
			continue
		}

		if _, done := r.settled[v]; done {
			continue
		}

		nd := d + w
		if nd < d {
			// integer overflow: the distance does not fit in W
			continue
		}
		if r.options.HasMaxDistance && nd > r.options.MaxDistance {
			continue
		}

		if r.frontier.Insert(v, nd) && r.prev != nil {
			r.prev[v] = u
		}
	}
}

// pathTo walks the predecessor map back from goal to its seed.
func (r *runner[S, W]) pathTo(goal S) []S {
	path := []S{goal}
	for cur := goal; ; {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}

	// reverse in place
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
