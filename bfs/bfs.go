// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores states in increasing distance from the start states,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"errors"
	"fmt"
	"iter"
)

// errFound stops the loop once a goal state is visited.
var errFound = errors.New("bfs: goal found")

// queueItem pairs a state with its BFS depth.
type queueItem[S comparable] struct {
	state S
	depth int
}

// walker encapsulates mutable BFS state.
type walker[S comparable] struct {
	next    func(S) iter.Seq[S]
	opts    Options[S]
	isEnd   func(S) bool // nil: walk everything reachable
	queue   []queueItem[S]
	visited map[S]bool
	res     *Result[S]
	goal    queueItem[S]
}

// Walk runs breadth-first search from every state in starts, applying any
// number of functional Options, and returns everything it reached.
// Invalid options fail with ErrOptionViolation before anything is visited.
// An OnVisit error aborts the walk and is returned wrapped, together with the
// partial result.
func Walk[S comparable](starts []S, next func(S) iter.Seq[S], opts ...Option[S]) (*Result[S], error) {
	w, err := newWalker(starts, nil, next, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop()
}

// Length returns the number of edges on a shortest path from start to any
// state accepted by isEnd, or false if none is reachable. It gives the same
// answer as dijkstra.Length with every weight fixed at 1.
//
// isEnd is tested when a state is visited, so a start that satisfies it yields 0.
// An invalid option panics with ErrOptionViolation; a hook error ends the
// search without a result.
func Length[S comparable](start S, isEnd func(S) bool, next func(S) iter.Seq[S], opts ...Option[S]) (int, bool) {
	return LengthFrom([]S{start}, isEnd, next, opts...)
}

// LengthFrom is Length with several start states, all at depth 0.
func LengthFrom[S comparable](starts []S, isEnd func(S) bool, next func(S) iter.Seq[S], opts ...Option[S]) (int, bool) {
	w, err := newWalker(starts, isEnd, next, opts)
	if err != nil {
		panic(err)
	}
	if err = w.loop(); errors.Is(err, errFound) {
		return w.goal.depth, true
	}

	return 0, false
}

// Reachable returns the set of states reachable from seed, seed included.
func Reachable[S comparable](seed S, next func(S) iter.Seq[S]) map[S]struct{} {
	res, _ := Walk([]S{seed}, next)
	set := make(map[S]struct{}, len(res.Order))
	for _, s := range res.Order {
		set[s] = struct{}{}
	}

	return set
}

// Components partitions vertices into groups reachable from one another,
// assuming next describes a symmetric relation. Components appear in the order
// of their first vertex in the sequence; each lists its states in BFS order.
// States reached through next that are not in vertices are still included.
func Components[S comparable](vertices iter.Seq[S], next func(S) iter.Seq[S]) [][]S {
	seen := make(map[S]bool)
	var comps [][]S
	for v := range vertices {
		if seen[v] {
			continue
		}
		res, _ := Walk([]S{v}, next)
		for _, s := range res.Order {
			seen[s] = true
		}
		comps = append(comps, res.Order)
	}

	return comps
}

// newWalker builds options, catching any invalid ones immediately, and seeds the queue.
func newWalker[S comparable](starts []S, isEnd func(S) bool, next func(S) iter.Seq[S], opts []Option[S]) (*walker[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		next:    next,
		opts:    o,
		isEnd:   isEnd,
		queue:   make([]queueItem[S], 0, len(starts)),
		visited: make(map[S]bool),
		res: &Result[S]{
			Depth:  make(map[S]int),
			Parent: make(map[S]S),
		},
	}

	// Seed queue with start states (no parent); duplicates collapse.
	for _, s := range starts {
		if !w.visited[s] {
			w.enqueue(s, 0)
		}
	}

	return w, nil
}

// enqueue marks s visited at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[S]) enqueue(s S, d int) {
	w.visited[s] = true
	w.res.Depth[s] = d
	w.opts.OnEnqueue(s, d)
	w.queue = append(w.queue, queueItem[S]{state: s, depth: d})
}

// loop processes the queue until empty, goal, or error.
func (w *walker[S]) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.isEnd != nil && w.isEnd(item.state) {
			w.goal = item
			return errFound
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.state, item.depth)
	return item
}

// visit records the state in Order and calls OnVisit.
func (w *walker[S]) visit(item queueItem[S]) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.state, err)
	}
	return nil
}

// enqueueNeighbors pulls the successors once, applies filtering and MaxDepth,
// and enqueues each unseen neighbor.
func (w *walker[S]) enqueueNeighbors(item queueItem[S]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := range w.next(item.state) {
		if !w.opts.FilterNeighbor(item.state, nbr) {
			continue
		}

		// first time seen?
		if !w.visited[nbr] {
			w.res.Parent[nbr] = item.state
			w.enqueue(nbr, nextDepth)
		}
	}
}
