package dijkstra

import "container/heap"

// DistanceMap is a frontier of states keyed by their tentative distance.
//
// It remembers, for every queued state, the best distance inserted so far and
// can pop the state with the smallest such distance. Improvements are pushed as
// new heap entries ("lazy decrease-key"); superseded entries are discarded when
// they surface. States popped with equal distances come out in the order their
// winning distance was inserted.
//
// The zero value is not usable; construct with NewDistanceMap.
type DistanceMap[S comparable, W Weight] struct {
	best map[S]W      // state → best tentative distance while queued
	pq   nodePQ[S, W] // min-heap of candidate entries, possibly stale
	seq  uint64       // insertion counter used as a tie-breaker
}

// NewDistanceMap returns an empty DistanceMap.
func NewDistanceMap[S comparable, W Weight]() *DistanceMap[S, W] {
	return &DistanceMap[S, W]{best: make(map[S]W)}
}

// Insert records distance d for state s if s is not queued yet or d is strictly
// smaller than its current tentative distance. It reports whether the map changed.
func (m *DistanceMap[S, W]) Insert(s S, d W) bool {
	if cur, ok := m.best[s]; ok && cur <= d {
		return false
	}
	m.best[s] = d
	heap.Push(&m.pq, &nodeItem[S, W]{state: s, dist: d, seq: m.seq})
	m.seq++

	return true
}

// PopNearest removes and returns the queued state with the smallest distance.
// It returns false when no state is queued.
//
// A popped state is forgotten; inserting it again queues it anew.
func (m *DistanceMap[S, W]) PopNearest() (S, W, bool) {
	var item *nodeItem[S, W]
	for m.pq.Len() > 0 {
		item = heap.Pop(&m.pq).(*nodeItem[S, W])

		// Skip entries that were superseded by a better insert or already popped.
		if cur, ok := m.best[item.state]; !ok || cur != item.dist {
			continue
		}
		delete(m.best, item.state)

		return item.state, item.dist, true
	}

	var (
		zs S
		zw W
	)
	return zs, zw, false
}

// Len returns the number of distinct states currently queued.
func (m *DistanceMap[S, W]) Len() int { return len(m.best) }

// Distance returns the tentative distance of a queued state.
func (m *DistanceMap[S, W]) Distance(s S) (W, bool) {
	d, ok := m.best[s]
	return d, ok
}

// nodeItem represents a state and its tentative distance.
type nodeItem[S comparable, W Weight] struct {
	state S      // search state
	dist  W      // tentative distance from the seeds
	seq   uint64 // insertion order, breaks distance ties
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq) ascending.
type nodePQ[S comparable, W Weight] []*nodeItem[S, W]

// Len returns the number of items in the heap.
func (pq nodePQ[S, W]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, earlier insert on ties.
func (pq nodePQ[S, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ[S, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[S, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[S, W])) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns any that must be cast to *nodeItem.
func (pq *nodePQ[S, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
