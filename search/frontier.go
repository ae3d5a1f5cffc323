package search

import "container/heap"

// entry is one pending frontier element: a state identifier, the
// cumulative cost g it was reached with, the priority key f = g +
// heuristic, and the push sequence number used as the final tie-break.
// Multiple entries for the same state may coexist; all but the cheapest
// are stale and skipped when popped.
type entry struct {
	id  stateID
	g   int64
	f   int64
	seq uint64
}

// frontier is a min-heap of pending entries ordered by the priority key
// f, with an explicit, documented tie-break:
//
//  1. smaller f first;
//  2. if equal, the optional caller-supplied state ordering (WithOrdering);
//  3. if still equal (or no ordering was given), smaller push sequence
//     number first.
//
// Both secondary keys are deterministic for a deterministic Space, so the
// pop order — and therefore the reconstructed path among equal-cost
// alternatives — is reproducible across runs. Container-default ordering
// is never relied upon.
//
// The "lazy decrease-key" strategy from the classic binary-heap Dijkstra
// applies: improving a state's cost pushes a fresh entry instead of
// re-keying the old one, and the stale entry is discarded on pop.
type frontier[S comparable] struct {
	entries []entry
	states  *arena[S]         // reverse lookup for the ordering tie-break
	less    func(a, b S) bool // optional secondary ordering over states
	seq     uint64            // monotone push counter
}

// newFrontier creates an empty frontier backed by the given arena.
func newFrontier[S comparable](states *arena[S], less func(a, b S) bool) *frontier[S] {
	f := &frontier[S]{
		entries: make([]entry, 0),
		states:  states,
		less:    less,
	}
	heap.Init(f)

	return f
}

// push inserts an entry for id reached with cost g and priority key fKey.
func (f *frontier[S]) push(id stateID, g, fKey int64) {
	f.seq++
	heap.Push(f, entry{id: id, g: g, f: fKey, seq: f.seq})
}

// popMin removes and returns the entry with the smallest priority key.
// The caller must check Len() > 0 first.
func (f *frontier[S]) popMin() entry {
	return heap.Pop(f).(entry)
}

// Len returns the number of pending entries. Part of heap.Interface.
func (f *frontier[S]) Len() int { return len(f.entries) }

// Less implements the documented three-level ordering. Part of heap.Interface.
func (f *frontier[S]) Less(i, j int) bool {
	a, b := f.entries[i], f.entries[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if f.less != nil && a.id != b.id {
		sa, sb := f.states.state(a.id), f.states.state(b.id)
		if f.less(sa, sb) {
			return true
		}
		if f.less(sb, sa) {
			return false
		}
	}

	return a.seq < b.seq
}

// Swap swaps two entries. Part of heap.Interface.
func (f *frontier[S]) Swap(i, j int) {
	f.entries[i], f.entries[j] = f.entries[j], f.entries[i]
}

// Push appends x. Called by heap.Push; x must be an entry.
func (f *frontier[S]) Push(x any) {
	f.entries = append(f.entries, x.(entry))
}

// Pop removes and returns the last entry. Called by heap.Pop.
func (f *frontier[S]) Pop() any {
	old := f.entries
	n := len(old)
	item := old[n-1]
	f.entries = old[:n-1]

	return item
}
