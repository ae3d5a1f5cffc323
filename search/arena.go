package search

// stateID is a dense integer identifier for an interned state.
// IDs are assigned in discovery order, starting at 0 for the initial state.
type stateID int32

// noState marks the absence of a predecessor (only the initial state has none).
const noState stateID = -1

// unseen marks a ledger slot whose state has never been reached.
const unseen int64 = -1

// pred is one flat predecessor record: the cost of the edge that reached
// the state and the identifier of the state it was reached from.
type pred struct {
	cost int64
	prev stateID
}

// arena interns states into dense stateIDs and owns the per-state books
// of one search invocation: the best-cost ledger, the expansion marks,
// and (optionally) the flat predecessor table used for path
// reconstruction. Interning means the deep composite state value is
// hashed exactly once, on first sight; every later ledger, frontier and
// predecessor operation works on plain integers.
type arena[S comparable] struct {
	ids      map[S]stateID // state value → dense identifier
	states   []S           // identifier → state value (reverse lookup)
	best     []int64       // identifier → best known cumulative cost, or unseen
	expanded []bool        // identifier → neighbors already queried at the current best cost
	preds    []pred        // identifier → (edge cost, predecessor); nil unless tracking
}

// newArena creates an empty arena. trackPreds controls whether
// predecessor records are kept (they are only needed when the caller
// requested path reconstruction).
func newArena[S comparable](trackPreds bool) *arena[S] {
	a := &arena[S]{
		ids: make(map[S]stateID),
	}
	if trackPreds {
		a.preds = []pred{}
	}

	return a
}

// intern returns the dense identifier for s, assigning a fresh one (with
// an unseen ledger slot and no predecessor) on first sight.
func (a *arena[S]) intern(s S) stateID {
	if id, ok := a.ids[s]; ok {
		return id
	}
	id := stateID(len(a.states))
	a.ids[s] = id
	a.states = append(a.states, s)
	a.best = append(a.best, unseen)
	a.expanded = append(a.expanded, false)
	if a.preds != nil {
		a.preds = append(a.preds, pred{cost: 0, prev: noState})
	}

	return id
}

// state returns the state value for an identifier.
func (a *arena[S]) state(id stateID) S { return a.states[id] }

// bestCost returns the best known cumulative cost for id, or unseen.
func (a *arena[S]) bestCost(id stateID) int64 { return a.best[id] }

// improve records a strictly better cumulative cost for id and clears its
// expansion mark, so the state may be expanded again at the new cost.
func (a *arena[S]) improve(id stateID, g int64) {
	a.best[id] = g
	a.expanded[id] = false
}

// markExpanded flags id as expanded at its current best cost.
func (a *arena[S]) markExpanded(id stateID) { a.expanded[id] = true }

// wasExpanded reports whether id was already expanded at its current best cost.
func (a *arena[S]) wasExpanded(id stateID) bool { return a.expanded[id] }

// setPred records the predecessor of id. No-op when tracking is disabled.
func (a *arena[S]) setPred(id stateID, cost int64, prev stateID) {
	if a.preds != nil {
		a.preds[id] = pred{cost: cost, prev: prev}
	}
}

// predOf returns the predecessor record for id. Only meaningful when
// predecessor tracking is enabled.
func (a *arena[S]) predOf(id stateID) pred { return a.preds[id] }

// size returns the number of distinct interned states.
func (a *arena[S]) size() int { return len(a.states) }
