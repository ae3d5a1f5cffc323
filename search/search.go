package search

import "fmt"

// Run executes a best-first search over the given state space and returns
// the minimal total cost from the initial state to the nearest goal.
// It accepts functional options to customize behavior (WithHeuristic,
// WithReturnPath, WithMaxCost, WithOrdering).
//
// Returns:
//
//   - Result.Found=true with Cost, Goal and (if requested) Path when a
//     goal state was reached; Cost is the exact minimum over all paths
//     as long as edge costs are ≥ 0 and the heuristic is admissible.
//   - Result.Found=false with a nil error when no goal is reachable —
//     a normal outcome, not an error.
//   - err: a sentinel error for contract violations (ErrNilSpace,
//     ErrNegativeEdgeCost, ErrNegativeHeuristic), nil otherwise.
//
// Complexity (V = reachable states, E = generated edges):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Run[S comparable](space Space[S], opts ...Option[S]) (Result[S], error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions[S]()
	var opt Option[S]
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the space is non-nil before touching it.
	if space == nil {
		return Result[S]{}, ErrNilSpace
	}

	// 3) Prepare per-invocation state: the interning arena (ledger +
	//    optional predecessor table) and the frontier ordered by the
	//    documented tie-break. Nothing here outlives this call.
	states := newArena[S](cfg.ReturnPath)
	r := &runner[S]{
		space:    space,
		options:  cfg,
		states:   states,
		frontier: newFrontier(states, cfg.Ordering),
	}

	// 4) Seed the search and run the main loop to Found or Exhausted.
	if err := r.init(); err != nil {
		return Result[S]{}, err
	}

	return r.process()
}

// runner holds the mutable state for a single Run invocation.
type runner[S comparable] struct {
	space    Space[S]     // the problem-specific state space; read-only here
	options  Options[S]   // configuration (heuristic, cap, tie-break, path)
	states   *arena[S]    // interning arena: ledger, expansion marks, predecessors
	frontier *frontier[S] // cost-ordered pending entries
	expanded int          // number of neighbor expansions performed
}

// init interns the initial state with cost 0 and pushes its frontier entry.
func (r *runner[S]) init() error {
	initial := r.space.Initial()
	id := r.states.intern(initial)
	r.states.improve(id, 0)

	// The initial priority key is pure heuristic: f = g + h = h.
	h, err := r.estimate(initial)
	if err != nil {
		return err
	}
	r.frontier.push(id, 0, h)

	return nil
}

// process is the core loop: repeatedly pop the cheapest pending entry,
// discard it if stale, stop on goal, otherwise expand its neighbors.
//
// Loop termination:
//
//   - A goal state is popped with its optimal cost (Found).
//   - The frontier empties without reaching a goal (Exhausted).
//   - The cheapest pending cost exceeds MaxCost (everything beyond the
//     cap is unreachable by definition, so this is also Exhausted).
func (r *runner[S]) process() (Result[S], error) {
	for r.frontier.Len() > 0 {
		// 1) Pop the entry with the smallest priority key.
		e := r.frontier.popMin()

		// 2) Skip stale entries: a strictly better cost for this state was
		//    confirmed after this entry was pushed. Also skip re-pops of a
		//    state already expanded at its current best cost — re-expansion
		//    with an equal cost is a guaranteed no-op.
		if e.g > r.states.bestCost(e.id) || r.states.wasExpanded(e.id) {
			continue
		}

		// 3) Frontier entries are popped in non-decreasing f order, so once
		//    the cheapest pending cost exceeds the cap nothing reachable
		//    remains. Do not expand; stop.
		if e.g > r.options.MaxCost {
			break
		}

		// 4) Goal test on pop: the first time a goal is popped, its g is the
		//    minimal total cost (this is exactly Dijkstra's invariant, kept
		//    intact by admissible heuristics).
		s := r.states.state(e.id)
		if r.space.IsGoal(s) {
			res := Result[S]{
				Found:    true,
				Cost:     e.g,
				Goal:     s,
				Expanded: r.expanded,
			}
			if r.options.ReturnPath {
				res.Path = r.reconstruct(e.id)
			}

			return res, nil
		}

		// 5) Expand: query neighbors exactly once per confirmed optimal cost
		//    and relax each produced edge.
		r.states.markExpanded(e.id)
		r.expanded++
		if err := r.relax(e); err != nil {
			return Result[S]{}, err
		}
	}

	// Exhausted: no goal is reachable (within the cap). A normal outcome.
	return Result[S]{Found: false, Expanded: r.expanded}, nil
}

// relax examines every edge out of the popped entry's state and attempts
// to improve the recorded cost of each target. Improvements update the
// ledger, record the predecessor, and push a fresh frontier entry
// (lazy decrease-key).
//
// Assumes e.g is the confirmed optimal cost of e.id.
func (r *runner[S]) relax(e entry) error {
	var (
		edge      Edge[S]
		id        stateID
		candidate int64
	)
	for _, edge = range r.space.Neighbors(r.states.state(e.id)) {
		// The implicit graph cannot be pre-scanned for negative costs the
		// way a materialized graph can, so each edge is checked as it is
		// produced.
		if edge.Cost < 0 {
			return fmt.Errorf("%w: cost %d on edge to state %v", ErrNegativeEdgeCost, edge.Cost, edge.To)
		}

		candidate = e.g + edge.Cost

		// Never explore beyond the cost cap.
		if candidate > r.options.MaxCost {
			continue
		}

		// Strict improvement only: equal-cost rediscoveries are ignored, so
		// the ledger is monotonically non-increasing per state and no
		// duplicate entry is pushed for a tie.
		id = r.states.intern(edge.To)
		if best := r.states.bestCost(id); best != unseen && candidate >= best {
			continue
		}

		r.states.improve(id, candidate)
		r.states.setPred(id, edge.Cost, e.id)

		h, err := r.estimate(edge.To)
		if err != nil {
			return err
		}
		r.frontier.push(id, candidate, candidate+h)
	}

	return nil
}

// estimate evaluates the configured heuristic for s, failing fast on a
// negative value. A nil heuristic contributes 0 (plain Dijkstra).
func (r *runner[S]) estimate(s S) (int64, error) {
	if r.options.Heuristic == nil {
		return 0, nil
	}
	h := r.options.Heuristic(s)
	if h < 0 {
		return 0, fmt.Errorf("%w: %d for state %v", ErrNegativeHeuristic, h, s)
	}

	return h, nil
}
