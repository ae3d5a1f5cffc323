package sortgame

import "github.com/katalvlaran/bestfirst/search"

// gameSpace adapts the puzzle to the engine's Space contract. The goal
// state is precomputed once; comparing full arrangements is a single
// fixed-size value comparison.
type gameSpace struct {
	initial State
	goal    State
}

// Space returns the state space rooted at the given initial arrangement.
func Space(initial State) search.Space[State] {
	return gameSpace{initial: initial, goal: Goal(initial.Depth())}
}

// Initial returns the starting arrangement.
func (g gameSpace) Initial() State { return g.initial }

// IsGoal reports whether every token sits in its home room.
func (g gameSpace) IsGoal(s State) bool { return s == g.goal }

// Neighbors enumerates the legal single-token moves out of s.
func (g gameSpace) Neighbors(s State) []search.Edge[State] { return s.Moves() }

// MinCost computes the minimal total cost of sorting every token into
// its home room, starting from the given arrangement. The search is
// exact Dijkstra: no cheap admissible estimate exists for this puzzle,
// and the zero heuristic is always safe.
//
// The boolean is false when no legal move sequence solves the board.
// Additional options are forwarded to search.Run.
func MinCost(initial State, opts ...search.Option[State]) (int64, bool, error) {
	res, err := search.Run(Space(initial), opts...)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}
