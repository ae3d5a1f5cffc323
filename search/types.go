// Package search defines the core contracts and configuration options
// for the generic best-first (Dijkstra/A*) engine.
//
// The engine explores an implicit graph: nodes are opaque problem
// states, edges are legal transitions with non-negative integer cost,
// and the full graph is never materialized. All problem-specific
// knowledge lives behind the Space contract; the engine only pops the
// cheapest pending state, asks Space for its neighbors, and keeps a
// ledger of best known costs.
//
// Errors (sentinel):
//
//	– ErrNilSpace          if a nil Space is passed to Run.
//	– ErrNegativeEdgeCost  if Space.Neighbors produces an edge with cost < 0.
//	– ErrNegativeHeuristic if the configured heuristic returns a value < 0.
//	– ErrBadMaxCost        if MaxCost is set to a negative value (panic).
package search

import (
	"errors"
	"math"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNilSpace indicates that a nil Space was passed to Run.
	ErrNilSpace = errors.New("search: state space is nil")

	// ErrNegativeEdgeCost indicates that the Space produced an edge with a
	// negative cost. Non-negative costs are required for Dijkstra/A*
	// correctness; a negative cost is a defect in the Space implementation,
	// so the engine fails fast instead of returning a wrong answer.
	ErrNegativeEdgeCost = errors.New("search: negative edge cost produced by state space")

	// ErrNegativeHeuristic indicates that the configured heuristic returned
	// a negative estimate. Heuristics must be ≥ 0 everywhere.
	ErrNegativeHeuristic = errors.New("search: heuristic returned a negative estimate")

	// ErrBadMaxCost indicates that MaxCost was set to a negative value,
	// which is not meaningful for a cost cap.
	ErrBadMaxCost = errors.New("search: MaxCost must be non-negative")
)

// Space describes a problem-specific state space: the initial state, the
// goal predicate, and the legal single-step transitions out of a state.
//
// The state type S must be comparable: states are used as map keys by the
// engine's interning arena, so two states that represent the same problem
// configuration must compare equal (value semantics — use fixed-size
// arrays, not slices, inside composite states).
//
// Contract (violations are defects in the implementation, not runtime
// conditions the engine recovers from):
//
//   - IsGoal must be a deterministic predicate.
//   - Neighbors must be deterministic and must enumerate all legal
//     single-step transitions with cost ≥ 0. It may be expensive per
//     call; the engine invokes it lazily, only when a state is popped as
//     the current cheapest candidate, and at most once per confirmed
//     optimal cost.
type Space[S comparable] interface {
	// Initial returns the state the search starts from.
	Initial() S

	// IsGoal reports whether s is a goal state.
	IsGoal(s S) bool

	// Neighbors enumerates every legal single-step transition out of s.
	Neighbors(s S) []Edge[S]
}

// Edge is a single transition produced on demand by a Space: the
// non-negative cost of taking it and the state it leads to.
// Edges are never stored globally by the engine.
type Edge[S comparable] struct {
	Cost int64 // transition cost, must be ≥ 0
	To   S     // target state
}

// Heuristic estimates the remaining cost from s to the nearest goal.
// It must never overestimate the true remaining cost (admissibility),
// or A*'s optimality guarantee is void. It must be ≥ 0 everywhere.
// The zero-valued default (no heuristic) degrades the search to plain
// Dijkstra, which is always safe.
type Heuristic[S comparable] func(s S) int64

// Step is one move of a reconstructed path: the cost of the edge taken
// and the state it arrived at. The first step of a path is always the
// initial state with Cost 0.
type Step[S comparable] struct {
	Cost  int64 // cost of the edge entering State (0 for the initial state)
	State S     // state reached by this step
}

// Result is the outcome of one search invocation.
//
// Found=false with a nil error means the goal is unreachable — a normal,
// expected outcome ("no path"), not an error.
type Result[S comparable] struct {
	Found    bool      // whether a goal state was reached
	Cost     int64     // minimal total cost to the goal (valid when Found)
	Goal     S         // the goal state that was reached (valid when Found)
	Path     []Step[S] // optimal path, initial state first; nil unless WithReturnPath
	Expanded int       // number of states whose neighbors were queried
}

// Options configures the behavior of Run.
//
// Heuristic  – optional admissible estimate; nil means plain Dijkstra.
// ReturnPath – if true, record predecessors and reconstruct the path.
// MaxCost    – cap on cumulative cost; states beyond it are not explored.
// Ordering   – optional strict ordering over states, used to break ties
//
//	between frontier entries of equal priority.
type Options[S comparable] struct {
	Heuristic  Heuristic[S]      // estimate of remaining cost (nil = Dijkstra)
	ReturnPath bool              // whether to track predecessors and build Result.Path
	MaxCost    int64             // maximum cumulative cost to explore
	Ordering   func(a, b S) bool // secondary tie-break key (see doc.go)
}

// Option represents a functional option for configuring Run.
type Option[S comparable] func(*Options[S])

// WithHeuristic sets the heuristic guiding expansion order (A*).
// The heuristic must be admissible and non-negative; a negative return
// value surfaces as ErrNegativeHeuristic during the run.
func WithHeuristic[S comparable](h Heuristic[S]) Option[S] {
	return func(o *Options[S]) {
		o.Heuristic = h
	}
}

// WithReturnPath enables predecessor tracking and path reconstruction.
// If not set (default), Result.Path is nil and no predecessor storage is
// allocated.
func WithReturnPath[S comparable]() Option[S] {
	return func(o *Options[S]) {
		o.ReturnPath = true
	}
}

// WithMaxCost sets a maximum cumulative cost threshold.
// States whose cheapest known cost exceeds this value are not explored;
// a goal beyond the cap is reported as not found.
// Must pass a non-negative value; negative values cause ErrBadMaxCost
// (via panic when the option is applied).
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxCost[S comparable](max int64) Option[S] {
	return func(o *Options[S]) {
		if max < 0 {
			// Panic to signal invalid configuration early; options cannot
			// return errors.
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = max
	}
}

// WithOrdering sets an explicit strict ordering over states, used as the
// secondary tie-break between frontier entries of equal priority (e.g.
// lexicographic state ordering). Without it, ties fall through to the
// push sequence number, which is also deterministic for a deterministic
// Space but depends on discovery order rather than on state identity.
func WithOrdering[S comparable](less func(a, b S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Ordering = less
	}
}

// DefaultOptions returns an Options struct initialized with defaults.
//
// Defaults:
//   - Heuristic:  nil (plain Dijkstra).
//   - ReturnPath: false (no predecessor storage, Result.Path == nil).
//   - MaxCost:    math.MaxInt64 (no cost cap; explore all reachable).
//   - Ordering:   nil (ties broken by push sequence).
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		Heuristic:  nil,
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		Ordering:   nil,
	}
}
