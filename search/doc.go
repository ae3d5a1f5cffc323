// Package search provides a precise, deterministic best-first search
// engine — Dijkstra's algorithm and A* — over implicit state graphs
// with non-negative edge costs.
//
// Overview:
//
//   - The graph is never materialized. A Space implementation produces
//     the initial state, a goal predicate, and the legal transitions out
//     of a state on demand; the engine expands states lazily, cheapest
//     first, until a goal is popped or the frontier is exhausted.
//   - With no heuristic the engine is plain Dijkstra. With an admissible
//     heuristic it is A*: the heuristic guides expansion order without
//     sacrificing optimality.
//   - States are interned into dense integer identifiers through an
//     arena-backed lookup table, so the best-cost ledger and predecessor
//     records are flat slices rather than repeated hashing of deep
//     composite values.
//
// When to use:
//
//   - Shortest paths over combinatorial state spaces: puzzle
//     reorganization, weighted-grid routing, any domain whose moves form
//     a finite, deterministic, non-negatively costed transition system.
//   - As the common engine behind several independent problem domains —
//     see gridrisk and sortgame in this module for two instantiations.
//
// Key behaviors:
//
//   - Lazy decrease-key: improving a state's cost pushes a fresh frontier
//     entry; stale entries are skipped when popped. Duplicate entries for
//     one state may coexist in the frontier at any time.
//   - Strict improvement: the ledger is updated only when a candidate
//     path is strictly cheaper than the recorded best, so a state is
//     expanded at most once per confirmed optimal cost and re-expansion
//     with a worse or equal cost is a no-op.
//   - Deterministic tie-break: frontier entries of equal priority are
//     ordered by the optional WithOrdering comparison over states, then
//     by push sequence number. Repeated runs on the same Space return
//     identical costs and identical reconstructed paths; the engine never
//     relies on container-default ordering.
//   - "No path" is a normal outcome: Run returns Result{Found: false}
//     with a nil error when the frontier is exhausted.
//
// Performance and complexity (V = reachable states, E = generated edges):
//
//   - Time:  O((V + E) log V)
//   - Each state is expanded at most once per confirmed optimal cost.
//   - Each relaxation may push one frontier entry: up to E pushes.
//   - Each heap Push/Pop costs O(log N), N ≤ V + E.
//   - Space: O(V + E)
//   - O(V) for the interning arena, ledger and optional predecessors.
//   - O(E) worst-case frontier entries under lazy decrease-key.
//
// Error handling:
//
//   - ErrNilSpace, ErrNegativeEdgeCost, ErrNegativeHeuristic cover
//     contract violations by the caller or the Space implementation.
//     They are defects surfaced fast, not recoverable conditions.
//   - ErrBadMaxCost is raised (via panic) when a WithMaxCost option built
//     with a negative cap is applied; options cannot return errors, so
//     misconfiguration surfaces before any search work begins.
//
// Concurrency:
//
//   - One Run call is single-threaded and synchronous; it owns its
//     frontier, ledger and predecessor storage exclusively and discards
//     them on return. Running independent searches in parallel is safe
//     because nothing is shared between invocations.
//
// API reference:
//
//	func Run[S comparable](space Space[S], opts ...Option[S]) (Result[S], error)
//
//	  - space: the problem-specific state space (must be non-nil).
//	  - opts:  zero or more functional options:
//	      • WithHeuristic(h):  admissible remaining-cost estimate (A*).
//	      • WithReturnPath():  record predecessors, fill Result.Path.
//	      • WithMaxCost(x):    do not explore states costing more than x.
//	      • WithOrdering(less): explicit tie-break ordering over states.
//	  - Result.Found/Cost/Goal/Path/Expanded describe the outcome; see
//	    types.go for the exact semantics of each field.
package search
