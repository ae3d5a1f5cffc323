// Package bestfirst is a small toolkit for shortest-path search over
// implicit state graphs — graphs far too large to materialize, whose
// edges are generated on demand as legal transitions between problem
// states.
//
// 🚀 What is bestfirst?
//
//	A pure-Go best-first search engine plus two ready-made state spaces:
//		• search/   — generic Dijkstra/A* driver over a pluggable Space
//		              contract, with a lazy-decrease-key frontier, an
//		              interned best-cost ledger and optional path
//		              reconstruction
//		• gridrisk/ — weighted-grid risk minimization (cost of a step is
//		              the risk digit of the cell entered)
//		• sortgame/ — combinatorial token-sorting puzzle (move tokens
//		              between rooms, hallway gaps and storage areas at
//		              token-specific step weights)
//
// ✨ Why choose bestfirst?
//
//   - Deterministic – explicit, documented frontier tie-break; repeated
//     runs return identical costs and identical paths
//   - Lazy – neighbor enumeration happens only when a state is popped
//     as the current cheapest candidate
//   - Exact – admissible heuristics keep A* optimal; the zero heuristic
//     falls back to plain Dijkstra, which is always safe
//
// A runnable CLI for the two bundled puzzles lives under cmd/bestfirst.
//
// Quick ASCII example (grid risk, the best path hugs the cheap cells):
//
//	1 1 6
//	1 3 8
//	2 1 3
//
// starting top-left (its risk is never counted) and walking down, down,
// right, right costs 1+2+1+3 = 7 — the cheapest of all walks to the
// bottom-right corner.
//
// Dive into the package docs of search, gridrisk and sortgame for full
// examples and complexity notes.
package bestfirst
