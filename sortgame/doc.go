// Package sortgame instantiates the best-first search engine for a
// combinatorial token-sorting puzzle: four kinds of tokens (A–D) start
// shuffled across four room stacks and must each reach their home room,
// moving one token at a time through a shared hallway at token-specific
// step costs (A pays 1 per step, B 10, C 100, D 1000).
//
// Board:
//
//	#############
//	#...........#      hallway: 2 storage slots, 3 gaps, 2 storage slots
//	###B#C#B#D###      rooms 0..3, top slot
//	  #A#D#C#A#        rooms 0..3, bottom slot
//	  #########
//
// Tokens stop only in the three gaps between room entrances or in the
// two-slot storage areas at either end of the hallway — never directly
// above a room. A token enters its home room only while that room is
// free of foreign tokens, and a room that holds nothing but its own kind
// is settled and never disturbed.
//
// The search state is the full arrangement (every room stack, gap and
// storage slot) — a deep composite value, which is why the engine
// interns states into dense identifiers instead of re-hashing the whole
// arrangement on every ledger operation. The state graph is explored
// with exact Dijkstra (zero heuristic): unlike the grid variant there is
// no cheap admissible remaining-cost estimate.
//
// Entry points:
//
//   - Parse:   read the classic ASCII board (room depth inferred).
//   - Deepen:  fold in the two fixed extra rows of the extended 4-deep
//     variant.
//   - Space:   the engine adapter; Moves enumerates legal transitions.
//   - MinCost: one-call minimal sorting cost.
//
// The canonical example board costs 12521 to sort, and 44169 in its
// extended 4-deep form.
//
// Errors (sentinel): ErrBadBoard, ErrBadDepth, ErrBadToken — all
// surfaced by Parse/Deepen before any search begins; the search itself
// cannot fail on a well-formed State.
package sortgame
