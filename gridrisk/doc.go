// Package gridrisk instantiates the best-first search engine for
// weighted-grid risk minimization: find the walk of minimal total risk
// from the top-left to the bottom-right cell of a rectangular field of
// risk digits, where entering a cell costs its digit and the starting
// cell costs nothing.
//
// Overview:
//
//   - Grid: an immutable rectangular field of digits 1..9, built from a
//     2D slice (New) or from text lines of digits (Parse).
//   - Tile: the n×n logical expansion with wraparound risk increment —
//     each tile copy at offset (tx, ty) adds tx+ty to every digit,
//     wrapping 9 back to 1.
//   - Space: the engine adapter. States are cells; transitions are the
//     up-to-four in-bounds orthogonal moves, costed by the cell entered.
//   - Heuristic: truncated Euclidean distance to the goal corner.
//     Admissible because every step covers one unit of distance and
//     costs at least 1, so A* stays exact while expanding far fewer
//     states than plain Dijkstra on large tiled grids.
//   - MinRisk: the one-call convenience wrapper.
//
// Example:
//
//	g, err := gridrisk.Parse(lines)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, found, err := gridrisk.MinRisk(g.Tile(5))
//
// Errors (sentinel):
//
//	– ErrEmptyGrid      if the input has no rows or no columns.
//	– ErrNonRectangular if rows differ in length.
//	– ErrBadDigit       if a cell is not a digit in 1..9.
//
// Complexity: a search over a W×H grid runs in O(W×H log(W×H)) time and
// O(W×H) memory.
package gridrisk
