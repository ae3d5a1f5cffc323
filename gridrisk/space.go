package gridrisk

import (
	"math"

	"github.com/katalvlaran/bestfirst/search"
)

// neighborOffsets are the four axis-aligned moves: N, E, S, W.
var neighborOffsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// gridSpace adapts a Grid to the engine's Space contract: start at the
// top-left cell, reach the bottom-right cell, pay the risk digit of
// every cell entered.
type gridSpace struct {
	g *Grid
}

// Space returns the state space of g for use with search.Run: the
// initial state is the top-left cell, the goal is the bottom-right cell,
// and each transition to an in-bounds orthogonal neighbor costs that
// neighbor's risk digit.
func Space(g *Grid) search.Space[Cell] {
	return gridSpace{g: g}
}

// Initial returns the top-left cell.
func (s gridSpace) Initial() Cell { return Cell{X: 0, Y: 0} }

// IsGoal reports whether c is the bottom-right cell.
func (s gridSpace) IsGoal(c Cell) bool { return c == s.g.goal() }

// Neighbors returns up to four in-bounds orthogonal cells, each costed
// by the risk digit of the cell entered.
func (s gridSpace) Neighbors(c Cell) []search.Edge[Cell] {
	out := make([]search.Edge[Cell], 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		nx, ny := c.X+d[0], c.Y+d[1]
		if !s.g.InBounds(nx, ny) {
			continue
		}
		out = append(out, search.Edge[Cell]{
			Cost: int64(s.g.RiskAt(nx, ny)),
			To:   Cell{X: nx, Y: ny},
		})
	}

	return out
}

// Heuristic returns the truncated Euclidean distance from a cell to the
// bottom-right corner of g. Every step costs at least 1 and covers
// exactly one unit of distance, so the straight-line estimate never
// overestimates the true remaining cost — it is admissible and keeps A*
// exact.
func Heuristic(g *Grid) search.Heuristic[Cell] {
	goal := g.goal()

	return func(c Cell) int64 {
		dx := float64(goal.X - c.X)
		dy := float64(goal.Y - c.Y)

		return int64(math.Sqrt(dx*dx + dy*dy))
	}
}

// CellLess is a row-major ordering over cells, suitable as an explicit
// frontier tie-break (search.WithOrdering) when reproducible paths are
// wanted.
func CellLess(a, b Cell) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X < b.X
}

// MinRisk computes the minimal total risk of a walk from the top-left
// to the bottom-right cell of g, counting the risk of every cell entered
// and never the starting cell. It runs A* under the Euclidean heuristic.
//
// The boolean mirrors the engine's outcome: false means no walk exists
// (impossible on a rectangular grid, but kept for contract symmetry).
// Additional options are forwarded to search.Run.
//
// Complexity: O(W×H log(W×H)).
func MinRisk(g *Grid, opts ...search.Option[Cell]) (int64, bool, error) {
	full := append([]search.Option[Cell]{search.WithHeuristic(Heuristic(g))}, opts...)
	res, err := search.Run(Space(g), full...)
	if err != nil {
		return 0, false, err
	}

	return res.Cost, res.Found, nil
}
