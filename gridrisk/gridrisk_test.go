// Package gridrisk_test validates grid construction, parsing, the
// wraparound tiling expansion, the admissible heuristic, and the minimal
// total risk on the canonical 10×10 example field.
package gridrisk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bestfirst/gridrisk"
	"github.com/katalvlaran/bestfirst/search"
)

// exampleLines is the canonical 10×10 risk field: its minimal walk costs
// 40, and 315 after the 5×5 tiling expansion.
var exampleLines = []string{
	"1163751742",
	"1381373672",
	"2136511328",
	"3694931569",
	"7463417111",
	"1319128137",
	"1359912421",
	"3125421639",
	"1293138521",
	"2311944581",
}

// ------------------------------------------------------------------------
// 1. Construction and parsing.
// ------------------------------------------------------------------------

func TestNew_Validation(t *testing.T) {
	_, err := gridrisk.New(nil)
	require.ErrorIs(t, err, gridrisk.ErrEmptyGrid)

	_, err = gridrisk.New([][]int{{}})
	require.ErrorIs(t, err, gridrisk.ErrEmptyGrid)

	_, err = gridrisk.New([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, gridrisk.ErrNonRectangular)

	_, err = gridrisk.New([][]int{{1, 0}})
	require.ErrorIs(t, err, gridrisk.ErrBadDigit)

	g, err := gridrisk.New([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, g.Width())
	require.Equal(t, 2, g.Height())
	require.Equal(t, 3, g.RiskAt(0, 1))
}

func TestNew_DeepCopies(t *testing.T) {
	values := [][]int{{1, 2}, {3, 4}}
	g, err := gridrisk.New(values)
	require.NoError(t, err)

	// Mutating the source must not affect the grid.
	values[0][0] = 9
	require.Equal(t, 1, g.RiskAt(0, 0))
}

func TestParse_Example(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)
	require.Equal(t, 10, g.Width())
	require.Equal(t, 10, g.Height())
	require.Equal(t, 1, g.RiskAt(0, 0))
	require.Equal(t, 1, g.RiskAt(9, 9))
	require.Equal(t, 2, g.RiskAt(0, 9))
}

func TestParse_RejectsNonDigits(t *testing.T) {
	_, err := gridrisk.Parse([]string{"12", "3x"})
	require.ErrorIs(t, err, gridrisk.ErrBadDigit)
}

// ------------------------------------------------------------------------
// 2. Tiling: dimensions and wraparound increment.
// ------------------------------------------------------------------------

func TestTile_Wraparound(t *testing.T) {
	g, err := gridrisk.New([][]int{{8}})
	require.NoError(t, err)

	tiled := g.Tile(3)
	require.Equal(t, 3, tiled.Width())
	require.Equal(t, 3, tiled.Height())

	// 8 → 9 → 1 → 2 → 3 across tile-offset sums 0..4; 9 wraps to 1, never 0.
	require.Equal(t, 8, tiled.RiskAt(0, 0)) // offset sum 0
	require.Equal(t, 9, tiled.RiskAt(1, 0)) // offset sum 1
	require.Equal(t, 1, tiled.RiskAt(2, 0)) // offset sum 2: 9 wraps to 1
	require.Equal(t, 9, tiled.RiskAt(0, 1)) // offset sum 1
	require.Equal(t, 2, tiled.RiskAt(1, 2)) // offset sum 3
	require.Equal(t, 3, tiled.RiskAt(2, 2)) // offset sum 4
}

func TestTile_MatchesExampleCorner(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)

	tiled := g.Tile(5)
	require.Equal(t, 50, tiled.Width())
	require.Equal(t, 50, tiled.Height())
	// Top-left tile is a plain copy.
	require.Equal(t, g.RiskAt(3, 2), tiled.RiskAt(3, 2))
	// The far corner tile adds 4+4=8 with wraparound.
	want := (g.RiskAt(9, 9)+8-1)%9 + 1
	require.Equal(t, want, tiled.RiskAt(49, 49))
}

// ------------------------------------------------------------------------
// 3. Heuristic: non-negative and admissible against the real cost.
// ------------------------------------------------------------------------

func TestHeuristic_Admissible(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)
	h := gridrisk.Heuristic(g)

	// At the goal itself the estimate is zero.
	require.Zero(t, h(gridrisk.Cell{X: 9, Y: 9}))

	// For every cell: 0 ≤ h(cell) ≤ true remaining cost. The true cost is
	// obtained with plain Dijkstra from that cell.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			c := gridrisk.Cell{X: x, Y: y}
			est := h(c)
			require.GreaterOrEqual(t, est, int64(0))

			res, err := search.Run(spaceFrom(g, c))
			require.NoError(t, err)
			require.True(t, res.Found)
			require.LessOrEqual(t, est, res.Cost, "heuristic overestimates at (%d,%d)", x, y)
		}
	}
}

// spaceFrom re-bases the grid space at an arbitrary start cell, so the
// admissibility check can measure the true remaining cost per cell.
type rebasedSpace struct {
	inner search.Space[gridrisk.Cell]
	start gridrisk.Cell
}

func spaceFrom(g *gridrisk.Grid, start gridrisk.Cell) search.Space[gridrisk.Cell] {
	return rebasedSpace{inner: gridrisk.Space(g), start: start}
}

func (s rebasedSpace) Initial() gridrisk.Cell        { return s.start }
func (s rebasedSpace) IsGoal(c gridrisk.Cell) bool   { return s.inner.IsGoal(c) }
func (s rebasedSpace) Neighbors(c gridrisk.Cell) []search.Edge[gridrisk.Cell] {
	return s.inner.Neighbors(c)
}

// ------------------------------------------------------------------------
// 4. Minimal risk: canonical answers and A*/Dijkstra agreement.
// ------------------------------------------------------------------------

func TestMinRisk_Example(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)

	cost, found, err := gridrisk.MinRisk(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(40), cost)
}

func TestMinRisk_ExampleTiled(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)

	cost, found, err := gridrisk.MinRisk(g.Tile(5))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(315), cost)
}

func TestMinRisk_SingleCell(t *testing.T) {
	g, err := gridrisk.New([][]int{{7}})
	require.NoError(t, err)

	// Start and goal coincide; the starting cell is never counted.
	cost, found, err := gridrisk.MinRisk(g)
	require.NoError(t, err)
	require.True(t, found)
	require.Zero(t, cost)
}

func TestMinRisk_GuidedMatchesPlainDijkstra(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)

	plain, err := search.Run(gridrisk.Space(g))
	require.NoError(t, err)
	guided, err := search.Run(gridrisk.Space(g),
		search.WithHeuristic(gridrisk.Heuristic(g)),
	)
	require.NoError(t, err)

	require.Equal(t, plain.Cost, guided.Cost)
	// The heuristic must never make the search do more work.
	require.LessOrEqual(t, guided.Expanded, plain.Expanded)
}

func TestMinRisk_PathIsConsistent(t *testing.T) {
	g, err := gridrisk.Parse(exampleLines)
	require.NoError(t, err)

	res, err := search.Run(gridrisk.Space(g),
		search.WithHeuristic(gridrisk.Heuristic(g)),
		search.WithReturnPath[gridrisk.Cell](),
		search.WithOrdering(gridrisk.CellLess),
	)
	require.NoError(t, err)
	require.True(t, res.Found)

	// Path runs from the top-left to the bottom-right corner in unit steps,
	// each step costed by the risk of the cell entered.
	require.Equal(t, gridrisk.Cell{X: 0, Y: 0}, res.Path[0].State)
	require.Equal(t, gridrisk.Cell{X: 9, Y: 9}, res.Path[len(res.Path)-1].State)

	var sum int64
	for i := 1; i < len(res.Path); i++ {
		prev, cur := res.Path[i-1].State, res.Path[i].State
		manhattan := abs(cur.X-prev.X) + abs(cur.Y-prev.Y)
		require.Equal(t, 1, manhattan, "step %d is not a unit move", i)
		require.Equal(t, int64(g.RiskAt(cur.X, cur.Y)), res.Path[i].Cost)
		sum += res.Path[i].Cost
	}
	require.Equal(t, res.Cost, sum)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
