// Package gridrisk defines core types and sentinel errors for the
// weighted-grid risk-minimization state space.
package gridrisk

import "errors"

// Sentinel errors for grid construction and parsing.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridrisk: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridrisk: all rows must have the same length")
	// ErrBadDigit indicates a cell value outside the risk range 1..9.
	ErrBadDigit = errors.New("gridrisk: cell risk must be a digit in 1..9")
)

// Cell is the search state of the grid variant: a single 2D coordinate.
// It is a small comparable value, so it interns cheaply in the engine.
type Cell struct {
	X, Y int // column, row
}

// Grid is an immutable rectangular field of risk digits. risk[y][x] holds
// the cost of *entering* the cell at (x, y); the risk of the cell a walk
// starts on is never counted.
type Grid struct {
	width, height int
	risk          [][]int
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// RiskAt returns the risk digit of the cell at (x, y).
// The coordinate must be in bounds.
func (g *Grid) RiskAt(x, y int) int { return g.risk[y][x] }

// InBounds reports whether (x, y) lies within the grid boundaries.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// goal returns the bottom-right corner, the destination of every search
// on this grid.
func (g *Grid) goal() Cell {
	return Cell{X: g.width - 1, Y: g.height - 1}
}
