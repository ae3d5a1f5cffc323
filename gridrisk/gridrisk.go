// Package gridrisk provides grid construction, digit-line parsing and
// the wraparound tiling expansion for the weighted-grid risk search.
package gridrisk

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of risk
// digits (1..9). It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadDigit for values
// outside 1..9.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		for x, v := range row {
			if v < 1 || v > 9 {
				return nil, fmt.Errorf("%w: got %d at (%d,%d)", ErrBadDigit, v, x, y)
			}
		}
	}

	// Deep copy to prevent external mutation.
	risk := make([][]int, h)
	for y := 0; y < h; y++ {
		risk[y] = make([]int, w)
		copy(risk[y], values[y])
	}

	return &Grid{width: w, height: h, risk: risk}, nil
}

// Parse builds a Grid from text lines of decimal digits, one row per
// line, as puzzle inputs supply them.
// Returns the same sentinel errors as New, plus ErrBadDigit for any
// non-digit character.
func Parse(lines []string) (*Grid, error) {
	values := make([][]int, 0, len(lines))
	for y, line := range lines {
		row := make([]int, 0, len(line))
		for x, c := range line {
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: character %q at (%d,%d)", ErrBadDigit, c, x, y)
			}
			row = append(row, int(c-'0'))
		}
		values = append(values, row)
	}

	return New(values)
}

// Tile returns a new grid logically tiled n×n. Each copy at tile offset
// (tx, ty) increments every risk digit by tx+ty with wraparound in 1..9:
//
//	risk' = (risk + tx + ty - 1) % 9 + 1
//
// so a 9 wraps to 1, never to 0. Tile(1) is a plain copy.
// Complexity: O(n²×W×H).
func (g *Grid) Tile(n int) *Grid {
	w, h := g.width*n, g.height*n
	risk := make([][]int, h)
	for y := 0; y < h; y++ {
		risk[y] = make([]int, w)
	}
	for ty := 0; ty < n; ty++ {
		for tx := 0; tx < n; tx++ {
			ox, oy := tx*g.width, ty*g.height
			for y := 0; y < g.height; y++ {
				for x := 0; x < g.width; x++ {
					risk[oy+y][ox+x] = (g.risk[y][x]+tx+ty-1)%9 + 1
				}
			}
		}
	}

	return &Grid{width: w, height: h, risk: risk}
}
