package puzzle

import (
	"errors"
	"fmt"
)

// ErrNotLocated is returned when an answer cannot be found in the grid.
var ErrNotLocated = errors.New("puzzle: answer not found in grid")

// Grid is a solved puzzle grid, indexed [row][col].
type Grid [][]rune

// NewGrid converts generator rows to a grid. All rows must have the same
// length.
func NewGrid(rows []string) (Grid, error) {
	g := make(Grid, len(rows))
	for i, row := range rows {
		g[i] = []rune(row)
		if len(g[i]) != len(g[0]) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(g[i]), len(g[0]))
		}
	}
	return g, nil
}

// Columns returns the grid transposed.
func (g Grid) Columns() Grid {
	if len(g) == 0 {
		return nil
	}
	cols := make(Grid, len(g[0]))
	for c := range cols {
		cols[c] = make([]rune, len(g))
		for r := range g {
			cols[c][r] = g[r][c]
		}
	}
	return cols
}

// Locate returns the start cell of the n-th (0-based) occurrence of reading
// that fills a whole run between blocks or grid edges, reading across or
// down.
func Locate(g Grid, reading string, across bool, n int) (row, col int, err error) {
	word := []rune(reading)
	if len(word) == 0 {
		return 0, 0, fmt.Errorf("%w: empty reading", ErrNotLocated)
	}
	lines := g
	if !across {
		lines = g.Columns()
	}

	found := 0
	for li, line := range lines {
		for start := 0; start+len(word) <= len(line); start++ {
			if !matchAt(line, word, start) || !bounded(line, start, len(word)) {
				continue
			}
			if found == n {
				if across {
					return li, start, nil
				}
				return start, li, nil
			}
			found++
		}
	}
	return 0, 0, fmt.Errorf("%w: %q (across=%t, occurrence %d)", ErrNotLocated, reading, across, n)
}

func matchAt(line, word []rune, start int) bool {
	for i, r := range word {
		if line[start+i] != r {
			return false
		}
	}
	return true
}

// bounded reports whether the run [start, start+size) has a block or the
// grid edge on both sides.
func bounded(line []rune, start, size int) bool {
	end := start + size
	left := start == 0 || line[start-1] == Block
	right := end == len(line) || line[end] == Block
	return left && right
}
