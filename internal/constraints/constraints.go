// Package constraints precomputes the peer and unit relations used by every
// solving strategy: the 27 units (9 rows, 9 columns, 9 boxes) and, for each
// cell, its 20 peers. These tables are process-wide, read-only, and
// computed once; no solve ever mutates them.
//
// This package deliberately does not import internal/grid: grid.Validate
// needs these tables, so the dependency runs the other way. The row/col/box
// arithmetic below duplicates grid's (small, stable) indexing scheme.
package constraints

import (
	"sort"
	"sync"
)

// size and cellCount mirror grid.Size and grid.CellCount; kept local to
// avoid an import cycle with internal/grid.
const (
	size      = 9
	cellCount = size * size
)

// UnitRow, UnitCol, and UnitBox give the canonical unit-family base offsets
// used to number all 27 units 0..26: rows 0..8, columns 9..17, boxes 18..26.
const (
	UnitRow = 0
	UnitCol = 9
	UnitBox = 18
)

var (
	once sync.Once

	// peers[i] holds the 20 other cell indices sharing a row, column, or box
	// with i, sorted ascending.
	peers [cellCount][20]int

	// cellUnits[i] holds the three unit indices (0..26) containing cell i.
	cellUnits [cellCount][3]int

	// unitCells[u] holds the 9 cell indices belonging to unit u, ascending.
	unitCells [27][9]int
)

func row(i int) int { return i / size }
func col(i int) int { return i % size }
func box(i int) int {
	r, c := row(i), col(i)
	return (r/3)*3 + c/3
}
func index(r, c int) int { return r*size + c }

func build() {
	// Assign each unit its member cells in canonical (ascending) order.
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			i := index(r, c)
			unitCells[UnitRow+r][c] = i
			unitCells[UnitCol+c][r] = i
		}
	}
	for b := 0; b < 9; b++ {
		baseRow, baseCol := (b/3)*3, (b%3)*3
		k := 0
		for dr := 0; dr < 3; dr++ {
			for dc := 0; dc < 3; dc++ {
				unitCells[UnitBox+b][k] = index(baseRow+dr, baseCol+dc)
				k++
			}
		}
	}

	for i := 0; i < cellCount; i++ {
		cellUnits[i] = [3]int{UnitRow + row(i), UnitCol + col(i), UnitBox + box(i)}

		seen := make(map[int]bool, 20)
		var ps []int
		for _, u := range cellUnits[i] {
			for _, c := range unitCells[u] {
				if c != i && !seen[c] {
					seen[c] = true
					ps = append(ps, c)
				}
			}
		}
		sort.Ints(ps)
		copy(peers[i][:], ps)
	}
}

// init computes the tables eagerly at process start; a sync.Once guards
// against re-entry if Peers/Units/UnitCells are ever called before init
// has run (e.g. from another package's own init).
func init() {
	once.Do(build)
}

// Peers returns the 20 cell indices sharing a row, column, or box with i,
// in ascending order.
func Peers(i int) [20]int {
	once.Do(build)
	return peers[i]
}

// Units returns the three unit indices (0..26) containing cell i.
func Units(i int) [3]int {
	once.Do(build)
	return cellUnits[i]
}

// UnitCells returns the 9 cell indices belonging to unit u, ascending.
func UnitCells(u int) [9]int {
	once.Do(build)
	return unitCells[u]
}
