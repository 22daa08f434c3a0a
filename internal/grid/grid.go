// Package grid holds the 81-cell puzzle representation: parsing from and
// rendering back to the 81-character digit string, and the row/column/box
// indexing arithmetic every other package in this module builds on.
package grid

// Size is the side length of a standard Sudoku grid.
const Size = 9

// CellCount is the number of cells in a standard Sudoku grid.
const CellCount = Size * Size

// Grid is a fixed sequence of 81 cells, indexed 0..80 in row-major order.
// A value of 0 denotes an empty cell. Grid is a plain value type: copying it
// copies the board, which is exactly what a reentrant solve needs.
type Grid [CellCount]uint8

// Row returns the row (0..8) containing cell index i.
func Row(i int) int { return i / Size }

// Col returns the column (0..8) containing cell index i.
func Col(i int) int { return i % Size }

// Box returns the 3x3 box (0..8) containing cell index i, numbered
// left-to-right, top-to-bottom.
func Box(i int) int {
	r, c := Row(i), Col(i)
	return (r/3)*3 + c/3
}

// Index returns the cell index for the given row and column.
func Index(row, col int) int { return row*Size + col }

// Parse decodes an 81-character digit string into a Grid. It rejects
// malformed input with a LengthMismatchError or InvalidCharacterError, but
// does not check logical consistency -- see Validate for that.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != CellCount {
		return g, &LengthMismatchError{Got: len(s)}
	}
	for i := 0; i < CellCount; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return g, &InvalidCharacterError{Index: i, Char: c}
		}
		g[i] = c - '0'
	}
	return g, nil
}

// Render is the inverse of Parse: it always returns an 81-character string.
func Render(g Grid) string {
	buf := make([]byte, CellCount)
	for i, v := range g {
		buf[i] = v + '0'
	}
	return string(buf)
}

// IsSolved reports whether g is consistent and contains no empty cells.
func IsSolved(g Grid) bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	_, _, _, ok := FindConflict(g)
	return !ok
}
