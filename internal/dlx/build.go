package dlx

import (
	"fmt"

	"github.com/sudokucore/api/internal/constraints"
	"github.com/sudokucore/api/internal/grid"
)

// Column family base offsets, matching the 324-column layout fixed by the
// spec: 81 cell constraints, then 81 row/digit, 81 column/digit, 81
// box/digit constraints.
const (
	famCell = 0
	famRow  = 81
	famCol  = 162
	famBox  = 243

	numColumns = 324
)

// matrix is the toroidal link structure built from one puzzle. It is
// created fresh per solve and discarded when the solve completes; nothing
// about it is shared across requests.
type matrix struct {
	root       column
	columns    [numColumns]column
	rows       []*node // first node of each row, indexed by row ID
	candidates []candidate
}

func cellColumn(i int) int                { return famCell + i }
func rowDigitColumn(r, v int) int         { return famRow + r*9 + (v - 1) }
func colDigitColumn(c, v int) int         { return famCol + c*9 + (v - 1) }
func boxDigitColumn(b, v int) int         { return famBox + b*9 + (v - 1) }
func columnName(i int) string {
	switch {
	case i < famRow:
		return fmt.Sprintf("cell(%d,%d)", grid.Row(i), grid.Col(i))
	case i < famCol:
		idx := i - famRow
		return fmt.Sprintf("row(%d)=%d", idx/9, idx%9+1)
	case i < famBox:
		idx := i - famCol
		return fmt.Sprintf("col(%d)=%d", idx/9, idx%9+1)
	default:
		idx := i - famBox
		return fmt.Sprintf("box(%d)=%d", idx/9, idx%9+1)
	}
}

// build constructs the exact-cover matrix for g: 324 column headers in
// fixed order, then one row per candidate (cell, digit) pair, rows
// appended in ascending (cell, digit) order so Algorithm X sees a
// canonical initial state.
func build(g grid.Grid) *matrix {
	m := &matrix{}
	m.root.left = &m.root.node
	m.root.right = &m.root.node

	for i := 0; i < numColumns; i++ {
		m.columns[i].name = columnName(i)
		m.columns[i].up = &m.columns[i].node
		m.columns[i].down = &m.columns[i].node
		m.columns[i].col = &m.columns[i]
		linkColumn(&m.root, &m.columns[i])
	}

	m.rows = make([]*node, 0, grid.CellCount*9)
	m.candidates = make([]candidate, 0, grid.CellCount*9)

	for i := 0; i < grid.CellCount; i++ {
		if g[i] != 0 {
			m.addRow(i, int(g[i]))
			continue
		}
		for v := 1; v <= 9; v++ {
			if forbiddenByPinnedPeer(g, i, v) {
				continue
			}
			m.addRow(i, v)
		}
	}

	return m
}

// forbiddenByPinnedPeer reports whether a given peer of cell i is already
// fixed to v -- a cheap check that avoids generating rows guaranteed to
// conflict at the root.
func forbiddenByPinnedPeer(g grid.Grid, i, v int) bool {
	for _, p := range constraints.Peers(i) {
		if int(g[p]) == v {
			return true
		}
	}
	return false
}

func (m *matrix) addRow(cell, digit int) {
	rowID := len(m.rows)
	m.candidates = append(m.candidates, candidate{cell: cell, digit: digit})

	cols := [4]int{
		cellColumn(cell),
		rowDigitColumn(grid.Row(cell), digit),
		colDigitColumn(grid.Col(cell), digit),
		boxDigitColumn(grid.Box(cell), digit),
	}

	nodes := make([]*node, 4)
	for k, colIdx := range cols {
		n := &node{rowID: rowID}
		appendToColumn(&m.columns[colIdx], n)
		nodes[k] = n
	}
	linkRow(nodes)

	m.rows = append(m.rows, nodes[0])
}
