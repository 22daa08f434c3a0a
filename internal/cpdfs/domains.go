// Package cpdfs implements the CPDFS strategy: AC-3 constraint propagation
// followed by backtracking search guided by the Minimum Remaining Values
// heuristic with forward checking.
package cpdfs

import (
	"github.com/sudokucore/api/internal/grid"
	"github.com/sudokucore/api/internal/mask"
)

// Domains is a fixed 81-cell array of candidate masks, one per cell.
type Domains [grid.CellCount]mask.Domain

// newDomains initializes D so D[i] = {g[i]} when g[i] != 0, else {1..9}.
func newDomains(g grid.Grid) Domains {
	var d Domains
	for i, v := range g {
		if v == 0 {
			d[i] = mask.Full
		} else {
			d[i] = mask.Single(int(v))
		}
	}
	return d
}
