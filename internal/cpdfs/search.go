package cpdfs

import (
	"github.com/sudokucore/api/internal/constraints"
	"github.com/sudokucore/api/internal/grid"
	"github.com/sudokucore/api/internal/mask"
)

// Stats tracks search effort, mirroring the DLX package's stats so the
// solver façade can attach comparable performance metadata regardless of
// strategy.
type Stats struct {
	NodesVisited int
	Backtracks   int
}

// Solve runs CPDFS on g: AC-3 propagation, then MRV-guided backtracking
// search with forward checking. It returns the first solution found, or an
// InconsistentGivensError / UnsolvableError.
func Solve(g grid.Grid) (grid.Grid, error) {
	out, _, err := SolveWithStats(g)
	return out, err
}

// SolveWithStats is Solve plus search-effort metadata (nodes visited,
// backtrack count), mirroring the DLX package's symmetric entrypoint so the
// façade can attach comparable performance metadata for both strategies.
func SolveWithStats(g grid.Grid) (grid.Grid, Stats, error) {
	var stats Stats

	if err := grid.Validate(g); err != nil {
		return grid.Grid{}, stats, err
	}

	d := newDomains(g)
	if err := propagateAC3(&d); err != nil {
		return grid.Grid{}, stats, err
	}

	var j journal
	if !search(&g, &d, &j, &stats) {
		return grid.Grid{}, stats, &grid.UnsolvableError{}
	}
	return g, stats, nil
}

// search implements the MRV-guided backtracking step. g and d are mutated
// in place; any branch that fails restores both to their entry state
// before returning, so a caller one frame up sees no side effects.
func search(g *grid.Grid, d *Domains, j *journal, stats *Stats) bool {
	cell, ok := selectMRV(g, d)
	if !ok {
		return true // no unassigned cell remains: solved
	}

	original := d[cell]
	for _, v := range original.Values() {
		mark := j.mark()

		g[cell] = uint8(v)
		d[cell] = mask.Single(v)

		ok := true
		for _, p := range constraints.Peers(cell) {
			if g[p] != 0 || !d[p].Has(v) {
				continue
			}
			d[p] = d[p].Remove(v)
			j.record(p, v)
			if d[p].Empty() {
				ok = false
				break
			}
		}

		if ok {
			stats.NodesVisited++
			if search(g, d, j, stats) {
				return true
			}
		}

		j.rollback(d, mark)
		g[cell] = 0
		stats.Backtracks++
	}
	d[cell] = original
	return false
}

// selectMRV chooses the unassigned cell with the fewest remaining
// candidates, tie-breaking by ascending index. ok is false when every cell
// is assigned.
func selectMRV(g *grid.Grid, d *Domains) (cell int, ok bool) {
	best := -1
	bestCount := 10
	for i, v := range g {
		if v != 0 {
			continue
		}
		count := d[i].Count()
		if count < bestCount {
			best, bestCount = i, count
			if count <= 1 {
				break
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
