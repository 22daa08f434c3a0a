package dlx

import "github.com/sudokucore/api/internal/grid"

// Solve builds the exact-cover matrix for g and runs Algorithm X, returning
// the first solution found. g is assumed well-formed. Givens are checked
// with grid.Validate before the matrix is built, so conflicting givens
// surface as an InconsistentGivensError; a consistent puzzle with no
// completion yields an UnsolvableError.
func Solve(g grid.Grid) (grid.Grid, error) {
	out, _, err := SolveWithStats(g)
	return out, err
}

// SolveWithStats is Solve plus search-effort metadata (nodes visited,
// backtrack count), for callers that want the same observability CPDFS
// exposes.
func SolveWithStats(g grid.Grid) (grid.Grid, Stats, error) {
	if err := grid.Validate(g); err != nil {
		return grid.Grid{}, Stats{}, err
	}

	m := build(g)
	s := &searcher{m: m, partial: make([]int, 0, grid.CellCount), stats: &Stats{}}

	if !s.search() {
		return grid.Grid{}, *s.stats, &grid.UnsolvableError{}
	}

	var out grid.Grid
	for _, rowID := range s.partial {
		c := m.candidates[rowID]
		out[c.cell] = uint8(c.digit)
	}
	return out, *s.stats, nil
}
