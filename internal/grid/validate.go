package grid

import "github.com/sudokucore/api/internal/constraints"

// FindConflict scans g for two peer cells holding the same non-zero value,
// returning the lexicographically-least offending pair (cellA < cellB) so
// error reports are reproducible. ok is false when g is consistent.
func FindConflict(g Grid) (cellA, cellB, value int, ok bool) {
	for i := 0; i < CellCount; i++ {
		v := g[i]
		if v == 0 {
			continue
		}
		for _, p := range constraints.Peers(i) {
			if p <= i {
				continue
			}
			if g[p] == v {
				return i, p, int(v), true
			}
		}
	}
	return 0, 0, 0, false
}

// Validate reports an InconsistentGivensError when two givens in g are
// peers and share a value. Parsing does not check this -- it is the
// solver's responsibility, so callers see this precise error rather than a
// generic parse failure.
func Validate(g Grid) error {
	if a, b, v, ok := FindConflict(g); ok {
		return &InconsistentGivensError{CellA: a, CellB: b, Value: v}
	}
	return nil
}
