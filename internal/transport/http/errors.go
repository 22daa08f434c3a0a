package http

import (
	"errors"

	"github.com/sudokucore/api/internal/grid"
	"github.com/sudokucore/api/internal/solver"
)

// toErrorResponse converts a façade error into its wire shape, surfacing
// the type-specific fields of the underlying grid error kind alongside the
// strategy and elapsed time the façade attaches even on failure.
func toErrorResponse(err error) errorResponse {
	resp := errorResponse{Message: err.Error()}

	var facadeErr *solver.Error
	if errors.As(err, &facadeErr) {
		resp.Solver = facadeErr.Strategy
		resp.ElapsedNS = facadeErr.ElapsedNS
		resp.Kind = facadeErr.Kind()
		populateKindFields(&resp, facadeErr.Err)
		return resp
	}

	var kinder grid.Kinder
	if errors.As(err, &kinder) {
		resp.Kind = kinder.Kind()
		populateKindFields(&resp, kinder)
	}
	return resp
}

func populateKindFields(resp *errorResponse, err grid.Kinder) {
	switch e := err.(type) {
	case *grid.LengthMismatchError:
		resp.Got = e.Got
	case *grid.InvalidCharacterError:
		resp.Index = e.Index
		resp.Char = string(e.Char)
	case *grid.InconsistentGivensError:
		resp.CellA = e.CellA
		resp.CellB = e.CellB
		resp.Value = e.Value
	case *grid.UnsolvableError:
		// no extra fields
	}
}
