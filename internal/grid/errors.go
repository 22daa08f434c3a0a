package grid

import "fmt"

// LengthMismatchError reports an input string whose length was not 81.
type LengthMismatchError struct {
	Got int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("grid: length mismatch: got %d characters, want 81", e.Got)
}

// Kind identifies the error family for callers that need a stable,
// machine-readable discriminator (the HTTP layer, test assertions).
func (e *LengthMismatchError) Kind() string { return "LengthMismatch" }

// InvalidCharacterError reports a character outside '0'..'9'.
type InvalidCharacterError struct {
	Index int
	Char  byte
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("grid: invalid character %q at index %d", e.Char, e.Index)
}

func (e *InvalidCharacterError) Kind() string { return "InvalidCharacter" }

// InconsistentGivensError reports two peer cells sharing a value, whether
// discovered among the initial givens or by AC-3 emptying a domain.
type InconsistentGivensError struct {
	CellA, CellB int
	Value        int
}

func (e *InconsistentGivensError) Error() string {
	return fmt.Sprintf("grid: cells %d and %d both require %d", e.CellA, e.CellB, e.Value)
}

func (e *InconsistentGivensError) Kind() string { return "InconsistentGivens" }

// UnsolvableError reports a well-formed, consistent puzzle with no completion.
type UnsolvableError struct{}

func (e *UnsolvableError) Error() string { return "grid: puzzle has no solution" }

func (e *UnsolvableError) Kind() string { return "Unsolvable" }

// Kinder is implemented by every error kind the core surfaces.
type Kinder interface {
	error
	Kind() string
}
