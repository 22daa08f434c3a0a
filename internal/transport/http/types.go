package http

// solveRequestItem is one element of the POST /solve request body. Grid
// carries no "required" binding: an empty string is a malformed grid, but
// that must surface as the same structured LengthMismatch error every other
// bad length does, not a generic binding failure.
type solveRequestItem struct {
	Grid   string `json:"grid"`
	Solver string `json:"solver"`
}

// solveResponseItem is one element of the POST /solve response body. Exactly
// one of the success fields or Error is populated.
type solveResponseItem struct {
	Solution  string         `json:"solution,omitempty"`
	Solver    string         `json:"solver,omitempty"`
	ElapsedNS int64          `json:"elapsed_ns,omitempty"`
	Error     *errorResponse `json:"error,omitempty"`
}

// errorResponse is the machine-readable error body, carrying the kind
// discriminator plus whatever fields that kind defines.
type errorResponse struct {
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Got       int    `json:"got,omitempty"`
	Index     int    `json:"index,omitempty"`
	Char      string `json:"char,omitempty"`
	CellA     int    `json:"cell_a,omitempty"`
	CellB     int    `json:"cell_b,omitempty"`
	Value     int    `json:"value,omitempty"`
	Solver    string `json:"solver,omitempty"`
	ElapsedNS int64  `json:"elapsed_ns,omitempty"`
}
