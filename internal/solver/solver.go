// Package solver is the façade described in §4.6: it chooses a strategy,
// times execution with a monotonic clock, and surfaces either a solved
// grid or a typed error -- attaching the strategy used and the elapsed
// time in both cases.
package solver

import (
	"time"

	"github.com/sudokucore/api/internal/cpdfs"
	"github.com/sudokucore/api/internal/dlx"
	"github.com/sudokucore/api/internal/grid"
)

// Strategy names one of the two required solving strategies.
type Strategy string

const (
	CPDFS Strategy = "cpdfs"
	DLX   Strategy = "dlx"
)

// ParseStrategy maps the aliases named in §6 to a Strategy. "dfs" and
// "cpdfs" alias CPDFS; "exact" and "dlx" alias DLX; any other value or an
// empty string defaults to DLX, chosen for its substantially lower wall
// time on hard puzzles.
func ParseStrategy(s string) Strategy {
	switch s {
	case "cpdfs", "dfs":
		return CPDFS
	case "dlx", "exact":
		return DLX
	default:
		return DLX
	}
}

// Result is what a successful solve returns.
type Result struct {
	Solution  string
	Strategy  string
	ElapsedNS int64

	// NodesVisited and Backtracks are supplemental search-effort metadata,
	// comparable across both strategies; the spec's core contract needs
	// only Solution/Strategy/ElapsedNS.
	NodesVisited int
	Backtracks   int
}

// Error wraps one of grid's typed errors with the strategy that was in use
// and the elapsed time up to the point of failure, so observability does
// not depend on a solve having succeeded.
type Error struct {
	Strategy  string
	ElapsedNS int64
	Err       grid.Kinder
}

func (e *Error) Error() string { return e.Err.Error() }

// Kind returns the machine-readable error discriminator the HTTP layer puts
// in each failed item's error body. It does not set the HTTP status: a
// well-formed batch is answered with 200 whatever its items' outcomes.
func (e *Error) Kind() string { return e.Err.Kind() }

func (e *Error) Unwrap() error { return e.Err }

// Solve parses gridString, dispatches to the chosen strategy, and returns
// either a Result or an *Error. strategyStr is interpreted by ParseStrategy.
func Solve(gridString string, strategyStr string) (Result, error) {
	strategy := ParseStrategy(strategyStr)
	start := time.Now()

	g, err := grid.Parse(gridString)
	if err != nil {
		return Result{}, &Error{Strategy: string(strategy), ElapsedNS: time.Since(start).Nanoseconds(), Err: err.(grid.Kinder)}
	}

	var solved grid.Grid
	var nodesVisited, backtracks int

	switch strategy {
	case CPDFS:
		var stats cpdfs.Stats
		solved, stats, err = cpdfs.SolveWithStats(g)
		nodesVisited, backtracks = stats.NodesVisited, stats.Backtracks
	default:
		var stats dlx.Stats
		solved, stats, err = dlx.SolveWithStats(g)
		nodesVisited, backtracks = stats.NodesVisited, stats.Backtracks
	}

	elapsed := time.Since(start).Nanoseconds()
	if err != nil {
		return Result{}, &Error{Strategy: string(strategy), ElapsedNS: elapsed, Err: err.(grid.Kinder)}
	}

	return Result{
		Solution:     grid.Render(solved),
		Strategy:     string(strategy),
		ElapsedNS:    elapsed,
		NodesVisited: nodesVisited,
		Backtracks:   backtracks,
	}, nil
}
