// Command dancing_links_demo runs a handful of puzzles of increasing
// difficulty through both strategies and prints a side-by-side comparison
// of their search effort, using each strategy package's SolveWithStats.
package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/sudokucore/api/internal/cpdfs"
	"github.com/sudokucore/api/internal/dlx"
	"github.com/sudokucore/api/internal/grid"
)

func main() {
	fmt.Println("Dancing Links vs. CPDFS Demonstration")
	fmt.Println("======================================")

	cases := []struct {
		name string
		s    string
	}{
		{"Easy", "530070000600195000098000060800060003400803001700020006060000280000419005000080079"},
		{"Harder, unique solution", "500000010020007000000010000000200604100005000800000000090400200000380000000000700"},
		{"Empty board", zeros()},
	}

	for i, tc := range cases {
		fmt.Printf("\n%s %d: %s\n", color.HiBlueString("Test Case"), i+1, color.HiYellowString(tc.name))

		cpdfsSolved, cpdfsStats, cpdfsErr := cpdfs.SolveWithStats(mustParse(tc.s))
		dlxSolved, dlxStats, dlxErr := dlx.SolveWithStats(mustParse(tc.s))

		reportStrategy("CPDFS", cpdfsSolved, cpdfsStats.NodesVisited, cpdfsStats.Backtracks, cpdfsErr)
		reportStrategy("DLX", dlxSolved, dlxStats.NodesVisited, dlxStats.Backtracks, dlxErr)

		if cpdfsErr == nil && dlxErr == nil && grid.Render(cpdfsSolved) == grid.Render(dlxSolved) {
			fmt.Println(color.HiGreenString("✓ Both strategies agree on this solution"))
		}

		fmt.Println(color.HiBlackString("─────────────────────────────────────"))
	}

	describeMatrix()
}

func reportStrategy(name string, solved grid.Grid, nodes, backtracks int, err error) {
	if err != nil {
		fmt.Printf("%s: %s (%v)\n", name, color.HiRedString("no solution"), err)
		return
	}
	fmt.Printf("%s: %s  nodes=%d backtracks=%d\n",
		name, color.HiGreenString(grid.Render(solved)), nodes, backtracks)
}

func mustParse(s string) grid.Grid {
	g, err := grid.Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

func zeros() string {
	buf := make([]byte, grid.CellCount)
	for i := range buf {
		buf[i] = '0'
	}
	return string(buf)
}

func describeMatrix() {
	fmt.Printf("\n%s\n", color.HiCyanString("Exact-Cover Matrix Structure"))
	fmt.Println(color.HiCyanString("============================"))
	fmt.Println("324 columns: 81 cell + 81 row/digit + 81 col/digit + 81 box/digit constraints.")
	fmt.Println("Up to 729 candidate rows, each covering exactly 4 columns.")
	fmt.Println("Algorithm X selects the column with fewest remaining rows (the S-heuristic),")
	fmt.Println("covers it, and tries each row in turn, uncovering symmetrically on backtrack.")
}
