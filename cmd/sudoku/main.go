// Command sudoku is a colorized CLI front end over the solving core: it
// reads an 81-character puzzle from stdin (bare string or 9 lines of 9
// characters), solves it with the chosen strategy, and prints the result.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sudokucore/api/internal/grid"
	"github.com/sudokucore/api/internal/set"
	"github.com/sudokucore/api/internal/solver"
)

var (
	givenColor  = color.New(color.Bold, color.FgHiYellow, color.BgHiBlack)
	solvedColor = color.New(color.Bold, color.FgHiWhite)
)

const (
	borderTop    = "┌─────┬─────┬─────╥─────┬─────┬─────╥─────┬─────┬─────┐"
	borderBot    = "└─────┴─────┴─────╨─────┴─────┴─────╨─────┴─────┴─────┘"
	dividerMinor = "├─────┼─────┼─────╫─────┼─────┼─────╫─────┼─────┼─────┤"
	dividerMajor = "╞═════╪═════╪═════╬═════╪═════╪═════╬═════╪═════╪═════╡"
	edgeMinor    = "│"
	edgeMajor    = "║"
)

func main() {
	strategy := ""
	if len(os.Args) > 1 {
		strategy = os.Args[1]
	}

	if isStdinTTY() {
		fmt.Println("Enter an 81-character puzzle (0 for blanks), as one line or 9 lines of 9:")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	input := readPuzzle(os.Stdin)

	result, err := solver.Solve(input, strategy)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	// err == nil guarantees input parsed cleanly, so this reparse cannot fail.
	given, _ := grid.Parse(input)
	solved, _ := grid.Parse(result.Solution)

	color.HiWhite("\nSolution (%s, %d ns):", result.Strategy, result.ElapsedNS)
	printBoard(solved, given)
	printGivenDigits(given)
}

func readPuzzle(f *os.File) string {
	scanner := bufio.NewScanner(f)
	var b strings.Builder
	for scanner.Scan() {
		b.WriteString(strings.TrimSpace(scanner.Text()))
	}
	return b.String()
}

func isStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", color.HiRedString("solve failed"), err)
}

func printBoard(solved, given grid.Grid) {
	color.HiWhite(borderTop)
	for row := 0; row < 9; row++ {
		if row != 0 {
			if row%3 == 0 {
				color.HiWhite(dividerMajor)
			} else {
				color.HiWhite(dividerMinor)
			}
		}
		printRow(solved, given, row)
	}
	color.HiWhite(borderBot)
}

func printRow(solved, given grid.Grid, row int) {
	for col := 0; col < 9; col++ {
		if col != 0 && col%3 == 0 {
			fmt.Print(color.HiWhiteString(edgeMajor))
		} else {
			fmt.Print(color.HiWhiteString(edgeMinor))
		}
		i := grid.Index(row, col)
		cellColor := solvedColor
		if given[i] != 0 {
			cellColor = givenColor
		}
		cellColor.Printf("  %d  ", solved[i])
	}
	color.HiWhite(edgeMinor)
}

// printGivenDigits summarizes the distinct clue digits present in the
// input, using the generic map-backed set.
func printGivenDigits(given grid.Grid) {
	digits := set.NewSet[int]()
	for _, v := range given {
		if v != 0 {
			digits.Add(int(v))
		}
	}
	fmt.Printf("\nGiven digits used: %d\n", digits.Size())
}
