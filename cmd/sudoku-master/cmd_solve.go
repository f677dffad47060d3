package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-master/internal/domain"
	"svw.info/sudoku-master/internal/solver"
)

var commandSolve = &cobra.Command{
	Use:   "solve <puzzle>",
	Short: "Solve a puzzle given as 81 digits, 0 or . for empty cells",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	mainCommand.AddCommand(commandSolve)
}

func parsePuzzle(s string) ([9][9]uint8, error) {
	var out [9][9]uint8
	if len(s) != 81 {
		return out, fmt.Errorf("puzzle must be 81 characters, got %d", len(s))
	}
	for i, ch := range []byte(s) {
		switch {
		case ch == '.' || ch == '0':
			// empty
		case ch >= '1' && ch <= '9':
			out[i/9][i%9] = ch - '0'
		default:
			return out, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return out, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	values, err := parsePuzzle(args[0])
	if err != nil {
		return err
	}
	g := domain.GridFromValues(values)
	st, err := solver.NewBacktrackingSolver().Solve(cmd.Context(), g)
	if err != nil {
		return err
	}
	fmt.Print(g)
	fmt.Printf("nodes=%d dur=%v\n", st.Nodes, st.Duration.Round(time.Millisecond))
	return nil
}
