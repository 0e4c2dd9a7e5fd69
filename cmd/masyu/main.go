// Command masyu solves a Masyu puzzle read from a text file and prints the
// resulting board.
package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/loopline/masyu/pkg/masyu"
)

var (
	verbose bool
	steps   bool
)

var rootCmd = &cobra.Command{
	Use:   "masyu <puzzle-file>",
	Short: "Solve a Masyu loop puzzle",
	Long: `Solve a Masyu loop puzzle.

The puzzle file contains one rune per cell: 'o' for a white circle,
'●' for a black circle, '.' for an empty cell. Lines starting with '#'
are comments.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&steps, "steps", false, "print the board after every search expansion")
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrap(err, "reading puzzle")
	}
	board, err := masyu.Parse(string(raw))
	if err != nil {
		return errors.Wrap(err, "parsing puzzle")
	}

	solver := masyu.NewSolver()
	if steps {
		solver.OnStep = func(b *masyu.Board) {
			fmt.Fprintln(cmd.OutOrStdout(), masyu.Render(b))
		}
	}

	solved, err := solver.Solve(board)
	if err != nil {
		return errors.Wrap(err, "solving")
	}
	fmt.Fprintln(cmd.OutOrStdout(), masyu.Render(solved))
	if !solved.Solved() {
		return errors.New("stuck: search exhausted without closing the loop")
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "masyu:", err)
		os.Exit(1)
	}
}
