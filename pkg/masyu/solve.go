package masyu

import (
	"github.com/sirupsen/logrus"
)

// Solver runs the full pipeline: opening patterns, clue-rule fixpoint, then
// lookahead search until the board is solved or the tree is exhausted.
type Solver struct {
	// Log receives debug-level progress. Defaults to the logrus standard
	// logger.
	Log logrus.FieldLogger

	// OnStep, if set, is called with the root board after every expansion.
	OnStep func(*Board)
}

// NewSolver returns a Solver with default logging.
func NewSolver() *Solver {
	return &Solver{Log: logrus.StandardLogger()}
}

// Solve is a convenience wrapper using a default Solver.
func Solve(b *Board) (*Board, error) {
	return NewSolver().Solve(b)
}

// Solve returns the solved board, or the best-effort board (with
// Solved() == false) when the search exhausts without closing the loop, or a
// Contradiction when the puzzle has no solution.
func (s *Solver) Solve(b *Board) (*Board, error) {
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	b, err := b.applyOpeningPatterns()
	if err != nil {
		return nil, err
	}
	log.Debug("opening patterns applied")

	b, err = b.solveKnownConstraints()
	if err != nil {
		return nil, err
	}
	log.WithField("segments", len(b.Segments())).Debug("clue fixpoint reached")

	tree := newSearchTree(b, log)
	expansions := 0
	for !tree.rootBoard().Solved() {
		progressed, err := tree.explore()
		if err != nil {
			return nil, err
		}
		if !progressed {
			log.WithField("expansions", expansions).
				Debug("search exhausted without closing the loop")
			return tree.rootBoard(), nil
		}
		expansions++
		if s.OnStep != nil {
			s.OnStep(tree.rootBoard())
		}
	}
	log.WithField("expansions", expansions).Debug("solved")
	return tree.rootBoard(), nil
}
