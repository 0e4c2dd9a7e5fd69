package masyu

import (
	"github.com/sirupsen/logrus"
)

// The lookahead search tree. When the clue rules reach a fixpoint without
// determining every edge, the solver case-splits on one undetermined edge at
// a time: assume the edge carries the line, assume it does not, and solve
// the clue fixpoint under each assumption. Nodes live in an arena addressed
// by index; parent links are plain indices, so the tree surgery performed
// when a branch contradicts is a handful of index assignments.

type nodeState uint8

const (
	// stateFrontier marks an unexpanded node: no branch structure yet.
	stateFrontier nodeState = iota
	// stateBranched marks a node holding a live yes/no case split.
	stateBranched
	// stateDeadEnd marks a node with no undetermined edges left to split on.
	stateDeadEnd
)

// laNode is one node of the search tree: a board snapshot plus, once
// expanded, either an absorbed forced deduction (the board is replaced and
// the node stays frontier) or a case split over one edge.
type laNode struct {
	board  *Board
	state  nodeState
	parent int // index of the node whose split this node belongs to; -1 at the root
	yes    int // child indices, valid when state == stateBranched
	no     int
}

// searchTree owns the arena. It is exclusively held by the top-level solve
// loop; promotion rewires it in place and nothing observes the intermediate
// states. Nodes cut loose by promotion simply become unreachable garbage in
// the arena.
type searchTree struct {
	nodes []laNode
	log   logrus.FieldLogger
}

func newSearchTree(root *Board, log logrus.FieldLogger) *searchTree {
	return &searchTree{
		nodes: []laNode{{board: root, parent: -1}},
		log:   log,
	}
}

// rootBoard returns the current board of the root node.
func (t *searchTree) rootBoard() *Board {
	return t.nodes[0].board
}

// explore scans the tree breadth-first for the first frontier node and
// expands exactly that one. It reports false, without expanding anything,
// when no frontier node remains.
func (t *searchTree) explore() (bool, error) {
	queue := []int{0}
	for len(queue) > 0 {
		i := queue[0]
		queue = queue[1:]
		switch t.nodes[i].state {
		case stateBranched:
			queue = append(queue, t.nodes[i].yes, t.nodes[i].no)
		case stateFrontier:
			return true, t.expand(i)
		}
	}
	return false, nil
}

// firstOpenEdge finds the first undetermined edge in row-major order.
// Candidate directions are restricted to Right and Down so that each
// physical edge between two cells is considered exactly once, from its
// top-left cell.
func (b *Board) firstOpenEdge() (Coord, Direction, bool) {
	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			c := Coord{uint8(x), uint8(y)}
			could := b.cells[b.index(c)].CouldSet()
			if could.Has(Right) {
				return c, Right, true
			}
			if could.Has(Down) {
				return c, Down, true
			}
		}
	}
	return Coord{}, 0, false
}

// expand resolves the frontier node i. The first undetermined edge is tried
// both ways, each trial running the full clue fixpoint:
//
//   - both trials fail: the node itself is impossible; its proven-correct
//     sibling is promoted over their common ancestor
//   - exactly one succeeds: no branching needed; the node adopts the single
//     surviving board and remains frontier for the next explore pass
//   - both succeed: the node becomes a live case split with two frontier
//     children
//
// A node with no undetermined edge left becomes a dead end.
func (t *searchTree) expand(i int) error {
	board := t.nodes[i].board
	c, d, ok := board.firstOpenEdge()
	if !ok {
		t.nodes[i].state = stateDeadEnd
		return nil
	}

	yes, yesErr := board.setDirection(c, d)
	if yesErr == nil {
		yes, yesErr = yes.solveKnownConstraints()
	}
	no, noErr := board.disallowDirection(c, d)
	if noErr == nil {
		no, noErr = no.solveKnownConstraints()
	}

	switch {
	case yesErr != nil && noErr != nil:
		t.log.WithFields(logrus.Fields{"cell": c, "edge": d}).
			Debug("both branches contradict; promoting sibling")
		return t.promote(i)
	case yesErr == nil && noErr == nil:
		yi := t.addNode(yes, i)
		ni := t.addNode(no, i)
		t.nodes[i].state = stateBranched
		t.nodes[i].yes = yi
		t.nodes[i].no = ni
	case yesErr == nil:
		t.nodes[i].board = yes
	default:
		t.nodes[i].board = no
	}
	return nil
}

// addNode appends a frontier node and returns its index.
func (t *searchTree) addNode(board *Board, parent int) int {
	t.nodes = append(t.nodes, laNode{board: board, parent: parent})
	return len(t.nodes) - 1
}

// promote performs the tree surgery triggered when node i is impossible:
// its sibling, the other half of an exhaustive yes/no split, must be
// correct, so the sibling's entire content overwrites the node holding the
// split. Two tree levels collapse and the learned fact lands exactly where
// search resumes. If the sibling's content is itself later contradicted, the
// next promotion applies one level further up.
//
// A contradiction at the root, with no split above it, means the puzzle has
// no solution.
func (t *searchTree) promote(i int) error {
	parent := t.nodes[i].parent
	if parent < 0 {
		return contradictionf("puzzle is unsatisfiable: every case split fails")
	}

	var sibling int
	switch i {
	case t.nodes[parent].yes:
		sibling = t.nodes[parent].no
	case t.nodes[parent].no:
		sibling = t.nodes[parent].yes
	default:
		panic("masyu: search node's parent does not list it as a child")
	}

	s := t.nodes[sibling]
	t.nodes[parent].board = s.board
	t.nodes[parent].state = s.state
	t.nodes[parent].yes = s.yes
	t.nodes[parent].no = s.no
	if s.state == stateBranched {
		t.nodes[s.yes].parent = parent
		t.nodes[s.no].parent = parent
	}
	return nil
}
