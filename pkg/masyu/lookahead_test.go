package masyu

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestFirstOpenEdge(t *testing.T) {
	b := mustBoard(t, 3, 3, nil)

	c, d, ok := b.firstOpenEdge()
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, c)
	assert.Equal(t, Right, d)

	// With Right resolved, Down of the same cell is next.
	b2, err := b.disallowDirection(Coord{0, 0}, Right)
	require.NoError(t, err)
	c, d, ok = b2.firstOpenEdge()
	require.True(t, ok)
	assert.Equal(t, Coord{0, 0}, c)
	assert.Equal(t, Down, d)
}

func TestExpandCertaintyAdoptsSurvivingBranch(t *testing.T) {
	// On a clue-less 2x2 board, setting any edge closes a loop that
	// satisfies no circle, so only the "no" branch survives. The node
	// absorbs it and stays frontier.
	b := mustBoard(t, 2, 2, nil)
	tree := newSearchTree(b, testLogger())

	progressed, err := tree.explore()
	require.NoError(t, err)
	assert.True(t, progressed)

	root := tree.nodes[0]
	assert.Equal(t, stateFrontier, root.state)
	assert.False(t, root.board.Equal(b))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			assert.True(t, root.board.CellAt(Coord{uint8(x), uint8(y)}).IsDone())
		}
	}

	// A second pass finds no undetermined edge and dead-ends the root.
	progressed, err = tree.explore()
	require.NoError(t, err)
	assert.True(t, progressed)
	assert.Equal(t, stateDeadEnd, tree.nodes[0].state)

	progressed, err = tree.explore()
	require.NoError(t, err)
	assert.False(t, progressed)
}

func TestExpandPossibilityBranches(t *testing.T) {
	// A 3x3 board with one set edge leaves genuinely open edges: both
	// branches of the first split survive.
	b := mustBoard(t, 3, 3, map[Coord]CircleType{{1, 1}: White})
	tree := newSearchTree(b, testLogger())

	progressed, err := tree.explore()
	require.NoError(t, err)
	require.True(t, progressed)

	root := tree.nodes[0]
	require.Equal(t, stateBranched, root.state)
	yes, no := tree.nodes[root.yes], tree.nodes[root.no]
	assert.Equal(t, 0, yes.parent)
	assert.Equal(t, 0, no.parent)
	assert.Equal(t, stateFrontier, yes.state)
	assert.Equal(t, stateFrontier, no.state)
	assert.False(t, yes.board.Equal(no.board))
}

func TestPromotionCollapsesTwoLevels(t *testing.T) {
	boardA := mustBoard(t, 3, 3, nil)
	boardB, err := boardA.setDirection(Coord{1, 1}, Right)
	require.NoError(t, err)
	boardC, err := boardA.setDirection(Coord{1, 1}, Down)
	require.NoError(t, err)

	// root splits into node 1 (itself split into 3 and 4) and node 2.
	tree := newSearchTree(boardA, testLogger())
	n1 := tree.addNode(boardB, 0)
	n2 := tree.addNode(boardC, 0)
	tree.nodes[0].state = stateBranched
	tree.nodes[0].yes = n1
	tree.nodes[0].no = n2
	n3 := tree.addNode(boardB, n1)
	n4 := tree.addNode(boardC, n1)
	tree.nodes[n1].state = stateBranched
	tree.nodes[n1].yes = n3
	tree.nodes[n1].no = n4

	// Node 2 turns out impossible: its sibling (node 1) is promoted over
	// the root, carrying its split along.
	require.NoError(t, tree.promote(n2))

	root := tree.nodes[0]
	assert.True(t, root.board.Equal(boardB))
	assert.Equal(t, stateBranched, root.state)
	assert.Equal(t, n3, root.yes)
	assert.Equal(t, n4, root.no)
	assert.Equal(t, 0, tree.nodes[n3].parent)
	assert.Equal(t, 0, tree.nodes[n4].parent)
	assert.Equal(t, -1, root.parent)
}

func TestPromotionAtRootIsUnsatisfiable(t *testing.T) {
	tree := newSearchTree(mustBoard(t, 3, 3, nil), testLogger())
	err := tree.promote(0)
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
}

func TestPromotionOfFrontierSibling(t *testing.T) {
	boardA := mustBoard(t, 3, 3, nil)
	boardB, err := boardA.setDirection(Coord{1, 1}, Right)
	require.NoError(t, err)

	tree := newSearchTree(boardA, testLogger())
	n1 := tree.addNode(boardB, 0)
	n2 := tree.addNode(boardA, 0)
	tree.nodes[0].state = stateBranched
	tree.nodes[0].yes = n1
	tree.nodes[0].no = n2

	require.NoError(t, tree.promote(n1))

	root := tree.nodes[0]
	assert.Equal(t, stateFrontier, root.state)
	assert.True(t, root.board.Equal(boardA))
}
