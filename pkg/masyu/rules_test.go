package masyu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyBlackInterior(t *testing.T) {
	// A black circle one cell in from the top-left corner: legs toward the
	// near edges cannot run straight one more cell, so the away legs are
	// forced by mutual exclusivity.
	b := mustBoard(t, 4, 4, map[Coord]CircleType{{1, 1}: Black})

	b, err := b.applyBlack(Coord{1, 1})
	require.NoError(t, err)

	assert.Equal(t, NewDirSet(Right, Down), b.CellAt(Coord{1, 1}).IsSet())
	assert.Equal(t, NewDirSet(Left, Right), b.CellAt(Coord{2, 1}).IsSet())
	assert.Equal(t, NewDirSet(Up, Down), b.CellAt(Coord{1, 2}).IsSet())
}

func TestApplyBlackCornerContradiction(t *testing.T) {
	// A black circle in the corner of a 2x2 grid has nowhere to run its
	// legs straight.
	b := mustBoard(t, 2, 2, map[Coord]CircleType{{0, 0}: Black})

	_, err := b.applyBlack(Coord{0, 0})
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
}

func TestApplyWhiteCommitsOnlyPossibleBend(t *testing.T) {
	b := mustBoard(t, 5, 5, map[Coord]CircleType{{2, 2}: White})

	// Pin the cell left of the circle straight so that side cannot bend.
	b, err := b.setDirection(Coord{1, 2}, Left)
	require.NoError(t, err)
	b, err = b.setDirection(Coord{1, 2}, Right)
	require.NoError(t, err)

	b, err = b.applyWhite(Coord{2, 2})
	require.NoError(t, err)

	// The through-line is horizontal, the left side is straight, so the
	// right side's bend is committed: its far edge is now forbidden.
	assert.Equal(t, NewDirSet(Left, Right), b.CellAt(Coord{2, 2}).IsSet())
	assert.True(t, b.CellAt(Coord{3, 2}).CannotSet().Has(Right))
}

func TestApplyWhiteBothSidesOpen(t *testing.T) {
	// When either neighbor could bend, nothing new is known.
	b := mustBoard(t, 5, 5, map[Coord]CircleType{{2, 2}: White})
	b, err := b.setDirection(Coord{2, 2}, Left)
	require.NoError(t, err)
	b, err = b.setDirection(Coord{2, 2}, Right)
	require.NoError(t, err)

	got, err := b.applyWhite(Coord{2, 2})
	require.NoError(t, err)
	assert.True(t, got.Equal(b))
}

func TestApplyWhiteNeitherSideBends(t *testing.T) {
	// On a 1-cell-high board every cell is forced straight, so no side of
	// a white circle can ever bend.
	b := mustBoard(t, 5, 1, map[Coord]CircleType{{2, 0}: White})

	_, err := b.applyWhite(Coord{2, 0})
	require.Error(t, err)
	assert.True(t, IsContradiction(err))
}

func TestThreeConsecutiveWhitesForcesCrossings(t *testing.T) {
	// Three whites in a row force the loop to cross each one vertically:
	// a straight run along the row would leave the middle circle with no
	// adjacent bend.
	b := mustBoard(t, 5, 5, map[Coord]CircleType{
		{1, 2}: White, {2, 2}: White, {3, 2}: White,
	})

	b, err := b.applyOpeningPatterns()
	require.NoError(t, err)

	for _, c := range []Coord{{1, 2}, {2, 2}, {3, 2}} {
		assert.Equal(t, NewDirSet(Up, Down), b.CellAt(c).IsSet(), "cell %v", c)
	}
}

func TestAdjacentBlacksPointOutward(t *testing.T) {
	b := mustBoard(t, 6, 6, map[Coord]CircleType{{2, 2}: Black, {3, 2}: Black})

	b, err := b.applyOpeningPatterns()
	require.NoError(t, err)

	assert.True(t, b.CellAt(Coord{2, 2}).IsSet().Has(Left))
	assert.True(t, b.CellAt(Coord{3, 2}).IsSet().Has(Right))
	assert.Equal(t, NewDirSet(Left, Right), b.CellAt(Coord{1, 2}).IsSet())
	assert.Equal(t, NewDirSet(Left, Right), b.CellAt(Coord{4, 2}).IsSet())
}

func TestOverlongLegPointsAway(t *testing.T) {
	// A black circle with two whites starting two cells to its right must
	// send that leg left instead.
	b := mustBoard(t, 7, 5, map[Coord]CircleType{
		{2, 2}: Black, {4, 2}: White, {5, 2}: White,
	})

	b, err := b.applyOpeningPatterns()
	require.NoError(t, err)

	assert.True(t, b.CellAt(Coord{2, 2}).IsSet().Has(Left))
	assert.Equal(t, NewDirSet(Left, Right), b.CellAt(Coord{1, 2}).IsSet())
}

func TestWingmanBlackPointsAway(t *testing.T) {
	// Whites diagonally flanking the cell above the black force its leg
	// downward.
	b := mustBoard(t, 6, 6, map[Coord]CircleType{
		{2, 2}: Black, {1, 1}: White, {3, 1}: White,
	})

	b, err := b.applyOpeningPatterns()
	require.NoError(t, err)

	assert.True(t, b.CellAt(Coord{2, 2}).IsSet().Has(Down))
	assert.Equal(t, NewDirSet(Up, Down), b.CellAt(Coord{2, 3}).IsSet())
}

func TestSolveKnownConstraintsReachesFixpoint(t *testing.T) {
	b := mustBoard(t, 4, 4, map[Coord]CircleType{{1, 1}: Black})

	once, err := b.solveKnownConstraints()
	require.NoError(t, err)
	twice, err := once.solveKnownConstraints()
	require.NoError(t, err)

	assert.True(t, once.Equal(twice))
	assert.Equal(t, NewDirSet(Right, Down), once.CellAt(Coord{1, 1}).IsSet())
}
