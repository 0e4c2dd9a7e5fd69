package masyu

import (
	"sort"

	"github.com/pkg/errors"
)

// CircleType distinguishes the two clue kinds.
type CircleType uint8

const (
	// White circles are passed straight through, with a bend on at least
	// one adjacent cell along the line.
	White CircleType = iota
	// Black circles are bent, with both adjacent cells along the line
	// passed straight through.
	Black
)

// String returns the circle kind name.
func (t CircleType) String() string {
	if t == Black {
		return "black"
	}
	return "white"
}

// maxDim bounds board dimensions so that wrapped uint8 coordinates produced
// by walking off the grid can never alias a real cell.
const maxDim = 250

// Board is an immutable snapshot of solving progress: the grid dimensions,
// the circle clues (created once per puzzle and shared read-only by every
// derived Board), the per-cell edge constraints, and the line segments
// derived from them. Operations return a new Board, leaving the receiver
// untouched, so trial moves are free to fail.
type Board struct {
	width, height uint8
	circles       map[Coord]CircleType
	cells         []CellLine // row-major, index = y*width + x
	segments      []*LineSegment
	solved        bool
}

// NewBoard builds the initial board for a puzzle: every edge unknown except
// those on the grid boundary, which are forbidden. The circles map is copied;
// callers may reuse theirs.
func NewBoard(width, height int, circles map[Coord]CircleType) (*Board, error) {
	if width < 1 || height < 1 || width > maxDim || height > maxDim {
		return nil, errors.Errorf("board dimensions %dx%d outside 1..%d", width, height, maxDim)
	}

	owned := make(map[Coord]CircleType, len(circles))
	for c, t := range circles {
		if int(c.X) >= width || int(c.Y) >= height {
			return nil, errors.Errorf("circle at %v outside %dx%d board", c, width, height)
		}
		owned[c] = t
	}

	cells := make([]CellLine, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var edge DirSet
			if x == 0 {
				edge = edge.With(Left)
			}
			if x == width-1 {
				edge = edge.With(Right)
			}
			if y == 0 {
				edge = edge.With(Up)
			}
			if y == height-1 {
				edge = edge.With(Down)
			}
			cells[y*width+x] = CellLine{cannotSet: edge}
		}
	}

	return &Board{
		width:   uint8(width),
		height:  uint8(height),
		circles: owned,
		cells:   cells,
	}, nil
}

// Width returns the board width in cells.
func (b *Board) Width() int { return int(b.width) }

// Height returns the board height in cells.
func (b *Board) Height() int { return int(b.height) }

// Solved reports whether the board holds a single closed loop covering
// every circle.
func (b *Board) Solved() bool { return b.solved }

// Segments returns the open line segments discovered on this board.
// A solved board has none.
func (b *Board) Segments() []*LineSegment { return b.segments }

// inBounds reports whether c is on the grid. Wrapped coordinates from
// walking off the top or left edge land far above maxDim and fail the test.
func (b *Board) inBounds(c Coord) bool {
	return c.X < b.width && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	return int(c.Y)*int(b.width) + int(c.X)
}

// CellAt returns the edge constraints of the cell at c.
// Panics if c is outside the board.
func (b *Board) CellAt(c Coord) CellLine {
	if !b.inBounds(c) {
		panic("masyu: cell lookup outside board: " + c.String())
	}
	return b.cells[b.index(c)]
}

// CircleAt returns the circle clue at c, if any.
func (b *Board) CircleAt(c Coord) (CircleType, bool) {
	t, ok := b.circles[c]
	return t, ok
}

// Circles returns a copy of the clue map.
func (b *Board) Circles() map[Coord]CircleType {
	out := make(map[Coord]CircleType, len(b.circles))
	for c, t := range b.circles {
		out[c] = t
	}
	return out
}

// circleCoords returns the clue coordinates in row-major order, for
// deterministic rule application.
func (b *Board) circleCoords() []Coord {
	out := make([]Coord, 0, len(b.circles))
	for c := range b.circles {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

// Equal reports whether two boards carry identical edge knowledge. Dimensions
// and circles are deliberately ignored: boards from different puzzles are
// never compared, and derived segments follow from the cells.
func (b *Board) Equal(o *Board) bool {
	if len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// setDirection marks the edge of the cell at c toward d and propagates.
func (b *Board) setDirection(c Coord, d Direction) (*Board, error) {
	old := b.CellAt(c)
	next, err := old.SetDirection(d)
	if err != nil {
		return nil, errors.Wrapf(err, "cell %v", c)
	}
	if next == old {
		return b, nil
	}
	return b.propagate(map[Coord]CellLine{c: next})
}

// disallowDirection forbids the edge of the cell at c toward d and propagates.
func (b *Board) disallowDirection(c Coord, d Direction) (*Board, error) {
	old := b.CellAt(c)
	next, err := old.DisallowDirection(d)
	if err != nil {
		return nil, errors.Wrapf(err, "cell %v", c)
	}
	if next == old {
		return b, nil
	}
	return b.propagate(map[Coord]CellLine{c: next})
}

// setThrough constrains the cell at c to a straight pass and propagates.
func (b *Board) setThrough(c Coord) (*Board, error) {
	old := b.CellAt(c)
	next, err := old.Through()
	if err != nil {
		return nil, errors.Wrapf(err, "cell %v", c)
	}
	if next == old {
		return b, nil
	}
	return b.propagate(map[Coord]CellLine{c: next})
}

// setBent constrains the cell at c to a corner and propagates.
func (b *Board) setBent(c Coord) (*Board, error) {
	old := b.CellAt(c)
	next, err := old.Bent()
	if err != nil {
		return nil, errors.Wrapf(err, "cell %v", c)
	}
	if next == old {
		return b, nil
	}
	return b.propagate(map[Coord]CellLine{c: next})
}

// lookup resolves a cell against the in-flight change set first, then the
// prior board, so a cell refined earlier in the same propagation is seen in
// its newest state.
func (b *Board) lookup(changes map[Coord]CellLine, c Coord) (CellLine, bool) {
	if cell, ok := changes[c]; ok {
		return cell, true
	}
	if !b.inBounds(c) {
		return CellLine{}, false
	}
	return b.cells[b.index(c)], true
}

// propagate spreads the given changes to a fixpoint and produces the next
// board. Every set edge forces the matching edge of the neighbor across it;
// every forbidden edge forbids the neighbor's matching edge. The change set
// is all-or-nothing: the first Contradiction abandons it entirely.
//
// After the queue drains, segments are rediscovered. A closed loop is a
// solution only if the clue map is non-empty and every clue lies on the loop;
// a loop on a clue-less board can satisfy nothing and is rejected outright.
func (b *Board) propagate(changes map[Coord]CellLine) (*Board, error) {
	queue := make([]Coord, 0, len(changes))
	for c := range changes {
		queue = append(queue, c)
	}
	sort.Slice(queue, func(i, j int) bool {
		if queue[i].Y != queue[j].Y {
			return queue[i].Y < queue[j].Y
		}
		return queue[i].X < queue[j].X
	})

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		cell := changes[c]

		for _, d := range cell.isSet.Directions() {
			n := d.Walk(c)
			old, ok := b.lookup(changes, n)
			if !ok {
				panic("masyu: set edge leaves the board at " + c.String())
			}
			next, err := old.SetDirection(d.Opposite())
			if err != nil {
				return nil, errors.Wrapf(err, "propagating line from %v into %v", c, n)
			}
			if next == old {
				continue
			}
			changes[n] = next
			queue = append(queue, n)
		}

		for _, d := range cell.cannotSet.Directions() {
			n := d.Walk(c)
			old, ok := b.lookup(changes, n)
			if !ok {
				continue // boundary edge, no neighbor
			}
			next, err := old.DisallowDirection(d.Opposite())
			if err != nil {
				return nil, errors.Wrapf(err, "propagating blank from %v into %v", c, n)
			}
			if next == old {
				continue
			}
			changes[n] = next
			queue = append(queue, n)
		}
	}

	cells := make([]CellLine, len(b.cells))
	copy(cells, b.cells)
	for c, cell := range changes {
		cells[b.index(c)] = cell
	}
	next := &Board{
		width:   b.width,
		height:  b.height,
		circles: b.circles,
		cells:   cells,
	}

	segments, loop := next.discoverSegments()
	if loop != nil {
		if len(b.circles) == 0 {
			return nil, contradictionf("closed loop on a board with no circles")
		}
		for c := range b.circles {
			if !loop[c] {
				return nil, contradictionf("closed loop does not contain the circle at %v", c)
			}
		}
		next.solved = true
		return next, nil
	}
	next.segments = segments
	return next, nil
}
