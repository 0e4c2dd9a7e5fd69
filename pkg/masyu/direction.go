// Package masyu solves Masyu loop puzzles by constraint propagation and
// case-split search.
//
// A puzzle is a rectangular grid with white and black circle clues. A single
// closed loop must visit every circle, passing straight through white circles
// (with a bend on at least one adjacent cell) and bending at black circles
// (with both adjacent cells straight). The solver models each cell's four
// edges as a small constraint value, propagates consequences of every change
// to a fixpoint, and resolves the remainder with a lazily-expanded binary
// search tree over undetermined edges.
//
// All board state is immutable: every operation returns a new snapshot, so a
// failed trial never disturbs the board it started from.
package masyu

// Direction identifies one of the four edges of a grid cell.
// The declaration order (Up, Right, Down, Left) is also the iteration and
// display order used throughout the package.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// TurnLeft returns the direction after a 90-degree counterclockwise turn.
func (d Direction) TurnLeft() Direction {
	return (d + 3) % 4
}

// TurnRight returns the direction after a 90-degree clockwise turn.
func (d Direction) TurnRight() Direction {
	return (d + 1) % 4
}

// Walk translates c by one cell in direction d. Coordinates are unsigned and
// wrap, so walking off the top or left of a grid produces a coordinate far
// outside any board; callers test the result with Board bounds or map lookups.
func (d Direction) Walk(c Coord) Coord {
	switch d {
	case Up:
		return Coord{c.X, c.Y - 1}
	case Right:
		return Coord{c.X + 1, c.Y}
	case Down:
		return Coord{c.X, c.Y + 1}
	default:
		return Coord{c.X - 1, c.Y}
	}
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "invalid"
	}
}

// allDirections lists the four directions in canonical order.
var allDirections = [4]Direction{Up, Right, Down, Left}

// Coord is a grid position. X grows rightward, Y grows downward.
type Coord struct {
	X, Y uint8
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return "(" + itoa(c.X) + "," + itoa(c.Y) + ")"
}

// itoa formats a uint8 without pulling strconv into the hot path.
func itoa(v uint8) string {
	if v == 0 {
		return "0"
	}
	var buf [3]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = '0' + v%10
		v /= 10
	}
	return string(buf[i:])
}

// DirSet is an immutable set of directions packed into four bits, one per
// Direction value. Operations return new sets rather than mutating, the same
// copy-on-write discipline the rest of the solver relies on.
type DirSet uint8

// AllDirs contains all four directions.
const AllDirs DirSet = 0x0f

// NewDirSet builds a set from the given directions.
func NewDirSet(dirs ...Direction) DirSet {
	var s DirSet
	for _, d := range dirs {
		s |= 1 << d
	}
	return s
}

// Has reports whether d is in the set.
func (s DirSet) Has(d Direction) bool {
	return s&(1<<d) != 0
}

// With returns the set with d added.
func (s DirSet) With(d Direction) DirSet {
	return s | 1<<d
}

// Without returns the set with d removed.
func (s DirSet) Without(d Direction) DirSet {
	return s &^ (1 << d)
}

// Union returns the union of both sets.
func (s DirSet) Union(o DirSet) DirSet {
	return s | o
}

// Diff returns the directions in s that are not in o.
func (s DirSet) Diff(o DirSet) DirSet {
	return s &^ o
}

// Complement returns the directions not in s.
func (s DirSet) Complement() DirSet {
	return AllDirs &^ s
}

// Count returns the number of directions in the set.
func (s DirSet) Count() int {
	n := 0
	for v := s & AllDirs; v != 0; v &= v - 1 {
		n++
	}
	return n
}

// IsEmpty reports whether the set holds no directions.
func (s DirSet) IsEmpty() bool {
	return s&AllDirs == 0
}

// Directions returns the members in canonical order (Up, Right, Down, Left).
func (s DirSet) Directions() []Direction {
	out := make([]Direction, 0, 4)
	for _, d := range allDirections {
		if s.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

// Single returns the sole member of a one-element set.
// It panics on any other cardinality; callers check Count first.
func (s DirSet) Single() Direction {
	if s.Count() != 1 {
		panic("masyu: Single called on DirSet of size " + itoa(uint8(s.Count())))
	}
	for _, d := range allDirections {
		if s.Has(d) {
			return d
		}
	}
	panic("unreachable")
}

// Pair returns the two members of a two-element set in canonical order.
// It panics on any other cardinality; callers check Count first.
func (s DirSet) Pair() (Direction, Direction) {
	if s.Count() != 2 {
		panic("masyu: Pair called on DirSet of size " + itoa(uint8(s.Count())))
	}
	dirs := s.Directions()
	return dirs[0], dirs[1]
}

// String renders the set as "{up right}".
func (s DirSet) String() string {
	out := "{"
	for i, d := range s.Directions() {
		if i > 0 {
			out += " "
		}
		out += d.String()
	}
	return out + "}"
}
