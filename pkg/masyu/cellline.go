package masyu

// CellLine is the constraint state of one cell with respect to which of its
// four edges carry the loop. isSet holds edges known to carry a line,
// cannotSet edges known not to; the two are always disjoint. A CellLine is a
// small immutable value: transitions return a new CellLine and never modify
// the receiver.
//
// Every transition re-establishes the structural invariants:
//   - at most two edges set; the moment two are set the other two are
//     forbidden (one line in, one line out)
//   - one edge set plus two forbidden forces the last edge set (a line
//     never dead-ends inside a cell)
//   - three forbidden edges force the fourth forbidden (a cell cannot have
//     exactly one active edge)
type CellLine struct {
	isSet     DirSet
	cannotSet DirSet
}

// IsSet returns the edges known to carry the line.
func (c CellLine) IsSet() DirSet { return c.isSet }

// CannotSet returns the edges known not to carry the line.
func (c CellLine) CannotSet() DirSet { return c.cannotSet }

// CouldSet returns the edges still undetermined.
func (c CellLine) CouldSet() DirSet {
	return AllDirs.Diff(c.isSet).Diff(c.cannotSet)
}

// IsDone reports whether all four edges are classified.
func (c CellLine) IsDone() bool {
	return c.isSet.Count()+c.cannotSet.Count() == 4
}

// otherOut returns the exit edge for a line entering along in, for a cell
// with both its edges determined. The second return is false when the cell
// does not yet have exactly two active edges. Panics if in is not one of the
// two active edges: path tracing only ever enters a cell through a set edge.
func (c CellLine) otherOut(in Direction) (Direction, bool) {
	if c.isSet.Count() != 2 {
		return 0, false
	}
	one, other := c.isSet.Pair()
	switch in {
	case one:
		return other, true
	case other:
		return one, true
	}
	panic("masyu: path entered cell " + c.String() + " through unset edge " + in.String())
}

// SetDirection marks edge d as carrying the line. It is a no-op if d is
// already set and a Contradiction if d is already forbidden.
func (c CellLine) SetDirection(d Direction) (CellLine, error) {
	if c.isSet.Has(d) {
		return c, nil
	}
	if c.cannotSet.Has(d) {
		return c, contradictionf("cannot set %v: edge already forbidden", d)
	}

	isSet := c.isSet.With(d)
	cannotSet := c.cannotSet
	if isSet.Count() == 2 {
		cannotSet = isSet.Complement()
	} else if cannotSet.Count() == 2 {
		isSet = cannotSet.Complement()
	}
	return CellLine{isSet: isSet, cannotSet: cannotSet}, nil
}

// DisallowDirection marks edge d as not carrying the line. It is a no-op if
// d is already forbidden and a Contradiction if d is already set.
func (c CellLine) DisallowDirection(d Direction) (CellLine, error) {
	if c.cannotSet.Has(d) {
		return c, nil
	}
	if c.isSet.Has(d) {
		return c, contradictionf("cannot forbid %v: edge already set", d)
	}

	cannotSet := c.cannotSet.With(d)
	isSet := c.isSet
	// A cell is not required to contain a line at all, so forbidding edges
	// only forces the rest when a line is already known to pass through.
	if cannotSet.Count() == 2 && isSet.Count() == 1 {
		isSet = cannotSet.Complement()
	} else if cannotSet.Count() == 3 {
		cannotSet = AllDirs
	}
	return CellLine{isSet: isSet, cannotSet: cannotSet}, nil
}

// Through constrains the cell to a straight pass: its two active edges must
// be opposite. Fails if the cell is already bent or already blank. When
// nothing at all is known yet the cell is returned unchanged; the caller
// re-applies the constraint on later passes once an edge appears.
func (c CellLine) Through() (CellLine, error) {
	switch c.isSet.Count() {
	case 2:
		one, other := c.isSet.Pair()
		if one.Opposite() != other {
			return c, contradictionf("cell %v is already bent", c)
		}
		return c, nil
	case 1:
		return c.SetDirection(c.isSet.Single().Opposite())
	}

	switch c.cannotSet.Count() {
	case 1:
		one := c.cannotSet.Single()
		cannotSet := NewDirSet(one, one.Opposite())
		return CellLine{isSet: cannotSet.Complement(), cannotSet: cannotSet}, nil
	case 2:
		isSet := c.cannotSet.Complement()
		one, other := isSet.Pair()
		if one.Opposite() != other {
			return c, contradictionf("no straight path exists through %v", c)
		}
		return CellLine{isSet: isSet, cannotSet: c.cannotSet}, nil
	case 4:
		return c, contradictionf("cell %v must be blank", c)
	case 0:
		return c, nil
	}
	// Three forbidden edges force the fourth, so a count of 3 never survives
	// a transition.
	panic("masyu: cell with three forbidden edges: " + c.String())
}

// Bent constrains the cell to a corner: its two active edges must be
// perpendicular. The mirror of Through.
func (c CellLine) Bent() (CellLine, error) {
	switch c.isSet.Count() {
	case 2:
		one, other := c.isSet.Pair()
		if one.Opposite() == other {
			return c, contradictionf("cell %v is already straight-through", c)
		}
		return c, nil
	case 1:
		return c.DisallowDirection(c.isSet.Single().Opposite())
	}

	switch c.cannotSet.Count() {
	case 1:
		return c.SetDirection(c.cannotSet.Single().Opposite())
	case 2:
		isSet := c.cannotSet.Complement()
		one, other := isSet.Pair()
		if one.Opposite() == other {
			return c, contradictionf("no bent path exists through %v", c)
		}
		return CellLine{isSet: isSet, cannotSet: c.cannotSet}, nil
	case 4:
		return c, contradictionf("cell %v must be blank", c)
	}
	return c, nil
}

// String renders the cell as "set{...} cannot{...}".
func (c CellLine) String() string {
	return "set" + c.isSet.String() + " cannot" + c.cannotSet.String()
}
