package masyu

// Clue rules. Each rule takes a board and a circle coordinate and returns a
// board with everything the clue forces, or a Contradiction when the clue
// cannot be satisfied. Rules lean on trial moves: because boards are
// immutable, "try it and see" costs nothing when the trial fails.

// isWhite reports whether c holds a white circle. Safe on coordinates
// outside the board.
func (b *Board) isWhite(c Coord) bool {
	t, ok := b.circles[c]
	return ok && t == White
}

// isBlack reports whether c holds a black circle.
func (b *Board) isBlack(c Coord) bool {
	t, ok := b.circles[c]
	return ok && t == Black
}

// applyWhite forces the cell straight through. Once both active edges are
// known, at least one of the two cells along the line must bend; each side
// is tried independently, and if exactly one side can bend it is committed
// (the other is then necessarily straight, found on a later pass).
func (b *Board) applyWhite(c Coord) (*Board, error) {
	b, err := b.setThrough(c)
	if err != nil {
		return nil, err
	}

	cell := b.CellAt(c)
	if cell.isSet.Count() != 2 {
		return b, nil
	}

	one, other := cell.isSet.Pair()
	bendOne, errOne := b.setBent(one.Walk(c))
	bendOther, errOther := b.setBent(other.Walk(c))

	if errOne != nil && errOther != nil {
		return nil, contradictionf("cannot bend either side of the white circle at %v", c)
	}
	if errOne == nil && errOther == nil {
		// Either side could bend; nothing new is known.
		return b, nil
	}
	if errOne == nil {
		return bendOne, nil
	}
	return bendOther, nil
}

// applyBlack forces the cell bent, extends any active edge one more cell
// straight (a black clue's legs run straight at least one cell further), and
// then trial-commits each undetermined direction as a leg. A direction whose
// trial succeeds while its opposite's fails is forced: a bent cell cannot
// use both opposite directions.
func (b *Board) applyBlack(c Coord) (*Board, error) {
	b, err := b.setBent(c)
	if err != nil {
		return nil, err
	}
	cell := b.CellAt(c)

	for _, d := range cell.isSet.Directions() {
		b, err = b.setThrough(d.Walk(c))
		if err != nil {
			return nil, err
		}
	}
	if cell.IsDone() {
		return b, nil
	}

	var feasible DirSet
	for _, d := range cell.CouldSet().Directions() {
		if _, err := b.blackLeg(c, d); err == nil {
			feasible = feasible.With(d)
		}
	}
	for _, d := range feasible.Directions() {
		if !feasible.Has(d.Opposite()) {
			b, err = b.blackLeg(c, d)
			if err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// blackLeg sets the edge from a black circle toward d and runs the next cell
// straight through.
func (b *Board) blackLeg(c Coord, d Direction) (*Board, error) {
	b, err := b.setDirection(c, d)
	if err != nil {
		return nil, err
	}
	return b.setThrough(d.Walk(c))
}

// solveKnownConstraints applies every circle's rule repeatedly until one
// full pass leaves the board unchanged. Board equality compares only the
// cell constraints, so history does not defeat the fixpoint test.
func (b *Board) solveKnownConstraints() (*Board, error) {
	for {
		prev := b
		var err error
		for _, c := range b.circleCoords() {
			switch b.circles[c] {
			case White:
				b, err = b.applyWhite(c)
			case Black:
				b, err = b.applyBlack(c)
			}
			if err != nil {
				return nil, err
			}
		}
		if b.Equal(prev) {
			return b, nil
		}
	}
}

// Opening patterns: local clue configurations resolved once before the main
// fixpoint. These are normalizations rather than deductions; everything here
// would eventually fall out of search, but resolving them up front keeps the
// tree small.

// threeConsecutiveWhites handles a run of three white circles in a row or
// column: the loop must cross all three perpendicular to the run, since a
// line passing straight along the run would leave the middle circle with no
// adjacent bend.
func (b *Board) threeConsecutiveWhites(c Coord) (*Board, error) {
	right1 := Right.Walk(c)
	right2 := Right.Walk(right1)
	down1 := Down.Walk(c)
	down2 := Down.Walk(down1)

	var err error
	switch {
	case b.isWhite(right1) && b.isWhite(right2):
		if b, err = b.setDirection(c, Up); err != nil {
			return nil, err
		}
		for _, cc := range []Coord{c, right1, right2} {
			if b, err = b.setThrough(cc); err != nil {
				return nil, err
			}
		}
	case b.isWhite(down1) && b.isWhite(down2):
		if b, err = b.setDirection(c, Right); err != nil {
			return nil, err
		}
		for _, cc := range []Coord{c, down1, down2} {
			if b, err = b.setThrough(cc); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// overlongLeg handles a black circle two cells short of two consecutive
// white circles: a leg toward the whites would force two more straight cells
// past them, more than a black leg's single extra straight cell allows, so
// the leg points the other way.
func (b *Board) overlongLeg(c Coord) (*Board, error) {
	var err error
	for _, d := range allDirections {
		firstWhite := d.Walk(d.Walk(c))
		nextWhite := d.Walk(firstWhite)
		if b.isWhite(firstWhite) && b.isWhite(nextWhite) {
			if b, err = b.blackLeg(c, d.Opposite()); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// adjacentBlacks handles two orthogonally adjacent black circles: their
// facing legs cannot both run into each other, so both point outward.
func (b *Board) adjacentBlacks(c Coord) (*Board, error) {
	var err error
	right := Right.Walk(c)
	down := Down.Walk(c)
	if b.isBlack(right) {
		if b, err = b.blackLeg(c, Left); err != nil {
			return nil, err
		}
		if b, err = b.blackLeg(right, Right); err != nil {
			return nil, err
		}
	}
	if b.isBlack(down) {
		if b, err = b.blackLeg(c, Up); err != nil {
			return nil, err
		}
		if b, err = b.blackLeg(down, Down); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// wingmanBlack handles a black circle flanked diagonally by two white
// circles on the same side: the black leg points away from the white pair.
func (b *Board) wingmanBlack(c Coord) (*Board, error) {
	var err error
	for _, d := range allDirections {
		ahead := d.Walk(c)
		left := d.TurnLeft().Walk(ahead)
		right := d.TurnRight().Walk(ahead)
		if b.isWhite(left) && b.isWhite(right) {
			if b, err = b.blackLeg(c, d.Opposite()); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// applyOpeningPatterns runs every pattern over every circle once.
func (b *Board) applyOpeningPatterns() (*Board, error) {
	var err error
	for _, c := range b.circleCoords() {
		switch b.circles[c] {
		case White:
			if b, err = b.threeConsecutiveWhites(c); err != nil {
				return nil, err
			}
		case Black:
			if b, err = b.overlongLeg(c); err != nil {
				return nil, err
			}
			if b, err = b.adjacentBlacks(c); err != nil {
				return nil, err
			}
			if b, err = b.wingmanBlack(c); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}
