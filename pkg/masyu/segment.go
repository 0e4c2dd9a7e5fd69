package masyu

// LineSegment is a maximal chain of cells connected by set edges, traced
// from the board's cells. Segments are derived state: they are rebuilt from
// scratch whenever a board's cells change, never updated incrementally.
type LineSegment struct {
	Start    Coord
	StartDir Direction
	End      Coord
	EndDir   Direction
	Contains map[Coord]bool
}

// discoverSegments traces every chain of set edges on the board. It returns
// the open segments found, or a non-nil loop set the moment any trace closes
// on itself. A closed loop means the board is either finished or wrong, so
// tracing stops immediately and the caller decides which.
func (b *Board) discoverSegments() ([]*LineSegment, map[Coord]bool) {
	seen := make(map[Coord]bool)
	var segments []*LineSegment

	for y := 0; y < int(b.height); y++ {
		for x := 0; x < int(b.width); x++ {
			c := Coord{uint8(x), uint8(y)}
			cell := b.cells[b.index(c)]
			if seen[c] || cell.isSet.IsEmpty() {
				continue
			}

			contains := map[Coord]bool{c: true}
			start, end := c, c
			var backDir, fwdDir Direction

			if cell.isSet.Count() == 1 {
				// Already at an endpoint; only the forward walk remains.
				backDir = cell.isSet.Single()
				fwdDir = backDir
			} else {
				fwdDir, backDir = cell.isSet.Pair()

				// Walk backward to find the start, watching for the trace
				// closing on itself.
				cur, dir := c, backDir
				for {
					cur = dir.Walk(cur)
					arrived := dir.Opposite()
					start, backDir = cur, arrived
					if contains[cur] {
						return nil, contains
					}
					contains[cur] = true
					out, ok := b.cells[b.index(cur)].otherOut(arrived)
					if !ok {
						break
					}
					dir = out
				}
			}

			// Walk forward to the other endpoint. Any loop through this
			// chain would have been caught by the backward walk.
			cur, dir := c, fwdDir
			for {
				cur = dir.Walk(cur)
				arrived := dir.Opposite()
				end, fwdDir = cur, arrived
				contains[cur] = true
				out, ok := b.cells[b.index(cur)].otherOut(arrived)
				if !ok {
					break
				}
				dir = out
			}

			for cc := range contains {
				seen[cc] = true
			}
			segments = append(segments, &LineSegment{
				Start:    start,
				StartDir: backDir,
				End:      end,
				EndDir:   fwdDir,
				Contains: contains,
			})
		}
	}
	return segments, nil
}
