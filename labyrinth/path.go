package labyrinth

// directionForMove maps a move character onto a port, or Undefined for any
// character outside the move alphabet.
func directionForMove(ch rune) Direction {
	switch ch {
	case 'N':
		return North
	case 'S':
		return South
	case 'E':
		return East
	case 'W':
		return West
	default:
		return Undefined
	}
}

// IsPathToFreedom walks the move string from the given arena index and
// reports whether the walk collects all three items. Items are collected at
// the start cell and at every cell landed on; collection is a set, so
// revisits and ordering don't matter. Any character outside {N,S,E,W} and
// any move through a closed port fail immediately.
func (m *Maze) IsPathToFreedom(start int, moves string) bool {
	if start < 0 || start >= len(m.cells) {
		return false
	}

	found := make(map[Item]struct{}, len(placeableItems))
	collect := func(at int) {
		if item := m.cells[at].item; item != ItemNone {
			found[item] = struct{}{}
		}
	}

	at := start
	collect(at)
	for _, ch := range moves {
		port := directionForMove(ch)
		if port == Undefined {
			return false
		}
		next := m.cells[at].links[port]
		if next == NoCell {
			return false
		}
		at = next
		collect(at)
	}
	return len(found) == len(placeableItems)
}
