package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// cycleMaze hand-builds a 2×2 grid fully linked as a cycle:
//
//	0—1
//	|  |
//	2—3
//
// with the spellbook at 1, the potion at 2 and the wand at 3.
func cycleMaze() *Maze {
	cells := []*Cell{newCell(0), newCell(1), newCell(2), newCell(3)}
	link := func(a int, d Direction, b int, back Direction) {
		cells[a].setLink(d, b)
		cells[b].setLink(back, a)
	}
	link(0, East, 1, West)
	link(0, South, 2, North)
	link(1, South, 3, North)
	link(2, East, 3, West)

	cells[1].SetItem(ItemSpellbook)
	cells[2].SetItem(ItemPotion)
	cells[3].SetItem(ItemWand)
	return &Maze{cells: cells, start: 0}
}

func TestIsPathToFreedom(t *testing.T) {
	maze := cycleMaze()

	t.Run("visiting all three items succeeds", func(t *testing.T) {
		assert.True(t, maze.IsPathToFreedom(0, "ESW"))
	})

	t.Run("revisiting collected items is a no-op", func(t *testing.T) {
		assert.True(t, maze.IsPathToFreedom(0, "ESWNSE"))
	})

	t.Run("partial collection fails", func(t *testing.T) {
		assert.False(t, maze.IsPathToFreedom(0, "E"))
		assert.False(t, maze.IsPathToFreedom(0, "ES"))
	})

	t.Run("empty move string fails unless already complete", func(t *testing.T) {
		assert.False(t, maze.IsPathToFreedom(0, ""))
	})

	t.Run("invalid move character fails regardless of maze contents", func(t *testing.T) {
		assert.False(t, maze.IsPathToFreedom(0, "NXS"))
		assert.False(t, maze.IsPathToFreedom(0, "ESWQ"))
	})

	t.Run("walking off a closed port fails without panicking", func(t *testing.T) {
		assert.NotPanics(t, func() {
			assert.False(t, maze.IsPathToFreedom(0, "N"))
			assert.False(t, maze.IsPathToFreedom(0, "W"))
		})
	})

	t.Run("out-of-range start fails", func(t *testing.T) {
		assert.False(t, maze.IsPathToFreedom(-1, "E"))
		assert.False(t, maze.IsPathToFreedom(4, "E"))
	})

	t.Run("generated mazes are escapable via their distance matrix", func(t *testing.T) {
		// A correct maze always admits some escape; reconstruct one by
		// greedy walking toward the nearest uncollected item.
		maze := gridMazeFor(t, "Frodo Baggins", 4, 4)
		moves := escapeMoves(t, maze)
		assert.True(t, maze.IsPathToFreedom(maze.Start(), moves))
	})
}

// escapeMoves builds a move string visiting every item cell by repeatedly
// stepping along a shortest path to the closest one still missing.
func escapeMoves(t *testing.T, maze *Maze) string {
	t.Helper()
	dist := shortestPaths(maze.Cells())

	remaining := map[int]struct{}{}
	for at, cell := range maze.Cells() {
		if cell.Item() != ItemNone {
			remaining[at] = struct{}{}
		}
	}

	moves := ""
	at := maze.Start()
	delete(remaining, at)
	for len(remaining) > 0 {
		target := -1
		for candidate := range remaining {
			if target == -1 || dist[at][candidate] < dist[at][target] {
				target = candidate
			}
		}

		// Step through any neighbor that strictly shrinks the distance.
		stepped := false
		for d := Direction(0); d < portCount && !stepped; d++ {
			next := maze.Cells()[at].Link(d)
			if next == NoCell || dist[next][target] >= dist[at][target] {
				continue
			}
			moves += d.moveChar()
			at = next
			delete(remaining, at)
			stepped = true
		}
		if !stepped {
			t.Fatalf("no step from %d toward %d", at, target)
		}
	}
	return moves
}

// moveChar is the move-string character for a port.
func (d Direction) moveChar() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return "?"
}
