package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twistyMazeFor(t *testing.T, name string, size int) *Maze {
	t.Helper()
	gen, err := NewGenerator(4, 4, size)
	require.NoError(t, err)
	maze, err := gen.TwistyMazeFor(name)
	require.NoError(t, err)
	return maze
}

func TestTwistyMaze(t *testing.T) {
	names := []string{"Frodo Baggins", "Samwise Gamgee", "Hermione Granger", "Ged Sparrowhawk"}

	t.Run("is connected", func(t *testing.T) {
		for _, name := range names {
			for _, size := range []int{4, 8, 12, 20} {
				maze := twistyMazeFor(t, name, size)
				assert.Equal(t, size, maze.Size())
				assert.True(t, maze.connectedFrom(0), name)
			}
		}
	})

	t.Run("no cell exceeds degree four and every link is paired", func(t *testing.T) {
		for _, name := range names {
			maze := twistyMazeFor(t, name, 12)
			for at, cell := range maze.Cells() {
				degree := 0
				for d := Direction(0); d < portCount; d++ {
					next := cell.Link(d)
					if next == NoCell {
						continue
					}
					degree++

					// The far end must point back, though not
					// necessarily through the opposite port.
					back := false
					for bd := Direction(0); bd < portCount; bd++ {
						if maze.Cells()[next].Link(bd) == at {
							back = true
						}
					}
					assert.True(t, back, name)
				}
				assert.LessOrEqual(t, degree, portCount)
			}
		}
	})

	t.Run("same name yields the same maze", func(t *testing.T) {
		for _, name := range names {
			assertSameStructure(t, twistyMazeFor(t, name, 12), twistyMazeFor(t, name, 12))
		}
	})

	t.Run("places each item once, off the start cell", func(t *testing.T) {
		for _, name := range names {
			assertItemPlacement(t, twistyMazeFor(t, name, 12))
		}
	})
}
