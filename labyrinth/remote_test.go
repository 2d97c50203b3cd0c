package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteLocationsIn(t *testing.T) {
	t.Run("line graph picks the spread endpoints", func(t *testing.T) {
		dist := shortestPaths(lineMaze(5).Cells())
		assert.Equal(t, [4]int{0, 1, 3, 4}, remoteLocationsIn(dist))
	})

	t.Run("all-equal distances keep the first combination", func(t *testing.T) {
		n := 6
		dist := make([][]int, n)
		for i := range dist {
			dist[i] = make([]int, n)
			for j := range dist[i] {
				if i != j {
					dist[i][j] = 2
				}
			}
		}
		assert.Equal(t, [4]int{0, 1, 2, 3}, remoteLocationsIn(dist))
	})

	t.Run("result is a global optimum", func(t *testing.T) {
		mazes := []*Maze{
			lineMaze(8),
			gridMazeFor(t, "Frodo Baggins", 4, 4),
			twistyMazeFor(t, "Samwise Gamgee", 12),
		}
		for _, maze := range mazes {
			dist := shortestPaths(maze.Cells())
			picks := remoteLocationsIn(dist)
			require.True(t, picks[0] < picks[1] && picks[1] < picks[2] && picks[2] < picks[3])

			best := spreadScore(dist, picks[0], picks[1], picks[2], picks[3])
			n := len(dist)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					for k := j + 1; k < n; k++ {
						for l := k + 1; l < n; l++ {
							other := spreadScore(dist, i, j, k, l)
							assert.False(t, lexGreater(other, best),
								"combination %v beats selected %v", [4]int{i, j, k, l}, picks)
						}
					}
				}
			}
		}
	})
}
