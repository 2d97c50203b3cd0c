package labyrinth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// lineMaze builds 0—1—…—n-1 linked east/west.
func lineMaze(n int) *Maze {
	cells := make([]*Cell, n)
	for i := range cells {
		cells[i] = newCell(i)
	}
	for i := 0; i+1 < n; i++ {
		cells[i].setLink(East, i+1)
		cells[i+1].setLink(West, i)
	}
	return &Maze{cells: cells}
}

func TestShortestPaths(t *testing.T) {
	t.Run("line graph distances are hop counts", func(t *testing.T) {
		maze := lineMaze(5)
		dist := shortestPaths(maze.Cells())
		for i := 0; i < 5; i++ {
			for j := 0; j < 5; j++ {
				want := j - i
				if want < 0 {
					want = -want
				}
				assert.Equal(t, want, dist[i][j])
			}
		}
	})

	t.Run("diagonal is zero", func(t *testing.T) {
		dist := shortestPaths(lineMaze(3).Cells())
		for i := range dist {
			assert.Equal(t, 0, dist[i][i])
		}
	})

	t.Run("unreachable pairs keep the sentinel", func(t *testing.T) {
		cells := []*Cell{newCell(0), newCell(1), newCell(2)}
		cells[0].setLink(East, 1)
		cells[1].setLink(West, 0)
		dist := shortestPaths(cells)
		assert.Equal(t, 1, dist[0][1])
		assert.Equal(t, len(cells)+1, dist[0][2])
		assert.Equal(t, len(cells)+1, dist[2][1])
	})
}
