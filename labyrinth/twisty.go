package labyrinth

import "math"

// buildTwistyMaze grows a connected random graph over size freestanding
// cells. Each unordered pair is linked with probability ln(size)/size, the
// Erdős–Rényi connectivity threshold, through a uniformly random free port
// on each endpoint. A pass that runs out of ports on either endpoint is
// discarded and retried from a cleared graph, as is a pass whose result is
// not connected. The random source is never reset between attempts, so the
// finished maze depends on how many attempts failed; that draw consumption
// is part of the reproducibility contract and must not be "cleaned up".
//
// The retry loop has no iteration bound. Rejection sampling converges fast
// at the sizes we build, and a cap would change which draws the final maze
// consumes.
func buildTwistyMaze(size int, src *Source, ids *idCounter) *Maze {
	cells := make([]*Cell, size)
	for i := range cells {
		cells[i] = newCell(ids.next())
	}
	maze := &Maze{cells: cells}

	threshold := math.Log(float64(size)) / float64(size)
	for {
		for _, cell := range cells {
			cell.reset()
		}
		if !linkTwistyPass(maze, threshold, src) {
			continue
		}
		if maze.connectedFrom(0) {
			return maze
		}
	}
}

// linkTwistyPass runs one full linking pass. It reports false as soon as a
// drawn pair cannot be linked because an endpoint has no free port left; the
// caller discards the whole pass.
func linkTwistyPass(maze *Maze, threshold float64, src *Source) bool {
	for i := 0; i < len(maze.cells); i++ {
		for j := i + 1; j < len(maze.cells); j++ {
			if src.Float64() > threshold {
				continue
			}

			iPort := randomFreePort(maze.cells[i], src)
			jPort := randomFreePort(maze.cells[j], src)
			if iPort == Undefined || jPort == Undefined {
				return false
			}

			maze.cells[i].setLink(iPort, j)
			maze.cells[j].setLink(jPort, i)
		}
	}
	return true
}

// randomFreePort picks uniformly among the unused ports of the cell, or
// Undefined when every port is taken. No draw is consumed in the Undefined
// case.
func randomFreePort(cell *Cell, src *Source) Direction {
	free := cell.freePorts()
	if len(free) == 0 {
		return Undefined
	}
	return free[src.Intn(len(free))]
}
