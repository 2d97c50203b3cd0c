package labyrinth

// shortestPaths computes all-pairs hop distances over the cell arena with
// Floyd–Warshall. The arena order is the index space of the returned matrix.
// Unreached pairs start at count+1, a sentinel no connected graph can leave
// in place. Cubic time is fine at maze scale.
func shortestPaths(cells []*Cell) [][]int {
	count := len(cells)
	dist := make([][]int, count)
	for i := range dist {
		dist[i] = make([]int, count)
		for j := range dist[i] {
			dist[i][j] = count + 1
		}
		dist[i][i] = 0
	}

	for i, cell := range cells {
		for _, j := range cell.links {
			if j != NoCell {
				dist[i][j] = 1
			}
		}
	}

	for k := 0; k < count; k++ {
		for i := 0; i < count; i++ {
			for j := 0; j < count; j++ {
				if through := dist[i][k] + dist[k][j]; through < dist[i][j] {
					dist[i][j] = through
				}
			}
		}
	}
	return dist
}
