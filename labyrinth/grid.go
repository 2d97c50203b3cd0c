package labyrinth

import "errors"

// ErrIncompleteSpanningTree signals that grid construction exhausted every
// edge candidate without reaching a full spanning tree. With a fully
// enumerated candidate grid this is unreachable, so hitting it means the
// builder itself is broken; the partial maze is discarded.
var ErrIncompleteSpanningTree = errors.New("labyrinth: grid maze did not reach a full spanning tree")

// edgeCandidate pairs two adjacent grid cells with the ports that would join
// them. Candidates exist only while the grid maze is under construction.
type edgeCandidate struct {
	from     int
	to       int
	fromPort Direction
	toPort   Direction
}

// buildGridMaze grows a rows×cols maze with randomized Kruskal: every
// grid-adjacent pair is enumerated once, the candidate list is shuffled, and
// candidates joining distinct union-find components are linked on both sides
// until the spanning tree has rows*cols−1 edges. The result is always a
// tree, so any two cells are joined by exactly one simple path.
func buildGridMaze(rows, cols int, src *Source, ids *idCounter) (*Maze, error) {
	cells := make([]*Cell, rows*cols)
	for i := range cells {
		cells[i] = newCell(ids.next())
	}

	candidates := gridEdgeCandidates(rows, cols)
	shuffle(candidates, src)

	components := newUnionFind(len(cells))
	linked := 0
	want := rows*cols - 1
	for _, edge := range candidates {
		if linked == want {
			break
		}
		if components.find(edge.from) == components.find(edge.to) {
			continue
		}
		cells[edge.from].setLink(edge.fromPort, edge.to)
		cells[edge.to].setLink(edge.toPort, edge.from)
		components.union(edge.from, edge.to)
		linked++
	}

	if linked != want {
		return nil, ErrIncompleteSpanningTree
	}
	return &Maze{cells: cells, rows: rows, cols: cols}, nil
}

// gridEdgeCandidates enumerates every adjacent pair exactly once, as the
// south and east edge of each cell that has such a neighbor.
func gridEdgeCandidates(rows, cols int) []edgeCandidate {
	candidates := make([]edgeCandidate, 0, 2*rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			at := row*cols + col
			if row+1 < rows {
				candidates = append(candidates, edgeCandidate{from: at, to: at + cols, fromPort: South, toPort: North})
			}
			if col+1 < cols {
				candidates = append(candidates, edgeCandidate{from: at, to: at + 1, fromPort: East, toPort: West})
			}
		}
	}
	return candidates
}

// shuffle is a Fisher–Yates pass over the candidates: position i swaps with
// a uniform pick from [i, n). The final single-element draw is kept so every
// shuffle of n candidates consumes exactly n draws.
func shuffle(candidates []edgeCandidate, src *Source) {
	for i := range candidates {
		j := i + src.Intn(len(candidates)-i)
		candidates[i], candidates[j] = candidates[j], candidates[i]
	}
}

// unionFind tracks the disjoint components of the growing spanning tree over
// the same index space as the cell arena. No path compression; the walk to
// the representative stays short at maze scale.
type unionFind struct {
	parent []int
}

func newUnionFind(size int) *unionFind {
	parent := make([]int, size)
	for i := range parent {
		parent[i] = i
	}
	return &unionFind{parent: parent}
}

// find walks up to the component representative.
func (u *unionFind) find(at int) int {
	for u.parent[at] != at {
		at = u.parent[at]
	}
	return at
}

// union merges the components holding a and b.
func (u *unionFind) union(a, b int) {
	u.parent[u.find(a)] = u.find(b)
}
