/*
Package labyrinth generates escape mazes from a person's display name and
validates escape paths through them.

A maze is an arena of cells linked through compass ports. Two shapes are
supported: a rows×cols grid maze carved as a random spanning tree, and a
"twisty" maze, a connected random graph that may contain cycles. The name is
hashed into a seed, the seed drives a reproducible random source, and the
finished graph gets a spellbook, a potion and a wand placed at the three most
mutually distant cells, with the fourth pick becoming the start. The same
name always produces the same maze.
*/
package labyrinth

import "errors"

// Construction errors.
var (
	ErrMazeTooSmall = errors.New("labyrinth: maze needs at least four cells for item placement")
	ErrMazeTooBig   = errors.New("labyrinth: maze dimensions exceed the supported maximum")
)

// maxDimension caps grid sides and twisty node counts. Item placement
// enumerates all 4-subsets of cells, which stops being cheap far above this.
const maxDimension = 20

// placeableItems lists the item kinds every maze carries, in the slot order
// produced by remote-location selection.
var placeableItems = [...]Item{ItemSpellbook, ItemPotion, ItemWand}

// idCounter hands out cell ids, monotonically for the life of the counter.
// It is owned by a Generator rather than kept as process-global state so
// tests can reset ids by constructing a fresh Generator.
type idCounter struct {
	at int
}

func (c *idCounter) next() int {
	id := c.at
	c.at++
	return id
}

// Maze is a finished, item-populated cell graph. It is read-only once built;
// a new maze is generated rather than an old one mutated.
type Maze struct {
	cells []*Cell
	start int
	rows  int // 0 for twisty mazes
	cols  int
}

// Cells returns the cell arena. Slice order is the index space used by
// links, the start index and the distance computations.
func (m *Maze) Cells() []*Cell {
	return m.cells
}

// Start returns the arena index of the cell an escape begins at.
func (m *Maze) Start() int {
	return m.start
}

// Size returns the number of cells.
func (m *Maze) Size() int {
	return len(m.cells)
}

// Rows returns the grid height, or 0 for a twisty maze.
func (m *Maze) Rows() int {
	return m.rows
}

// Cols returns the grid width, or 0 for a twisty maze.
func (m *Maze) Cols() int {
	return m.cols
}

// connectedFrom reports whether every cell is reachable from the given arena
// index by walking directional links.
func (m *Maze) connectedFrom(start int) bool {
	if len(m.cells) == 0 {
		return true
	}

	visited := make([]bool, len(m.cells))
	visited[start] = true
	reached := 1
	queue := []int{start}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		for _, next := range m.cells[at].links {
			if next == NoCell || visited[next] {
				continue
			}
			visited[next] = true
			reached++
			queue = append(queue, next)
		}
	}
	return reached == len(m.cells)
}

// Generator builds item-populated mazes for display names. It owns the maze
// dimensions and the cell-id counter; mazes built by the same Generator get
// ids from one monotonic sequence.
type Generator struct {
	rows       int
	cols       int
	twistySize int
	ids        idCounter
}

// NewGenerator validates the structural parameters and returns a Generator.
// Both shapes need at least four cells so that the start and the three items
// land on distinct cells.
func NewGenerator(rows, cols, twistySize int) (*Generator, error) {
	if min(rows, cols) < 1 || rows*cols < len(placeableItems)+1 || twistySize < len(placeableItems)+1 {
		return nil, ErrMazeTooSmall
	}
	if max(rows, cols) > maxDimension || twistySize > maxDimension {
		return nil, ErrMazeTooBig
	}
	return &Generator{rows: rows, cols: cols, twistySize: twistySize}, nil
}

// MazeFor builds the grid maze for a display name: hash name and dimensions
// into a seed, carve the spanning tree, then place items at the most distant
// cells. Structurally identical output for identical names.
func (g *Generator) MazeFor(name string) (*Maze, error) {
	src := NewSource(int64(HashCode(name, g.rows, g.cols)))
	maze, err := buildGridMaze(g.rows, g.cols, src, &g.ids)
	if err != nil {
		return nil, err
	}
	placeItems(maze)
	return maze, nil
}

// TwistyMazeFor builds the twisty maze for a display name.
func (g *Generator) TwistyMazeFor(name string) (*Maze, error) {
	src := NewSource(int64(HashCode(name, g.twistySize)))
	maze := buildTwistyMaze(g.twistySize, src, &g.ids)
	placeItems(maze)
	return maze, nil
}

// placeItems spreads the three items across the most mutually distant cells
// and marks the remaining pick as the start.
func placeItems(maze *Maze) {
	picks := remoteLocationsIn(shortestPaths(maze.cells))
	maze.start = picks[0]
	for slot, item := range placeableItems {
		maze.cells[picks[slot+1]].SetItem(item)
	}
}
