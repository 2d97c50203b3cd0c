package labyrinth

// Direction identifies one of the four compass ports a cell exposes.
type Direction int

// Compass ports, in the order they are stored on a cell.
const (
	North Direction = iota
	South
	East
	West

	portCount = 4
)

// Undefined marks the absence of a usable port while linking cells.
// It must never survive into a finished maze.
const Undefined Direction = -1

// NoCell is the arena index meaning "no neighbor through this port".
const NoCell = -1

// String returns the direction name used in logs and serialized mazes.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Undefined"
	}
}

// Item enumerates what a single cell can hold. Every generated maze carries
// exactly one spellbook, one potion and one wand, each in a distinct cell.
type Item int

// Cell contents.
const (
	ItemNone Item = iota
	ItemSpellbook
	ItemPotion
	ItemWand
)

// String returns the item name used in serialized mazes.
func (i Item) String() string {
	switch i {
	case ItemSpellbook:
		return "spellbook"
	case ItemPotion:
		return "potion"
	case ItemWand:
		return "wand"
	default:
		return "none"
	}
}

// Cell is a single maze node. Neighbors are referenced by arena index, one
// per compass port, so cyclic twisty mazes need no special ownership
// handling. Ids are assigned at creation and never reused.
type Cell struct {
	id    int
	item  Item
	links [portCount]int
}

// newCell returns a cell with the given id and all four ports closed.
func newCell(id int) *Cell {
	c := &Cell{id: id, item: ItemNone}
	for d := range c.links {
		c.links[d] = NoCell
	}
	return c
}

// ID returns the cell's creation id.
func (c *Cell) ID() int {
	return c.id
}

// Item returns the item currently held by the cell.
func (c *Cell) Item() Item {
	return c.item
}

// SetItem places an item in the cell.
func (c *Cell) SetItem(item Item) {
	c.item = item
}

// Link returns the arena index of the neighbor through the given port, or
// NoCell when the port is closed.
func (c *Cell) Link(d Direction) int {
	return c.links[d]
}

// setLink opens the given port toward the cell at the given arena index.
func (c *Cell) setLink(d Direction, to int) {
	c.links[d] = to
}

// freePorts lists the ports not yet linked to a neighbor.
func (c *Cell) freePorts() []Direction {
	free := make([]Direction, 0, portCount)
	for d := Direction(0); d < portCount; d++ {
		if c.links[d] == NoCell {
			free = append(free, d)
		}
	}
	return free
}

// reset closes every port and removes the item. Used between twisty-maze
// construction attempts.
func (c *Cell) reset() {
	c.item = ItemNone
	for d := range c.links {
		c.links[d] = NoCell
	}
}
