package i

import (
	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/google/uuid"
)

// MazeManager creates item-populated escape mazes for display names, tracks
// them by session id, and validates escape paths against them.
type MazeManager interface {
	// NewGridMaze generates the grid maze for a display name and registers
	// it under a fresh session id.
	NewGridMaze(name string) (uuid.UUID, *labyrinth.Maze, error)

	// NewTwistyMaze generates the twisty maze for a display name and
	// registers it under a fresh session id.
	NewTwistyMaze(name string) (uuid.UUID, *labyrinth.Maze, error)

	// MazeByID returns the registered maze for a session id.
	MazeByID(id uuid.UUID) (*labyrinth.Maze, error)

	// ValidatePath walks a move string from the maze's start cell and
	// reports whether it collects all three items.
	ValidatePath(id uuid.UUID, moves string) (bool, error)
}
