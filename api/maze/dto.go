// Package mazeapi provides structures and utilities for generating escape
// mazes and validating escape paths over REST.
package mazeapi

import (
	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/google/uuid"
)

// Maze kinds accepted by the create endpoint.
const (
	KindGrid   = "grid"
	KindTwisty = "twisty"
)

// CreateMazeRequest asks for a maze generated from a display name.
type CreateMazeRequest struct {
	Name string `json:"name" binding:"required"`
	Kind string `json:"kind"`
}

// CreateMazeResponse returns the session id and the generated maze.
type CreateMazeResponse struct {
	ID   uuid.UUID    `json:"id"`
	Maze MazeResponse `json:"maze"`
}

// EscapeRequest carries the move string to validate. An empty move string is
// legal and simply fails to escape.
type EscapeRequest struct {
	Moves string `json:"moves"`
}

// EscapeResponse reports whether the moves collected all three items.
type EscapeResponse struct {
	Escaped bool `json:"escaped"`
}

// CellResponse describes one cell. Port fields hold the arena index of the
// neighbor in that direction, or -1 when the port is closed.
type CellResponse struct {
	ID    int    `json:"id"`
	Item  string `json:"item"`
	North int    `json:"north"`
	South int    `json:"south"`
	East  int    `json:"east"`
	West  int    `json:"west"`
}

// MazeResponse is the structural serialization of a maze. Rows and cols are
// omitted for twisty mazes.
type MazeResponse struct {
	Kind  string         `json:"kind"`
	Rows  int            `json:"rows,omitempty"`
	Cols  int            `json:"cols,omitempty"`
	Start int            `json:"start"`
	Cells []CellResponse `json:"cells"`
}

// newMazeResponse flattens a maze into its transport shape.
func newMazeResponse(m *labyrinth.Maze) MazeResponse {
	kind := KindTwisty
	if m.Rows() > 0 {
		kind = KindGrid
	}

	cells := make([]CellResponse, 0, m.Size())
	for _, cell := range m.Cells() {
		cells = append(cells, CellResponse{
			ID:    cell.ID(),
			Item:  cell.Item().String(),
			North: cell.Link(labyrinth.North),
			South: cell.Link(labyrinth.South),
			East:  cell.Link(labyrinth.East),
			West:  cell.Link(labyrinth.West),
		})
	}

	return MazeResponse{
		Kind:  kind,
		Rows:  m.Rows(),
		Cols:  m.Cols(),
		Start: m.Start(),
		Cells: cells,
	}
}
