// Package service wires the labyrinth generator behind the MazeManager
// interface: one generator per service, an in-memory session registry, and
// escape-path validation. The registry lives for the process only; mazes are
// never persisted.
package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/beka-birhanu/labyrinth-api/labyrinth"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/google/uuid"
)

// Default maze shape, matching the reference dimensions.
const (
	defaultRows       = 4
	defaultCols       = 4
	defaultTwistySize = 12
)

var (
	ErrMazeNotFound = errors.New("maze not found")
)

// Options configures a MazeService. Zero or negative fields fall back to the
// defaults above.
type Options struct {
	Rows       int
	Cols       int
	TwistySize int
}

// MazeService implements i.MazeManager over a single labyrinth.Generator.
// Generated mazes are kept in an in-memory map keyed by session id.
type MazeService struct {
	generator    *labyrinth.Generator
	mazes        map[uuid.UUID]*labyrinth.Maze
	logger       i.Logger
	sync.RWMutex // Guards the registry and the generator's id sequence.
}

// NewMazeService validates the options and returns a ready MazeService.
func NewMazeService(logger i.Logger, opts *Options) (i.MazeManager, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Rows <= 0 {
		opts.Rows = defaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = defaultCols
	}
	if opts.TwistySize <= 0 {
		opts.TwistySize = defaultTwistySize
	}

	generator, err := labyrinth.NewGenerator(opts.Rows, opts.Cols, opts.TwistySize)
	if err != nil {
		return nil, err
	}

	return &MazeService{
		generator: generator,
		mazes:     make(map[uuid.UUID]*labyrinth.Maze),
		logger:    logger,
	}, nil
}

// NewGridMaze generates the grid maze for a display name and registers it.
func (s *MazeService) NewGridMaze(name string) (uuid.UUID, *labyrinth.Maze, error) {
	return s.register(name, "grid", s.generator.MazeFor)
}

// NewTwistyMaze generates the twisty maze for a display name and registers it.
func (s *MazeService) NewTwistyMaze(name string) (uuid.UUID, *labyrinth.Maze, error) {
	return s.register(name, "twisty", s.generator.TwistyMazeFor)
}

func (s *MazeService) register(name, kind string, build func(string) (*labyrinth.Maze, error)) (uuid.UUID, *labyrinth.Maze, error) {
	s.Lock()
	defer s.Unlock()

	maze, err := build(name)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Building %s maze: %v", kind, err))
		return uuid.Nil, nil, err
	}

	id := uuid.New()
	s.mazes[id] = maze
	s.logger.Info(fmt.Sprintf("Generated %s maze: ID=%s cells=%d", kind, id, maze.Size()))
	return id, maze, nil
}

// MazeByID returns the registered maze for a session id.
func (s *MazeService) MazeByID(id uuid.UUID) (*labyrinth.Maze, error) {
	s.RLock()
	defer s.RUnlock()

	maze, ok := s.mazes[id]
	if !ok {
		return nil, ErrMazeNotFound
	}
	return maze, nil
}

// ValidatePath walks a move string from the maze's start cell and reports
// whether it collects all three items. Malformed move strings and moves
// through closed ports simply yield false.
func (s *MazeService) ValidatePath(id uuid.UUID, moves string) (bool, error) {
	maze, err := s.MazeByID(id)
	if err != nil {
		return false, err
	}

	escaped := maze.IsPathToFreedom(maze.Start(), moves)
	s.logger.Debug(fmt.Sprintf("Validated path: ID=%s moves=%d escaped=%t", id, len(moves), escaped))
	return escaped, nil
}
