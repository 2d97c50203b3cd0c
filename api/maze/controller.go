package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/labyrinth-api/service"
	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController exposes maze generation and escape validation.
type MazeController struct {
	mazeManager i.MazeManager
}

// NewMazeController initializes a MazeController.
func NewMazeController(mm i.MazeManager) (*MazeController, error) {
	return &MazeController{mazeManager: mm}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.GET("/:ID", mc.mazeInfo)
		mazes.POST("/:ID/escape", mc.escape)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// create handles maze generation requests.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	build := mc.mazeManager.NewGridMaze
	switch request.Kind {
	case KindGrid, "":
	case KindTwisty:
		build = mc.mazeManager.NewTwistyMaze
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "kind must be grid or twisty"})
		return
	}

	id, maze, err := build(request.Name)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while generating maze"})
		return
	}

	ctx.JSON(http.StatusCreated, CreateMazeResponse{ID: id, Maze: newMazeResponse(maze)})
}

// mazeInfo returns a previously generated maze.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	maze, err := mc.mazeManager.MazeByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(maze))
}

// escape validates a move string against a previously generated maze.
func (mc *MazeController) escape(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	var request EscapeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	escaped, err := mc.mazeManager.ValidatePath(id, request.Moves)
	if err != nil {
		if errors.Is(err, service.ErrMazeNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "no maze"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while validating path"})
		return
	}

	ctx.JSON(http.StatusOK, EscapeResponse{Escaped: escaped})
}
