package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mazepath/adjacency"
	"github.com/katalvlaran/mazepath/generator"
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
	"github.com/katalvlaran/mazepath/render"
)

// Request limits applied by MazeController unless overridden.
const (
	DefaultMaxSide   = 201
	DefaultMaxFrames = 500
)

// MazeController generates, solves and returns mazes.
type MazeController struct {
	logger    logrus.FieldLogger
	maxSide   int
	maxFrames int
}

// NewMazeController returns a controller with the default limits.
func NewMazeController(logger logrus.FieldLogger) *MazeController {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &MazeController{logger: logger, maxSide: DefaultMaxSide, maxFrames: DefaultMaxFrames}
}

// WithLimits replaces the largest accepted side and the number of recorded
// intermediate frames.
func (mc *MazeController) WithLimits(maxSide, maxFrames int) *MazeController {
	mc.maxSide = maxSide
	mc.maxFrames = maxFrames
	return mc
}

// Register registers the maze routes.
func (mc *MazeController) Register(route *gin.RouterGroup) {
	route.GET("/maze", mc.maze)
}

// maze handles GET /maze.
func (mc *MazeController) maze(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := grid.ValidateDimensions(request.Height, request.Width); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Height > mc.maxSide || request.Width > mc.maxSide {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("maze sides are limited to %d", mc.maxSide)})
		return
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	response, err := mc.run(ctx, request, seed)
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "error while solving maze"})
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func (mc *MazeController) run(ctx *gin.Context, request MazeRequest, seed int64) (*MazeResponse, error) {
	g, err := generator.Generate(request.Height, request.Width, generator.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	maze := g.Rows()

	adj, err := adjacency.Build(g)
	if err != nil {
		return nil, err
	}
	start, _ := g.Find(grid.Start)
	end, _ := g.Find(grid.End)

	var rec *render.Recorder
	opts := []pathsearch.Option{
		pathsearch.WithContext(ctx.Request.Context()),
		pathsearch.WithLogger(mc.logger),
	}
	if request.Frames {
		rec = render.NewRecorder(mc.maxFrames)
		opts = append(opts, pathsearch.WithRenderer(rec))
	}

	res, err := pathsearch.Solve(g, adj, start, end, opts...)
	if err != nil && !errors.Is(err, pathsearch.ErrNoPath) {
		return nil, err
	}

	response := &MazeResponse{
		ID:     uuid.New(),
		Height: request.Height,
		Width:  request.Width,
		Seed:   seed,
		Maze:   maze,
		Solved: res.Grid.Rows(),
		Path:   res.Path,
		Found:  res.Found,
		Steps:  res.Steps,
	}
	if rec != nil {
		response.Frames = rec.Frames()
	}
	mc.logger.WithFields(logrus.Fields{
		"id":     response.ID,
		"height": request.Height,
		"width":  request.Width,
		"seed":   seed,
		"steps":  res.Steps,
	}).Debug("maze solved")
	return response, nil
}

// HealthController answers liveness probes.
type HealthController struct{}

// Register registers the health route.
func (HealthController) Register(route *gin.RouterGroup) {
	route.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
