package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/render"
)

// MazeRequest carries the query parameters of GET /maze. A missing seed asks
// the server to pick one.
type MazeRequest struct {
	Height int    `form:"height,default=21"`
	Width  int    `form:"width,default=21"`
	Seed   *int64 `form:"seed"`
	Frames bool   `form:"frames"`
}

// MazeResponse is one generated and solved maze.
type MazeResponse struct {
	ID     uuid.UUID      `json:"id"`
	Height int            `json:"height"`
	Width  int            `json:"width"`
	Seed   int64          `json:"seed"`
	Maze   []string       `json:"maze"`
	Solved []string       `json:"solved"`
	Path   []grid.Coord   `json:"path"`
	Found  bool           `json:"found"`
	Steps  int            `json:"steps"`
	Frames []render.Frame `json:"frames,omitempty"`
}
