package render

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/pathsearch"
)

// Frame is one rendered snapshot in serializable form.
type Frame struct {
	Title string   `json:"title"`
	Rows  []string `json:"rows"`
}

var _ pathsearch.Renderer = (*Recorder)(nil)

// Recorder stores frames in memory. With a positive limit, intermediate
// "Solving Maze" frames past the limit are counted but not stored; final
// frames are always kept.
type Recorder struct {
	limit   int
	frames  []Frame
	dropped int
}

// NewRecorder returns a Recorder; limit <= 0 means unlimited.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

// Render appends snapshot as a Frame.
func (r *Recorder) Render(snapshot *grid.Grid, title string) {
	if r.limit > 0 && len(r.frames) >= r.limit && title == pathsearch.TitleSolving {
		r.dropped++
		return
	}
	r.frames = append(r.frames, Frame{Title: title, Rows: snapshot.Rows()})
}

// Frames returns the stored frames in render order.
func (r *Recorder) Frames() []Frame { return r.frames }

// Dropped returns how many intermediate frames were not stored.
func (r *Recorder) Dropped() int { return r.dropped }

// Last returns the most recent stored frame.
func (r *Recorder) Last() (Frame, bool) {
	if len(r.frames) == 0 {
		return Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}
