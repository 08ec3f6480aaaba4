package planner

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// ErrScoringFailure marks a failed detail-scoring pass. A partial grid is
// never used downstream.
var ErrScoringFailure = errors.New("scoring failure")

// Cell is one rectangular partition of the image in the scoring grid.
// Cells exactly tile the image: the last row and column absorb the
// division remainder.
type Cell struct {
	Index int
	X, Y  int
	W, H  int
	Score float64
}

// CenterX returns the horizontal center of the cell in image pixels.
func (c Cell) CenterX() int { return c.X + c.W/2 }

// CenterY returns the vertical center of the cell in image pixels.
func (c Cell) CenterY() int { return c.Y + c.H/2 }

// ScoreFunc rates the detail of one image region in [0,1].
type ScoreFunc func(rect image.Rectangle) (float64, error)

// BuildGrid partitions a width x height image into grid x grid cells and
// attaches one detail score per cell. Cell indices are row-major. The whole
// pass fails on the first collaborator error or non-finite score.
func BuildGrid(width, height, grid int, score ScoreFunc) ([]Cell, error) {
	cw := width / grid
	ch := height / grid

	cells := make([]Cell, 0, grid*grid)
	for row := 0; row < grid; row++ {
		for col := 0; col < grid; col++ {
			c := Cell{
				Index: row*grid + col,
				X:     col * cw,
				Y:     row * ch,
				W:     cw,
				H:     ch,
			}
			if col == grid-1 {
				c.W = width - c.X
			}
			if row == grid-1 {
				c.H = height - c.Y
			}

			s, err := score(image.Rect(c.X, c.Y, c.X+c.W, c.Y+c.H))
			if err != nil {
				return nil, fmt.Errorf("%w: cell %d: %v", ErrScoringFailure, c.Index, err)
			}
			if math.IsNaN(s) || math.IsInf(s, 0) {
				return nil, fmt.Errorf("%w: cell %d: non-finite score %f", ErrScoringFailure, c.Index, s)
			}
			c.Score = s
			cells = append(cells, c)
		}
	}
	return cells, nil
}
