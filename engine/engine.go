// Package engine computes Game of Life generations on a fixed-size bounded grid.
//
// An Engine holds only configuration. Every operation takes the current grid
// and returns a new one; the caller owns the state between calls.
package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/rules"
)

const (
	// Rows is the default number of grid rows.
	Rows = 30
	// Cols is the default number of grid columns.
	Cols = 50
	// AliveThreshold is the default random threshold: a cell starts alive when
	// its draw is strictly greater than this value.
	AliveThreshold = 0.7
)

// ErrInvalidThreshold is returned by New for thresholds outside [0, 1).
var ErrInvalidThreshold = errors.New("alive threshold must be in [0, 1)")

// RandomSource yields uniform values in [0, 1). *rand.Rand from math/rand and
// golang.org/x/exp/rand both satisfy it.
type RandomSource interface {
	Float64() float64
}

// Engine advances grids of one fixed shape
type Engine struct {
	rows      int
	cols      int
	threshold float64
}

var defaultEngine = &Engine{rows: Rows, cols: Cols, threshold: AliveThreshold}

// Default returns the engine configured with Rows, Cols and AliveThreshold.
func Default() *Engine { return defaultEngine }

// New returns an engine for rows x cols grids using the given random threshold.
func New(rows, cols int, threshold float64) (*Engine, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(model.ErrInvalidDimensions, "[New] rows=%d cols=%d", rows, cols)
	}
	if threshold < 0 || threshold >= 1 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "[New] threshold=%v", threshold)
	}
	return &Engine{rows: rows, cols: cols, threshold: threshold}, nil
}

// Rows returns the grid height this engine accepts
func (e *Engine) Rows() int { return e.rows }

// Cols returns the grid width this engine accepts
func (e *Engine) Cols() int { return e.cols }

// Threshold returns the random alive threshold
func (e *Engine) Threshold() float64 { return e.threshold }

// CreateEmpty returns a grid with every cell dead.
func (e *Engine) CreateEmpty() model.Grid {
	g, _ := model.NewGrid(e.rows, e.cols)
	return g
}

// CreateRandom draws once per cell from src in row-major order and marks the
// cell alive when the draw exceeds the threshold.
func (e *Engine) CreateRandom(src RandomSource) model.Grid {
	g, _ := model.Build(e.rows, e.cols, func(_, _ int) bool {
		return src.Float64() > e.threshold
	})
	return g
}

// Toggle returns a copy of g with the cell at (row, col) flipped. An
// out-of-bounds coordinate is not an error: g is returned unchanged.
func (e *Engine) Toggle(g model.Grid, row, col int) (model.Grid, error) {
	if err := e.checkShape(g); err != nil {
		return model.Grid{}, errors.Wrap(err, "[Toggle]")
	}
	if !g.InBounds(row, col) {
		return g, nil
	}
	return g.WithCell(row, col, !g.Alive(row, col)), nil
}

// Step computes the next generation of g. Neighbors outside the grid count as
// dead; there is no wraparound. g is never modified.
func (e *Engine) Step(g model.Grid) (model.Grid, error) {
	if err := e.checkShape(g); err != nil {
		return model.Grid{}, errors.Wrap(err, "[Step]")
	}
	next, _ := model.Build(e.rows, e.cols, func(row, col int) bool {
		return rules.ApplyConwayRules(CountNeighbors(g, row, col), g.Alive(row, col))
	})
	return next, nil
}

// CountNeighbors counts the live cells in the Moore neighborhood of (row, col),
// skipping coordinates that fall outside the grid.
func CountNeighbors(g model.Grid, row, col int) int {
	count := 0
	for _, off := range rules.NeighborOffsets {
		r, c := row+off[0], col+off[1]
		if g.InBounds(r, c) && g.Alive(r, c) {
			count++
		}
	}
	return count
}

func (e *Engine) checkShape(g model.Grid) error {
	if !g.HasShape(e.rows, e.cols) {
		return errors.Wrapf(model.ErrInvalidDimensions,
			"got %dx%d, want %dx%d", g.Rows(), g.Cols(), e.rows, e.cols)
	}
	return nil
}

// CreateEmpty returns an empty grid from the default engine.
func CreateEmpty() model.Grid { return defaultEngine.CreateEmpty() }

// CreateRandom returns a random grid from the default engine.
func CreateRandom(src RandomSource) model.Grid { return defaultEngine.CreateRandom(src) }

// Toggle flips one cell using the default engine.
func Toggle(g model.Grid, row, col int) (model.Grid, error) { return defaultEngine.Toggle(g, row, col) }

// Step advances one generation using the default engine.
func Step(g model.Grid) (model.Grid, error) { return defaultEngine.Step(g) }
