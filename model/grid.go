package model

import (
	"crypto/md5"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidDimensions is returned when a grid is empty, ragged, or does not
// have the shape an operation expects.
var ErrInvalidDimensions = errors.New("invalid grid dimensions")

// Coordinate addresses a single cell by row and column.
type Coordinate struct {
	Row int
	Col int
}

// Grid is an immutable generation of the board. Cells are stored row-major in
// a flat buffer that is never written after construction, so a Grid can be
// copied, retained, and shared between goroutines freely.
type Grid struct {
	rows  int
	cols  int
	cells []bool
}

// NewGrid creates an all-dead grid with the specified dimensions
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	return Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]bool, rows*cols),
	}, nil
}

// FromRows builds a grid from nested rows, copying the input. Every row must
// have the same, non-zero length.
func FromRows(rows [][]bool) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, errors.Wrap(ErrInvalidDimensions, "[FromRows] grid has no cells")
	}

	g, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return Grid{}, err
	}
	for r, row := range rows {
		if len(row) != g.cols {
			return Grid{}, errors.Wrapf(ErrInvalidDimensions,
				"[FromRows] row %d has %d columns, want %d", r, len(row), g.cols)
		}
		copy(g.cells[r*g.cols:(r+1)*g.cols], row)
	}
	return g, nil
}

// Build creates a grid by asking fill for the state of every cell in row-major order.
func Build(rows, cols int, fill func(row, col int) bool) (Grid, error) {
	g, err := NewGrid(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	for r := range rows {
		for c := range cols {
			g.cells[r*cols+c] = fill(r, c)
		}
	}
	return g, nil
}

// Rows returns the number of rows
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g Grid) Cols() int { return g.cols }

// HasShape reports whether the grid is exactly rows x cols.
func (g Grid) HasShape(rows, cols int) bool {
	return g.rows == rows && g.cols == cols && len(g.cells) == rows*cols
}

// InBounds reports whether (row, col) addresses a cell of this grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive returns the state of a cell. Off-grid coordinates are dead.
func (g Grid) Alive(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// WithCell returns a copy of the grid with one cell set to alive. The receiver is not modified.
func (g Grid) WithCell(row, col int, alive bool) Grid {
	next := Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: make([]bool, len(g.cells)),
	}
	copy(next.cells, g.cells)
	if next.InBounds(row, col) {
		next.cells[row*next.cols+col] = alive
	}
	return next
}

// Equal reports whether both grids have the same shape and cell states.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols || len(g.cells) != len(other.cells) {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ToRows returns a freshly allocated nested copy of the cells.
func (g Grid) ToRows() [][]bool {
	out := make([][]bool, g.rows)
	for r := range g.rows {
		out[r] = make([]bool, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// LiveCells returns the coordinates of every living cell in row-major order.
func (g Grid) LiveCells() []Coordinate {
	var live []Coordinate
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r*g.cols+c] {
				live = append(live, Coordinate{Row: r, Col: c})
			}
		}
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g Grid) CountLivingCells() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the shape and cell states
func (g Grid) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", g.rows, g.cols)
	for _, alive := range g.cells {
		if alive {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// String renders the grid with '#' for live and '.' for dead cells, one line per row.
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		for c := range g.cols {
			if g.cells[r*g.cols+c] {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
