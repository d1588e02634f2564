package model

import (
	"testing"

	"github.com/pkg/errors"
)

func mustFromRows(t *testing.T, rows [][]bool) Grid {
	t.Helper()
	g, err := FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	return g
}

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3, 4)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Rows() != 3 || g.Cols() != 4 {
		t.Fatalf("got %dx%d, want 3x4", g.Rows(), g.Cols())
	}
	if n := g.CountLivingCells(); n != 0 {
		t.Fatalf("new grid has %d living cells", n)
	}

	for _, dims := range [][2]int{{0, 4}, {3, 0}, {-1, 2}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Errorf("NewGrid(%d, %d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]bool
		wantErr bool
	}{
		{"rectangular", [][]bool{{true, false}, {false, true}, {true, true}}, false},
		{"no rows", nil, true},
		{"empty row", [][]bool{{}}, true},
		{"ragged", [][]bool{{true, false}, {true}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := FromRows(tt.rows)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDimensions) {
					t.Fatalf("err = %v, want ErrInvalidDimensions", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for r, row := range tt.rows {
				for c, want := range row {
					if got := g.Alive(r, c); got != want {
						t.Errorf("Alive(%d, %d) = %v, want %v", r, c, got, want)
					}
				}
			}
		})
	}
}

func TestFromRowsCopiesInput(t *testing.T) {
	src := [][]bool{{true, false}, {false, false}}
	g := mustFromRows(t, src)
	src[0][0] = false
	src[1][1] = true
	if !g.Alive(0, 0) || g.Alive(1, 1) {
		t.Fatal("grid changed after its source rows were modified")
	}

	out := g.ToRows()
	out[0][0] = false
	if !g.Alive(0, 0) {
		t.Fatal("grid changed after ToRows result was modified")
	}
}

func TestAliveOffGrid(t *testing.T) {
	g := mustFromRows(t, [][]bool{{true, true}, {true, true}})
	for _, c := range []Coordinate{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Alive(c.Row, c.Col) {
			t.Errorf("Alive(%d, %d) = true for off-grid coordinate", c.Row, c.Col)
		}
	}
}

func TestWithCell(t *testing.T) {
	g, _ := NewGrid(2, 3)
	next := g.WithCell(1, 2, true)
	if g.Alive(1, 2) {
		t.Fatal("WithCell modified its receiver")
	}
	if !next.Alive(1, 2) || next.CountLivingCells() != 1 {
		t.Fatalf("WithCell result:\n%s", next)
	}

	same := g.WithCell(5, 5, true)
	if !same.Equal(g) {
		t.Fatal("off-grid WithCell changed the grid")
	}
}

func TestEqualAndHash(t *testing.T) {
	a := mustFromRows(t, [][]bool{{true, false, false}, {false, true, false}})
	b := mustFromRows(t, [][]bool{{true, false, false}, {false, true, false}})
	c := mustFromRows(t, [][]bool{{true, false}, {false, false}, {true, false}})

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal("identical grids compare unequal")
	}
	if a.Equal(c) {
		t.Fatal("grids of different shape compare equal")
	}
	if a.Hash() == c.Hash() {
		t.Fatal("grids of different shape share a hash")
	}
	if a.Equal(a.WithCell(0, 2, true)) {
		t.Fatal("grids with different cells compare equal")
	}
}

func TestLiveCellsAndString(t *testing.T) {
	g := mustFromRows(t, [][]bool{{false, true}, {true, false}})
	live := g.LiveCells()
	want := []Coordinate{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if len(live) != len(want) {
		t.Fatalf("LiveCells = %v, want %v", live, want)
	}
	for i := range want {
		if live[i] != want[i] {
			t.Fatalf("LiveCells = %v, want %v", live, want)
		}
	}
	if got := g.String(); got != ".#\n#.\n" {
		t.Fatalf("String = %q", got)
	}
}

func TestBuild(t *testing.T) {
	g, err := Build(3, 3, func(row, col int) bool { return row == col })
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.String(); got != "#..\n.#.\n..#\n" {
		t.Fatalf("Build produced\n%s", got)
	}
}
