package rules

import (
	"fmt"
	"testing"
)

func TestApplyConwayRules(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		for _, alive := range []bool{false, true} {
			var want bool
			switch {
			case neighbors < 2 || neighbors > 3:
				want = false
			case !alive:
				want = neighbors == 3
			default:
				want = true
			}

			name := fmt.Sprintf("neighbors=%d/alive=%v", neighbors, alive)
			t.Run(name, func(t *testing.T) {
				if got := ApplyConwayRules(neighbors, alive); got != want {
					t.Errorf("ApplyConwayRules(%d, %v) = %v, want %v", neighbors, alive, got, want)
				}
			})
		}
	}
}

func TestApplyConwayRulesTable(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely live cell dies", 1, true, false},
		{"live cell with two survives", 2, true, true},
		{"live cell with three survives", 3, true, true},
		{"crowded live cell dies", 4, true, false},
		{"dead cell with two stays dead", 2, false, false},
		{"dead cell with three is born", 3, false, true},
		{"dead cell with six stays dead", 6, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNeighborOffsets(t *testing.T) {
	seen := make(map[[2]int]bool)
	for _, off := range NeighborOffsets {
		if off == [2]int{0, 0} {
			t.Fatal("offset table contains the cell itself")
		}
		if off[0] < -1 || off[0] > 1 || off[1] < -1 || off[1] > 1 {
			t.Fatalf("offset %v outside the Moore neighborhood", off)
		}
		if seen[off] {
			t.Fatalf("duplicate offset %v", off)
		}
		seen[off] = true
	}
	if len(seen) != 8 {
		t.Fatalf("got %d distinct offsets, want 8", len(seen))
	}
}
