package rules

const (
	// BirthNeighbors is the exact live-neighbor count that brings a dead cell to life.
	BirthNeighbors = 3

	minSurvivalNeighbors = 2
	maxSurvivalNeighbors = 3
)

// NeighborOffsets is the Moore neighborhood as (row, col) deltas. Order is irrelevant.
var NeighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

/*
ApplyConwayRules applies Conway's Game of Life rules (B3/S23) to determine the next state of a cell.

Under- and over-population kill the cell whatever its state; a dead cell with
exactly three neighbors is born; a live cell with two or three neighbors survives.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < minSurvivalNeighbors || neighbors > maxSurvivalNeighbors {
		return false
	}
	if !alive {
		return neighbors == BirthNeighbors
	}
	return true
}
