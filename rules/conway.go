package rules

// B3/S23 thresholds.
const (
	// MinSurvivalNeighbors is the fewest live neighbors a live cell needs to survive.
	MinSurvivalNeighbors = 2
	// MaxSurvivalNeighbors is the most live neighbors a live cell can have and survive.
	MaxSurvivalNeighbors = 3
	// ReproductionNeighbors is the exact live neighbor count that brings a dead cell to life.
	ReproductionNeighbors = 3
)

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	alive, neighbors < 2       -> dead (underpopulation)
	alive, neighbors in {2, 3} -> alive (survival)
	alive, neighbors > 3       -> dead (overpopulation)
	dead,  neighbors == 3      -> alive (reproduction)
	dead,  otherwise           -> dead
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors >= MinSurvivalNeighbors && neighbors <= MaxSurvivalNeighbors
	}
	return neighbors == ReproductionNeighbors
}
