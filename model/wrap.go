package model

// Coord is a (row, column) board position
type Coord struct {
	Row int
	Col int
}

// Neighbors lists the eight relative offsets of a cell's Moore neighborhood
var Neighbors = [8]Coord{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{1, 1}, {-1, -1}, {-1, 1}, {1, -1},
}

/*
WrapCoordinate moves position by delta along one axis of a torus of the given size.

Stepping off the low edge lands on size-1, stepping off the high edge lands on 0.
Deltas larger than one cell wrap by modulo. size must be at least 1.
*/
func WrapCoordinate(position, delta, size int) int {
	p := (position + delta) % size
	if p < 0 {
		p += size
	}
	return p
}
