package model

// place brings the given offsets from (row, col) to life, wrapping around the edges
func (b *Board) place(row, col int, offsets ...Coord) {
	for _, o := range offsets {
		b.cells[WrapCoordinate(row, o.Row, b.size)][WrapCoordinate(col, o.Col, b.size)] = Alive
	}
}

// AddBlock adds a 2x2 still life with its top-left cell at (row, col)
func (b *Board) AddBlock(row, col int) {
	b.place(row, col, Coord{0, 0}, Coord{0, 1}, Coord{1, 0}, Coord{1, 1})
}

// AddBlinker adds a horizontal period-2 oscillator centered on (row, col)
func (b *Board) AddBlinker(row, col int) {
	b.place(row, col, Coord{0, -1}, Coord{0, 0}, Coord{0, 1})
}

// AddGlider adds a south-east travelling glider with its bounding box starting at (row, col)
//
//	. o .
//	. . o
//	o o o
func (b *Board) AddGlider(row, col int) {
	b.place(row, col, Coord{0, 1}, Coord{1, 2}, Coord{2, 0}, Coord{2, 1}, Coord{2, 2})
}
