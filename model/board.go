package model

import (
	"log"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-gol-torus/rules"
)

// Board is a square toroidal grid of cells. Its size never changes once created.
type Board struct {
	size  int
	cells [][]Cell
}

// NewBoard creates a size x size board with every cell set to initial
func NewBoard(size int, initial Cell) (*Board, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[NewBoard] board size must be positive, got %d", size)
	}

	b := newBoard(size)
	if initial != Dead {
		for row := range b.cells {
			for col := range b.cells[row] {
				b.cells[row][col] = initial
			}
		}
	}
	return b, nil
}

func newBoard(size int) *Board {
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	return &Board{
		size:  size,
		cells: cells,
	}
}

// Size returns the side length of the board
func (b *Board) Size() int {
	return b.size
}

// reset resizes a recycled board and kills every cell
func (b *Board) reset(size int) {
	b.size = size

	if len(b.cells) != size {
		b.cells = make([][]Cell, size)
	}
	for i := range b.cells {
		if len(b.cells[i]) != size {
			b.cells[i] = make([]Cell, size)
		} else {
			clear(b.cells[i])
		}
	}
}

// Clear kills every cell
func (b *Board) Clear() {
	for row := range b.cells {
		clear(b.cells[row])
	}
}

// Set sets the cell at (row, col). Positions outside the board are ignored.
func (b *Board) Set(row, col int, cell Cell) {
	if row >= 0 && row < b.size && col >= 0 && col < b.size {
		b.cells[row][col] = cell
	}
}

// Get returns the cell at (row, col), or Dead outside the board
func (b *Board) Get(row, col int) Cell {
	if row < 0 || row >= b.size || col < 0 || col >= b.size {
		return Dead
	}
	return b.cells[row][col]
}

// CountNeighbors counts living neighbors, wrapping around every edge.
// On a 1x1 board the single cell is its own neighbor eight times.
func (b *Board) CountNeighbors(row, col int) (count int) {
	for _, n := range Neighbors {
		r := WrapCoordinate(row, n.Row, b.size)
		c := WrapCoordinate(col, n.Col, b.size)
		if b.cells[r][c] == Alive {
			count++
		}
	}
	return
}

// nextCell applies the rules to (row, col) of b
func (b *Board) nextCell(row, col int) Cell {
	if rules.ApplyConwayRules(b.CountNeighbors(row, col), b.cells[row][col] == Alive) {
		return Alive
	}
	return Dead
}

func (b *Board) blank(pool *BoardPool) *Board {
	if pool != nil {
		if next, err := pool.Get(b.size); err == nil {
			return next
		}
	}
	return newBoard(b.size)
}

// NextGeneration calculates the next generation into a fresh board, leaving b untouched
func (b *Board) NextGeneration(pool *BoardPool) *Board {
	next := b.blank(pool)
	for row := range b.size {
		for col := range b.size {
			next.cells[row][col] = b.nextCell(row, col)
		}
	}
	return next
}

// NextGenerationParallel calculates the next generation with one worker per band of rows.
// Workers only read b and only write their own rows of the result.
func (b *Board) NextGenerationParallel(pool *BoardPool) *Board {
	next := b.blank(pool)

	err := forEachRowBand(b.size, runtime.NumCPU(), func(startRow, endRow int) error {
		for row := startRow; row < endRow; row++ {
			for col := range b.size {
				next.cells[row][col] = b.nextCell(row, col)
			}
		}
		return nil
	})
	if err != nil {
		log.Printf("[NextGenerationParallel] error in parallel processing: %v", err)
	}

	return next
}

// forEachRowBand splits rows into at most numWorkers contiguous bands and runs fn on
// each band concurrently, returning the first error once every band has finished
func forEachRowBand(rows, numWorkers int, fn func(startRow, endRow int) error) error {
	var (
		eg            errgroup.Group
		workers       = max(1, min(numWorkers, rows))
		rowsPerWorker = (rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			return fn(startRow, endRow)
		})
	}

	return eg.Wait()
}

// IsAllDead reports whether no cell on the board is alive
func (b *Board) IsAllDead() bool {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Alive {
				return false
			}
		}
	}
	return true
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, row := range b.cells {
		for _, cell := range row {
			if cell == Alive {
				count++
			}
		}
	}
	return
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	c := newBoard(b.size)
	for row := range b.cells {
		copy(c.cells[row], b.cells[row])
	}
	return c
}

// Equal reports whether both boards have the same size and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col] != other.cells[row][col] {
				return false
			}
		}
	}
	return true
}
