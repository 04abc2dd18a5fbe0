package model

import (
	"sync"

	"github.com/pkg/errors"
)

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles generation buffers so a run does not allocate a board per step
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() any {
				return &Board{}
			},
		},
	}
}

// Get retrieves an all-dead board of the given size from the pool
func (p *BoardPool) Get(size int) (*Board, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "[Get] board size must be positive, got %d", size)
	}

	b := p.pool.Get().(*Board)
	b.reset(size)
	return b, nil
}

// Put returns a board to the pool. The caller must not use it afterwards.
func (p *BoardPool) Put(b *Board) {
	b.Clear()
	p.pool.Put(b)
}
