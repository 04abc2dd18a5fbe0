package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

const gameOverMessage = "GAME OVER - No Cells Alive"

type game struct {
	config   utils.Config
	board    *model.Board
	pool     *model.BoardPool
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	out      io.Writer
}

// newGame sets up a game around an already seeded board
func newGame(config utils.Config, board *model.Board, out io.Writer) *game {
	var pool *model.BoardPool
	if config.UseMemoryPool {
		pool = model.NewBoardPool()
	}

	return &game{
		config:   config,
		board:    board,
		pool:     pool,
		renderer: model.NewTerminalRenderer(out, config.ClearScreen),
		stats:    utils.NewStats(),
		out:      out,
	}
}

// run creates and randomly seeds a board, then plays it to completion
func run(ctx context.Context, config utils.Config, out io.Writer) error {
	board, err := model.NewBoard(config.Size, model.Dead)
	if err != nil {
		return err
	}
	if err = board.SeedRandom(config.InitialCells); err != nil {
		return err
	}

	newGame(config, board, out).play(ctx)
	return nil
}

// play advances the board until every cell is dead, the generation cap is hit,
// or ctx is cancelled, and returns the number of generations computed
func (g *game) play(ctx context.Context) int {
	var (
		generation    = 0
		interrupted   = false
		lastFrameTime = time.Now()
	)

	for !g.board.IsAllDead() && generation < g.config.MaxGenerations {
		g.render()

		next := g.nextBoard()
		model.BoardToPool(g.board, g.pool)
		g.board = next
		generation++

		g.stats.Update(generation, g.board.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		if err := sleep(ctx, g.config.FrameRate); err != nil {
			interrupted = true
			break
		}
	}

	g.render()
	g.report(generation, interrupted)
	model.BoardToPool(g.board, g.pool)
	return generation
}

func (g *game) nextBoard() *model.Board {
	if g.config.UseParallel {
		return g.board.NextGenerationParallel(g.pool)
	}
	return g.board.NextGeneration(g.pool)
}

func (g *game) render() {
	g.renderer.Clear()
	g.renderer.Display(g.board)
}

// report prints the final outcome and logs run statistics
func (g *game) report(generation int, interrupted bool) {
	switch {
	case interrupted:
		fmt.Fprintf(g.out, "Interrupted after %d generations\n", generation)
	case generation < g.config.MaxGenerations:
		fmt.Fprintln(g.out, gameOverMessage)
	default:
		fmt.Fprintf(g.out, "%d generations\n", generation)
	}

	log.Printf("%d generations in %.1fs | %.1f gen/sec | avg population %.1f",
		g.stats.TotalGenerations, g.stats.Runtime().Seconds(),
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

// sleep waits for d, returning early with the context error if ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
