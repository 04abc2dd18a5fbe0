package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

func testConfig(size, maxGenerations int) utils.Config {
	cfg := utils.DefaultConfig()
	cfg.Size = size
	cfg.MaxGenerations = maxGenerations
	cfg.FrameRate = 0
	cfg.ClearScreen = false
	return cfg
}

func testBoard(t *testing.T, size int) *model.Board {
	t.Helper()
	b, err := model.NewBoard(size, model.Dead)
	if err != nil {
		t.Fatalf("new board: %v", err)
	}
	return b
}

func TestPlayIsolatedCellEndsGame(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(t, 5)
	b.Set(2, 2, model.Alive)

	generations := newGame(testConfig(5, 100), b, &out).play(context.Background())
	if generations != 1 {
		t.Fatalf("expected 1 generation, got %d", generations)
	}
	if !strings.HasSuffix(out.String(), gameOverMessage+"\n") {
		t.Fatalf("expected game over message, got %q", out.String())
	}
}

func TestPlayStillLifeReachesCap(t *testing.T) {
	for _, parallel := range []bool{false, true} {
		var out bytes.Buffer
		cfg := testConfig(6, 3)
		cfg.UseParallel = parallel

		b := testBoard(t, 6)
		b.AddBlock(2, 2)
		frame := model.Frame(b)

		generations := newGame(cfg, b, &out).play(context.Background())
		if generations != 3 {
			t.Fatalf("parallel=%v: expected 3 generations, got %d", parallel, generations)
		}
		if got := strings.Count(out.String(), frame); got != 4 {
			t.Fatalf("parallel=%v: expected 4 identical frames, got %d", parallel, got)
		}
		if !strings.HasSuffix(out.String(), "3 generations\n") {
			t.Fatalf("parallel=%v: expected generation report, got %q", parallel, out.String())
		}
	}
}

func TestPlayZeroCapRendersOnce(t *testing.T) {
	var out bytes.Buffer
	b := testBoard(t, 4)
	b.AddBlinker(1, 1)

	if generations := newGame(testConfig(4, 0), b, &out).play(context.Background()); generations != 0 {
		t.Fatalf("expected 0 generations, got %d", generations)
	}
	if !strings.HasSuffix(out.String(), "0 generations\n") {
		t.Fatalf("expected generation report, got %q", out.String())
	}
}

func TestPlayStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	cfg := testConfig(6, 100)
	cfg.FrameRate = time.Hour

	b := testBoard(t, 6)
	b.AddBlock(0, 0)

	if generations := newGame(cfg, b, &out).play(ctx); generations != 1 {
		t.Fatalf("expected to stop after 1 generation, got %d", generations)
	}
	if !strings.HasSuffix(out.String(), "Interrupted after 1 generations\n") {
		t.Fatalf("expected interruption report, got %q", out.String())
	}
}

func TestRunWithoutLiveCells(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(5, 100)
	cfg.InitialCells = 0

	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Repeat(" _ ", 5) + "\n"
	if got := strings.Count(out.String(), want); got != 5 {
		t.Fatalf("expected a single all-dead frame, got %q", out.String())
	}
	if !strings.HasSuffix(out.String(), gameOverMessage+"\n") {
		t.Fatalf("expected game over message, got %q", out.String())
	}
}

func TestRunSeededBoard(t *testing.T) {
	var out bytes.Buffer
	cfg := testConfig(10, 5)
	cfg.InitialCells = 30

	if err := run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	last := out.String()[strings.LastIndex(strings.TrimSuffix(out.String(), "\n"), "\n")+1:]
	if last != gameOverMessage+"\n" && last != "5 generations\n" {
		t.Fatalf("expected a final report, got %q", last)
	}
}

func TestRunRejectsInvalidSize(t *testing.T) {
	cfg := testConfig(0, 1)
	if err := run(context.Background(), cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for zero size")
	}
}
