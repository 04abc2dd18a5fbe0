package utils

import (
	"math"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Fatalf("expected first sample to seed the average, got %v", s.AveragePopulation)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("expected 10 gen/sec, got %v", s.GenerationsPerSecond)
	}

	s.Update(2, 0, 0)
	if math.Abs(s.AveragePopulation-90) > 1e-9 {
		t.Fatalf("expected moving average 90, got %v", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Fatalf("expected 2 generations, got %d", s.TotalGenerations)
	}
	if math.Abs(s.GenerationsPerSecond-10) > 1e-9 {
		t.Fatalf("expected zero duration to keep the last rate, got %v", s.GenerationsPerSecond)
	}
}
