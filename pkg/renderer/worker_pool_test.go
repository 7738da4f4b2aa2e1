package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-weighted-raytracer/pkg/core"
)

func TestWorkerPoolRendersAllTiles(t *testing.T) {
	integ := &constantIntegrator{color: core.White()}
	tiles := NewTileGrid(10, 10, 4)
	pixelStats := newPixelStatsGrid(10, 10)

	pool := NewWorkerPool(NewTileRenderer(&pointCamera{}, integ, 10, 10, AdaptiveConfig{}), 3, len(tiles))
	pool.Start(context.Background())

	for i, tile := range tiles {
		if err := pool.SubmitTask(TileTask{Tile: tile, TargetSamples: 2, TaskID: i, PixelStats: pixelStats}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	seen := make(map[int]bool)
	totalPixels := 0
	for range tiles {
		result, err := pool.GetResult()
		if err != nil {
			t.Fatalf("result failed: %v", err)
		}
		seen[result.TaskID] = true
		totalPixels += result.Stats.TotalPixels
	}
	if err := pool.Stop(); err != nil {
		t.Fatalf("stop failed: %v", err)
	}

	if len(seen) != len(tiles) {
		t.Errorf("expected %d distinct results, got %d", len(tiles), len(seen))
	}
	if totalPixels != 100 {
		t.Errorf("expected 100 pixels rendered, got %d", totalPixels)
	}
	if integ.calls.Load() != 200 {
		t.Errorf("expected 200 samples, got %d", integ.calls.Load())
	}
}

func TestWorkerPoolCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := NewWorkerPool(NewTileRenderer(&pointCamera{}, &constantIntegrator{}, 4, 4, AdaptiveConfig{}), 2, 1)
	pool.Start(ctx)

	if _, err := pool.GetResult(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	// Stop after a failure must not panic
	if err := pool.Stop(); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled from Stop, got %v", err)
	}
}

func TestWorkerPoolDefaultsToCPUCount(t *testing.T) {
	pool := NewWorkerPool(nil, 0, 1)
	if pool.GetNumWorkers() < 1 {
		t.Errorf("expected at least one worker, got %d", pool.GetNumWorkers())
	}
}
