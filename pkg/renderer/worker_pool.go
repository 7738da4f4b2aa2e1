package renderer

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int            // Index into the tile list
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
}

// WorkerPool renders tiles in parallel. Tiles never overlap, so workers
// write to the shared pixel stats without locking. The first worker error
// cancels the others.
type WorkerPool struct {
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int

	group     *errgroup.Group
	ctx       context.Context
	closeOnce sync.Once
}

// NewWorkerPool creates a pool whose queues hold queueSize tasks and results
func NewWorkerPool(renderer *TileRenderer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:    renderer,
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start launches the workers. They stop when ctx is cancelled.
func (wp *WorkerPool) Start(ctx context.Context) {
	wp.group, wp.ctx = errgroup.WithContext(ctx)
	for i := 0; i < wp.numWorkers; i++ {
		wp.group.Go(func() error {
			return wp.run(wp.ctx)
		})
	}
}

// Stop closes the task queue and waits for the workers, returning the first error
func (wp *WorkerPool) Stop() error {
	wp.closeOnce.Do(func() { close(wp.taskQueue) })
	return wp.group.Wait()
}

// SubmitTask queues a tile task
func (wp *WorkerPool) SubmitTask(task TileTask) error {
	select {
	case wp.taskQueue <- task:
		return nil
	case <-wp.ctx.Done():
		return wp.failure()
	}
}

// GetResult waits for the next completed tile
func (wp *WorkerPool) GetResult() (TileResult, error) {
	select {
	case result := <-wp.resultQueue:
		return result, nil
	case <-wp.ctx.Done():
		return TileResult{}, wp.failure()
	}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// failure reports why the pool's context ended
func (wp *WorkerPool) failure() error {
	if err := wp.Stop(); err != nil {
		return err
	}
	return wp.ctx.Err()
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context) error {
	for {
		// Cancellation wins over a closed or non-empty queue
		if err := ctx.Err(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case task, ok := <-wp.taskQueue:
			if !ok {
				return nil
			}

			stats, err := wp.renderer.RenderTileBounds(ctx, task.Tile.Bounds, task.PixelStats, task.TargetSamples)
			if err != nil {
				return fmt.Errorf("tile %d: %w", task.Tile.ID, err)
			}

			select {
			case wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
