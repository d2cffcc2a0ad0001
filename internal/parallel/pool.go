// Package parallel runs per-pixel work for the software rasterizer.
//
// The image is split into contiguous row bands (see [Bands]). Each band is
// evaluated by one task on a fixed-size [WorkerPool] and writes only its own
// rows of the output buffer, so tasks need no synchronization beyond the
// final join.
package parallel

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool is a fixed set of goroutines draining a shared task queue.
//
// Thread safety: WorkerPool is safe for concurrent use. Concurrent calls to
// ExecuteAll share the same workers.
type WorkerPool struct {
	// workers is the number of worker goroutines.
	workers int

	// queue feeds tasks to the workers.
	queue chan func()

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewWorkerPool creates a new worker pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &WorkerPool{
		workers: workers,
		queue:   make(chan func(), workers*4),
		done:    make(chan struct{}),
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.done:
			return
		case work := <-p.queue:
			work()
		}
	}
}

// ExecuteAll runs every task and waits for all of them to finish.
// If the pool is closed, the tasks run on the calling goroutine.
func (p *WorkerPool) ExecuteAll(work []func()) {
	_ = p.Run(context.Background(), work)
}

// Run is ExecuteAll with cancellation. Tasks that have not started when ctx
// is done are skipped; tasks already running are allowed to finish. Run
// returns ctx.Err() if any task was skipped.
func (p *WorkerPool) Run(ctx context.Context, work []func()) error {
	if len(work) == 0 {
		return nil
	}

	var (
		wg      sync.WaitGroup
		skipped atomic.Bool
	)
	wrap := func(fn func()) func() {
		return func() {
			defer wg.Done()
			if ctx.Err() != nil {
				skipped.Store(true)
				return
			}
			fn()
		}
	}

	wg.Add(len(work))
	for _, fn := range work {
		task := wrap(fn)
		if !p.running.Load() {
			task()
			continue
		}
		select {
		case p.queue <- task:
		case <-p.done:
			task()
		case <-ctx.Done():
			skipped.Store(true)
			wg.Done()
		}
	}
	wg.Wait()

	if skipped.Load() {
		return ctx.Err()
	}
	return nil
}

// Close stops the workers. It must not race with an in-flight Run.
// Close is safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()

	// Run anything a worker did not pick up so no ExecuteAll caller hangs.
	for {
		select {
		case work := <-p.queue:
			work()
		default:
			return
		}
	}
}

// Workers returns the number of workers in the pool.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
