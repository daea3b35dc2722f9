// Package parallel provides the worker pool and concurrent node-marking
// primitives used to evaluate brush applications across independent
// spatial-partition nodes.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// workItem is one unit of pool work. It receives the index of the worker
// that ultimately executes it, which may differ from the worker it was
// queued on when the item is stolen.
type workItem func(worker int)

// Pool is a fixed-size pool of goroutines for parallel brush evaluation.
//
// Work items are distributed across per-worker queues; a worker primarily
// pulls from its own queue but can steal from others when its queue is
// empty. Each item is handed the executing worker's index, so callers can
// key per-worker scratch state off it without locks: at any moment a worker
// index is held by exactly one goroutine.
//
// Thread safety: Pool is safe for concurrent use, but Run must not be
// called from inside a pool worker.
type Pool struct {
	// workers is the number of worker goroutines.
	workers int

	// queues holds the per-worker work queues.
	queues []chan workItem

	// done signals workers to stop.
	done chan struct{}

	// wg waits for all workers to finish.
	wg sync.WaitGroup

	// running indicates whether the pool is accepting work.
	running atomic.Bool
}

// NewPool creates a pool with the specified number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
// The pool starts immediately and workers begin waiting for work.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan workItem, workers),
		done:    make(chan struct{}),
	}

	for i := range workers {
		p.queues[i] = make(chan workItem, queueSize)
	}

	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}

	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.queues[id]

	for {
		select {
		case <-p.done:
			// Drain remaining work before exiting.
			p.drainQueue(myQueue, id)
			return

		case work := <-myQueue:
			if work != nil {
				work(id)
			}

		default:
			// Try to steal work from another worker.
			if stolen := p.steal(id); stolen != nil {
				stolen(id)
			} else {
				// No work available anywhere, block on own queue.
				select {
				case <-p.done:
					p.drainQueue(myQueue, id)
					return
				case work := <-myQueue:
					if work != nil {
						work(id)
					}
				}
			}
		}
	}
}

// drainQueue executes all remaining work in a queue.
func (p *Pool) drainQueue(queue chan workItem, id int) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work(id)
			}
		default:
			return
		}
	}
}

// steal attempts to take work from another worker's queue.
// Returns nil if no work is available.
func (p *Pool) steal(myID int) workItem {
	for i := range p.workers {
		if i == myID {
			continue
		}

		select {
		case work := <-p.queues[i]:
			return work
		default:
			// Queue is empty, try next.
		}
	}
	return nil
}

// Run executes fn once for each index in [0, n) across the pool and waits
// for every call to complete. The first argument to fn is the index of the
// worker executing that item; indexes complete in no particular order.
// If the pool is closed, Run is a no-op.
func (p *Pool) Run(n int, fn func(worker, i int)) {
	if n <= 0 || !p.running.Load() {
		return
	}

	var completionWG sync.WaitGroup
	completionWG.Add(n)

	for i := 0; i < n; i++ {
		index := i
		item := func(worker int) {
			defer completionWG.Done()
			fn(worker, index)
		}

		// Submit round-robin; may block if the queue is full.
		select {
		case p.queues[i%p.workers] <- item:
		case <-p.done:
			// Pool is closing, drop the item.
			completionWG.Done()
		}
	}

	completionWG.Wait()
}

// Close gracefully shuts down the pool.
// It stops accepting new work, waits for all queued work to complete,
// and then stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		// Already closed.
		return
	}

	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning returns true if the pool is still accepting work.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
