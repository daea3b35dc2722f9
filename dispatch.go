package sculpt

import "github.com/gogpu/sculpt/internal/parallel"

// Option configures a Dispatcher during creation.
//
// Example:
//
//	// Default: one worker per CPU
//	d := sculpt.NewDispatcher()
//
//	// Fixed worker count (e.g. for deterministic benchmarks)
//	d := sculpt.NewDispatcher(sculpt.WithWorkers(4))
type Option func(*dispatcherOptions)

// dispatcherOptions holds optional configuration for Dispatcher creation.
type dispatcherOptions struct {
	workers int
}

// WithWorkers sets the worker count. A count of 0 or less selects
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *dispatcherOptions) {
		o.workers = n
	}
}

// Dispatcher executes brush applications across spatial-partition nodes on
// a fixed worker pool. Each worker owns one ScratchBuffers instance for its
// lifetime, reused across the nodes it processes.
//
// A brush application runs to completion once dispatched: the kernel is
// fully synchronous CPU work with no cancellation point. Nodes execute in
// no particular order; because node vertex sets are disjoint, the result
// is identical to sequential execution.
//
// Close releases the worker pool. Brush calls on a closed Dispatcher are
// no-ops.
type Dispatcher struct {
	pool    *parallel.Pool
	scratch []ScratchBuffers
}

// NewDispatcher creates a dispatcher with its worker pool started.
func NewDispatcher(opts ...Option) *Dispatcher {
	var o dispatcherOptions
	for _, opt := range opts {
		opt(&o)
	}
	pool := parallel.NewPool(o.workers)
	d := &Dispatcher{
		pool:    pool,
		scratch: make([]ScratchBuffers, pool.Workers()),
	}
	Logger().Debug("sculpt: dispatcher created", "workers", pool.Workers())
	return d
}

// Workers returns the number of pool workers.
func (d *Dispatcher) Workers() int { return d.pool.Workers() }

// Close shuts down the worker pool. Close is safe to call multiple times.
func (d *Dispatcher) Close() { d.pool.Close() }

// dispatch runs fn once per node index on the pool, handing it the
// executing worker's scratch buffers, then merges the processed-node marks
// into the mesh. Marks are collected in an atomic bitmap during the
// parallel phase and transferred in the sequential merge phase that
// follows, so the parallel phase writes only disjoint vertex data.
func (d *Dispatcher) dispatch(m Mesh, nodes []Node, fn func(tls *ScratchBuffers, i int)) {
	if len(nodes) == 0 {
		return
	}
	marked := parallel.NewNodeSet(len(nodes))
	d.pool.Run(len(nodes), func(worker, i int) {
		fn(&d.scratch[worker], i)
		marked.Mark(i)
	})
	marked.ForEach(func(i int) {
		m.MarkDirty(nodes[i])
	})
}
