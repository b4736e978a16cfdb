// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-multivec/mvec/workerpool"
)

// Backend identifies the execution strategy of a Context.
type Backend int

const (
	// BackendSerial runs every launch in the calling goroutine.
	BackendSerial Backend = iota

	// BackendThreads runs partitions on a persistent worker pool.
	BackendThreads

	// BackendSpawn runs partitions on per-launch goroutines.
	BackendSpawn
)

// String returns a human-readable name for the backend.
func (b Backend) String() string {
	switch b {
	case BackendSerial:
		return "serial"
	case BackendThreads:
		return "threads"
	case BackendSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// MinParallelRows is the smallest index range worth splitting across
// workers; smaller launches run as a single partition in the caller.
const MinParallelRows = 2048

// Context binds kernel launches to an execution backend, selected once at
// construction. Every launch is synchronous fork-join: it blocks until all
// partitions complete and their writes are visible to the caller.
type Context struct {
	backend Backend
	workers int
	pool    *workerpool.Pool
}

// Serial returns a context that runs everything in the calling goroutine.
func Serial() *Context {
	return &Context{backend: BackendSerial, workers: 1}
}

// Threads returns a context backed by a persistent worker pool.
// If workers <= 0, uses GOMAXPROCS. Close releases the pool.
func Threads(workers int) *Context {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Context{backend: BackendThreads, workers: workers, pool: workerpool.New(workers)}
}

// Spawn returns a context that forks one goroutine per partition on each
// launch, capped at workers in flight. If workers <= 0, uses GOMAXPROCS.
func Spawn(workers int) *Context {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Context{backend: BackendSpawn, workers: workers}
}

// Backend returns the context's execution strategy.
func (c *Context) Backend() Backend { return c.backend }

// Workers returns the partition-count ceiling for parallel launches.
func (c *Context) Workers() int { return c.workers }

// Close releases pooled workers. Serial and Spawn contexts have nothing to
// release; a closed Threads context keeps working sequentially.
func (c *Context) Close() {
	if c.pool != nil {
		c.pool.Close()
	}
}

// partitions returns how many contiguous chunks a launch over n indices
// uses on this context.
func (c *Context) partitions(n int64) int {
	if c.backend == BackendSerial || c.workers <= 1 || n < MinParallelRows {
		return 1
	}
	w := int64(c.workers)
	if w > n {
		w = n
	}
	return int(w)
}

// run invokes body(part, start, end) for each of parts contiguous chunks of
// [0, n) and blocks until all return. Each backend joins through a barrier
// before run returns, so partials written by body are visible to the
// caller's merge step without further synchronization.
func (c *Context) run(n int64, parts int, body func(part int, start, end int64)) {
	if parts <= 1 {
		body(0, 0, n)
		return
	}

	switch c.backend {
	case BackendThreads:
		c.pool.Run(parts, func(part int) {
			start, end := chunkBounds(n, parts, part)
			body(part, start, end)
		})
	case BackendSpawn:
		var g errgroup.Group
		g.SetLimit(c.workers)
		for part := range parts {
			g.Go(func() error {
				start, end := chunkBounds(n, parts, part)
				body(part, start, end)
				return nil
			})
		}
		_ = g.Wait() // bodies never error; Wait is the join barrier
	default:
		for part := range parts {
			start, end := chunkBounds(n, parts, part)
			body(part, start, end)
		}
	}
}

// chunkBounds returns the half-open index range of chunk part when [0, n)
// is cut into parts near-equal pieces.
func chunkBounds(n int64, parts, part int) (int64, int64) {
	size := (n + int64(parts) - 1) / int64(parts)
	start := int64(part) * size
	end := start + size
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	return start, end
}
