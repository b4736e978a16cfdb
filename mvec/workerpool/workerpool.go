// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the persistent worker pool backing the
// Threads execution context. Workers are spawned once at creation and
// reused across kernel launches, so the per-launch cost is one channel send
// per partition rather than goroutine spawns.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	pool.Run(parts, func(part int) {
//	    processPartition(part)
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool reused across many parallel launches.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is a single task of one launch.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with the given number of workers, spawned immediately.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		// Buffer enough for all workers to have pending work
		workC: make(chan workItem, numWorkers*2),
	}

	for range numWorkers {
		go p.worker()
	}

	return p
}

// worker is the main loop of each persistent worker goroutine.
func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. All pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// Run executes fn(task) for each task in [0, tasks) on the pool workers and
// blocks until all of them return. The WaitGroup barrier publishes every
// task's writes to the caller before Run returns.
//
// Falls back to in-caller sequential execution when the pool is closed or
// there is only one task; the set of fn invocations is identical either
// way.
func (p *Pool) Run(tasks int, fn func(task int)) {
	if tasks <= 0 {
		return
	}

	if tasks == 1 || p.closed.Load() {
		for task := range tasks {
			fn(task)
		}
		return
	}

	var wg sync.WaitGroup
	wg.Add(tasks)

	for task := range tasks {
		p.workC <- workItem{
			fn: func() {
				fn(task)
			},
			barrier: &wg,
		}
	}

	wg.Wait()
}
