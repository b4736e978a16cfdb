// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

// Reducer is the functor contract of ParallelReduce. I is the loop-counter
// type (int32 on the narrow path, int64 on the wide path); S is the
// per-partition accumulation state.
type Reducer[I Index, S any] interface {
	// Init returns the identity state for one partition. It must be the
	// exact additive zero of the reduction.
	Init() S

	// Accumulate folds the contributions of indices [start, end) into s
	// and returns it. Each partition gets its own state; partitions never
	// share one.
	Accumulate(start, end I, s S) S

	// Join merges src into dst and returns it. Join must be associative
	// and commutative up to floating-point rounding: merge order is
	// backend-defined, so results across worker counts are numerically
	// equivalent, not bit-identical.
	Join(dst, src S) S

	// Final receives the fully merged state, exactly once per launch.
	Final(s S)
}

// ParallelReduce runs r over the index range [0, n) on ctx. The range is
// split into contiguous partitions, one Init+Accumulate per partition;
// partials are merged with Join after the join barrier, in the caller's
// goroutine, and Final is called exactly once with the merged state.
//
// n == 0 still calls Final, with the identity state, so zero-length
// reductions write exact zeros to their result slots.
func ParallelReduce[I Index, S any](ctx *Context, n int64, r Reducer[I, S]) {
	if n <= 0 {
		r.Final(r.Init())
		return
	}

	parts := ctx.partitions(n)
	if parts == 1 {
		r.Final(r.Accumulate(0, I(n), r.Init()))
		return
	}

	partials := make([]S, parts)
	ctx.run(n, parts, func(part int, start, end int64) {
		partials[part] = r.Accumulate(I(start), I(end), r.Init())
	})

	total := partials[0]
	for part := 1; part < parts; part++ {
		total = r.Join(total, partials[part])
	}
	r.Final(total)
}

// ParallelFor runs body over the index range [0, n) on ctx as a pure map:
// no identity, no merge. body is invoked once per partition with a
// contiguous half-open range; partitions are disjoint, so bodies writing
// only to their own range need no locking.
func ParallelFor[I Index](ctx *Context, n int64, body func(start, end I)) {
	if n <= 0 {
		return
	}

	parts := ctx.partitions(n)
	if parts == 1 {
		body(0, I(n))
		return
	}

	ctx.run(n, parts, func(part int, start, end int64) {
		body(I(start), I(end))
	})
}
