// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import "github.com/ajroetker/go-multivec/mvec"

// Fill assigns v to every element of X in place, as a parallel map over
// disjoint row ranges. A zero-row or zero-column X is a no-op. Blocks until
// all partitions complete.
func Fill[T mvec.Scalar](ctx *mvec.Context, X mvec.MultiVector[T], v T) {
	if mvec.UseNarrowIndex(X.Rows(), X.Cols()) {
		fillRows[T, int32](ctx, X, v)
	} else {
		fillRows[T, int64](ctx, X, v)
	}
}

func fillRows[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, X mvec.MultiVector[T], v T) {
	cols := X.Cols()
	rowContig := X.RowContiguous()
	mvec.ParallelFor[I](ctx, int64(X.Rows()), func(start, end I) {
		if rowContig {
			for i := int(start); i < int(end); i++ {
				fillRange(X.RowSlice(i), v)
			}
			return
		}
		for i := int(start); i < int(end); i++ {
			for k := 0; k < cols; k++ {
				X.Set(i, k, v)
			}
		}
	})
}

// FillVector assigns v to every element of x in place.
func FillVector[T mvec.Scalar](ctx *mvec.Context, x mvec.Vector[T], v T) {
	if mvec.UseNarrowIndex(x.Len(), 1) {
		fillVec[T, int32](ctx, x, v)
	} else {
		fillVec[T, int64](ctx, x, v)
	}
}

func fillVec[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, x mvec.Vector[T], v T) {
	mvec.ParallelFor[I](ctx, int64(x.Len()), func(start, end I) {
		if x.Contiguous() {
			fillRange(x.Slice(int(start), int(end)), v)
			return
		}
		for i := start; i < end; i++ {
			x.Set(int(i), v)
		}
	})
}
