// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import (
	"fmt"

	"github.com/ajroetker/go-multivec/mvec"
)

// vNrm2 is the single-vector squared-norm functor: state is one scalar
// accumulating |x[i]|^2.
type vNrm2[T mvec.Scalar, I mvec.Index] struct {
	r *T
	x mvec.Vector[T]
}

func (f *vNrm2[T, I]) Init() T { return mvec.Zero[T]() }

func (f *vNrm2[T, I]) Accumulate(start, end I, s T) T {
	if f.x.Contiguous() {
		return s + sumSqRange(f.x.Slice(int(start), int(end)))
	}
	for i := start; i < end; i++ {
		s += mvec.SquaredNorm(f.x.At(int(i)))
	}
	return s
}

func (f *vNrm2[T, I]) Join(dst, src T) T { return mvec.Add(dst, src) }

func (f *vNrm2[T, I]) Final(s T) { *f.r = s }

// mvNrm2 is the runtime-column-loop squared-norm functor, used when the
// column count exceeds maxUnroll.
type mvNrm2[T mvec.Scalar, I mvec.Index] struct {
	r []T
	x mvec.MultiVector[T]
}

func (f *mvNrm2[T, I]) Init() []T { return make([]T, f.x.Cols()) }

func (f *mvNrm2[T, I]) Accumulate(start, end I, s []T) []T {
	cols := len(s)
	for i := start; i < end; i++ {
		for k := 0; k < cols; k++ {
			s[k] += mvec.SquaredNorm(f.x.At(int(i), k))
		}
	}
	return s
}

func (f *mvNrm2[T, I]) Join(dst, src []T) []T {
	for k := range dst {
		dst[k] = mvec.Add(dst[k], src[k])
	}
	return dst
}

func (f *mvNrm2[T, I]) Final(s []T) { copy(f.r, s) }

// Nrm2Squared computes the squared 2-norm of each column of X into r:
// r[k] = sum over i of |X[i,k]|^2, equal to the real part of the column's
// dot with itself. For complex element types the imaginary parts of r are
// zero.
//
// X must have at least one column and r exactly one slot per column;
// violations panic. r must not alias X. Blocks until all partitions
// complete.
func Nrm2Squared[T mvec.Scalar](ctx *mvec.Context, r []T, X mvec.MultiVector[T]) {
	if X.Cols() <= 0 {
		panic("blas1: nrm2 requires at least one column")
	}
	if len(r) != X.Cols() {
		panic(fmt.Sprintf("blas1: nrm2 result has %d slots for %d columns", len(r), X.Cols()))
	}
	if mvec.UseNarrowIndex(X.Rows(), X.Cols()) {
		nrm2Dispatch[T, int32](ctx, r, X)
	} else {
		nrm2Dispatch[T, int64](ctx, r, X)
	}
}

func nrm2Dispatch[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, r []T, X mvec.MultiVector[T]) {
	rows := int64(X.Rows())
	if X.Cols() > maxUnroll {
		mvec.ParallelReduce[I](ctx, rows, &mvNrm2[T, I]{r: r, x: X})
		return
	}
	nrm2Unrolled[T, I](ctx, rows, r, X)
}
