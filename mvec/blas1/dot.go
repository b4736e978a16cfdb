// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

//go:generate go run ../../cmd/unrollgen -output z_unroll.go

import (
	"fmt"

	"github.com/ajroetker/go-multivec/mvec"
)

// maxUnroll is the largest column count with a generated fixed-trip-count
// specialization. Larger batches use the runtime column loop: unrolling
// stops paying off past this width because of code-size growth.
const maxUnroll = 16

// vDot is the single-vector dot functor: state is one scalar accumulating
// conj(x[i])*y[i].
type vDot[T mvec.Scalar, I mvec.Index] struct {
	r *T
	x mvec.Vector[T]
	y mvec.Vector[T]
}

func (f *vDot[T, I]) Init() T { return mvec.Zero[T]() }

func (f *vDot[T, I]) Accumulate(start, end I, s T) T {
	if f.x.Contiguous() && f.y.Contiguous() {
		return s + dotRange(f.x.Slice(int(start), int(end)), f.y.Slice(int(start), int(end)))
	}
	for i := start; i < end; i++ {
		s += mvec.InnerProduct(f.x.At(int(i)), f.y.At(int(i)))
	}
	return s
}

func (f *vDot[T, I]) Join(dst, src T) T { return mvec.Add(dst, src) }

func (f *vDot[T, I]) Final(s T) { *f.r = s }

// mvDot is the runtime-column-loop dot functor: state is one accumulator
// slot per column. Used when the column count exceeds maxUnroll.
type mvDot[T mvec.Scalar, I mvec.Index] struct {
	r []T
	x mvec.MultiVector[T]
	y mvec.MultiVector[T]
}

func (f *mvDot[T, I]) Init() []T { return make([]T, f.x.Cols()) }

func (f *mvDot[T, I]) Accumulate(start, end I, s []T) []T {
	cols := len(s)
	for i := start; i < end; i++ {
		for k := 0; k < cols; k++ {
			s[k] += mvec.InnerProduct(f.x.At(int(i), k), f.y.At(int(i), k))
		}
	}
	return s
}

func (f *mvDot[T, I]) Join(dst, src []T) []T {
	for k := range dst {
		dst[k] = mvec.Add(dst[k], src[k])
	}
	return dst
}

func (f *mvDot[T, I]) Final(s []T) { copy(f.r, s) }

// Dot computes the per-column inner product of X and Y into r:
// r[k] = sum over i of conj(X[i,k]) * Y[i,k].
//
// X and Y must have identical shape with at least one column, and r must
// have exactly one slot per column; violations panic. r must not alias the
// inputs. Blocks until all partitions complete.
func Dot[T mvec.Scalar](ctx *mvec.Context, r []T, X, Y mvec.MultiVector[T]) {
	checkDotShapes(len(r), X, Y)
	if mvec.UseNarrowIndex(X.Rows(), X.Cols()) {
		dotDispatch[T, int32](ctx, r, X, Y)
	} else {
		dotDispatch[T, int64](ctx, r, X, Y)
	}
}

// dotDispatch branches on the column count with the index type already
// chosen: runtime loop past maxUnroll, generated specializations otherwise.
func dotDispatch[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, r []T, X, Y mvec.MultiVector[T]) {
	rows := int64(X.Rows())
	if X.Cols() > maxUnroll {
		mvec.ParallelReduce[I](ctx, rows, &mvDot[T, I]{r: r, x: X, y: Y})
		return
	}
	dotUnrolled[T, I](ctx, rows, r, X, Y)
}

// DotCols computes the inner product of column xCol of X with column yCol
// of Y into *r. It routes through the single-vector functor over column
// views and applies its own narrow/wide index check with the column count
// forced to one, independent of the batched path's check.
func DotCols[T mvec.Scalar](ctx *mvec.Context, r *T, X mvec.MultiVector[T], xCol int, Y mvec.MultiVector[T], yCol int) {
	if X.Rows() != Y.Rows() {
		panic(fmt.Sprintf("blas1: dot row mismatch: X has %d rows, Y has %d", X.Rows(), Y.Rows()))
	}
	if xCol < 0 || xCol >= X.Cols() {
		panic(fmt.Sprintf("blas1: X column %d out of range [0,%d)", xCol, X.Cols()))
	}
	if yCol < 0 || yCol >= Y.Cols() {
		panic(fmt.Sprintf("blas1: Y column %d out of range [0,%d)", yCol, Y.Cols()))
	}

	x, y := X.Col(xCol), Y.Col(yCol)
	rows := int64(X.Rows())
	if mvec.UseNarrowIndex(X.Rows(), 1) {
		mvec.ParallelReduce[int32](ctx, rows, &vDot[T, int32]{r: r, x: x, y: y})
	} else {
		mvec.ParallelReduce[int64](ctx, rows, &vDot[T, int64]{r: r, x: x, y: y})
	}
}

func checkDotShapes[T mvec.Scalar](rlen int, X, Y mvec.MultiVector[T]) {
	if X.Rows() != Y.Rows() || X.Cols() != Y.Cols() {
		panic(fmt.Sprintf("blas1: dot shape mismatch: X is %dx%d, Y is %dx%d",
			X.Rows(), X.Cols(), Y.Rows(), Y.Cols()))
	}
	if X.Cols() <= 0 {
		panic("blas1: dot requires at least one column")
	}
	if rlen != X.Cols() {
		panic(fmt.Sprintf("blas1: dot result has %d slots for %d columns", rlen, X.Cols()))
	}
}
