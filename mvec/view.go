// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

import "fmt"

// Vector is a strided 1-D view over a caller-owned slice. Views do not own
// or copy their data; aliasing between kernel inputs and outputs is the
// caller's responsibility.
type Vector[T Scalar] struct {
	data   []T
	n      int
	stride int
}

// VectorOf wraps data as a contiguous vector of length len(data).
func VectorOf[T Scalar](data []T) Vector[T] {
	return Vector[T]{data: data, n: len(data), stride: 1}
}

// StridedVector wraps data as a vector of n elements spaced stride apart.
func StridedVector[T Scalar](data []T, n, stride int) Vector[T] {
	if n < 0 || stride < 0 {
		panic(fmt.Sprintf("mvec: invalid vector view n=%d stride=%d", n, stride))
	}
	if n > 0 && (n-1)*stride >= len(data) {
		panic(fmt.Sprintf("mvec: vector view n=%d stride=%d exceeds backing slice of %d", n, stride, len(data)))
	}
	return Vector[T]{data: data, n: n, stride: stride}
}

// Len returns the number of elements.
func (v Vector[T]) Len() int { return v.n }

// Stride returns the element spacing in the backing slice.
func (v Vector[T]) Stride() int { return v.stride }

// Contiguous reports whether consecutive elements are adjacent in memory.
func (v Vector[T]) Contiguous() bool { return v.stride == 1 }

// At returns element i.
func (v Vector[T]) At(i int) T { return v.data[i*v.stride] }

// Set assigns element i.
func (v Vector[T]) Set(i int, x T) { v.data[i*v.stride] = x }

// Slice returns the backing slice for elements [start, end). Only valid on
// contiguous views.
func (v Vector[T]) Slice(start, end int) []T {
	if v.stride != 1 {
		panic("mvec: Slice on non-contiguous vector")
	}
	return v.data[start:end]
}

// MultiVector is a strided 2-D view: a batch of cols equal-length column
// vectors of rows elements each. Any stride pair is accepted; the preferred
// layout is row-major (rowStride == cols, colStride == 1), which keeps one
// row's columns adjacent for the per-row accumulation loops.
type MultiVector[T Scalar] struct {
	data       []T
	rows, cols int
	rowStride  int
	colStride  int
}

// NewMultiVector allocates a zeroed row-major rows x cols multivector.
func NewMultiVector[T Scalar](rows, cols int) MultiVector[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mvec: invalid shape %dx%d", rows, cols))
	}
	return MultiVector[T]{
		data:      make([]T, rows*cols),
		rows:      rows,
		cols:      cols,
		rowStride: cols,
		colStride: 1,
	}
}

// MultiVectorOf wraps data as a row-major rows x cols multivector.
func MultiVectorOf[T Scalar](data []T, rows, cols int) MultiVector[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("mvec: invalid shape %dx%d", rows, cols))
	}
	if rows*cols > len(data) {
		panic(fmt.Sprintf("mvec: shape %dx%d exceeds backing slice of %d", rows, cols, len(data)))
	}
	return MultiVector[T]{data: data, rows: rows, cols: cols, rowStride: cols, colStride: 1}
}

// StridedMultiVector wraps data with explicit strides.
func StridedMultiVector[T Scalar](data []T, rows, cols, rowStride, colStride int) MultiVector[T] {
	if rows < 0 || cols < 0 || rowStride < 0 || colStride < 0 {
		panic(fmt.Sprintf("mvec: invalid strided view %dx%d strides (%d,%d)", rows, cols, rowStride, colStride))
	}
	if rows > 0 && cols > 0 {
		last := (rows-1)*rowStride + (cols-1)*colStride
		if last >= len(data) {
			panic(fmt.Sprintf("mvec: strided view %dx%d strides (%d,%d) exceeds backing slice of %d",
				rows, cols, rowStride, colStride, len(data)))
		}
	}
	return MultiVector[T]{data: data, rows: rows, cols: cols, rowStride: rowStride, colStride: colStride}
}

// Rows returns the row count.
func (m MultiVector[T]) Rows() int { return m.rows }

// Cols returns the column count.
func (m MultiVector[T]) Cols() int { return m.cols }

// At returns element (i, j).
func (m MultiVector[T]) At(i, j int) T { return m.data[i*m.rowStride+j*m.colStride] }

// Set assigns element (i, j).
func (m MultiVector[T]) Set(i, j int, x T) { m.data[i*m.rowStride+j*m.colStride] = x }

// Col returns a 1-D view of column j, sharing the backing slice.
func (m MultiVector[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.cols {
		panic(fmt.Sprintf("mvec: column %d out of range [0,%d)", j, m.cols))
	}
	v := Vector[T]{n: m.rows, stride: m.rowStride}
	if m.rows > 0 {
		v.data = m.data[j*m.colStride:]
	}
	return v
}

// Subview returns the view of rows [i0, i1) and columns [j0, j1), sharing
// the backing slice.
func (m MultiVector[T]) Subview(i0, i1, j0, j1 int) MultiVector[T] {
	if i0 < 0 || i1 < i0 || i1 > m.rows || j0 < 0 || j1 < j0 || j1 > m.cols {
		panic(fmt.Sprintf("mvec: subview [%d:%d, %d:%d] out of %dx%d", i0, i1, j0, j1, m.rows, m.cols))
	}
	sub := MultiVector[T]{
		rows:      i1 - i0,
		cols:      j1 - j0,
		rowStride: m.rowStride,
		colStride: m.colStride,
	}
	if sub.rows > 0 && sub.cols > 0 {
		sub.data = m.data[i0*m.rowStride+j0*m.colStride:]
	}
	return sub
}

// RowContiguous reports whether one row's columns are adjacent in memory.
func (m MultiVector[T]) RowContiguous() bool { return m.colStride == 1 }

// RowSlice returns the backing slice of row i. Only valid when
// RowContiguous.
func (m MultiVector[T]) RowSlice(i int) []T {
	if m.colStride != 1 {
		panic("mvec: RowSlice on non-row-contiguous multivector")
	}
	off := i * m.rowStride
	return m.data[off : off+m.cols]
}
