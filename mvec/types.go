// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

// Package mvec provides strided dense-vector views and a generic parallel
// reduction engine over pluggable execution backends.
//
// A MultiVector is a rows x cols batch of equal-length column vectors.
// Kernels (see the blas1 subpackage) iterate its row range in parallel on a
// Context, accumulating per-partition state that is merged through an
// identity/combine/finalize contract (Reducer). Loop counters are generic
// over a narrow (int32) or wide (int64) index type, selected per launch by
// UseNarrowIndex so that large problems never wrap the fast index.
//
// Basic usage:
//
//	import (
//		"github.com/ajroetker/go-multivec/mvec"
//		"github.com/ajroetker/go-multivec/mvec/blas1"
//	)
//
//	ctx := mvec.Threads(0) // persistent pool, GOMAXPROCS workers
//	defer ctx.Close()
//
//	X := mvec.NewMultiVector[float64](rows, cols)
//	r := make([]float64, cols)
//	blas1.Nrm2Squared(ctx, r, X)
package mvec

import "math/cmplx"

// Scalar is the set of element types the kernels operate on.
type Scalar interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Index is the set of loop-counter types kernels are instantiated with:
// int32 on the narrow (fast) path, int64 on the wide path.
type Index interface {
	~int32 | ~int64
}

// Zero returns the additive identity of T. It is the exact identity used
// by every reduction in this module.
func Zero[T Scalar]() T {
	var z T
	return z
}

// Add returns a + b.
func Add[T Scalar](a, b T) T {
	return a + b
}

// Conj returns the complex conjugate of a. For real types it is the
// identity.
func Conj[T Scalar](a T) T {
	switch v := any(a).(type) {
	case complex64:
		return any(complex(real(v), -imag(v))).(T)
	case complex128:
		return any(cmplx.Conj(v)).(T)
	default:
		return a
	}
}

// InnerProduct returns the conjugate-linear elementwise product:
// conj(a)*b for complex types, a*b for real types.
func InnerProduct[T Scalar](a, b T) T {
	switch v := any(a).(type) {
	case complex64:
		return any(complex(real(v), -imag(v)) * any(b).(complex64)).(T)
	case complex128:
		return any(cmplx.Conj(v) * any(b).(complex128)).(T)
	default:
		return a * b
	}
}

// SquaredNorm returns |a|^2 as a T. For complex types the imaginary part
// of the result is zero.
func SquaredNorm[T Scalar](a T) T {
	switch v := any(a).(type) {
	case complex64:
		m := real(v)*real(v) + imag(v)*imag(v)
		return any(complex(m, 0)).(T)
	case complex128:
		m := real(v)*real(v) + imag(v)*imag(v)
		return any(complex(m, 0)).(T)
	default:
		return a * a
	}
}

// IsComplex reports whether T is a complex type.
func IsComplex[T Scalar]() bool {
	var z T
	switch any(z).(type) {
	case complex64, complex128:
		return true
	}
	return false
}
