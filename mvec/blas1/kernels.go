// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import "github.com/ajroetker/go-multivec/mvec"

// dotRange computes sum over i of conj(a[i])*b[i] for contiguous,
// equal-length ranges. For real element types on a vector-capable dispatch
// level the loop runs independent accumulators so the compiler can keep the
// partial sums in lanes; complex types and scalar mode use the trait loop.
func dotRange[T mvec.Scalar](a, b []T) T {
	if mvec.IsComplex[T]() || mvec.CurrentLevel() == mvec.LevelScalar {
		var s T
		for i := range a {
			s += mvec.InnerProduct(a[i], b[i])
		}
		return s
	}
	if mvec.CurrentWidth() >= 64 {
		return dotLanes8(a, b)
	}
	return dotLanes4(a, b)
}

func dotLanes4[T mvec.Scalar](a, b []T) T {
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	s := (s0 + s2) + (s1 + s3)
	for ; i < len(a); i++ {
		s += a[i] * b[i]
	}
	return s
}

func dotLanes8[T mvec.Scalar](a, b []T) T {
	var s0, s1, s2, s3, s4, s5, s6, s7 T
	i := 0
	for ; i+8 <= len(a); i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}
	s := ((s0 + s4) + (s2 + s6)) + ((s1 + s5) + (s3 + s7))
	for ; i < len(a); i++ {
		s += a[i] * b[i]
	}
	return s
}

// sumSqRange computes sum over i of |a[i]|^2 for a contiguous range.
func sumSqRange[T mvec.Scalar](a []T) T {
	if mvec.IsComplex[T]() || mvec.CurrentLevel() == mvec.LevelScalar {
		var s T
		for i := range a {
			s += mvec.SquaredNorm(a[i])
		}
		return s
	}
	var s0, s1, s2, s3 T
	i := 0
	for ; i+4 <= len(a); i += 4 {
		s0 += a[i] * a[i]
		s1 += a[i+1] * a[i+1]
		s2 += a[i+2] * a[i+2]
		s3 += a[i+3] * a[i+3]
	}
	s := (s0 + s2) + (s1 + s3)
	for ; i < len(a); i++ {
		s += a[i] * a[i]
	}
	return s
}

// fillRange assigns v to every element of dst.
func fillRange[T mvec.Scalar](dst []T, v T) {
	for i := range dst {
		dst[i] = v
	}
}
