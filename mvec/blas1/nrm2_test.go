// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-multivec/mvec"
)

func TestNrm2SquaredExample(t *testing.T) {
	// X = [[1,2],[3,4],[5,6]]: col0 1+9+25=35, col1 4+16+36=56
	X := mvec.MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 3, 2)

	ctx := mvec.Serial()
	r := make([]float64, 2)
	Nrm2Squared(ctx, r, X)

	if r[0] != 35 || r[1] != 56 {
		t.Errorf("Nrm2Squared = %v, want [35 56]", r)
	}
}

// nrm2_squared(x) must equal the real part of dot(x, x).
func TestNrm2SquaredEqualsSelfDot(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ctx := mvec.Threads(4)
	defer ctx.Close()

	for _, rows := range []int{0, 1, 13, 3000} {
		for _, cols := range []int{1, 5, 16, 23} {
			t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
				X := randomMultiVector(rng, rows, cols)

				norms := make([]float64, cols)
				Nrm2Squared(ctx, norms, X)

				dots := make([]float64, cols)
				Dot(ctx, dots, X, X)

				tol := epsilon64 * float64(rows+1)
				for k := 0; k < cols; k++ {
					if !approxEqual64(norms[k], dots[k], tol) {
						t.Errorf("col %d: nrm2 %v != dot(x,x) %v", k, norms[k], dots[k])
					}
				}
			})
		}
	}
}

func TestNrm2SquaredComplex(t *testing.T) {
	X := mvec.MultiVectorOf([]complex128{complex(3, 4), 1i, complex(-1, 1)}, 3, 1)

	ctx := mvec.Serial()
	r := make([]complex128, 1)
	Nrm2Squared(ctx, r, X)

	// 25 + 1 + 2 = 28, imaginary part exactly zero
	if real(r[0]) != 28 || imag(r[0]) != 0 {
		t.Errorf("Nrm2Squared = %v, want 28+0i", r[0])
	}
}

func TestNrm2UnrolledMatchesRuntimeLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	ctx := mvec.Serial()

	for cols := 1; cols <= maxUnroll; cols++ {
		rows := 193
		X := randomMultiVector(rng, rows, cols)

		unrolled := make([]float64, cols)
		Nrm2Squared(ctx, unrolled, X)

		runtimeLoop := make([]float64, cols)
		mvec.ParallelReduce[int32](ctx, int64(rows), &mvNrm2[float64, int32]{r: runtimeLoop, x: X})

		for k := 0; k < cols; k++ {
			if !approxEqual64(unrolled[k], runtimeLoop[k], epsilon64*float64(rows)) {
				t.Errorf("cols=%d col=%d: unrolled %v != runtime loop %v",
					cols, k, unrolled[k], runtimeLoop[k])
			}
		}
	}
}

func TestNrm2NarrowWideIndexAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	ctx := mvec.Serial()

	X := randomMultiVector(rng, 400, 20)

	narrow := make([]float64, 20)
	nrm2Dispatch[float64, int32](ctx, narrow, X)

	wide := make([]float64, 20)
	nrm2Dispatch[float64, int64](ctx, wide, X)

	for k := 0; k < 20; k++ {
		if !approxEqual64(narrow[k], wide[k], epsilon64*400) {
			t.Errorf("col %d: narrow %v != wide %v", k, narrow[k], wide[k])
		}
	}
}

func TestNrm2ZeroRowsYieldsIdentity(t *testing.T) {
	X := mvec.NewMultiVector[float64](0, 3)

	ctx := mvec.Serial()
	r := []float64{9, 9, 9}
	Nrm2Squared(ctx, r, X)

	for k, v := range r {
		if v != 0 {
			t.Errorf("r[%d] = %v after zero-row nrm2, want 0", k, v)
		}
	}
}

func TestNrm2ContractPanics(t *testing.T) {
	ctx := mvec.Serial()

	tests := []struct {
		name string
		fn   func()
	}{
		{"zero columns", func() {
			Nrm2Squared(ctx, nil, mvec.NewMultiVector[float64](3, 0))
		}},
		{"result length", func() {
			Nrm2Squared(ctx, make([]float64, 1), mvec.NewMultiVector[float64](3, 2))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}
