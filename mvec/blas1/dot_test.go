// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-multivec/mvec"
)

// Tolerance for float64 comparisons; reductions over parallel partitions
// reassociate, so results are numerically equivalent, not bit-identical.
const epsilon64 = 1e-9

func approxEqual64(a, b, epsilon float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

// refDotCol is the sequential reference: one column's conjugate-linear
// inner product.
func refDotCol[T mvec.Scalar](X, Y mvec.MultiVector[T], k int) T {
	var s T
	for i := 0; i < X.Rows(); i++ {
		s += mvec.InnerProduct(X.At(i, k), Y.At(i, k))
	}
	return s
}

func randomMultiVector(rng *rand.Rand, rows, cols int) mvec.MultiVector[float64] {
	m := mvec.NewMultiVector[float64](rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < cols; k++ {
			m.Set(i, k, rng.Float64()*2-1)
		}
	}
	return m
}

func TestDotExample(t *testing.T) {
	// X = [[1,2],[3,4],[5,6]], Y = [[1,0],[0,1],[1,1]]
	X := mvec.MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	Y := mvec.MultiVectorOf([]float64{1, 0, 0, 1, 1, 1}, 3, 2)

	ctx := mvec.Serial()
	r := make([]float64, 2)
	Dot(ctx, r, X, Y)

	if r[0] != 6 || r[1] != 10 {
		t.Errorf("Dot = %v, want [6 10]", r)
	}
}

func TestDotMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	ctx := mvec.Threads(4)
	defer ctx.Close()

	for _, rows := range []int{0, 1, 7, 1000, 3000} {
		for _, cols := range []int{1, 2, 3, 15, 16, 17, 40} {
			t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
				X := randomMultiVector(rng, rows, cols)
				Y := randomMultiVector(rng, rows, cols)

				r := make([]float64, cols)
				Dot(ctx, r, X, Y)

				tol := epsilon64 * math.Max(1, float64(rows))
				for k := 0; k < cols; k++ {
					want := refDotCol(X, Y, k)
					if !approxEqual64(r[k], want, tol) {
						t.Errorf("col %d: Dot = %v, want %v", k, r[k], want)
					}
				}
			})
		}
	}
}

// For every unrolled column count the generated specialization must agree
// with the runtime column loop on the same input.
func TestDotUnrolledMatchesRuntimeLoop(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	ctx := mvec.Serial()

	for cols := 1; cols <= maxUnroll; cols++ {
		rows := 257
		X := randomMultiVector(rng, rows, cols)
		Y := randomMultiVector(rng, rows, cols)

		unrolled := make([]float64, cols)
		Dot(ctx, unrolled, X, Y)

		runtimeLoop := make([]float64, cols)
		mvec.ParallelReduce[int32](ctx, int64(rows), &mvDot[float64, int32]{r: runtimeLoop, x: X, y: Y})

		for k := 0; k < cols; k++ {
			if !approxEqual64(unrolled[k], runtimeLoop[k], epsilon64*float64(rows)) {
				t.Errorf("cols=%d col=%d: unrolled %v != runtime loop %v",
					cols, k, unrolled[k], runtimeLoop[k])
			}
		}
	}
}

// The narrow and wide index paths must agree on an input small enough to
// run both.
func TestDotNarrowWideIndexAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ctx := mvec.Serial()

	for _, cols := range []int{3, 20} {
		X := randomMultiVector(rng, 500, cols)
		Y := randomMultiVector(rng, 500, cols)

		narrow := make([]float64, cols)
		dotDispatch[float64, int32](ctx, narrow, X, Y)

		wide := make([]float64, cols)
		dotDispatch[float64, int64](ctx, wide, X, Y)

		for k := 0; k < cols; k++ {
			if !approxEqual64(narrow[k], wide[k], epsilon64*500) {
				t.Errorf("cols=%d col=%d: narrow %v != wide %v", cols, k, narrow[k], wide[k])
			}
		}
	}
}

func TestDotCols(t *testing.T) {
	X := mvec.MultiVectorOf([]float64{1, 2, 3, 4, 5, 6}, 3, 2)
	Y := mvec.MultiVectorOf([]float64{1, 0, 0, 1, 1, 1}, 3, 2)

	ctx := mvec.Serial()

	var r float64
	DotCols(ctx, &r, X, 0, Y, 1)
	// col0 of X is [1,3,5], col1 of Y is [0,1,1]: 0 + 3 + 5 = 8
	if r != 8 {
		t.Errorf("DotCols(X,0,Y,1) = %v, want 8", r)
	}

	DotCols(ctx, &r, X, 1, Y, 0)
	// col1 of X is [2,4,6], col0 of Y is [1,0,1]: 2 + 0 + 6 = 8
	if r != 8 {
		t.Errorf("DotCols(X,1,Y,0) = %v, want 8", r)
	}
}

func TestDotColsMatchesBatched(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	ctx := mvec.Threads(2)
	defer ctx.Close()

	X := randomMultiVector(rng, 4000, 3)
	Y := randomMultiVector(rng, 4000, 3)

	batched := make([]float64, 3)
	Dot(ctx, batched, X, Y)

	for k := 0; k < 3; k++ {
		var single float64
		DotCols(ctx, &single, X, k, Y, k)
		if !approxEqual64(single, batched[k], epsilon64*4000) {
			t.Errorf("col %d: DotCols %v != batched %v", k, single, batched[k])
		}
	}
}

func TestDotComplexConjugateLinear(t *testing.T) {
	// x = [i], y = [1]: conj(i)*1 = -i
	X := mvec.MultiVectorOf([]complex128{1i}, 1, 1)
	Y := mvec.MultiVectorOf([]complex128{1}, 1, 1)

	ctx := mvec.Serial()
	r := make([]complex128, 1)
	Dot(ctx, r, X, Y)

	if r[0] != -1i {
		t.Errorf("Dot([i],[1]) = %v, want -i", r[0])
	}

	// nonzero imaginary parts across a few rows
	X = mvec.MultiVectorOf([]complex128{complex(1, 2), complex(3, -1)}, 2, 1)
	Y = mvec.MultiVectorOf([]complex128{complex(-2, 1), complex(0, 4)}, 2, 1)
	Dot(ctx, r, X, Y)

	want := mvec.InnerProduct(complex(1, 2), complex(-2, 1)) +
		mvec.InnerProduct(complex(3, -1), complex(0, 4))
	if r[0] != want {
		t.Errorf("complex Dot = %v, want %v", r[0], want)
	}
}

func TestDotZeroRowsYieldsIdentity(t *testing.T) {
	X := mvec.NewMultiVector[float64](0, 5)
	Y := mvec.NewMultiVector[float64](0, 5)

	ctx := mvec.Serial()
	r := []float64{1, 2, 3, 4, 5} // sentinels: must be overwritten with zeros
	Dot(ctx, r, X, Y)

	for k, v := range r {
		if v != 0 {
			t.Errorf("r[%d] = %v after zero-row dot, want 0", k, v)
		}
	}
}

func TestDotStridedViews(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	big := randomMultiVector(rng, 40, 10)
	sub := big.Subview(5, 35, 2, 6) // 30x4, strided in the parent

	packed := mvec.NewMultiVector[float64](30, 4)
	for i := 0; i < 30; i++ {
		for k := 0; k < 4; k++ {
			packed.Set(i, k, sub.At(i, k))
		}
	}

	ctx := mvec.Serial()
	rSub := make([]float64, 4)
	rPacked := make([]float64, 4)
	Dot(ctx, rSub, sub, sub)
	Dot(ctx, rPacked, packed, packed)

	for k := 0; k < 4; k++ {
		if !approxEqual64(rSub[k], rPacked[k], epsilon64*40) {
			t.Errorf("col %d: strided %v != packed %v", k, rSub[k], rPacked[k])
		}
	}
}

func TestDotBackendsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	X := randomMultiVector(rng, 5000, 6)
	Y := randomMultiVector(rng, 5000, 6)

	contexts := map[string]*mvec.Context{
		"serial":  mvec.Serial(),
		"threads": mvec.Threads(4),
		"spawn":   mvec.Spawn(4),
	}

	results := map[string][]float64{}
	for name, ctx := range contexts {
		r := make([]float64, 6)
		Dot(ctx, r, X, Y)
		ctx.Close()
		results[name] = r
	}

	for k := 0; k < 6; k++ {
		serial := results["serial"][k]
		for _, name := range []string{"threads", "spawn"} {
			if !approxEqual64(results[name][k], serial, epsilon64*5000) {
				t.Errorf("col %d: %s %v != serial %v", k, name, results[name][k], serial)
			}
		}
	}
}

func TestDotContractPanics(t *testing.T) {
	ctx := mvec.Serial()

	tests := []struct {
		name string
		fn   func()
	}{
		{"row mismatch", func() {
			Dot(ctx, make([]float64, 2), mvec.NewMultiVector[float64](3, 2), mvec.NewMultiVector[float64](4, 2))
		}},
		{"col mismatch", func() {
			Dot(ctx, make([]float64, 2), mvec.NewMultiVector[float64](3, 2), mvec.NewMultiVector[float64](3, 3))
		}},
		{"result length", func() {
			Dot(ctx, make([]float64, 1), mvec.NewMultiVector[float64](3, 2), mvec.NewMultiVector[float64](3, 2))
		}},
		{"zero columns", func() {
			Dot(ctx, nil, mvec.NewMultiVector[float64](3, 0), mvec.NewMultiVector[float64](3, 0))
		}},
		{"pair column out of range", func() {
			var r float64
			DotCols(ctx, &r, mvec.NewMultiVector[float64](3, 2), 2, mvec.NewMultiVector[float64](3, 2), 0)
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
