// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package blas1

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/ajroetker/go-multivec/mvec"
)

func BenchmarkDot(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	ctx := mvec.Threads(0)
	defer ctx.Close()

	for _, cols := range []int{1, 4, 16, 64} {
		rows := 1 << 16
		X := randomMultiVector(rng, rows, cols)
		Y := randomMultiVector(rng, rows, cols)
		r := make([]float64, cols)

		b.Run(fmt.Sprintf("cols=%d", cols), func(b *testing.B) {
			b.SetBytes(int64(rows * cols * 16))
			for i := 0; i < b.N; i++ {
				Dot(ctx, r, X, Y)
			}
		})
	}
}

func BenchmarkNrm2Squared(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	ctx := mvec.Threads(0)
	defer ctx.Close()

	rows, cols := 1<<16, 8
	X := randomMultiVector(rng, rows, cols)
	r := make([]float64, cols)

	b.SetBytes(int64(rows * cols * 8))
	for i := 0; i < b.N; i++ {
		Nrm2Squared(ctx, r, X)
	}
}

func BenchmarkFill(b *testing.B) {
	ctx := mvec.Threads(0)
	defer ctx.Close()

	X := mvec.NewMultiVector[float64](1<<16, 8)

	b.SetBytes(int64((1 << 16) * 8 * 8))
	for i := 0; i < b.N; i++ {
		Fill(ctx, X, 1.0)
	}
}
