// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

// unrollgen generates the fixed-trip-count reduction functors for
// mvec/blas1 (z_unroll.go): one dot and one squared-norm functor per column
// count in 2..max, with [N]T states and constant loop bounds the compiler
// can fully unroll, plus the dispatch switches that select them. Column
// count 1 is not generated; the switches route it to the single-vector
// functors over column views.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"
)

var (
	output = flag.String("output", "z_unroll.go", "output file")
	max    = flag.Int("max", 16, "largest generated column count")
)

const header = `// Code generated by unrollgen. DO NOT EDIT.

package blas1

import "github.com/ajroetker/go-multivec/mvec"

// dotUnrolled launches the fixed-column-count dot reduction matching
// cols(X) in 1..{{.Max}}. Column count 1 degenerates to the single-vector
// functor over column views.
func dotUnrolled[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, rows int64, r []T, X, Y mvec.MultiVector[T]) {
	switch X.Cols() {
	case 1:
		mvec.ParallelReduce[I](ctx, rows, &vDot[T, I]{r: &r[0], x: X.Col(0), y: Y.Col(0)})
{{- range .Counts}}
	case {{.}}:
		mvec.ParallelReduce[I](ctx, rows, &mvDotUnroll{{.}}[T, I]{r: r, x: X, y: Y})
{{- end}}
	}
}

// nrm2Unrolled launches the fixed-column-count squared-norm reduction
// matching cols(X) in 1..{{.Max}}.
func nrm2Unrolled[T mvec.Scalar, I mvec.Index](ctx *mvec.Context, rows int64, r []T, X mvec.MultiVector[T]) {
	switch X.Cols() {
	case 1:
		mvec.ParallelReduce[I](ctx, rows, &vNrm2[T, I]{r: &r[0], x: X.Col(0)})
{{- range .Counts}}
	case {{.}}:
		mvec.ParallelReduce[I](ctx, rows, &mvNrm2Unroll{{.}}[T, I]{r: r, x: X})
{{- end}}
	}
}
`

const functors = `
// mvDotUnroll{{.N}} accumulates {{.N}} dot-product columns with a constant
// trip count.
type mvDotUnroll{{.N}}[T mvec.Scalar, I mvec.Index] struct {
	r []T
	x mvec.MultiVector[T]
	y mvec.MultiVector[T]
}

func (f *mvDotUnroll{{.N}}[T, I]) Init() [{{.N}}]T {
	var s [{{.N}}]T
	return s
}

func (f *mvDotUnroll{{.N}}[T, I]) Accumulate(start, end I, s [{{.N}}]T) [{{.N}}]T {
	for i := start; i < end; i++ {
		for k := 0; k < {{.N}}; k++ {
			s[k] += mvec.InnerProduct(f.x.At(int(i), k), f.y.At(int(i), k))
		}
	}
	return s
}

func (f *mvDotUnroll{{.N}}[T, I]) Join(dst, src [{{.N}}]T) [{{.N}}]T {
	for k := 0; k < {{.N}}; k++ {
		dst[k] = mvec.Add(dst[k], src[k])
	}
	return dst
}

func (f *mvDotUnroll{{.N}}[T, I]) Final(s [{{.N}}]T) {
	for k := 0; k < {{.N}}; k++ {
		f.r[k] = s[k]
	}
}

// mvNrm2Unroll{{.N}} accumulates {{.N}} squared-norm columns with a
// constant trip count.
type mvNrm2Unroll{{.N}}[T mvec.Scalar, I mvec.Index] struct {
	r []T
	x mvec.MultiVector[T]
}

func (f *mvNrm2Unroll{{.N}}[T, I]) Init() [{{.N}}]T {
	var s [{{.N}}]T
	return s
}

func (f *mvNrm2Unroll{{.N}}[T, I]) Accumulate(start, end I, s [{{.N}}]T) [{{.N}}]T {
	for i := start; i < end; i++ {
		for k := 0; k < {{.N}}; k++ {
			s[k] += mvec.SquaredNorm(f.x.At(int(i), k))
		}
	}
	return s
}

func (f *mvNrm2Unroll{{.N}}[T, I]) Join(dst, src [{{.N}}]T) [{{.N}}]T {
	for k := 0; k < {{.N}}; k++ {
		dst[k] = mvec.Add(dst[k], src[k])
	}
	return dst
}

func (f *mvNrm2Unroll{{.N}}[T, I]) Final(s [{{.N}}]T) {
	for k := 0; k < {{.N}}; k++ {
		f.r[k] = s[k]
	}
}
`

func main() {
	flag.Parse()
	if *max < 2 {
		log.Fatalf("unrollgen: -max must be at least 2, got %d", *max)
	}

	counts := make([]int, 0, *max-1)
	for n := 2; n <= *max; n++ {
		counts = append(counts, n)
	}

	var buf bytes.Buffer
	headerTmpl := template.Must(template.New("header").Parse(header))
	if err := headerTmpl.Execute(&buf, struct {
		Max    int
		Counts []int
	}{Max: *max, Counts: counts}); err != nil {
		log.Fatalf("unrollgen: %v", err)
	}

	functorTmpl := template.Must(template.New("functors").Parse(functors))
	for _, n := range counts {
		if err := functorTmpl.Execute(&buf, struct{ N int }{N: n}); err != nil {
			log.Fatalf("unrollgen: %v", err)
		}
	}

	src, err := imports.Process(*output, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("unrollgen: formatting %s: %v", *output, err)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatalf("unrollgen: %v", err)
	}
	fmt.Printf("unrollgen: wrote %s (column counts 2..%d)\n", *output, *max)
}
