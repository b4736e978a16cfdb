// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

// Package blas1 implements BLAS1-style reduction kernels over multivectors:
// per-column inner products (Dot, DotCols), per-column squared 2-norms
// (Nrm2Squared), and elementwise assignment (Fill, FillVector).
//
// Every operation is a synchronous fork-join launch on an mvec.Context and
// returns only when all partitions have completed and merged. Column counts
// of 1..16 dispatch into generated fixed-trip-count specializations (see
// z_unroll.go); larger batches use a single runtime column loop, which
// vectorizes better than unrolled code past that width. Loop counters are
// int32 when mvec.UseNarrowIndex allows it, int64 otherwise.
//
// Shape mismatches and non-positive column counts on reductions are caller
// errors and panic; there are no internal error paths.
package blas1
