// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

import "math"

// narrowIndexLimit is the exclusive upper bound for the narrow (int32)
// index path, matching the int32 range.
const narrowIndexLimit = uint64(math.MaxInt32)

// UseNarrowIndex reports whether a rows x cols launch can run with int32
// loop counters: both rows and rows*cols must stay below the int32 limit.
// A 32-bit counter is cheaper on most targets, so dispatchers prefer it
// whenever it cannot wrap.
//
// The check itself cannot overflow: both factors are bounded below 2^31
// before the product is formed, so the uint64 product fits in 62 bits.
func UseNarrowIndex(rows, cols int) bool {
	r := uint64(rows)
	c := uint64(cols)
	if r >= narrowIndexLimit {
		return false
	}
	if r == 0 || c == 0 {
		return true
	}
	if c >= narrowIndexLimit {
		return false
	}
	return r*c < narrowIndexLimit
}
