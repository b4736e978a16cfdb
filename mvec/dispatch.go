// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

package mvec

import (
	"os"
	"strconv"
)

// Level identifies the SIMD instruction set detected at startup. It gates
// the lane-accumulator fast paths in the kernels; the generic strided paths
// are always available.
type Level int

const (
	// LevelScalar indicates no usable SIMD; plain loops only.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 with FMA (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected level for this process.
// Set by init() in dispatch_*.go files.
var currentLevel Level

// currentWidth is the vector register width in bytes for the current level.
var currentWidth int

// currentName is the human-readable name of the current level.
var currentName string

// CurrentLevel returns the SIMD level detected at startup.
func CurrentLevel() Level { return currentLevel }

// CurrentWidth returns the vector register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int { return currentWidth }

// CurrentName returns the human-readable name of the current level.
func CurrentName() string { return currentName }

// NoSimdEnv checks whether the MVEC_NO_SIMD environment variable is set.
// When set, the lane-accumulator paths are disabled regardless of CPU
// capabilities. Useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("MVEC_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // keep a 16-byte nominal width in scalar mode
	currentName = "scalar"
}
