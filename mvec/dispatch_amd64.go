// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package mvec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		currentLevel = LevelAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = LevelAVX2
		currentWidth = 32
		currentName = "avx2"
	case cpu.X86.HasSSE2:
		currentLevel = LevelSSE2
		currentWidth = 16
		currentName = "sse2"
	default:
		setScalarMode()
	}
}
