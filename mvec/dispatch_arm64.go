// Copyright 2026 The go-multivec Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package mvec

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// NEON (ASIMD) is part of the ARMv8-A base architecture, so this is
	// effectively always true; the cpu check is kept for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16
		currentName = "neon"
	} else {
		setScalarMode()
	}
}
