// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build arm64 && !nosimd
// +build arm64,!nosimd

package nucpack

import "golang.org/x/sys/cpu"

func init() {
	// ASIMD is baseline on arm64, but absence (e.g. under qemu-user with a
	// minimal CPU model) must route to the scalar backend, never through the
	// block kernel's assumptions.
	if cpu.ARM64.HasASIMD {
		packImpl = packBlock128
		packImplName = "neon"
	}
}
