// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !nosimd
// +build amd64,!nosimd

package nucpack

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasAVX2 {
		packImpl = packBlock256
		packImplName = "avx2"
	}
}
