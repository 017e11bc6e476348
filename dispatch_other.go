// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build (!amd64 && !arm64) || nosimd
// +build !amd64,!arm64 nosimd

package nucpack

// No block kernel is selected on other targets, or when the nosimd build
// tag forces portability; Pack stays on the scalar backend.
