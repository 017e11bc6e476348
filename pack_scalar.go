// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

// packScalar is the reference backend: a left-to-right scan with a
// per-byte table lookup, aborting on the first byte without a code.  The
// block kernels must reproduce its word and its error byte exactly.
func packScalar(seq []byte) (uint64, error) {
	var packed uint64
	for pos, b := range seq {
		code := baseCodeTable[b]
		if code == baseCodeInvalid {
			return 0, InvalidBaseError{Base: b}
		}
		packed |= uint64(code) << uint(2*pos)
	}
	return packed, nil
}
