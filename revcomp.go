// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

import "math/bits"

// RevComp returns the packed reverse complement of the first length
// positions of a packed word: base order is reversed and each base is
// replaced by its Watson-Crick partner (A<->T, C<->G).  It returns
// InvalidLengthError if length is negative or exceeds MaxSeqLen.
func RevComp(packed uint64, length int) (uint64, error) {
	if length < 0 || length > MaxSeqLen {
		return 0, InvalidLengthError{Length: length}
	}
	if length == 0 {
		return 0, nil
	}
	v := bits.Reverse64(packed)
	// Reverse64 also swaps the two bits inside each base; swap them back.
	v = (v&loBitsMask)<<1 | (v>>1)&loBitsMask
	v >>= uint(64 - 2*length)
	// Complementing is XOR with 0b11 in every occupied bit pair.
	return v ^ (^uint64(0) >> uint(64-2*length)), nil
}
