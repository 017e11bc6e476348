// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

import "math/bits"

// block128Lanes is the byte width of a 128-bit vector register.
const block128Lanes = 16

// packBlock128 packs seq in 16-lane blocks, the shape of the NEON path: a
// TBL lookup of all 16 lanes at once, a sign-bit narrowing into a 16-bit
// invalid mask, and a widening accumulate of the 2-bit codes.  The lane
// loops below are the portable rendition of those steps, so the kernel runs
// (and is tested) on every platform; dispatch only selects it where the
// vector unit is present.
//
// It may assume len(seq) <= MaxSeqLen.  The tail block is padded with 'A',
// whose code is 0; padded lanes are masked off before the block word is
// OR'd in, so they cannot perturb the accumulator either way.
func packBlock128(seq []byte) (uint64, error) {
	var packed uint64
	for base := 0; base < len(seq); base += block128Lanes {
		block := [block128Lanes]byte{
			'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
			'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A'}
		nLane := copy(block[:], seq[base:])
		var invalid uint16
		var word uint32
		for lane := 0; lane < block128Lanes; lane++ {
			code := baseCodeTable[block[lane]]
			invalid |= uint16(code>>7) << uint(lane)
			word |= uint32(code&3) << uint(2*lane)
		}
		if invalid != 0 {
			// Lowest set bit = first invalid lane in scan order.  Padded
			// lanes always hold a valid byte, so the index stays within seq.
			return 0, InvalidBaseError{Base: seq[base+bits.TrailingZeros16(invalid)]}
		}
		if nLane < block128Lanes {
			word &= uint32(1)<<uint(2*nLane) - 1
		}
		packed |= uint64(word) << uint(2*base)
	}
	return packed, nil
}
