// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

import "math/bits"

// block256Lanes is the byte width of a 256-bit vector register.
const block256Lanes = 32

// packBlock256 packs seq as one 32-lane block, the shape of the AVX2 path: a
// VPSHUFB-style lookup of all lanes, a VPMOVMSKB reduction of the lookup's
// high bits into a 32-bit invalid mask, and a single accumulate.  A full
// block covers MaxSeqLen, so there is never a second iteration.  Like
// packBlock128, the kernel itself is portable; dispatch gates it on the
// vector unit.
//
// It may assume len(seq) <= MaxSeqLen.
func packBlock256(seq []byte) (uint64, error) {
	block := [block256Lanes]byte{
		'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
		'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
		'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A',
		'A', 'A', 'A', 'A', 'A', 'A', 'A', 'A'}
	nLane := copy(block[:], seq)
	var invalid uint32
	var packed uint64
	for lane := 0; lane < block256Lanes; lane++ {
		code := baseCodeTable[block[lane]]
		invalid |= uint32(code>>7) << uint(lane)
		packed |= uint64(code&3) << uint(2*lane)
	}
	if invalid != 0 {
		return 0, InvalidBaseError{Base: seq[bits.TrailingZeros32(invalid)]}
	}
	if nLane < block256Lanes {
		packed &= uint64(1)<<uint(2*nLane) - 1
	}
	return packed, nil
}
