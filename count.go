// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

import "math/bits"

const loBitsMask = 0x5555555555555555

// BaseCounts returns how many of each base the first length positions of a
// packed word hold, indexed by 2-bit code (A=0, C=1, G=2, T=3).  It returns
// InvalidLengthError if length is negative or exceeds MaxSeqLen.
func BaseCounts(packed uint64, length int) ([4]int, error) {
	var counts [4]int
	if length < 0 || length > MaxSeqLen {
		return counts, InvalidLengthError{Length: length}
	}
	if length < MaxSeqLen {
		packed &= uint64(1)<<uint(2*length) - 1
	}
	hi := (packed >> 1) & loBitsMask
	lo := packed & loBitsMask
	counts[1] = bits.OnesCount64(lo &^ hi)
	counts[2] = bits.OnesCount64(hi &^ lo)
	counts[3] = bits.OnesCount64(hi & lo)
	// A packs as 00, so it is indistinguishable from an unused position by
	// popcount alone; infer it from the length instead.
	counts[0] = length - counts[1] - counts[2] - counts[3]
	return counts, nil
}

// GCContent returns the fraction of the first length positions of a packed
// word holding G or C, or 0 for an empty sequence.  It returns
// InvalidLengthError if length is negative or exceeds MaxSeqLen.
func GCContent(packed uint64, length int) (float64, error) {
	counts, err := BaseCounts(packed, length)
	if err != nil {
		return 0, err
	}
	if length == 0 {
		return 0, nil
	}
	return float64(counts[1]+counts[2]) / float64(length), nil
}
