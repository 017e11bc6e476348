// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

// MaxSeqLen is the number of bases a packed word can hold.
const MaxSeqLen = 32

// packImpl is the backend Pack delegates to.  It may assume
// len(seq) <= MaxSeqLen.  The per-arch dispatch files swap in a block kernel
// from init() when the required CPU capability is present; detection runs
// once per process.
var packImpl = packScalar

// packImplName names the selected backend; see Backend().
var packImplName = "scalar"

// Pack encodes a sequence of up to MaxSeqLen bases over {A, C, G, T} (either
// letter case) into a 2-bit-per-base word, with the base at position 0 in
// the least-significant bit pair.  It returns SequenceTooLongError if the
// sequence is too long, and InvalidBaseError carrying the first offending
// byte if any base is outside the alphabet.  No partial word is produced on
// failure.
func Pack(seq []byte) (uint64, error) {
	if len(seq) > MaxSeqLen {
		return 0, SequenceTooLongError{Length: len(seq)}
	}
	return packImpl(seq)
}

// Backend returns the name of the packing backend selected for this process:
// "avx2", "neon", or "scalar".
func Backend() string {
	return packImplName
}
