// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

// Unpack decodes length bases from a packed word into a freshly allocated
// uppercase ASCII sequence, position 0 first.  It returns InvalidLengthError
// if length is negative or exceeds MaxSeqLen; once the bound holds it cannot
// fail, since every 2-bit value decodes to a base.
func Unpack(packed uint64, length int) ([]byte, error) {
	if length < 0 || length > MaxSeqLen {
		return nil, InvalidLengthError{Length: length}
	}
	seq := make([]byte, length)
	for pos := range seq {
		seq[pos] = baseCharTable[(packed>>uint(2*pos))&3]
	}
	return seq, nil
}
