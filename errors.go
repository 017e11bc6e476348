// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack

import "fmt"

// InvalidBaseError is returned by Pack when the sequence contains a byte
// outside {A, a, C, c, G, g, T, t}.  Base is the raw value of the first such
// byte in scan order; every backend reports the same byte for the same
// input.
type InvalidBaseError struct {
	Base byte
}

func (e InvalidBaseError) Error() string {
	return fmt.Sprintf("nucpack: invalid base %q", e.Base)
}

// SequenceTooLongError is returned by Pack when the sequence has more than
// MaxSeqLen bases.  Length is the actual sequence length.
type SequenceTooLongError struct {
	Length int
}

func (e SequenceTooLongError) Error() string {
	return fmt.Sprintf("nucpack: sequence length %d exceeds %d bases", e.Length, MaxSeqLen)
}

// InvalidLengthError is returned by Unpack and the packed-word helpers when
// the requested length does not fit in a packed word.  Length is the
// requested length.
type InvalidLengthError struct {
	Length int
}

func (e InvalidLengthError) Error() string {
	return fmt.Sprintf("nucpack: length %d exceeds %d bases", e.Length, MaxSeqLen)
}
