// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucpack_test

import (
	"math/rand"
	"testing"

	"github.com/grailbio/nucpack"
	"github.com/grailbio/testutil/expect"
	"github.com/stretchr/testify/require"
)

func revCompSlow(seq []byte) []byte {
	comp := map[byte]byte{'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C'}
	out := make([]byte, len(seq))
	for i, b := range seq {
		out[len(seq)-1-i] = comp[b]
	}
	return out
}

func TestRevComp(t *testing.T) {
	tests := []struct {
		seq, want string
	}{
		{"", ""},
		{"A", "T"},
		{"ACGT", "ACGT"}, // palindrome
		{"AACC", "GGTT"},
		{"ACTGGAAAATTTTAAGG", "CCTTAAAATTTTCCAGT"},
	}
	for _, test := range tests {
		packed, err := nucpack.Pack([]byte(test.seq))
		require.NoError(t, err)
		rc, err := nucpack.RevComp(packed, len(test.seq))
		require.NoError(t, err)
		seq, err := nucpack.Unpack(rc, len(test.seq))
		require.NoError(t, err)
		expect.EQ(t, string(seq), test.want)
	}
}

func TestRevCompRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	alphabet := []byte("ACGT")
	for iter := 0; iter < 2000; iter++ {
		n := rng.Intn(nucpack.MaxSeqLen + 1)
		seq := make([]byte, n)
		for i := range seq {
			seq[i] = alphabet[rng.Intn(len(alphabet))]
		}
		packed, err := nucpack.Pack(seq)
		require.NoError(t, err)
		rc, err := nucpack.RevComp(packed, n)
		require.NoError(t, err)
		want, err := nucpack.Pack(revCompSlow(seq))
		require.NoError(t, err)
		if rc != want {
			t.Fatalf("RevComp(Pack(%q)) = %#x, want %#x", seq, rc, want)
		}
		// An involution: applying it twice restores the word.
		back, err := nucpack.RevComp(rc, n)
		require.NoError(t, err)
		if back != packed {
			t.Fatalf("RevComp twice on %q: got %#x, want %#x", seq, back, packed)
		}
	}
}

func TestRevCompLengthBound(t *testing.T) {
	_, err := nucpack.RevComp(0, 33)
	require.Equal(t, nucpack.InvalidLengthError{Length: 33}, err)
}
