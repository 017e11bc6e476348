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

func TestBaseCounts(t *testing.T) {
	tests := []struct {
		seq  string
		want [4]int
	}{
		{"", [4]int{0, 0, 0, 0}},
		{"AAAA", [4]int{4, 0, 0, 0}},
		{"ACGT", [4]int{1, 1, 1, 1}},
		{"GGCC", [4]int{0, 2, 2, 0}},
		{"ACTGGAAAATTTTAAGG", [4]int{7, 1, 4, 5}},
	}
	for _, test := range tests {
		packed, err := nucpack.Pack([]byte(test.seq))
		require.NoError(t, err)
		counts, err := nucpack.BaseCounts(packed, len(test.seq))
		require.NoError(t, err)
		expect.EQ(t, counts, test.want)
	}
}

func TestBaseCountsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	alphabet := []byte("ACGT")
	for iter := 0; iter < 2000; iter++ {
		n := rng.Intn(nucpack.MaxSeqLen + 1)
		seq := make([]byte, n)
		var want [4]int
		for i := range seq {
			code := rng.Intn(4)
			seq[i] = alphabet[code]
			want[code]++
		}
		packed, err := nucpack.Pack(seq)
		require.NoError(t, err)
		counts, err := nucpack.BaseCounts(packed, n)
		require.NoError(t, err)
		if counts != want {
			t.Fatalf("BaseCounts(%q) = %v, want %v", seq, counts, want)
		}
	}
}

func TestBaseCountsIgnoresHighBits(t *testing.T) {
	// Unused high pairs are zero by Pack's invariant, but BaseCounts is
	// documented over the first length positions only, so garbage above
	// them must not leak into the counts.
	counts, err := nucpack.BaseCounts(^uint64(0), 2)
	require.NoError(t, err)
	expect.EQ(t, counts, [4]int{0, 0, 0, 2})
}

func TestGCContent(t *testing.T) {
	tests := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"AATT", 0},
		{"GGCC", 1},
		{"ACGT", 0.5},
		{"ACGG", 0.75},
	}
	for _, test := range tests {
		packed, err := nucpack.Pack([]byte(test.seq))
		require.NoError(t, err)
		frac, err := nucpack.GCContent(packed, len(test.seq))
		require.NoError(t, err)
		expect.EQ(t, frac, test.want)
	}
}

func TestCountLengthBound(t *testing.T) {
	_, err := nucpack.BaseCounts(0, 33)
	require.Equal(t, nucpack.InvalidLengthError{Length: 33}, err)
	_, err = nucpack.GCContent(0, -1)
	require.Equal(t, nucpack.InvalidLengthError{Length: -1}, err)
}
