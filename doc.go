// Copyright 2019 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nucpack packs short nucleotide sequences into 2-bit-per-base
// words, and unpacks them again.
//
// A sequence of up to 32 bases over {A, C, G, T} (either letter case) is
// encoded into a single uint64, with A=0, C=1, G=2, T=3.  The base at
// position 0 occupies the least-significant bit pair, so
//
//	Pack([]byte("ACGT")) == 0b11100100
//
// Unused high-order bit pairs are always zero.  The sequence length is not
// stored in the word; callers must supply it to Unpack and to the packed-word
// helpers (BaseCounts, GCContent, RevComp).
//
// Pack dispatches to a block kernel sized for the widest vector unit the
// running CPU reports (32 lanes on AVX2-capable x86-64, 16 lanes on
// NEON-capable arm64), falling back to a scalar loop elsewhere.  All
// backends produce bit-identical words and bit-identical errors; the
// "nosimd" build tag forces the scalar path.
package nucpack
