// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bitvec implements the word-backed bit vector used for truth tables
// too wide to fit in a single uint64.
package bitvec

import (
	"math/bits"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/truthtable/internal/invariants"
)

// Words is a bit vector built on a []uint64. Bit i lives in word i/64 at
// position i%64, so the vector's least significant bit is the least
// significant bit of word 0.
type Words []uint64

// Make returns a zeroed vector able to hold nBits bits.
func Make(nBits uint64) Words {
	return make(Words, (nBits+63)>>6)
}

// Len returns the number of bits the vector holds.
func (w Words) Len() uint64 {
	return uint64(len(w)) << 6
}

// Get returns true if the bit at position i is set.
func (w Words) Get(i uint64) bool {
	invariants.CheckBounds(i>>6, uint64(len(w)))
	return w[i>>6 /* i/64 */]&(1<<(i%64)) != 0
}

// Set sets the bit at position i.
func (w Words) Set(i uint64) {
	invariants.CheckBounds(i>>6, uint64(len(w)))
	w[i>>6] |= 1 << (i % 64)
}

// Clone returns a copy of w that shares no memory with it.
func (w Words) Clone() Words {
	return slices.Clone(w)
}

// OnesCount returns the number of set bits.
func (w Words) OnesCount() uint64 {
	var n int
	for _, word := range w {
		n += bits.OnesCount64(word)
	}
	return uint64(n)
}

// Equal returns true if a and b have the same length and contents.
func Equal(a, b Words) bool {
	return slices.Equal(a, b)
}

// And stores a&b in dst. All three vectors must have the same length.
func And(dst, a, b Words) {
	checkLens(dst, a, b)
	for i := range dst {
		dst[i] = a[i] & b[i]
	}
}

// Or stores a|b in dst. All three vectors must have the same length.
func Or(dst, a, b Words) {
	checkLens(dst, a, b)
	for i := range dst {
		dst[i] = a[i] | b[i]
	}
}

// Xor stores a^b in dst. All three vectors must have the same length.
func Xor(dst, a, b Words) {
	checkLens(dst, a, b)
	for i := range dst {
		dst[i] = a[i] ^ b[i]
	}
}

// Not stores the complement of a in dst.
func Not(dst, a Words) {
	checkLens(dst, a, a)
	for i := range dst {
		dst[i] = ^a[i]
	}
}

// Map stores fn(src[i]) in dst[i] for every word. It is how operations that
// act within a word (on variables below the word boundary) are applied to a
// whole vector.
func Map(dst, src Words, fn func(uint64) uint64) {
	checkLens(dst, src, src)
	for i := range dst {
		dst[i] = fn(src[i])
	}
}

// Broadcast treats src as consecutive pairs of blocks, each block stride
// words long, and copies one block of every pair over both halves of the
// corresponding pair in dst. With upper set the second (higher-addressed)
// block of each pair is kept, otherwise the first. dst and src may be the
// same vector.
//
//	src:           | A0 | A1 | B0 | B1 |   (stride=1)
//	upper=false:   | A0 | A0 | B0 | B0 |
//	upper=true:    | A1 | A1 | B1 | B1 |
func Broadcast(dst, src Words, stride int, upper bool) {
	checkLens(dst, src, src)
	for lo := 0; lo < len(src); lo += 2 * stride {
		mid, hi := lo+stride, lo+2*stride
		if upper {
			copy(dst[mid:hi], src[mid:hi])
			copy(dst[lo:mid], dst[mid:hi])
		} else {
			copy(dst[lo:mid], src[lo:mid])
			copy(dst[mid:hi], dst[lo:mid])
		}
	}
}

// FillBlocks sets dst to alternating blocks of stride words, starting with a
// block of zero words followed by a block of all-ones words.
func FillBlocks(dst Words, stride int) {
	for i := range dst {
		if (i/stride)%2 == 1 {
			dst[i] = ^uint64(0)
		} else {
			dst[i] = 0
		}
	}
}

// Fill sets every word of dst to pattern.
func Fill(dst Words, pattern uint64) {
	for i := range dst {
		dst[i] = pattern
	}
}

func checkLens(dst, a, b Words) {
	if len(dst) != len(a) || len(dst) != len(b) {
		panic(errors.AssertionFailedf("mismatched vector lengths %d, %d, %d", len(dst), len(a), len(b)))
	}
}
