// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bitvec

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestWordsGetSet(t *testing.T) {
	w := Make(256)
	require.Len(t, w, 4)
	require.Equal(t, uint64(256), w.Len())
	for _, i := range []uint64{0, 1, 63, 64, 127, 200, 255} {
		require.False(t, w.Get(i))
		w.Set(i)
		require.True(t, w.Get(i))
	}
	require.Equal(t, uint64(7), w.OnesCount())
	require.Equal(t, uint64(1<<0|1<<1|1<<63), w[0])
	require.Equal(t, uint64(1<<0|1<<63), w[1])
	require.Equal(t, uint64(0), w[2])
}

func TestWordsClone(t *testing.T) {
	w := Make(128)
	w.Set(70)
	c := w.Clone()
	c.Set(3)
	require.True(t, Equal(w.Clone(), w))
	require.False(t, w.Get(3))
	require.True(t, c.Get(70))
	require.False(t, Equal(w, c))
	require.False(t, Equal(w, Make(192)))
}

func TestWordsLogic(t *testing.T) {
	a := Words{0b1100, ^uint64(0)}
	b := Words{0b1010, 0}
	dst := Make(128)

	And(dst, a, b)
	require.Equal(t, Words{0b1000, 0}, dst)
	Or(dst, a, b)
	require.Equal(t, Words{0b1110, ^uint64(0)}, dst)
	Xor(dst, a, b)
	require.Equal(t, Words{0b0110, ^uint64(0)}, dst)
	Not(dst, b)
	require.Equal(t, Words{^uint64(0b1010), ^uint64(0)}, dst)

	require.Panics(t, func() { And(dst, a, Make(64)) })
}

func TestBroadcast(t *testing.T) {
	src := Words{1, 2, 3, 4, 5, 6, 7, 8}
	for _, tc := range []struct {
		stride int
		upper  bool
		want   Words
	}{
		{stride: 1, upper: false, want: Words{1, 1, 3, 3, 5, 5, 7, 7}},
		{stride: 1, upper: true, want: Words{2, 2, 4, 4, 6, 6, 8, 8}},
		{stride: 2, upper: false, want: Words{1, 2, 1, 2, 5, 6, 5, 6}},
		{stride: 2, upper: true, want: Words{3, 4, 3, 4, 7, 8, 7, 8}},
		{stride: 4, upper: false, want: Words{1, 2, 3, 4, 1, 2, 3, 4}},
		{stride: 4, upper: true, want: Words{5, 6, 7, 8, 5, 6, 7, 8}},
	} {
		t.Run(fmt.Sprintf("stride=%d/upper=%t", tc.stride, tc.upper), func(t *testing.T) {
			dst := Make(src.Len())
			Broadcast(dst, src, tc.stride, tc.upper)
			require.Equal(t, tc.want, dst)

			// In place.
			inPlace := src.Clone()
			Broadcast(inPlace, inPlace, tc.stride, tc.upper)
			require.Equal(t, tc.want, inPlace)
		})
	}
}

func TestFill(t *testing.T) {
	w := Make(64 * 8)
	FillBlocks(w, 2)
	ones := ^uint64(0)
	require.Equal(t, Words{0, 0, ones, ones, 0, 0, ones, ones}, w)
	Fill(w, 0xaa)
	for _, word := range w {
		require.Equal(t, uint64(0xaa), word)
	}
	Map(w, w, func(x uint64) uint64 { return x >> 1 })
	require.Equal(t, uint64(0x55), w[7])
}

func TestWordsRandom(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	n := uint64(64 << rng.Intn(6))
	w := Make(n)
	ref := make([]bool, n)
	for i := 0; i < 100; i++ {
		j := rng.Uint64n(n)
		w.Set(j)
		ref[j] = true
	}
	var ones uint64
	for i := uint64(0); i < n; i++ {
		if got := w.Get(i); got != ref[i] {
			t.Fatalf("w.Get(%d) = %t; want %t", i, got, ref[i])
		}
		if ref[i] {
			ones++
		}
	}
	require.Equal(t, ones, w.OnesCount())
}
