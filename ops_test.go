// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package truthtable

import (
	"fmt"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLogicFixed(t *testing.T) {
	f := MustParse("1010")
	g := MustParse("1100")
	require.Equal(t, "1000", And(f, g).String())
	require.Equal(t, "1110", Or(f, g).String())
	require.Equal(t, "0110", Xor(f, g).String())
	require.Equal(t, "0101", Not(f).String())
	require.Equal(t, "0", Not(MustParse("1")).String())
	require.Equal(t, uint64(0b01), Not(MustParse("10")).Bits())
}

func TestLogicUsesBothOperands(t *testing.T) {
	f := MustParse("10101010")
	g := MustParse("00001111")
	require.False(t, Equal(And(f, g), Or(f, f)))
	require.False(t, Equal(Or(f, g), f))
	require.False(t, Equal(Xor(f, g), New(3)))
	require.Equal(t, "00001010", And(f, g).String())
	require.Equal(t, "10101111", Or(f, g).String())
	require.Equal(t, "10100101", Xor(f, g).String())

	// f is contained in g, so f∧g equals f∨f although f and g differ.
	f, g = MustParse("0001"), MustParse("0011")
	require.False(t, Equal(f, g))
	require.True(t, Equal(And(f, g), Or(f, f)))
	require.Equal(t, "0011", Or(f, g).String())
}

func TestLogicMismatchedVars(t *testing.T) {
	for _, fn := range []func(a, b TruthTable) TruthTable{And, Or, Xor} {
		func() {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				require.True(t, errors.HasAssertionFailure(r.(error)))
			}()
			fn(New(2), New(3))
		}()
	}
}

func TestLogicRandom(t *testing.T) {
	seed := uint64(time.Now().UnixNano())
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewSource(seed))

	for n := 0; n <= 9; n++ {
		t.Run(fmt.Sprintf("vars=%d", n), func(t *testing.T) {
			for iter := 0; iter < 10; iter++ {
				fr, gr := randRef(rng, n), randRef(rng, n)
				f, g := FromBools(n, fr), FromBools(n, gr)

				requireMatches(t, fr.and(gr), And(f, g))
				requireMatches(t, fr.or(gr), Or(f, g))
				requireMatches(t, fr.xor(gr), Xor(f, g))
				requireMatches(t, fr.not(), Not(f))

				require.True(t, Equal(Not(Not(f)), f))
				require.True(t, Equal(And(f, f), f))
				require.True(t, Equal(Or(f, f), f))
				require.Zero(t, Xor(f, f).CountOnes())
				require.Equal(t, f.NumBits(), Or(f, Not(f)).CountOnes())
				// And must read g: unless f is contained in g, f∧g differs
				// from f∨f.
				if !Equal(And(f, g), f) {
					require.False(t, Equal(And(f, g), Or(f, f)))
				}
				// De Morgan.
				require.True(t, Equal(Not(And(f, g)), Or(Not(f), Not(g))))
			}
		})
	}
}

func BenchmarkAnd(b *testing.B) {
	for _, n := range []int{4, 6, 10, 16} {
		b.Run(fmt.Sprintf("vars=%d", n), func(b *testing.B) {
			f, g := NthVar(n, 0, true), NthVar(n, n-1, false)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = And(f, g)
			}
		})
	}
}
